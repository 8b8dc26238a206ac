// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/handler"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/server"
	"github.com/MKhiriev/career-compass/internal/service"
	"github.com/MKhiriev/career-compass/internal/store"
	"github.com/MKhiriev/career-compass/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("career-compass-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" || cfg.App.Version == "N/A" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if seed := cfg.Storage.Seed; seed.AdminEnabled() {
		admin, err := services.AuthService.EnsureAdmin(ctx, models.RegisterRequest{
			Name:     seed.AdminName,
			Email:    seed.AdminEmail,
			Password: seed.AdminPassword,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("error ensuring admin account")
		}
		log.Info().Str("user_id", admin.ID).Msg("admin account ready")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server exited with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
