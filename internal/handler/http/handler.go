// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  newMetrics(),
		logger:   logger,
	}
}
