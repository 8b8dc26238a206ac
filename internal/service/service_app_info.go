// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/models"
)

type appInfoService struct {
	appVersion  string
	storageMode models.StorageMode

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, storageMode models.StorageMode, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		storageMode: storageMode,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports liveness and the storage mode chosen at startup.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Success:     true,
		Status:      "ok",
		StorageMode: s.storageMode,
		Timestamp:   time.Now().UTC(),
	}
}
