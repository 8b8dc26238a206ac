// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/store"
)

// Services groups the application services handed to the transport layer.
type Services struct {
	AuthService       AuthService
	CareerService     CareerService
	AssessmentService AssessmentService
	StudentService    StudentService
	AppInfoService    AppInfoService
}

// NewServices builds every service on top of storages and wraps the ones
// that accept client payloads with their validation layer.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.Mode, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.Users, storages.Credentials, cfg.App, logger)),
		CareerService: NewCareerValidationService().
			Wrap(NewCareerService(storages.Careers, storages.Assessments, logger)),
		AssessmentService: NewAssessmentValidationService().
			Wrap(NewAssessmentService(storages.Assessments, storages.Careers, logger)),
		StudentService: NewStudentValidationService().
			Wrap(NewStudentService(storages.Users, logger)),
		AppInfoService: appInfo,
	}, nil
}
