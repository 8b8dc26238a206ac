// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/career-compass/internal/validators"
	"github.com/MKhiriev/career-compass/models"
)

// authValidationService checks registration and login payloads before they
// reach the wrapped AuthService.
type authValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() Wrapper[AuthService] {
	return &authValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *authValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("invalid registration request: %w", err)
	}
	return v.AuthService.Register(ctx, req)
}

func (v *authValidationService) EnsureAdmin(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldName, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("invalid admin account: %w", err)
	}
	return v.AuthService.EnsureAdmin(ctx, req)
}

func (v *authValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("invalid login request: %w", err)
	}
	return v.AuthService.Login(ctx, req)
}

func (v *authValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

type careerValidationService struct {
	CareerService
	validator  validators.Validator
	assessment validators.Validator
}

func NewCareerValidationService() Wrapper[CareerService] {
	return &careerValidationService{
		validator:  validators.NewCareerValidator(),
		assessment: validators.NewAssessmentValidator(),
	}
}

func (v *careerValidationService) SearchBySkill(ctx context.Context, skill string) ([]models.Career, error) {
	if err := v.validator.Validate(ctx, skill); err != nil {
		return nil, err
	}
	return v.CareerService.SearchBySkill(ctx, skill)
}

func (v *careerValidationService) Create(ctx context.Context, identity models.Identity, career models.Career) (models.Career, error) {
	if err := v.validator.Validate(ctx, career); err != nil {
		return models.Career{}, fmt.Errorf("invalid career: %w", err)
	}
	return v.CareerService.Create(ctx, identity, career)
}

func (v *careerValidationService) Update(ctx context.Context, identity models.Identity, id string, update models.CareerUpdate) (models.Career, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Career{}, fmt.Errorf("invalid career update: %w", err)
	}
	return v.CareerService.Update(ctx, identity, id, update)
}

func (v *careerValidationService) Recommend(ctx context.Context, identity models.Identity, req models.RecommendationRequest) ([]models.Career, error) {
	if req.IsEmpty() {
		return v.CareerService.Recommend(ctx, identity, req)
	}
	if err := v.assessment.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("invalid recommendation request: %w", err)
	}
	return v.CareerService.Recommend(ctx, identity, req)
}

func (v *careerValidationService) Wrap(inner CareerService) CareerService {
	v.CareerService = inner
	return v
}

type assessmentValidationService struct {
	AssessmentService
	validator validators.Validator
}

func NewAssessmentValidationService() Wrapper[AssessmentService] {
	return &assessmentValidationService{
		validator: validators.NewAssessmentValidator(),
	}
}

func (v *assessmentValidationService) Submit(ctx context.Context, identity models.Identity, req models.SubmitAssessmentRequest) (models.Assessment, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Assessment{}, fmt.Errorf("invalid assessment: %w", err)
	}
	return v.AssessmentService.Submit(ctx, identity, req)
}

func (v *assessmentValidationService) Wrap(inner AssessmentService) AssessmentService {
	v.AssessmentService = inner
	return v
}

type studentValidationService struct {
	StudentService
	validator validators.Validator
}

func NewStudentValidationService() Wrapper[StudentService] {
	return &studentValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *studentValidationService) Update(ctx context.Context, identity models.Identity, id string, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("invalid profile update: %w", err)
	}
	return v.StudentService.Update(ctx, identity, id, update)
}

func (v *studentValidationService) Wrap(inner StudentService) StudentService {
	v.StudentService = inner
	return v
}
