// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/career-compass/models"
)

// AuthService registers and authenticates users and issues identity tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	EnsureAdmin(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	Me(ctx context.Context, identity models.Identity) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CareerService reads and maintains the career catalog and produces
// recommendations. Catalog writes require the admin role.
type CareerService interface {
	List(ctx context.Context) ([]models.Career, error)
	Get(ctx context.Context, id string) (models.Career, error)
	SearchBySkill(ctx context.Context, skill string) ([]models.Career, error)
	Create(ctx context.Context, identity models.Identity, career models.Career) (models.Career, error)
	Update(ctx context.Context, identity models.Identity, id string, update models.CareerUpdate) (models.Career, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
	Recommend(ctx context.Context, identity models.Identity, req models.RecommendationRequest) ([]models.Career, error)
}

// AssessmentService creates and reads assessment records.
type AssessmentService interface {
	Submit(ctx context.Context, identity models.Identity, req models.SubmitAssessmentRequest) (models.Assessment, error)
	Get(ctx context.Context, identity models.Identity, id string) (models.Assessment, error)
	ListForOwner(ctx context.Context, identity models.Identity) ([]models.Assessment, error)
}

// StudentService manages student profiles. A student may read and edit
// its own profile; everything else requires the admin role.
type StudentService interface {
	List(ctx context.Context, identity models.Identity) ([]models.User, error)
	Get(ctx context.Context, identity models.Identity, id string) (models.User, error)
	Update(ctx context.Context, identity models.Identity, id string, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

// AppInfoService reports build and runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// Wrapper defines middleware composition for a service S. Implementations
// wrap an existing S to add behavior such as validation.
type Wrapper[S any] interface {
	Wrap(S) S
}

type idGenerator interface {
	Generate() string
}

type studentIDGenerator interface {
	Generate(class, section string) string
}
