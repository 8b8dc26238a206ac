// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client of the career-compass API.
//
// [ServerAdapter] decouples callers such as cmd/client from the transport.
// The package ships an HTTP/REST implementation built on resty
// ([NewHTTPServerAdapter]). Error envelopes returned by the server are mapped
// to the sentinel values in errors.go, which wrap the shared error kinds of
// the models package, so callers can use [errors.Is] either way.
package adapter

import (
	"context"

	"github.com/MKhiriev/career-compass/models"
)

// ServerAdapter defines communication with the career-compass server.
// Implementations manage serialization, the bearer token, and the mapping of
// error responses.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Me returns the account behind the stored token.
	Me(ctx context.Context) (models.User, error)

	// SubmitAssessment stores a questionnaire submission and returns the
	// classified record with its recommendations.
	SubmitAssessment(ctx context.Context, req models.SubmitAssessmentRequest) (models.Assessment, error)

	// ListAssessments returns the caller's assessments in submission order.
	ListAssessments(ctx context.Context) ([]models.Assessment, error)

	// ListCareers returns the whole catalog.
	ListCareers(ctx context.Context) ([]models.Career, error)

	// SearchCareers returns careers listing skill.
	SearchCareers(ctx context.Context, skill string) ([]models.Career, error)

	// Recommend returns personalized recommendations.
	Recommend(ctx context.Context, req models.RecommendationRequest) ([]models.Career, error)

	// Health reports server liveness and storage mode.
	Health(ctx context.Context) (models.HealthResponse, error)
}
