// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

import (
	"context"

	"github.com/MKhiriev/career-compass/models"
)

// UserRepository persists user accounts. Emails are stored normalized.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	// ListUsers returns users in creation order. An empty role lists all.
	ListUsers(ctx context.Context, role models.Role) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// DeleteUser removes the user together with its assessments.
	DeleteUser(ctx context.Context, id string) error
}

// CareerRepository persists the career catalog. Every list it returns is in
// catalog order: creation time, then id.
type CareerRepository interface {
	CreateCareer(ctx context.Context, career models.Career) (models.Career, error)
	GetCareerByID(ctx context.Context, id string) (models.Career, error)
	// GetCareersByIDs returns the careers that still exist, in the order of
	// ids. Unknown ids are skipped.
	GetCareersByIDs(ctx context.Context, ids []string) ([]models.Career, error)
	ListCareers(ctx context.Context) ([]models.Career, error)
	// SearchCareersBySkill returns careers having skill in their skill list,
	// compared case-insensitively.
	SearchCareersBySkill(ctx context.Context, skill string) ([]models.Career, error)
	UpdateCareer(ctx context.Context, career models.Career) (models.Career, error)
	DeleteCareer(ctx context.Context, id string) error
	CountCareers(ctx context.Context) (int, error)
}

// AssessmentRepository persists immutable assessment records. A record
// becomes visible to readers only as a whole.
type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, assessment models.Assessment) (models.Assessment, error)
	GetAssessmentByID(ctx context.Context, id string) (models.Assessment, error)
	// ListAssessmentsByUser returns the records of userID in insertion order.
	ListAssessmentsByUser(ctx context.Context, userID string) ([]models.Assessment, error)
}

// Credentials turns a password into its stored form and checks it back.
// The stored form depends on the active backend.
type Credentials interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}
