// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/store"
	"github.com/MKhiriev/career-compass/models"
)

type studentService struct {
	users  store.UserRepository
	now    func() time.Time
	logger *logger.Logger
}

func NewStudentService(users store.UserRepository, logger *logger.Logger) StudentService {
	return &studentService{
		users:  users,
		now:    time.Now,
		logger: logger,
	}
}

func (s *studentService) List(ctx context.Context, identity models.Identity) ([]models.User, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}
	return s.users.ListUsers(ctx, models.RoleStudent)
}

// Get returns the profile with id. Access is checked before existence so
// that a student cannot discover which other ids exist.
func (s *studentService) Get(ctx context.Context, identity models.Identity, id string) (models.User, error) {
	if err := requireAccess(identity, id); err != nil {
		return models.User{}, err
	}
	return s.users.GetUserByID(ctx, id)
}

// Update applies a partial profile update; the email is normalized again
// and must stay unique.
func (s *studentService) Update(ctx context.Context, identity models.Identity, id string, update models.UserUpdate) (models.User, error) {
	if err := requireAccess(identity, id); err != nil {
		return models.User{}, err
	}

	existing, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	merged := update.Apply(existing)
	merged.UpdatedAt = s.now().UTC()

	updated, err := s.users.UpdateUser(ctx, merged)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "studentService.Update").Str("user_id", id).Msg("failed to update profile")
		return models.User{}, err
	}
	return updated, nil
}

// Delete removes the user and its assessments.
func (s *studentService) Delete(ctx context.Context, identity models.Identity, id string) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "studentService.Delete").Str("user_id", id).Msg("student deleted")
	return nil
}
