// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/career-compass/models"
)

type memoryUserRepository struct {
	store *memoryStore
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	user.Email = models.NormalizeEmail(user.Email)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; ok {
		return models.User{}, ErrConstraintViolation
	}
	if err := r.store.userConflict(user); err != nil {
		return models.User{}, err
	}

	r.store.users[user.ID] = user
	return user, nil
}

func (r *memoryUserRepository) GetUserByID(_ context.Context, id string) (models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	email = models.NormalizeEmail(email)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *memoryUserRepository) ListUsers(_ context.Context, role models.Role) ([]models.User, error) {
	r.store.mu.RLock()
	users := make([]models.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		if role == "" || user.Role == role {
			users = append(users, user)
		}
	}
	r.store.mu.RUnlock()

	return inCatalogOrder(users, func(u models.User) (int64, string) {
		return u.CreatedAt.UnixNano(), u.ID
	}), nil
}

func (r *memoryUserRepository) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	user.Email = models.NormalizeEmail(user.Email)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.users[user.ID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	if err := r.store.userConflict(user); err != nil {
		return models.User{}, err
	}

	// credentials, role and identifiers are not changed by a profile update
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Phone = user.Phone
	existing.Class = user.Class
	existing.Section = user.Section
	existing.UpdatedAt = user.UpdatedAt
	r.store.users[user.ID] = existing

	return existing, nil
}

func (r *memoryUserRepository) DeleteUser(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.store.users, id)

	for assessmentID, assessment := range r.store.assessments {
		if assessment.UserID == id {
			delete(r.store.assessments, assessmentID)
		}
	}
	return nil
}
