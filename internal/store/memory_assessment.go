// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/career-compass/models"
)

type memoryAssessmentRepository struct {
	store *memoryStore
}

func (r *memoryAssessmentRepository) CreateAssessment(_ context.Context, assessment models.Assessment) (models.Assessment, error) {
	record := cloneAssessment(assessment)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[record.UserID]; !ok {
		return models.Assessment{}, ErrUserNotFound
	}
	if _, ok := r.store.assessments[record.ID]; ok {
		return models.Assessment{}, ErrConstraintViolation
	}

	r.store.assessments[record.ID] = record
	return cloneAssessment(record), nil
}

func (r *memoryAssessmentRepository) GetAssessmentByID(_ context.Context, id string) (models.Assessment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	assessment, ok := r.store.assessments[id]
	if !ok {
		return models.Assessment{}, ErrAssessmentNotFound
	}
	return cloneAssessment(assessment), nil
}

func (r *memoryAssessmentRepository) ListAssessmentsByUser(_ context.Context, userID string) ([]models.Assessment, error) {
	r.store.mu.RLock()
	assessments := make([]models.Assessment, 0)
	for _, assessment := range r.store.assessments {
		if assessment.UserID == userID {
			assessments = append(assessments, cloneAssessment(assessment))
		}
	}
	r.store.mu.RUnlock()

	return inCatalogOrder(assessments, func(a models.Assessment) (int64, string) {
		return a.CreatedAt.UnixNano(), a.ID
	}), nil
}
