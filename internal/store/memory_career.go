// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/career-compass/models"
)

type memoryCareerRepository struct {
	store *memoryStore
}

func (r *memoryCareerRepository) CreateCareer(_ context.Context, career models.Career) (models.Career, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.careers[career.ID]; ok {
		return models.Career{}, ErrConstraintViolation
	}
	if err := r.store.careerConflict(career); err != nil {
		return models.Career{}, err
	}

	r.store.careers[career.ID] = cloneCareer(career)
	return cloneCareer(career), nil
}

func (r *memoryCareerRepository) GetCareerByID(_ context.Context, id string) (models.Career, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	career, ok := r.store.careers[id]
	if !ok {
		return models.Career{}, ErrCareerNotFound
	}
	return cloneCareer(career), nil
}

func (r *memoryCareerRepository) GetCareersByIDs(_ context.Context, ids []string) ([]models.Career, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	careers := make([]models.Career, 0, len(ids))
	for _, id := range ids {
		if career, ok := r.store.careers[id]; ok {
			careers = append(careers, cloneCareer(career))
		}
	}
	return careers, nil
}

func (r *memoryCareerRepository) ListCareers(_ context.Context) ([]models.Career, error) {
	return r.collect(func(models.Career) bool { return true }), nil
}

func (r *memoryCareerRepository) SearchCareersBySkill(_ context.Context, skill string) ([]models.Career, error) {
	return r.collect(func(c models.Career) bool { return hasSkill(c, skill) }), nil
}

func (r *memoryCareerRepository) UpdateCareer(_ context.Context, career models.Career) (models.Career, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.careers[career.ID]
	if !ok {
		return models.Career{}, ErrCareerNotFound
	}
	if err := r.store.careerConflict(career); err != nil {
		return models.Career{}, err
	}

	career.CreatedAt = existing.CreatedAt
	r.store.careers[career.ID] = cloneCareer(career)
	return cloneCareer(career), nil
}

func (r *memoryCareerRepository) DeleteCareer(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.careers[id]; !ok {
		return ErrCareerNotFound
	}
	delete(r.store.careers, id)
	return nil
}

func (r *memoryCareerRepository) CountCareers(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.careers), nil
}

func (r *memoryCareerRepository) collect(keep func(models.Career) bool) []models.Career {
	r.store.mu.RLock()
	careers := make([]models.Career, 0, len(r.store.careers))
	for _, career := range r.store.careers {
		if keep(career) {
			careers = append(careers, cloneCareer(career))
		}
	}
	r.store.mu.RUnlock()

	return inCatalogOrder(careers, func(c models.Career) (int64, string) {
		return c.CreatedAt.UnixNano(), c.ID
	})
}
