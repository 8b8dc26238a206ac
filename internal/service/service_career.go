// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/personality"
	"github.com/MKhiriev/career-compass/internal/store"
	"github.com/MKhiriev/career-compass/internal/utils"
	"github.com/MKhiriev/career-compass/models"
)

type careerService struct {
	careers     store.CareerRepository
	assessments store.AssessmentRepository
	matcher     *personality.Matcher

	ids    idGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewCareerService(careers store.CareerRepository, assessments store.AssessmentRepository, logger *logger.Logger) CareerService {
	return &careerService{
		careers:     careers,
		assessments: assessments,
		matcher:     personality.NewMatcher(),
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

func (s *careerService) List(ctx context.Context) ([]models.Career, error) {
	return s.careers.ListCareers(ctx)
}

func (s *careerService) Get(ctx context.Context, id string) (models.Career, error) {
	return s.careers.GetCareerByID(ctx, id)
}

func (s *careerService) SearchBySkill(ctx context.Context, skill string) ([]models.Career, error) {
	return s.careers.SearchCareersBySkill(ctx, strings.TrimSpace(skill))
}

// Create adds a catalog entry. The id and timestamps are assigned here.
func (s *careerService) Create(ctx context.Context, identity models.Identity, career models.Career) (models.Career, error) {
	if err := requireAdmin(identity); err != nil {
		return models.Career{}, err
	}

	now := s.now().UTC()
	career.ID = s.ids.Generate()
	career.Title = strings.TrimSpace(career.Title)
	career.CreatedAt = now
	career.UpdatedAt = now

	created, err := s.careers.CreateCareer(ctx, career)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "careerService.Create").Str("title", career.Title).Msg("failed to create career")
		return models.Career{}, err
	}
	return created, nil
}

// Update applies a partial update. The salary invariant is checked on the
// merged record.
func (s *careerService) Update(ctx context.Context, identity models.Identity, id string, update models.CareerUpdate) (models.Career, error) {
	if err := requireAdmin(identity); err != nil {
		return models.Career{}, err
	}

	existing, err := s.careers.GetCareerByID(ctx, id)
	if err != nil {
		return models.Career{}, err
	}

	merged := update.Apply(existing)
	merged.Title = strings.TrimSpace(merged.Title)
	if !merged.SalaryRange.Valid() {
		return models.Career{}, ErrInvalidSalaryRange
	}
	merged.UpdatedAt = s.now().UTC()

	updated, err := s.careers.UpdateCareer(ctx, merged)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "careerService.Update").Str("career_id", id).Msg("failed to update career")
		return models.Career{}, err
	}
	return updated, nil
}

func (s *careerService) Delete(ctx context.Context, identity models.Identity, id string) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}
	return s.careers.DeleteCareer(ctx, id)
}

// Recommend matches the catalog against req. An empty request is answered
// from the caller's most recent assessment; a caller without one gets the
// head of the catalog.
func (s *careerService) Recommend(ctx context.Context, identity models.Identity, req models.RecommendationRequest) ([]models.Career, error) {
	if identity.IsZero() {
		return nil, ErrNoIdentity
	}

	if req.IsEmpty() {
		latest, err := s.latestProfile(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		req = latest
	}

	catalog, err := s.careers.ListCareers(ctx)
	if err != nil {
		return nil, err
	}

	return s.matcher.Match(req, catalog)
}

func (s *careerService) latestProfile(ctx context.Context, userID string) (models.RecommendationRequest, error) {
	history, err := s.assessments.ListAssessmentsByUser(ctx, userID)
	if err != nil {
		return models.RecommendationRequest{}, fmt.Errorf("load assessments: %w", err)
	}
	if len(history) == 0 {
		return models.RecommendationRequest{}, nil
	}

	latest := history[len(history)-1]
	if latest.PersonalityType != "" {
		return models.RecommendationRequest{TypeCode: latest.PersonalityType}, nil
	}
	return models.RecommendationRequest{Trait: latest.Trait}, nil
}

func requireAdmin(identity models.Identity) error {
	if identity.IsZero() {
		return ErrNoIdentity
	}
	if !identity.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

// requireAccess allows the owner of a record and admins.
func requireAccess(identity models.Identity, ownerID string) error {
	if identity.IsZero() {
		return ErrNoIdentity
	}
	if !identity.CanAccess(ownerID) {
		return ErrAccessDenied
	}
	return nil
}

