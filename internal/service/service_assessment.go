// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/personality"
	"github.com/MKhiriev/career-compass/internal/store"
	"github.com/MKhiriev/career-compass/internal/utils"
	"github.com/MKhiriev/career-compass/models"
)

// assessmentService composes assessment records: it classifies the
// submission, asks the matcher for careers and stores the result as one
// record.
type assessmentService struct {
	assessments store.AssessmentRepository
	careers     store.CareerRepository
	matcher     *personality.Matcher

	ids    idGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewAssessmentService(assessments store.AssessmentRepository, careers store.CareerRepository, logger *logger.Logger) AssessmentService {
	return &assessmentService{
		assessments: assessments,
		careers:     careers,
		matcher:     personality.NewMatcher(),
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

// Submit classifies req, matches careers and stores the record.
//
// With scores the classification is the type code and answers, when they
// are all trait labels, also yield the trait. With answers only the
// classification is the trait.
func (s *assessmentService) Submit(ctx context.Context, identity models.Identity, req models.SubmitAssessmentRequest) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	if identity.IsZero() {
		return models.Assessment{}, ErrMissingOwner
	}
	if req.Scores == nil && len(req.Answers) == 0 {
		return models.Assessment{}, ErrNoAssessmentInput
	}

	now := s.now().UTC()
	assessment := models.Assessment{
		ID:          s.ids.Generate(),
		UserID:      identity.UserID,
		Scores:      req.Scores,
		Answers:     req.Answers,
		CompletedAt: now,
		CreatedAt:   now,
	}

	var match models.RecommendationRequest
	if req.Scores != nil {
		code, err := personality.Score(req.Scores)
		if err != nil {
			return models.Assessment{}, err
		}
		assessment.PersonalityType = code
		match.TypeCode = code

		if len(req.Answers) > 0 {
			if trait, err := personality.Classify(models.Labels(req.Answers)); err == nil {
				assessment.Trait = string(trait)
			}
		}
	} else {
		trait, err := personality.Classify(models.Labels(req.Answers))
		if err != nil {
			return models.Assessment{}, err
		}
		assessment.Trait = string(trait)
		match.Trait = string(trait)
	}

	catalog, err := s.careers.ListCareers(ctx)
	if err != nil {
		log.Err(err).Str("func", "assessmentService.Submit").Msg("failed to load catalog")
		return models.Assessment{}, err
	}

	recommended, err := s.matcher.Match(match, catalog)
	if err != nil {
		return models.Assessment{}, err
	}

	assessment.RecommendedCareerIDs = make([]string, 0, len(recommended))
	for _, c := range recommended {
		assessment.RecommendedCareerIDs = append(assessment.RecommendedCareerIDs, c.ID)
	}

	created, err := s.assessments.CreateAssessment(ctx, assessment)
	if err != nil {
		log.Err(err).Str("func", "assessmentService.Submit").Str("user_id", identity.UserID).Msg("failed to store assessment")
		return models.Assessment{}, err
	}

	created.RecommendedCareers = recommended
	created.Description = describe(created)

	log.Info().
		Str("func", "assessmentService.Submit").
		Str("assessment_id", created.ID).
		Str("classification", created.Classification()).
		Int("recommended", len(recommended)).
		Msg("assessment stored")

	return created, nil
}

// Get returns the record with id to its owner or an admin.
func (s *assessmentService) Get(ctx context.Context, identity models.Identity, id string) (models.Assessment, error) {
	if identity.IsZero() {
		return models.Assessment{}, ErrNoIdentity
	}

	assessment, err := s.assessments.GetAssessmentByID(ctx, id)
	if err != nil {
		return models.Assessment{}, err
	}
	if err = requireAccess(identity, assessment.UserID); err != nil {
		return models.Assessment{}, err
	}

	return s.populate(ctx, assessment)
}

// ListForOwner returns the caller's records in insertion order.
func (s *assessmentService) ListForOwner(ctx context.Context, identity models.Identity) ([]models.Assessment, error) {
	if identity.IsZero() {
		return nil, ErrNoIdentity
	}

	list, err := s.assessments.ListAssessmentsByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i], err = s.populate(ctx, list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// populate resolves the stored career ids. Careers deleted since the record
// was created are left out of the view; the stored ids are untouched.
func (s *assessmentService) populate(ctx context.Context, assessment models.Assessment) (models.Assessment, error) {
	careers, err := s.careers.GetCareersByIDs(ctx, assessment.RecommendedCareerIDs)
	if err != nil {
		return models.Assessment{}, err
	}
	assessment.RecommendedCareers = careers
	assessment.Description = describe(assessment)
	return assessment, nil
}

func describe(a models.Assessment) string {
	if a.Trait == "" {
		return ""
	}
	trait, err := personality.ParseTrait(a.Trait)
	if err != nil {
		return ""
	}
	return personality.Describe(trait)
}
