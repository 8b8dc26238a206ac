// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/career-compass/internal/personality"
	"github.com/MKhiriev/career-compass/models"
)

// AssessmentValidator validates questionnaire submissions and
// recommendation queries.
type AssessmentValidator struct{}

func NewAssessmentValidator() Validator {
	return &AssessmentValidator{}
}

func (v *AssessmentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmitAssessmentRequest:
		return v.validateSubmit(value)
	case *models.SubmitAssessmentRequest:
		return v.validateSubmit(*value)

	case models.RecommendationRequest:
		return v.validateRecommendation(value)
	case *models.RecommendationRequest:
		return v.validateRecommendation(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateSubmit requires scores or answers. Scores must be complete and in
// range. Answers are checked only when they are the sole input; alongside
// scores they are stored as given.
func (v *AssessmentValidator) validateSubmit(req models.SubmitAssessmentRequest) error {
	if req.Scores == nil && len(req.Answers) == 0 {
		return ErrNoAssessmentInput
	}

	if req.Scores != nil {
		return personality.ValidateScores(req.Scores)
	}

	for _, answer := range req.Answers {
		if _, err := personality.ParseTrait(answer.Answer); err != nil {
			return err
		}
	}
	return nil
}

func (v *AssessmentValidator) validateRecommendation(req models.RecommendationRequest) error {
	if req.Trait != "" {
		if _, err := personality.ParseTrait(req.Trait); err != nil {
			return err
		}
	}
	if code := strings.ToUpper(strings.TrimSpace(req.TypeCode)); code != "" && !personality.ValidTypeCode(code) {
		return personality.ErrInvalidTypeCode
	}
	return validateList(req.Skills)
}
