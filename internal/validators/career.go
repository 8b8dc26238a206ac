// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/career-compass/models"
)

// Field names understood by [CareerValidator].
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldSalary      = "salary_range"
	FieldGrowthRate  = "growth_rate"
	FieldLists       = "lists"
	FieldSkill       = "skill"
)

// CareerValidator validates catalog entries. A [models.CareerUpdate] is
// checked field by field; the merged record is expected to be validated
// again as a [models.Career] before it is stored.
type CareerValidator struct{}

func NewCareerValidator() Validator {
	return &CareerValidator{}
}

func (v *CareerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Career:
		return v.validateCareer(value, fields...)
	case *models.Career:
		return v.validateCareer(*value, fields...)

	case models.CareerUpdate:
		return v.validateCareerUpdate(value)
	case *models.CareerUpdate:
		return v.validateCareerUpdate(*value)

	case string:
		// a skill search term
		if strings.TrimSpace(value) == "" {
			return ErrEmptySkill
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *CareerValidator) validateCareer(career models.Career, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldSalary, FieldGrowthRate, FieldLists}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(career.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if strings.TrimSpace(career.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldSalary:
			if !career.SalaryRange.Valid() {
				return ErrInvalidSalary
			}
		case FieldGrowthRate:
			if !finite(career.GrowthRate) {
				return ErrInvalidGrowthRate
			}
		case FieldLists:
			for _, list := range [][]string{career.Requirements, career.Skills, career.Industries} {
				if err := validateList(list); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CareerValidator) validateCareerUpdate(update models.CareerUpdate) error {
	if update == (models.CareerUpdate{}) {
		return ErrNoFieldsToUpdate
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return ErrEmptyTitle
	}
	if update.Description != nil && strings.TrimSpace(*update.Description) == "" {
		return ErrEmptyDescription
	}
	if update.GrowthRate != nil && !finite(*update.GrowthRate) {
		return ErrInvalidGrowthRate
	}
	for _, list := range []*[]string{update.Requirements, update.Skills, update.Industries} {
		if list == nil {
			continue
		}
		if err := validateList(*list); err != nil {
			return err
		}
	}
	return nil
}

func validateList(list []string) error {
	for _, entry := range list {
		if strings.TrimSpace(entry) == "" {
			return ErrEmptyListEntry
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
