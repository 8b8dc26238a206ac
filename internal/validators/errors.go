// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/career-compass/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Field errors. Each one is a [models.ErrValidation].
var (
	ErrEmptyName         = fmt.Errorf("%w: name is required", models.ErrValidation)
	ErrEmptyEmail        = fmt.Errorf("%w: email is required", models.ErrValidation)
	ErrInvalidEmail      = fmt.Errorf("%w: email is malformed", models.ErrValidation)
	ErrEmptyPassword     = fmt.Errorf("%w: password is required", models.ErrValidation)
	ErrInvalidRole       = fmt.Errorf("%w: unknown role", models.ErrValidation)
	ErrEmptyTitle        = fmt.Errorf("%w: title is required", models.ErrValidation)
	ErrEmptyDescription  = fmt.Errorf("%w: description is required", models.ErrValidation)
	ErrInvalidSalary     = fmt.Errorf("%w: salary range must satisfy 0 <= min <= max", models.ErrValidation)
	ErrInvalidGrowthRate = fmt.Errorf("%w: growth rate must be a finite number", models.ErrValidation)
	ErrEmptyListEntry    = fmt.Errorf("%w: list entries must not be blank", models.ErrValidation)
	ErrNoFieldsToUpdate  = fmt.Errorf("%w: at least one field must be provided for update", models.ErrValidation)
	ErrNoAssessmentInput = fmt.Errorf("%w: scores or answers are required", models.ErrValidation)
	ErrEmptySkill        = fmt.Errorf("%w: skill is required", models.ErrValidation)
)
