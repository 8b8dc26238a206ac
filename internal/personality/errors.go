// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package personality

import (
	"fmt"

	"github.com/MKhiriev/career-compass/models"
)

var (
	ErrNoAnswers       = fmt.Errorf("%w: no answers provided", models.ErrInvalidInput)
	ErrUnknownTrait    = fmt.Errorf("%w: unknown trait label", models.ErrInvalidInput)
	ErrNoScores        = fmt.Errorf("%w: no scores provided", models.ErrInvalidInput)
	ErrMissingScore    = fmt.Errorf("%w: score is missing", models.ErrInvalidInput)
	ErrScoreOutOfRange = fmt.Errorf("%w: score must be within [0,100]", models.ErrInvalidInput)
	ErrInvalidTypeCode = fmt.Errorf("%w: invalid personality type code", models.ErrInvalidInput)
)
