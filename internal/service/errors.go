// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/career-compass/models"
)

var (
	// ErrInvalidCredentials is returned by login for an unknown email or a
	// wrong password. The two cases are indistinguishable to the caller.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", models.ErrUnauthenticated)

	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", models.ErrUnauthenticated)
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNoIdentity   = fmt.Errorf("%w: authentication required", models.ErrUnauthenticated)
	ErrAdminOnly    = fmt.Errorf("%w: admin role required", models.ErrForbidden)
	ErrAccessDenied = fmt.Errorf("%w: access to another user's records is denied", models.ErrForbidden)

	ErrAdminSelfRegistration = fmt.Errorf("%w: admin accounts cannot self-register", models.ErrForbidden)
	ErrAdminEmailTaken       = fmt.Errorf("%w: admin email belongs to a non-admin account", models.ErrConflict)

	ErrMissingOwner       = fmt.Errorf("%w: assessment owner is required", models.ErrValidation)
	ErrNoAssessmentInput  = fmt.Errorf("%w: scores or answers are required", models.ErrValidation)
	ErrInvalidSalaryRange = fmt.Errorf("%w: salary range must satisfy 0 <= min <= max", models.ErrValidation)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
