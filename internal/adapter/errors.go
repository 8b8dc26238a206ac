// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/career-compass/models"
)

var (
	ErrBadRequest          = fmt.Errorf("%w: bad request", models.ErrInvalidInput)
	ErrUnauthorized        = fmt.Errorf("%w: client unauthorized", models.ErrUnauthenticated)
	ErrForbidden           = fmt.Errorf("%w: forbidden", models.ErrForbidden)
	ErrNotFound            = fmt.Errorf("%w: not found", models.ErrNotFound)
	ErrConflict            = fmt.Errorf("%w: conflict", models.ErrConflict)
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyBaseURL = errors.New("empty base url")
	ErrNoToken      = errors.New("no token in response")
)
