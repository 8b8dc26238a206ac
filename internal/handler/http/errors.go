// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/career-compass/models"
)

// Sentinel errors used by the authentication middleware and the request
// decoders. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = fmt.Errorf("%w: empty `Authorization` header", models.ErrUnauthenticated)

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = fmt.Errorf("%w: invalid `Authorization` header", models.ErrUnauthenticated)

	ErrInvalidJSON = fmt.Errorf("%w: invalid JSON was passed", models.ErrInvalidInput)
	errInvalidGzip = fmt.Errorf("%w: invalid gzip data", models.ErrInvalidInput)

	errRouteNotFound = fmt.Errorf("%w: route not found", models.ErrNotFound)
	errInternal      = errors.New("internal server error")
)
