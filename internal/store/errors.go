// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/career-compass/models"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Each wraps a [models] kind, so callers may match either the
// specific sentinel or the kind with [errors.Is].
var (
	ErrEmailAlreadyExists       = fmt.Errorf("%w: email is already registered", models.ErrConflict)
	ErrStudentIDAlreadyExists   = fmt.Errorf("%w: student id is already taken", models.ErrConflict)
	ErrCareerTitleAlreadyExists = fmt.Errorf("%w: career title already exists", models.ErrConflict)

	ErrUserNotFound       = fmt.Errorf("%w: user not found", models.ErrNotFound)
	ErrCareerNotFound     = fmt.Errorf("%w: career not found", models.ErrNotFound)
	ErrAssessmentNotFound = fmt.Errorf("%w: assessment not found", models.ErrNotFound)

	ErrConstraintViolation = fmt.Errorf("%w: constraint violation", models.ErrValidation)
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. All of them classify as [models.ErrPersistence].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = fmt.Errorf("%w: error building sql query", models.ErrPersistence)

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", models.ErrPersistence)

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = fmt.Errorf("%w: failed to execute statement", models.ErrPersistence)

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = fmt.Errorf("%w: failed to scan row", models.ErrPersistence)

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = fmt.Errorf("%w: failed to iterate rows", models.ErrPersistence)

	// ErrEncodingColumn is returned when a structured value cannot be
	// converted to or from its column representation.
	ErrEncodingColumn = fmt.Errorf("%w: failed to encode column", models.ErrPersistence)
)

// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver name.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// ErrNoDSN is reported by the gateway when no durable store is configured.
var ErrNoDSN = errors.New("no database dsn configured")
