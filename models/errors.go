// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Error kinds shared by every layer of the application. Package-level
// sentinel errors wrap one of these with fmt.Errorf("%w: ...") so that callers
// can classify any failure with [errors.Is] regardless of where it originated.
var (
	// ErrInvalidInput marks malformed or out-of-range caller data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation marks a request that is missing required domain fields.
	ErrValidation = errors.New("validation error")

	// ErrUnauthenticated marks a missing, malformed or expired credential.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden marks a valid identity without sufficient rights.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks a reference to an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a violation of a uniqueness rule (email, career title).
	ErrConflict = errors.New("conflict")

	// ErrPersistence marks a backend read or write failure.
	ErrPersistence = errors.New("persistence error")
)

// ErrorKind is the stable, machine-checkable name of an error class. It is
// what API clients see in the "kind" field of an error response.
type ErrorKind string

const (
	KindInvalidInput    ErrorKind = "InvalidInput"
	KindValidation      ErrorKind = "ValidationError"
	KindUnauthenticated ErrorKind = "Unauthenticated"
	KindForbidden       ErrorKind = "Forbidden"
	KindNotFound        ErrorKind = "NotFound"
	KindConflict        ErrorKind = "Conflict"
	KindPersistence     ErrorKind = "PersistenceError"
	KindInternal        ErrorKind = "Internal"
)

var kinds = []struct {
	target error
	kind   ErrorKind
}{
	{ErrInvalidInput, KindInvalidInput},
	{ErrValidation, KindValidation},
	{ErrUnauthenticated, KindUnauthenticated},
	{ErrForbidden, KindForbidden},
	{ErrNotFound, KindNotFound},
	{ErrConflict, KindConflict},
	{ErrPersistence, KindPersistence},
}

// KindOf reports the [ErrorKind] of err. Errors that do not wrap any of the
// sentinels above are classified as [KindInternal].
func KindOf(err error) ErrorKind {
	for _, k := range kinds {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}
	return KindInternal
}
