// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ViolationKind is the class of integrity constraint a failed statement
// violated.
type ViolationKind int

const (
	// NoViolation means the error is not an integrity constraint violation.
	NoViolation ViolationKind = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
	NotNullViolation
)

// Violation describes a constraint violation reported by the driver.
// Constraint holds the schema name of the violated constraint or index
// when the driver reports it.
type Violation struct {
	Kind       ViolationKind
	Constraint string
}

// ErrorClassificator maps driver specific errors to a [Violation].
type ErrorClassificator interface {
	Classify(err error) Violation
}

// Constraint and index names shared by both SQL dialects.
const (
	constraintUsersEmail     = "users_email_key"
	constraintUsersStudentID = "users_student_id_key"
	constraintCareersTitle   = "careers_title_key"
)

// uniqueViolationErrors maps a unique constraint to the sentinel error
// reported for it.
var uniqueViolationErrors = map[string]error{
	constraintUsersEmail:     ErrEmailAlreadyExists,
	constraintUsersStudentID: ErrStudentIDAlreadyExists,
	constraintCareersTitle:   ErrCareerTitleAlreadyExists,
}

// violationError converts v into the domain error of the failed
// operation, or nil when v is not a violation. fallback is returned for
// unique violations of an unknown constraint.
func violationError(v Violation, fallback error) error {
	switch v.Kind {
	case UniqueViolation:
		if err, ok := uniqueViolationErrors[v.Constraint]; ok {
			return err
		}
		return fallback
	case ForeignKeyViolation:
		return ErrUserNotFound
	case CheckViolation, NotNullViolation:
		return ErrConstraintViolation
	default:
		return nil
	}
}
