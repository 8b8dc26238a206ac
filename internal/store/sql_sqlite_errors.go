// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// sqliteConstraints maps the column list or index SQLite reports in a
// unique violation message to the shared constraint name.
var sqliteConstraints = map[string]string{
	"users.email":       constraintUsersEmail,
	"users.student_id":  constraintUsersStudentID,
	"careers_title_key": constraintCareersTitle,
}

// Classify implements [ErrorClassificator]. Errors that are not a
// sqlite3.Error are reported as [NoViolation].
func (c *SQLiteErrorClassifier) Classify(err error) Violation {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) || liteErr.Code != sqlite3.ErrConstraint {
		return Violation{}
	}

	v := Violation{Constraint: sqliteConstraint(liteErr.Error())}
	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		v.Kind = UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		v.Kind = ForeignKeyViolation
	case sqlite3.ErrConstraintCheck:
		v.Kind = CheckViolation
	case sqlite3.ErrConstraintNotNull:
		v.Kind = NotNullViolation
	}
	return v
}

// sqliteConstraint extracts the constraint from messages such as
// "UNIQUE constraint failed: users.email" or
// "UNIQUE constraint failed: index 'careers_title_key'".
func sqliteConstraint(msg string) string {
	_, target, ok := strings.Cut(msg, "failed: ")
	if !ok {
		return ""
	}
	target = strings.TrimPrefix(target, "index ")
	target = strings.Trim(strings.TrimSpace(target), "'")

	if name, ok := sqliteConstraints[target]; ok {
		return name
	}
	return target
}
