// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Role is the authorization role carried by a user and by its tokens.
type Role string

const (
	// RoleStudent is the default role assigned on registration.
	RoleStudent Role = "student"

	// RoleAdmin is the elevated role: it may write the career catalog and
	// read or manage any user's records.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// IsElevated reports whether r grants catalog-write and cross-user access.
func (r Role) IsElevated() bool {
	return r == RoleAdmin
}

// User represents an account of the career guidance service.
// The same shape is used by every storage backend.
type User struct {
	// ID is the unique identifier of the user (UUID v7).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login of the user. It is always stored
	// lower-cased and trimmed, see [NormalizeEmail].
	Email string `json:"email"`

	// PasswordHash is the stored credential. Its format depends on the
	// active credential hasher. It is never serialized.
	PasswordHash string `json:"-"`

	Phone   string `json:"phone,omitempty"`
	Class   string `json:"class,omitempty"`
	Section string `json:"section,omitempty"`

	// StudentID is the generated, human-readable student identifier.
	StudentID string `json:"student_id"`

	Role Role `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NormalizeEmail returns the canonical form of an email used for storage
// and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Class    string `json:"class,omitempty"`
	Section  string `json:"section,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate describes a partial update of a user profile.
// Only non-nil fields are applied.
type UserUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Class   *string `json:"class,omitempty"`
	Section *string `json:"section,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Class == nil && u.Section == nil
}

// Apply returns a copy of user with the fields of u applied.
func (u UserUpdate) Apply(user User) User {
	if u.Name != nil {
		user.Name = strings.TrimSpace(*u.Name)
	}
	if u.Email != nil {
		user.Email = NormalizeEmail(*u.Email)
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.Class != nil {
		user.Class = *u.Class
	}
	if u.Section != nil {
		user.Section = *u.Section
	}
	return user
}
