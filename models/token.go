// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued by the service: the standard
// registered claims plus the role of the subject.
type Claims struct {
	// Role is the role of the user at the time the token was issued.
	Role Role `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature). UserID and Role are parsed copies of the
// "sub" and "role" claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Role is the role extracted from the "role" claim.
	Role Role `json:"-"`

	// ExpiresAt is the expiry of the token.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Identity returns the caller identity bound to the token.
func (t Token) Identity() Identity {
	return Identity{UserID: t.UserID, Role: t.Role}
}

// Identity is the authenticated caller of an operation.
type Identity struct {
	UserID string
	Role   Role
}

// IsZero reports whether no identity is present.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// IsAdmin reports whether the identity carries the elevated role.
func (i Identity) IsAdmin() bool {
	return i.Role.IsElevated()
}

// CanAccess reports whether the identity may read records owned by ownerID.
func (i Identity) CanAccess(ownerID string) bool {
	return !i.IsZero() && (i.UserID == ownerID || i.IsAdmin())
}
