// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"crypto/subtle"

	"github.com/MKhiriev/career-compass/internal/utils"
)

// bcryptCredentials stores bcrypt hashes. It is used with the durable
// backend.
type bcryptCredentials struct {
	cost int
}

// NewBcryptCredentials returns [Credentials] hashing with bcrypt at cost.
func NewBcryptCredentials(cost int) Credentials {
	return &bcryptCredentials{cost: cost}
}

func (c *bcryptCredentials) Hash(password string) (string, error) {
	return utils.HashPassword(password, c.cost)
}

func (c *bcryptCredentials) Verify(password, stored string) bool {
	return utils.CheckPasswordHash(password, stored)
}

// plainCredentials keeps the password as given. It is only used with the
// in-memory backend, whose data never outlives the process.
type plainCredentials struct{}

// NewPlainCredentials returns [Credentials] that store the value verbatim.
func NewPlainCredentials() Credentials {
	return plainCredentials{}
}

func (plainCredentials) Hash(password string) (string, error) {
	return password, nil
}

func (plainCredentials) Verify(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
