// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Response is the JSON envelope of every successful API response.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// ErrorBody is the structured description of a failure.
type ErrorBody struct {
	// Kind is the stable machine-checkable class of the error.
	Kind ErrorKind `json:"kind"`

	// Message is a human-readable description. It never contains stack
	// traces or internal identifiers.
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope of every failed API response.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Success     bool        `json:"success"`
	Status      string      `json:"status"`
	StorageMode StorageMode `json:"storage_mode"`
	Timestamp   time.Time   `json:"timestamp"`
}

// StorageMode names the backend a process committed to at startup.
type StorageMode string

const (
	// StorageModeDurable means every repository is backed by the SQL store.
	StorageModeDurable StorageMode = "durable"

	// StorageModeMemory means the durable store was unreachable at startup
	// and the process runs on the volatile in-memory fallback.
	StorageModeMemory StorageMode = "memory"
)
