// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the domain
// services.
//
// A [Validator] accepts any supported model and an optional list of field
// names. When fields are given only those are checked, otherwise a default
// set for the model is used. Every failure wraps [models.ErrValidation] or
// [models.ErrInvalidInput] so that the transport layer can classify it.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
