// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenIssuer      = "career-compass"
	DefaultTokenDuration    = 7 * 24 * time.Hour
	DefaultHTTPAddress      = ":5000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultConnectTimeout   = 5 * time.Second
	DefaultDriver           = DriverPostgres
	DefaultCORSOrigin       = "http://localhost:5173"
	DefaultAdapterBaseURL   = "http://localhost:5000"
	DefaultAdapterTimeout   = 10 * time.Second
	DefaultPasswordHashCost = bcrypt.DefaultCost
	DefaultAdminName        = "Administrator"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			Version:          "N/A",
		},
		Storage: Storage{
			DB: DB{
				Driver:         DefaultDriver,
				ConnectTimeout: DefaultConnectTimeout,
			},
			Seed: Seed{
				AdminName: DefaultAdminName,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			CORSOrigins:    []string{DefaultCORSOrigin},
		},
		Adapter: Adapter{
			BaseURL:        DefaultAdapterBaseURL,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
