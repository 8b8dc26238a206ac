// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/migrations"
)

// DB is an open durable store connection together with the dialect
// specific pieces the repositories need: a statement builder with the
// right placeholder format and a driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a connection for cfg.Driver ("pgx" or "sqlite3") and
// pings it. The ping is bounded by cfg.ConnectTimeout when it is set.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverPostgres
	}

	db, err := newDB(driver, log)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", driver).Msg("unsupported driver")
		return nil, err
	}

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}
	db.DB = conn

	if driver == config.DriverSQLite {
		// a single connection keeps PRAGMA settings and serializes writers
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if driver == config.DriverSQLite {
		if _, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("error enabling foreign keys: %w", err)
		}
	}

	log.Info().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	return db, nil
}

// newDB prepares a DB without a connection.
func newDB(driver string, log *logger.Logger) (*DB, error) {
	switch driver {
	case config.DriverPostgres:
		return &DB{
			driver:             driver,
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             log,
		}, nil
	case config.DriverSQLite:
		return &DB{
			driver:             driver,
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
			errorClassificator: NewSQLiteErrorClassifier(),
			logger:             log,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Migrate applies the embedded schema migrations of the connection's
// dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}
