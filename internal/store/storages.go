// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/personality"
	"github.com/MKhiriev/career-compass/internal/utils"
	"github.com/MKhiriev/career-compass/models"
)

// Storages is the set of repositories the service layer works with. The
// backend is chosen once, by [NewStorages], and never changes afterwards.
type Storages struct {
	Users       UserRepository
	Careers     CareerRepository
	Assessments AssessmentRepository
	Credentials Credentials

	// Mode names the backend the process committed to.
	Mode models.StorageMode

	db *DB
}

// NewStorages opens the durable store described by cfg.Storage.DB and
// applies the schema migrations. When the DSN is empty, or the store cannot
// be reached or migrated, it logs a single warning and falls back to the
// in-memory backend for the lifetime of the process.
//
// The curated catalog is seeded into an empty store unless disabled.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	storages, err := openDurable(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewStorages").Msg("durable store unavailable, running in demo mode")
		storages = NewMemoryStorages()
	}

	if cfg.Storage.Seed.CatalogEnabled() {
		if err = SeedCatalog(ctx, storages.Careers, utils.NewUUIDGenerator(), time.Now().UTC()); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("failed to seed career catalog")
			return nil, errors.Join(err, storages.Close())
		}
	}

	log.Info().Str("func", "NewStorages").Str("storage_mode", string(storages.Mode)).Msg("storage initialized")
	return storages, nil
}

// NewMemoryStorages returns storages backed by a fresh in-memory store.
func NewMemoryStorages() *Storages {
	store := newMemoryStore()
	return &Storages{
		Users:       &memoryUserRepository{store: store},
		Careers:     &memoryCareerRepository{store: store},
		Assessments: &memoryAssessmentRepository{store: store},
		Credentials: NewPlainCredentials(),
		Mode:        models.StorageModeMemory,
	}
}

// NewSQLStorages returns storages backed by an open durable connection.
func NewSQLStorages(db *DB, hashCost int, log *logger.Logger) *Storages {
	return &Storages{
		Users:       NewUserRepository(db, log),
		Careers:     NewCareerRepository(db, log),
		Assessments: NewAssessmentRepository(db, log),
		Credentials: NewBcryptCredentials(hashCost),
		Mode:        models.StorageModeDurable,
		db:          db,
	}
}

func openDurable(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	if cfg.Storage.DB.DSN == "" {
		return nil, ErrNoDSN
	}

	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewSQLStorages(db, cfg.App.PasswordHashCost, log), nil
}

// Close releases the durable connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SeedCatalog inserts the curated catalog when the repository is empty.
// Entries are stamped one millisecond apart starting at now so that catalog
// order follows the curated order.
func SeedCatalog(ctx context.Context, careers CareerRepository, ids interface{ Generate() string }, now time.Time) error {
	count, err := careers.CountCareers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, career := range personality.SeedCatalog() {
		career.ID = ids.Generate()
		career.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		career.UpdatedAt = career.CreatedAt

		_, err = careers.CreateCareer(ctx, career)
		if errors.Is(err, ErrCareerTitleAlreadyExists) {
			// another instance seeded concurrently
			continue
		}
		if err != nil {
			return fmt.Errorf("seed %q: %w", career.Title, err)
		}
	}
	return nil
}
