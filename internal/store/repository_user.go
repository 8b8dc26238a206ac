// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/models"
)

// userRepository is the SQL implementation of [UserRepository] backed by
// the "users" table.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts user as given; identifiers and timestamps are
// assigned by the caller.
//
// Error handling:
//   - unique email → [ErrEmailAlreadyExists]
//   - unique student id → [ErrStudentIDAlreadyExists]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = models.NormalizeEmail(user.Email)

	query, args, err := r.builder.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.Phone, user.Class, user.Section,
			nullString(user.StudentID), string(user.Role), user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Str("user_id", user.ID).Msg("failed to insert user")
		return models.User{}, r.statementError(err, ErrEmailAlreadyExists)
	}

	return user, nil
}

// GetUserByID returns the user with id or [ErrUserNotFound].
func (r *userRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return r.getUser(ctx, "userRepository.GetUserByID", sq.Eq{"id": id})
}

// GetUserByEmail returns the user registered with email (compared in its
// normalized form) or [ErrUserNotFound].
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, "userRepository.GetUserByEmail", sq.Eq{"email": models.NormalizeEmail(email)})
}

func (r *userRepository) getUser(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectUsers().Where(where).ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to get user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns users in creation order, optionally filtered by role.
func (r *userRepository) ListUsers(ctx context.Context, role models.Role) ([]models.User, error) {
	log := logger.FromContext(ctx)

	builder := r.selectUsers().OrderBy(catalogOrder...)
	if role != "" {
		builder = builder.Where(sq.Eq{"role": string(role)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser overwrites the mutable profile fields of user.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = models.NormalizeEmail(user.Email)

	query, args, err := r.builder.Update("users").
		SetMap(map[string]any{
			"name":       user.Name,
			"email":      user.Email,
			"phone":      user.Phone,
			"class":      user.Class,
			"section":    user.Section,
			"updated_at": user.UpdatedAt,
		}).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Str("user_id", user.ID).Msg("failed to update user")
		return models.User{}, r.statementError(err, ErrEmailAlreadyExists)
	}

	if err = expectAffected(result, ErrUserNotFound); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DeleteUser removes the user; its assessments are removed by the
// schema's cascading foreign key.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.DeleteUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.DeleteUser").Str("user_id", id).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrUserNotFound)
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		studentID sql.NullString
		role      string
	)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Class,
		&user.Section,
		&studentID,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.StudentID = studentID.String
	user.Role = models.Role(role)
	return user, nil
}

// statementError classifies a failed INSERT or UPDATE.
func (db *DB) statementError(err error, uniqueFallback error) error {
	if domainErr := violationError(db.errorClassificator.Classify(err), uniqueFallback); domainErr != nil {
		return domainErr
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// expectAffected returns notFound when the statement touched no rows.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
