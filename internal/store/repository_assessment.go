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

// assessmentRepository is the SQL implementation of [AssessmentRepository]
// backed by the "assessments" table. A record, including its ordered list
// of recommended career ids, is written by a single INSERT.
type assessmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssessmentRepository constructs an [AssessmentRepository] backed by
// the provided database connection and logger.
func NewAssessmentRepository(db *DB, logger *logger.Logger) AssessmentRepository {
	logger.Debug().Msg("creating assessment repository")
	return &assessmentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAssessment stores the record. An unknown owner yields
// [ErrUserNotFound].
func (r *assessmentRepository) CreateAssessment(ctx context.Context, assessment models.Assessment) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	scores, err := nullableJSONValue(assessment.Scores, assessment.Scores == nil)
	if err != nil {
		return models.Assessment{}, err
	}
	answers := assessment.Answers
	if answers == nil {
		answers = []models.Answer{}
	}
	answersValue, err := jsonValue(answers)
	if err != nil {
		return models.Assessment{}, err
	}
	recommended, err := listValue(assessment.RecommendedCareerIDs)
	if err != nil {
		return models.Assessment{}, err
	}

	query, args, err := r.builder.Insert("assessments").
		Columns(assessmentColumns...).
		Values(
			assessment.ID,
			assessment.UserID,
			assessment.PersonalityType,
			assessment.Trait,
			scores,
			answersValue,
			recommended,
			assessment.CompletedAt,
			assessment.CreatedAt,
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "assessmentRepository.CreateAssessment").Msg("failed to build query")
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "assessmentRepository.CreateAssessment").
			Str("user_id", assessment.UserID).
			Msg("failed to insert assessment")
		return models.Assessment{}, r.statementError(err, ErrExecutingStatement)
	}

	return assessment, nil
}

func (r *assessmentRepository) GetAssessmentByID(ctx context.Context, id string) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectAssessments().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "assessmentRepository.GetAssessmentByID").Msg("failed to build query")
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	assessment, err := scanAssessment(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Assessment{}, ErrAssessmentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "assessmentRepository.GetAssessmentByID").Str("assessment_id", id).Msg("failed to get assessment")
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return assessment, nil
}

func (r *assessmentRepository) ListAssessmentsByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectAssessments().
		Where(sq.Eq{"user_id": userID}).
		OrderBy(catalogOrder...).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "assessmentRepository.ListAssessmentsByUser").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "assessmentRepository.ListAssessmentsByUser").Str("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assessments := make([]models.Assessment, 0)
	for rows.Next() {
		assessment, scanErr := scanAssessment(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "assessmentRepository.ListAssessmentsByUser").Msg("failed to scan assessment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		assessments = append(assessments, assessment)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "assessmentRepository.ListAssessmentsByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assessments, nil
}

func scanAssessment(row rowScanner) (models.Assessment, error) {
	var (
		assessment models.Assessment
		scores     models.Scores
		hasScores  sql.NullString
	)

	err := row.Scan(
		&assessment.ID,
		&assessment.UserID,
		&assessment.PersonalityType,
		&assessment.Trait,
		&hasScores,
		asJSON(&assessment.Answers),
		asJSON(&assessment.RecommendedCareerIDs),
		&assessment.CompletedAt,
		&assessment.CreatedAt,
	)
	if err != nil {
		return models.Assessment{}, err
	}

	if hasScores.Valid && hasScores.String != "" {
		if err = asJSON(&scores).Scan(hasScores.String); err != nil {
			return models.Assessment{}, err
		}
		assessment.Scores = &scores
	}
	if assessment.RecommendedCareerIDs == nil {
		assessment.RecommendedCareerIDs = []string{}
	}

	return assessment, nil
}
