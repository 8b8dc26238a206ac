// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/models"
)

// careerRepository is the SQL implementation of [CareerRepository] backed
// by the "careers" table.
type careerRepository struct {
	*DB
	logger *logger.Logger
}

// NewCareerRepository constructs a [CareerRepository] backed by the
// provided database connection and logger.
func NewCareerRepository(db *DB, logger *logger.Logger) CareerRepository {
	logger.Debug().Msg("creating career repository")
	return &careerRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *careerRepository) CreateCareer(ctx context.Context, career models.Career) (models.Career, error) {
	log := logger.FromContext(ctx)

	values, err := careerValues(career)
	if err != nil {
		log.Err(err).Str("func", "careerRepository.CreateCareer").Msg("failed to encode career")
		return models.Career{}, err
	}

	query, args, err := r.builder.Insert("careers").
		Columns(careerColumns...).
		Values(values...).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "careerRepository.CreateCareer").Msg("failed to build query")
		return models.Career{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "careerRepository.CreateCareer").Str("title", career.Title).Msg("failed to insert career")
		return models.Career{}, r.statementError(err, ErrCareerTitleAlreadyExists)
	}

	return career.WithLists(), nil
}

func (r *careerRepository) GetCareerByID(ctx context.Context, id string) (models.Career, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectCareers().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "careerRepository.GetCareerByID").Msg("failed to build query")
		return models.Career{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	career, err := scanCareer(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Career{}, ErrCareerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "careerRepository.GetCareerByID").Str("career_id", id).Msg("failed to get career")
		return models.Career{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return career, nil
}

func (r *careerRepository) GetCareersByIDs(ctx context.Context, ids []string) ([]models.Career, error) {
	if len(ids) == 0 {
		return []models.Career{}, nil
	}

	found, err := r.queryCareers(ctx, "careerRepository.GetCareersByIDs", r.selectCareers().Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Career, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	careers := make([]models.Career, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			careers = append(careers, c)
		}
	}
	return careers, nil
}

func (r *careerRepository) ListCareers(ctx context.Context) ([]models.Career, error) {
	return r.queryCareers(ctx, "careerRepository.ListCareers", r.selectCareers().OrderBy(catalogOrder...))
}

// SearchCareersBySkill matches skills after decoding. The encoded list is
// escaped JSON, so a text match in SQL cannot fold case the way the memory
// backend does.
func (r *careerRepository) SearchCareersBySkill(ctx context.Context, skill string) ([]models.Career, error) {
	candidates, err := r.queryCareers(ctx, "careerRepository.SearchCareersBySkill", r.selectCareers().OrderBy(catalogOrder...))
	if err != nil {
		return nil, err
	}

	careers := make([]models.Career, 0, len(candidates))
	for _, c := range candidates {
		if hasSkill(c, skill) {
			careers = append(careers, c)
		}
	}
	return careers, nil
}

func (r *careerRepository) UpdateCareer(ctx context.Context, career models.Career) (models.Career, error) {
	log := logger.FromContext(ctx)

	values, err := careerValues(career)
	if err != nil {
		log.Err(err).Str("func", "careerRepository.UpdateCareer").Msg("failed to encode career")
		return models.Career{}, err
	}

	// id and created_at are immutable
	set := make(map[string]any, len(careerColumns))
	for i, column := range careerColumns {
		if column == "id" || column == "created_at" {
			continue
		}
		set[column] = values[i]
	}

	query, args, err := r.builder.Update("careers").
		SetMap(set).
		Where(sq.Eq{"id": career.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "careerRepository.UpdateCareer").Msg("failed to build query")
		return models.Career{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "careerRepository.UpdateCareer").Str("career_id", career.ID).Msg("failed to update career")
		return models.Career{}, r.statementError(err, ErrCareerTitleAlreadyExists)
	}

	if err = expectAffected(result, ErrCareerNotFound); err != nil {
		return models.Career{}, err
	}

	return career.WithLists(), nil
}

func (r *careerRepository) DeleteCareer(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Delete("careers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "careerRepository.DeleteCareer").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "careerRepository.DeleteCareer").Str("career_id", id).Msg("failed to delete career")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrCareerNotFound)
}

func (r *careerRepository) CountCareers(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select("COUNT(*)").From("careers").ToSql()
	if err != nil {
		log.Err(err).Str("func", "careerRepository.CountCareers").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "careerRepository.CountCareers").Msg("failed to count careers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *careerRepository) queryCareers(ctx context.Context, funcName string, builder sq.SelectBuilder) ([]models.Career, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.collectCareers(ctx, funcName, query, args)
}

func (r *careerRepository) collectCareers(ctx context.Context, funcName, query string, args []any) ([]models.Career, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	careers := make([]models.Career, 0)
	for rows.Next() {
		career, scanErr := scanCareer(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan career row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		careers = append(careers, career)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return careers, nil
}

// careerValues returns the column values of career in careerColumns order.
func careerValues(career models.Career) ([]any, error) {
	requirements, err := listValue(career.Requirements)
	if err != nil {
		return nil, err
	}
	skills, err := listValue(career.Skills)
	if err != nil {
		return nil, err
	}
	industries, err := listValue(career.Industries)
	if err != nil {
		return nil, err
	}

	return []any{
		career.ID,
		career.Title,
		career.Description,
		requirements,
		skills,
		industries,
		career.SalaryRange.Min,
		career.SalaryRange.Max,
		career.GrowthRate,
		career.EducationLevel,
		career.JobOutlook,
		career.CreatedAt,
		career.UpdatedAt,
	}, nil
}

func scanCareer(row rowScanner) (models.Career, error) {
	var career models.Career

	err := row.Scan(
		&career.ID,
		&career.Title,
		&career.Description,
		asJSON(&career.Requirements),
		asJSON(&career.Skills),
		asJSON(&career.Industries),
		&career.SalaryRange.Min,
		&career.SalaryRange.Max,
		&career.GrowthRate,
		&career.EducationLevel,
		&career.JobOutlook,
		&career.CreatedAt,
		&career.UpdatedAt,
	)
	if err != nil {
		return models.Career{}, err
	}

	return career, nil
}

// hasSkill reports whether skill is one of the career's skills, ignoring
// case and surrounding whitespace.
func hasSkill(career models.Career, skill string) bool {
	skill = strings.TrimSpace(skill)
	for _, s := range career.Skills {
		if strings.EqualFold(strings.TrimSpace(s), skill) {
			return true
		}
	}
	return false
}
