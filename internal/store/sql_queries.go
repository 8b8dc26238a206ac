// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{
		"id", "name", "email", "password_hash", "phone", "class", "section",
		"student_id", "role", "created_at", "updated_at",
	}

	careerColumns = []string{
		"id", "title", "description", "requirements", "skills", "industries",
		"salary_min", "salary_max", "growth_rate", "education_level", "job_outlook",
		"created_at", "updated_at",
	}

	assessmentColumns = []string{
		"id", "user_id", "personality_type", "trait", "scores", "answers",
		"recommended_career_ids", "completed_at", "created_at",
	}
)

// catalogOrder is the ordering of every catalog listing.
var catalogOrder = []string{"created_at", "id"}

func (db *DB) selectUsers() sq.SelectBuilder {
	return db.builder.Select(userColumns...).From("users")
}

func (db *DB) selectCareers() sq.SelectBuilder {
	return db.builder.Select(careerColumns...).From("careers")
}

func (db *DB) selectAssessments() sq.SelectBuilder {
	return db.builder.Select(assessmentColumns...).From("assessments")
}
