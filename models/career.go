// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SalaryRange is the expected yearly salary span of a career.
// A valid range has 0 <= Min <= Max.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Valid reports whether the range satisfies 0 <= Min <= Max.
func (s SalaryRange) Valid() bool {
	return s.Min >= 0 && s.Max >= 0 && s.Min <= s.Max
}

// Career is an entry of the career catalog.
type Career struct {
	// ID is the unique identifier of the career (UUID v7).
	ID string `json:"id"`

	// Title is unique across the catalog (case-insensitive).
	Title string `json:"title"`

	Description    string      `json:"description"`
	Requirements   []string    `json:"requirements"`
	Skills         []string    `json:"skills"`
	Industries     []string    `json:"industries"`
	SalaryRange    SalaryRange `json:"salary_range"`
	GrowthRate     float64     `json:"growth_rate"`
	EducationLevel string      `json:"education_level,omitempty"`
	JobOutlook     string      `json:"job_outlook,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Career model.
func (c Career) TableName() string {
	return "careers"
}

// WithLists returns c with nil lists replaced by empty ones, so that a
// career serializes the same way whichever backend stored it.
func (c Career) WithLists() Career {
	if c.Requirements == nil {
		c.Requirements = []string{}
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.Industries == nil {
		c.Industries = []string{}
	}
	return c
}

// CareerUpdate describes a partial update of a catalog entry.
// Only non-nil fields are applied.
type CareerUpdate struct {
	Title          *string      `json:"title,omitempty"`
	Description    *string      `json:"description,omitempty"`
	Requirements   *[]string    `json:"requirements,omitempty"`
	Skills         *[]string    `json:"skills,omitempty"`
	Industries     *[]string    `json:"industries,omitempty"`
	SalaryRange    *SalaryRange `json:"salary_range,omitempty"`
	GrowthRate     *float64     `json:"growth_rate,omitempty"`
	EducationLevel *string      `json:"education_level,omitempty"`
	JobOutlook     *string      `json:"job_outlook,omitempty"`
}

// Apply returns a copy of career with the fields of u applied.
func (u CareerUpdate) Apply(career Career) Career {
	if u.Title != nil {
		career.Title = *u.Title
	}
	if u.Description != nil {
		career.Description = *u.Description
	}
	if u.Requirements != nil {
		career.Requirements = *u.Requirements
	}
	if u.Skills != nil {
		career.Skills = *u.Skills
	}
	if u.Industries != nil {
		career.Industries = *u.Industries
	}
	if u.SalaryRange != nil {
		career.SalaryRange = *u.SalaryRange
	}
	if u.GrowthRate != nil {
		career.GrowthRate = *u.GrowthRate
	}
	if u.EducationLevel != nil {
		career.EducationLevel = *u.EducationLevel
	}
	if u.JobOutlook != nil {
		career.JobOutlook = *u.JobOutlook
	}
	return career
}
