// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Scores is a five-dimension personality submission. Every dimension is
// required and must lie in [0,100]; pointers distinguish a missing value
// from an explicit zero.
type Scores struct {
	Openness          *float64 `json:"openness"`
	Conscientiousness *float64 `json:"conscientiousness"`
	Extraversion      *float64 `json:"extraversion"`
	Agreeableness     *float64 `json:"agreeableness"`
	Neuroticism       *float64 `json:"neuroticism"`
}

// NewScores builds a fully populated [Scores] value.
func NewScores(openness, conscientiousness, extraversion, agreeableness, neuroticism float64) *Scores {
	return &Scores{
		Openness:          &openness,
		Conscientiousness: &conscientiousness,
		Extraversion:      &extraversion,
		Agreeableness:     &agreeableness,
		Neuroticism:       &neuroticism,
	}
}

// Answer is a single questionnaire answer. On the wire it is accepted either
// as a bare trait label ("Analytical") or as an object
// {"question_id": "1", "answer": "Analytical"}.
type Answer struct {
	QuestionID string `json:"question_id,omitempty"`
	Answer     string `json:"answer"`
}

// UnmarshalJSON implements [json.Unmarshaler] for both accepted forms.
func (a *Answer) UnmarshalJSON(b []byte) error {
	if len(bytes.TrimSpace(b)) > 0 && bytes.TrimSpace(b)[0] == '"' {
		var label string
		if err := json.Unmarshal(b, &label); err != nil {
			return err
		}
		*a = Answer{Answer: label}
		return nil
	}

	type plain Answer
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*a = Answer(p)
	return nil
}

// Labels returns the answer values in submission order.
func Labels(answers []Answer) []string {
	labels := make([]string, 0, len(answers))
	for _, a := range answers {
		labels = append(labels, a.Answer)
	}
	return labels
}

// Assessment is the immutable result of a questionnaire submission.
type Assessment struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// PersonalityType is the five-letter type code computed from Scores.
	PersonalityType string `json:"personality_type,omitempty"`

	// Trait is the dominant trait label computed from Answers.
	Trait string `json:"trait,omitempty"`

	// Description is a human-readable summary of Trait. It is derived on
	// read and never stored.
	Description string `json:"description,omitempty"`

	Scores  *Scores  `json:"scores,omitempty"`
	Answers []Answer `json:"answers,omitempty"`

	// RecommendedCareerIDs is the stored, ordered list of recommended
	// catalog entries (at most five).
	RecommendedCareerIDs []string `json:"recommended_career_ids"`

	// RecommendedCareers is the populated view of RecommendedCareerIDs.
	// Entries removed from the catalog after creation are omitted.
	RecommendedCareers []Career `json:"recommended_careers"`

	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Assessment model.
func (a Assessment) TableName() string {
	return "assessments"
}

// Classification returns the single classification of the assessment: the
// type code when present, otherwise the trait label.
func (a Assessment) Classification() string {
	if a.PersonalityType != "" {
		return a.PersonalityType
	}
	return a.Trait
}

// SubmitAssessmentRequest is the payload of POST /assessments.
type SubmitAssessmentRequest struct {
	Scores  *Scores  `json:"scores,omitempty"`
	Answers []Answer `json:"answers,omitempty"`
}

// RecommendationRequest drives the career matcher for personalized queries.
type RecommendationRequest struct {
	Trait    string   `json:"trait,omitempty"`
	TypeCode string   `json:"type,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

// IsEmpty reports whether no matching signal was provided.
func (r RecommendationRequest) IsEmpty() bool {
	return r.Trait == "" && r.TypeCode == "" && len(r.Skills) == 0
}
