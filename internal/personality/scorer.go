// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package personality

import (
	"fmt"
	"math"

	"github.com/MKhiriev/career-compass/models"
)

// threshold separates the high and the low letter of a dimension. A score
// equal to the threshold maps to the low letter.
const threshold = 50

const (
	minScore = 0
	maxScore = 100
)

// TypeCodeLength is the length of every type code produced by [Score].
const TypeCodeLength = 5

type dimension struct {
	name      string
	high, low byte
	value     func(*models.Scores) *float64
}

// dimensions lists the five dimensions in type-code order.
var dimensions = [TypeCodeLength]dimension{
	{"openness", 'O', 'C', func(s *models.Scores) *float64 { return s.Openness }},
	{"conscientiousness", 'C', 'D', func(s *models.Scores) *float64 { return s.Conscientiousness }},
	{"extraversion", 'E', 'I', func(s *models.Scores) *float64 { return s.Extraversion }},
	{"agreeableness", 'A', 'S', func(s *models.Scores) *float64 { return s.Agreeableness }},
	{"neuroticism", 'N', 'S', func(s *models.Scores) *float64 { return s.Neuroticism }},
}

// ValidateScores checks that every dimension is present and lies in
// [0,100].
func ValidateScores(scores *models.Scores) error {
	if scores == nil {
		return ErrNoScores
	}

	for _, d := range dimensions {
		v := d.value(scores)
		if v == nil {
			return fmt.Errorf("%w: %s", ErrMissingScore, d.name)
		}
		if math.IsNaN(*v) || *v < minScore || *v > maxScore {
			return fmt.Errorf("%w: %s = %v", ErrScoreOutOfRange, d.name, *v)
		}
	}

	return nil
}

// Score converts a five-dimension submission into its type code.
//
// For each dimension a score strictly greater than 50 selects the high
// letter and anything else the low letter: O/C, C/D, E/I, A/S, N/S.
// The letters are concatenated in dimension order.
func Score(scores *models.Scores) (string, error) {
	if err := ValidateScores(scores); err != nil {
		return "", err
	}

	code := make([]byte, 0, TypeCodeLength)
	for _, d := range dimensions {
		if *d.value(scores) > threshold {
			code = append(code, d.high)
		} else {
			code = append(code, d.low)
		}
	}

	return string(code), nil
}

// ValidTypeCode reports whether code is a well-formed type code: five
// letters, the i-th drawn from the letter pair of dimension i.
func ValidTypeCode(code string) bool {
	if len(code) != TypeCodeLength {
		return false
	}
	for i, d := range dimensions {
		if code[i] != d.high && code[i] != d.low {
			return false
		}
	}
	return true
}
