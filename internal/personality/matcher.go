// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package personality

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/career-compass/models"
)

// MaxRecommendations bounds the number of careers returned by [Matcher].
const MaxRecommendations = 5

const (
	// skillWeight is the relevance contributed by a tag the caller asked
	// for explicitly.
	skillWeight = 2
	// profileWeight is the relevance contributed by a tag implied by a
	// type-code letter.
	profileWeight = 1
)

// Matcher ranks catalog careers for a classification.
//
// The catalog passed to every method must already be in catalog order
// (creation time, then id); Matcher never reorders ties.
type Matcher struct {
	curated map[Trait][]string
	tags    [TypeCodeLength]map[byte][]string
	limit   int
}

// NewMatcher returns a Matcher backed by the built-in curated trait table
// and interest tags.
func NewMatcher() *Matcher {
	return &Matcher{
		curated: curatedTitles,
		tags:    letterTags,
		limit:   MaxRecommendations,
	}
}

// Match dispatches req to the trait path when a trait is set, otherwise to
// the profile path. An empty request yields the head of the catalog.
func (m *Matcher) Match(req models.RecommendationRequest, catalog []models.Career) ([]models.Career, error) {
	if strings.TrimSpace(req.Trait) != "" {
		trait, err := ParseTrait(req.Trait)
		if err != nil {
			return nil, err
		}
		return m.ByTrait(trait, catalog), nil
	}

	code := strings.ToUpper(strings.TrimSpace(req.TypeCode))
	if code != "" && !ValidTypeCode(code) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTypeCode, req.TypeCode)
	}

	return m.ByProfile(code, req.Skills, catalog), nil
}

// ByTrait returns the curated careers of trait that are present in catalog,
// in curated order. Titles are compared case-insensitively.
func (m *Matcher) ByTrait(trait Trait, catalog []models.Career) []models.Career {
	byTitle := make(map[string]models.Career, len(catalog))
	for _, c := range catalog {
		key := normalize(c.Title)
		if _, seen := byTitle[key]; !seen {
			byTitle[key] = c
		}
	}

	result := make([]models.Career, 0, m.limit)
	for _, title := range m.curated[trait] {
		if c, ok := byTitle[normalize(title)]; ok {
			result = append(result, c)
		}
		if len(result) == m.limit {
			break
		}
	}
	return result
}

// ByProfile ranks catalog careers by how many of their skills and
// industries match the requested skills and the interest tags implied by
// typeCode. typeCode may be empty; when set it must be valid.
//
// Careers are ordered by relevance, highest first, keeping catalog order
// for equal relevance. When nothing matches the head of the catalog is
// returned.
func (m *Matcher) ByProfile(typeCode string, skills []string, catalog []models.Career) []models.Career {
	weights := m.weights(typeCode, skills)

	type ranked struct {
		career models.Career
		score  int
	}

	scored := make([]ranked, 0, len(catalog))
	for _, c := range catalog {
		if s := relevance(c, weights); s > 0 {
			scored = append(scored, ranked{career: c, score: s})
		}
	}

	if len(scored) == 0 {
		return head(catalog, m.limit)
	}

	slices.SortStableFunc(scored, func(a, b ranked) int {
		return b.score - a.score
	})

	result := make([]models.Career, 0, min(len(scored), m.limit))
	for _, r := range scored[:min(len(scored), m.limit)] {
		result = append(result, r.career)
	}
	return result
}

// weights collects the tag set of a query. A tag present both as a skill
// and as a profile tag keeps the higher weight.
func (m *Matcher) weights(typeCode string, skills []string) map[string]int {
	weights := make(map[string]int)
	put := func(tag string, w int) {
		tag = normalize(tag)
		if tag == "" {
			return
		}
		if w > weights[tag] {
			weights[tag] = w
		}
	}

	for _, s := range skills {
		put(s, skillWeight)
	}

	if ValidTypeCode(typeCode) {
		for i := 0; i < TypeCodeLength; i++ {
			for _, tag := range m.tags[i][typeCode[i]] {
				put(tag, profileWeight)
			}
		}
	}

	return weights
}

// relevance sums the weights of the distinct tags found among the skills
// and industries of c.
func relevance(c models.Career, weights map[string]int) int {
	if len(weights) == 0 {
		return 0
	}

	matched := make(map[string]struct{})
	score := 0
	for _, list := range [][]string{c.Skills, c.Industries} {
		for _, v := range list {
			key := normalize(v)
			w, ok := weights[key]
			if !ok {
				continue
			}
			if _, dup := matched[key]; dup {
				continue
			}
			matched[key] = struct{}{}
			score += w
		}
	}
	return score
}

func head(catalog []models.Career, n int) []models.Career {
	return append(make([]models.Career, 0, n), catalog[:min(len(catalog), n)]...)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
