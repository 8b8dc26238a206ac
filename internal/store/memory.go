// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/career-compass/models"
)

// memoryStore is the volatile backend used when the durable store cannot be
// reached. It enforces the same uniqueness rules and cascades as the SQL
// schema. All repositories of one process share a single instance.
type memoryStore struct {
	mu sync.RWMutex

	users       map[string]models.User
	careers     map[string]models.Career
	assessments map[string]models.Assessment
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:       make(map[string]models.User),
		careers:     make(map[string]models.Career),
		assessments: make(map[string]models.Assessment),
	}
}

// userConflict reports the uniqueness rule user would break. The caller
// holds the lock.
func (s *memoryStore) userConflict(user models.User) error {
	for id, existing := range s.users {
		if id == user.ID {
			continue
		}
		if existing.Email == user.Email {
			return ErrEmailAlreadyExists
		}
		if user.StudentID != "" && existing.StudentID == user.StudentID {
			return ErrStudentIDAlreadyExists
		}
	}
	return nil
}

// careerConflict reports whether another career already uses the title.
// The caller holds the lock.
func (s *memoryStore) careerConflict(career models.Career) error {
	for id, existing := range s.careers {
		if id != career.ID && strings.EqualFold(existing.Title, career.Title) {
			return ErrCareerTitleAlreadyExists
		}
	}
	return nil
}

// inCatalogOrder sorts by creation time, then id.
func inCatalogOrder[T any](items []T, key func(T) (int64, string)) []T {
	slices.SortStableFunc(items, func(a, b T) int {
		at, aid := key(a)
		bt, bid := key(b)
		switch {
		case at < bt:
			return -1
		case at > bt:
			return 1
		}
		return strings.Compare(aid, bid)
	})
	return items
}

func cloneCareer(c models.Career) models.Career {
	c.Requirements = slices.Clone(c.Requirements)
	c.Skills = slices.Clone(c.Skills)
	c.Industries = slices.Clone(c.Industries)
	return c.WithLists()
}

func cloneAssessment(a models.Assessment) models.Assessment {
	if a.Scores != nil {
		scores := *a.Scores
		a.Scores = &scores
	}
	a.Answers = slices.Clone(a.Answers)
	a.RecommendedCareerIDs = slices.Clone(a.RecommendedCareerIDs)
	if a.RecommendedCareerIDs == nil {
		a.RecommendedCareerIDs = []string{}
	}
	a.RecommendedCareers = nil
	return a
}
