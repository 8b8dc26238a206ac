package personality

import (
	"testing"
	"time"

	"github.com/MKhiriev/career-compass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWithIDs() []models.Career {
	catalog := SeedCatalog()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range catalog {
		catalog[i].ID = catalog[i].Title
		catalog[i].CreatedAt = base.Add(time.Duration(i) * time.Second)
	}
	return catalog
}

func titles(careers []models.Career) []string {
	out := make([]string, 0, len(careers))
	for _, c := range careers {
		out = append(out, c.Title)
	}
	return out
}

func TestMatcher_ByTrait_CuratedOrder(t *testing.T) {
	m := NewMatcher()
	catalog := seedWithIDs()

	for _, trait := range Traits() {
		got := m.ByTrait(trait, catalog)
		assert.Equal(t, CuratedTitles(trait), titles(got), trait)
	}
}

func TestMatcher_ByTrait_SkipsMissingTitles(t *testing.T) {
	m := NewMatcher()
	catalog := []models.Career{
		{ID: "1", Title: "engineer"},
		{ID: "2", Title: "Data Scientist"},
		{ID: "3", Title: "Plumber"},
	}

	got := m.ByTrait(Analytical, catalog)
	assert.Equal(t, []string{"Data Scientist", "engineer"}, titles(got))
}

func TestMatcher_ByTrait_EmptyCatalog(t *testing.T) {
	got := NewMatcher().ByTrait(Creative, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatcher_ByProfile_Skills(t *testing.T) {
	m := NewMatcher()
	catalog := []models.Career{
		{ID: "1", Title: "A", Skills: []string{"cooking"}},
		{ID: "2", Title: "B", Skills: []string{"Programming"}, Industries: []string{"technology"}},
		{ID: "3", Title: "C", Skills: []string{"programming", "design"}},
		{ID: "4", Title: "D", Skills: []string{"design"}},
	}

	got := m.ByProfile("", []string{"programming", "DESIGN"}, catalog)
	assert.Equal(t, []string{"C", "B", "D"}, titles(got))
}

func TestMatcher_ByProfile_TypeCodeTags(t *testing.T) {
	m := NewMatcher()
	got := m.ByProfile("ODESN", nil, seedWithIDs())

	require.Len(t, got, MaxRecommendations)
	// O: creativity/design/research/innovation, D: media/..., N: art/storytelling/creativity
	assert.Contains(t, titles(got), "Graphic Designer")
	assert.Contains(t, titles(got), "Writer/Author")
}

func TestMatcher_ByProfile_NoSignalFallsBackToCatalogOrder(t *testing.T) {
	m := NewMatcher()
	catalog := seedWithIDs()

	got := m.ByProfile("", []string{"underwater basket weaving"}, catalog)
	assert.Equal(t, titles(catalog[:MaxRecommendations]), titles(got))

	got = m.ByProfile("", nil, catalog[:2])
	assert.Equal(t, titles(catalog[:2]), titles(got))
}

func TestMatcher_ByProfile_TiesKeepCatalogOrder(t *testing.T) {
	m := NewMatcher()
	catalog := []models.Career{
		{ID: "1", Title: "first", Skills: []string{"x"}},
		{ID: "2", Title: "second", Skills: []string{"x"}},
		{ID: "3", Title: "third", Skills: []string{"x", "y"}},
	}

	got := m.ByProfile("", []string{"x", "y"}, catalog)
	assert.Equal(t, []string{"third", "first", "second"}, titles(got))
}

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher()
	catalog := seedWithIDs()

	t.Run("trait wins over skills", func(t *testing.T) {
		got, err := m.Match(models.RecommendationRequest{Trait: "leadership", Skills: []string{"programming"}}, catalog)
		require.NoError(t, err)
		assert.Equal(t, CuratedTitles(Leadership), titles(got))
	})

	t.Run("lower-case type code", func(t *testing.T) {
		got, err := m.Match(models.RecommendationRequest{TypeCode: "cdiss"}, catalog)
		require.NoError(t, err)
		assert.Len(t, got, MaxRecommendations)
	})

	t.Run("empty request", func(t *testing.T) {
		got, err := m.Match(models.RecommendationRequest{}, catalog)
		require.NoError(t, err)
		assert.Equal(t, titles(catalog[:MaxRecommendations]), titles(got))
	})

	t.Run("unknown trait", func(t *testing.T) {
		_, err := m.Match(models.RecommendationRequest{Trait: "Sporty"}, catalog)
		assert.ErrorIs(t, err, ErrUnknownTrait)
	})

	t.Run("bad type code", func(t *testing.T) {
		_, err := m.Match(models.RecommendationRequest{TypeCode: "XYZ"}, catalog)
		assert.ErrorIs(t, err, ErrInvalidTypeCode)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestMatcher_NeverExceedsLimit(t *testing.T) {
	m := NewMatcher()
	catalog := seedWithIDs()
	catalog = append(catalog, catalog...)

	got := m.ByProfile("OCEAN", []string{"programming", "design", "leadership"}, catalog)
	assert.LessOrEqual(t, len(got), MaxRecommendations)
}

func TestSeedCatalog_CoversCuratedTitles(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range SeedCatalog() {
		assert.False(t, seen[c.Title], "duplicate title %q", c.Title)
		seen[c.Title] = true
		assert.True(t, c.SalaryRange.Valid(), c.Title)
		assert.NotEmpty(t, c.Skills, c.Title)
	}
	for _, trait := range Traits() {
		for _, title := range CuratedTitles(trait) {
			assert.True(t, seen[title], title)
		}
	}
}
