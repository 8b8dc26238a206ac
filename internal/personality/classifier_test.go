package personality

import (
	"testing"

	"github.com/MKhiriev/career-compass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   Trait
	}{
		{
			name:   "single label",
			labels: []string{"Creative"},
			want:   Creative,
		},
		{
			name:   "clear majority",
			labels: []string{"Analytical", "Creative", "Analytical", "Technical"},
			want:   Analytical,
		},
		{
			name:   "majority at the end",
			labels: []string{"Leadership", "Technical", "Technical", "Technical"},
			want:   Technical,
		},
		{
			name:   "tie resolved by enumeration order",
			labels: []string{"Technical", "Creative", "Technical", "Creative"},
			want:   Creative,
		},
		{
			name:   "four-way tie",
			labels: []string{"Technical", "Leadership", "Creative", "Analytical"},
			want:   Analytical,
		},
		{
			name:   "labels are case and space insensitive",
			labels: []string{" leadership", "LEADERSHIP ", "analytical"},
			want:   Leadership,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.labels)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_TieIgnoresAnswerOrder(t *testing.T) {
	a, err := Classify([]string{"Leadership", "Creative"})
	require.NoError(t, err)
	b, err := Classify([]string{"Creative", "Leadership"})
	require.NoError(t, err)

	assert.Equal(t, Creative, a)
	assert.Equal(t, a, b)
}

func TestClassify_Errors(t *testing.T) {
	_, err := Classify(nil)
	assert.ErrorIs(t, err, ErrNoAnswers)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = Classify([]string{})
	assert.ErrorIs(t, err, ErrNoAnswers)

	_, err = Classify([]string{"Analytical", "Sporty"})
	assert.ErrorIs(t, err, ErrUnknownTrait)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Sporty")
}

func TestParseTrait(t *testing.T) {
	got, err := ParseTrait("technical")
	require.NoError(t, err)
	assert.Equal(t, Technical, got)

	_, err = ParseTrait("")
	assert.ErrorIs(t, err, ErrUnknownTrait)
}

func TestDescribe(t *testing.T) {
	for _, trait := range Traits() {
		assert.NotEmpty(t, Describe(trait), trait)
	}
	assert.Empty(t, Describe("Unknown"))
}
