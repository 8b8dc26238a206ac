package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/internal/mock"
	"github.com/MKhiriev/career-compass/internal/store"
	"github.com/MKhiriev/career-compass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCareerService(t *testing.T) (*careerService, *mock.MockCareerRepository, *mock.MockAssessmentRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	careers := mock.NewMockCareerRepository(ctrl)
	assessments := mock.NewMockAssessmentRepository(ctrl)

	svc := NewCareerService(careers, assessments, logger.Nop()).(*careerService)
	svc.ids = fixedIDs{"c-new"}
	svc.now = clock

	return svc, careers, assessments
}

func testCatalog() []models.Career {
	return []models.Career{
		career("c-1", "Data Scientist", "statistics", "programming"),
		career("c-2", "Graphic Designer", "design", "creativity"),
		career("c-3", "Software Engineer", "programming", "engineering"),
		career("c-4", "Teacher/Professor", "teaching", "communication"),
	}
}

// ─────────────────────────────────────────────
// Catalog writes
// ─────────────────────────────────────────────

func TestCareerService_Create_RequiresAdmin(t *testing.T) {
	svc, _, _ := newTestCareerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Identity{}, career("", "Pilot"))
	assert.ErrorIs(t, err, ErrNoIdentity)

	_, err = svc.Create(ctx, studentIdentity, career("", "Pilot"))
	assert.ErrorIs(t, err, ErrAdminOnly)
	assert.Equal(t, models.KindForbidden, models.KindOf(err))
}

func TestCareerService_Create_AssignsIDAndTimestamps(t *testing.T) {
	svc, careers, _ := newTestCareerService(t)
	ctx := context.Background()

	careers.EXPECT().CreateCareer(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Career) (models.Career, error) {
			assert.Equal(t, "c-new", c.ID)
			assert.Equal(t, "Pilot", c.Title)
			assert.Equal(t, fixedNow, c.CreatedAt)
			assert.Equal(t, fixedNow, c.UpdatedAt)
			return c, nil
		})

	created, err := svc.Create(ctx, adminIdentity, career("ignored", "  Pilot "))
	require.NoError(t, err)
	assert.Equal(t, "c-new", created.ID)
}

func TestCareerService_Create_TitleConflict(t *testing.T) {
	svc, careers, _ := newTestCareerService(t)
	ctx := context.Background()

	careers.EXPECT().CreateCareer(ctx, gomock.Any()).Return(models.Career{}, store.ErrCareerTitleAlreadyExists)

	_, err := svc.Create(ctx, adminIdentity, career("", "Data Scientist"))
	assert.Equal(t, models.KindConflict, models.KindOf(err))
}

func TestCareerService_Update(t *testing.T) {
	svc, careers, _ := newTestCareerService(t)
	ctx := context.Background()

	existing := career("c-1", "Data Scientist", "statistics")
	title := "Data Engineer"

	careers.EXPECT().GetCareerByID(ctx, "c-1").Return(existing, nil)
	careers.EXPECT().UpdateCareer(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Career) (models.Career, error) {
			assert.Equal(t, "Data Engineer", c.Title)
			assert.Equal(t, existing.Description, c.Description)
			return c, nil
		})

	updated, err := svc.Update(ctx, adminIdentity, "c-1", models.CareerUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", updated.Title)
}

func TestCareerService_Update_SalaryCheckedOnMergedRecord(t *testing.T) {
	svc, careers, _ := newTestCareerService(t)
	ctx := context.Background()

	careers.EXPECT().GetCareerByID(ctx, "c-1").Return(career("c-1", "Data Scientist"), nil)

	// existing Min is 100
	_, err := svc.Update(ctx, adminIdentity, "c-1", models.CareerUpdate{
		SalaryRange: &models.SalaryRange{Min: 300, Max: 250},
	})
	assert.ErrorIs(t, err, ErrInvalidSalaryRange)
}

func TestCareerService_Update_NotFound(t *testing.T) {
	svc, careers, _ := newTestCareerService(t)
	ctx := context.Background()

	careers.EXPECT().GetCareerByID(ctx, "missing").Return(models.Career{}, store.ErrCareerNotFound)

	title := "x"
	_, err := svc.Update(ctx, adminIdentity, "missing", models.CareerUpdate{Title: &title})
	assert.ErrorIs(t, err, store.ErrCareerNotFound)
}

func TestCareerService_Delete(t *testing.T) {
	svc, careers, _ := newTestCareerService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, studentIdentity, "c-1"), ErrAdminOnly)

	careers.EXPECT().DeleteCareer(ctx, "c-1").Return(nil)
	assert.NoError(t, svc.Delete(ctx, adminIdentity, "c-1"))
}

// ─────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────

func TestCareerService_SearchBySkill_TrimsTerm(t *testing.T) {
	svc, careers, _ := newTestCareerService(t)
	ctx := context.Background()

	careers.EXPECT().SearchCareersBySkill(ctx, "programming").Return(testCatalog()[:1], nil)

	found, err := svc.SearchBySkill(ctx, "  programming ")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

// ─────────────────────────────────────────────
// Recommend
// ─────────────────────────────────────────────

func TestCareerService_Recommend_RequiresIdentity(t *testing.T) {
	svc, _, _ := newTestCareerService(t)

	_, err := svc.Recommend(context.Background(), models.Identity{}, models.RecommendationRequest{Trait: "Creative"})
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestCareerService_Recommend_ByTrait(t *testing.T) {
	svc, careers, _ := newTestCareerService(t)
	ctx := context.Background()

	careers.EXPECT().ListCareers(ctx).Return(testCatalog(), nil)

	got, err := svc.Recommend(ctx, studentIdentity, models.RecommendationRequest{Trait: "creative"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Graphic Designer", got[0].Title)
}

func TestCareerService_Recommend_EmptyUsesLatestAssessment(t *testing.T) {
	svc, careers, assessments := newTestCareerService(t)
	ctx := context.Background()

	assessments.EXPECT().ListAssessmentsByUser(ctx, "u-1").Return([]models.Assessment{
		{ID: "a-1", Trait: "Creative"},
		{ID: "a-2", Trait: "Technical"},
	}, nil)
	careers.EXPECT().ListCareers(ctx).Return(testCatalog(), nil)

	got, err := svc.Recommend(ctx, studentIdentity, models.RecommendationRequest{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Software Engineer", got[0].Title)
}

func TestCareerService_Recommend_EmptyWithoutHistoryReturnsCatalogHead(t *testing.T) {
	svc, careers, assessments := newTestCareerService(t)
	ctx := context.Background()

	assessments.EXPECT().ListAssessmentsByUser(ctx, "u-1").Return(nil, nil)
	careers.EXPECT().ListCareers(ctx).Return(testCatalog(), nil)

	got, err := svc.Recommend(ctx, studentIdentity, models.RecommendationRequest{})
	require.NoError(t, err)
	assert.Equal(t, testCatalog(), got)
}

func TestCareerService_Recommend_StorageError(t *testing.T) {
	svc, careers, _ := newTestCareerService(t)
	ctx := context.Background()

	careers.EXPECT().ListCareers(ctx).Return(nil, store.ErrExecutingQuery)

	_, err := svc.Recommend(ctx, studentIdentity, models.RecommendationRequest{Skills: []string{"design"}})
	assert.Equal(t, models.KindPersistence, models.KindOf(err))
}
