package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Jeffery-byte/AI-logo-generator/internal/models"
	"github.com/Jeffery-byte/AI-logo-generator/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeneration(id, style string) *models.LogoGeneration {
	return &models.LogoGeneration{
		ID:           id,
		BusinessName: "Acme Corp",
		Industry:     "technology",
		StyleType:    style,
		Colors:       []string{"#3b82f6", "#1e40af"},
		Prompt:       "a clean minimalist logo for Acme Corp",
		ImagePath:    id + ".png",
		Model:        "svg-template",
		GenerationMS: 250,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestPostgresLogoStore_Integration_SaveAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := services.NewPostgresLogoStore(tdb.DB)
	ctx := context.Background()

	gen := newGeneration("abc123_v1", "modern")
	require.NoError(t, store.SaveGeneration(ctx, gen))

	got, err := store.GetByID(ctx, gen.ID)
	require.NoError(t, err)
	assert.Equal(t, gen.BusinessName, got.BusinessName)
	assert.Equal(t, gen.Colors, got.Colors)
	assert.Equal(t, gen.Prompt, got.Prompt)

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrLogoNotFound)
}

func TestPostgresLogoStore_Integration_ListRecent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := services.NewPostgresLogoStore(tdb.DB)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		gen := newGeneration(fmt.Sprintf("logo%d_v1", i), "modern")
		gen.CreatedAt = gen.CreatedAt.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.SaveGeneration(ctx, gen))
	}

	gens, err := store.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, gens, 3)
	assert.Equal(t, "logo4_v1", gens[0].ID)
	assert.Equal(t, "logo3_v1", gens[1].ID)
}

func TestPostgresLogoStore_Integration_FeedbackAndStats(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := services.NewPostgresLogoStore(tdb.DB)
	ctx := context.Background()

	require.NoError(t, store.SaveGeneration(ctx, newGeneration("abc123_v1", "modern")))
	require.NoError(t, store.SaveGeneration(ctx, newGeneration("abc123_v2", "modern")))
	require.NoError(t, store.SaveGeneration(ctx, newGeneration("def456_v1", "vintage")))

	require.NoError(t, store.SaveFeedback(ctx, &models.LogoFeedback{
		ID:        uuid.New(),
		LogoID:    "abc123_v1",
		Rating:    5,
		Text:      "great",
		CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, store.SaveFeedback(ctx, &models.LogoFeedback{
		ID:        uuid.New(),
		LogoID:    "def456_v1",
		Rating:    3,
		CreatedAt: time.Now().UTC(),
	}))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalLogos)
	assert.InDelta(t, 250.0, stats.AverageGenerationMS, 0.001)
	assert.Equal(t, map[string]int64{"modern": 2, "vintage": 1}, stats.PopularStyles)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.001)
}

func TestPostgresLogoStore_Integration_FeedbackRatingConstraint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := services.NewPostgresLogoStore(tdb.DB)
	ctx := context.Background()

	require.NoError(t, store.SaveGeneration(ctx, newGeneration("abc123_v1", "modern")))

	err := store.SaveFeedback(ctx, &models.LogoFeedback{
		ID:        uuid.New(),
		LogoID:    "abc123_v1",
		Rating:    7,
		CreatedAt: time.Now().UTC(),
	})
	assert.Error(t, err)
}
