package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripora/portal/backend/internal/domain"
	"github.com/tripora/portal/backend/internal/repo"
)

func TestHeroSlideRepo_CreateAndList_OrderedBySortOrder(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewHeroSlideRepo(tx)
	ctx := context.Background()

	second := domain.HeroSlide{Title: "Monsoon Magic", Image: "https://img.example.com/monsoon.jpg", Order: 2}
	first := domain.HeroSlide{Title: "Hill Stations", Image: "https://img.example.com/hills.jpg", Order: 1}

	_, err := r.Create(ctx, second)
	require.NoError(t, err)
	_, err = r.Create(ctx, first)
	require.NoError(t, err)

	slides, err := r.List(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(slides), 2)
	// Insert order was reversed; the sort order column wins.
	assert.Equal(t, "Hill Stations", slides[0].Title)
	assert.Equal(t, "Monsoon Magic", slides[1].Title)
}

func TestHeroSlideRepo_Update(t *testing.T) {
	r := repo.NewHeroSlideRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, domain.HeroSlide{Title: "Old Title", Image: "https://img.example.com/a.jpg"})
	require.NoError(t, err)

	created.Title = "New Title"
	created.Subtitle = "Now with a subtitle"

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Now with a subtitle", updated.Subtitle)
}

func TestHeroSlideRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewHeroSlideRepo(newTestTx(t))

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceRepo_CreateAndGet(t *testing.T) {
	r := repo.NewPlaceRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, domain.Place{
		Name:        "Munnar",
		Image:       "https://img.example.com/munnar.jpg",
		Description: "Tea gardens in the Western Ghats.",
		Order:       1,
	})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, "Munnar", got.Name)
	assert.Equal(t, created.ID, got.ID)
}

// Region sections store their sub-places as a jsonb document, so the nested
// list must survive the round-trip intact.
func TestRegionRepo_CreateRoundTripsPlaces(t *testing.T) {
	r := repo.NewRegionRepo(newTestTx(t))
	ctx := context.Background()

	input := domain.RegionSection{
		Title: "North Kerala",
		Image: "https://img.example.com/north.jpg",
		Places: []domain.RegionPlace{
			{Name: "Wayanad", Desc: "Misty hills and wildlife."},
			{Name: "Bekal", Desc: "Fort by the sea."},
		},
		Order: 1,
	}

	created, err := r.Create(ctx, input)
	require.NoError(t, err)
	require.Len(t, created.Places, 2)
	assert.Equal(t, "Wayanad", created.Places[0].Name)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Places, got.Places)
}

func TestRegionRepo_Update_NotFound(t *testing.T) {
	r := repo.NewRegionRepo(newTestTx(t))

	_, err := r.Update(context.Background(), domain.RegionSection{ID: uuid.New(), Title: "Ghost"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
