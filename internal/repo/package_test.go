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

// packageFixture returns a domain.TripPackage with sensible defaults for use
// in tests. Callers can override individual fields after calling this function.
func packageFixture() domain.TripPackage {
	return domain.TripPackage{
		Title:       "Backwater Escape",
		Image:       "https://img.example.com/backwater.jpg",
		Description: "Three days on the Alleppey backwaters.",
		Price:       "12999",
		Duration:    "3 Days / 2 Nights",
		Location:    "Alleppey",
		Category:    domain.CategoryPopular,
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival", Desc: "Check in to the houseboat."},
			{Day: 2, Title: "Cruise", Desc: "Full-day backwater cruise."},
		},
		Inclusions: []string{"Houseboat stay", "All meals"},
		Exclusions: []string{"Travel to Alleppey"},
		Features:   []string{},
	}
}

func TestPackageRepo_Create(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))
	ctx := context.Background()

	input := packageFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Title, got.Title)
	assert.Equal(t, input.Category, got.Category)
	assert.Equal(t, input.Itinerary, got.Itinerary)
	assert.Equal(t, input.Inclusions, got.Inclusions)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

// Empty list fields must survive the round-trip as empty slices, not null —
// API clients iterate these without nil checks.
func TestPackageRepo_Create_EmptyListsStayEmpty(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))
	ctx := context.Background()

	input := packageFixture()
	input.Itinerary = nil
	input.Inclusions = nil
	input.Exclusions = nil
	input.Features = nil

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, got.Itinerary)
	assert.Empty(t, got.Itinerary)
	assert.NotNil(t, got.Inclusions)
	assert.NotNil(t, got.Exclusions)
	assert.NotNil(t, got.Features)
}

func TestPackageRepo_GetByID(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, packageFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Itinerary, got.Itinerary)
}

func TestPackageRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageRepo_List_NewestFirst(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))
	ctx := context.Background()

	first := packageFixture()
	first.Title = "First Package"
	second := packageFixture()
	second.Title = "Second Package"
	second.Category = domain.CategoryNefertity

	_, err := r.Create(ctx, first)
	require.NoError(t, err)
	_, err = r.Create(ctx, second)
	require.NoError(t, err)

	pkgs, err := r.List(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(pkgs), 2)

	var titles []string
	for _, p := range pkgs {
		titles = append(titles, p.Title)
	}
	assert.Contains(t, titles, "First Package")
	assert.Contains(t, titles, "Second Package")
}

func TestPackageRepo_Update(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, packageFixture())
	require.NoError(t, err)

	created.Title = "Backwater Deluxe"
	created.Price = "15999"
	created.Itinerary = append(created.Itinerary, domain.ItineraryDay{
		Day: 3, Title: "Departure", Desc: "Check out after breakfast.",
	})

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Backwater Deluxe", updated.Title)
	assert.Equal(t, "15999", updated.Price)
	require.Len(t, updated.Itinerary, 3)
	assert.Equal(t, "Departure", updated.Itinerary[2].Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestPackageRepo_Update_NotFound(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))

	missing := packageFixture()
	missing.ID = uuid.New()

	_, err := r.Update(context.Background(), missing)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageRepo_Delete(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, packageFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Educational fields only carry values for school-trip packages, but the
// columns always round-trip whatever is stored.
func TestPackageRepo_EducationalFields(t *testing.T) {
	r := repo.NewPackageRepo(newTestTx(t))
	ctx := context.Background()

	input := packageFixture()
	input.Category = domain.CategorySchoolTrips
	input.EducationalFocus = domain.FocusScience
	input.GroupSize = "30-40 students"
	input.AgeGroup = "12-15"
	input.Inclusions = []string{"science"}

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, domain.FocusScience, got.EducationalFocus)
	assert.Equal(t, "30-40 students", got.GroupSize)
	assert.Equal(t, "12-15", got.AgeGroup)
}
