package forms_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripora/portal/backend/internal/domain"
	"github.com/tripora/portal/backend/internal/forms"
)

// cruisePackage returns a stored nefertity record for edit-mode tests.
func cruisePackage() domain.TripPackage {
	pkg, _ := forms.BuildRecord(validShared(), forms.Cruise{Features: []string{"Dinner"}, Popular: true})
	pkg.ID = uuid.New()
	return pkg
}

func TestSession_StartsBrowsing(t *testing.T) {
	s := forms.NewSession()

	assert.Equal(t, forms.Browsing, s.State())
	assert.False(t, s.Updating())
	assert.Equal(t, domain.CategoryOfferTrips, s.Category())
}

func TestSession_SelectCategoryOpensMatchingForm(t *testing.T) {
	cases := []struct {
		category domain.Category
		want     forms.State
	}{
		{domain.CategoryNefertity, forms.EditingCruise},
		{domain.CategoryMagicKerala, forms.EditingNature},
		{domain.CategorySchoolTrips, forms.EditingEducational},
		{domain.CategoryHoneymoon, forms.EditingGeneric},
	}
	for _, tc := range cases {
		s := forms.NewSession()
		require.NoError(t, s.SelectCategory(tc.category))
		assert.Equal(t, tc.want, s.State(), "category %s", tc.category)
		assert.False(t, s.Updating())
	}
}

func TestSession_SelectCategoryRejectsUnknown(t *testing.T) {
	s := forms.NewSession()

	assert.ErrorIs(t, s.SelectCategory("beach_specials"), domain.ErrValidation)
}

func TestSession_CreateModeSwitchPreservesSharedFields(t *testing.T) {
	s := forms.NewSession()
	require.NoError(t, s.SelectCategory(domain.CategoryNefertity))
	require.NoError(t, s.Stage(validShared(), forms.Cruise{Features: []string{"Dinner"}}))

	// Trying another category keeps title/price/etc but drops cruise fields.
	require.NoError(t, s.SelectCategory(domain.CategoryMagicKerala))

	assert.Equal(t, forms.EditingNature, s.State())
	assert.Equal(t, "Sunset Cruise", s.Shared().Title)
	nature, ok := s.Variant().(forms.Nature)
	require.True(t, ok)
	assert.Empty(t, nature.Highlights)
}

func TestSession_BeginEditChoosesStateFromRecord(t *testing.T) {
	pkg := cruisePackage()
	s := forms.NewSession()

	s.BeginEdit(pkg)

	assert.Equal(t, forms.EditingCruise, s.State())
	assert.True(t, s.Updating())
	assert.Equal(t, pkg.ID, s.RecordID())
	assert.Equal(t, pkg.Title, s.Shared().Title)
}

func TestSession_CategoryLockedWhileEditingSpecialized(t *testing.T) {
	s := forms.NewSession()
	s.BeginEdit(cruisePackage())

	err := s.SelectCategory(domain.CategoryHoneymoon)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, forms.EditingCruise, s.State(), "state must be unchanged")
}

func TestSession_GenericEditAllowsGenericCategorySwitch(t *testing.T) {
	pkg, _ := forms.BuildRecord(validShared(), forms.Generic{Category: domain.CategoryPopular})
	pkg.ID = uuid.New()
	s := forms.NewSession()
	s.BeginEdit(pkg)

	require.NoError(t, s.SelectCategory(domain.CategoryAdventure))
	assert.Equal(t, domain.CategoryAdventure, s.Category())

	// But it cannot move the record into a specialized category.
	assert.ErrorIs(t, s.SelectCategory(domain.CategoryNefertity), domain.ErrConflict)
}

func TestSession_StageRejectsMismatchedVariant(t *testing.T) {
	s := forms.NewSession()
	require.NoError(t, s.SelectCategory(domain.CategoryNefertity))

	err := s.Stage(validShared(), forms.Nature{})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSession_StageRejectedWhileBrowsing(t *testing.T) {
	s := forms.NewSession()

	assert.ErrorIs(t, s.Stage(validShared(), forms.Cruise{}), domain.ErrConflict)
}

func TestSession_CancelDiscardsEdits(t *testing.T) {
	s := forms.NewSession()
	s.BeginEdit(cruisePackage())

	s.Cancel()

	assert.Equal(t, forms.Browsing, s.State())
	assert.False(t, s.Updating())
	assert.Empty(t, s.Shared().Title)
	// Last category sticks so reopening lands on the same variant.
	assert.Equal(t, domain.CategoryNefertity, s.Category())
}

func TestSession_SavedResetsToEmptyCreate(t *testing.T) {
	s := forms.NewSession()
	require.NoError(t, s.SelectCategory(domain.CategorySchoolTrips))
	require.NoError(t, s.Stage(validShared(), forms.Educational{Focus: domain.FocusArt}))

	s.Saved()

	assert.Equal(t, forms.Browsing, s.State())
	assert.False(t, s.Updating())
	assert.Empty(t, s.Shared().Title)
	assert.Equal(t, domain.CategorySchoolTrips, s.Category())
}

func TestSession_ClearIfEditing(t *testing.T) {
	pkg := cruisePackage()
	s := forms.NewSession()
	s.BeginEdit(pkg)

	assert.False(t, s.ClearIfEditing(uuid.New()), "unrelated delete must not reset the form")
	assert.True(t, s.Updating())

	assert.True(t, s.ClearIfEditing(pkg.ID))
	assert.Equal(t, forms.Browsing, s.State())
	assert.False(t, s.Updating())
}
