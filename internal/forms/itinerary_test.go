package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripora/portal/backend/internal/domain"
	"github.com/tripora/portal/backend/internal/forms"
)

// assertContiguous checks the day-numbering invariant: days are exactly 1..N.
func assertContiguous(t *testing.T, it []domain.ItineraryDay) {
	t.Helper()
	for i, d := range it {
		assert.Equal(t, i+1, d.Day, "day at index %d", i)
	}
}

func TestAppendDay_NumbersSequentially(t *testing.T) {
	var it []domain.ItineraryDay

	it = forms.AppendDay(it, "Arrival", "Check in")
	it = forms.AppendDay(it, "Sightseeing", "")
	it = forms.AppendDay(it, "Departure", "Check out")

	require.Len(t, it, 3)
	assertContiguous(t, it)
	assert.Equal(t, "Sightseeing", it[1].Title)
}

// Worked example: a 3-day itinerary with day 2 removed keeps days 1 and 3,
// renumbered to 1 and 2.
func TestRemoveDay_MiddleRenumbers(t *testing.T) {
	it := []domain.ItineraryDay{
		{Day: 1, Title: "day1"},
		{Day: 2, Title: "day2"},
		{Day: 3, Title: "day3"},
	}

	got := forms.RemoveDay(it, 1)

	require.Len(t, got, 2)
	assert.Equal(t, domain.ItineraryDay{Day: 1, Title: "day1"}, got[0])
	assert.Equal(t, domain.ItineraryDay{Day: 2, Title: "day3"}, got[1])
}

func TestRemoveDay_AnyIndexKeepsInvariant(t *testing.T) {
	build := func(n int) []domain.ItineraryDay {
		var it []domain.ItineraryDay
		for i := 0; i < n; i++ {
			it = forms.AppendDay(it, "stop", "")
		}
		return it
	}

	for n := 1; n <= 5; n++ {
		for idx := 0; idx < n; idx++ {
			got := forms.RemoveDay(build(n), idx)
			require.Len(t, got, n-1, "n=%d idx=%d", n, idx)
			assertContiguous(t, got)
		}
	}
}

func TestRemoveDay_OutOfRangeIsNoop(t *testing.T) {
	it := forms.AppendDay(nil, "only", "")

	assert.Equal(t, it, forms.RemoveDay(it, -1))
	assert.Equal(t, it, forms.RemoveDay(it, 1))
}

func TestRemoveDay_DoesNotMutateInput(t *testing.T) {
	it := []domain.ItineraryDay{
		{Day: 1, Title: "a"},
		{Day: 2, Title: "b"},
		{Day: 3, Title: "c"},
	}

	_ = forms.RemoveDay(it, 0)

	assert.Equal(t, 2, it[1].Day, "input slice must not be renumbered in place")
}

func TestRenumber_NilStaysNil(t *testing.T) {
	assert.Nil(t, forms.Renumber(nil))
}
