package forms

import "github.com/tripora/portal/backend/internal/domain"

// Itinerary day numbers are always the contiguous sequence 1..N, regardless
// of the order entries were added or removed in. These helpers are the only
// code that assigns day numbers.

// AppendDay appends a new day numbered len+1.
func AppendDay(it []domain.ItineraryDay, title, desc string) []domain.ItineraryDay {
	return append(it, domain.ItineraryDay{Day: len(it) + 1, Title: title, Desc: desc})
}

// RemoveDay deletes the entry at index (0-based) and renumbers the remainder
// so days stay contiguous starting at 1. Out-of-range indexes are a no-op.
func RemoveDay(it []domain.ItineraryDay, index int) []domain.ItineraryDay {
	if index < 0 || index >= len(it) {
		return it
	}
	out := make([]domain.ItineraryDay, 0, len(it)-1)
	out = append(out, it[:index]...)
	out = append(out, it[index+1:]...)
	return Renumber(out)
}

// Renumber rewrites day numbers to 1..N in slice order. It copies rather
// than mutating so callers holding the input slice are unaffected. A nil
// input stays nil.
func Renumber(it []domain.ItineraryDay) []domain.ItineraryDay {
	if it == nil {
		return nil
	}
	out := make([]domain.ItineraryDay, len(it))
	for i, d := range it {
		d.Day = i + 1
		out[i] = d
	}
	return out
}
