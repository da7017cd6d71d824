package forms

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tripora/portal/backend/internal/domain"
)

// State is the editing state of the admin package form.
type State string

// The session states: browsing the list, or editing in one of the four
// variants. The create/update mode is orthogonal and derived from whether a
// record ID is loaded.
const (
	Browsing           State = "browsing"
	EditingGeneric     State = "editing_generic"
	EditingCruise      State = "editing_cruise"
	EditingNature      State = "editing_nature"
	EditingEducational State = "editing_educational"
)

// stateForKind maps a form kind to its editing state.
func stateForKind(k Kind) State {
	switch k {
	case KindCruise:
		return EditingCruise
	case KindNature:
		return EditingNature
	case KindEducational:
		return EditingEducational
	default:
		return EditingGeneric
	}
}

// Session is the state machine behind the admin package form. It routes
// between the four variants as the category selection changes, carries the
// shared field values across create-mode switches, and tracks which existing
// record (if any) is loaded for update.
//
// Session is not safe for concurrent use; the owning service serializes
// access.
type Session struct {
	state    State
	recordID uuid.UUID // zero in create mode
	category domain.Category
	shared   Shared
	variant  Variant
}

// NewSession returns a session in Browsing with the default category.
func NewSession() *Session {
	return &Session{state: Browsing, category: domain.CategoryOfferTrips}
}

// State returns the current editing state.
func (s *Session) State() State { return s.state }

// Category returns the last selected category.
func (s *Session) Category() domain.Category { return s.category }

// Shared returns the staged shared fields.
func (s *Session) Shared() Shared { return s.shared }

// Variant returns the staged variant fields, nil while browsing.
func (s *Session) Variant() Variant { return s.variant }

// Updating reports whether an existing record is loaded (update mode).
func (s *Session) Updating() bool { return s.recordID != uuid.Nil }

// RecordID returns the loaded record's ID, or uuid.Nil in create mode.
func (s *Session) RecordID() uuid.UUID { return s.recordID }

// SelectCategory transitions to the editing state for c's form variant.
//
// In Browsing or create-mode editing, the shared fields entered so far are
// preserved across the switch and the previous variant's specific fields are
// discarded — the user can "try" a category without re-entering shared data.
//
// In update mode the category is locked for the three specialized variants;
// only the generic form exposes the selector while editing, and only within
// generic-kind categories. Illegal switches return domain.ErrConflict.
func (s *Session) SelectCategory(c domain.Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, c)
	}
	if s.Updating() {
		if stateForKind(KindForCategory(s.category)) != EditingGeneric {
			return fmt.Errorf("%w: category is locked while editing a %s package", domain.ErrConflict, s.category)
		}
		if KindForCategory(c) != KindGeneric {
			return fmt.Errorf("%w: cannot move an existing package into category %q", domain.ErrConflict, c)
		}
		s.category = c
		s.variant = s.retagGeneric(c)
		return nil
	}

	s.category = c
	s.state = stateForKind(KindForCategory(c))
	s.variant = emptyVariant(c)
	return nil
}

// BeginEdit loads an existing record into the session in update mode. The
// editing state is chosen by the record's stored category, never by the
// caller.
func (s *Session) BeginEdit(pkg domain.TripPackage) {
	s.state = stateForKind(KindForCategory(pkg.Category))
	s.recordID = pkg.ID
	s.category = pkg.Category
	s.shared = SharedFromRecord(pkg)
	s.variant = VariantFromRecord(pkg)
}

// Stage replaces the in-progress field values. The variant's kind must match
// the current editing state — a mismatch means the client raced a category
// switch and is rejected rather than silently re-categorizing the record.
func (s *Session) Stage(shared Shared, v Variant) error {
	if s.state == Browsing {
		return fmt.Errorf("%w: no form is open", domain.ErrConflict)
	}
	if stateForKind(v.Kind()) != s.state {
		return fmt.Errorf("%w: form is editing %s, got %s fields", domain.ErrConflict, s.state, v.Kind())
	}
	s.shared = shared
	s.variant = v
	return nil
}

// Cancel discards in-memory edits and returns to Browsing. The last selected
// category is kept so reopening the form lands on the same variant.
func (s *Session) Cancel() {
	s.reset()
}

// Saved records a successful persist: the form resets to an empty create
// state for the last selected category and the session returns to Browsing.
func (s *Session) Saved() {
	s.reset()
}

// ClearIfEditing resets the session when the record being edited was deleted
// out from under it. Returns true if a reset happened.
func (s *Session) ClearIfEditing(id uuid.UUID) bool {
	if s.recordID == uuid.Nil || s.recordID != id {
		return false
	}
	s.reset()
	return true
}

func (s *Session) reset() {
	s.state = Browsing
	s.recordID = uuid.Nil
	s.shared = Shared{}
	s.variant = nil
}

// retagGeneric rebuilds the staged generic variant under a new category,
// keeping its itinerary and lists.
func (s *Session) retagGeneric(c domain.Category) Variant {
	if g, ok := s.variant.(Generic); ok {
		g.Category = c
		return g
	}
	return Generic{Category: c}
}

// emptyVariant returns the zero field set for the variant owning category c.
func emptyVariant(c domain.Category) Variant {
	switch KindForCategory(c) {
	case KindCruise:
		return Cruise{}
	case KindNature:
		return Nature{}
	case KindEducational:
		return Educational{}
	default:
		return Generic{Category: c}
	}
}
