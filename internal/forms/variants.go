// Package forms implements the category-driven trip package form system:
// the four form variants, the shared validate/build lifecycle, the itinerary
// day-numbering invariant, and the editing session state machine that routes
// between variants.
package forms

import (
	"fmt"
	"strings"

	"github.com/tripora/portal/backend/internal/domain"
)

// Kind identifies one of the four form variants.
type Kind string

// The form variant kinds. Every category maps to exactly one kind; three
// kinds force a fixed category on save, the generic kind saves whatever
// category the user selected.
const (
	KindGeneric     Kind = "generic"
	KindCruise      Kind = "cruise"
	KindNature      Kind = "nature"
	KindEducational Kind = "educational"
)

// KindForCategory returns the form kind that is authoritative for editing a
// package of the given category.
func KindForCategory(c domain.Category) Kind {
	switch c {
	case domain.CategoryNefertity:
		return KindCruise
	case domain.CategoryMagicKerala:
		return KindNature
	case domain.CategorySchoolTrips:
		return KindEducational
	default:
		return KindGeneric
	}
}

// Shared holds the fields common to all four variants. Category switches in
// create mode carry these over so the user never re-enters them.
//
// ImageFile is a staged upload; while non-empty it takes precedence over the
// Image URL field. The caller compresses it before building the record.
type Shared struct {
	Title         string
	Image         string // URL, or data URI once a staged file is compressed
	Description   string
	Price         string
	OriginalPrice string
	Discount      string
	Duration      string
	Location      string
	Rating        string
	Tag           string
	ImageFile     []byte
}

// Variant is the tagged union over the four category-specific field sets.
type Variant interface {
	Kind() Kind
}

// Generic is the only variant that lets the user pick the category.
type Generic struct {
	Category   domain.Category
	Itinerary  []domain.ItineraryDay
	Inclusions []string
	Exclusions []string
}

// Cruise forces category nefertity. Features are the included amenities.
type Cruise struct {
	Features []string
	Popular  bool
}

// Nature forces category magic_kerala. Highlights are written to BOTH the
// features and inclusions fields of the stored record — a compatibility shim
// for readers keyed on either name. One list, materialized twice.
type Nature struct {
	Itinerary  []domain.ItineraryDay
	Highlights []string
}

// Educational forces category school_trips. Inclusions are derived as a
// one-element list from the focus.
type Educational struct {
	Focus     domain.EducationalFocus
	GroupSize string
	AgeGroup  string
	Itinerary []domain.ItineraryDay
}

func (Generic) Kind() Kind     { return KindGeneric }
func (Cruise) Kind() Kind      { return KindCruise }
func (Nature) Kind() Kind      { return KindNature }
func (Educational) Kind() Kind { return KindEducational }

// Validate enforces the pre-write rules shared by every variant: title and
// price must be non-empty, an image source (staged file or URL) must be
// present, and the three specialized variants additionally require duration.
// Violations return domain.ErrValidation; nothing is written on failure.
func Validate(shared Shared, v Variant) error {
	if strings.TrimSpace(shared.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(shared.Price) == "" {
		return fmt.Errorf("%w: price is required", domain.ErrValidation)
	}
	if len(shared.ImageFile) == 0 && strings.TrimSpace(shared.Image) == "" {
		return fmt.Errorf("%w: an image file or image URL is required", domain.ErrValidation)
	}
	if v.Kind() != KindGeneric && strings.TrimSpace(shared.Duration) == "" {
		return fmt.Errorf("%w: duration is required", domain.ErrValidation)
	}

	switch f := v.(type) {
	case Generic:
		if !f.Category.Valid() {
			return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, f.Category)
		}
	case Educational:
		if !f.Focus.Valid() {
			return fmt.Errorf("%w: unknown educational focus %q", domain.ErrValidation, f.Focus)
		}
	}
	return nil
}

// BuildRecord assembles the full TripPackage from the shared fields and one
// variant. This is the single dispatch point over the union: each case owns
// its forced category and field mapping, so adding a variant means adding a
// case here and nowhere else.
//
// The record's ID, CreatedAt, and UpdatedAt are left zero — the repo assigns
// them on insert, or preserves them on update.
func BuildRecord(shared Shared, v Variant) (domain.TripPackage, error) {
	pkg := domain.TripPackage{
		Title:         strings.TrimSpace(shared.Title),
		Image:         strings.TrimSpace(shared.Image),
		Description:   shared.Description,
		Price:         shared.Price,
		OriginalPrice: shared.OriginalPrice,
		Discount:      shared.Discount,
		Duration:      shared.Duration,
		Location:      shared.Location,
		Rating:        shared.Rating,
		Tag:           shared.Tag,
	}

	switch f := v.(type) {
	case Generic:
		pkg.Category = f.Category
		pkg.Itinerary = Renumber(f.Itinerary)
		pkg.Inclusions = cleanList(f.Inclusions)
		pkg.Exclusions = cleanList(f.Exclusions)

	case Cruise:
		pkg.Category = domain.CategoryNefertity
		pkg.Features = cleanList(f.Features)
		pkg.Popular = f.Popular

	case Nature:
		pkg.Category = domain.CategoryMagicKerala
		pkg.Itinerary = Renumber(f.Itinerary)
		highlights := cleanList(f.Highlights)
		pkg.Features = highlights
		pkg.Inclusions = append([]string(nil), highlights...)

	case Educational:
		pkg.Category = domain.CategorySchoolTrips
		pkg.EducationalFocus = f.Focus
		pkg.GroupSize = f.GroupSize
		pkg.AgeGroup = f.AgeGroup
		pkg.Itinerary = Renumber(f.Itinerary)
		pkg.Inclusions = []string{string(f.Focus)}

	default:
		return domain.TripPackage{}, fmt.Errorf("forms.BuildRecord: unknown variant %T", v)
	}

	return pkg, nil
}

// VariantFromRecord reconstructs the variant field set from a stored record,
// used when an existing package is loaded into the edit form.
func VariantFromRecord(pkg domain.TripPackage) Variant {
	switch KindForCategory(pkg.Category) {
	case KindCruise:
		return Cruise{Features: pkg.Features, Popular: pkg.Popular}
	case KindNature:
		// Features and inclusions hold the same list; features is the source.
		return Nature{Itinerary: pkg.Itinerary, Highlights: pkg.Features}
	case KindEducational:
		return Educational{
			Focus:     pkg.EducationalFocus,
			GroupSize: pkg.GroupSize,
			AgeGroup:  pkg.AgeGroup,
			Itinerary: pkg.Itinerary,
		}
	default:
		return Generic{
			Category:   pkg.Category,
			Itinerary:  pkg.Itinerary,
			Inclusions: pkg.Inclusions,
			Exclusions: pkg.Exclusions,
		}
	}
}

// SharedFromRecord extracts the shared field set from a stored record.
func SharedFromRecord(pkg domain.TripPackage) Shared {
	return Shared{
		Title:         pkg.Title,
		Image:         pkg.Image,
		Description:   pkg.Description,
		Price:         pkg.Price,
		OriginalPrice: pkg.OriginalPrice,
		Discount:      pkg.Discount,
		Duration:      pkg.Duration,
		Location:      pkg.Location,
		Rating:        pkg.Rating,
		Tag:           pkg.Tag,
	}
}

// cleanList trims entries and drops empties, always returning a non-nil slice
// so stored records never carry a null where readers expect a list.
func cleanList(in []string) []string {
	out := []string{}
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
