// Package domain contains the core data types for the travel portal backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (forms, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category identifies the section of the site a trip package belongs to.
// The category decides which specialized admin form is authoritative for
// editing the package.
type Category string

// The fixed category set. Values are stored verbatim in the database and
// exchanged verbatim over the API, so they must never be renamed.
const (
	CategoryOfferTrips  Category = "offer_trips"
	CategoryPopular     Category = "popular"
	CategorySouthside   Category = "southside"
	CategoryNefertity   Category = "nefertity"
	CategoryMagicKerala Category = "magic_kerala"
	CategoryHoneymoon   Category = "honeymoon"
	CategorySpiritual   Category = "spiritual"
	CategoryAdventure   Category = "adventure"
	CategorySchoolTrips Category = "school_trips"
)

// Categories lists every valid Category, in display order.
var Categories = []Category{
	CategoryOfferTrips,
	CategoryPopular,
	CategorySouthside,
	CategoryNefertity,
	CategoryMagicKerala,
	CategoryHoneymoon,
	CategorySpiritual,
	CategoryAdventure,
	CategorySchoolTrips,
}

// Valid reports whether c is one of the fixed category values.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// EducationalFocus is the subject emphasis of a school trip package.
type EducationalFocus string

// Valid educational focus values for school trip packages.
const (
	FocusScience   EducationalFocus = "Science"
	FocusHistory   EducationalFocus = "History"
	FocusNature    EducationalFocus = "Nature"
	FocusAdventure EducationalFocus = "Adventure"
	FocusArt       EducationalFocus = "Art"
)

// EducationalFocuses lists every valid EducationalFocus.
var EducationalFocuses = []EducationalFocus{
	FocusScience, FocusHistory, FocusNature, FocusAdventure, FocusArt,
}

// Valid reports whether f is one of the fixed focus values.
func (f EducationalFocus) Valid() bool {
	for _, v := range EducationalFocuses {
		if f == v {
			return true
		}
	}
	return false
}

// ItineraryDay is one day of a package itinerary.
// Day numbers are always the contiguous sequence 1..N — the forms layer
// renumbers on every removal to keep this invariant.
type ItineraryDay struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// TripPackage is the central entity: one sellable trip shown on the site.
//
// Image holds either a remote URL or an embedded base64 JPEG data URI
// produced by the imaging package; the two are interchangeable to readers.
//
// Features and Inclusions overlap deliberately for magic_kerala packages:
// the nature form writes its highlights list into both fields so older
// readers keyed on either name keep working. Treat them as one list
// materialized twice, not as independent data.
type TripPackage struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Image         string         `json:"image"`
	Description   string         `json:"description,omitempty"`
	Price         string         `json:"price"`
	OriginalPrice string         `json:"originalPrice,omitempty"`
	Discount      string         `json:"discount,omitempty"`
	Duration      string         `json:"duration,omitempty"`
	Location      string         `json:"location,omitempty"`
	Rating        string         `json:"rating,omitempty"`
	Tag           string         `json:"tag,omitempty"`
	Category      Category       `json:"category"`
	Itinerary     []ItineraryDay `json:"itinerary,omitempty"`
	Inclusions    []string       `json:"inclusions,omitempty"`
	Exclusions    []string       `json:"exclusions,omitempty"`
	Features      []string       `json:"features,omitempty"`
	Popular       bool           `json:"popular"`

	// School trip fields, zero-valued for every other category.
	EducationalFocus EducationalFocus `json:"educationalFocus,omitempty"`
	GroupSize        string           `json:"groupSize,omitempty"`
	AgeGroup         string           `json:"ageGroup,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
