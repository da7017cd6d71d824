package domain

import (
	"time"

	"github.com/google/uuid"
)

// HeroSlide is one banner on the home page carousel.
// PackageID is a soft back-reference used only for navigation; it may point
// at a deleted package, in which case the UI falls back to the slide's Link.
type HeroSlide struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Image     string    `json:"image"`
	Link      string    `json:"link,omitempty"`
	PackageID string    `json:"packageId,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Place is one destination card on the destinations page.
type Place struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description,omitempty"`
	PackageID   string    `json:"packageId,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RegionPlace is one sub-place inside a RegionSection.
type RegionPlace struct {
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Desc      string `json:"desc,omitempty"`
	PackageID string `json:"packageId,omitempty"`
}

// RegionSection groups places under a regional banner (e.g. "North Kerala").
type RegionSection struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Image     string        `json:"image,omitempty"`
	Places    []RegionPlace `json:"places,omitempty"`
	Order     int           `json:"order"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
