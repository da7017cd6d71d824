package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/tripora/portal/backend/internal/domain"
)

// ListHeroSlides handles GET /api/hero-slides.
func (s *Server) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := s.content.ListHeroSlides(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slides)
}

// SaveHeroSlide handles POST /api/admin/hero-slides.
// A zero/omitted id creates a new slide; a set id updates that slide.
func (s *Server) SaveHeroSlide(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID        uuid.UUID `json:"id"`
		Title     string    `json:"title"`
		Subtitle  string    `json:"subtitle"`
		Image     string    `json:"image"`
		Link      string    `json:"link"`
		PackageID string    `json:"packageId"`
		Order     int       `json:"order"`
		ImageFile []byte    `json:"imageFile,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeRequestError(w, "request body is required")
		return
	}

	slide := domain.HeroSlide{
		ID:        body.ID,
		Title:     body.Title,
		Subtitle:  body.Subtitle,
		Image:     body.Image,
		Link:      body.Link,
		PackageID: body.PackageID,
		Order:     body.Order,
	}

	saved, err := s.content.SaveHeroSlide(r.Context(), slide, body.ImageFile)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// DeleteHeroSlide handles DELETE /api/admin/hero-slides/{id}.
func (s *Server) DeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, "invalid slide id")
		return
	}

	if err := s.content.DeleteHeroSlide(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPlaces handles GET /api/places.
func (s *Server) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := s.content.ListPlaces(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, places)
}

// SavePlace handles POST /api/admin/places.
func (s *Server) SavePlace(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		Image       string    `json:"image"`
		Description string    `json:"description"`
		PackageID   string    `json:"packageId"`
		Order       int       `json:"order"`
		ImageFile   []byte    `json:"imageFile,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeRequestError(w, "request body is required")
		return
	}

	place := domain.Place{
		ID:          body.ID,
		Name:        body.Name,
		Image:       body.Image,
		Description: body.Description,
		PackageID:   body.PackageID,
		Order:       body.Order,
	}

	saved, err := s.content.SavePlace(r.Context(), place, body.ImageFile)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// DeletePlace handles DELETE /api/admin/places/{id}.
func (s *Server) DeletePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, "invalid place id")
		return
	}

	if err := s.content.DeletePlace(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRegions handles GET /api/regions.
func (s *Server) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := s.content.ListRegions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, regions)
}

// SaveRegion handles POST /api/admin/regions.
func (s *Server) SaveRegion(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID        uuid.UUID            `json:"id"`
		Title     string               `json:"title"`
		Image     string               `json:"image"`
		Places    []domain.RegionPlace `json:"places"`
		Order     int                  `json:"order"`
		ImageFile []byte               `json:"imageFile,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeRequestError(w, "request body is required")
		return
	}

	section := domain.RegionSection{
		ID:     body.ID,
		Title:  body.Title,
		Image:  body.Image,
		Places: body.Places,
		Order:  body.Order,
	}

	saved, err := s.content.SaveRegion(r.Context(), section, body.ImageFile)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// DeleteRegion handles DELETE /api/admin/regions/{id}.
func (s *Server) DeleteRegion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, "invalid region id")
		return
	}

	if err := s.content.DeleteRegion(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
