package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tripora/portal/backend/internal/domain"
	"github.com/tripora/portal/backend/internal/forms"
)

// ListPackages handles GET /api/packages.
// An optional ?category= query narrows the list to one category.
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))

	pkgs, err := s.packages.List(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pkgs)
}

// GetPackage handles GET /api/packages/{id}.
func (s *Server) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, "invalid package id")
		return
	}

	pkg, err := s.packages.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pkg)
}

// GetFormState handles GET /api/admin/form.
func (s *Server) GetFormState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.packages.FormState())
}

// SelectFormCategory handles POST /api/admin/form/category.
// Switching while editing an existing specialized package returns 409.
func (s *Server) SelectFormCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category domain.Category `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeRequestError(w, "request body is required")
		return
	}

	state, err := s.packages.SelectCategory(body.Category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// BeginEditPackage handles POST /api/admin/form/edit/{id}.
// The matching specialized form is chosen by the record's stored category.
func (s *Server) BeginEditPackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, "invalid package id")
		return
	}

	state, err := s.packages.BeginEdit(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// CancelForm handles POST /api/admin/form/cancel.
func (s *Server) CancelForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.packages.Cancel())
}

// SubmitPackage handles POST /api/admin/packages.
// The body carries the form kind, the shared fields, and the kind-specific
// variant fields; create vs. update is decided by the open form session.
func (s *Server) SubmitPackage(w http.ResponseWriter, r *http.Request) {
	shared, variant, err := decodeSubmission(r)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	pkg, err := s.packages.Submit(r.Context(), shared, variant)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, pkg)
}

// DeletePackage handles DELETE /api/admin/packages/{id}.
// Deleting the record currently loaded in the form resets the form.
func (s *Server) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, "invalid package id")
		return
	}

	if err := s.packages.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- submission decoding -----------------------------------------------------

// sharedPayload is the wire form of forms.Shared. ImageFile arrives as a
// standard base64 JSON string and decodes straight into []byte.
type sharedPayload struct {
	Title         string `json:"title"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	OriginalPrice string `json:"originalPrice"`
	Discount      string `json:"discount"`
	Duration      string `json:"duration"`
	Location      string `json:"location"`
	Rating        string `json:"rating"`
	Tag           string `json:"tag"`
	ImageFile     []byte `json:"imageFile,omitempty"`
}

func (p sharedPayload) toShared() forms.Shared {
	return forms.Shared{
		Title:         p.Title,
		Image:         p.Image,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		Duration:      p.Duration,
		Location:      p.Location,
		Rating:        p.Rating,
		Tag:           p.Tag,
		ImageFile:     p.ImageFile,
	}
}

// decodeSubmission parses the tagged-union submission body: the "kind" tag
// picks which variant struct the "variant" object decodes into.
func decodeSubmission(r *http.Request) (forms.Shared, forms.Variant, error) {
	var body struct {
		Kind    forms.Kind      `json:"kind"`
		Shared  sharedPayload   `json:"shared"`
		Variant json.RawMessage `json:"variant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return forms.Shared{}, nil, fmt.Errorf("request body is required")
	}

	raw := body.Variant
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}

	var variant forms.Variant
	switch body.Kind {
	case forms.KindGeneric:
		var v struct {
			Category   domain.Category       `json:"category"`
			Itinerary  []domain.ItineraryDay `json:"itinerary"`
			Inclusions []string              `json:"inclusions"`
			Exclusions []string              `json:"exclusions"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return forms.Shared{}, nil, fmt.Errorf("invalid generic form fields")
		}
		variant = forms.Generic{Category: v.Category, Itinerary: v.Itinerary, Inclusions: v.Inclusions, Exclusions: v.Exclusions}

	case forms.KindCruise:
		var v struct {
			Features []string `json:"features"`
			Popular  bool     `json:"popular"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return forms.Shared{}, nil, fmt.Errorf("invalid cruise form fields")
		}
		variant = forms.Cruise{Features: v.Features, Popular: v.Popular}

	case forms.KindNature:
		var v struct {
			Itinerary  []domain.ItineraryDay `json:"itinerary"`
			Highlights []string              `json:"highlights"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return forms.Shared{}, nil, fmt.Errorf("invalid nature form fields")
		}
		variant = forms.Nature{Itinerary: v.Itinerary, Highlights: v.Highlights}

	case forms.KindEducational:
		var v struct {
			Focus     domain.EducationalFocus `json:"educationalFocus"`
			GroupSize string                  `json:"groupSize"`
			AgeGroup  string                  `json:"ageGroup"`
			Itinerary []domain.ItineraryDay   `json:"itinerary"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return forms.Shared{}, nil, fmt.Errorf("invalid educational form fields")
		}
		variant = forms.Educational{Focus: v.Focus, GroupSize: v.GroupSize, AgeGroup: v.AgeGroup, Itinerary: v.Itinerary}

	default:
		return forms.Shared{}, nil, fmt.Errorf("unknown form kind %q", body.Kind)
	}

	return body.Shared.toShared(), variant, nil
}
