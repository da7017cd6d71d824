package handler_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripora/portal/backend/internal/domain"
)

func TestSaveHeroSlide_PassesDecodedImageFile(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	var gotSlide domain.HeroSlide
	var gotFile []byte
	content := &mockContent{
		SaveHeroSlideFn: func(ctx context.Context, slide domain.HeroSlide, imageFile []byte) (domain.HeroSlide, error) {
			gotSlide = slide
			gotFile = imageFile
			slide.ID = uuid.New()
			return slide, nil
		},
	}
	r := newTestRouter(nil, content, nil)

	body := fmt.Sprintf(`{"title":"Monsoon Magic","order":2,"imageFile":%q}`,
		base64.StdEncoding.EncodeToString(raw))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/hero-slides", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Monsoon Magic", gotSlide.Title)
	assert.Equal(t, 2, gotSlide.Order)
	assert.Equal(t, raw, gotFile)
}

func TestSaveRegion_ValidationError_Maps422(t *testing.T) {
	content := &mockContent{
		SaveRegionFn: func(ctx context.Context, section domain.RegionSection, imageFile []byte) (domain.RegionSection, error) {
			return domain.RegionSection{}, fmt.Errorf("service: %w: title is required", domain.ErrValidation)
		},
	}
	r := newTestRouter(nil, content, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/regions", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")
}

func TestDeletePlace_NotFound_Maps404(t *testing.T) {
	content := &mockContent{
		DeletePlaceFn: func(ctx context.Context, id uuid.UUID) error {
			return fmt.Errorf("repo: %w", domain.ErrNotFound)
		},
	}
	r := newTestRouter(nil, content, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/places/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRegions_ReturnsSections(t *testing.T) {
	content := &mockContent{
		ListRegionsFn: func(ctx context.Context) ([]domain.RegionSection, error) {
			return []domain.RegionSection{{Title: "North Kerala", Places: []domain.RegionPlace{{Name: "Wayanad"}}}}, nil
		},
	}
	r := newTestRouter(nil, content, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/regions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "North Kerala")
	assert.Contains(t, rec.Body.String(), "Wayanad")
}
