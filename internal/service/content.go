package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tripora/portal/backend/internal/domain"
	"github.com/tripora/portal/backend/internal/imaging"
	"github.com/tripora/portal/backend/internal/repo"
	"github.com/tripora/portal/backend/internal/watch"
)

// ContentHubs bundles the snapshot hubs for the three content collections.
type ContentHubs struct {
	HeroSlides *watch.Hub[domain.HeroSlide]
	Places     *watch.Hub[domain.Place]
	Regions    *watch.Hub[domain.RegionSection]
}

// NewContentHubs returns hubs for all three content collections.
func NewContentHubs() ContentHubs {
	return ContentHubs{
		HeroSlides: watch.NewHub[domain.HeroSlide](),
		Places:     watch.NewHub[domain.Place](),
		Regions:    watch.NewHub[domain.RegionSection](),
	}
}

// ContentService implements the admin CRUD for hero banners, destination
// cards, and region sections. Each collection targets its own hub; there is
// no coordination between them because the collections are disjoint.
type ContentService struct {
	heroes  repo.HeroSlideRepo
	places  repo.PlaceRepo
	regions repo.RegionRepo
	hubs    ContentHubs
}

// NewContentService constructs a ContentService backed by the provided repos.
func NewContentService(heroes repo.HeroSlideRepo, places repo.PlaceRepo, regions repo.RegionRepo, hubs ContentHubs) *ContentService {
	return &ContentService{heroes: heroes, places: places, regions: regions, hubs: hubs}
}

// --- hero slides --------------------------------------------------------------

// ListHeroSlides returns all slides ordered by their order field ascending.
// Always returns a non-nil slice.
func (s *ContentService) ListHeroSlides(ctx context.Context) ([]domain.HeroSlide, error) {
	slides, err := s.heroes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ContentService.ListHeroSlides: %w", err)
	}
	if slides == nil {
		slides = []domain.HeroSlide{}
	}
	return slides, nil
}

// SaveHeroSlide creates the slide when its ID is zero, otherwise updates it.
// imageFile, when non-empty, is compressed at banner width and replaces the
// slide's image field.
func (s *ContentService) SaveHeroSlide(ctx context.Context, slide domain.HeroSlide, imageFile []byte) (domain.HeroSlide, error) {
	if strings.TrimSpace(slide.Title) == "" {
		return domain.HeroSlide{}, fmt.Errorf("service.ContentService.SaveHeroSlide: %w: title is required", domain.ErrValidation)
	}

	img, err := resolveImage(ctx, slide.Image, imageFile, imaging.HeroBanner)
	if err != nil {
		return domain.HeroSlide{}, fmt.Errorf("service.ContentService.SaveHeroSlide: %w", err)
	}
	slide.Image = img

	var saved domain.HeroSlide
	if slide.ID == uuid.Nil {
		saved, err = s.heroes.Create(ctx, slide)
	} else {
		saved, err = s.heroes.Update(ctx, slide)
	}
	if err != nil {
		return domain.HeroSlide{}, fmt.Errorf("service.ContentService.SaveHeroSlide: %w", err)
	}

	s.publishHeroSlides(ctx)
	return saved, nil
}

// DeleteHeroSlide removes a slide by ID.
func (s *ContentService) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	if err := s.heroes.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ContentService.DeleteHeroSlide: %w", err)
	}
	s.publishHeroSlides(ctx)
	return nil
}

// WatchHeroSlides subscribes to live snapshots of the slide collection.
func (s *ContentService) WatchHeroSlides(ctx context.Context) (<-chan []domain.HeroSlide, func()) {
	return s.hubs.HeroSlides.Subscribe(ctx)
}

func (s *ContentService) publishHeroSlides(ctx context.Context) {
	slides, err := s.heroes.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "snapshot refresh failed", "collection", "hero_slides", "error", err)
		return
	}
	s.hubs.HeroSlides.Publish(slides)
}

// --- places --------------------------------------------------------------------

// ListPlaces returns all destination cards ordered by their order field.
// Always returns a non-nil slice.
func (s *ContentService) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	places, err := s.places.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ContentService.ListPlaces: %w", err)
	}
	if places == nil {
		places = []domain.Place{}
	}
	return places, nil
}

// SavePlace creates the place when its ID is zero, otherwise updates it.
func (s *ContentService) SavePlace(ctx context.Context, place domain.Place, imageFile []byte) (domain.Place, error) {
	if strings.TrimSpace(place.Name) == "" {
		return domain.Place{}, fmt.Errorf("service.ContentService.SavePlace: %w: name is required", domain.ErrValidation)
	}

	img, err := resolveImage(ctx, place.Image, imageFile, imaging.PlaceImage)
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.ContentService.SavePlace: %w", err)
	}
	place.Image = img

	var saved domain.Place
	if place.ID == uuid.Nil {
		saved, err = s.places.Create(ctx, place)
	} else {
		saved, err = s.places.Update(ctx, place)
	}
	if err != nil {
		return domain.Place{}, fmt.Errorf("service.ContentService.SavePlace: %w", err)
	}

	s.publishPlaces(ctx)
	return saved, nil
}

// DeletePlace removes a destination card by ID.
func (s *ContentService) DeletePlace(ctx context.Context, id uuid.UUID) error {
	if err := s.places.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ContentService.DeletePlace: %w", err)
	}
	s.publishPlaces(ctx)
	return nil
}

// WatchPlaces subscribes to live snapshots of the place collection.
func (s *ContentService) WatchPlaces(ctx context.Context) (<-chan []domain.Place, func()) {
	return s.hubs.Places.Subscribe(ctx)
}

func (s *ContentService) publishPlaces(ctx context.Context) {
	places, err := s.places.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "snapshot refresh failed", "collection", "places", "error", err)
		return
	}
	s.hubs.Places.Publish(places)
}

// --- region sections -------------------------------------------------------------

// ListRegions returns all region sections ordered by their order field.
// Always returns a non-nil slice.
func (s *ContentService) ListRegions(ctx context.Context) ([]domain.RegionSection, error) {
	regions, err := s.regions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ContentService.ListRegions: %w", err)
	}
	if regions == nil {
		regions = []domain.RegionSection{}
	}
	return regions, nil
}

// SaveRegion creates the section when its ID is zero, otherwise updates it.
func (s *ContentService) SaveRegion(ctx context.Context, section domain.RegionSection, imageFile []byte) (domain.RegionSection, error) {
	if strings.TrimSpace(section.Title) == "" {
		return domain.RegionSection{}, fmt.Errorf("service.ContentService.SaveRegion: %w: title is required", domain.ErrValidation)
	}

	if len(imageFile) > 0 {
		img, err := resolveImage(ctx, section.Image, imageFile, imaging.RegionBanner)
		if err != nil {
			return domain.RegionSection{}, fmt.Errorf("service.ContentService.SaveRegion: %w", err)
		}
		section.Image = img
	}

	var saved domain.RegionSection
	var err error
	if section.ID == uuid.Nil {
		saved, err = s.regions.Create(ctx, section)
	} else {
		saved, err = s.regions.Update(ctx, section)
	}
	if err != nil {
		return domain.RegionSection{}, fmt.Errorf("service.ContentService.SaveRegion: %w", err)
	}

	s.publishRegions(ctx)
	return saved, nil
}

// DeleteRegion removes a region section by ID.
func (s *ContentService) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	if err := s.regions.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ContentService.DeleteRegion: %w", err)
	}
	s.publishRegions(ctx)
	return nil
}

// WatchRegions subscribes to live snapshots of the region collection.
func (s *ContentService) WatchRegions(ctx context.Context) (<-chan []domain.RegionSection, func()) {
	return s.hubs.Regions.Subscribe(ctx)
}

func (s *ContentService) publishRegions(ctx context.Context) {
	regions, err := s.regions.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "snapshot refresh failed", "collection", "region_sections", "error", err)
		return
	}
	s.hubs.Regions.Publish(regions)
}

// resolveImage applies the staged-file-wins rule shared by all image-bearing
// records: a non-empty file is compressed and replaces the URL; otherwise the
// URL must be present.
func resolveImage(ctx context.Context, url string, file []byte, opts imaging.Options) (string, error) {
	if len(file) > 0 {
		cctx, cancel := context.WithTimeout(ctx, defaultCompressTimeout)
		defer cancel()
		uri, err := imaging.Compress(cctx, file, opts)
		if err != nil {
			return "", fmt.Errorf("%w: image processing failed: %v", domain.ErrValidation, err)
		}
		return uri, nil
	}
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("%w: an image file or image URL is required", domain.ErrValidation)
	}
	return url, nil
}
