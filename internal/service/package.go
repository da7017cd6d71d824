// Package service contains the business logic for the travel portal API.
// Services validate inputs, enforce editing rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripora/portal/backend/internal/domain"
	"github.com/tripora/portal/backend/internal/forms"
	"github.com/tripora/portal/backend/internal/imaging"
	"github.com/tripora/portal/backend/internal/repo"
	"github.com/tripora/portal/backend/internal/watch"
)

// defaultCompressTimeout bounds one image compression. A stuck decode used
// to stall the submit indefinitely; now it fails the submit instead.
const defaultCompressTimeout = 10 * time.Second

// FormState is a read-only view of the admin form session, returned by every
// session-mutating call so the client can re-render without a second request.
type FormState struct {
	State    forms.State     `json:"state"`
	Category domain.Category `json:"category"`
	Updating bool            `json:"updating"`
	RecordID uuid.UUID       `json:"recordId,omitempty"`
	Shared   forms.Shared    `json:"shared"`
	Variant  forms.Variant   `json:"variant,omitempty"`
}

// PackageService implements the admin package form flow and the public
// package listing. It owns the single editing session of the admin dashboard
// and serializes access to it.
type PackageService struct {
	repo repo.PackageRepo
	hub  *watch.Hub[domain.TripPackage]

	mu      sync.Mutex
	session *forms.Session

	compressTimeout time.Duration
}

// NewPackageService constructs a PackageService backed by the provided repo
// and snapshot hub.
func NewPackageService(r repo.PackageRepo, hub *watch.Hub[domain.TripPackage]) *PackageService {
	return &PackageService{
		repo:            r,
		hub:             hub,
		session:         forms.NewSession(),
		compressTimeout: defaultCompressTimeout,
	}
}

// List returns all packages, or only those of the given category when
// category is non-empty. Always returns a non-nil slice.
func (s *PackageService) List(ctx context.Context, category domain.Category) ([]domain.TripPackage, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("service.PackageService.List: %w: unknown category %q", domain.ErrValidation, category)
	}

	pkgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PackageService.List: %w", err)
	}

	out := []domain.TripPackage{}
	for _, p := range pkgs {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID returns a single package by ID.
func (s *PackageService) GetByID(ctx context.Context, id uuid.UUID) (domain.TripPackage, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.TripPackage{}, fmt.Errorf("service.PackageService.GetByID: %w", err)
	}
	return pkg, nil
}

// Watch subscribes to live snapshots of the package collection.
// The returned detach func must be called when the consumer goes away.
func (s *PackageService) Watch(ctx context.Context) (<-chan []domain.TripPackage, func()) {
	return s.hub.Subscribe(ctx)
}

// FormState returns the current session state.
func (s *PackageService) FormState() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formStateLocked()
}

// SelectCategory routes the form to the variant owning the category.
// Returns domain.ErrConflict when the switch is illegal in update mode.
func (s *PackageService) SelectCategory(category domain.Category) (FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.SelectCategory(category); err != nil {
		return FormState{}, fmt.Errorf("service.PackageService.SelectCategory: %w", err)
	}
	return s.formStateLocked(), nil
}

// BeginEdit loads an existing package into the form in update mode. The form
// variant is chosen by the record's stored category.
func (s *PackageService) BeginEdit(ctx context.Context, id uuid.UUID) (FormState, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return FormState{}, fmt.Errorf("service.PackageService.BeginEdit: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.BeginEdit(pkg)
	return s.formStateLocked(), nil
}

// Cancel discards in-memory edits and returns the form to browsing.
func (s *PackageService) Cancel() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Cancel()
	return s.formStateLocked()
}

// Submit runs the shared form lifecycle: stage → validate → compress a
// staged image file if present → build the record with the variant's forced
// category → insert (create mode) or overwrite by id (update mode). On
// success the form resets to an empty create state and the new collection
// snapshot is published to all watchers.
//
// On any failure nothing is written and the staged fields are kept, so the
// client can retry the same submit without re-entering data.
func (s *PackageService) Submit(ctx context.Context, shared forms.Shared, v forms.Variant) (domain.TripPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Stage(shared, v); err != nil {
		return domain.TripPackage{}, fmt.Errorf("service.PackageService.Submit: %w", err)
	}
	if err := forms.Validate(shared, v); err != nil {
		return domain.TripPackage{}, fmt.Errorf("service.PackageService.Submit: %w", err)
	}

	// A staged file takes precedence over the image URL field.
	if len(shared.ImageFile) > 0 {
		cctx, cancel := context.WithTimeout(ctx, s.compressTimeout)
		uri, err := imaging.Compress(cctx, shared.ImageFile, imaging.TripImage)
		cancel()
		if err != nil {
			return domain.TripPackage{}, fmt.Errorf("service.PackageService.Submit: %w: image processing failed: %v", domain.ErrValidation, err)
		}
		shared.Image = uri
		shared.ImageFile = nil
	}

	pkg, err := forms.BuildRecord(shared, v)
	if err != nil {
		return domain.TripPackage{}, fmt.Errorf("service.PackageService.Submit: %w", err)
	}

	var saved domain.TripPackage
	if s.session.Updating() {
		pkg.ID = s.session.RecordID()
		saved, err = s.repo.Update(ctx, pkg)
	} else {
		saved, err = s.repo.Create(ctx, pkg)
	}
	if err != nil {
		return domain.TripPackage{}, fmt.Errorf("service.PackageService.Submit: %w", err)
	}

	s.session.Saved()
	s.publish(ctx)
	return saved, nil
}

// Delete removes a package by ID. If the deleted record was loaded in the
// form, the form resets to an empty create state for the last active
// category.
func (s *PackageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PackageService.Delete: %w", err)
	}

	s.mu.Lock()
	s.session.ClearIfEditing(id)
	s.mu.Unlock()

	s.publish(ctx)
	return nil
}

// publish pushes the current full snapshot to the hub. A failed re-read is
// logged but not propagated: watchers simply keep the previous snapshot
// until the next write.
func (s *PackageService) publish(ctx context.Context) {
	pkgs, err := s.repo.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "snapshot refresh failed", "collection", "trip_packages", "error", err)
		return
	}
	s.hub.Publish(pkgs)
}

func (s *PackageService) formStateLocked() FormState {
	return FormState{
		State:    s.session.State(),
		Category: s.session.Category(),
		Updating: s.session.Updating(),
		RecordID: s.session.RecordID(),
		Shared:   s.session.Shared(),
		Variant:  s.session.Variant(),
	}
}
