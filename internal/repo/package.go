package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripora/portal/backend/internal/domain"
)

// PackageRepo defines the persistence operations for trip packages.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type PackageRepo interface {
	// Create inserts a new package and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, pkg domain.TripPackage) (domain.TripPackage, error)

	// GetByID retrieves a single package by its UUID primary key.
	// Returns domain.ErrNotFound if no package with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripPackage, error)

	// List returns all packages ordered by created_at descending. Category
	// filtering happens in the service on the full snapshot, mirroring how
	// the list panel filters the synced collection client-side.
	List(ctx context.Context) ([]domain.TripPackage, error)

	// Update overwrites the mutable fields of an existing package and returns
	// the updated record. Returns domain.ErrNotFound if the ID is unknown.
	Update(ctx context.Context, pkg domain.TripPackage) (domain.TripPackage, error)

	// Delete removes a package by ID. Returns domain.ErrNotFound if it does
	// not exist. Bookings referencing the package by title are untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgPackageRepo is the Postgres implementation of PackageRepo.
type pgPackageRepo struct {
	db db
}

// NewPackageRepo constructs a PackageRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPackageRepo(db db) PackageRepo {
	return &pgPackageRepo{db: db}
}

const packageColumns = `
	id, title, image, description, price, original_price, discount, duration,
	location, rating, tag, category, itinerary, inclusions, exclusions,
	features, popular, educational_focus, group_size, age_group,
	created_at, updated_at`

// packageArgs maps the mutable fields of a package to named SQL arguments.
func packageArgs(pkg domain.TripPackage) (pgx.NamedArgs, error) {
	itinerary, err := jsonList(pkg.Itinerary)
	if err != nil {
		return nil, err
	}
	inclusions, err := jsonList(pkg.Inclusions)
	if err != nil {
		return nil, err
	}
	exclusions, err := jsonList(pkg.Exclusions)
	if err != nil {
		return nil, err
	}
	features, err := jsonList(pkg.Features)
	if err != nil {
		return nil, err
	}

	return pgx.NamedArgs{
		"title":             pkg.Title,
		"image":             pkg.Image,
		"description":       pkg.Description,
		"price":             pkg.Price,
		"original_price":    pkg.OriginalPrice,
		"discount":          pkg.Discount,
		"duration":          pkg.Duration,
		"location":          pkg.Location,
		"rating":            pkg.Rating,
		"tag":               pkg.Tag,
		"category":          string(pkg.Category),
		"itinerary":         itinerary,
		"inclusions":        inclusions,
		"exclusions":        exclusions,
		"features":          features,
		"popular":           pkg.Popular,
		"educational_focus": string(pkg.EducationalFocus),
		"group_size":        pkg.GroupSize,
		"age_group":         pkg.AgeGroup,
	}, nil
}

// Create inserts a new package row and returns the full persisted record.
func (r *pgPackageRepo) Create(ctx context.Context, pkg domain.TripPackage) (domain.TripPackage, error) {
	q := `
		INSERT INTO trip_packages (
			title, image, description, price, original_price, discount, duration,
			location, rating, tag, category, itinerary, inclusions, exclusions,
			features, popular, educational_focus, group_size, age_group)
		VALUES (
			@title, @image, @description, @price, @original_price, @discount,
			@duration, @location, @rating, @tag, @category, @itinerary,
			@inclusions, @exclusions, @features, @popular, @educational_focus,
			@group_size, @age_group)
		RETURNING` + packageColumns

	args, err := packageArgs(pkg)
	if err != nil {
		return domain.TripPackage{}, fmt.Errorf("repo.PackageRepo.Create: %w", err)
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPackage(row)
	if err != nil {
		return domain.TripPackage{}, fmt.Errorf("repo.PackageRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a package by primary key.
func (r *pgPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripPackage, error) {
	q := `SELECT` + packageColumns + ` FROM trip_packages WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanPackage(row)
	if err != nil {
		return domain.TripPackage{}, fmt.Errorf("repo.PackageRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all packages ordered by created_at descending (newest first).
func (r *pgPackageRepo) List(ctx context.Context) ([]domain.TripPackage, error) {
	q := `SELECT` + packageColumns + ` FROM trip_packages ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.List: %w", err)
	}
	defer rows.Close()

	var pkgs []domain.TripPackage
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackageRepo.List: scan: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.List: rows: %w", err)
	}

	return pkgs, nil
}

// Update overwrites the mutable fields of a package and returns the updated record.
func (r *pgPackageRepo) Update(ctx context.Context, pkg domain.TripPackage) (domain.TripPackage, error) {
	q := `
		UPDATE trip_packages
		SET title             = @title,
		    image             = @image,
		    description       = @description,
		    price             = @price,
		    original_price    = @original_price,
		    discount          = @discount,
		    duration          = @duration,
		    location          = @location,
		    rating            = @rating,
		    tag               = @tag,
		    category          = @category,
		    itinerary         = @itinerary,
		    inclusions        = @inclusions,
		    exclusions        = @exclusions,
		    features          = @features,
		    popular           = @popular,
		    educational_focus = @educational_focus,
		    group_size        = @group_size,
		    age_group         = @age_group,
		    updated_at        = now()
		WHERE id = @id
		RETURNING` + packageColumns

	args, err := packageArgs(pkg)
	if err != nil {
		return domain.TripPackage{}, fmt.Errorf("repo.PackageRepo.Update: %w", err)
	}
	args["id"] = pkg.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPackage(row)
	if err != nil {
		return domain.TripPackage{}, fmt.Errorf("repo.PackageRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a package by primary key.
func (r *pgPackageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trip_packages WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PackageRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackageRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanPackage maps a single database row into a domain.TripPackage.
// It handles the UUID and jsonb list conversions.
func scanPackage(s scanner) (domain.TripPackage, error) {
	var (
		p          domain.TripPackage
		id         pgtype.UUID
		category   string
		focus      string
		itinerary  []byte
		inclusions []byte
		exclusions []byte
		features   []byte
	)

	err := s.Scan(
		&id, &p.Title, &p.Image, &p.Description, &p.Price, &p.OriginalPrice,
		&p.Discount, &p.Duration, &p.Location, &p.Rating, &p.Tag, &category,
		&itinerary, &inclusions, &exclusions, &features, &p.Popular,
		&focus, &p.GroupSize, &p.AgeGroup, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripPackage{}, domain.ErrNotFound
		}
		return domain.TripPackage{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.Category = domain.Category(category)
	p.EducationalFocus = domain.EducationalFocus(focus)
	if err := scanList(itinerary, &p.Itinerary); err != nil {
		return domain.TripPackage{}, err
	}
	if err := scanList(inclusions, &p.Inclusions); err != nil {
		return domain.TripPackage{}, err
	}
	if err := scanList(exclusions, &p.Exclusions); err != nil {
		return domain.TripPackage{}, err
	}
	if err := scanList(features, &p.Features); err != nil {
		return domain.TripPackage{}, err
	}

	return p, nil
}
