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

// RegionRepo defines the persistence operations for regional content sections.
type RegionRepo interface {
	Create(ctx context.Context, section domain.RegionSection) (domain.RegionSection, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.RegionSection, error)
	// List returns all sections ordered by the order column ascending.
	List(ctx context.Context) ([]domain.RegionSection, error)
	Update(ctx context.Context, section domain.RegionSection) (domain.RegionSection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgRegionRepo struct {
	db db
}

// NewRegionRepo constructs a RegionRepo backed by the provided db connection.
func NewRegionRepo(db db) RegionRepo {
	return &pgRegionRepo{db: db}
}

const regionColumns = `
	id, title, image, places, sort_order, created_at, updated_at`

func regionArgs(s domain.RegionSection) (pgx.NamedArgs, error) {
	places, err := jsonList(s.Places)
	if err != nil {
		return nil, err
	}
	return pgx.NamedArgs{
		"title":      s.Title,
		"image":      s.Image,
		"places":     places,
		"sort_order": s.Order,
	}, nil
}

func (r *pgRegionRepo) Create(ctx context.Context, section domain.RegionSection) (domain.RegionSection, error) {
	q := `
		INSERT INTO region_sections (title, image, places, sort_order)
		VALUES (@title, @image, @places, @sort_order)
		RETURNING` + regionColumns

	args, err := regionArgs(section)
	if err != nil {
		return domain.RegionSection{}, fmt.Errorf("repo.RegionRepo.Create: %w", err)
	}

	result, err := scanRegion(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RegionSection{}, fmt.Errorf("repo.RegionRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgRegionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.RegionSection, error) {
	q := `SELECT` + regionColumns + ` FROM region_sections WHERE id = @id`

	result, err := scanRegion(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.RegionSection{}, fmt.Errorf("repo.RegionRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgRegionRepo) List(ctx context.Context) ([]domain.RegionSection, error) {
	q := `SELECT` + regionColumns + ` FROM region_sections ORDER BY sort_order, created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RegionRepo.List: %w", err)
	}
	defer rows.Close()

	var sections []domain.RegionSection
	for rows.Next() {
		s, err := scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RegionRepo.List: scan: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RegionRepo.List: rows: %w", err)
	}

	return sections, nil
}

func (r *pgRegionRepo) Update(ctx context.Context, section domain.RegionSection) (domain.RegionSection, error) {
	q := `
		UPDATE region_sections
		SET title      = @title,
		    image      = @image,
		    places     = @places,
		    sort_order = @sort_order,
		    updated_at = now()
		WHERE id = @id
		RETURNING` + regionColumns

	args, err := regionArgs(section)
	if err != nil {
		return domain.RegionSection{}, fmt.Errorf("repo.RegionRepo.Update: %w", err)
	}
	args["id"] = section.ID

	result, err := scanRegion(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RegionSection{}, fmt.Errorf("repo.RegionRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgRegionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM region_sections WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.RegionRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RegionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanRegion(s scanner) (domain.RegionSection, error) {
	var (
		sec    domain.RegionSection
		id     pgtype.UUID
		places []byte
	)

	err := s.Scan(&id, &sec.Title, &sec.Image, &places, &sec.Order,
		&sec.CreatedAt, &sec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RegionSection{}, domain.ErrNotFound
		}
		return domain.RegionSection{}, err
	}

	sec.ID = uuid.UUID(id.Bytes)
	if err := scanList(places, &sec.Places); err != nil {
		return domain.RegionSection{}, err
	}
	return sec, nil
}
