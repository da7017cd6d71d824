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

// HeroSlideRepo defines the persistence operations for home page banners.
type HeroSlideRepo interface {
	Create(ctx context.Context, slide domain.HeroSlide) (domain.HeroSlide, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.HeroSlide, error)
	// List returns all slides ordered by the order column ascending.
	List(ctx context.Context) ([]domain.HeroSlide, error)
	Update(ctx context.Context, slide domain.HeroSlide) (domain.HeroSlide, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgHeroSlideRepo struct {
	db db
}

// NewHeroSlideRepo constructs a HeroSlideRepo backed by the provided db connection.
func NewHeroSlideRepo(db db) HeroSlideRepo {
	return &pgHeroSlideRepo{db: db}
}

const heroColumns = `
	id, title, subtitle, image, link, package_id, sort_order, created_at, updated_at`

func heroArgs(s domain.HeroSlide) pgx.NamedArgs {
	return pgx.NamedArgs{
		"title":      s.Title,
		"subtitle":   s.Subtitle,
		"image":      s.Image,
		"link":       s.Link,
		"package_id": s.PackageID,
		"sort_order": s.Order,
	}
}

func (r *pgHeroSlideRepo) Create(ctx context.Context, slide domain.HeroSlide) (domain.HeroSlide, error) {
	q := `
		INSERT INTO hero_slides (title, subtitle, image, link, package_id, sort_order)
		VALUES (@title, @subtitle, @image, @link, @package_id, @sort_order)
		RETURNING` + heroColumns

	result, err := scanHeroSlide(r.db.QueryRow(ctx, q, heroArgs(slide)))
	if err != nil {
		return domain.HeroSlide{}, fmt.Errorf("repo.HeroSlideRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgHeroSlideRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.HeroSlide, error) {
	q := `SELECT` + heroColumns + ` FROM hero_slides WHERE id = @id`

	result, err := scanHeroSlide(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.HeroSlide{}, fmt.Errorf("repo.HeroSlideRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns slides ordered by sort_order ascending; unset orders default
// to 0 at the schema level, so they sort first.
func (r *pgHeroSlideRepo) List(ctx context.Context) ([]domain.HeroSlide, error) {
	q := `SELECT` + heroColumns + ` FROM hero_slides ORDER BY sort_order, created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.HeroSlideRepo.List: %w", err)
	}
	defer rows.Close()

	var slides []domain.HeroSlide
	for rows.Next() {
		s, err := scanHeroSlide(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.HeroSlideRepo.List: scan: %w", err)
		}
		slides = append(slides, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HeroSlideRepo.List: rows: %w", err)
	}

	return slides, nil
}

func (r *pgHeroSlideRepo) Update(ctx context.Context, slide domain.HeroSlide) (domain.HeroSlide, error) {
	q := `
		UPDATE hero_slides
		SET title      = @title,
		    subtitle   = @subtitle,
		    image      = @image,
		    link       = @link,
		    package_id = @package_id,
		    sort_order = @sort_order,
		    updated_at = now()
		WHERE id = @id
		RETURNING` + heroColumns

	args := heroArgs(slide)
	args["id"] = slide.ID

	result, err := scanHeroSlide(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.HeroSlide{}, fmt.Errorf("repo.HeroSlideRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgHeroSlideRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM hero_slides WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.HeroSlideRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.HeroSlideRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanHeroSlide(s scanner) (domain.HeroSlide, error) {
	var (
		slide domain.HeroSlide
		id    pgtype.UUID
	)

	err := s.Scan(&id, &slide.Title, &slide.Subtitle, &slide.Image, &slide.Link,
		&slide.PackageID, &slide.Order, &slide.CreatedAt, &slide.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.HeroSlide{}, domain.ErrNotFound
		}
		return domain.HeroSlide{}, err
	}

	slide.ID = uuid.UUID(id.Bytes)
	return slide, nil
}
