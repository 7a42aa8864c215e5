package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

type LandingPageRepository struct {
	DB *sqlx.DB
}

func NewLandingPageRepository(db *sqlx.DB) *LandingPageRepository {
	return &LandingPageRepository{DB: db}
}

func (r *LandingPageRepository) InsertLandingPage(ctx context.Context, p *entity.LandingPage) error {
	query := `
		INSERT INTO landing_pages (id, ad_spot_id, slug, offer_description, is_published, created_at)
		VALUES (:id, :ad_spot_id, :slug, :offer_description, :is_published, :created_at)
	`

	if _, err := r.DB.NamedExecContext(ctx, query, p); err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", entity.ErrSlugAlreadyExists, p.Slug)
		}
		return fmt.Errorf("insert landing page %s: %w", p.Slug, err)
	}
	return nil
}

func (r *LandingPageRepository) FindBySlug(ctx context.Context, slug string) (*entity.LandingPage, error) {
	query := `
		SELECT id, ad_spot_id, slug, offer_description, is_published, created_at
		FROM landing_pages
		WHERE slug = $1
		ORDER BY created_at ASC
		LIMIT 1
	`

	var page entity.LandingPage
	if err := r.DB.GetContext(ctx, &page, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLandingPageNotFound
		}
		return nil, fmt.Errorf("find landing page %s: %w", slug, err)
	}
	return &page, nil
}

func (r *LandingPageRepository) CountLandingPages(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.GetContext(ctx, &n, `SELECT COUNT(*) FROM landing_pages`); err != nil {
		return 0, fmt.Errorf("count landing pages: %w", err)
	}
	return n, nil
}

func (r *LandingPageRepository) ListSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	if err := r.DB.SelectContext(ctx, &slugs, `SELECT slug FROM landing_pages ORDER BY created_at ASC`); err != nil {
		return nil, fmt.Errorf("list landing page slugs: %w", err)
	}
	return slugs, nil
}
