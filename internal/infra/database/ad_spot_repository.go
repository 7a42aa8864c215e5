package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

const adSpotColumns = `id, position, side, status, advertiser_id, qr_code_url, landing_page_slug, ad_copy_url`

type AdSpotRepository struct {
	DB *sqlx.DB
}

func NewAdSpotRepository(db *sqlx.DB) *AdSpotRepository {
	return &AdSpotRepository{DB: db}
}

func (r *AdSpotRepository) ListSpots(ctx context.Context, filter entity.SpotFilter) ([]entity.AdSpot, error) {
	query, args := buildSpotQuery(filter)

	var spots []entity.AdSpot
	if err := r.DB.SelectContext(ctx, &spots, query, args...); err != nil {
		return nil, fmt.Errorf("list ad spots: %w", err)
	}
	return spots, nil
}

func buildSpotQuery(filter entity.SpotFilter) (string, []any) {
	var (
		where []string
		args  []any
	)

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.WithAdvertiser {
		where = append(where, "advertiser_id IS NOT NULL")
	}
	if filter.WithLandingPage {
		where = append(where, "landing_page_slug IS NOT NULL")
	}
	if filter.WithQRCode {
		where = append(where, "qr_code_url IS NOT NULL")
	}

	query := "SELECT " + adSpotColumns + " FROM ad_spots"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY position ASC"

	return query, args
}

func (r *AdSpotRepository) FindSpotByID(ctx context.Context, id string) (*entity.AdSpot, error) {
	var spot entity.AdSpot
	err := r.DB.GetContext(ctx, &spot, "SELECT "+adSpotColumns+" FROM ad_spots WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrAdSpotNotFound
		}
		return nil, fmt.Errorf("find ad spot %s: %w", id, err)
	}
	return &spot, nil
}

// UpdateSpot overwrites every mutable column unconditionally.
func (r *AdSpotRepository) UpdateSpot(ctx context.Context, spot *entity.AdSpot) error {
	query := `
		UPDATE ad_spots
		SET status = $2,
			advertiser_id = $3,
			qr_code_url = $4,
			landing_page_slug = $5,
			ad_copy_url = $6
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		spot.ID,
		spot.Status,
		spot.AdvertiserID,
		spot.QRCodeURL,
		spot.LandingPageSlug,
		spot.AdCopyURL,
	)
	if err != nil {
		return fmt.Errorf("update ad spot %s: %w", spot.ID, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrAdSpotNotFound
	}
	return nil
}
