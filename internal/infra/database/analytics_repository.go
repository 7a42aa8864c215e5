package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

type AnalyticsRepository struct {
	DB *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func (r *AnalyticsRepository) InsertEvent(ctx context.Context, e *entity.AnalyticsEvent) error {
	query := `
		INSERT INTO analytics (id, ad_spot_id, advertiser_id, event_type, created_at)
		VALUES (:id, :ad_spot_id, :advertiser_id, :event_type, :created_at)
	`

	if _, err := r.DB.NamedExecContext(ctx, query, e); err != nil {
		return fmt.Errorf("insert %s event for spot %s: %w", e.EventType, e.AdSpotID, err)
	}
	return nil
}

func (r *AnalyticsRepository) ProbeColumn(ctx context.Context, column string) error {
	query := fmt.Sprintf("SELECT %s FROM analytics LIMIT 1", pq.QuoteIdentifier(column))

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	return rows.Close()
}
