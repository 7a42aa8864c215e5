package entity

import "context"

type AdSpotRepository interface {
	ListSpots(ctx context.Context, filter SpotFilter) ([]AdSpot, error)
	FindSpotByID(ctx context.Context, id string) (*AdSpot, error)
	UpdateSpot(ctx context.Context, spot *AdSpot) error
}

type LandingPageRepository interface {
	InsertLandingPage(ctx context.Context, page *LandingPage) error
	FindBySlug(ctx context.Context, slug string) (*LandingPage, error)
	CountLandingPages(ctx context.Context) (int, error)
	ListSlugs(ctx context.Context) ([]string, error)
}

type AnalyticsRepository interface {
	InsertEvent(ctx context.Context, event *AnalyticsEvent) error
	// ProbeColumn selects the column from the analytics table and returns the
	// driver error untouched so callers can inspect it.
	ProbeColumn(ctx context.Context, column string) error
}
