package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

// RecordScanUseCase resolves a scanned landing page and logs a "scan"
// event for the spot's advertiser. A failed insert never blocks the
// caller: the recipient still gets to the offer.
type RecordScanUseCase struct {
	Pages     entity.LandingPageRepository
	Spots     entity.AdSpotRepository
	Analytics entity.AnalyticsRepository
	Now       Clock
	log       *zap.Logger
}

func NewRecordScanUseCase(
	pages entity.LandingPageRepository,
	spots entity.AdSpotRepository,
	analytics entity.AnalyticsRepository,
	log *zap.Logger,
) *RecordScanUseCase {
	return &RecordScanUseCase{
		Pages:     pages,
		Spots:     spots,
		Analytics: analytics,
		Now:       utcNow,
		log:       log,
	}
}

func (uc *RecordScanUseCase) Execute(ctx context.Context, slug string) (*ScanOutput, error) {
	page, err := uc.Pages.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, entity.ErrLandingPageNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "find landing page", Err: err}
	}

	out := &ScanOutput{Page: page}

	spot, err := uc.Spots.FindSpotByID(ctx, page.AdSpotID)
	if err != nil {
		uc.log.Warn("scan without resolvable ad spot", zap.String("slug", slug), zap.Error(err))
		return out, nil
	}
	if !spot.HasAdvertiser() {
		uc.log.Warn("scan on spot without advertiser", zap.String("slug", slug), zap.String("ad_spot_id", spot.ID))
		return out, nil
	}

	event, err := entity.NewAnalyticsEvent(spot.ID, *spot.AdvertiserID, entity.EventTypeScan, uc.Now())
	if err != nil {
		uc.log.Error("invalid scan event", zap.String("slug", slug), zap.Error(err))
		return out, nil
	}

	if err := uc.Analytics.InsertEvent(ctx, event); err != nil {
		uc.log.Error("failed to record scan", zap.String("slug", slug), zap.String("ad_spot_id", spot.ID), zap.Error(err))
		return out, nil
	}

	out.Recorded = true
	return out, nil
}
