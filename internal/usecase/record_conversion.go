package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

// RecordConversionUseCase stores one "conversion" analytics event per
// claimed offer. There is no dedup key: claiming twice records twice.
type RecordConversionUseCase struct {
	Analytics entity.AnalyticsRepository
	Now       Clock
	log       *zap.Logger
}

func NewRecordConversionUseCase(analytics entity.AnalyticsRepository, log *zap.Logger) *RecordConversionUseCase {
	return &RecordConversionUseCase{
		Analytics: analytics,
		Now:       utcNow,
		log:       log,
	}
}

func (uc *RecordConversionUseCase) Execute(ctx context.Context, input ClaimOfferInput) (*entity.AnalyticsEvent, error) {
	if verr := ValidateClaimOfferInput(input); verr != nil {
		return nil, verr
	}

	event, err := entity.NewAnalyticsEvent(input.AdSpotID, input.AdvertiserID, entity.EventTypeConversion, uc.Now())
	if err != nil {
		return nil, &UnexpectedError{Err: err}
	}

	if err := uc.Analytics.InsertEvent(ctx, event); err != nil {
		uc.log.Error("failed to record conversion",
			zap.String("landing_page_id", input.LandingPageID),
			zap.String("ad_spot_id", input.AdSpotID),
			zap.String("advertiser_id", input.AdvertiserID),
			zap.Error(err),
		)
		return nil, &PersistenceError{Op: "insert conversion event", Err: err}
	}

	uc.log.Info("conversion recorded",
		zap.String("event_id", event.ID),
		zap.String("landing_page_id", input.LandingPageID),
		zap.String("ad_spot_id", input.AdSpotID),
	)
	return event, nil
}
