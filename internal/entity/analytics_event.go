package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Values accepted by the analytics.event_type check constraint.
const (
	EventTypeScan       = "scan"
	EventTypeConversion = "conversion"
)

type AnalyticsEvent struct {
	ID           string    `json:"id" db:"id"`
	AdSpotID     string    `json:"ad_spot_id" db:"ad_spot_id"`
	AdvertiserID string    `json:"advertiser_id" db:"advertiser_id"`
	EventType    string    `json:"event_type" db:"event_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func NewAnalyticsEvent(adSpotID, advertiserID, eventType string, at time.Time) (*AnalyticsEvent, error) {
	if adSpotID == "" {
		return nil, errors.New("ad_spot_id is required")
	}
	if advertiserID == "" {
		return nil, errors.New("advertiser_id is required")
	}
	if !IsValidEventType(eventType) {
		return nil, fmt.Errorf("invalid event type %q", eventType)
	}

	return &AnalyticsEvent{
		ID:           uuid.New().String(),
		AdSpotID:     adSpotID,
		AdvertiserID: advertiserID,
		EventType:    eventType,
		CreatedAt:    at,
	}, nil
}

func IsValidEventType(t string) bool {
	return t == EventTypeScan || t == EventTypeConversion
}
