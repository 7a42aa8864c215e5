package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLandingPageNotFound = errors.New("landing page not found")
	ErrSlugAlreadyExists   = errors.New("landing page slug already exists")
)

type LandingPage struct {
	ID               string    `json:"id" db:"id"`
	AdSpotID         string    `json:"ad_spot_id" db:"ad_spot_id"`
	Slug             string    `json:"slug" db:"slug"`
	OfferDescription string    `json:"offer_description" db:"offer_description"`
	Published        bool      `json:"is_published" db:"is_published"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// NewLandingPage builds a published page with an empty offer, the shape the
// backfill creates for freshly purchased spots.
func NewLandingPage(adSpotID, slug string) (*LandingPage, error) {
	if adSpotID == "" {
		return nil, errors.New("ad_spot_id is required")
	}
	if slug == "" {
		return nil, errors.New("slug is required")
	}

	return &LandingPage{
		ID:               uuid.New().String(),
		AdSpotID:         adSpotID,
		Slug:             slug,
		OfferDescription: "",
		Published:        true,
		CreatedAt:        time.Now().UTC(),
	}, nil
}
