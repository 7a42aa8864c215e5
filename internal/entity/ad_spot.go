package entity

import "errors"

var ErrAdSpotNotFound = errors.New("ad spot not found")

const (
	SpotStatusAvailable = "available"
	SpotStatusReserved  = "reserved"
	SpotStatusPurchased = "purchased"
)

// AdSpot is a purchasable placement on a postcard. Optional columns are
// nil when the spot has not been sold or configured yet.
type AdSpot struct {
	ID              string  `json:"id" db:"id"`
	Position        int     `json:"position" db:"position"`
	Side            string  `json:"side" db:"side"`
	Status          string  `json:"status" db:"status"`
	AdvertiserID    *string `json:"advertiser_id,omitempty" db:"advertiser_id"`
	QRCodeURL       *string `json:"qr_code_url,omitempty" db:"qr_code_url"`
	LandingPageSlug *string `json:"landing_page_slug,omitempty" db:"landing_page_slug"`
	AdCopyURL       *string `json:"ad_copy_url,omitempty" db:"ad_copy_url"`
}

func (s *AdSpot) HasAdvertiser() bool  { return present(s.AdvertiserID) }
func (s *AdSpot) HasQRCode() bool      { return present(s.QRCodeURL) }
func (s *AdSpot) HasLandingPage() bool { return present(s.LandingPageSlug) }
func (s *AdSpot) HasAdCopy() bool      { return present(s.AdCopyURL) }

func present(s *string) bool {
	return s != nil && *s != ""
}

// SpotFilter narrows ListSpots. Zero value lists every spot. Results are
// always ordered by position.
type SpotFilter struct {
	Status          string
	WithAdvertiser  bool
	WithLandingPage bool
	WithQRCode      bool
}

func (f SpotFilter) Match(s AdSpot) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.WithAdvertiser && s.AdvertiserID == nil {
		return false
	}
	if f.WithLandingPage && s.LandingPageSlug == nil {
		return false
	}
	if f.WithQRCode && s.QRCodeURL == nil {
		return false
	}
	return true
}
