package usecase

import "github.com/xavierca1/postcard-ads/internal/entity"

type ClaimOfferInput struct {
	LandingPageID string `json:"landingPageId"`
	AdSpotID      string `json:"adSpotId"`
	AdvertiserID  string `json:"advertiserId"`
}

type ContactInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	Message      string `json:"message"`
}

type ContactOutput struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type ScanOutput struct {
	Page     *entity.LandingPage
	Recorded bool
}
