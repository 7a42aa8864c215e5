package usecase

import (
	"regexp"
	"strings"
)

// local@domain.tld, no whitespace, nothing stricter.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidateClaimOfferInput(input ClaimOfferInput) *ValidationError {
	var missing []string
	if isBlank(input.LandingPageID) {
		missing = append(missing, "landingPageId")
	}
	if isBlank(input.AdSpotID) {
		missing = append(missing, "adSpotId")
	}
	if isBlank(input.AdvertiserID) {
		missing = append(missing, "advertiserId")
	}

	if len(missing) > 0 {
		return missingFields(missing...)
	}
	return nil
}

// ValidateContactInput checks presence first, then the email shape. Phone
// and business name are free-form.
func ValidateContactInput(input ContactInput) *ValidationError {
	var missing []string
	if isBlank(input.Name) {
		missing = append(missing, "name")
	}
	if isBlank(input.Email) {
		missing = append(missing, "email")
	}
	if isBlank(input.Message) {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return missingFields(missing...)
	}

	if !IsValidEmail(strings.TrimSpace(input.Email)) {
		return &ValidationError{Fields: []string{"email"}, Message: "Invalid email address"}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
