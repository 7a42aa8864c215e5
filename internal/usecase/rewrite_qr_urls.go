package usecase

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

// RewriteQRURLsUseCase moves QR payloads generated against a placeholder
// deployment onto the production origin. Only the scheme://host prefix is
// replaced; rows on any other host are not written.
type RewriteQRURLsUseCase struct {
	Spots           entity.AdSpotRepository
	PlaceholderBase string
	ProductionBase  string
	Out             io.Writer
}

func NewRewriteQRURLsUseCase(spots entity.AdSpotRepository, placeholderBase, productionBase string, out io.Writer) *RewriteQRURLsUseCase {
	return &RewriteQRURLsUseCase{
		Spots:           spots,
		PlaceholderBase: strings.TrimRight(placeholderBase, "/"),
		ProductionBase:  strings.TrimRight(productionBase, "/"),
		Out:             out,
	}
}

func (uc *RewriteQRURLsUseCase) Execute(ctx context.Context) (*Report, error) {
	placeholder, err := url.Parse(uc.PlaceholderBase)
	if err != nil || placeholder.Host == "" {
		return nil, &ValidationError{Fields: []string{"placeholderBase"}, Message: "invalid placeholder base URL: " + uc.PlaceholderBase}
	}

	spots, err := uc.Spots.ListSpots(ctx, entity.SpotFilter{WithQRCode: true})
	if err != nil {
		fmt.Fprintf(uc.Out, "❌ Error fetching spots with QR codes: %v\n", err)
		return nil, &PersistenceError{Op: "list spots with qr codes", Err: err}
	}

	report := &Report{}
	for i := range spots {
		spot := spots[i]
		before := deref(spot.QRCodeURL)

		after, ok := RewriteQRURL(before, placeholder.Host, uc.ProductionBase)
		if !ok {
			report.Skipped++
			continue
		}

		item := ItemResult{ID: spot.ID, Slug: deref(spot.LandingPageSlug), Before: before, After: after}
		fmt.Fprintf(uc.Out, "Position %d:\n  before: %s\n  after:  %s\n", spot.Position, before, after)

		spot.QRCodeURL = &after
		if err := uc.Spots.UpdateSpot(ctx, &spot); err != nil {
			item.Err = err
			fmt.Fprintf(uc.Out, "  ❌ update failed: %v\n", err)
		} else {
			fmt.Fprintln(uc.Out, "  ✅ updated")
		}
		report.add(item)
	}

	fmt.Fprintf(uc.Out, "Updated %d QR code URLs (%d failed, %d left unchanged)\n",
		report.Succeeded(), len(report.Failures()), report.Skipped)
	return report, nil
}

// RewriteQRURL swaps the scheme://host prefix of raw for productionBase when
// raw's host equals placeholderHost. Path, query and fragment are kept
// byte-for-byte.
func RewriteQRURL(raw, placeholderHost, productionBase string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw, false
	}
	if !strings.EqualFold(u.Host, placeholderHost) {
		return raw, false
	}

	prefix := u.Scheme + "://" + u.Host
	if !strings.HasPrefix(raw, prefix) {
		return raw, false
	}
	return productionBase + raw[len(prefix):], true
}
