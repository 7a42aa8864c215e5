package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

type SpotStatusReport struct {
	Spots            []entity.AdSpot
	Advertised       []entity.AdSpot
	LandingPageCount int
	Slugs            []string
}

// InspectSpotsUseCase prints the state of every ad spot and landing page.
// It never writes.
type InspectSpotsUseCase struct {
	Spots entity.AdSpotRepository
	Pages entity.LandingPageRepository
	Out   io.Writer
}

func NewInspectSpotsUseCase(spots entity.AdSpotRepository, pages entity.LandingPageRepository, out io.Writer) *InspectSpotsUseCase {
	return &InspectSpotsUseCase{Spots: spots, Pages: pages, Out: out}
}

// Execute runs every section even if an earlier one fails; the returned
// error joins all section failures.
func (uc *InspectSpotsUseCase) Execute(ctx context.Context) (*SpotStatusReport, error) {
	report := &SpotStatusReport{}
	var errs []error

	fmt.Fprintln(uc.Out, "📊 Ad spot status")
	spots, err := uc.Spots.ListSpots(ctx, entity.SpotFilter{})
	if err != nil {
		fmt.Fprintf(uc.Out, "❌ Error fetching ad spots: %v\n", err)
		errs = append(errs, &PersistenceError{Op: "list ad spots", Err: err})
	}
	report.Spots = spots
	for _, s := range spots {
		fmt.Fprintf(uc.Out, "  Position %d (%s): %s\n", s.Position, s.Side, s.Status)
	}

	fmt.Fprintln(uc.Out, "\n📋 Spots with advertisers")
	advertised, err := uc.Spots.ListSpots(ctx, entity.SpotFilter{WithAdvertiser: true})
	if err != nil {
		fmt.Fprintf(uc.Out, "❌ Error fetching advertised spots: %v\n", err)
		errs = append(errs, &PersistenceError{Op: "list advertised spots", Err: err})
	}
	report.Advertised = advertised
	for _, s := range advertised {
		fmt.Fprintf(uc.Out, "  Position %d (%s) advertiser=%s\n", s.Position, s.Side, deref(s.AdvertiserID))
		fmt.Fprintf(uc.Out, "    QR code:      %s\n", presence(s.HasQRCode(), s.QRCodeURL))
		fmt.Fprintf(uc.Out, "    Landing page: %s\n", presence(s.HasLandingPage(), s.LandingPageSlug))
		fmt.Fprintf(uc.Out, "    Ad copy:      %s\n", presence(s.HasAdCopy(), s.AdCopyURL))
	}

	count, err := uc.Pages.CountLandingPages(ctx)
	if err != nil {
		fmt.Fprintf(uc.Out, "❌ Error counting landing pages: %v\n", err)
		errs = append(errs, &PersistenceError{Op: "count landing pages", Err: err})
	}
	report.LandingPageCount = count
	fmt.Fprintf(uc.Out, "\n📄 Landing pages: %d\n", count)

	slugs, err := uc.Pages.ListSlugs(ctx)
	if err != nil {
		fmt.Fprintf(uc.Out, "❌ Error listing landing page slugs: %v\n", err)
		errs = append(errs, &PersistenceError{Op: "list landing page slugs", Err: err})
	}
	report.Slugs = slugs
	for _, slug := range slugs {
		fmt.Fprintf(uc.Out, "  - %s\n", slug)
	}

	return report, errors.Join(errs...)
}

func presence(ok bool, value *string) string {
	if ok {
		return "✅ " + *value
	}
	return "❌"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
