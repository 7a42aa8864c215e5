package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

// BackfillLandingPagesUseCase creates a landing page for every purchased
// spot that has a slug. It does not look for an existing page first, so a
// second run inserts a second page per slug unless the database rejects it.
type BackfillLandingPagesUseCase struct {
	Spots entity.AdSpotRepository
	Pages entity.LandingPageRepository
	Out   io.Writer
}

func NewBackfillLandingPagesUseCase(spots entity.AdSpotRepository, pages entity.LandingPageRepository, out io.Writer) *BackfillLandingPagesUseCase {
	return &BackfillLandingPagesUseCase{Spots: spots, Pages: pages, Out: out}
}

func (uc *BackfillLandingPagesUseCase) Execute(ctx context.Context) (*Report, error) {
	spots, err := uc.Spots.ListSpots(ctx, entity.SpotFilter{
		Status:          entity.SpotStatusPurchased,
		WithLandingPage: true,
	})
	if err != nil {
		fmt.Fprintf(uc.Out, "❌ Error fetching purchased spots: %v\n", err)
		return nil, &PersistenceError{Op: "list purchased spots", Err: err}
	}

	fmt.Fprintf(uc.Out, "Found %d purchased spots with a landing page slug\n", len(spots))

	report := &Report{}
	for _, spot := range spots {
		slug := deref(spot.LandingPageSlug)
		item := ItemResult{ID: spot.ID, Slug: slug}

		page, err := entity.NewLandingPage(spot.ID, slug)
		if err == nil {
			err = uc.Pages.InsertLandingPage(ctx, page)
		}

		if err != nil {
			item.Err = err
			fmt.Fprintf(uc.Out, "❌ Failed to create landing page for %s: %v\n", slug, err)
		} else {
			item.After = page.ID
			fmt.Fprintf(uc.Out, "✅ Created landing page for %s\n", slug)
		}
		report.add(item)
	}

	fmt.Fprintf(uc.Out, "Done: %d created, %d failed\n", report.Succeeded(), len(report.Failures()))
	return report, nil
}
