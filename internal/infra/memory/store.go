// Package memory keeps ad spots, landing pages and analytics events in
// process memory. It satisfies the same repository contracts as the
// Postgres implementation and is used by tests and local dry runs.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

type Store struct {
	mu     sync.Mutex
	spots  map[string]entity.AdSpot
	pages  []entity.LandingPage
	events []entity.AnalyticsEvent

	// UniqueSlugs mimics a unique index on landing_pages.slug.
	UniqueSlugs bool
	// Columns present on the analytics table, for ProbeColumn.
	AnalyticsColumns []string
}

func NewStore(spots ...entity.AdSpot) *Store {
	s := &Store{
		spots:            make(map[string]entity.AdSpot, len(spots)),
		AnalyticsColumns: []string{"id", "ad_spot_id", "advertiser_id", "event_type", "created_at"},
	}
	for _, sp := range spots {
		s.spots[sp.ID] = sp
	}
	return s
}

func (s *Store) ListSpots(ctx context.Context, filter entity.SpotFilter) ([]entity.AdSpot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.AdSpot
	for _, sp := range s.spots {
		if filter.Match(sp) {
			out = append(out, copySpot(sp))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *Store) FindSpotByID(ctx context.Context, id string) (*entity.AdSpot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, ok := s.spots[id]
	if !ok {
		return nil, entity.ErrAdSpotNotFound
	}
	cp := copySpot(sp)
	return &cp, nil
}

func (s *Store) UpdateSpot(ctx context.Context, spot *entity.AdSpot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.spots[spot.ID]; !ok {
		return entity.ErrAdSpotNotFound
	}
	s.spots[spot.ID] = copySpot(*spot)
	return nil
}

func (s *Store) InsertLandingPage(ctx context.Context, p *entity.LandingPage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.UniqueSlugs {
		for _, existing := range s.pages {
			if existing.Slug == p.Slug {
				return fmt.Errorf("%w: %s", entity.ErrSlugAlreadyExists, p.Slug)
			}
		}
	}
	s.pages = append(s.pages, *p)
	return nil
}

func (s *Store) FindBySlug(ctx context.Context, slug string) (*entity.LandingPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.pages {
		if p.Slug == slug {
			cp := p
			return &cp, nil
		}
	}
	return nil, entity.ErrLandingPageNotFound
}

func (s *Store) CountLandingPages(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages), nil
}

func (s *Store) ListSlugs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slugs := make([]string, 0, len(s.pages))
	for _, p := range s.pages {
		slugs = append(slugs, p.Slug)
	}
	return slugs, nil
}

func (s *Store) InsertEvent(ctx context.Context, e *entity.AnalyticsEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !entity.IsValidEventType(e.EventType) {
		return fmt.Errorf("analytics_event_type_check violated: %q", e.EventType)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, *e)
	return nil
}

func (s *Store) ProbeColumn(ctx context.Context, column string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.AnalyticsColumns {
		if c == column {
			return nil
		}
	}
	return errors.New(`column "` + column + `" does not exist`)
}

// LandingPages returns a snapshot of every inserted page.
func (s *Store) LandingPages() []entity.LandingPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.LandingPage(nil), s.pages...)
}

// Events returns a snapshot of every inserted analytics event.
func (s *Store) Events() []entity.AnalyticsEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.AnalyticsEvent(nil), s.events...)
}

func (s *Store) Spot(id string) (entity.AdSpot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.spots[id]
	return copySpot(sp), ok
}

func copySpot(sp entity.AdSpot) entity.AdSpot {
	sp.AdvertiserID = copyStr(sp.AdvertiserID)
	sp.QRCodeURL = copyStr(sp.QRCodeURL)
	sp.LandingPageSlug = copyStr(sp.LandingPageSlug)
	sp.AdCopyURL = copyStr(sp.AdCopyURL)
	return sp
}

func copyStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
