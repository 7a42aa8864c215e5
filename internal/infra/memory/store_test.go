package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

func strPtr(s string) *string { return &s }

func TestListSpotsOrderedAndFiltered(t *testing.T) {
	ctx := context.Background()
	store := NewStore(
		entity.AdSpot{ID: "c", Position: 3, Status: entity.SpotStatusPurchased, AdvertiserID: strPtr("adv-1")},
		entity.AdSpot{ID: "a", Position: 1, Status: entity.SpotStatusAvailable},
		entity.AdSpot{ID: "b", Position: 2, Status: entity.SpotStatusPurchased, LandingPageSlug: strPtr("pizza")},
	)

	all, err := store.ListSpots(ctx, entity.SpotFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})

	purchased, err := store.ListSpots(ctx, entity.SpotFilter{Status: entity.SpotStatusPurchased, WithLandingPage: true})
	require.NoError(t, err)
	require.Len(t, purchased, 1)
	assert.Equal(t, "b", purchased[0].ID)
}

func TestUpdateSpotDoesNotAlias(t *testing.T) {
	ctx := context.Background()
	store := NewStore(entity.AdSpot{ID: "a", Position: 1, QRCodeURL: strPtr("https://old.example.com/offer/x")})

	spot, err := store.FindSpotByID(ctx, "a")
	require.NoError(t, err)

	*spot.QRCodeURL = "https://new.example.com/offer/x"
	stored, _ := store.Spot("a")
	assert.Equal(t, "https://old.example.com/offer/x", *stored.QRCodeURL)

	require.NoError(t, store.UpdateSpot(ctx, spot))
	stored, _ = store.Spot("a")
	assert.Equal(t, "https://new.example.com/offer/x", *stored.QRCodeURL)

	err = store.UpdateSpot(ctx, &entity.AdSpot{ID: "missing"})
	assert.ErrorIs(t, err, entity.ErrAdSpotNotFound)
}

func TestInsertLandingPageUniqueSlugs(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	p1, _ := entity.NewLandingPage("spot-1", "pizza")
	p2, _ := entity.NewLandingPage("spot-1", "pizza")
	require.NoError(t, store.InsertLandingPage(ctx, p1))
	require.NoError(t, store.InsertLandingPage(ctx, p2))

	n, _ := store.CountLandingPages(ctx)
	assert.Equal(t, 2, n)

	store.UniqueSlugs = true
	p3, _ := entity.NewLandingPage("spot-1", "pizza")
	err := store.InsertLandingPage(ctx, p3)
	assert.True(t, errors.Is(err, entity.ErrSlugAlreadyExists))
}

func TestInsertEventRejectsUnknownType(t *testing.T) {
	store := NewStore()

	err := store.InsertEvent(context.Background(), &entity.AnalyticsEvent{EventType: "click", CreatedAt: time.Now()})
	assert.Error(t, err)
	assert.Empty(t, store.Events())
}

func TestProbeColumn(t *testing.T) {
	store := NewStore()
	assert.NoError(t, store.ProbeColumn(context.Background(), "event_type"))

	store.AnalyticsColumns = []string{"id"}
	err := store.ProbeColumn(context.Background(), "event_type")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event_type")
}
