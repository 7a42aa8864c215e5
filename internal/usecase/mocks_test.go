package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

// MockAnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) InsertEvent(ctx context.Context, e *entity.AnalyticsEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) ProbeColumn(ctx context.Context, column string) error {
	args := m.Called(ctx, column)
	return args.Error(0)
}

// MockAdSpotRepository
type MockAdSpotRepository struct {
	mock.Mock
}

func (m *MockAdSpotRepository) ListSpots(ctx context.Context, filter entity.SpotFilter) ([]entity.AdSpot, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AdSpot), args.Error(1)
}

func (m *MockAdSpotRepository) FindSpotByID(ctx context.Context, id string) (*entity.AdSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdSpot), args.Error(1)
}

func (m *MockAdSpotRepository) UpdateSpot(ctx context.Context, spot *entity.AdSpot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

// MockContactSender
type MockContactSender struct {
	mock.Mock
}

func (m *MockContactSender) SendContact(msg entity.ContactMessage) (string, error) {
	args := m.Called(msg)
	return args.String(0), args.Error(1)
}

func strPtr(s string) *string { return &s }
