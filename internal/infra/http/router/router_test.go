package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/entity"
	"github.com/xavierca1/postcard-ads/internal/infra/http/handlers"
	"github.com/xavierca1/postcard-ads/internal/infra/memory"
	"github.com/xavierca1/postcard-ads/internal/infra/qrcode"
	"github.com/xavierca1/postcard-ads/internal/usecase"
)

type nopSender struct{}

func (nopSender) SendContact(msg entity.ContactMessage) (string, error) { return "id-1", nil }

func newTestRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	log := zap.NewNop()
	adv := "adv1"
	store := memory.NewStore(entity.AdSpot{ID: "as1", Position: 1, Status: entity.SpotStatusPurchased, AdvertiserID: &adv})
	page, err := entity.NewLandingPage("as1", "joes-pizza")
	require.NoError(t, err)
	require.NoError(t, store.InsertLandingPage(context.Background(), page))

	pages := handlers.NewPagesHandler("https://postcardads.com")
	h := Handlers{
		ClaimOffer: handlers.NewClaimOfferHandler(usecase.NewRecordConversionUseCase(store, log), log),
		Contact:    handlers.NewContactHandler(usecase.NewSendContactUseCase(nopSender{}, log), log),
		QR:         handlers.NewQRHandler(qrcode.NewRenderer(), log),
		Offer:      handlers.NewOfferHandler(store, log),
		Scan:       handlers.NewScanHandler(usecase.NewRecordScanUseCase(store, store, store, log), "https://postcardads.com", pages, log),
		Pages:      pages,
		Health:     handlers.NewHealthHandler(nil, nil, "test"),
	}
	return New(h, []string{"*"}, log), store
}

func TestRoutes(t *testing.T) {
	r, store := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/claim-offer", `{"landingPageId":"lp","adSpotId":"as1","advertiserId":"adv1"}`, http.StatusOK},
		{http.MethodPost, "/api/contact", `{"name":"Joe","email":"a@b.co","message":"hi"}`, http.StatusOK},
		{http.MethodGet, "/api/qr?url=https://postcardads.com", "", http.StatusOK},
		{http.MethodGet, "/api/offers/joes-pizza", "", http.StatusOK},
		{http.MethodGet, "/api/offers/nope", "", http.StatusNotFound},
		{http.MethodGet, "/s/joes-pizza", "", http.StatusFound},
		{http.MethodGet, "/signup/success", "", http.StatusOK},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	assert.Len(t, store.Events(), 2)
}

func TestNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pricing/old", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://postcardads.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
