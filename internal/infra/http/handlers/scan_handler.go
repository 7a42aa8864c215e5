package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/entity"
	"github.com/xavierca1/postcard-ads/internal/infra/http/middleware"
	"github.com/xavierca1/postcard-ads/internal/usecase"
)

// ScanHandler is the target printed into QR codes. It records the scan
// and sends the recipient on to the public offer page.
type ScanHandler struct {
	RecordScanUC  *usecase.RecordScanUseCase
	PublicBaseURL string
	Pages         *PagesHandler
	log           *zap.Logger
}

func NewScanHandler(uc *usecase.RecordScanUseCase, publicBaseURL string, pages *PagesHandler, log *zap.Logger) *ScanHandler {
	return &ScanHandler{
		RecordScanUC:  uc,
		PublicBaseURL: publicBaseURL,
		Pages:         pages,
		log:           log,
	}
}

func (h *ScanHandler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	out, err := h.RecordScanUC.Execute(r.Context(), slug)
	switch {
	case errors.Is(err, entity.ErrLandingPageNotFound):
		h.Pages.NotFound(w, r)
		return
	case err != nil:
		// the offer page reports its own lookup failure
		h.log.Error("scan lookup failed", zap.String("slug", slug), zap.Error(err))
		middleware.RecordScan(false)
	default:
		middleware.RecordScan(out.Recorded)
	}

	http.Redirect(w, r, h.offerURL(slug), http.StatusFound)
}

func (h *ScanHandler) offerURL(slug string) string {
	return h.PublicBaseURL + "/offer/" + url.PathEscape(slug)
}
