package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

type OfferHandler struct {
	Pages entity.LandingPageRepository
	log   *zap.Logger
}

func NewOfferHandler(pages entity.LandingPageRepository, log *zap.Logger) *OfferHandler {
	return &OfferHandler{Pages: pages, log: log}
}

// HandleGet returns a published landing page. Unpublished pages are
// reported as missing.
func (h *OfferHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := h.Pages.FindBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, entity.ErrLandingPageNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Offer not found")
			return
		}
		h.log.Error("offer lookup failed", zap.String("slug", slug), zap.Error(err))
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to load offer")
		return
	}

	if !page.Published {
		writeErrorResponse(w, http.StatusNotFound, "Offer not found")
		return
	}

	writeJSON(w, http.StatusOK, page)
}
