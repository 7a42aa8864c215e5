package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/infra/http/middleware"
	"github.com/xavierca1/postcard-ads/internal/usecase"
)

type ClaimOfferHandler struct {
	RecordConversionUC *usecase.RecordConversionUseCase
	log                *zap.Logger
}

func NewClaimOfferHandler(uc *usecase.RecordConversionUseCase, log *zap.Logger) *ClaimOfferHandler {
	return &ClaimOfferHandler{RecordConversionUC: uc, log: log}
}

// Handle records one conversion per request. Claiming the same offer
// twice records two events.
func (h *ClaimOfferHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ClaimOfferInput
	if err := decodeJSON(r, &input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if _, err := h.RecordConversionUC.Execute(r.Context(), input); err != nil {
		if !usecase.IsValidationError(err) {
			h.log.Error("claim offer failed", zap.Error(err))
		}
		writeUseCaseError(w, err, "Failed to record conversion")
		return
	}

	middleware.RecordConversion()
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
