package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/infra/http/middleware"
	"github.com/xavierca1/postcard-ads/internal/usecase"
)

type ContactHandler struct {
	SendContactUC *usecase.SendContactUseCase
	log           *zap.Logger
}

func NewContactHandler(uc *usecase.SendContactUseCase, log *zap.Logger) *ContactHandler {
	return &ContactHandler{SendContactUC: uc, log: log}
}

func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ContactInput
	if err := decodeJSON(r, &input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	output, err := h.SendContactUC.Execute(input)
	if err != nil {
		if usecase.IsDeliveryError(err) {
			middleware.RecordContactEmail(false)
		} else if !usecase.IsValidationError(err) {
			h.log.Error("contact form failed", zap.Error(err))
		}
		writeUseCaseError(w, err, "Failed to send message")
		return
	}

	middleware.RecordContactEmail(true)
	writeJSON(w, http.StatusOK, output)
}
