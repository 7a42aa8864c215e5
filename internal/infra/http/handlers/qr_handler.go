package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/infra/http/middleware"
	"github.com/xavierca1/postcard-ads/internal/infra/qrcode"
)

const qrDownloadFilename = "qr-code.png"

type QRRenderer interface {
	Render(url string, size int) ([]byte, error)
}

type QRHandler struct {
	Renderer QRRenderer
	log      *zap.Logger
}

func NewQRHandler(renderer QRRenderer, log *zap.Logger) *QRHandler {
	return &QRHandler{Renderer: renderer, log: log}
}

// Handle serves GET /api/qr?url=...&size=...&download=true.
func (h *QRHandler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	target := q.Get("url")
	if target == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Missing required fields: url")
		return
	}

	size := 0
	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > qrcode.MaxSize {
			writeErrorResponse(w, http.StatusBadRequest, qrcode.ErrInvalidSize.Error())
			return
		}
		size = n
	}

	png, err := h.Renderer.Render(target, size)
	if err != nil {
		middleware.RecordQRRender(false)
		if errors.Is(err, qrcode.ErrEmptyURL) || errors.Is(err, qrcode.ErrInvalidSize) {
			writeErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("qr render failed", zap.String("url", target), zap.Int("size", size), zap.Error(err))
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	middleware.RecordQRRender(true)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if download, _ := strconv.ParseBool(q.Get("download")); download {
		w.Header().Set("Content-Disposition", `attachment; filename="`+qrDownloadFilename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
