package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/infra/http/handlers"
	"github.com/xavierca1/postcard-ads/internal/infra/http/middleware"
)

const requestTimeout = 30 * time.Second

type Handlers struct {
	ClaimOffer *handlers.ClaimOfferHandler
	Contact    *handlers.ContactHandler
	QR         *handlers.QRHandler
	Offer      *handlers.OfferHandler
	Scan       *handlers.ScanHandler
	Pages      *handlers.PagesHandler
	Health     *handlers.HealthHandler
}

func New(h Handlers, allowedOrigins []string, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))

		r.Route("/api", func(r chi.Router) {
			r.Post("/claim-offer", h.ClaimOffer.Handle)
			r.Post("/contact", h.Contact.Handle)
			r.Get("/qr", h.QR.Handle)
			r.Get("/offers/{slug}", h.Offer.HandleGet)
		})

		r.Get("/s/{slug}", h.Scan.Handle)
		r.Get("/signup/success", h.Pages.SignupSuccess)
	})

	r.NotFound(h.Pages.NotFound)
	return r
}
