package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"voiceorder-service/internal/catalog"
	"voiceorder-service/internal/config"
	"voiceorder-service/internal/middleware"
	ordHnd "voiceorder-service/internal/ordering/handler"
	"voiceorder-service/server/http/handlers"
)

// Deps: собранные в main сервисы.
type Deps struct {
	Catalog *catalog.Store
	Pricer  ordHnd.Pricer
	Orders  ordHnd.Placer
}

func NewRouter(cfg config.Config, logger zerolog.Logger, d Deps) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxBodyKB) * 1024))

	r.Get("/health", handlers.Health(d.Catalog))

	// инструменты голосового агента
	r.Post("/webhook", ordHnd.Webhook(d.Pricer, d.Orders, logger))
	r.Post("/price", ordHnd.Price(d.Pricer, logger))

	r.Route("/orders", func(r chi.Router) {
		r.Post("/quote", ordHnd.QuoteOrder(d.Pricer, logger))
		r.Post("/", ordHnd.PlaceOrder(d.Orders, logger))
		r.Get("/{id}", ordHnd.GetOrder(d.Orders, logger))
	})

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/suggest", ordHnd.Suggest(d.Pricer))
		r.Post("/reload", ordHnd.ReloadCatalog(d.Catalog, logger))
	})

	return r
}
