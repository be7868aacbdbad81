package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/beerstock/internal/docs"
	"github.com/rogerio-castellano/beerstock/internal/http/handlers"
	mw "github.com/rogerio-castellano/beerstock/internal/http/middleware"
	rl "github.com/rogerio-castellano/beerstock/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Options selects the optional middleware. A nil TokenParser leaves the
// mutating routes open and a nil Limiter disables rate limiting.
type Options struct {
	Logger      *zap.Logger
	TokenParser mw.TokenParser
	Limiter     *rl.Limiter
}

func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	if opts.Limiter != nil {
		r.Use(mw.RateLimit(opts.Limiter, logger))
	}

	protected := func(r chi.Router) chi.Router {
		if opts.TokenParser == nil {
			return r
		}
		return r.With(mw.Auth(opts.TokenParser, logger))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

		r.Route("/beers", func(r chi.Router) {
			r.Get("/", handlers.ListBeersHandler)
			r.Get("/{name}", handlers.GetBeerByNameHandler)
			r.Get("/{id}/movements", handlers.GetMovementsHandler)
			r.Get("/{id}/movements/export", handlers.ExportMovementsHandler)

			protected(r).Post("/", handlers.CreateBeerHandler)
			protected(r).Post("/import", handlers.ImportBeersHandler)
			protected(r).Delete("/{id}", handlers.DeleteBeerHandler)
			protected(r).Patch("/{id}/increment", handlers.IncrementBeerHandler)
			protected(r).Patch("/{id}/decrement", handlers.DecrementBeerHandler)
		})
	})

	return r
}
