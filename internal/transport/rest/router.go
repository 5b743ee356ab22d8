package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dreamlog/backend/internal/config"
	"github.com/dreamlog/backend/internal/transport/middleware"
)

// TokenValidator resolves bearer tokens for the auth middleware.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Deps bundles everything the router mounts.
type Deps struct {
	Logger    *slog.Logger
	Auth      *AuthHandler
	Dreams    *DreamHandler
	Health    *HealthHandler
	Validator TokenValidator
	CORS      config.CORSConfig
	Limiter   *middleware.RateLimiter
	RateLimit int
}

// NewRouter assembles the HTTP surface: health probes, the identity
// endpoints, and the journal routes behind bearer auth.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.CORS(d.CORS))
	if d.Limiter != nil && d.RateLimit > 0 {
		r.Use(d.Limiter.Limit(d.RateLimit))
	}

	r.Get("/health", d.Health.Health)
	r.Get("/health/live", d.Health.Live)
	r.Get("/health/ready", d.Health.Ready)

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", d.Auth.Register)
			ar.Post("/login", d.Auth.Login)
		})

		api.Route("/dreams", func(dr chi.Router) {
			dr.Use(middleware.Auth(d.Validator))
			dr.Use(middleware.RequireUser)

			dr.Post("/", d.Dreams.Submit)
			dr.Get("/", d.Dreams.List)
			dr.Get("/stats", d.Dreams.Stats)

			dr.Route("/{dreamID}", func(ir chi.Router) {
				ir.Get("/", d.Dreams.Get)
				ir.Patch("/", d.Dreams.Update)
				ir.Delete("/", d.Dreams.Delete)
			})
		})
	})

	return r
}
