package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/tasteplaces/tasteplaces/internal/config"
	"github.com/tasteplaces/tasteplaces/internal/middleware"
	"github.com/tasteplaces/tasteplaces/internal/service"
	"go.uber.org/zap"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// NewRouter wires every HTTP route of the API
func NewRouter(cfg *config.Config, restaurants *service.RestaurantService, sessions *service.SessionService, log *zap.Logger) chi.Router {
	healthHandler := NewHealthHandler(restaurants, log)
	restaurantHandler := NewRestaurantHandler(restaurants, log)
	sessionHandler := NewSessionHandler(sessions, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "api_key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/restaurant", restaurantHandler.ListRestaurants)
		r.Get("/restaurant/{restaurantId}", restaurantHandler.GetRestaurant)
		r.Get("/cuisine", restaurantHandler.ListCuisines)

		r.Route("/session", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))

			r.Post("/", sessionHandler.CreateSession)
			r.Get("/{sessionId}", sessionHandler.GetSession)
			r.Post("/{sessionId}/action", sessionHandler.Dispatch)
			r.Delete("/{sessionId}", sessionHandler.DeleteSession)
		})
	})

	return r
}
