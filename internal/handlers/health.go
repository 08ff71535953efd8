package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/tasteplaces/tasteplaces/internal/models"
	"go.uber.org/zap"
)

// catalogLister exposes the loaded catalog
type catalogLister interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	catalog catalogLister
	logger  *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(catalog catalogLister, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Restaurants int       `json:"restaurants"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.catalog.ListRestaurants(r.Context())
	if err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "unhealthy",
			Timestamp: time.Now().UTC(),
			Version:   Version,
		}, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Version:     Version,
		Restaurants: len(restaurants),
	}, h.logger)
}
