package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tasteplaces/tasteplaces/internal/engine"
	"github.com/tasteplaces/tasteplaces/internal/models"
	"github.com/tasteplaces/tasteplaces/internal/repository"
	"github.com/tasteplaces/tasteplaces/internal/service"
	"go.uber.org/zap"
)

var errInvalidParam = errors.New("invalid query parameter")

// RestaurantHandler handles restaurant-related HTTP requests
type RestaurantHandler struct {
	service *service.RestaurantService
	logger  *zap.Logger
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(service *service.RestaurantService, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		logger:  logger,
	}
}

// ParseSearchParams extracts the engine query from the URL.
// Accepted keys: q (or search), rating, price, cuisine, sort. Empty values mean "no filter".
func ParseSearchParams(query url.Values) (engine.Query, error) {
	var (
		q   engine.Query
		err error
	)

	q.Search = query.Get("q")
	if q.Search == "" {
		q.Search = query.Get("search")
	}

	if q.Rating, err = parseBounded(query, "rating", models.MinRating, models.MaxRating); err != nil {
		return engine.Query{}, err
	}
	if q.Price, err = parseBounded(query, "price", models.MinPrice, models.MaxPrice); err != nil {
		return engine.Query{}, err
	}

	q.Cuisine = query.Get("cuisine")

	if q.Sort, err = engine.ParseSortOrder(query.Get("sort")); err != nil {
		return engine.Query{}, fmt.Errorf("%w: %v", errInvalidParam, err)
	}

	return q, nil
}

func parseBounded(query url.Values, key string, min, max int) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, fmt.Errorf("%w: %s must be an integer between %d and %d", errInvalidParam, key, min, max)
	}
	return v, nil
}

// ListRestaurants handles GET /api/restaurant
// Runs the search/filter/sort pipeline over the catalog. An empty list is a valid answer.
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	q, err := ParseSearchParams(r.URL.Query())
	if err != nil {
		h.logger.Warn("invalid search parameters", zap.String("query", r.URL.RawQuery), zap.Error(err))
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	restaurants, err := h.service.Search(r.Context(), q)
	if err != nil {
		h.logger.Error("failed to search restaurants", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, restaurants, h.logger)
}

// GetRestaurant handles GET /api/restaurant/{restaurantId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Restaurant not found
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantId")

	id, err := strconv.Atoi(restaurantID)
	if err != nil || id <= 0 {
		h.logger.Warn("invalid restaurant ID format", zap.String("restaurantId", restaurantID))
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	restaurant, err := h.service.GetRestaurant(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			h.logger.Info("restaurant not found", zap.Int("restaurantId", id))
			WriteError(w, http.StatusNotFound, "Restaurant not found", h.logger)
			return
		}

		h.logger.Error("failed to get restaurant", zap.Int("restaurantId", id), zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, restaurant, h.logger)
}

// ListCuisines handles GET /api/cuisine
func (h *RestaurantHandler) ListCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.service.Cuisines(r.Context())
	if err != nil {
		h.logger.Error("failed to list cuisines", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, cuisines, h.logger)
}
