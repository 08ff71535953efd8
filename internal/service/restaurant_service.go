package service

import (
	"context"

	"github.com/tasteplaces/tasteplaces/internal/engine"
	"github.com/tasteplaces/tasteplaces/internal/models"
	"github.com/tasteplaces/tasteplaces/internal/repository"
)

// RestaurantService handles business logic for restaurants
type RestaurantService struct {
	repo   repository.RestaurantRepository
	engine *engine.Engine
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(repo repository.RestaurantRepository, eng *engine.Engine) *RestaurantService {
	if eng == nil {
		eng = engine.New()
	}
	return &RestaurantService{
		repo:   repo,
		engine: eng,
	}
}

// ListRestaurants returns all restaurants in catalog order
func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.repo.GetAll(ctx)
}

// GetRestaurant returns a restaurant by ID
func (s *RestaurantService) GetRestaurant(ctx context.Context, id int) (*models.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

// Search runs the filter/sort pipeline over the catalog
func (s *RestaurantService) Search(ctx context.Context, q engine.Query) ([]models.Restaurant, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Apply(all, q), nil
}

// Cuisines returns the distinct cuisines of the catalog
func (s *RestaurantService) Cuisines(ctx context.Context) ([]string, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Cuisines(all), nil
}

// Exists reports whether id is in the catalog
func (s *RestaurantService) Exists(ctx context.Context, id int) bool {
	_, err := s.repo.GetByID(ctx, id)
	return err == nil
}
