package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tasteplaces/tasteplaces/internal/models"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// RestaurantRepository defines the interface for restaurant data access
type RestaurantRepository interface {
	GetAll(ctx context.Context) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id int) (*models.Restaurant, error)
}

// InMemoryRestaurantRepository implements RestaurantRepository over a read-only,
// ordered catalog. Insertion order is the "default" sort order.
type InMemoryRestaurantRepository struct {
	restaurants []models.Restaurant
	index       map[int]int
}

// NewInMemoryRestaurantRepository creates a repository seeded with the built-in Montreal catalog
func NewInMemoryRestaurantRepository() *InMemoryRestaurantRepository {
	repo, err := NewInMemoryRestaurantRepositoryFrom(SeedRestaurants())
	if err != nil {
		panic(fmt.Sprintf("built-in restaurant catalog is invalid: %v", err))
	}
	return repo
}

// NewInMemoryRestaurantRepositoryFrom creates a repository from the given records.
// The records are validated and copied; the caller's slice is not retained.
func NewInMemoryRestaurantRepositoryFrom(restaurants []models.Restaurant) (*InMemoryRestaurantRepository, error) {
	if err := models.ValidateCatalog(restaurants); err != nil {
		return nil, err
	}

	stored := make([]models.Restaurant, len(restaurants))
	copy(stored, restaurants)

	index := make(map[int]int, len(stored))
	for i, r := range stored {
		index[r.ID] = i
	}

	return &InMemoryRestaurantRepository{
		restaurants: stored,
		index:       index,
	}, nil
}

// GetAll returns a copy of all restaurants in catalog order
func (r *InMemoryRestaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := make([]models.Restaurant, len(r.restaurants))
	copy(restaurants, r.restaurants)
	return restaurants, nil
}

// GetByID returns a restaurant by its ID
func (r *InMemoryRestaurantRepository) GetByID(ctx context.Context, id int) (*models.Restaurant, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, ErrRestaurantNotFound
	}
	restaurant := r.restaurants[i]
	return &restaurant, nil
}

// Len returns the number of restaurants in the catalog
func (r *InMemoryRestaurantRepository) Len() int {
	return len(r.restaurants)
}
