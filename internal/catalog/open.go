package catalog

import (
	"github.com/tasteplaces/tasteplaces/internal/repository"
)

// Open returns the repository backing a catalog. An empty path selects the
// built-in Montreal fixtures.
func Open(path string) (*repository.InMemoryRestaurantRepository, error) {
	if path == "" {
		return repository.NewInMemoryRestaurantRepository(), nil
	}

	restaurants, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return repository.NewInMemoryRestaurantRepositoryFrom(restaurants)
}
