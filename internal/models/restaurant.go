package models

import (
	"errors"
	"fmt"
)

// Rating and price bounds for a restaurant record
const (
	MinRating = 1
	MaxRating = 3
	MinPrice  = 1
	MaxPrice  = 4
)

var (
	ErrInvalidRestaurant = errors.New("invalid restaurant")
	ErrDuplicateID       = errors.New("duplicate restaurant id")
)

// Restaurant represents a single entry of the restaurant catalog.
// Records are immutable once the catalog is loaded.
type Restaurant struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Cuisine      string `json:"cuisine" yaml:"cuisine"`
	Rating       int    `json:"rating" yaml:"rating"`
	Price        int    `json:"price" yaml:"price"`
	Address      string `json:"address" yaml:"address"`
	City         string `json:"city" yaml:"city"`
	Neighborhood string `json:"neighborhood" yaml:"neighborhood"`
	KnownFor     string `json:"knownFor" yaml:"knownFor"`
	Description  string `json:"description" yaml:"description"`
}

// Validate checks the per-record invariants
func (r Restaurant) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidRestaurant, r.ID)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: id %d has an empty name", ErrInvalidRestaurant, r.ID)
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return fmt.Errorf("%w: id %d rating %d out of range [%d,%d]", ErrInvalidRestaurant, r.ID, r.Rating, MinRating, MaxRating)
	}
	if r.Price < MinPrice || r.Price > MaxPrice {
		return fmt.Errorf("%w: id %d price %d out of range [%d,%d]", ErrInvalidRestaurant, r.ID, r.Price, MinPrice, MaxPrice)
	}
	return nil
}

// ValidateCatalog validates every record and checks that ids are unique
func ValidateCatalog(restaurants []Restaurant) error {
	seen := make(map[int]struct{}, len(restaurants))
	for _, r := range restaurants {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}
