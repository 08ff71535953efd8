package engine

import (
	"slices"

	"github.com/tasteplaces/tasteplaces/internal/models"
)

// Cuisines returns the distinct cuisines of restaurants in ascending order.
// The result feeds the cuisine filter choices.
func Cuisines(restaurants []models.Restaurant) []string {
	return distinct(restaurants, func(r models.Restaurant) string { return r.Cuisine })
}

// Neighborhoods returns the distinct neighborhoods of restaurants in ascending order
func Neighborhoods(restaurants []models.Restaurant) []string {
	return distinct(restaurants, func(r models.Restaurant) string { return r.Neighborhood })
}

func distinct(restaurants []models.Restaurant, field func(models.Restaurant) string) []string {
	seen := make(map[string]struct{}, len(restaurants))
	values := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}
