// Package engine derives the displayed restaurant list from the catalog and the
// current query. Every function here is pure: inputs are never mutated and the
// same inputs always produce the same output.
package engine

import (
	"cmp"
	"slices"
	"strings"

	"github.com/tasteplaces/tasteplaces/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query parameterizes one run of the pipeline. Zero values disable a stage:
// an empty Search, a Rating or Price of 0 and an empty Cuisine match everything.
type Query struct {
	Search  string    `json:"q,omitempty"`
	Rating  int       `json:"rating,omitempty"`
	Price   int       `json:"price,omitempty"`
	Cuisine string    `json:"cuisine,omitempty"`
	Sort    SortOrder `json:"sort,omitempty"`
}

// FiltersActive reports whether any of the rating, price or cuisine filters is set
func (q Query) FiltersActive() bool {
	return q.Rating != 0 || q.Price != 0 || q.Cuisine != ""
}

// Stage is one step of the pipeline. A stage returns a new slice or its input
// unchanged; it never modifies the elements of its input.
type Stage func([]models.Restaurant) []models.Restaurant

// Engine runs the search, filter and sort stages in a fixed order
type Engine struct {
	locale language.Tag
}

// Option configures an Engine
type Option func(*Engine)

// WithLocale sets the collation locale used by the name sort
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) {
		e.locale = tag
	}
}

// New creates an Engine. Name sorting defaults to English collation.
func New(opts ...Option) *Engine {
	e := &Engine{locale: language.English}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stages returns the pipeline for q: search, rating, price, cuisine, sort
func (e *Engine) Stages(q Query) []Stage {
	return []Stage{
		SearchStage(q.Search),
		RatingStage(q.Rating),
		PriceStage(q.Price),
		CuisineStage(q.Cuisine),
		e.SortStage(q.Sort),
	}
}

// Apply runs the pipeline over restaurants and returns the records to display.
// The result is never nil; an empty slice means nothing matched.
func (e *Engine) Apply(restaurants []models.Restaurant, q Query) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(restaurants))
	out = append(out, restaurants...)
	for _, stage := range e.Stages(q) {
		out = stage(out)
	}
	return out
}

// SearchStage keeps records whose name, cuisine or neighborhood contains query,
// ignoring case. An empty query keeps everything.
func SearchStage(query string) Stage {
	if query == "" {
		return identity
	}
	needle := strings.ToLower(query)
	return filter(func(r models.Restaurant) bool {
		return strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Cuisine), needle) ||
			strings.Contains(strings.ToLower(r.Neighborhood), needle)
	})
}

// RatingStage keeps exact rating matches; 0 keeps everything
func RatingStage(rating int) Stage {
	if rating == 0 {
		return identity
	}
	return filter(func(r models.Restaurant) bool { return r.Rating == rating })
}

// PriceStage keeps exact price matches; 0 keeps everything
func PriceStage(price int) Stage {
	if price == 0 {
		return identity
	}
	return filter(func(r models.Restaurant) bool { return r.Price == price })
}

// CuisineStage keeps exact cuisine matches; "" keeps everything
func CuisineStage(cuisine string) Stage {
	if cuisine == "" {
		return identity
	}
	return filter(func(r models.Restaurant) bool { return r.Cuisine == cuisine })
}

// SortStage reorders records by order. Ties keep their incoming relative order.
// SortDefault and unknown orders leave the input untouched.
func (e *Engine) SortStage(order SortOrder) Stage {
	var compare func(a, b models.Restaurant) int
	switch order {
	case SortRatingDesc:
		compare = func(a, b models.Restaurant) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortRatingAsc:
		compare = func(a, b models.Restaurant) int { return cmp.Compare(a.Rating, b.Rating) }
	case SortPriceDesc:
		compare = func(a, b models.Restaurant) int { return cmp.Compare(b.Price, a.Price) }
	case SortPriceAsc:
		compare = func(a, b models.Restaurant) int { return cmp.Compare(a.Price, b.Price) }
	case SortName:
		locale := e.locale
		return func(in []models.Restaurant) []models.Restaurant {
			// collate.Collator keeps internal buffers and is not safe for concurrent use
			c := collate.New(locale)
			out := slices.Clone(in)
			slices.SortStableFunc(out, func(a, b models.Restaurant) int {
				return c.CompareString(a.Name, b.Name)
			})
			return out
		}
	default:
		return identity
	}

	return func(in []models.Restaurant) []models.Restaurant {
		out := slices.Clone(in)
		slices.SortStableFunc(out, compare)
		return out
	}
}

func identity(in []models.Restaurant) []models.Restaurant {
	return in
}

func filter(keep func(models.Restaurant) bool) Stage {
	return func(in []models.Restaurant) []models.Restaurant {
		out := make([]models.Restaurant, 0, len(in))
		for _, r := range in {
			if keep(r) {
				out = append(out, r)
			}
		}
		return out
	}
}
