// Package session holds the interactive browsing state and the transitions
// that user actions apply to it.
package session

import "github.com/tasteplaces/tasteplaces/internal/engine"

// NoCard is the ExpandedCard value when every card is collapsed
const NoCard = 0

// QuickFilterRating is the rating the quick filter control selects when no filter is active
const QuickFilterRating = 3

// State is the mutable, session-scoped browsing state. It is a value type: every
// transition returns a new State. Zero filter values mean "no filter".
type State struct {
	ExpandedCard  int              `json:"expandedCard"`
	SearchActive  bool             `json:"searchActive"`
	SearchQuery   string           `json:"searchQuery"`
	RatingFilter  int              `json:"ratingFilter"`
	PriceFilter   int              `json:"priceFilter"`
	CuisineFilter string           `json:"cuisineFilter"`
	SortOrder     engine.SortOrder `json:"sortOrder"`
}

// NewState returns the initial state: nothing expanded, search hidden and empty,
// no filters, default sort.
func NewState() State {
	return State{SortOrder: engine.SortDefault}
}

// Query converts the state into engine parameters
func (s State) Query() engine.Query {
	return engine.Query{
		Search:  s.SearchQuery,
		Rating:  s.RatingFilter,
		Price:   s.PriceFilter,
		Cuisine: s.CuisineFilter,
		Sort:    s.SortOrder,
	}
}

// FiltersActive reports whether any rating, price or cuisine filter is set
func (s State) FiltersActive() bool {
	return s.Query().FiltersActive()
}

// IsExpanded reports whether the card with the given id is the expanded one
func (s State) IsExpanded(id int) bool {
	return s.ExpandedCard != NoCard && s.ExpandedCard == id
}
