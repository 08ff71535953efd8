package session

import (
	"errors"
	"fmt"

	"github.com/tasteplaces/tasteplaces/internal/models"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidFilter = errors.New("invalid filter value")
)

// Command type names
const (
	CommandToggleExpand     = "toggle-expand"
	CommandCycleSort        = "cycle-sort"
	CommandSetQuery         = "set-query"
	CommandToggleSearch     = "toggle-search"
	CommandSetRatingFilter  = "set-rating-filter"
	CommandSetPriceFilter   = "set-price-filter"
	CommandSetCuisineFilter = "set-cuisine-filter"
	CommandToggleFilters    = "toggle-filters"
	CommandClearAll         = "clear-all"
)

// Command is the wire form of an Action, as sent by a presentation layer.
// Only the field relevant to Type is read.
type Command struct {
	Type    string `json:"type"`
	ID      int    `json:"id,omitempty"`
	Text    string `json:"text,omitempty"`
	Rating  int    `json:"rating,omitempty"`
	Price   int    `json:"price,omitempty"`
	Cuisine string `json:"cuisine,omitempty"`
}

// Action validates the command and converts it to an Action
func (c Command) Action() (Action, error) {
	switch c.Type {
	case CommandToggleExpand:
		return ToggleExpand{ID: c.ID}, nil
	case CommandCycleSort:
		return CycleSort{}, nil
	case CommandSetQuery:
		return SetSearchQuery{Text: c.Text}, nil
	case CommandToggleSearch:
		return ToggleSearch{}, nil
	case CommandSetRatingFilter:
		if c.Rating != 0 && (c.Rating < models.MinRating || c.Rating > models.MaxRating) {
			return nil, fmt.Errorf("%w: rating %d", ErrInvalidFilter, c.Rating)
		}
		return SetRatingFilter{Rating: c.Rating}, nil
	case CommandSetPriceFilter:
		if c.Price != 0 && (c.Price < models.MinPrice || c.Price > models.MaxPrice) {
			return nil, fmt.Errorf("%w: price %d", ErrInvalidFilter, c.Price)
		}
		return SetPriceFilter{Price: c.Price}, nil
	case CommandSetCuisineFilter:
		return SetCuisineFilter{Cuisine: c.Cuisine}, nil
	case CommandToggleFilters:
		return ToggleFilters{}, nil
	case CommandClearAll:
		return ClearAll{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, c.Type)
	}
}
