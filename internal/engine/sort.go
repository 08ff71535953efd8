package engine

import (
	"errors"
	"fmt"
)

var ErrUnknownSortOrder = errors.New("unknown sort order")

// SortOrder selects the comparator of the sort stage
type SortOrder string

const (
	SortDefault    SortOrder = "default"
	SortRatingDesc SortOrder = "rating-desc"
	SortRatingAsc  SortOrder = "rating-asc"
	SortPriceDesc  SortOrder = "price-desc"
	SortPriceAsc   SortOrder = "price-asc"
	SortName       SortOrder = "name"
)

// sortCycle is the order in which the sort control advances
var sortCycle = []SortOrder{
	SortDefault,
	SortRatingDesc,
	SortRatingAsc,
	SortPriceDesc,
	SortPriceAsc,
	SortName,
}

var sortLabels = map[SortOrder]string{
	SortDefault:    "Default",
	SortRatingDesc: "Rating (high to low)",
	SortRatingAsc:  "Rating (low to high)",
	SortPriceDesc:  "Price (high to low)",
	SortPriceAsc:   "Price (low to high)",
	SortName:       "Name (A-Z)",
}

// SortOrders returns every sort order in cycle order
func SortOrders() []SortOrder {
	out := make([]SortOrder, len(sortCycle))
	copy(out, sortCycle)
	return out
}

// ParseSortOrder converts a wire value into a SortOrder. The empty string maps to SortDefault.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return SortDefault, nil
	}
	o := SortOrder(s)
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
	}
	return o, nil
}

// Valid reports whether o is one of the known sort orders
func (o SortOrder) Valid() bool {
	_, ok := sortLabels[o]
	return ok
}

// Next returns the sort order following o, wrapping from the last back to the first.
// Unknown values fall back to SortDefault.
func (o SortOrder) Next() SortOrder {
	for i, s := range sortCycle {
		if s == o {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return SortDefault
}

// Label returns a human readable name for o
func (o SortOrder) Label() string {
	if l, ok := sortLabels[o]; ok {
		return l
	}
	return sortLabels[SortDefault]
}

func (o SortOrder) String() string {
	return string(o)
}
