package session

// Action is a discrete user interaction. Actions are plain values; Machine.Apply
// interprets them.
type Action interface {
	isAction()
}

// ToggleExpand expands the card with ID, or collapses it when it is already expanded
type ToggleExpand struct{ ID int }

// CycleSort advances the sort order
type CycleSort struct{}

// SetSearchQuery replaces the search text verbatim
type SetSearchQuery struct{ Text string }

// ToggleSearch shows or hides the search input without touching the query
type ToggleSearch struct{}

// SetRatingFilter selects a rating; 0 clears the filter
type SetRatingFilter struct{ Rating int }

// SetPriceFilter selects a price level; 0 clears the filter
type SetPriceFilter struct{ Price int }

// SetCuisineFilter selects a cuisine; "" clears the filter
type SetCuisineFilter struct{ Cuisine string }

// ToggleFilters is the quick filter control: it clears the rating, price and
// cuisine filters when any is set, otherwise it selects QuickFilterRating.
type ToggleFilters struct{}

// ClearAll resets the search query, all filters and the sort order
type ClearAll struct{}

func (ToggleExpand) isAction()     {}
func (CycleSort) isAction()        {}
func (SetSearchQuery) isAction()   {}
func (ToggleSearch) isAction()     {}
func (SetRatingFilter) isAction()  {}
func (SetPriceFilter) isAction()   {}
func (SetCuisineFilter) isAction() {}
func (ToggleFilters) isAction()    {}
func (ClearAll) isAction()         {}

// Machine applies actions to states
type Machine struct {
	exists func(id int) bool
}

// NewMachine creates a Machine. exists reports whether a restaurant id is in the
// catalog; expanding an unknown id is a no-op. A nil exists accepts every positive id.
func NewMachine(exists func(id int) bool) *Machine {
	if exists == nil {
		exists = func(id int) bool { return id > 0 }
	}
	return &Machine{exists: exists}
}

// Apply returns the state that results from applying a to s.
// Apply is total: every action is valid in every state.
func (m *Machine) Apply(s State, a Action) State {
	switch a := a.(type) {
	case ToggleExpand:
		switch {
		case s.IsExpanded(a.ID):
			s.ExpandedCard = NoCard
		case m.exists(a.ID):
			s.ExpandedCard = a.ID
		}
	case CycleSort:
		s.SortOrder = s.SortOrder.Next()
	case SetSearchQuery:
		s.SearchQuery = a.Text
	case ToggleSearch:
		s.SearchActive = !s.SearchActive
	case SetRatingFilter:
		s.RatingFilter = a.Rating
	case SetPriceFilter:
		s.PriceFilter = a.Price
	case SetCuisineFilter:
		s.CuisineFilter = a.Cuisine
	case ToggleFilters:
		if s.FiltersActive() {
			s = clearFilters(s)
		} else {
			s.RatingFilter = QuickFilterRating
		}
	case ClearAll:
		s = clearFilters(s)
		s.SearchQuery = ""
		s.SortOrder = NewState().SortOrder
	}
	return s
}

// ApplyAll folds actions over s in order
func (m *Machine) ApplyAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = m.Apply(s, a)
	}
	return s
}

func clearFilters(s State) State {
	s.RatingFilter = 0
	s.PriceFilter = 0
	s.CuisineFilter = ""
	return s
}
