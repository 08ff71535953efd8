package service

import (
	"context"

	"github.com/tasteplaces/tasteplaces/internal/models"
	"github.com/tasteplaces/tasteplaces/internal/session"
)

// View is what a presentation layer needs to render one screen: the derived
// restaurant list plus the state behind every control.
type View struct {
	SessionID     string              `json:"sessionId,omitempty"`
	State         session.State       `json:"state"`
	Restaurants   []models.Restaurant `json:"restaurants"`
	Count         int                 `json:"count"`
	Empty         bool                `json:"empty"`
	FiltersActive bool                `json:"filtersActive"`
	SortActive    bool                `json:"sortActive"`
	SortLabel     string              `json:"sortLabel"`
	Cuisines      []string            `json:"cuisines"`
}

// SessionService drives browsing sessions: it applies actions to session state
// and recomputes the restaurant list after every transition.
type SessionService struct {
	restaurants *RestaurantService
	store       *session.Store
	machine     *session.Machine
}

// NewSessionService creates a new session service
func NewSessionService(restaurants *RestaurantService, store *session.Store) *SessionService {
	machine := session.NewMachine(func(id int) bool {
		return restaurants.Exists(context.Background(), id)
	})
	return &SessionService{
		restaurants: restaurants,
		store:       store,
		machine:     machine,
	}
}

// Machine returns the state machine used by the service
func (s *SessionService) Machine() *session.Machine {
	return s.machine
}

// Create starts a new session and returns its first view
func (s *SessionService) Create(ctx context.Context) (*View, error) {
	id, state, err := s.store.Create()
	if err != nil {
		return nil, err
	}
	return s.viewFor(ctx, id, state)
}

// View returns the current view of a session
func (s *SessionService) View(ctx context.Context, id string) (*View, error) {
	state, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return s.viewFor(ctx, id, state)
}

// Dispatch applies an action to a session and returns the resulting view
func (s *SessionService) Dispatch(ctx context.Context, id string, action session.Action) (*View, error) {
	state, err := s.store.Update(id, func(current session.State) session.State {
		return s.machine.Apply(current, action)
	})
	if err != nil {
		return nil, err
	}
	return s.viewFor(ctx, id, state)
}

// Delete ends a session
func (s *SessionService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(id)
}

// ViewFor derives the view of a state that is not held in the store
func (s *SessionService) ViewFor(ctx context.Context, state session.State) (*View, error) {
	return s.viewFor(ctx, "", state)
}

func (s *SessionService) viewFor(ctx context.Context, id string, state session.State) (*View, error) {
	restaurants, err := s.restaurants.Search(ctx, state.Query())
	if err != nil {
		return nil, err
	}

	cuisines, err := s.restaurants.Cuisines(ctx)
	if err != nil {
		return nil, err
	}

	return &View{
		SessionID:     id,
		State:         state,
		Restaurants:   restaurants,
		Count:         len(restaurants),
		Empty:         len(restaurants) == 0,
		FiltersActive: state.FiltersActive(),
		SortActive:    state.SortOrder != session.NewState().SortOrder,
		SortLabel:     state.SortOrder.Label(),
		Cuisines:      cuisines,
	}, nil
}
