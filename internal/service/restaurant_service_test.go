package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasteplaces/tasteplaces/internal/engine"
	"github.com/tasteplaces/tasteplaces/internal/repository"
)

func newRestaurantService() *RestaurantService {
	return NewRestaurantService(repository.NewInMemoryRestaurantRepository(), nil)
}

func TestRestaurantService_Search(t *testing.T) {
	svc := newRestaurantService()
	ctx := context.Background()

	tests := []struct {
		name      string
		query     engine.Query
		wantNames []string
	}{
		{
			name:      "rating 1",
			query:     engine.Query{Rating: 1},
			wantNames: []string{"Furusato", "Pho Tay Ho", "Replika", "Mandy's"},
		},
		{
			name:      "plateau",
			query:     engine.Query{Search: "plateau"},
			wantNames: []string{"Le P'tit Plateau", "Replika", "Pullman Wine Bar"},
		},
		{
			name:      "no matches",
			query:     engine.Query{Cuisine: "Mexican"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.query)
			require.NoError(t, err)

			names := make([]string, len(got))
			for i, r := range got {
				names[i] = r.Name
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestRestaurantService_PriceDescFirst(t *testing.T) {
	got, err := newRestaurantService().Search(context.Background(), engine.Query{Sort: engine.SortPriceDesc})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	assert.Equal(t, 4, got[0].Price)
	assert.Equal(t, "Le Serpent", got[0].Name)
}

func TestRestaurantService_Lookup(t *testing.T) {
	svc := newRestaurantService()
	ctx := context.Background()

	r, err := svc.GetRestaurant(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "Cafe Resonance", r.Name)

	_, err = svc.GetRestaurant(ctx, 11)
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)

	assert.True(t, svc.Exists(ctx, 10))
	assert.False(t, svc.Exists(ctx, 0))

	all, err := svc.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)

	cuisines, err := svc.Cuisines(ctx)
	require.NoError(t, err)
	assert.Contains(t, cuisines, "Late Night")
	assert.Len(t, cuisines, 8)
}
