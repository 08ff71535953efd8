package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOrder_NextCycles(t *testing.T) {
	want := []SortOrder{SortRatingDesc, SortRatingAsc, SortPriceDesc, SortPriceAsc, SortName, SortDefault}

	order := SortDefault
	for i, w := range want {
		order = order.Next()
		assert.Equal(t, w, order, "step %d", i+1)
	}
	assert.Equal(t, SortDefault, order)
}

func TestSortOrder_NextUnknown(t *testing.T) {
	assert.Equal(t, SortDefault, SortOrder("bogus").Next())
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    SortOrder
		wantErr error
	}{
		{"", SortDefault, nil},
		{"default", SortDefault, nil},
		{"rating-desc", SortRatingDesc, nil},
		{"price-asc", SortPriceAsc, nil},
		{"name", SortName, nil},
		{"Name", "", ErrUnknownSortOrder},
		{"popularity", "", ErrUnknownSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortOrder(tt.in)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortOrder_Label(t *testing.T) {
	assert.Equal(t, "Default", SortDefault.Label())
	assert.Equal(t, "Name (A-Z)", SortName.Label())
	assert.Equal(t, "Default", SortOrder("bogus").Label())
}
