package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_Sanitize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       ListQuery
		max      int
		wantPage int
		wantSize int
	}{
		{"zero values", ListQuery{PageNumber: 0, PageSize: 0}, 100, 1, 10},
		{"negative values", ListQuery{PageNumber: -3, PageSize: -1}, 100, 1, 10},
		{"within bounds", ListQuery{PageNumber: 2, PageSize: 25}, 100, 2, 25},
		{"clamped to max", ListQuery{PageNumber: 1, PageSize: 5000}, 100, 1, 100},
		{"no upper bound", ListQuery{PageNumber: 1, PageSize: 5000}, 0, 1, 5000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Sanitize(tc.max)
			assert.Equal(t, tc.wantPage, got.PageNumber)
			assert.Equal(t, tc.wantSize, got.PageSize)
			assert.Equal(t, tc.in.Filter, got.Filter)
		})
	}
}
