package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseFilterPaging(t *testing.T) {
	cases := []struct {
		name     string
		filter   BaseFilter
		wantPage int
		wantSize int
	}{
		{"zero values", BaseFilter{}, 1, 10},
		{"negative page", BaseFilter{PageNumber: -3, PageSize: 5}, 1, 5},
		{"size too large", BaseFilter{PageNumber: 2, PageSize: 500}, 2, 10},
		{"size at max", BaseFilter{PageNumber: 1, PageSize: 100}, 1, 100},
		{"ordinary", BaseFilter{PageNumber: 4, PageSize: 25}, 4, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, size := tc.filter.Paging()
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantSize, size)
		})
	}
}
