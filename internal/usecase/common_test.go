package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		limit     int
		wantPage  int
		wantPages int
	}{
		{"exact fit", 20, 1, 10, 1, 2},
		{"partial last page", 21, 2, 10, 2, 3},
		{"empty result", 0, 1, 10, 1, 0},
		{"single page", 3, 1, 10, 1, 1},
		{"page below one normalized", 10, 0, 10, 1, 1},
		{"limit below one uses default", 25, 1, 0, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, tt.page, tt.limit)

			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPage, p.CurrentPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}
