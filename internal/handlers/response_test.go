package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		limit     int
		wantPages int
	}{
		{"partial last page", 12, 1, 5, 3},
		{"exact division", 10, 2, 5, 2},
		{"single page", 3, 1, 10, 1},
		{"empty collection", 0, 1, 10, 0},
		{"one item", 1, 1, 20, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeta(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, m.Total)
			assert.Equal(t, tt.page, m.Page)
			assert.Equal(t, tt.wantPages, m.Pages)
			assert.Equal(t, tt.limit, m.Limit)
		})
	}
}
