package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestCanFulfill(t *testing.T) {
	tests := []struct {
		name    string
		inStock bool
		stock   *int
		qty     int
		want    bool
	}{
		{"untracked in stock", true, nil, 100, true},
		{"tracked enough", true, intPtr(5), 5, true},
		{"tracked short", true, intPtr(5), 6, false},
		{"tracked zero", false, intPtr(0), 1, false},
		{"out of stock flag wins", false, intPtr(10), 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{InStock: tt.inStock, StockQuantity: tt.stock}
			assert.Equal(t, tt.want, p.CanFulfill(tt.qty))
		})
	}
}

func TestRecomputeInStock(t *testing.T) {
	tests := []struct {
		name  string
		stock *int
		want  bool
	}{
		{"untracked", nil, true},
		{"positive", intPtr(1), true},
		{"zero", intPtr(0), false},
		{"negative", intPtr(-1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{InStock: !tt.want, StockQuantity: tt.stock}
			p.RecomputeInStock()
			assert.Equal(t, tt.want, p.InStock)
		})
	}
}
