package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNitrogenBalance(t *testing.T) {
	tests := []struct {
		name     string
		demand   float64
		pool     float64
		residual float64
		want     float64
	}{
		{"pool minus demand", 100, 500, 0, 400},
		{"residual added", 100, 50, 500, 450},
		{"clamped at zero", 300, 50, 0, 0},
		{"exactly zero", 50, 50, 0, 0},
		{"rounded to two decimals", 0.333, 1, 0, 0.67},
		{"rounds half away from zero", 0, 1.005, 0, 1.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := crop(1, "c", 0, tt.demand, 0)
			assert.Equal(t, tt.want, NitrogenBalance(c, tt.pool, tt.residual))
		})
	}
}
