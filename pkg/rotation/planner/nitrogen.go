package planner

import (
	"github.com/shopspring/decimal"

	"rotaplan/entities"
)

// NitrogenBalance returns the nitrogen left after planting candidate on a
// division holding pool, plus residual. Never negative, rounded to 2 decimals.
func NitrogenBalance(candidate entities.Crop, pool, residual float64) float64 {
	b := decimal.NewFromFloat(pool).
		Sub(decimal.NewFromFloat(candidate.NitrogenDemand)).
		Add(decimal.NewFromFloat(residual))
	if b.IsNegative() {
		return 0
	}
	f, _ := b.Round(2).Float64()
	return f
}
