package planner

import (
	"fmt"

	"github.com/shopspring/decimal"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
)

// UpdateBalance overrides the nitrogen balance of the (year, division) entry
// and marks it directly updated. Later years of the division are not touched.
// It returns the index of the changed entry.
func UpdateBalance(r *entities.Rotation, year, division int, balance float64) (int, error) {
	if !(balance >= 0) {
		return -1, fmt.Errorf("%w: nitrogen balance must not be negative", apperr.ErrInvalidRequest)
	}
	for i := range r.Entries {
		e := &r.Entries[i]
		if e.Year != year || e.Division != division {
			continue
		}
		e.NitrogenBalance, _ = decimal.NewFromFloat(balance).Round(2).Float64()
		e.DirectlyUpdated = true
		return i, nil
	}
	return -1, fmt.Errorf("year %d division %d: %w", year, division, apperr.ErrNotFound)
}
