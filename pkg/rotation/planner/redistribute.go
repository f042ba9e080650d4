package planner

import (
	"fmt"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
)

// Redistribute resizes division to newSize in every year and splits what is
// left evenly over the other divisions' entries that were not directly updated.
// It mutates r and returns the indexes of the entries it changed.
//
// Calling it twice with the same arguments changes nothing the second time.
// Calls for different divisions are order-dependent.
func Redistribute(r *entities.Rotation, division int, newSize float64) ([]int, error) {
	if division < 1 || division > r.NumberOfDivisions {
		return nil, fmt.Errorf("division %d: %w", division, apperr.ErrNotFound)
	}
	if !(newSize >= 0 && newSize <= r.FieldSize) {
		return nil, fmt.Errorf("%w: invalid division size", apperr.ErrInvalidRequest)
	}
	var share float64
	if r.NumberOfDivisions == 1 {
		if newSize != r.FieldSize {
			return nil, fmt.Errorf("%w: invalid division size: a single division covers the whole field", apperr.ErrInvalidRequest)
		}
	} else {
		share = (r.FieldSize - newSize) / float64(r.NumberOfDivisions-1)
	}

	var changed []int
	for i := range r.Entries {
		e := &r.Entries[i]
		switch {
		case e.Division == division:
			if e.DivisionSize == newSize && e.DirectlyUpdated {
				continue
			}
			e.DivisionSize = newSize
			e.DirectlyUpdated = true
		case !e.DirectlyUpdated:
			if e.DivisionSize == share {
				continue
			}
			e.DivisionSize = share
		default:
			continue
		}
		changed = append(changed, i)
	}
	return changed, nil
}
