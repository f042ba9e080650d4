package planner

import (
	"context"
	"fmt"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
)

// QuotaReader returns how many more times a user may plant a crop.
// Implementations are read-only; the count is owned by the selection store.
type QuotaReader interface {
	Quota(ctx context.Context, userID string, cropID uint) (int, error)
}

// History maps crop id to the last year it was planted in one division.
type History map[uint]int

// NewHistory seeds every candidate so it is eligible in year 1.
func NewHistory(crops []entities.Crop) History {
	h := make(History, len(crops))
	for _, c := range crops {
		h[c.CropID] = 0 - c.MinimumRepeatIntervalYears
	}
	return h
}

// Availability decides whether a crop may be planted for one user.
type Availability struct {
	Quotas QuotaReader
	UserID string
}

// IsAvailable reports whether crop may be planted in year given the division's
// history. The quota is only looked up once the repeat interval allows the crop.
func (a Availability) IsAvailable(ctx context.Context, crop entities.Crop, year int, history History) (bool, error) {
	last, ok := history[crop.CropID]
	if !ok {
		last = 0 - crop.MinimumRepeatIntervalYears
	}
	if year-last <= crop.MinimumRepeatIntervalYears {
		return false, nil
	}
	if a.Quotas == nil {
		return true, nil
	}
	n, err := a.Quotas.Quota(ctx, a.UserID, crop.CropID)
	if err != nil {
		return false, fmt.Errorf("quota lookup for crop %d: %w: %w", crop.CropID, apperr.ErrDependencyFailure, err)
	}
	return n > 0, nil
}
