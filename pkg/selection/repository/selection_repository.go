package repository

import (
	"context"

	"rotaplan/entities"
)

// SelectionRepository stores how many more times each user may plant each crop.
type SelectionRepository interface {
	// Quota returns the remaining count, 0 when the user never selected the crop.
	Quota(ctx context.Context, userID string, cropID uint) (int, error)
	SetQuota(ctx context.Context, userID string, cropID uint, remaining int) (*entities.CropSelection, error)
	// Consume takes one use. It fails with apperr.ErrInvalidRequest when none is left.
	Consume(ctx context.Context, userID string, cropID uint) (*entities.CropSelection, error)
	ListByUser(ctx context.Context, userID string) ([]entities.CropSelection, error)
}
