package service

import (
	"context"

	"rotaplan/entities"
)

// SelectionService manages how many more times a user intends to plant each
// crop. Generation reads these counts; only Consume lowers them.
type SelectionService interface {
	SetQuota(ctx context.Context, uid string, cropID uint, remaining int) (*entities.CropSelection, error)
	Consume(ctx context.Context, uid string, cropID uint) (*entities.CropSelection, error)
	List(ctx context.Context, uid string) ([]entities.CropSelection, error)
}
