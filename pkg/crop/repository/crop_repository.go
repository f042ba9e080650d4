package repository

import (
	"context"

	"rotaplan/entities"
)

// Filter narrows a catalog listing. Zero fields match everything.
type Filter struct {
	IDs          []uint
	NameContains string
	UserID       string
}

type CropRepository interface {
	Create(ctx context.Context, c *entities.Crop) error
	BulkCreate(ctx context.Context, cs []entities.Crop) error
	FindByID(ctx context.Context, id uint) (*entities.Crop, error)
	List(ctx context.Context, f Filter) ([]entities.Crop, error)
}
