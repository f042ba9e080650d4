package service

import (
	"context"

	"rotaplan/entities"
	"rotaplan/pkg/crop/repository"
)

type CropService interface {
	CreateCrop(ctx context.Context, uid string, c *entities.Crop) (*entities.Crop, error)
	GetCrop(ctx context.Context, id uint) (*entities.Crop, error)
	ListCrops(ctx context.Context, f repository.Filter) ([]entities.Crop, error)
	// ImportCrops loads a catalog file and stores every crop in it, or none.
	ImportCrops(ctx context.Context, uid, path string) (int, error)
}
