package serviceImp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
	"rotaplan/pkg/crop/importer"
	"rotaplan/pkg/crop/repository"
	"rotaplan/pkg/crop/service"
)

type cropSvc struct {
	r   repository.CropRepository
	log *zap.Logger
}

func NewCropService(r repository.CropRepository, log *zap.Logger) service.CropService {
	if log == nil {
		log = zap.NewNop()
	}
	return &cropSvc{r: r, log: log.Named("crop")}
}

// Validate checks the values the planner relies on.
func Validate(c *entities.Crop) error {
	c.Name = strings.TrimSpace(c.Name)
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: crop name is required", apperr.ErrInvalidRequest)
	case !(c.NitrogenSupply >= 0) || math.IsInf(c.NitrogenSupply, 0):
		return fmt.Errorf("%w: crop %q: nitrogen supply must not be negative", apperr.ErrInvalidRequest, c.Name)
	case !(c.NitrogenDemand >= 0) || math.IsInf(c.NitrogenDemand, 0):
		return fmt.Errorf("%w: crop %q: nitrogen demand must not be negative", apperr.ErrInvalidRequest, c.Name)
	case c.MinimumRepeatIntervalYears < 0:
		return fmt.Errorf("%w: crop %q: repeat interval must not be negative", apperr.ErrInvalidRequest, c.Name)
	case c.PlantingDate != nil && c.HarvestingDate != nil && c.HarvestingDate.Before(*c.PlantingDate):
		return fmt.Errorf("%w: crop %q: harvest before planting", apperr.ErrInvalidRequest, c.Name)
	}
	return nil
}

func (s *cropSvc) CreateCrop(ctx context.Context, uid string, c *entities.Crop) (*entities.Crop, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	c.CropID = 0
	c.UserID = uid
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cropSvc) GetCrop(ctx context.Context, id uint) (*entities.Crop, error) {
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) ListCrops(ctx context.Context, f repository.Filter) ([]entities.Crop, error) {
	return s.r.List(ctx, f)
}

func (s *cropSvc) ImportCrops(ctx context.Context, uid, path string) (int, error) {
	crops, err := importer.Load(path)
	if err != nil {
		return 0, err
	}
	for i := range crops {
		if err := Validate(&crops[i]); err != nil {
			return 0, err
		}
		crops[i].UserID = uid
	}
	if err := s.r.BulkCreate(ctx, crops); err != nil {
		return 0, err
	}
	s.log.Info("crops imported", zap.String("path", path), zap.String("uid", uid), zap.Int("count", len(crops)))
	return len(crops), nil
}
