package serviceImp

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
	croprepo "rotaplan/pkg/crop/repository"
	"rotaplan/pkg/selection/repository"
	"rotaplan/pkg/selection/service"
)

type selectionSvc struct {
	r     repository.SelectionRepository
	crops croprepo.CropRepository
	log   *zap.Logger
}

func NewSelectionService(r repository.SelectionRepository, crops croprepo.CropRepository, log *zap.Logger) service.SelectionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &selectionSvc{r: r, crops: crops, log: log.Named("selection")}
}

func (s *selectionSvc) SetQuota(ctx context.Context, uid string, cropID uint, remaining int) (*entities.CropSelection, error) {
	if remaining < 0 {
		return nil, fmt.Errorf("%w: remaining must not be negative", apperr.ErrInvalidRequest)
	}
	if _, err := s.crops.FindByID(ctx, cropID); err != nil {
		return nil, err
	}
	sel, err := s.r.SetQuota(ctx, uid, cropID, remaining)
	if err != nil {
		return nil, err
	}
	s.log.Debug("quota set", zap.String("uid", uid), zap.Uint("crop_id", cropID), zap.Int("remaining", remaining))
	return sel, nil
}

func (s *selectionSvc) Consume(ctx context.Context, uid string, cropID uint) (*entities.CropSelection, error) {
	sel, err := s.r.Consume(ctx, uid, cropID)
	if err != nil {
		return nil, err
	}
	s.log.Debug("quota consumed", zap.String("uid", uid), zap.Uint("crop_id", cropID), zap.Int("remaining", sel.Remaining))
	return sel, nil
}

func (s *selectionSvc) List(ctx context.Context, uid string) ([]entities.CropSelection, error) {
	return s.r.ListByUser(ctx, uid)
}
