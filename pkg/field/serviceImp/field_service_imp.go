package serviceImp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
	repo "rotaplan/pkg/field/repository"
	"rotaplan/pkg/field/service"
)

type fieldSvc struct{ r repo.FieldRepository }

func NewFieldService(r repo.FieldRepository) service.FieldService { return &fieldSvc{r} }

func (s *fieldSvc) CreateField(ctx context.Context, f *entities.Field) (*entities.Field, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return nil, fmt.Errorf("%w: field name is required", apperr.ErrInvalidRequest)
	}
	if !(f.Size > 0) || math.IsInf(f.Size, 0) {
		return nil, fmt.Errorf("%w: field size must be positive", apperr.ErrInvalidRequest)
	}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fieldSvc) GetFieldByID(ctx context.Context, id uint, uid string) (*entities.Field, error) {
	return s.r.FindByID(ctx, id, uid)
}

func (s *fieldSvc) ListFields(ctx context.Context, uid string) ([]entities.Field, error) {
	return s.r.ListByUser(ctx, uid)
}
