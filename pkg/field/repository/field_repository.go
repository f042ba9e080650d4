package repository

import (
	"context"

	"rotaplan/entities"
)

type FieldRepository interface {
	Create(ctx context.Context, f *entities.Field) error
	FindByID(ctx context.Context, id uint, uid string) (*entities.Field, error)
	ListByUser(ctx context.Context, uid string) ([]entities.Field, error)
}
