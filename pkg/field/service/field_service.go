package service

import (
	"context"

	"rotaplan/entities"
)

type FieldService interface {
	CreateField(ctx context.Context, f *entities.Field) (*entities.Field, error)
	GetFieldByID(ctx context.Context, id uint, uid string) (*entities.Field, error)
	ListFields(ctx context.Context, uid string) ([]entities.Field, error)
}
