package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rotaplan/database"
	"rotaplan/entities"
	"rotaplan/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(ctx context.Context, f *entities.Field) error {
	return database.Wrap(r.db.WithContext(ctx).Create(f).Error, "create field")
}

func (r *fieldRepo) FindByID(ctx context.Context, id uint, uid string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.WithContext(ctx).Where("field_id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
		return nil, database.Wrap(err, fmt.Sprintf("field %d", id))
	}
	return &f, nil
}

func (r *fieldRepo) ListByUser(ctx context.Context, uid string) ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("field_id ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list fields")
	}
	return out, nil
}
