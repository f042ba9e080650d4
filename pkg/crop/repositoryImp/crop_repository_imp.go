package repositoryImp

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"rotaplan/database"
	"rotaplan/entities"
	"rotaplan/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	return database.Wrap(r.db.WithContext(ctx).Create(c).Error, "create crop")
}

func (r *cropRepo) BulkCreate(ctx context.Context, cs []entities.Crop) error {
	if len(cs) == 0 {
		return nil
	}
	return database.Wrap(r.db.WithContext(ctx).CreateInBatches(&cs, 100).Error, "import crops")
}

func (r *cropRepo) FindByID(ctx context.Context, id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.WithContext(ctx).First(&c, "crop_id = ?", id).Error; err != nil {
		return nil, database.Wrap(err, fmt.Sprintf("crop %d", id))
	}
	return &c, nil
}

func (r *cropRepo) List(ctx context.Context, f repository.Filter) ([]entities.Crop, error) {
	q := r.db.WithContext(ctx).Model(&entities.Crop{})
	if len(f.IDs) > 0 {
		q = q.Where("crop_id IN ?", f.IDs)
	}
	if s := strings.TrimSpace(f.NameContains); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	var out []entities.Crop
	if err := q.Order("crop_id ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list crops")
	}
	return out, nil
}
