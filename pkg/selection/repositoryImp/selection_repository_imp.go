package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rotaplan/database"
	"rotaplan/entities"
	"rotaplan/pkg/apperr"
	"rotaplan/pkg/selection/repository"
)

type selectionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SelectionRepository { return &selectionRepo{db} }

func (r *selectionRepo) Quota(ctx context.Context, userID string, cropID uint) (int, error) {
	var rows []entities.CropSelection
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND crop_id = ?", userID, cropID).
		Limit(1).Find(&rows).Error
	if err != nil {
		return 0, database.Wrap(err, fmt.Sprintf("quota for crop %d", cropID))
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Remaining, nil
}

func (r *selectionRepo) SetQuota(ctx context.Context, userID string, cropID uint, remaining int) (*entities.CropSelection, error) {
	sel := &entities.CropSelection{UserID: userID, CropID: cropID, Remaining: remaining}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "crop_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"remaining", "updated_at"}),
	}).Create(sel).Error
	if err != nil {
		return nil, database.Wrap(err, fmt.Sprintf("set quota for crop %d", cropID))
	}
	return r.find(r.db.WithContext(ctx), userID, cropID)
}

func (r *selectionRepo) Consume(ctx context.Context, userID string, cropID uint) (*entities.CropSelection, error) {
	var out *entities.CropSelection
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.CropSelection{}).
			Where("user_id = ? AND crop_id = ? AND remaining > 0", userID, cropID).
			UpdateColumn("remaining", gorm.Expr("remaining - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: selection quota exhausted for crop %d", apperr.ErrInvalidRequest, cropID)
		}
		var err error
		out, err = r.find(tx, userID, cropID)
		return err
	})
	if err != nil {
		return nil, database.Wrap(err, fmt.Sprintf("consume crop %d", cropID))
	}
	return out, nil
}

func (r *selectionRepo) ListByUser(ctx context.Context, userID string) ([]entities.CropSelection, error) {
	var out []entities.CropSelection
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("crop_id ASC").Find(&out).Error; err != nil {
		return nil, database.Wrap(err, "list selections")
	}
	return out, nil
}

func (r *selectionRepo) find(db *gorm.DB, userID string, cropID uint) (*entities.CropSelection, error) {
	var s entities.CropSelection
	if err := db.Where("user_id = ? AND crop_id = ?", userID, cropID).First(&s).Error; err != nil {
		return nil, database.Wrap(err, fmt.Sprintf("selection for crop %d", cropID))
	}
	return &s, nil
}
