package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rotaplan/database"
	"rotaplan/entities"
	"rotaplan/pkg/rotation/repository"
)

type rotationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RotationRepository { return &rotationRepo{db} }

func orderedEntries(db *gorm.DB) *gorm.DB { return db.Order("year ASC, division ASC") }

func (r *rotationRepo) Create(ctx context.Context, rot *entities.Rotation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Entries").Create(rot).Error; err != nil {
			return err
		}
		if len(rot.Entries) == 0 {
			return nil
		}
		for i := range rot.Entries {
			rot.Entries[i].RotationID = rot.RotationID
		}
		return tx.CreateInBatches(&rot.Entries, 200).Error
	})
	return database.Wrap(err, "create rotation")
}

func (r *rotationRepo) Get(ctx context.Context, id uint) (*entities.Rotation, error) {
	rot, err := load(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, database.Wrap(err, fmt.Sprintf("rotation %d", id))
	}
	return rot, nil
}

func (r *rotationRepo) ListByUser(ctx context.Context, userID string) ([]entities.Rotation, error) {
	var out []entities.Rotation
	err := r.db.WithContext(ctx).
		Preload("Entries", orderedEntries).
		Where("user_id = ?", userID).
		Order("rotation_id DESC").
		Find(&out).Error
	if err != nil {
		return nil, database.Wrap(err, "list rotations")
	}
	return out, nil
}

func (r *rotationRepo) Update(ctx context.Context, id uint, fn repository.MutateFunc) (*entities.Rotation, error) {
	var out *entities.Rotation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rot, err := load(tx, id)
		if err != nil {
			return err
		}
		changed, err := fn(rot)
		if err != nil {
			return err
		}
		for _, i := range changed {
			e := rot.Entries[i]
			// Select forces zero sizes and cleared flags to be written too.
			if err := tx.Model(&entities.RotationEntry{EntryID: e.EntryID}).
				Select("division_size", "nitrogen_balance", "directly_updated").
				Updates(&e).Error; err != nil {
				return err
			}
		}
		out = rot
		return nil
	})
	if err != nil {
		return nil, database.Wrap(err, fmt.Sprintf("update rotation %d", id))
	}
	return out, nil
}

func (r *rotationRepo) Delete(ctx context.Context, id uint, check func(*entities.Rotation) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rot entities.Rotation
		if err := tx.First(&rot, "rotation_id = ?", id).Error; err != nil {
			return err
		}
		if check != nil {
			if err := check(&rot); err != nil {
				return err
			}
		}
		if err := tx.Where("rotation_id = ?", id).Delete(&entities.RotationEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Rotation{}, "rotation_id = ?", id).Error
	})
	return database.Wrap(err, fmt.Sprintf("delete rotation %d", id))
}

func load(db *gorm.DB, id uint) (*entities.Rotation, error) {
	var rot entities.Rotation
	if err := db.Preload("Entries", orderedEntries).First(&rot, "rotation_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rot, nil
}
