package repository

import (
	"context"

	"rotaplan/entities"
)

// MutateFunc edits a loaded rotation in place and returns the indexes of the
// entries it changed. Returning an error discards every change.
type MutateFunc func(r *entities.Rotation) ([]int, error)

// RotationRepository persists generated rotations. Create, Update and Delete
// are each one transaction.
type RotationRepository interface {
	Create(ctx context.Context, r *entities.Rotation) error
	Get(ctx context.Context, id uint) (*entities.Rotation, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Rotation, error)
	Update(ctx context.Context, id uint, fn MutateFunc) (*entities.Rotation, error)
	// Delete removes the entries, then the rotation. check runs on the loaded
	// rotation first and may veto the delete.
	Delete(ctx context.Context, id uint, check func(r *entities.Rotation) error) error
}
