package service

import (
	"context"

	"rotaplan/pkg/rotation/types"
)

// RotationService generates rotations and applies the two supported edits.
// Every method takes the caller id explicitly and only touches rotations the
// caller owns.
type RotationService interface {
	Generate(ctx context.Context, uid string, req types.GenerateRequest) (*types.RotationResponse, error)
	Get(ctx context.Context, uid string, id uint) (*types.RotationResponse, error)
	List(ctx context.Context, uid string) ([]types.RotationResponse, error)
	UpdateDivisionSize(ctx context.Context, uid string, id uint, req types.UpdateDivisionSizeRequest) (*types.RotationResponse, error)
	UpdateNitrogenBalance(ctx context.Context, uid string, id uint, req types.UpdateNitrogenBalanceRequest) (*types.RotationResponse, error)
	Delete(ctx context.Context, uid string, id uint) error
}
