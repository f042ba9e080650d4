package types

import (
	"fmt"
	"math"
	"strings"
	"time"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
	"rotaplan/pkg/rotation/planner"
)

// CropRef names a catalog crop in a generation request. Order matters: it
// drives the round-robin pick for divisions without a previous crop.
type CropRef struct {
	CropID uint `json:"crop_id"`
}

type GenerateRequest struct {
	FieldSize              float64   `json:"field_size"`
	NumberOfDivisions      int       `json:"number_of_divisions"`
	RotationName           string    `json:"rotation_name"`
	Crops                  []CropRef `json:"crops"`
	MaxYears               int       `json:"max_years"`
	ResidualNitrogenSupply *float64  `json:"residual_nitrogen_supply,omitempty"`
	FieldID                *uint     `json:"field_id,omitempty"`
}

// Validate checks everything that can be checked without storage.
func (r *GenerateRequest) Validate() error {
	r.RotationName = strings.TrimSpace(r.RotationName)
	switch {
	case len(r.Crops) == 0:
		return fmt.Errorf("%w: no crops provided", apperr.ErrInvalidRequest)
	case r.RotationName == "":
		return fmt.Errorf("%w: rotation name is required", apperr.ErrInvalidRequest)
	case !(r.FieldSize > 0) || math.IsInf(r.FieldSize, 0):
		return fmt.Errorf("%w: field size must be positive", apperr.ErrInvalidRequest)
	case r.ResidualNitrogenSupply != nil && !(*r.ResidualNitrogenSupply >= 0):
		return fmt.Errorf("%w: residual nitrogen supply must not be negative", apperr.ErrInvalidRequest)
	}
	if err := planner.ValidateGrid(r.NumberOfDivisions, r.MaxYears); err != nil {
		return err
	}
	for i, c := range r.Crops {
		if c.CropID == 0 {
			return fmt.Errorf("%w: crops[%d] has no crop_id", apperr.ErrInvalidRequest, i)
		}
	}
	return nil
}

// CropIDs returns the referenced ids, in request order, without duplicates.
func (r *GenerateRequest) CropIDs() []uint {
	seen := make(map[uint]bool, len(r.Crops))
	ids := make([]uint, 0, len(r.Crops))
	for _, c := range r.Crops {
		if !seen[c.CropID] {
			seen[c.CropID] = true
			ids = append(ids, c.CropID)
		}
	}
	return ids
}

// UpdateDivisionSizeRequest is a PATCH body. Pointers tell an omitted value
// from an explicit zero.
type UpdateDivisionSizeRequest struct {
	Division        *int     `json:"division"`
	NewDivisionSize *float64 `json:"new_division_size"`
}

func (r UpdateDivisionSizeRequest) Validate() error {
	switch {
	case r.Division == nil:
		return fmt.Errorf("%w: division is required", apperr.ErrInvalidRequest)
	case r.NewDivisionSize == nil:
		return fmt.Errorf("%w: new_division_size is required", apperr.ErrInvalidRequest)
	}
	return nil
}

type UpdateNitrogenBalanceRequest struct {
	Year            *int     `json:"year"`
	Division        *int     `json:"division"`
	NitrogenBalance *float64 `json:"nitrogen_balance"`
}

func (r UpdateNitrogenBalanceRequest) Validate() error {
	switch {
	case r.Year == nil:
		return fmt.Errorf("%w: year is required", apperr.ErrInvalidRequest)
	case r.Division == nil:
		return fmt.Errorf("%w: division is required", apperr.ErrInvalidRequest)
	case r.NitrogenBalance == nil:
		return fmt.Errorf("%w: nitrogen_balance is required", apperr.ErrInvalidRequest)
	}
	return nil
}

type EntryResponse struct {
	EntryID         uint    `json:"entry_id"`
	Year            int     `json:"year"`
	Division        int     `json:"division"`
	CropID          uint    `json:"crop_id"`
	CropName        string  `json:"crop_name"`
	DivisionSize    float64 `json:"division_size"`
	NitrogenBalance float64 `json:"nitrogen_balance"`
	DirectlyUpdated bool    `json:"directly_updated"`
}

type RotationResponse struct {
	RotationID             uint            `json:"rotation_id"`
	UserID                 string          `json:"user_id"`
	FieldID                *uint           `json:"field_id,omitempty"`
	RotationName           string          `json:"rotation_name"`
	FieldSize              float64         `json:"field_size"`
	NumberOfDivisions      int             `json:"number_of_divisions"`
	MaxYears               int             `json:"max_years"`
	ResidualNitrogenSupply float64         `json:"residual_nitrogen_supply"`
	CreatedAt              time.Time       `json:"created_at"`
	Entries                []EntryResponse `json:"entries"`
	Unplanted              []planner.Cell  `json:"unplanted"`
}

func NewRotationResponse(r *entities.Rotation) RotationResponse {
	out := RotationResponse{
		RotationID:             r.RotationID,
		UserID:                 r.UserID,
		FieldID:                r.FieldID,
		RotationName:           r.RotationName,
		FieldSize:              r.FieldSize,
		NumberOfDivisions:      r.NumberOfDivisions,
		MaxYears:               r.MaxYears,
		ResidualNitrogenSupply: r.ResidualNitrogenSupply,
		CreatedAt:              r.CreatedAt,
		Entries:                make([]EntryResponse, 0, len(r.Entries)),
		Unplanted:              planner.UnplantedCells(r),
	}
	for _, e := range r.Entries {
		out.Entries = append(out.Entries, EntryResponse{
			EntryID: e.EntryID, Year: e.Year, Division: e.Division,
			CropID: e.CropID, CropName: e.CropName,
			DivisionSize: e.DivisionSize, NitrogenBalance: e.NitrogenBalance,
			DirectlyUpdated: e.DirectlyUpdated,
		})
	}
	if out.Unplanted == nil {
		out.Unplanted = []planner.Cell{}
	}
	return out
}
