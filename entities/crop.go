package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Crop struct {
	CropID                     uint                        `gorm:"primaryKey" json:"crop_id"`
	UserID                     string                      `json:"user_id" gorm:"index"`
	Name                       string                      `json:"name" gorm:"index"`
	NitrogenSupply             float64                     `json:"nitrogen_supply"`
	NitrogenDemand             float64                     `json:"nitrogen_demand"`
	Pests                      datatypes.JSONSlice[string] `json:"pests"`
	Diseases                   datatypes.JSONSlice[string] `json:"diseases"`
	MinimumRepeatIntervalYears int                         `json:"minimum_repeat_interval_years"`
	PlantingDate               *time.Time                  `json:"planting_date,omitempty"`
	HarvestingDate             *time.Time                  `json:"harvesting_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// CropSelection is the per-user remaining-uses counter for a crop.
type CropSelection struct {
	SelectionID uint   `gorm:"primaryKey" json:"selection_id"`
	UserID      string `json:"user_id" gorm:"uniqueIndex:idx_selection_user_crop"`
	CropID      uint   `json:"crop_id" gorm:"uniqueIndex:idx_selection_user_crop"`
	Remaining   int    `json:"remaining"`

	UpdatedAt time.Time `json:"updated_at"`
}
