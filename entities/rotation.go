package entities

import "time"

type Rotation struct {
	RotationID             uint      `gorm:"primaryKey" json:"rotation_id"`
	UserID                 string    `json:"user_id" gorm:"index"`
	FieldID                *uint     `json:"field_id,omitempty" gorm:"index"`
	RotationName           string    `json:"rotation_name"`
	FieldSize              float64   `json:"field_size"`
	NumberOfDivisions      int       `json:"number_of_divisions"`
	MaxYears               int       `json:"max_years"`
	ResidualNitrogenSupply float64   `json:"residual_nitrogen_supply"`
	CreatedAt              time.Time `json:"created_at"`

	Entries []RotationEntry `gorm:"foreignKey:RotationID" json:"entries"`
}

// RotationEntry is one planted (year, division) cell. An unplanted cell has no row.
type RotationEntry struct {
	EntryID         uint    `gorm:"primaryKey" json:"entry_id"`
	RotationID      uint    `json:"rotation_id" gorm:"uniqueIndex:idx_rotation_cell"`
	Year            int     `json:"year" gorm:"uniqueIndex:idx_rotation_cell"`
	Division        int     `json:"division" gorm:"uniqueIndex:idx_rotation_cell"`
	CropID          uint    `json:"crop_id" gorm:"index"`
	CropName        string  `json:"crop_name"`
	DivisionSize    float64 `json:"division_size"`
	NitrogenBalance float64 `json:"nitrogen_balance"`
	// DirectlyUpdated marks a value set by an explicit user edit; redistribution leaves it alone.
	DirectlyUpdated bool `json:"directly_updated"`
}
