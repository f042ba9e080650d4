package entities

import "time"

// Field is a farmer's plot. Rotations may reference one by id.
type Field struct {
	FieldID     uint    `gorm:"primaryKey" json:"field_id"`
	UserID      string  `json:"user_id" gorm:"index"`
	Name        string  `json:"name"`
	Size        float64 `json:"size"`         // area units, same as rotation field_size
	SoilTexture string  `json:"soil_texture"` // sand|loam|clay
	Location    string  `json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
