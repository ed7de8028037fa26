package models

import "time"

// ColdStorageUnit represents one fridge/freezer/wine chiller on the floor.
// MinTemp/MaxTemp are kept exactly as entered and only apply to wine chillers;
// fixed unit types carry their range in code.
type ColdStorageUnit struct {
	ID         int       `json:"id"`
	UnitNumber string    `json:"unit_number"`
	Location   string    `json:"location"`
	UnitType   string    `json:"unit_type"`
	MinTemp    *string   `json:"min_temp,omitempty"`
	MaxTemp    *string   `json:"max_temp,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ColdStorageUnitRequest struct {
	UnitNumber string  `json:"unit_number" binding:"required"`
	Location   string  `json:"location"`
	UnitType   string  `json:"unit_type" binding:"required"`
	MinTemp    *string `json:"min_temp"`
	MaxTemp    *string `json:"max_temp"`
}
