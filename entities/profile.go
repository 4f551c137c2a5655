package entities

import "time"

// Profile is the one record mirrored to the server-side store; everything
// else lives in the per-device record store only.
type Profile struct {
	ProfileID      uint    `gorm:"primaryKey" json:"profile_id"`
	UserID         string  `json:"user_id" gorm:"index"`
	FullName       string  `json:"full_name"`
	FarmName       string  `json:"farm_name"`
	Location       string  `json:"location"`
	TotalLandAcres float64 `json:"total_land_acres"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
