package entities

import "time"

type Plot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CropKey   string    `json:"cropKey"` // wheat|rice|soybean|cotton|sugarcane|onion|...
	Acres     float64   `json:"acres"`
	Stage     int       `json:"stage"` // growth percent 0-100
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
