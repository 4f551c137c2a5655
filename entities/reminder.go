package entities

import "time"

type Reminder struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Category  string    `json:"category"` // water|fertilizer|pesticide|harvest|other
	Time      string    `json:"time"`     // HH:MM
	Date      string    `json:"date"`     // YYYY-MM-DD
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}
