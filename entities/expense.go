package entities

import "time"

type Expense struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"` // seeds|fertilizer|labor|equipment|other
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"createdAt"`
}

// ExpenseCategories is the fixed category set, in display order.
var ExpenseCategories = []string{"seeds", "fertilizer", "labor", "equipment", "other"}
