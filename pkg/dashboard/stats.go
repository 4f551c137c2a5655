// Package dashboard folds the record collections into the summary numbers
// the home screen shows. Pure functions, no persistence.
package dashboard

import (
	"fmt"
	"math"
	"strings"

	"farmmate/entities"
)

// Placeholder multipliers carried over from the product mock; neither models
// a real agronomic yield or income figure.
const (
	yieldPerAcre     = 8
	incomeMultiplier = 1.8
)

type Stats struct {
	TotalLand     float64 `json:"totalLand"`
	ActiveCrops   int     `json:"activeCrops"`
	ExpectedYield int     `json:"expectedYield"`
	TotalExpense  float64 `json:"totalExpense"`
	TotalIncome   float64 `json:"totalIncome"`
	NetProfit     float64 `json:"netProfit"`
}

func Compute(plots []entities.Plot, expenses []entities.Expense) Stats {
	var land, yield float64
	for _, p := range plots {
		land += p.Acres
		yield += p.Acres * yieldPerAcre
	}
	var expense float64
	for _, e := range expenses {
		expense += e.Amount
	}
	income := expense * incomeMultiplier
	st := Stats{
		TotalLand:    land,
		ActiveCrops:  len(plots),
		TotalExpense: expense,
		TotalIncome:  income,
		NetProfit:    income - expense,
	}
	if len(plots) > 0 {
		st.ExpectedYield = int(math.Round(yield))
	}
	return st
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type MonthBucket struct {
	Month   string  `json:"month"`
	Expense float64 `json:"expense"`
	Income  float64 `json:"income"`
}

// MonthlyBuckets groups expense amounts by YYYY-MM date prefix for the given
// year; income per bucket is the placeholder multiplier over the bucket sum.
func MonthlyBuckets(expenses []entities.Expense, year int) []MonthBucket {
	out := make([]MonthBucket, 12)
	for i := range out {
		prefix := fmt.Sprintf("%04d-%02d", year, i+1)
		var sum float64
		for _, e := range expenses {
			if strings.HasPrefix(e.Date, prefix) {
				sum += e.Amount
			}
		}
		out[i] = MonthBucket{
			Month:   monthNames[i],
			Expense: sum,
			Income:  math.Round(sum * incomeMultiplier),
		}
	}
	return out
}

type CategoryBucket struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CategoryBuckets sums per fixed category, every category present even when
// zero. Amounts under an unknown category are left out, same as the UI.
func CategoryBuckets(expenses []entities.Expense) []CategoryBucket {
	out := make([]CategoryBucket, 0, len(entities.ExpenseCategories))
	for _, cat := range entities.ExpenseCategories {
		var sum float64
		for _, e := range expenses {
			if e.Category == cat {
				sum += e.Amount
			}
		}
		out = append(out, CategoryBucket{Category: cat, Amount: sum})
	}
	return out
}
