package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farmmate/entities"
)

func TestComputeStats(t *testing.T) {
	plots := []entities.Plot{
		{ID: "p1", Acres: 2.5},
		{ID: "p2", Acres: 1.5},
	}
	expenses := []entities.Expense{
		{ID: "e1", Amount: 1000},
		{ID: "e2", Amount: 500},
	}

	st := Compute(plots, expenses)
	assert.Equal(t, 4.0, st.TotalLand)
	assert.Equal(t, 2, st.ActiveCrops)
	assert.Equal(t, 32, st.ExpectedYield) // 4 acres * 8
	assert.Equal(t, 1500.0, st.TotalExpense)
	assert.Equal(t, 2700.0, st.TotalIncome) // 1.8x placeholder
	assert.Equal(t, 1200.0, st.NetProfit)
}

func TestComputeEmpty(t *testing.T) {
	st := Compute(nil, nil)
	assert.Equal(t, 0.0, st.TotalLand)
	assert.Equal(t, 0, st.ActiveCrops)
	assert.Equal(t, 0, st.ExpectedYield)
	assert.Equal(t, 0.0, st.NetProfit)
}

func TestMonthlyBuckets(t *testing.T) {
	expenses := []entities.Expense{
		{ID: "e1", Amount: 100, Date: "2025-03-05"},
		{ID: "e2", Amount: 250, Date: "2025-03-20"},
		{ID: "e3", Amount: 80, Date: "2025-07-01"},
		{ID: "e4", Amount: 999, Date: "2024-03-05"}, // other year, ignored
	}

	buckets := MonthlyBuckets(expenses, 2025)
	assert.Len(t, buckets, 12)
	assert.Equal(t, "Mar", buckets[2].Month)
	assert.Equal(t, 350.0, buckets[2].Expense)
	assert.Equal(t, 630.0, buckets[2].Income)
	assert.Equal(t, 80.0, buckets[6].Expense)
	assert.Equal(t, 0.0, buckets[0].Expense)
}

func TestCategoryBuckets(t *testing.T) {
	expenses := []entities.Expense{
		{ID: "e1", Category: "seeds", Amount: 100},
		{ID: "e2", Category: "seeds", Amount: 40},
		{ID: "e3", Category: "labor", Amount: 300},
		{ID: "e4", Category: "mystery", Amount: 77}, // not a fixed category
	}

	buckets := CategoryBuckets(expenses)
	assert.Len(t, buckets, len(entities.ExpenseCategories))

	sums := map[string]float64{}
	for _, b := range buckets {
		sums[b.Category] = b.Amount
	}
	assert.Equal(t, 140.0, sums["seeds"])
	assert.Equal(t, 300.0, sums["labor"])
	assert.Equal(t, 0.0, sums["equipment"])
	assert.NotContains(t, sums, "mystery")
}
