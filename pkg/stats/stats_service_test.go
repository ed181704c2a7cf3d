package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takziv/takziv/internal/utils"
	"github.com/takziv/takziv/pkg/budget"
	"github.com/takziv/takziv/pkg/money"
	"github.com/takziv/takziv/pkg/savings"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func serviceWith(t *testing.T, months []budget.MonthRecord, accounts []savings.Account) *StatsServiceImpl {
	t.Helper()
	store := budget.NewStore(&utils.MockClock{FixedNow: testNow})
	store.Load(
		budget.MonthlyBudget{Months: months},
		savings.Document{SavingsAccounts: accounts},
		budget.Catalog{Categories: []budget.Category{
			{ID: "mortgage", Type: budget.CategoryExpense, NameHebrew: "משכנתא", IsActive: true, SortOrder: 1},
			{ID: "food", Type: budget.CategoryExpense, NameHebrew: "מזון", IsActive: true, SortOrder: 2},
			{ID: "cable_tv", Type: budget.CategoryExpense, NameHebrew: "כבלים", IsActive: false, SortOrder: 3},
			{ID: "salaries", Type: budget.CategoryIncome, NameHebrew: "משכורות", IsActive: true, SortOrder: 1},
		}},
	)
	return NewStatsServiceImpl(store)
}

func TestStatsServiceImpl_Summary(t *testing.T) {
	t.Run("should compare the last two months", func(t *testing.T) {
		// given
		service := serviceWith(t, []budget.MonthRecord{
			{Month: "2024-01", Income: map[string]money.Amount{"salaries": 10000}, Expenses: map[string]money.Amount{"mortgage": 8000}},
			{Month: "2024-02", Income: map[string]money.Amount{"salaries": 12000}, Expenses: map[string]money.Amount{"mortgage": 9000}},
		}, []savings.Account{
			{ID: "a", Accumulated: 1000, MonthlyAmount: 50},
			{ID: "b", Accumulated: 2000},
		})

		// when
		summary := service.Summary()

		// then
		assert.Equal(t, "2024-02", summary.Month)
		assert.Equal(t, "פברואר 2024", summary.MonthLabel)
		assert.InDelta(t, 12000, summary.Income.Value, 1e-9)
		assert.InDelta(t, 20, summary.Income.Change, 1e-9)
		assert.InDelta(t, 9000, summary.Expenses.Value, 1e-9)
		assert.InDelta(t, 12.5, summary.Expenses.Change, 1e-9)
		assert.InDelta(t, 3000, summary.Surplus.Value, 1e-9)
		assert.InDelta(t, 50, summary.Surplus.Change, 1e-9)
		assert.InDelta(t, 25, summary.SavingsRate, 1e-9)
		assert.InDelta(t, 3000, summary.TotalSavings, 1e-9)
		assert.InDelta(t, 50, summary.MonthlySavings, 1e-9)
	})

	t.Run("should saturate changes with a single month", func(t *testing.T) {
		// given
		service := serviceWith(t, []budget.MonthRecord{
			{Month: "2024-01", Income: map[string]money.Amount{"salaries": 10000}},
		}, nil)

		// when
		summary := service.Summary()

		// then
		assert.InDelta(t, 100, summary.Income.Change, 1e-9)
		assert.Zero(t, summary.Expenses.Change)
	})

	t.Run("should stay empty without any data", func(t *testing.T) {
		// given
		service := serviceWith(t, nil, nil)

		// when
		summary := service.Summary()

		// then
		assert.Empty(t, summary.Month)
		assert.Zero(t, summary.Income.Value)
		assert.Zero(t, summary.TotalSavings)
	})
}

func TestStatsServiceImpl_YearOverYear(t *testing.T) {
	// given
	service := serviceWith(t, []budget.MonthRecord{
		{Month: "2023-01", Expenses: map[string]money.Amount{"mortgage": 5000, "food": 2000}},
		{Month: "2023-02", Expenses: map[string]money.Amount{"mortgage": 5000}},
		{Month: "2024-01", Expenses: map[string]money.Amount{"mortgage": 5200, "food": 2500}},
	}, nil)

	t.Run("should pair requested months across adjacent years", func(t *testing.T) {
		// when
		comparison := service.YearOverYear(2024, []string{"01", "02", "03"})

		// then
		assert.Equal(t, 2024, comparison.Year)
		assert.Equal(t, 2023, comparison.PreviousYear)
		require.Len(t, comparison.Pairs, 2)

		january := comparison.Pairs[0]
		assert.Equal(t, "01", january.MonthNumber)
		assert.True(t, january.HasCurrent)
		assert.True(t, january.HasPrevious)
		assert.InDelta(t, 7700, january.CurrentTotal, 1e-9)
		assert.InDelta(t, 7000, january.PreviousTotal, 1e-9)
		assert.InDelta(t, 10, january.Change, 1e-9)

		february := comparison.Pairs[1]
		assert.Equal(t, "02", february.MonthNumber)
		assert.False(t, february.HasCurrent)
		assert.True(t, february.HasPrevious)
	})

	t.Run("should break expenses down by active category", func(t *testing.T) {
		// when
		comparison := service.YearOverYear(2024, []string{"01"})

		// then
		require.Len(t, comparison.Pairs, 1)
		categories := comparison.Pairs[0].Categories
		require.Len(t, categories, 2)
		assert.Equal(t, "mortgage", categories[0].CategoryID)
		assert.InDelta(t, 5200, categories[0].Current, 1e-9)
		assert.InDelta(t, 5000, categories[0].Previous, 1e-9)
		assert.InDelta(t, 4, categories[0].Change, 1e-9)
		assert.Equal(t, "food", categories[1].CategoryID)
	})

	t.Run("should default to all twelve month numbers", func(t *testing.T) {
		// when
		comparison := service.YearOverYear(2024, nil)

		// then
		assert.Len(t, comparison.Pairs, 2)
	})
}

func TestStatsServiceImpl_ReportData(t *testing.T) {
	t.Run("should return the year's months with active expense columns", func(t *testing.T) {
		// given
		service := serviceWith(t, []budget.MonthRecord{
			{Month: "2023-12", Expenses: map[string]money.Amount{"mortgage": 5000}},
			{Month: "2024-01", Expenses: map[string]money.Amount{"mortgage": 5200}},
		}, nil)

		// when
		months, categories := service.ReportData(2024)

		// then
		require.Len(t, months, 1)
		assert.Equal(t, "2024-01", months[0].Month)
		require.Len(t, categories, 2)
		assert.Equal(t, "mortgage", categories[0].ID)
		assert.Equal(t, "food", categories[1].ID)
	})
}

func TestStatsServiceImpl_Years(t *testing.T) {
	service := serviceWith(t, []budget.MonthRecord{
		{Month: "2023-05"},
		{Month: "2024-01"},
	}, nil)

	assert.Equal(t, []int{2024, 2023}, service.Years())
}
