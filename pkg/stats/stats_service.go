package stats

import (
	"fmt"

	"github.com/takziv/takziv/pkg/budget"
	"github.com/takziv/takziv/pkg/dates"
)

type StatsService interface {
	Summary() Summary
	YearToDate(year int) YearToDate
	YearOverYear(year int, monthNumbers []string) YoYComparison
	Years() []int
	ReportData(year int) ([]budget.MonthRecord, []budget.Category)
}

type StatsServiceImpl struct {
	store *budget.Store
}

func NewStatsServiceImpl(store *budget.Store) *StatsServiceImpl {
	return &StatsServiceImpl{store: store}
}

// Summary derives the dashboard cards from the last two records in the
// sorted collection. With fewer than two records the change saturates the
// way PercentageChange does.
func (s *StatsServiceImpl) Summary() Summary {
	state := s.store.Snapshot()
	months := state.MonthlyBudget.Months

	var current, previous *budget.MonthRecord
	if len(months) > 0 {
		current = &months[len(months)-1]
	}
	if len(months) > 1 {
		previous = &months[len(months)-2]
	}

	summary := Summary{
		Income: CardStat{
			Value:  totalIncomeOf(current),
			Change: PercentageChange(totalIncomeOf(current), totalIncomeOf(previous)),
		},
		Expenses: CardStat{
			Value:  totalExpensesOf(current),
			Change: PercentageChange(totalExpensesOf(current), totalExpensesOf(previous)),
		},
		Surplus: CardStat{
			Value:  Surplus(current),
			Change: PercentageChange(Surplus(current), Surplus(previous)),
		},
		SavingsRate:    SavingsRate(current),
		TotalSavings:   TotalSavings(state.Savings.SavingsAccounts),
		MonthlySavings: MonthlySavingsContributions(state.Savings.SavingsAccounts),
	}
	if current != nil {
		summary.Month = current.Month
		summary.MonthLabel = dates.FormatMonthHebrewFull(current.Month)
	}
	return summary
}

func (s *StatsServiceImpl) YearToDate(year int) YearToDate {
	state := s.store.Snapshot()
	return YearToDateTotals(state.MonthlyBudget.Months, year)
}

// YearOverYear pairs each requested month number of the selected year with
// the same month of the previous year and breaks expenses down by the active
// category columns. Month numbers with no record on either side are dropped,
// mirroring the comparison table.
func (s *StatsServiceImpl) YearOverYear(year int, monthNumbers []string) YoYComparison {
	state := s.store.Snapshot()
	mb := state.MonthlyBudget
	categories := state.Categories.Active(budget.CategoryExpense)

	if len(monthNumbers) == 0 {
		for m := 1; m <= 12; m++ {
			monthNumbers = append(monthNumbers, fmt.Sprintf("%02d", m))
		}
	}

	comparison := YoYComparison{Year: year, PreviousYear: year - 1}
	for _, num := range monthNumbers {
		currentKey := fmt.Sprintf("%d-%s", year, num)
		previousKey := fmt.Sprintf("%d-%s", year-1, num)
		current := mb.Find(currentKey)
		previous := mb.Find(previousKey)
		if current == nil && previous == nil {
			continue
		}

		pair := YoYPair{
			MonthNumber:   num,
			CurrentKey:    currentKey,
			PreviousKey:   previousKey,
			CurrentLabel:  dates.FormatMonthHebrewFull(currentKey),
			PreviousLabel: dates.FormatMonthHebrewFull(previousKey),
			HasCurrent:    current != nil,
			HasPrevious:   previous != nil,
			CurrentTotal:  totalExpensesOf(current),
			PreviousTotal: totalExpensesOf(previous),
		}
		pair.Change = PercentageChange(pair.CurrentTotal, pair.PreviousTotal)

		for _, cat := range categories {
			delta := YoYCategoryDelta{
				CategoryID: cat.ID,
				NameHebrew: cat.NameHebrew,
				Current:    categoryValue(current, cat.ID),
				Previous:   categoryValue(previous, cat.ID),
			}
			delta.Change = PercentageChange(delta.Current, delta.Previous)
			pair.Categories = append(pair.Categories, delta)
		}
		comparison.Pairs = append(comparison.Pairs, pair)
	}
	return comparison
}

func (s *StatsServiceImpl) Years() []int {
	state := s.store.Snapshot()
	return Years(state.MonthlyBudget.Months)
}

// ReportData returns the year's records in chronological order together with
// the active expense category columns, ready for rendering.
func (s *StatsServiceImpl) ReportData(year int) ([]budget.MonthRecord, []budget.Category) {
	state := s.store.Snapshot()
	months := make([]budget.MonthRecord, 0, 12)
	for _, m := range state.MonthlyBudget.Months {
		if m.InYear(year) {
			months = append(months, m)
		}
	}
	return months, state.Categories.Active(budget.CategoryExpense)
}

func totalIncomeOf(m *budget.MonthRecord) float64 {
	if m == nil {
		return 0
	}
	return TotalIncome(m.Income)
}

func totalExpensesOf(m *budget.MonthRecord) float64 {
	if m == nil {
		return 0
	}
	return TotalExpenses(m.Expenses)
}

func categoryValue(m *budget.MonthRecord, categoryID string) float64 {
	if m == nil {
		return 0
	}
	return float64(m.Expenses[categoryID])
}
