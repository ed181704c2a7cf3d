// Package stats derives every displayed figure from the raw budget state:
// totals, surplus, percentage changes, year-to-date and year-over-year
// summaries. All functions are pure and total - missing records, nil maps
// and empty collections yield zero, never an error. Totals deliberately sum
// whatever category keys are present in a record, ignoring the catalog and
// category activation, so historical amounts of retired categories keep
// counting.
package stats

import (
	"math"
	"sort"

	"github.com/takziv/takziv/pkg/budget"
	"github.com/takziv/takziv/pkg/money"
	"github.com/takziv/takziv/pkg/savings"
)

// Flow selects which side of a record an average is computed over.
type Flow string

const (
	FlowIncome   Flow = "income"
	FlowExpenses Flow = "expenses"
)

// TotalExpenses sums all values of an expense map. A nil map totals zero.
func TotalExpenses(expenses map[string]money.Amount) float64 {
	return sumAmounts(expenses)
}

// TotalIncome sums all values of an income map. A nil map totals zero.
func TotalIncome(income map[string]money.Amount) float64 {
	return sumAmounts(income)
}

func sumAmounts(m map[string]money.Amount) float64 {
	sum := 0.0
	for _, v := range m {
		sum += float64(v)
	}
	return sum
}

// Surplus is income minus expenses for one month, zero for a nil month.
func Surplus(month *budget.MonthRecord) float64 {
	if month == nil {
		return 0
	}
	return TotalIncome(month.Income) - TotalExpenses(month.Expenses)
}

// PercentageChange returns the relative change from previous to current in
// percent. A zero previous value saturates to 100 when the current value is
// positive and 0 otherwise; this is a display convention, not a true
// percentage, and avoids dividing by zero.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / math.Abs(previous) * 100
}

// MonthlyAverage averages the income or expense totals across months, or a
// single category's value when field is non-empty. An empty collection
// averages to zero.
func MonthlyAverage(months []budget.MonthRecord, flow Flow, field string) float64 {
	if len(months) == 0 {
		return 0
	}
	sum := 0.0
	for i := range months {
		m := &months[i]
		values := m.Income
		if flow == FlowExpenses {
			values = m.Expenses
		}
		if field != "" {
			sum += float64(values[field])
			continue
		}
		sum += sumAmounts(values)
	}
	return sum / float64(len(months))
}

// SavingsRate is the surplus as a percentage of income, zero when the month
// has no income.
func SavingsRate(month *budget.MonthRecord) float64 {
	var income float64
	if month != nil {
		income = TotalIncome(month.Income)
	}
	if income == 0 {
		return 0
	}
	return Surplus(month) / income * 100
}

// YearToDate aggregates all months of one calendar year.
type YearToDate struct {
	Year                   int     `json:"year"`
	TotalIncome            float64 `json:"totalIncome"`
	TotalExpenses          float64 `json:"totalExpenses"`
	TotalSurplus           float64 `json:"totalSurplus"`
	AverageMonthlyIncome   float64 `json:"averageMonthlyIncome"`
	AverageMonthlyExpenses float64 `json:"averageMonthlyExpenses"`
	MonthCount             int     `json:"monthCount"`
}

// YearToDateTotals sums income and expenses over the months belonging to the
// given year, by Year field or month key prefix. No matching months yield an
// all-zero result with MonthCount 0.
func YearToDateTotals(months []budget.MonthRecord, year int) YearToDate {
	ytd := YearToDate{Year: year}
	for i := range months {
		if !months[i].InYear(year) {
			continue
		}
		ytd.TotalIncome += TotalIncome(months[i].Income)
		ytd.TotalExpenses += TotalExpenses(months[i].Expenses)
		ytd.MonthCount++
	}
	ytd.TotalSurplus = ytd.TotalIncome - ytd.TotalExpenses
	if ytd.MonthCount > 0 {
		ytd.AverageMonthlyIncome = ytd.TotalIncome / float64(ytd.MonthCount)
		ytd.AverageMonthlyExpenses = ytd.TotalExpenses / float64(ytd.MonthCount)
	}
	return ytd
}

// TotalSavings sums the accumulated balance across accounts.
func TotalSavings(accounts []savings.Account) float64 {
	sum := 0.0
	for _, a := range accounts {
		sum += float64(a.Accumulated)
	}
	return sum
}

// MonthlySavingsContributions sums the monthly deposit across accounts.
func MonthlySavingsContributions(accounts []savings.Account) float64 {
	sum := 0.0
	for _, a := range accounts {
		sum += float64(a.MonthlyAmount)
	}
	return sum
}

// Years lists the distinct calendar years present in the collection,
// newest first.
func Years(months []budget.MonthRecord) []int {
	seen := map[int]bool{}
	years := make([]int, 0, 4)
	for i := range months {
		year := months[i].Year
		if year == 0 {
			year = yearOfKey(months[i].Month)
		}
		if year == 0 || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

func yearOfKey(key string) int {
	if len(key) < 4 {
		return 0
	}
	year := 0
	for _, r := range key[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}
