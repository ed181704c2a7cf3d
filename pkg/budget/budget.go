package budget

import (
	"time"

	"github.com/takziv/takziv/pkg/money"
)

// MonthRecord is one calendar month's budget entry. Month is the primary key
// in canonical YYYY-MM form; Year duplicates its prefix as a fast filter
// field. Expense and income maps are keyed by category id and need not cover
// every known category - an absent key means zero.
type MonthRecord struct {
	Month      string                  `json:"month"`
	Year       int                     `json:"year,omitempty"`
	MonthLabel string                  `json:"month_label,omitempty"`
	Expenses   map[string]money.Amount `json:"expenses,omitempty"`
	Income     map[string]money.Amount `json:"income,omitempty"`
	Notes      string                  `json:"notes,omitempty"`
	UpdatedAt  time.Time               `json:"updated_at,omitzero"`
}

// InYear reports whether the record belongs to the given calendar year,
// either by its Year field or by its month key prefix.
func (m MonthRecord) InYear(year int) bool {
	if m.Year == year {
		return true
	}
	return yearPrefix(m.Month) == year
}

func yearPrefix(key string) int {
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

// MonthlyBudget is the monthly_budget.json wire shape: the ordered record
// collection plus free-form document metadata.
type MonthlyBudget struct {
	Months   []MonthRecord  `json:"months"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Find returns the record for a month key, nil when absent.
func (b MonthlyBudget) Find(month string) *MonthRecord {
	for i := range b.Months {
		if b.Months[i].Month == month {
			return &b.Months[i]
		}
	}
	return nil
}
