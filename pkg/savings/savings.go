package savings

import (
	"sort"

	"github.com/takziv/takziv/pkg/money"
)

type AccountType string

const (
	// TypeMonthly is a savings account with a fixed monthly deposit.
	TypeMonthly AccountType = "monthly"
	// TypeFixed covers study funds and term deposits without a monthly column.
	TypeFixed AccountType = "fixed"
	// TypeCash covers liquid bank accounts.
	TypeCash AccountType = "cash"
)

// groupLabels carries the Hebrew presentation metadata for each account type
// group, in display order.
var groupLabels = []struct {
	accountType AccountType
	label       string
	description string
}{
	{TypeMonthly, "חסכונות חודשיים", "חסכונות עם הפקדה חודשית קבועה"},
	{TypeFixed, "קרנות השתלמות", "קרנות השתלמות ופיקדונות"},
	{TypeCash, "חשבונות עו\"ש", "חשבונות בנק ונזילים"},
}

type Account struct {
	ID            string       `json:"id"`
	AccountName   string       `json:"account_name"`
	Owner         string       `json:"owner,omitempty"`
	AccountType   AccountType  `json:"account_type"`
	Accumulated   money.Amount `json:"accumulated"`
	MonthlyAmount money.Amount `json:"monthly_amount,omitempty"`
	YearlyAmount  money.Amount `json:"yearly_amount,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	SortOrder     int          `json:"sort_order,omitempty"`
}

// YearlyContribution is the explicit yearly deposit when present, otherwise
// twelve monthly deposits.
func (a Account) YearlyContribution() money.Amount {
	if a.YearlyAmount != 0 {
		return a.YearlyAmount
	}
	return a.MonthlyAmount * 12
}

// Document is the savings_accounts.json wire shape.
type Document struct {
	SavingsAccounts []Account      `json:"savings_accounts"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// Group is one presentation table of accounts sharing a type.
type Group struct {
	Type         AccountType
	Label        string
	Description  string
	ShowMonthly  bool
	Accounts     []Account
	Total        money.Amount
	MonthlyTotal money.Amount
}

// GroupByType splits accounts into the three fixed presentation groups,
// ordered by sort_order inside each group. Empty groups are dropped.
func GroupByType(accounts []Account) []Group {
	groups := make([]Group, 0, len(groupLabels))
	for _, gl := range groupLabels {
		group := Group{
			Type:        gl.accountType,
			Label:       gl.label,
			Description: gl.description,
			ShowMonthly: gl.accountType == TypeMonthly,
		}
		for _, a := range accounts {
			if a.AccountType != gl.accountType {
				continue
			}
			group.Accounts = append(group.Accounts, a)
			group.Total += a.Accumulated
			group.MonthlyTotal += a.MonthlyAmount
		}
		if len(group.Accounts) == 0 {
			continue
		}
		sort.SliceStable(group.Accounts, func(i, j int) bool {
			return group.Accounts[i].SortOrder < group.Accounts[j].SortOrder
		})
		groups = append(groups, group)
	}
	return groups
}
