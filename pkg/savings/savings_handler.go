package savings

import (
	"encoding/json"
	"net/http"

	"github.com/takziv/takziv/pkg/money"
)

type AccountDTO struct {
	ID            string       `json:"id"`
	AccountName   string       `json:"accountName"`
	Owner         string       `json:"owner,omitempty"`
	AccountType   AccountType  `json:"accountType"`
	Accumulated   money.Amount `json:"accumulated"`
	MonthlyAmount money.Amount `json:"monthlyAmount,omitempty"`
	YearlyAmount  money.Amount `json:"yearlyAmount,omitempty"`
	Notes         string       `json:"notes,omitempty"`
}

type GroupDTO struct {
	Type         AccountType  `json:"type"`
	Label        string       `json:"label"`
	Description  string       `json:"description,omitempty"`
	ShowMonthly  bool         `json:"showMonthly"`
	Accounts     []AccountDTO `json:"accounts"`
	Total        money.Amount `json:"total"`
	MonthlyTotal money.Amount `json:"monthlyTotal,omitempty"`
}

type SavingsDTO struct {
	Groups           []GroupDTO     `json:"groups"`
	TotalAccumulated money.Amount   `json:"totalAccumulated"`
	TotalMonthly     money.Amount   `json:"totalMonthly"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// DocumentProvider hands the handler the current savings document; the
// store lives in another package and is injected as a plain function.
type DocumentProvider func() Document

type SavingsHandler struct {
	document DocumentProvider
}

func NewSavingsHandler(document DocumentProvider) *SavingsHandler {
	return &SavingsHandler{document: document}
}

// GetSavings returns the accounts grouped into their three presentation
// tables with per-group and overall totals.
func (handler *SavingsHandler) GetSavings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doc := handler.document()
	groups := GroupByType(doc.SavingsAccounts)

	dto := SavingsDTO{
		Groups:   make([]GroupDTO, 0, len(groups)),
		Metadata: doc.Metadata,
	}
	for _, group := range groups {
		groupDTO := GroupDTO{
			Type:         group.Type,
			Label:        group.Label,
			Description:  group.Description,
			ShowMonthly:  group.ShowMonthly,
			Accounts:     make([]AccountDTO, 0, len(group.Accounts)),
			Total:        group.Total,
			MonthlyTotal: group.MonthlyTotal,
		}
		for _, account := range group.Accounts {
			accountDTO := AccountDTO{
				ID:            account.ID,
				AccountName:   account.AccountName,
				Owner:         account.Owner,
				AccountType:   account.AccountType,
				Accumulated:   account.Accumulated,
				MonthlyAmount: account.MonthlyAmount,
				Notes:         account.Notes,
			}
			if account.AccountType == TypeMonthly {
				accountDTO.YearlyAmount = account.YearlyContribution()
			}
			groupDTO.Accounts = append(groupDTO.Accounts, accountDTO)
		}
		dto.Groups = append(dto.Groups, groupDTO)
		dto.TotalAccumulated += group.Total
		dto.TotalMonthly += group.MonthlyTotal
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
