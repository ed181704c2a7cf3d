package loader

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/takziv/takziv/pkg/budget"
)

type StatusDTO struct {
	Status      budget.LoadStatus `json:"status"`
	Error       string            `json:"error,omitempty"`
	LastUpdated *time.Time        `json:"lastUpdated,omitempty"`
	Months      int               `json:"months"`
	Accounts    int               `json:"accounts"`
	Categories  int               `json:"categories"`
}

type LoaderHandler struct {
	loader *Loader
	store  *budget.Store
}

func NewLoaderHandler(loader *Loader, store *budget.Store) *LoaderHandler {
	return &LoaderHandler{loader: loader, store: store}
}

func (handler *LoaderHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(statusOf(handler.store.Snapshot())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Reload re-runs the full three-document load. Existing data stays visible
// while the reload is in flight and survives a failed attempt.
func (handler *LoaderHandler) Reload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Info("reloading budget data")

	if err := handler.loader.LoadAll(r.Context()); err != nil {
		w.WriteHeader(http.StatusBadGateway)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if err := json.NewEncoder(w).Encode(statusOf(handler.store.Snapshot())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func statusOf(state budget.State) StatusDTO {
	dto := StatusDTO{
		Status:     state.Status,
		Error:      state.Err,
		Months:     len(state.MonthlyBudget.Months),
		Accounts:   len(state.Savings.SavingsAccounts),
		Categories: len(state.Categories.Categories),
	}
	if !state.LastUpdated.IsZero() {
		lastUpdated := state.LastUpdated
		dto.LastUpdated = &lastUpdated
	}
	return dto
}
