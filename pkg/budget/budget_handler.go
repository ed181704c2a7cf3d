package budget

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/takziv/takziv/internal/event_bus"
	"github.com/takziv/takziv/internal/rest"
	"github.com/takziv/takziv/pkg/dates"
)

type BudgetHandler struct {
	store *Store
	bus   *event_bus.EventBus
}

func NewBudgetHandler(store *Store, bus *event_bus.EventBus) *BudgetHandler {
	return &BudgetHandler{store: store, bus: bus}
}

// GetBudget returns the monthly budget document, optionally narrowed to a
// single year. Data is served even while the store is loading or errored so
// the dashboard can keep showing stale values during a reload.
func (handler *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	state := handler.store.Snapshot()
	document := state.MonthlyBudget

	if yearString := r.URL.Query().Get("year"); yearString != "" {
		year, err := strconv.Atoi(yearString)
		if err != nil {
			http.Error(w, "Invalid year", http.StatusBadRequest)
			return
		}
		filtered := make([]MonthRecord, 0, len(document.Months))
		for _, m := range document.Months {
			if m.InYear(year) {
				filtered = append(filtered, m)
			}
		}
		document.Months = filtered
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(document); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BudgetHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	monthKey := mux.Vars(r)["month"]

	state := handler.store.Snapshot()
	record := state.MonthlyBudget.Find(monthKey)
	if record == nil {
		w.WriteHeader(http.StatusNotFound)
		if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Month not found"}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdateMonth commits an edited record, replacing the stored one wholly.
// Unknown month keys are rejected here; the store action itself stays a
// silent no-op so bulk callers are never interrupted.
func (handler *BudgetHandler) UpdateMonth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	monthKey := mux.Vars(r)["month"]

	var record MonthRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if record.Month == "" {
		record.Month = monthKey
	}
	if record.Month != monthKey {
		http.Error(w, "Invalid month key in request body", http.StatusBadRequest)
		return
	}

	if found := handler.store.UpdateMonth(record); !found {
		w.WriteHeader(http.StatusNotFound)
		if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Month not found"}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	handler.publish(event_bus.EventMonthUpdated, event_bus.MonthChanged{Month: record.Month})

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// AddMonth applies the merge-or-insert action. A new month key answers 201
// with the inserted record, an existing one answers 200 with the merge
// result.
func (handler *BudgetHandler) AddMonth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Adding budget month")

	var record MonthRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if record.Month == "" {
		http.Error(w, "Month key is required", http.StatusBadRequest)
		return
	}
	if record.MonthLabel == "" {
		record.MonthLabel = dates.FormatMonthHebrewFull(record.Month)
	}
	if record.Year == 0 {
		record.Year = dates.YearOf(record.Month)
	}

	result, merged := handler.store.AddMonth(record)
	handler.publish(event_bus.EventMonthAdded, event_bus.MonthChanged{Month: result.Month, Merged: merged})

	if merged {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetCategories returns the category catalog. With activeOnly set, retired
// categories are dropped and the rest sorted into display order.
func (handler *BudgetHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	state := handler.store.Snapshot()
	catalog := state.Categories

	if r.URL.Query().Has("activeOnly") {
		active := make([]Category, 0, len(catalog.Categories))
		for _, cat := range catalog.Categories {
			if cat.IsActive {
				active = append(active, cat)
			}
		}
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].SortOrder < active[j].SortOrder
		})
		catalog.Categories = active
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(catalog); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *BudgetHandler) publish(eventType event_bus.EventType, data any) {
	if handler.bus == nil {
		return
	}
	if err := handler.bus.Publish(event_bus.NewEvent(eventType, data)); err != nil {
		log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
