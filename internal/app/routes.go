package app

import (
	"github.com/gorilla/mux"
	"github.com/takziv/takziv/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Loading state
	r.HandleFunc("/api/status", deps.LoaderHandler.GetStatus).Methods("GET")
	r.HandleFunc("/api/reload", deps.LoaderHandler.Reload).Methods("POST")

	// Monthly budget
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetBudget).Methods("GET")
	r.HandleFunc("/api/budget", deps.BudgetHandler.AddMonth).Methods("POST")
	r.HandleFunc("/api/budget/{month}", deps.BudgetHandler.GetMonth).Methods("GET")
	r.HandleFunc("/api/budget/{month}", deps.BudgetHandler.UpdateMonth).Methods("PUT")
	r.HandleFunc("/api/categories", deps.BudgetHandler.GetCategories).Methods("GET")

	// Savings
	r.HandleFunc("/api/savings", deps.SavingsHandler.GetSavings).Methods("GET")

	// Stats
	r.HandleFunc("/api/stats/summary", deps.StatsHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/stats/years", deps.StatsHandler.GetYears).Methods("GET")
	r.HandleFunc("/api/stats/ytd", deps.StatsHandler.GetYearToDate).Queries("year", "{year}").Methods("GET")
	r.HandleFunc("/api/stats/yoy", deps.StatsHandler.GetYearOverYear).Queries("year", "{year}").Methods("GET")
	r.HandleFunc("/api/stats/report", deps.StatsHandler.GetReport).Queries("year", "{year}").Methods("GET")

	// Import
	r.HandleFunc("/api/import", deps.ImportHandler.Upload).Methods("POST")
}
