package stats

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/takziv/takziv/internal/rest"
	"github.com/takziv/takziv/pkg/format"
)

type CardStatDTO struct {
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	Display       string  `json:"display"`
	ChangeDisplay string  `json:"changeDisplay"`
}

type SummaryDTO struct {
	Month               string      `json:"month,omitempty"`
	MonthLabel          string      `json:"monthLabel,omitempty"`
	Income              CardStatDTO `json:"income"`
	Expenses            CardStatDTO `json:"expenses"`
	Surplus             CardStatDTO `json:"surplus"`
	SavingsRate         float64     `json:"savingsRate"`
	TotalSavings        float64     `json:"totalSavings"`
	TotalSavingsDisplay string      `json:"totalSavingsDisplay"`
	MonthlySavings      float64     `json:"monthlySavings"`
}

type YoYCategoryDTO struct {
	CategoryID string  `json:"categoryId"`
	NameHebrew string  `json:"nameHebrew"`
	Current    float64 `json:"current"`
	Previous   float64 `json:"previous"`
	Change     float64 `json:"change"`
}

type YoYPairDTO struct {
	MonthNumber   string           `json:"monthNumber"`
	CurrentMonth  string           `json:"currentMonth"`
	PreviousMonth string           `json:"previousMonth"`
	CurrentLabel  string           `json:"currentLabel"`
	PreviousLabel string           `json:"previousLabel"`
	HasCurrent    bool             `json:"hasCurrent"`
	HasPrevious   bool             `json:"hasPrevious"`
	Categories    []YoYCategoryDTO `json:"categories"`
	CurrentTotal  float64          `json:"currentTotal"`
	PreviousTotal float64          `json:"previousTotal"`
	Change        float64          `json:"change"`
	ChangeDisplay string           `json:"changeDisplay"`
}

type YoYComparisonDTO struct {
	Year         int          `json:"year"`
	PreviousYear int          `json:"previousYear"`
	Pairs        []YoYPairDTO `json:"pairs"`
}

type StatsHandler struct {
	statsService StatsService
	csvRenderer  ReportRenderer
}

func NewStatsHandler(statsService StatsService, csvRenderer ReportRenderer) *StatsHandler {
	return &StatsHandler{statsService, csvRenderer}
}

func (handler *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	summary := handler.statsService.Summary()

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *StatsHandler) GetYearToDate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	ytd := handler.statsService.YearToDate(year)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ytd); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *StatsHandler) GetYearOverYear(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	var monthNumbers []string
	if monthsParam := r.URL.Query().Get("months"); monthsParam != "" {
		monthNumbers = strings.Split(monthsParam, ",")
	}

	comparison := handler.statsService.YearOverYear(year, monthNumbers)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(yoyToDTO(comparison)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *StatsHandler) GetYears(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	years := handler.statsService.Years()
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(years); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *StatsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	months, categories := handler.statsService.ReportData(year)
	csvData, err := handler.csvRenderer.RenderYear(year, months, categories)
	if err != nil {
		log.Errorf("failed to render yearly report: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"budget_%d.csv\"", year))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csvData)); err != nil {
		log.Errorf("failed to write yearly report: %v", err)
	}
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	yearString := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearString)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid year",
			Details: "year must be an integer, e.g. 2024",
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return 0, false
	}
	return year, true
}

func summaryToDTO(s Summary) SummaryDTO {
	return SummaryDTO{
		Month:               s.Month,
		MonthLabel:          s.MonthLabel,
		Income:              cardToDTO(s.Income),
		Expenses:            cardToDTO(s.Expenses),
		Surplus:             cardToDTO(s.Surplus),
		SavingsRate:         s.SavingsRate,
		TotalSavings:        s.TotalSavings,
		TotalSavingsDisplay: format.Currency(s.TotalSavings),
		MonthlySavings:      s.MonthlySavings,
	}
}

func cardToDTO(c CardStat) CardStatDTO {
	return CardStatDTO{
		Value:         c.Value,
		Change:        c.Change,
		Display:       format.Currency(c.Value),
		ChangeDisplay: format.Percentage(c.Change, 1, true),
	}
}

func yoyToDTO(c YoYComparison) YoYComparisonDTO {
	pairs := make([]YoYPairDTO, 0, len(c.Pairs))
	for _, p := range c.Pairs {
		categories := make([]YoYCategoryDTO, 0, len(p.Categories))
		for _, cat := range p.Categories {
			categories = append(categories, YoYCategoryDTO(cat))
		}
		pairs = append(pairs, YoYPairDTO{
			MonthNumber:   p.MonthNumber,
			CurrentMonth:  p.CurrentKey,
			PreviousMonth: p.PreviousKey,
			CurrentLabel:  p.CurrentLabel,
			PreviousLabel: p.PreviousLabel,
			HasCurrent:    p.HasCurrent,
			HasPrevious:   p.HasPrevious,
			Categories:    categories,
			CurrentTotal:  p.CurrentTotal,
			PreviousTotal: p.PreviousTotal,
			Change:        p.Change,
			ChangeDisplay: format.Percentage(p.Change, 1, true),
		})
	}
	return YoYComparisonDTO{Year: c.Year, PreviousYear: c.PreviousYear, Pairs: pairs}
}
