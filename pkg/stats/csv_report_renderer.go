package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/takziv/takziv/pkg/budget"
	"github.com/takziv/takziv/pkg/dates"
)

type ReportRenderer interface {
	RenderYear(year int, months []budget.MonthRecord, categories []budget.Category) (string, error)
}

// CsvReportRendererImpl renders one year's monthly table as CSV: a row per
// month with the active expense category columns, the expense and income
// totals and the surplus, followed by a totals row.
type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

func (r *CsvReportRendererImpl) RenderYear(year int, months []budget.MonthRecord, categories []budget.Category) (string, error) {
	header := make([]string, 0, len(categories)+4)
	header = append(header, "חודש")
	for _, cat := range categories {
		header = append(header, cat.NameHebrew)
	}
	header = append(header, "סה\"כ הוצאות", "סה\"כ הכנסות", "עודף")

	data := make([][]string, 0, len(months)+2)
	data = append(data, header)

	var totalExpenses, totalIncome float64
	for i := range months {
		m := &months[i]
		row := make([]string, 0, len(header))
		row = append(row, dates.FormatMonthHebrew(m.Month))
		for _, cat := range categories {
			row = append(row, amountToString(float64(m.Expenses[cat.ID])))
		}
		monthExpenses := TotalExpenses(m.Expenses)
		monthIncome := TotalIncome(m.Income)
		row = append(row,
			amountToString(monthExpenses),
			amountToString(monthIncome),
			amountToString(monthIncome-monthExpenses),
		)
		data = append(data, row)

		totalExpenses += monthExpenses
		totalIncome += monthIncome
	}

	totals := make([]string, 0, len(header))
	totals = append(totals, "סה\"כ "+strconv.Itoa(year))
	for _, cat := range categories {
		sum := 0.0
		for i := range months {
			sum += float64(months[i].Expenses[cat.ID])
		}
		totals = append(totals, amountToString(sum))
	}
	totals = append(totals,
		amountToString(totalExpenses),
		amountToString(totalIncome),
		amountToString(totalIncome-totalExpenses),
	)
	data = append(data, totals)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func amountToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
