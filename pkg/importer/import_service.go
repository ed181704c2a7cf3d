package importer

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
	"github.com/takziv/takziv/internal/event_bus"
	"github.com/takziv/takziv/pkg/budget"
	"github.com/takziv/takziv/pkg/dates"
	"github.com/takziv/takziv/pkg/savings"
	"github.com/takziv/takziv/pkg/validation"
)

const unrecognizedFormatMsg = "פורמט קובץ לא מזוהה. נדרש קובץ עם מערך months או savings_accounts"

type ImportService interface {
	Import(filename string, content []byte) (Summary, error)
}

type ImportServiceImpl struct {
	store       *budget.Store
	bus         *event_bus.EventBus
	maxFileSize int64
}

func NewImportServiceImpl(store *budget.Store, bus *event_bus.EventBus, maxFileSize int64) *ImportServiceImpl {
	return &ImportServiceImpl{store: store, bus: bus, maxFileSize: maxFileSize}
}

// Import runs the full import pipeline on an uploaded file: pre-check,
// classification, schema validation, then application. Monthly documents are
// applied one record at a time through the merge-or-insert action so an
// overlapping re-import never destroys unrelated categories; savings
// documents replace the whole collection. Any failure returns a *Rejection
// and leaves the store untouched.
func (s *ImportServiceImpl) Import(filename string, content []byte) (Summary, error) {
	if err := validation.CheckImportFile(filename, int64(len(content)), s.maxFileSize, content); err != nil {
		return Summary{}, &Rejection{Reasons: []string{err.Error()}}
	}

	var raw map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		// Valid JSON but not an object, e.g. a top-level array.
		return Summary{}, &Rejection{Reasons: []string{unrecognizedFormatMsg}}
	}

	switch Classify(raw) {
	case KindMonthly:
		return s.importMonthly(content, raw)
	case KindSavings:
		return s.importSavings(content, raw)
	default:
		return Summary{}, &Rejection{Reasons: []string{unrecognizedFormatMsg}}
	}
}

func (s *ImportServiceImpl) importMonthly(content []byte, raw map[string]any) (Summary, error) {
	if result := validation.ValidateMonthlyBudget(raw); !result.Valid {
		return Summary{}, &Rejection{Reasons: result.Errors}
	}

	var doc budget.MonthlyBudget
	if err := json.Unmarshal(content, &doc); err != nil {
		return Summary{}, &Rejection{Reasons: []string{unrecognizedFormatMsg}}
	}

	summary := Summary{Kind: KindMonthly}
	for _, rec := range doc.Months {
		if rec.MonthLabel == "" {
			rec.MonthLabel = dates.FormatMonthHebrewFull(rec.Month)
		}
		if rec.Year == 0 {
			rec.Year = dates.YearOf(rec.Month)
		}
		_, merged := s.store.AddMonth(rec)
		if merged {
			summary.MergedMonths++
		} else {
			summary.NewMonths++
		}
		s.publish(event_bus.EventMonthAdded, event_bus.MonthChanged{Month: rec.Month, Merged: merged})
	}
	log.Infof("imported monthly budget document: %d new, %d merged", summary.NewMonths, summary.MergedMonths)
	return summary, nil
}

func (s *ImportServiceImpl) importSavings(content []byte, raw map[string]any) (Summary, error) {
	if result := validation.ValidateSavingsAccounts(raw); !result.Valid {
		return Summary{}, &Rejection{Reasons: result.Errors}
	}

	var doc savings.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return Summary{}, &Rejection{Reasons: []string{unrecognizedFormatMsg}}
	}

	s.store.UpdateSavings(doc)
	s.publish(event_bus.EventSavingsReplaced, event_bus.SavingsReplaced{Accounts: len(doc.SavingsAccounts)})
	log.Infof("imported savings document: %d accounts", len(doc.SavingsAccounts))
	return Summary{Kind: KindSavings, Accounts: len(doc.SavingsAccounts)}, nil
}

func (s *ImportServiceImpl) publish(eventType event_bus.EventType, data any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(eventType, data)); err != nil {
		log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
