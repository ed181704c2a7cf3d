package app

import (
	log "github.com/sirupsen/logrus"
	"github.com/takziv/takziv/internal/config"
	"github.com/takziv/takziv/internal/event_bus"
	"github.com/takziv/takziv/internal/utils"
	"github.com/takziv/takziv/pkg/budget"
	"github.com/takziv/takziv/pkg/importer"
	"github.com/takziv/takziv/pkg/loader"
	"github.com/takziv/takziv/pkg/savings"
	"github.com/takziv/takziv/pkg/stats"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus

	Store         *budget.Store
	BudgetHandler *budget.BudgetHandler

	SavingsHandler *savings.SavingsHandler

	StatsService      *stats.StatsServiceImpl
	CsvReportRenderer *stats.CsvReportRendererImpl
	StatsHandler      *stats.StatsHandler

	ImportService *importer.ImportServiceImpl
	ImportHandler *importer.ImportHandler

	Loader        *loader.Loader
	LoaderHandler *loader.LoaderHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.EventBus = event_bus.NewEventBus()
	subscribeEventLogging(deps.EventBus)

	deps.Store = budget.NewStore(deps.Clock)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.Store, deps.EventBus)

	deps.SavingsHandler = savings.NewSavingsHandler(func() savings.Document {
		return deps.Store.Snapshot().Savings
	})

	deps.StatsService = stats.NewStatsServiceImpl(deps.Store)
	deps.CsvReportRenderer = stats.NewCsvReportRenderer()
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.CsvReportRenderer)

	deps.ImportService = importer.NewImportServiceImpl(deps.Store, deps.EventBus, cfg.Import.MaxFileSize)
	deps.ImportHandler = importer.NewImportHandler(deps.ImportService, cfg.Import.MaxFileSize)

	deps.Loader = loader.NewLoader(cfg.Data.Dir, deps.Store, deps.EventBus)
	deps.LoaderHandler = loader.NewLoaderHandler(deps.Loader, deps.Store)

	return deps
}

func subscribeEventLogging(bus *event_bus.EventBus) {
	logEvent := func(e event_bus.Event) error {
		log.Debugf("event %s: %+v", e.Type, e.Data)
		return nil
	}
	bus.Subscribe(event_bus.EventDataLoaded, logEvent)
	bus.Subscribe(event_bus.EventMonthAdded, logEvent)
	bus.Subscribe(event_bus.EventMonthUpdated, logEvent)
	bus.Subscribe(event_bus.EventSavingsReplaced, logEvent)
}
