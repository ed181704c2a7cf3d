// Package loader reads the three bundled JSON documents and feeds them into
// the store as one atomic load. The three reads run concurrently and are
// joined all-or-nothing: if any document fails to load, the whole load fails
// with a single error and any previously loaded data stays visible.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/takziv/takziv/internal/event_bus"
	"github.com/takziv/takziv/pkg/budget"
	"github.com/takziv/takziv/pkg/savings"
)

const (
	monthlyBudgetFile   = "monthly_budget.json"
	savingsAccountsFile = "savings_accounts.json"
	categoriesFile      = "categories.json"
)

type Loader struct {
	dataDir string
	store   *budget.Store
	bus     *event_bus.EventBus
}

func NewLoader(dataDir string, store *budget.Store, bus *event_bus.EventBus) *Loader {
	return &Loader{dataDir: dataDir, store: store, bus: bus}
}

// LoadAll moves the store into loading, reads and decodes the three
// documents concurrently and dispatches a single Load on success or a
// single SetError on any failure. The load path performs no schema
// validation; bundled documents are trusted, unlike imports.
func (l *Loader) LoadAll(ctx context.Context) error {
	l.store.SetLoading(true)

	var (
		monthlyBudget budget.MonthlyBudget
		savingsDoc    savings.Document
		categories    budget.Catalog
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.readDocument(ctx, monthlyBudgetFile, &monthlyBudget)
	})
	g.Go(func() error {
		return l.readDocument(ctx, savingsAccountsFile, &savingsDoc)
	})
	g.Go(func() error {
		return l.readDocument(ctx, categoriesFile, &categories)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("failed to load budget data: %v", err)
		l.store.SetError(err.Error())
		return err
	}

	l.store.Load(monthlyBudget, savingsDoc, categories)
	log.Infof("loaded budget data: %d months, %d savings accounts, %d categories",
		len(monthlyBudget.Months), len(savingsDoc.SavingsAccounts), len(categories.Categories))

	if l.bus != nil {
		event := event_bus.NewEvent(event_bus.EventDataLoaded, event_bus.DataLoaded{
			Months:     len(monthlyBudget.Months),
			Accounts:   len(savingsDoc.SavingsAccounts),
			Categories: len(categories.Categories),
		})
		if err := l.bus.Publish(event); err != nil {
			log.Warnf("failed to publish data loaded event: %v", err)
		}
	}
	return nil
}

func (l *Loader) readDocument(ctx context.Context, name string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(filepath.Join(l.dataDir, name))
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
