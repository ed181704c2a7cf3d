package budget

import (
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/takziv/takziv/internal/utils"
	"github.com/takziv/takziv/pkg/money"
	"github.com/takziv/takziv/pkg/savings"
)

type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusReady   LoadStatus = "ready"
	StatusError   LoadStatus = "error"
)

// State is the canonical in-memory representation of the whole dashboard:
// the monthly records, the savings accounts, the category catalog and the
// load status. Values handed out of the store are copies; the only way to
// change state is through a store action.
type State struct {
	MonthlyBudget MonthlyBudget
	Savings       savings.Document
	Categories    Catalog
	Status        LoadStatus
	Err           string
	LastUpdated   time.Time
}

// Store owns a State value and applies actions to it. Every action runs a
// pure transition function on a copy of the current state and swaps the
// result in under the lock, so readers always observe a complete snapshot.
// Validation of externally sourced payloads happens before dispatch; the
// store trusts its callers.
type Store struct {
	mu    sync.RWMutex
	state State
	clock utils.Clock
}

func NewStore(clock utils.Clock) *Store {
	return &Store{
		state: State{Status: StatusLoading},
		clock: clock,
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

// Load replaces all three collections wholesale and marks the store ready.
// The initial load path performs no validation: the bundled documents are
// trusted, unlike user imports.
func (s *Store) Load(monthlyBudget MonthlyBudget, savingsDoc savings.Document, categories Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = loadData(copyState(s.state), monthlyBudget, savingsDoc, categories, s.clock.Now())
}

// UpdateMonth replaces the record whose month key matches rec.Month wholly.
// It reports whether a record was found; when none is, the collection stays
// untouched and no record is created.
func (s *Store) UpdateMonth(rec MonthRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, found := updateMonth(copyState(s.state), rec, s.clock.Now())
	s.state = next
	return found
}

// AddMonth inserts a record under a new month key, keeping the collection
// sorted ascending, or merges it field by field into the existing record:
// incoming expense/income keys overwrite, untouched keys are preserved, and
// notes are replaced only when the incoming value is non-empty. Re-applying
// an overlapping import is therefore safe. The resulting record is returned
// along with whether it was merged.
func (s *Store) AddMonth(rec MonthRecord) (MonthRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, result, merged := addMonth(copyState(s.state), rec, s.clock.Now())
	s.state = next
	return result, merged
}

// UpdateSavings replaces the entire savings collection and metadata. There
// is no merge path for savings.
func (s *Store) UpdateSavings(doc savings.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := copyState(s.state)
	next.Savings = copySavings(doc)
	next.LastUpdated = s.clock.Now()
	s.state = next
}

// SetError marks the store errored with a human-readable message. Existing
// data stays visible so the dashboard can keep rendering stale values.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := copyState(s.state)
	next.Status = StatusError
	next.Err = msg
	s.state = next
}

// SetLoading moves the store into or out of the loading state without
// touching data. Leaving the loading state restores error or ready
// depending on whether an error message is present.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := copyState(s.state)
	if loading {
		next.Status = StatusLoading
	} else if next.Err != "" {
		next.Status = StatusError
	} else {
		next.Status = StatusReady
	}
	s.state = next
}

// ClearError drops the error message without changing the load status.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := copyState(s.state)
	next.Err = ""
	s.state = next
}

func loadData(st State, monthlyBudget MonthlyBudget, savingsDoc savings.Document, categories Catalog, now time.Time) State {
	st.MonthlyBudget = copyMonthlyBudget(monthlyBudget)
	sortMonths(st.MonthlyBudget.Months)
	st.Savings = copySavings(savingsDoc)
	st.Categories = copyCatalog(categories)
	st.Status = StatusReady
	st.Err = ""
	st.LastUpdated = now
	return st
}

func updateMonth(st State, rec MonthRecord, now time.Time) (State, bool) {
	found := false
	for i := range st.MonthlyBudget.Months {
		if st.MonthlyBudget.Months[i].Month == rec.Month {
			st.MonthlyBudget.Months[i] = copyRecord(rec)
			found = true
		}
	}
	st.MonthlyBudget.Metadata = stampMetadata(st.MonthlyBudget.Metadata, now)
	st.LastUpdated = now
	return st, found
}

func addMonth(st State, rec MonthRecord, now time.Time) (State, MonthRecord, bool) {
	merged := false
	existing := st.MonthlyBudget.Find(rec.Month)
	if existing != nil {
		merged = true
		if existing.Expenses == nil && len(rec.Expenses) > 0 {
			existing.Expenses = make(map[string]money.Amount, len(rec.Expenses))
		}
		maps.Copy(existing.Expenses, rec.Expenses)
		if existing.Income == nil && len(rec.Income) > 0 {
			existing.Income = make(map[string]money.Amount, len(rec.Income))
		}
		maps.Copy(existing.Income, rec.Income)
		if rec.Notes != "" {
			existing.Notes = rec.Notes
		}
		existing.UpdatedAt = now
	} else {
		st.MonthlyBudget.Months = append(st.MonthlyBudget.Months, copyRecord(rec))
		sortMonths(st.MonthlyBudget.Months)
		existing = st.MonthlyBudget.Find(rec.Month)
	}
	st.MonthlyBudget.Metadata = stampMetadata(st.MonthlyBudget.Metadata, now)
	st.LastUpdated = now
	return st, copyRecord(*existing), merged
}

func sortMonths(months []MonthRecord) {
	// Lexicographic order on YYYY-MM keys is chronological order.
	sort.SliceStable(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
}

func stampMetadata(metadata map[string]any, now time.Time) map[string]any {
	if metadata == nil {
		metadata = make(map[string]any, 1)
	}
	metadata["last_updated"] = now.Format(time.RFC3339)
	return metadata
}

func copyState(st State) State {
	st.MonthlyBudget = copyMonthlyBudget(st.MonthlyBudget)
	st.Savings = copySavings(st.Savings)
	st.Categories = copyCatalog(st.Categories)
	return st
}

func copyMonthlyBudget(b MonthlyBudget) MonthlyBudget {
	months := make([]MonthRecord, len(b.Months))
	for i, m := range b.Months {
		months[i] = copyRecord(m)
	}
	b.Months = months
	b.Metadata = maps.Clone(b.Metadata)
	return b
}

func copyRecord(m MonthRecord) MonthRecord {
	m.Expenses = maps.Clone(m.Expenses)
	m.Income = maps.Clone(m.Income)
	return m
}

func copySavings(d savings.Document) savings.Document {
	accounts := make([]savings.Account, len(d.SavingsAccounts))
	copy(accounts, d.SavingsAccounts)
	d.SavingsAccounts = accounts
	d.Metadata = maps.Clone(d.Metadata)
	return d
}

func copyCatalog(c Catalog) Catalog {
	categories := make([]Category, len(c.Categories))
	copy(categories, c.Categories)
	c.Categories = categories
	return c
}
