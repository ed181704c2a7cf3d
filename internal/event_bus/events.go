package event_bus

const (
	// EventDataLoaded fires after the three bundled documents replace the
	// store state wholesale.
	EventDataLoaded EventType = "budget.data_loaded"
	// EventMonthAdded fires for every merge-or-insert, including merges
	// applied during a bulk import.
	EventMonthAdded EventType = "budget.month_added"
	// EventMonthUpdated fires on a committed cell edit.
	EventMonthUpdated EventType = "budget.month_updated"
	// EventSavingsReplaced fires when a savings import replaces the
	// accounts collection.
	EventSavingsReplaced EventType = "savings.replaced"
)

type MonthChanged struct {
	Month  string
	Merged bool
}

type DataLoaded struct {
	Months     int
	Accounts   int
	Categories int
}

type SavingsReplaced struct {
	Accounts int
}
