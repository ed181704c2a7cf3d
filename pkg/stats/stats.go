package stats

// CardStat is one dashboard summary card: the current value and its
// month-over-month percentage change.
type CardStat struct {
	Value  float64
	Change float64
}

// Summary backs the dashboard summary cards: the latest month against the
// one before it, plus the savings position.
type Summary struct {
	Month          string
	MonthLabel     string
	Income         CardStat
	Expenses       CardStat
	Surplus        CardStat
	SavingsRate    float64
	TotalSavings   float64
	MonthlySavings float64
}

// YoYCategoryDelta compares one expense category across the paired months.
type YoYCategoryDelta struct {
	CategoryID string
	NameHebrew string
	Current    float64
	Previous   float64
	Change     float64
}

// YoYPair pairs the same month number across two adjacent years. Either side
// may be missing from the collection.
type YoYPair struct {
	MonthNumber   string
	CurrentKey    string
	PreviousKey   string
	CurrentLabel  string
	PreviousLabel string
	HasCurrent    bool
	HasPrevious   bool
	Categories    []YoYCategoryDelta
	CurrentTotal  float64
	PreviousTotal float64
	Change        float64
}

// YoYComparison is the year-over-year expense breakdown for a selected year
// against the one before it.
type YoYComparison struct {
	Year         int
	PreviousYear int
	Pairs        []YoYPair
}
