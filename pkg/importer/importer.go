package importer

import "strings"

// DocumentKind classifies a user-supplied document by which collection array
// it carries. Classification is explicit: anything without one of the two
// known arrays is Unrecognized and never reaches the store.
type DocumentKind string

const (
	KindMonthly      DocumentKind = "monthly"
	KindSavings      DocumentKind = "savings"
	KindUnrecognized DocumentKind = "unrecognized"
)

// Classify inspects a raw decoded document and returns its kind. A monthly
// budget document carries an array-valued months field, a savings document
// an array-valued savings_accounts field.
func Classify(doc map[string]any) DocumentKind {
	if _, ok := doc["months"].([]any); ok {
		return KindMonthly
	}
	if _, ok := doc["savings_accounts"].([]any); ok {
		return KindSavings
	}
	return KindUnrecognized
}

// Rejection is the error returned when an import is refused. The store is
// never touched by a rejected import; all reasons are reported together.
type Rejection struct {
	Reasons []string
}

func (r *Rejection) Error() string {
	return strings.Join(r.Reasons, ", ")
}

// Summary describes what an accepted import did.
type Summary struct {
	Kind         DocumentKind `json:"kind"`
	NewMonths    int          `json:"newMonths,omitempty"`
	MergedMonths int          `json:"mergedMonths,omitempty"`
	Accounts     int          `json:"accounts,omitempty"`
}
