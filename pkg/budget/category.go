package budget

import "sort"

type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Category is a named income or expense bucket referenced by id from the
// month record maps. Inactive categories disappear from table columns but
// their historical amounts still count towards totals.
type Category struct {
	ID          string       `json:"id"`
	Type        CategoryType `json:"type"`
	NameHebrew  string       `json:"name_hebrew"`
	NameEnglish string       `json:"name_english,omitempty"`
	IsActive    bool         `json:"is_active"`
	IsFixed     bool         `json:"is_fixed,omitempty"`
	SortOrder   int          `json:"sort_order,omitempty"`
}

// Catalog is the categories.json wire shape.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// Active returns the active categories of one type, in display order.
func (c Catalog) Active(t CategoryType) []Category {
	active := make([]Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Type == t && cat.IsActive {
			active = append(active, cat)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].SortOrder < active[j].SortOrder
	})
	return active
}
