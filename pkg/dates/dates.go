// Package dates handles the YYYY-MM month keys used across the budget model
// and their Hebrew display labels.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const keyLayout = "2006-01"

var hebrewMonthsShort = map[string]string{
	"01": "ינו",
	"02": "פבר",
	"03": "מרץ",
	"04": "אפר",
	"05": "מאי",
	"06": "יונ",
	"07": "יול",
	"08": "אוג",
	"09": "ספט",
	"10": "אוק",
	"11": "נוב",
	"12": "דצמ",
}

var hebrewMonthsFull = map[string]string{
	"01": "ינואר",
	"02": "פברואר",
	"03": "מרץ",
	"04": "אפריל",
	"05": "מאי",
	"06": "יוני",
	"07": "יולי",
	"08": "אוגוסט",
	"09": "ספטמבר",
	"10": "אוקטובר",
	"11": "נובמבר",
	"12": "דצמבר",
}

// MonthKey formats a point in time as its canonical YYYY-MM key.
func MonthKey(t time.Time) string {
	return t.Format(keyLayout)
}

// Parse returns the first day of the month a key refers to.
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(keyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// YearOf extracts the year prefix of a month key, 0 when the key is malformed.
func YearOf(key string) int {
	year, _, ok := splitKey(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return n
}

// MonthNumberOf extracts the zero-padded month part of a key ("01".."12").
func MonthNumberOf(key string) string {
	_, month, ok := splitKey(key)
	if !ok {
		return ""
	}
	return month
}

// PreviousMonth returns the key of the month before the given one.
func PreviousMonth(key string) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", err
	}
	return MonthKey(t.AddDate(0, -1, 0)), nil
}

// NextMonth returns the key of the month after the given one.
func NextMonth(key string) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", err
	}
	return MonthKey(t.AddDate(0, 1, 0)), nil
}

// FormatMonthHebrew renders a key as the short Hebrew label used in table
// headers, e.g. "ינו-24". Unknown month parts pass through unchanged.
func FormatMonthHebrew(key string) string {
	year, month, ok := splitKey(key)
	if !ok {
		return ""
	}
	shortYear := year
	if len(year) >= 2 {
		shortYear = year[len(year)-2:]
	}
	label := hebrewMonthsShort[month]
	if label == "" {
		label = month
	}
	return label + "-" + shortYear
}

// FormatMonthHebrewFull renders a key as the full Hebrew label, e.g.
// "ינואר 2024".
func FormatMonthHebrewFull(key string) string {
	year, month, ok := splitKey(key)
	if !ok {
		return ""
	}
	label := hebrewMonthsFull[month]
	if label == "" {
		label = month
	}
	return label + " " + year
}

// HebrewMonthShort returns the short Hebrew name for a zero-padded month
// number, or the number itself when unknown.
func HebrewMonthShort(num string) string {
	if label, ok := hebrewMonthsShort[num]; ok {
		return label
	}
	return num
}

// HebrewMonthFull returns the full Hebrew name for a zero-padded month
// number, or the number itself when unknown.
func HebrewMonthFull(num string) string {
	if label, ok := hebrewMonthsFull[num]; ok {
		return label
	}
	return num
}

func splitKey(key string) (year, month string, ok bool) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
