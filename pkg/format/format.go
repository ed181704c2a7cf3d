// Package format renders amounts, percentages and dates the way the Hebrew
// dashboard displays them. Pure functions, no state.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/takziv/takziv/pkg/dates"
)

var printer = message.NewPrinter(language.Hebrew)

// Currency formats a shekel amount with he-IL digit grouping and no
// fraction digits.
func Currency(amount float64) string {
	return printer.Sprintf("₪%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// CurrencySigned is Currency with a leading plus on positive amounts.
func CurrencySigned(amount float64) string {
	if amount > 0 {
		return "+" + Currency(amount)
	}
	return Currency(amount)
}

// Number formats a plain number with he-IL digit grouping.
func Number(v float64) string {
	if math.IsNaN(v) {
		return "0"
	}
	return printer.Sprintf("%v", number.Decimal(v))
}

// Percentage renders a percentage value with the given number of decimals,
// prefixing positive values with a plus when showSign is set.
func Percentage(v float64, decimals int, showSign bool) string {
	if math.IsNaN(v) {
		return "0%"
	}
	sign := ""
	if showSign && v > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.*f%%", sign, decimals, v)
}

// CompactNumber abbreviates large values, e.g. 1500 -> "1.5K".
func CompactNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", v/1_000_000)) + "M"
	case abs >= 1_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", v/1_000)) + "K"
	default:
		return Number(v)
	}
}

func trimTrailingZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// Date renders a short Hebrew date, e.g. "15 ינו 2024".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	month := dates.HebrewMonthShort(fmt.Sprintf("%02d", int(t.Month())))
	return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
}

// RelativeTime renders how long ago t was relative to now, in Hebrew, up to
// a week; older timestamps fall back to Date.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return "עכשיו"
	case mins < 60:
		return fmt.Sprintf("לפני %d דקות", mins)
	case hours < 24:
		return fmt.Sprintf("לפני %d שעות", hours)
	case days < 7:
		return fmt.Sprintf("לפני %d ימים", days)
	default:
		return Date(t)
	}
}
