package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "₪500", Currency(500))
	assert.Equal(t, "₪12,345", Currency(12345))
	assert.Equal(t, "₪0", Currency(0))
}

func TestCurrencySigned(t *testing.T) {
	assert.Equal(t, "+₪500", CurrencySigned(500))
	assert.Equal(t, "₪0", CurrencySigned(0))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "12.5%", Percentage(12.5, 1, false))
	assert.Equal(t, "+12.5%", Percentage(12.5, 1, true))
	assert.Equal(t, "-3.2%", Percentage(-3.21, 1, true))
	assert.Equal(t, "13%", Percentage(12.5, 0, false))
	assert.Equal(t, "0%", Percentage(0, 0, true))
}

func TestCompactNumber(t *testing.T) {
	assert.Equal(t, "1.5K", CompactNumber(1500))
	assert.Equal(t, "1K", CompactNumber(1000))
	assert.Equal(t, "2.3M", CompactNumber(2_300_000))
	assert.Equal(t, "950", CompactNumber(950))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "15 ינו 2024", Date(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	assert.Empty(t, Date(time.Time{}))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "עכשיו", RelativeTime(now.Add(-30*time.Second), now))
	assert.Equal(t, "לפני 5 דקות", RelativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "לפני 3 שעות", RelativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "לפני 2 ימים", RelativeTime(now.Add(-48*time.Hour), now))
	assert.Equal(t, "23 מרץ 2024", RelativeTime(now.Add(-10*24*time.Hour), now))
	assert.Empty(t, RelativeTime(time.Time{}, now))
}
