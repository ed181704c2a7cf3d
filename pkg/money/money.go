// Package money holds the Amount type shared by budget records and savings
// accounts, together with the lenient numeric coercion applied to every
// imported value. Amounts are plain float64 shekel values; there is no
// cent-precision arithmetic anywhere in the data model.
package money

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a monetary value in a budget or savings document. Decoding is
// lenient: numbers pass through, numeric strings parse, booleans count as
// 0/1, null and anything else counts as zero. Partially filled or hand-edited
// documents must never fail to decode.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n, ok := ToNumber(v)
	if !ok {
		n = 0
	}
	*a = Amount(n)
	return nil
}

// ToNumber is the single coercion point for raw JSON values. It reports
// ok=false when the value has no numeric reading at all (the case validators
// flag); callers that only aggregate treat that as zero.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
