package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   float64
		wantOk bool
	}{
		{"float", 12.5, 12.5, true},
		{"int", 7, 7, true},
		{"nil counts as zero", nil, 0, true},
		{"numeric string", "1200", 1200, true},
		{"numeric string with spaces", " 42 ", 42, true},
		{"empty string counts as zero", "", 0, true},
		{"true counts as one", true, 1, true},
		{"false counts as zero", false, 0, true},
		{"non-numeric string", "abc", 0, false},
		{"slice", []any{1}, 0, false},
		{"map", map[string]any{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToNumber(tt.value)
			assert.Equal(t, tt.wantOk, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var doc map[string]Amount
	require.NoError(t, json.Unmarshal([]byte(`{
		"number": 1200.5,
		"string": "850",
		"null": null,
		"bool": true,
		"garbage": "oops"
	}`), &doc))

	assert.EqualValues(t, 1200.5, doc["number"])
	assert.EqualValues(t, 850, doc["string"])
	assert.EqualValues(t, 0, doc["null"])
	assert.EqualValues(t, 1, doc["bool"])
	assert.EqualValues(t, 0, doc["garbage"])
}
