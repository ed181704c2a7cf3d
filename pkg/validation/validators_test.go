package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestIsValidMonthKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"2024-01", true},
		{"2024-12", true},
		{"2024-13", false},
		{"2024-00", false},
		{"24-01", false},
		{"2024-1", false},
		{"2024-01-15", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMonthKey(tt.key))
		})
	}
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount(float64(120)))
	assert.True(t, IsValidAmount("120.5"))
	assert.True(t, IsValidAmount(nil))
	assert.True(t, IsValidAmount(""))
	assert.False(t, IsValidAmount(float64(-1)))
	assert.False(t, IsValidAmount("abc"))
	assert.False(t, IsValidAmount([]any{}))
}

func TestValidateMonthlyBudget(t *testing.T) {
	t.Run("should accept a well-formed document", func(t *testing.T) {
		doc := decode(t, `{"months":[{"month":"2024-01","expenses":{"rent":1000},"income":{"salaries":"9000"}}]}`)

		result := ValidateMonthlyBudget(doc)

		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("should require a months array", func(t *testing.T) {
		result := ValidateMonthlyBudget(decode(t, `{"foo":1}`))

		assert.False(t, result.Valid)
		assert.Equal(t, []string{"מערך חודשים חסר או לא תקין"}, result.Errors)
	})

	t.Run("should reject a malformed month key with its position", func(t *testing.T) {
		doc := decode(t, `{"months":[{"month":"2024-01"},{"month":"2024-13"}]}`)

		result := ValidateMonthlyBudget(doc)

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "חודש 2: פורמט תאריך לא תקין")
	})

	t.Run("should reject negative and non-numeric amounts", func(t *testing.T) {
		doc := decode(t, `{"months":[{"month":"2024-01","expenses":{"rent":-5},"income":{"salaries":"oops"}}]}`)

		result := ValidateMonthlyBudget(doc)

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "חודש 2024-01: סכום הוצאה לא תקין עבור rent")
		assert.Contains(t, result.Errors, "חודש 2024-01: סכום הכנסה לא תקין עבור salaries")
	})

	t.Run("should collect every violation", func(t *testing.T) {
		doc := decode(t, `{"months":[{"month":"bad","expenses":{"a":-1,"b":-2}}]}`)

		result := ValidateMonthlyBudget(doc)

		assert.Len(t, result.Errors, 3)
	})
}

func TestValidateSavingsAccounts(t *testing.T) {
	t.Run("should accept a well-formed document", func(t *testing.T) {
		doc := decode(t, `{"savings_accounts":[{"id":"a1","account_name":"קרן","accumulated":5000,"monthly_amount":57}]}`)

		result := ValidateSavingsAccounts(doc)

		assert.True(t, result.Valid)
	})

	t.Run("should require the savings_accounts array", func(t *testing.T) {
		result := ValidateSavingsAccounts(decode(t, `{}`))

		assert.Equal(t, []string{"מערך חסכונות חסר או לא תקין"}, result.Errors)
	})

	t.Run("should require id and name", func(t *testing.T) {
		doc := decode(t, `{"savings_accounts":[{"accumulated":100}]}`)

		result := ValidateSavingsAccounts(doc)

		assert.Contains(t, result.Errors, "חשבון חסר מזהה")
		assert.Contains(t, result.Errors, "חשבון לא ידוע: שם חסר")
	})

	t.Run("should reject a missing accumulated balance but accept an explicit null", func(t *testing.T) {
		missing := decode(t, `{"savings_accounts":[{"id":"a1","account_name":"קרן"}]}`)
		null := decode(t, `{"savings_accounts":[{"id":"a1","account_name":"קרן","accumulated":null}]}`)

		assert.Contains(t, ValidateSavingsAccounts(missing).Errors, "חשבון קרן: סכום צבירה לא תקין")
		assert.True(t, ValidateSavingsAccounts(null).Valid)
	})

	t.Run("should reject a non-numeric monthly amount only when present", func(t *testing.T) {
		doc := decode(t, `{"savings_accounts":[{"id":"a1","account_name":"קרן","accumulated":100,"monthly_amount":"oops"}]}`)

		result := ValidateSavingsAccounts(doc)

		assert.Equal(t, []string{"חשבון קרן: סכום חודשי לא תקין"}, result.Errors)
	})
}

func TestValidateCategory(t *testing.T) {
	t.Run("should accept a well-formed category", func(t *testing.T) {
		result := ValidateCategory(decode(t, `{"id":"rent","name_hebrew":"שכירות","type":"expense"}`))

		assert.True(t, result.Valid)
	})

	t.Run("should collect all missing fields", func(t *testing.T) {
		result := ValidateCategory(decode(t, `{"type":"other"}`))

		assert.Len(t, result.Errors, 3)
		assert.Contains(t, result.Errors, "סוג קטגוריה לא תקין (חייב להיות income או expense)")
	})
}

func TestCheckImportFile(t *testing.T) {
	valid := []byte(`{"months":[]}`)
	maxSize := int64(1024)

	t.Run("should pass a valid file", func(t *testing.T) {
		assert.NoError(t, CheckImportFile("budget.json", int64(len(valid)), maxSize, valid))
	})

	t.Run("should reject a missing filename", func(t *testing.T) {
		assert.EqualError(t, CheckImportFile("", 10, maxSize, valid), "לא נבחר קובץ")
	})

	t.Run("should reject a non-json extension", func(t *testing.T) {
		assert.EqualError(t, CheckImportFile("budget.csv", 10, maxSize, valid), "רק קבצי JSON מותרים")
	})

	t.Run("should reject an oversized file", func(t *testing.T) {
		err := CheckImportFile("budget.json", 6*1024*1024, 5*1024*1024, valid)
		assert.EqualError(t, err, "הקובץ גדול מדי (מקסימום 5MB)")
	})

	t.Run("should reject malformed json", func(t *testing.T) {
		assert.EqualError(t, CheckImportFile("budget.json", 4, maxSize, []byte(`{"mo`)), "קובץ JSON לא תקין")
	})
}
