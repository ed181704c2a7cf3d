// Package validation checks imported documents against the expected schema
// before they reach the store. Validators work on the raw decoded JSON so
// that malformed values are still visible; the lenient decoding of the typed
// model would otherwise have coerced them to zero already. Validators never
// mutate and collect every violation instead of failing fast, so the user
// sees all problems at once.
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/takziv/takziv/pkg/money"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Result aggregates validation violations for one document.
type Result struct {
	Valid  bool
	Errors []string
}

func resultOf(errors []string) Result {
	return Result{Valid: len(errors) == 0, Errors: errors}
}

// IsValidMonthKey reports whether key is exactly YYYY-MM with a month
// between 01 and 12.
func IsValidMonthKey(key string) bool {
	return monthKeyPattern.MatchString(key)
}

// IsValidAmount reports whether a raw JSON value has a non-negative numeric
// reading.
func IsValidAmount(v any) bool {
	n, ok := money.ToNumber(v)
	return ok && n >= 0
}

// ValidateMonthlyBudget checks a raw monthly budget document: a months array
// is required, every record needs a well-formed month key and every expense
// and income value must be a valid amount.
func ValidateMonthlyBudget(doc map[string]any) Result {
	if doc == nil {
		return resultOf([]string{"נתונים חסרים"})
	}

	months, ok := doc["months"].([]any)
	if !ok {
		return resultOf([]string{"מערך חודשים חסר או לא תקין"})
	}

	var errors []string
	for index, raw := range months {
		record, _ := raw.(map[string]any)
		monthKey, _ := record["month"].(string)
		if !IsValidMonthKey(monthKey) {
			errors = append(errors, fmt.Sprintf("חודש %d: פורמט תאריך לא תקין", index+1))
		}
		errors = append(errors, validateAmountMap(record["expenses"], fmt.Sprintf("חודש %s: סכום הוצאה לא תקין עבור %%s", monthKey))...)
		errors = append(errors, validateAmountMap(record["income"], fmt.Sprintf("חודש %s: סכום הכנסה לא תקין עבור %%s", monthKey))...)
	}
	return resultOf(errors)
}

func validateAmountMap(raw any, messageFormat string) []string {
	values, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errors []string
	for _, key := range keys {
		if !IsValidAmount(values[key]) {
			errors = append(errors, fmt.Sprintf(messageFormat, key))
		}
	}
	return errors
}

// ValidateSavingsAccounts checks a raw savings document: a savings_accounts
// array is required, every account needs an id, a name, a valid accumulated
// balance and, when present, a valid monthly amount.
func ValidateSavingsAccounts(doc map[string]any) Result {
	if doc == nil {
		return resultOf([]string{"נתונים חסרים"})
	}

	accounts, ok := doc["savings_accounts"].([]any)
	if !ok {
		return resultOf([]string{"מערך חסכונות חסר או לא תקין"})
	}

	var errors []string
	for _, raw := range accounts {
		account, _ := raw.(map[string]any)
		id, _ := account["id"].(string)
		name, _ := account["account_name"].(string)

		if id == "" {
			errors = append(errors, "חשבון חסר מזהה")
		}
		if name == "" {
			label := id
			if label == "" {
				label = "לא ידוע"
			}
			errors = append(errors, fmt.Sprintf("חשבון %s: שם חסר", label))
		}

		label := name
		if label == "" {
			label = id
		}
		accumulated, present := account["accumulated"]
		if !present || !IsValidAmount(accumulated) {
			errors = append(errors, fmt.Sprintf("חשבון %s: סכום צבירה לא תקין", label))
		}
		if monthly, present := account["monthly_amount"]; present && !IsValidAmount(monthly) {
			errors = append(errors, fmt.Sprintf("חשבון %s: סכום חודשי לא תקין", label))
		}
	}
	return resultOf(errors)
}

// ValidateCategory checks a single raw category entry.
func ValidateCategory(category map[string]any) Result {
	var errors []string

	if id, _ := category["id"].(string); id == "" {
		errors = append(errors, "מזהה קטגוריה חסר")
	}
	if name, _ := category["name_hebrew"].(string); name == "" {
		errors = append(errors, "שם קטגוריה בעברית חסר")
	}
	categoryType, _ := category["type"].(string)
	if categoryType != "income" && categoryType != "expense" {
		errors = append(errors, "סוג קטגוריה לא תקין (חייב להיות income או expense)")
	}
	return resultOf(errors)
}

// CheckImportFile runs the pre-checks every uploaded file must pass before
// its content is even classified: a filename, a .json extension, the size
// ceiling and well-formed JSON. Each failure is reported on its own.
func CheckImportFile(filename string, size int64, maxSize int64, content []byte) error {
	if filename == "" {
		return fmt.Errorf("לא נבחר קובץ")
	}
	if !strings.HasSuffix(filename, ".json") {
		return fmt.Errorf("רק קבצי JSON מותרים")
	}
	if size > maxSize {
		return fmt.Errorf("הקובץ גדול מדי (מקסימום %dMB)", maxSize/(1024*1024))
	}
	if !json.Valid(content) {
		return fmt.Errorf("קובץ JSON לא תקין")
	}
	return nil
}
