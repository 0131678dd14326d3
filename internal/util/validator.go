package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ValidateAmount checks a currency amount (must be positive, below cap).
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(decimal.NewFromInt(10000000)) { // 10M cap
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidateDate checks date format (must be YYYY-MM-DD).
func ValidateDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return t, nil
}

// ValidateName checks a required name field (non-empty, sensible length).
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	if len(name) > 128 {
		return fmt.Errorf("name too long, max 128 characters")
	}
	return nil
}

// ValidatePin checks a login PIN: digits only, length within bounds.
func ValidatePin(pin string, minLen, maxLen int) error {
	if len(pin) < minLen || len(pin) > maxLen {
		return fmt.Errorf("pin must be %d-%d digits", minLen, maxLen)
	}
	for _, ch := range pin {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("pin must contain digits only")
		}
	}
	return nil
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
