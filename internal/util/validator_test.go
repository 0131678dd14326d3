package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateAmount_Positive(t *testing.T) {
	testCases := []string{"0.01", "1", "100.5", "9999999.99"}

	for _, raw := range testCases {
		amount, _ := decimal.NewFromString(raw)
		err := ValidateAmount(amount)
		if err != nil {
			t.Errorf("ValidateAmount(%s) error = %v, want nil", raw, err)
		}
	}
}

func TestValidateAmount_ZeroAndNegative(t *testing.T) {
	testCases := []string{"0", "-0.01", "-100"}

	for _, raw := range testCases {
		amount, _ := decimal.NewFromString(raw)
		err := ValidateAmount(amount)
		if err == nil {
			t.Errorf("ValidateAmount(%s) error = nil, want error", raw)
		}
	}
}

func TestValidateAmount_TooLarge(t *testing.T) {
	err := ValidateAmount(decimal.NewFromInt(100000000))

	if err == nil {
		t.Error("ValidateAmount(100000000) error = nil, want error")
	}
}

func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		_, err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		_, err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidatePin(t *testing.T) {
	valid := []string{"1234", "987654", "00000000"}
	for _, pin := range valid {
		if err := ValidatePin(pin, 4, 8); err != nil {
			t.Errorf("ValidatePin(%q) error = %v, want nil", pin, err)
		}
	}

	invalid := []string{"", "123", "123456789", "12a4", "one2"}
	for _, pin := range invalid {
		if err := ValidatePin(pin, 4, 8); err == nil {
			t.Errorf("ValidatePin(%q) error = nil, want error", pin)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tc := range testCases {
		got := DaysInMonth(tc.year, tc.month)
		if got != tc.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}
