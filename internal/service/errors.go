package service

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the UI as plain messages. Anything else
// coming out of a service is a wrapped persistence error.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateName  = errors.New("name already exists")
	ErrPartyHasSlips  = errors.New("party has purchase slips and cannot be deleted")
	ErrEmployeeInUse  = errors.New("employee has outstanding borrow or salary history")
	ErrSlipCleared    = errors.New("slip already cleared")
	ErrExceedsBalance = errors.New("payment exceeds remaining balance")
	ErrAlreadyPaid    = errors.New("salary already paid for this month")
	ErrPinMismatch    = errors.New("incorrect PIN")
)

// ValidationError marks input errors caught before any persistence call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError with fmt-style formatting.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
