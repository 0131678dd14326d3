package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"shop-ledger/internal/util"

	"github.com/shopspring/decimal"
)

// Console wraps line-oriented prompt I/O. All screens talk to the terminal
// through it, which also makes the screens scriptable in tests.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// Error prints an operation error as a blocking-dialog style message.
func (c *Console) Error(err error) {
	fmt.Fprintf(c.out, "\n  !! %v\n\n", err)
}

// ReadLine prompts and returns the trimmed input line.
func (c *Console) ReadLine(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// ReadDecimal prompts until a valid currency amount is entered, or returns
// an error on empty input so the caller can cancel.
func (c *Console) ReadDecimal(label string) (decimal.Decimal, error) {
	raw := c.ReadLine(label)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", raw)
	}
	return d, nil
}

// ParseDecimal parses an already-read amount string.
func (c *Console) ParseDecimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", raw)
	}
	return d, nil
}

// ReadInt prompts for an integer.
func (c *Console) ReadInt(label string) (int, error) {
	raw := c.ReadLine(label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return n, nil
}

// ReadDate prompts for YYYY-MM-DD; empty input means today.
func (c *Console) ReadDate(label string) (time.Time, error) {
	raw := c.ReadLine(label + " (YYYY-MM-DD, empty = today)")
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return util.ValidateDate(raw)
}

// Confirm asks a yes/no question; only "y"/"yes" is a yes.
func (c *Console) Confirm(label string) bool {
	answer := strings.ToLower(c.ReadLine(label + " [y/N]"))
	return answer == "y" || answer == "yes"
}
