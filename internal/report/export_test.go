package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shop-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSlips() []models.PurchaseSlip {
	d := func(s string) decimal.Decimal {
		v, _ := decimal.NewFromString(s)
		return v
	}
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	return []models.PurchaseSlip{
		{
			SlipDate: date, ItemName: "Cement",
			Amount: d("1200"), PaidAmount: d("400"),
			Party: models.Party{Name: "Sharma Traders"},
		},
		{
			SlipDate: date.AddDate(0, 0, 5), ItemName: "Bricks",
			Amount: d("800"), PaidAmount: d("800"), IsPaid: true,
			Party: models.Party{Name: "Beta Supply"},
		},
		{
			SlipDate: date.AddDate(0, 0, 9), ItemName: "Sand",
			Amount: d("99.50"), PaidAmount: decimal.Zero,
			Party: models.Party{Name: "Sharma Traders"},
		},
	}
}

func TestMonthlyReport(t *testing.T) {
	r := Monthly(2025, time.November, sampleSlips())

	assert.Equal(t, "Report_2025_11", r.FileStem)
	require.Len(t, r.Rows, 3)
	assert.Equal(t,
		[]string{"Date", "Party Name", "Item Name", "Amount", "Status", "Paid Amount"},
		r.Headers)
	assert.Equal(t,
		[]string{"2025-11-03", "Sharma Traders", "Cement", "1200.00", "PARTIAL", "400.00"},
		r.Rows[0])
	assert.Equal(t, "CLEARED", r.Rows[1][4])
	assert.Equal(t, "PENDING", r.Rows[2][4])
	assert.True(t, r.Total.Equal(decimal.RequireFromString("2099.50")), "total = %s", r.Total)
}

func TestExportCSV(t *testing.T) {
	e := NewExporter(t.TempDir())
	r := Monthly(2025, time.November, sampleSlips())

	path, err := e.ExportCSV(r)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	require.Len(t, lines, 4) // header + 3 rows
	assert.Equal(t, "Date,Party Name,Item Name,Amount,Status,Paid Amount", lines[0])
	assert.Equal(t, "2025-11-03,Sharma Traders,Cement,1200.00,PARTIAL,400.00", lines[1])
}

func TestExportText(t *testing.T) {
	e := NewExporter(t.TempDir())
	r := PartyWise("Sharma Traders", sampleSlips())

	path, err := e.ExportText(r)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	assert.Equal(t, "--- PARTY REPORT: Sharma Traders ---", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "---"), "second line should be a rule")
	assert.Contains(t, lines[2], "Date")
	assert.Contains(t, lines[2], "Status")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "TOTAL: "))
	assert.Contains(t, lines[len(lines)-1], "2099.50")
}

func TestExportXLSX(t *testing.T) {
	e := NewExporter(t.TempDir())
	r := Monthly(2025, time.November, sampleSlips())

	path, err := e.ExportXLSX(r)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".xlsx"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportIdempotent(t *testing.T) {
	e := NewExporter(t.TempDir())
	r := Monthly(2025, time.November, sampleSlips())

	p1, err := e.ExportCSV(r)
	require.NoError(t, err)
	p2, err := e.ExportCSV(r)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2, "repeated exports must not collide")

	c1, err := os.ReadFile(p1)
	require.NoError(t, err)
	c2, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, c1, c2, "same data must produce identical content")
}

func TestRecent(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir)
	r := Monthly(2025, time.November, sampleSlips())

	// unrelated files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	for i := 0; i < 3; i++ {
		_, err := e.ExportCSV(r)
		require.NoError(t, err)
	}

	files, err := e.Recent(2)
	require.NoError(t, err)
	assert.Len(t, files, 2)
	for _, f := range files {
		assert.True(t, strings.HasPrefix(f, "Report_"), "unexpected file %q", f)
	}
}

func TestSalaryHistoryReport(t *testing.T) {
	d := decimal.RequireFromString
	records := []models.SalaryRecord{
		{
			PaymentYear: 2025, PaymentMonth: 11,
			SalaryAmount: d("3000"), PresentDays: 30, AbsentDays: 0,
			BorrowRepayment: d("500"), FinalSalary: d("2500"),
		},
	}

	r := SalaryHistory("Asha Rai", records)
	assert.Equal(t, "Report_Salary_Asha_Rai", r.FileStem)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, []string{"2025-11", "3000.00", "30", "0", "500.00", "2500.00"}, r.Rows[0])
	assert.True(t, r.Total.Equal(d("2500")))
}
