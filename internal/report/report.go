package report

import (
	"fmt"
	"time"

	"shop-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Report is a fully built, format-independent report: a title, a header
// row, string cells and a grand total. Exporters only render it.
type Report struct {
	Title    string
	FileStem string // e.g. "Report_2025_11"; timestamp and extension are appended
	Headers  []string
	Rows     [][]string
	Total    decimal.Decimal
}

// Monthly builds the report over all slips of one calendar month.
func Monthly(year int, month time.Month, slips []models.PurchaseSlip) *Report {
	r := &Report{
		Title:    fmt.Sprintf("MONTHLY REPORT: %s %d", month, year),
		FileStem: fmt.Sprintf("Report_%04d_%02d", year, int(month)),
		Headers:  []string{"Date", "Party Name", "Item Name", "Amount", "Status", "Paid Amount"},
		Total:    decimal.Zero,
	}
	for i := range slips {
		s := &slips[i]
		r.Rows = append(r.Rows, []string{
			s.SlipDate.Format("2006-01-02"),
			s.Party.Name,
			s.ItemName,
			s.Amount.StringFixed(2),
			s.Status(),
			s.PaidAmount.StringFixed(2),
		})
		r.Total = r.Total.Add(s.Amount)
	}
	return r
}

// PartyWise builds the report over one party's slips.
func PartyWise(partyName string, slips []models.PurchaseSlip) *Report {
	r := &Report{
		Title:    "PARTY REPORT: " + partyName,
		FileStem: fmt.Sprintf("Report_Party_%s", sanitize(partyName)),
		Headers:  []string{"Date", "Item Name", "Amount", "Paid Amount", "Status"},
		Total:    decimal.Zero,
	}
	for i := range slips {
		s := &slips[i]
		r.Rows = append(r.Rows, []string{
			s.SlipDate.Format("2006-01-02"),
			s.ItemName,
			s.Amount.StringFixed(2),
			s.PaidAmount.StringFixed(2),
			s.Status(),
		})
		r.Total = r.Total.Add(s.Amount)
	}
	return r
}

// ItemWise builds the report over all slips carrying one item name.
func ItemWise(itemName string, slips []models.PurchaseSlip) *Report {
	r := &Report{
		Title:    "ITEM REPORT: " + itemName,
		FileStem: fmt.Sprintf("Report_Item_%s", sanitize(itemName)),
		Headers:  []string{"Date", "Party Name", "Amount", "Paid Amount", "Status"},
		Total:    decimal.Zero,
	}
	for i := range slips {
		s := &slips[i]
		r.Rows = append(r.Rows, []string{
			s.SlipDate.Format("2006-01-02"),
			s.Party.Name,
			s.Amount.StringFixed(2),
			s.PaidAmount.StringFixed(2),
			s.Status(),
		})
		r.Total = r.Total.Add(s.Amount)
	}
	return r
}

// SalaryHistory builds the report over one employee's salary records.
func SalaryHistory(employeeName string, records []models.SalaryRecord) *Report {
	r := &Report{
		Title:    "SALARY HISTORY: " + employeeName,
		FileStem: fmt.Sprintf("Report_Salary_%s", sanitize(employeeName)),
		Headers:  []string{"Month", "Base Salary", "Present", "Absent", "Repayment", "Final Salary"},
		Total:    decimal.Zero,
	}
	for i := range records {
		rec := &records[i]
		r.Rows = append(r.Rows, []string{
			fmt.Sprintf("%04d-%02d", rec.PaymentYear, rec.PaymentMonth),
			rec.SalaryAmount.StringFixed(2),
			fmt.Sprintf("%d", rec.PresentDays),
			fmt.Sprintf("%d", rec.AbsentDays),
			rec.BorrowRepayment.StringFixed(2),
			rec.FinalSalary.StringFixed(2),
		})
		r.Total = r.Total.Add(rec.FinalSalary)
	}
	return r
}

// sanitize makes a value safe for a filename.
func sanitize(s string) string {
	out := make([]rune, 0, len(s))
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			out = append(out, ch)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
