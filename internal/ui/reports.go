package ui

import (
	"time"

	"shop-ledger/internal/report"
)

// balanceScreen shows the recomputed financial summary.
func (a *App) balanceScreen() {
	sheet, err := a.Balance.Compute()
	if err != nil {
		a.Console.Error(err)
		return
	}

	a.Console.Println("\n--- BUSINESS FINANCIAL SUMMARY ---")
	a.Console.Println("\nParty Payables (We Owe Them):")
	if len(sheet.Payables) == 0 {
		a.Console.Println("  no outstanding payables")
	}
	for _, p := range sheet.Payables {
		a.Console.Printf("  %-25s | %12s\n", p.Name, p.Balance.StringFixed(2))
	}

	a.Console.Println("\nEmployee Receivables (They Owe Us):")
	if len(sheet.Receivables) == 0 {
		a.Console.Println("  no outstanding receivables")
	}
	for _, r := range sheet.Receivables {
		a.Console.Printf("  %-25s | %12s\n", r.Name, r.Borrow.StringFixed(2))
	}

	a.Console.Printf("\nTotal Payables:    %s\n", sheet.TotalPayable.StringFixed(2))
	a.Console.Printf("Total Receivables: %s\n", sheet.TotalReceivable.StringFixed(2))
	if sheet.NetPosition.IsNegative() {
		a.Console.Printf("NET POSITION (DEBT): %s\n", sheet.NetPosition.Neg().StringFixed(2))
	} else {
		a.Console.Printf("NET POSITION (CREDIT): %s\n", sheet.NetPosition.StringFixed(2))
	}
}

// reportScreen builds a report and offers the three export formats.
func (a *App) reportScreen() {
	a.Console.Println("\n--- Reports ---")
	a.Console.Println(" 1. Monthly")
	a.Console.Println(" 2. Party-wise")
	a.Console.Println(" 3. Item-wise")
	a.Console.Println(" 4. Salary history")
	a.Console.Println(" 5. Recent exports")
	a.Console.Println(" 0. Back")

	var rep *report.Report
	switch a.Console.ReadLine("Choose") {
	case "1":
		year, err := a.Console.ReadInt("Year")
		if err != nil {
			a.Console.Error(err)
			return
		}
		monthNum, err := a.Console.ReadInt("Month (1-12)")
		if err != nil || monthNum < 1 || monthNum > 12 {
			a.Console.Println("Invalid month.")
			return
		}
		slips, err := a.Purchases.ListByMonth(year, time.Month(monthNum))
		if err != nil {
			a.Console.Error(err)
			return
		}
		rep = report.Monthly(year, time.Month(monthNum), slips)
	case "2":
		party := a.selectParty()
		if party == nil {
			return
		}
		slips, err := a.Purchases.ListByParty(party.ID)
		if err != nil {
			a.Console.Error(err)
			return
		}
		rep = report.PartyWise(party.Name, slips)
	case "3":
		itemName := a.Console.ReadLine("Item name")
		slips, err := a.Purchases.ListByItem(itemName)
		if err != nil {
			a.Console.Error(err)
			return
		}
		rep = report.ItemWise(itemName, slips)
	case "4":
		employees, err := a.Employees.List()
		if err != nil {
			a.Console.Error(err)
			return
		}
		for i := range employees {
			a.Console.Printf("%3d. %s\n", i+1, employees[i].Name)
		}
		emp := pickEmployee(a.Console, employees)
		if emp == nil {
			return
		}
		records, err := a.Payroll.History(emp.ID)
		if err != nil {
			a.Console.Error(err)
			return
		}
		rep = report.SalaryHistory(emp.Name, records)
	case "5":
		a.recentExports()
		return
	default:
		return
	}

	a.showReport(rep)
}

func (a *App) showReport(rep *report.Report) {
	a.Console.Printf("\n%s (%d rows, total %s)\n", rep.Title, len(rep.Rows), rep.Total.StringFixed(2))
	for _, row := range rep.Rows {
		line := ""
		for i, cell := range row {
			if i > 0 {
				line += " | "
			}
			line += cell
		}
		a.Console.Println("  " + line)
	}

	if len(rep.Rows) == 0 {
		a.Console.Println("No data to export.")
		return
	}

	a.Console.Println("\n c. export CSV   t. export text   x. export XLSX   q. back")
	var (
		path string
		err  error
	)
	switch a.Console.ReadLine("Action") {
	case "c":
		path, err = a.Exporter.ExportCSV(rep)
	case "t":
		path, err = a.Exporter.ExportText(rep)
	case "x":
		path, err = a.Exporter.ExportXLSX(rep)
	default:
		return
	}
	if err != nil {
		a.Console.Error(err)
		return
	}
	a.Console.Printf("File saved: %s\n", path)
}

func (a *App) recentExports() {
	files, err := a.Exporter.Recent(a.Cfg.Report.Recent)
	if err != nil {
		a.Console.Error(err)
		return
	}
	if len(files) == 0 {
		a.Console.Println("No reports found.")
		return
	}
	a.Console.Println("\nRecent exports:")
	for _, f := range files {
		a.Console.Println("  " + f)
	}
}
