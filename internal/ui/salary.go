package ui

import (
	"fmt"
	"time"

	"shop-ledger/internal/models"
	"shop-ledger/internal/util"
)

// salaryScreen runs monthly settlements and shows salary history.
func (a *App) salaryScreen() {
	employees, err := a.Employees.List()
	if err != nil {
		a.Console.Error(err)
		return
	}
	if len(employees) == 0 {
		a.Console.Println("No employees found.")
		return
	}

	a.Console.Println("\n--- Salary Management ---")
	for i := range employees {
		e := &employees[i]
		a.Console.Printf("%3d. %-25s salary %10s  borrow %10s\n",
			i+1, e.Name, e.Salary.StringFixed(2), e.Borrow.StringFixed(2))
	}
	emp := pickEmployee(a.Console, employees)
	if emp == nil {
		return
	}

	for {
		a.Console.Println("\n c. calculate & save   h. history   q. back")
		switch a.Console.ReadLine("Action") {
		case "c":
			a.runPayroll(emp)
			// reload the borrow balance changed by the run
			if fresh, err := a.Employees.Get(emp.ID); err == nil {
				emp = fresh
			}
		case "h":
			a.salaryHistory(emp)
		case "q", "":
			return
		}
	}
}

func (a *App) runPayroll(emp *models.Employee) {
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
	month := time.Month(monthNum)
	daysInMonth := util.DaysInMonth(year, month)

	present, err := a.Console.ReadInt(fmt.Sprintf("Present days (month has %d)", daysInMonth))
	if err != nil {
		a.Console.Error(err)
		return
	}

	st, err := a.Payroll.Preview(emp.ID, year, month, present)
	if err != nil {
		a.Console.Error(err)
		return
	}

	a.Console.Printf("\nMonthly salary : %s\n", emp.Salary.StringFixed(2))
	a.Console.Printf("Current borrow : %s\n", emp.Borrow.StringFixed(2))
	a.Console.Printf("Per-day rate   : %s\n", st.PerDayRate.StringFixed(2))
	a.Console.Printf("Absent days    : %d\n", st.AbsentDays)
	a.Console.Printf("Borrow repaid  : %s\n", st.Repayment.StringFixed(2))
	a.Console.Printf("PAYABLE SALARY : %s\n", st.Payable.StringFixed(2))
	a.Console.Printf("Borrow left    : %s\n", st.NewBorrow.StringFixed(2))

	if !a.Console.Confirm(fmt.Sprintf("Process salary %s?", st.Payable.StringFixed(2))) {
		return
	}

	if _, err := a.Payroll.Run(emp.ID, year, month, present); err != nil {
		a.Console.Error(err)
		return
	}
	a.Console.Println("Salary processed.")
}

func (a *App) salaryHistory(emp *models.Employee) {
	records, err := a.Payroll.History(emp.ID)
	if err != nil {
		a.Console.Error(err)
		return
	}
	if len(records) == 0 {
		a.Console.Println("No salary records.")
		return
	}

	a.Console.Printf("\nSalary history of %s:\n", emp.Name)
	for i := range records {
		r := &records[i]
		a.Console.Printf("%04d-%02d | base %10s | present %2d | repaid %10s | paid %10s\n",
			r.PaymentYear, r.PaymentMonth, r.SalaryAmount.StringFixed(2),
			r.PresentDays, r.BorrowRepayment.StringFixed(2), r.FinalSalary.StringFixed(2))
	}
}

// voucherScreen manages cash advances for one employee.
func (a *App) voucherScreen() {
	employees, err := a.Employees.List()
	if err != nil {
		a.Console.Error(err)
		return
	}
	if len(employees) == 0 {
		a.Console.Println("No employees found.")
		return
	}

	a.Console.Println("\n--- Voucher Management ---")
	for i := range employees {
		e := &employees[i]
		a.Console.Printf("%3d. %s (borrow: %s)\n", i+1, e.Name, e.Borrow.StringFixed(2))
	}
	emp := pickEmployee(a.Console, employees)
	if emp == nil {
		return
	}

	for {
		vouchers, err := a.Vouchers.ListByEmployee(emp.ID)
		if err != nil {
			a.Console.Error(err)
			return
		}

		a.Console.Printf("\nVouchers of %s:\n", emp.Name)
		a.Console.Printf("%3s  %-12s | %10s | %s\n", "", "Date", "Amount", "Reason")
		for i := range vouchers {
			v := &vouchers[i]
			a.Console.Printf("%3d. %-12s | %10s | %s\n",
				i+1, v.VoucherDate.Format("2006-01-02"), v.Amount.StringFixed(2), v.Reason)
		}

		a.Console.Println("\n g. generate   u. update   d. delete   q. back")
		switch a.Console.ReadLine("Action") {
		case "g":
			amount, err := a.Console.ReadDecimal("Amount")
			if err != nil {
				a.Console.Error(err)
				continue
			}
			reason := a.Console.ReadLine("Reason")
			date, err := a.Console.ReadDate("Date")
			if err != nil {
				a.Console.Error(err)
				continue
			}
			if _, err := a.Vouchers.Issue(emp.ID, amount, reason, date); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Voucher issued.")
		case "u":
			v := pickVoucher(a.Console, vouchers)
			if v == nil {
				continue
			}
			amount, err := a.Console.ReadDecimal("New amount")
			if err != nil {
				a.Console.Error(err)
				continue
			}
			reason := orDefault(a.Console.ReadLine("Reason ["+v.Reason+"]"), v.Reason)
			date, err := a.Console.ReadDate("Date")
			if err != nil {
				a.Console.Error(err)
				continue
			}
			if err := a.Vouchers.Edit(v.ID, amount, reason, date); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Voucher updated.")
		case "d":
			v := pickVoucher(a.Console, vouchers)
			if v == nil {
				continue
			}
			if !a.Console.Confirm(fmt.Sprintf("Delete voucher for %s?", v.Amount.StringFixed(2))) {
				continue
			}
			if err := a.Vouchers.Delete(v.ID); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Voucher deleted.")
		case "q", "":
			return
		}

		// the borrow shown in the header changes with every mutation
		if fresh, err := a.Employees.Get(emp.ID); err == nil {
			emp = fresh
		}
	}
}

func pickVoucher(c *Console, vouchers []models.Voucher) *models.Voucher {
	n, err := c.ReadInt("Voucher number")
	if err != nil || n < 1 || n > len(vouchers) {
		c.Println("No such voucher.")
		return nil
	}
	return &vouchers[n-1]
}
