package service

import (
	"testing"
	"time"

	"shop-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestSettle_Proration(t *testing.T) {
	t.Run("full 30-day month pays the base salary", func(t *testing.T) {
		st, err := Settle(d("3000"), decimal.Zero, 30, 30)
		require.NoError(t, err)
		assert.True(t, st.Earned.Equal(d("3000")), "earned = %s", st.Earned)
		assert.True(t, st.Payable.Equal(d("3000")))
		assert.Equal(t, 0, st.AbsentDays)
	})

	t.Run("full 31-day month pays one extra day-rate", func(t *testing.T) {
		st, err := Settle(d("3000"), decimal.Zero, 31, 31)
		require.NoError(t, err)
		assert.True(t, st.Earned.Equal(d("3100")), "earned = %s", st.Earned)
	})

	t.Run("full february pays below the baseline", func(t *testing.T) {
		st, err := Settle(d("3000"), decimal.Zero, 28, 28)
		require.NoError(t, err)
		assert.True(t, st.Earned.Equal(d("2800")), "earned = %s", st.Earned)
	})

	t.Run("half month pays half the baseline", func(t *testing.T) {
		st, err := Settle(d("3000"), decimal.Zero, 15, 30)
		require.NoError(t, err)
		assert.True(t, st.Earned.Equal(d("1500")), "earned = %s", st.Earned)
		assert.Equal(t, 15, st.AbsentDays)
	})

	t.Run("per-day rate always uses the 30-day divisor", func(t *testing.T) {
		st, err := Settle(d("3000"), decimal.Zero, 10, 31)
		require.NoError(t, err)
		assert.True(t, st.PerDayRate.Equal(d("100")), "rate = %s", st.PerDayRate)
		assert.True(t, st.Earned.Equal(d("1000")))
	})
}

func TestSettle_RepaymentCap(t *testing.T) {
	t.Run("borrow larger than earnings swallows the whole pay", func(t *testing.T) {
		// earned = 3 * (600/30) * ... pick simple numbers: salary 600, 15 of 30 days -> 300
		st, err := Settle(d("600"), d("500"), 15, 30)
		require.NoError(t, err)
		assert.True(t, st.Earned.Equal(d("300")))
		assert.True(t, st.Repayment.Equal(d("300")))
		assert.True(t, st.Payable.Equal(decimal.Zero))
		assert.True(t, st.NewBorrow.Equal(d("200")))
	})

	t.Run("borrow smaller than earnings is repaid in full", func(t *testing.T) {
		st, err := Settle(d("600"), d("100"), 15, 30)
		require.NoError(t, err)
		assert.True(t, st.Repayment.Equal(d("100")))
		assert.True(t, st.Payable.Equal(d("200")))
		assert.True(t, st.NewBorrow.Equal(decimal.Zero))
	})
}

func TestSettle_Validation(t *testing.T) {
	cases := []struct {
		name        string
		salary      string
		borrow      string
		present     int
		daysInMonth int
	}{
		{"negative salary", "-1", "0", 10, 30},
		{"negative borrow", "100", "-1", 10, 30},
		{"negative present days", "100", "0", -1, 30},
		{"present days beyond month", "100", "0", 31, 30},
		{"month too short", "100", "0", 10, 27},
		{"month too long", "100", "0", 10, 32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Settle(d(tc.salary), d(tc.borrow), tc.present, tc.daysInMonth)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "want validation error, got %v", err)
		})
	}
}

func TestPayrollRun(t *testing.T) {
	setup := func(t *testing.T) (*PayrollService, *models.Employee) {
		cleanDB()
		emp := &models.Employee{Name: "Asha", Salary: d("3000"), Borrow: d("500")}
		require.NoError(t, testDB.Create(emp).Error)
		return NewPayrollService(testDB, testLogger()), emp
	}

	t.Run("writes the record and moves the borrow in one go", func(t *testing.T) {
		svc, emp := setup(t)

		rec, err := svc.Run(emp.ID, 2025, time.November, 30)
		require.NoError(t, err)

		// November 2025 has 30 days: earned 3000, borrow 500 fully repaid
		assert.True(t, rec.FinalSalary.Equal(d("2500")), "final = %s", rec.FinalSalary)
		assert.True(t, rec.BorrowRepayment.Equal(d("500")))
		assert.Equal(t, 30, rec.PresentDays)
		assert.Equal(t, 0, rec.AbsentDays)

		var fresh models.Employee
		require.NoError(t, testDB.First(&fresh, emp.ID).Error)
		assert.True(t, fresh.Borrow.Equal(decimal.Zero), "borrow = %s", fresh.Borrow)
	})

	t.Run("second run for the same month is rejected untouched", func(t *testing.T) {
		svc, emp := setup(t)

		_, err := svc.Run(emp.ID, 2025, time.November, 30)
		require.NoError(t, err)

		_, err = svc.Run(emp.ID, 2025, time.November, 30)
		assert.ErrorIs(t, err, ErrAlreadyPaid)

		var count int64
		testDB.Model(&models.SalaryRecord{}).Where("employee_id = ?", emp.ID).Count(&count)
		assert.Equal(t, int64(1), count)

		// the borrow moved exactly once
		var fresh models.Employee
		require.NoError(t, testDB.First(&fresh, emp.ID).Error)
		assert.True(t, fresh.Borrow.Equal(decimal.Zero))
	})

	t.Run("same month for another employee still runs", func(t *testing.T) {
		svc, emp := setup(t)
		other := &models.Employee{Name: "Binod", Salary: d("1500"), Borrow: decimal.Zero}
		require.NoError(t, testDB.Create(other).Error)

		_, err := svc.Run(emp.ID, 2025, time.November, 30)
		require.NoError(t, err)
		_, err = svc.Run(other.ID, 2025, time.November, 30)
		require.NoError(t, err)
	})

	t.Run("invalid day count persists nothing", func(t *testing.T) {
		svc, emp := setup(t)

		_, err := svc.Run(emp.ID, 2025, time.November, 31) // November has 30 days
		require.Error(t, err)
		assert.True(t, IsValidation(err))

		var count int64
		testDB.Model(&models.SalaryRecord{}).Count(&count)
		assert.Equal(t, int64(0), count)

		var fresh models.Employee
		require.NoError(t, testDB.First(&fresh, emp.ID).Error)
		assert.True(t, fresh.Borrow.Equal(d("500")))
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Run(9999, 2025, time.November, 30)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("history is newest month first", func(t *testing.T) {
		svc, emp := setup(t)

		_, err := svc.Run(emp.ID, 2025, time.October, 20)
		require.NoError(t, err)
		_, err = svc.Run(emp.ID, 2025, time.November, 30)
		require.NoError(t, err)

		records, err := svc.History(emp.ID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, int(time.November), records[0].PaymentMonth)
		assert.Equal(t, int(time.October), records[1].PaymentMonth)
	})
}
