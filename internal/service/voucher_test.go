package service

import (
	"testing"
	"time"

	"shop-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoucherLedger(t *testing.T) {
	setup := func(t *testing.T) (*VoucherService, *models.Employee) {
		cleanDB()
		emp := &models.Employee{Name: "Asha", Salary: d("3000"), Borrow: d("250")}
		require.NoError(t, testDB.Create(emp).Error)
		return NewVoucherService(testDB, testLogger()), emp
	}

	borrowOf := func(t *testing.T, id uint) decimal.Decimal {
		var emp models.Employee
		require.NoError(t, testDB.First(&emp, id).Error)
		return emp.Borrow
	}

	date := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)

	t.Run("issue increases the borrow balance", func(t *testing.T) {
		svc, emp := setup(t)

		v, err := svc.Issue(emp.ID, d("100"), "advance for travel", date)
		require.NoError(t, err)
		assert.NotZero(t, v.ID)
		assert.True(t, borrowOf(t, emp.ID).Equal(d("350")))
	})

	t.Run("issue then delete restores the balance exactly", func(t *testing.T) {
		svc, emp := setup(t)
		before := borrowOf(t, emp.ID)

		v, err := svc.Issue(emp.ID, d("123.45"), "advance", date)
		require.NoError(t, err)
		require.NoError(t, svc.Delete(v.ID))

		assert.True(t, borrowOf(t, emp.ID).Equal(before),
			"borrow drifted: %s != %s", borrowOf(t, emp.ID), before)
	})

	t.Run("edit swaps old amount for new", func(t *testing.T) {
		svc, emp := setup(t)

		v, err := svc.Issue(emp.ID, d("100"), "advance", date)
		require.NoError(t, err)
		require.NoError(t, svc.Edit(v.ID, d("160"), "advance corrected", date))

		// 250 - 100 + 160 on top of the original 250+100
		assert.True(t, borrowOf(t, emp.ID).Equal(d("410")))

		var fresh models.Voucher
		require.NoError(t, testDB.First(&fresh, v.ID).Error)
		assert.True(t, fresh.Amount.Equal(d("160")))
		assert.Equal(t, "advance corrected", fresh.Reason)
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		svc, emp := setup(t)

		_, err := svc.Issue(emp.ID, decimal.Zero, "zero", date)
		require.Error(t, err)
		assert.True(t, IsValidation(err))

		_, err = svc.Issue(emp.ID, d("-5"), "negative", date)
		require.Error(t, err)
		assert.True(t, IsValidation(err))

		assert.True(t, borrowOf(t, emp.ID).Equal(d("250")))
	})

	t.Run("issue for unknown employee", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Issue(9999, d("50"), "ghost", date)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deleting a stale voucher is a no-op", func(t *testing.T) {
		svc, emp := setup(t)
		assert.NoError(t, svc.Delete(9999))
		assert.True(t, borrowOf(t, emp.ID).Equal(d("250")))
	})

	t.Run("list is newest first", func(t *testing.T) {
		svc, emp := setup(t)

		_, err := svc.Issue(emp.ID, d("10"), "old", date)
		require.NoError(t, err)
		_, err = svc.Issue(emp.ID, d("20"), "new", date.AddDate(0, 0, 3))
		require.NoError(t, err)

		vouchers, err := svc.ListByEmployee(emp.ID)
		require.NoError(t, err)
		require.Len(t, vouchers, 2)
		assert.Equal(t, "new", vouchers[0].Reason)
	})
}
