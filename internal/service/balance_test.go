package service

import (
	"testing"
	"time"

	"shop-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceSheet(t *testing.T) {
	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	t.Run("sums open balances and nets them", func(t *testing.T) {
		cleanDB()
		purchases := newPurchaseService()
		balance := NewBalanceService(testDB, testLogger())

		// party A: 1000 with 400 paid (open 600) + 500 cleared (ignored)
		a1, err := purchases.Create(date, "Alpha Traders", "Cement", d("1000"))
		require.NoError(t, err)
		require.NoError(t, purchases.PayPartial(a1.ID, d("400")))
		a2, err := purchases.Create(date, "Alpha Traders", "Bricks", d("500"))
		require.NoError(t, err)
		require.NoError(t, purchases.MarkCleared(a2.ID))

		// party B: 250 untouched
		_, err = purchases.Create(date, "Beta Supply", "Sand", d("250"))
		require.NoError(t, err)

		// employees: 300 borrow, 0 borrow (ignored)
		require.NoError(t, testDB.Create(&models.Employee{
			Name: "Asha", Salary: d("3000"), Borrow: d("300"),
		}).Error)
		require.NoError(t, testDB.Create(&models.Employee{
			Name: "Binod", Salary: d("1500"), Borrow: decimal.Zero,
		}).Error)

		sheet, err := balance.Compute()
		require.NoError(t, err)

		assert.True(t, sheet.TotalPayable.Equal(d("850")), "payable = %s", sheet.TotalPayable)
		assert.True(t, sheet.TotalReceivable.Equal(d("300")))
		assert.True(t, sheet.NetPosition.Equal(d("-550")))

		require.Len(t, sheet.Payables, 2)
		assert.Equal(t, "Alpha Traders", sheet.Payables[0].Name) // largest first
		assert.True(t, sheet.Payables[0].Balance.Equal(d("600")))
		assert.True(t, sheet.Payables[1].Balance.Equal(d("250")))

		require.Len(t, sheet.Receivables, 1)
		assert.Equal(t, "Asha", sheet.Receivables[0].Name)
	})

	t.Run("totals equal the sum of the listed rows", func(t *testing.T) {
		cleanDB()
		purchases := newPurchaseService()
		balance := NewBalanceService(testDB, testLogger())

		amounts := []string{"10", "20.50", "30", "44.25", "5"}
		for i, amount := range amounts {
			party := "P" + string(rune('A'+i))
			_, err := purchases.Create(date, party, "Goods", d(amount))
			require.NoError(t, err)
		}

		sheet, err := balance.Compute()
		require.NoError(t, err)

		sum := decimal.Zero
		for _, p := range sheet.Payables {
			sum = sum.Add(p.Balance)
		}
		assert.True(t, sheet.TotalPayable.Equal(sum))
		assert.True(t, sheet.NetPosition.Equal(sheet.TotalReceivable.Sub(sheet.TotalPayable)))
	})

	t.Run("empty books net to zero", func(t *testing.T) {
		cleanDB()
		balance := NewBalanceService(testDB, testLogger())

		sheet, err := balance.Compute()
		require.NoError(t, err)
		assert.True(t, sheet.TotalPayable.Equal(decimal.Zero))
		assert.True(t, sheet.TotalReceivable.Equal(decimal.Zero))
		assert.True(t, sheet.NetPosition.Equal(decimal.Zero))
	})
}
