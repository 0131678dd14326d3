package service

import (
	"log"
	"os"
	"testing"

	"shop-ledger/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB holds the connection to the in-memory SQLite database shared by
// the tests in this package.
var testDB *gorm.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.Party{}, &models.Item{}, &models.PurchaseSlip{},
		&models.Employee{}, &models.Voucher{}, &models.SalaryRecord{},
		&models.AppSetting{}, &models.Log{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate test database: %v", err)
	}

	os.Exit(m.Run())
}

// cleanDB resets all tables between tests.
func cleanDB() {
	testDB.Exec("DELETE FROM salary_records")
	testDB.Exec("DELETE FROM vouchers")
	testDB.Exec("DELETE FROM purchase_slips")
	testDB.Exec("DELETE FROM employees")
	testDB.Exec("DELETE FROM items")
	testDB.Exec("DELETE FROM parties")
	testDB.Exec("DELETE FROM app_settings")
	testDB.Exec("DELETE FROM logs")
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
