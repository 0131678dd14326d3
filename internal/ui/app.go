package ui

import (
	"fmt"

	"shop-ledger/internal/config"
	"shop-ledger/internal/report"
	"shop-ledger/internal/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App wires the services to the terminal screens and runs the menu loop.
type App struct {
	Console *Console
	Cfg     *config.Config
	Log     *zap.Logger

	Parties   *service.PartyService
	Items     *service.ItemService
	Purchases *service.PurchaseService
	Employees *service.EmployeeService
	Vouchers  *service.VoucherService
	Payroll   *service.PayrollService
	Balance   *service.BalanceService
	Settings  *service.SettingsService
	Exporter  *report.Exporter
}

func NewApp(cfg *config.Config, db *gorm.DB, log *zap.Logger, console *Console) *App {
	parties := service.NewPartyService(db, log)
	return &App{
		Console:   console,
		Cfg:       cfg,
		Log:       log,
		Parties:   parties,
		Items:     service.NewItemService(db, log),
		Purchases: service.NewPurchaseService(db, log, parties),
		Employees: service.NewEmployeeService(db, log),
		Vouchers:  service.NewVoucherService(db, log),
		Payroll:   service.NewPayrollService(db, log),
		Balance:   service.NewBalanceService(db, log),
		Settings:  service.NewSettingsService(db, log, cfg.App.PinMinLen, cfg.App.PinMaxLen),
		Exporter:  report.NewExporter(cfg.Report.Dir),
	}
}

// Run performs login (or first-run PIN setup) and enters the main menu.
func (a *App) Run() error {
	if err := a.login(); err != nil {
		return err
	}

	for {
		a.Console.Println()
		a.Console.Println("==== SHOP LEDGER ====")
		a.Console.Println(" 1. New Purchase Slip")
		a.Console.Println(" 2. Payments")
		a.Console.Println(" 3. Manage Parties")
		a.Console.Println(" 4. Manage Items")
		a.Console.Println(" 5. Manage Employees")
		a.Console.Println(" 6. Salary")
		a.Console.Println(" 7. Vouchers")
		a.Console.Println(" 8. Balance Sheet")
		a.Console.Println(" 9. Reports")
		a.Console.Println("10. Settings & Backup")
		a.Console.Println(" 0. Exit")

		switch a.Console.ReadLine("Choose") {
		case "1":
			a.purchaseScreen()
		case "2":
			a.paymentScreen()
		case "3":
			a.partyScreen()
		case "4":
			a.itemScreen()
		case "5":
			a.employeeScreen()
		case "6":
			a.salaryScreen()
		case "7":
			a.voucherScreen()
		case "8":
			a.balanceScreen()
		case "9":
			a.reportScreen()
		case "10":
			a.settingsScreen()
		case "0", "":
			a.Console.Println("Bye.")
			return nil
		default:
			a.Console.Println("Unknown choice.")
		}
	}
}

// login asks for the PIN, creating one on first run.
func (a *App) login() error {
	has, err := a.Settings.HasPin()
	if err != nil {
		return fmt.Errorf("check pin: %w", err)
	}

	if !has {
		a.Console.Println("First run: create a login PIN.")
		for {
			pin := a.Console.ReadLine("New PIN")
			confirm := a.Console.ReadLine("Confirm PIN")
			if err := a.Settings.SetupPin(pin, confirm); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("PIN created.")
			return nil
		}
	}

	for attempts := 0; attempts < 3; attempts++ {
		pin := a.Console.ReadLine("PIN")
		if err := a.Settings.VerifyPin(pin); err != nil {
			a.Console.Error(err)
			continue
		}
		return nil
	}
	return fmt.Errorf("too many failed PIN attempts")
}
