package main

import (
	"log"
	"os"
	"path/filepath"

	"shop-ledger/internal/config"
	"shop-ledger/internal/database"
	"shop-ledger/internal/ui"
	"shop-ledger/internal/util"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
		log.Fatalf("create log dir: %v", err)
	}
	if err := ensureDir(cfg.Backup.Dir); err != nil {
		log.Fatalf("create backup dir: %v", err)
	}

	// application logger (file only, the terminal belongs to the menu)
	logger, err := util.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Sync()
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Sync()
		log.Fatalf("migrate database: %v", err)
	}

	console := ui.NewConsole(os.Stdin, os.Stdout)
	app := ui.NewApp(cfg, db, logger, console)
	if err := app.Run(); err != nil {
		logger.Sync()
		log.Fatalf("run: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
