package ui

import "shop-ledger/internal/database"

// settingsScreen changes the PIN and manages database backups.
func (a *App) settingsScreen() {
	for {
		a.Console.Println("\n--- Settings & Backup ---")
		a.Console.Println(" p. change PIN")
		a.Console.Println(" b. create backup")
		a.Console.Println(" l. list backups")
		a.Console.Println(" r. restore backup")
		a.Console.Println(" q. back")

		switch a.Console.ReadLine("Action") {
		case "p":
			current := a.Console.ReadLine("Current PIN")
			newPin := a.Console.ReadLine("New PIN")
			confirm := a.Console.ReadLine("Confirm new PIN")
			if err := a.Settings.ChangePin(current, newPin, confirm); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("PIN updated.")
		case "b":
			info, err := database.Backup(a.Cfg.Database.Path, a.Cfg.Backup.Dir)
			if err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Printf("Backup saved: %s (%d bytes)\n", info.Path, info.Size)
		case "l":
			a.listBackups()
		case "r":
			a.restoreBackup()
		case "q", "":
			return
		}
	}
}

func (a *App) listBackups() {
	backups, err := database.ListBackups(a.Cfg.Backup.Dir)
	if err != nil {
		a.Console.Error(err)
		return
	}
	if len(backups) == 0 {
		a.Console.Println("No backups found.")
		return
	}
	for i, b := range backups {
		a.Console.Printf("%3d. %s  %s  %d bytes\n",
			i+1, b.Name, b.CreatedAt.Format("2006-01-02 15:04:05"), b.Size)
	}
}

func (a *App) restoreBackup() {
	backups, err := database.ListBackups(a.Cfg.Backup.Dir)
	if err != nil {
		a.Console.Error(err)
		return
	}
	if len(backups) == 0 {
		a.Console.Println("No backups found.")
		return
	}
	for i, b := range backups {
		a.Console.Printf("%3d. %s  %s\n", i+1, b.Name, b.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	n, err := a.Console.ReadInt("Backup number")
	if err != nil || n < 1 || n > len(backups) {
		a.Console.Println("No such backup.")
		return
	}
	if !a.Console.Confirm("Overwrite the live database with " + backups[n-1].Name + "?") {
		return
	}

	if err := database.Restore(backups[n-1].Path, a.Cfg.Database.Path); err != nil {
		a.Console.Error(err)
		return
	}
	a.Console.Println("Backup restored. Restart the application to load it.")
}
