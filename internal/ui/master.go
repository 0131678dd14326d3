package ui

import "shop-ledger/internal/models"

// partyScreen manages suppliers.
func (a *App) partyScreen() {
	for {
		parties, err := a.Parties.List()
		if err != nil {
			a.Console.Error(err)
			return
		}

		a.Console.Println("\n--- Parties ---")
		for i := range parties {
			p := &parties[i]
			a.Console.Printf("%3d. %-25s %-12s %s\n", i+1, p.Name, p.Phone, p.Address)
		}
		a.Console.Println("\n n. new   e. edit   d. delete   q. back")

		switch a.Console.ReadLine("Action") {
		case "n":
			name := a.Console.ReadLine("Name")
			taxID := a.Console.ReadLine("Tax ID (optional)")
			phone := a.Console.ReadLine("Phone (optional)")
			address := a.Console.ReadLine("Address (optional)")
			if _, err := a.Parties.Create(name, taxID, phone, address); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Party added.")
		case "e":
			p := pickParty(a.Console, parties)
			if p == nil {
				continue
			}
			name := orDefault(a.Console.ReadLine("Name ["+p.Name+"]"), p.Name)
			taxID := orDefault(a.Console.ReadLine("Tax ID ["+p.TaxID+"]"), p.TaxID)
			phone := orDefault(a.Console.ReadLine("Phone ["+p.Phone+"]"), p.Phone)
			address := orDefault(a.Console.ReadLine("Address ["+p.Address+"]"), p.Address)
			if err := a.Parties.Update(p.ID, name, taxID, phone, address); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Party updated.")
		case "d":
			p := pickParty(a.Console, parties)
			if p == nil {
				continue
			}
			if !a.Console.Confirm("Delete party " + p.Name + "?") {
				continue
			}
			if err := a.Parties.Delete(p.ID); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Party deleted.")
		case "q", "":
			return
		}
	}
}

// itemScreen manages the item catalog.
func (a *App) itemScreen() {
	for {
		items, err := a.Items.List()
		if err != nil {
			a.Console.Error(err)
			return
		}

		a.Console.Println("\n--- Items ---")
		for i := range items {
			a.Console.Printf("%3d. %s\n", i+1, items[i].Name)
		}
		a.Console.Println("\n n. new   r. rename   d. delete   q. back")

		switch a.Console.ReadLine("Action") {
		case "n":
			if _, err := a.Items.Create(a.Console.ReadLine("Name")); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Item added.")
		case "r":
			idx, err := a.Console.ReadInt("Item number")
			if err != nil || idx < 1 || idx > len(items) {
				a.Console.Println("No such item.")
				continue
			}
			if err := a.Items.Rename(items[idx-1].ID, a.Console.ReadLine("New name")); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Item renamed.")
		case "d":
			idx, err := a.Console.ReadInt("Item number")
			if err != nil || idx < 1 || idx > len(items) {
				a.Console.Println("No such item.")
				continue
			}
			if !a.Console.Confirm("Delete item " + items[idx-1].Name + "?") {
				continue
			}
			if err := a.Items.Delete(items[idx-1].ID); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Item deleted.")
		case "q", "":
			return
		}
	}
}

// employeeScreen manages employee records.
func (a *App) employeeScreen() {
	for {
		employees, err := a.Employees.List()
		if err != nil {
			a.Console.Error(err)
			return
		}

		a.Console.Println("\n--- Employees ---")
		for i := range employees {
			e := &employees[i]
			a.Console.Printf("%3d. %-25s salary %10s  borrow %10s\n",
				i+1, e.Name, e.Salary.StringFixed(2), e.Borrow.StringFixed(2))
		}
		a.Console.Println("\n n. new   e. edit   d. delete   q. back")

		switch a.Console.ReadLine("Action") {
		case "n":
			name := a.Console.ReadLine("Name")
			mobNo := a.Console.ReadLine("Mobile (optional)")
			address := a.Console.ReadLine("Address (optional)")
			salary, err := a.Console.ReadDecimal("Monthly salary")
			if err != nil {
				a.Console.Error(err)
				continue
			}
			proofType := a.Console.ReadLine("ID proof type (optional)")
			proofPath := a.Console.ReadLine("ID proof file (optional)")
			if _, err := a.Employees.Create(name, mobNo, address, salary, proofType, proofPath); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Employee added.")
		case "e":
			emp := pickEmployee(a.Console, employees)
			if emp == nil {
				continue
			}
			name := orDefault(a.Console.ReadLine("Name ["+emp.Name+"]"), emp.Name)
			mobNo := orDefault(a.Console.ReadLine("Mobile ["+emp.MobNo+"]"), emp.MobNo)
			address := orDefault(a.Console.ReadLine("Address ["+emp.Address+"]"), emp.Address)
			salary := emp.Salary
			if raw := a.Console.ReadLine("Monthly salary [" + emp.Salary.StringFixed(2) + "]"); raw != "" {
				s, err := a.Console.ParseDecimal(raw)
				if err != nil {
					a.Console.Error(err)
					continue
				}
				salary = s
			}
			if err := a.Employees.Update(emp.ID, name, mobNo, address, salary, emp.IDProofType, emp.IDProofPath); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Employee updated.")
		case "d":
			emp := pickEmployee(a.Console, employees)
			if emp == nil {
				continue
			}
			if !a.Console.Confirm("Delete employee " + emp.Name + "?") {
				continue
			}
			if err := a.Employees.Delete(emp.ID); err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Println("Employee deleted.")
		case "q", "":
			return
		}
	}
}

func pickParty(c *Console, parties []models.Party) *models.Party {
	n, err := c.ReadInt("Party number")
	if err != nil || n < 1 || n > len(parties) {
		c.Println("No such party.")
		return nil
	}
	return &parties[n-1]
}

func pickEmployee(c *Console, employees []models.Employee) *models.Employee {
	n, err := c.ReadInt("Employee number")
	if err != nil || n < 1 || n > len(employees) {
		c.Println("No such employee.")
		return nil
	}
	return &employees[n-1]
}

func orDefault(input, fallback string) string {
	if input == "" {
		return fallback
	}
	return input
}
