package ui

import (
	"fmt"

	"shop-ledger/internal/models"
)

// purchaseScreen enters new purchase slips until the operator stops.
func (a *App) purchaseScreen() {
	a.Console.Println()
	a.Console.Println("--- New Purchase Slip ---")

	for {
		date, err := a.Console.ReadDate("Date")
		if err != nil {
			a.Console.Error(err)
			continue
		}

		partyName := a.Console.ReadLine("Party name")
		itemName := a.Console.ReadLine("Item name")
		amount, err := a.Console.ReadDecimal("Amount")
		if err != nil {
			a.Console.Error(err)
			continue
		}

		slip, err := a.Purchases.Create(date, partyName, itemName, amount)
		if err != nil {
			a.Console.Error(err)
			// keep the screen open so the form can be corrected
			continue
		}
		a.Console.Printf("Slip %d generated for %s, amount %s.\n",
			slip.ID, partyName, amount.StringFixed(2))

		if !a.Console.Confirm("Add another slip?") {
			return
		}
	}
}

// paymentScreen settles purchase slips: partial payment, mark cleared,
// or clear every fully-pending slip of a party.
func (a *App) paymentScreen() {
	party := a.selectParty()
	if party == nil {
		return
	}

	for {
		slips, err := a.Purchases.ListByParty(party.ID)
		if err != nil {
			a.Console.Error(err)
			return
		}
		if len(slips) == 0 {
			a.Console.Println("No slips for this party.")
			return
		}

		a.Console.Printf("\nSlips of %s:\n", party.Name)
		for i := range slips {
			s := &slips[i]
			a.Console.Printf("%3d. %s | %-15s | %10s | paid %10s | %s\n",
				i+1, s.SlipDate.Format("2006-01-02"), s.ItemName,
				s.Amount.StringFixed(2), s.PaidAmount.StringFixed(2), s.Status())
		}

		a.Console.Println("\n p. pay partial   c. mark cleared   a. clear all pending   q. back")
		switch a.Console.ReadLine("Action") {
		case "p":
			a.payPartial(slips)
		case "c":
			a.markCleared(slips)
		case "a":
			count, err := a.Purchases.ClearAllPending(party.ID)
			if err != nil {
				a.Console.Error(err)
				continue
			}
			a.Console.Printf("%d pending slips cleared.\n", count)
		case "q", "":
			return
		}
	}
}

func (a *App) payPartial(slips []models.PurchaseSlip) {
	slip := pickSlip(a.Console, slips)
	if slip == nil {
		return
	}

	a.Console.Printf("Remaining balance: %s\n", slip.Remaining().StringFixed(2))
	amount, err := a.Console.ReadDecimal("Payment amount")
	if err != nil {
		a.Console.Error(err)
		return
	}
	if err := a.Purchases.PayPartial(slip.ID, amount); err != nil {
		a.Console.Error(err)
		return
	}
	a.Console.Println("Payment recorded.")
}

func (a *App) markCleared(slips []models.PurchaseSlip) {
	slip := pickSlip(a.Console, slips)
	if slip == nil {
		return
	}
	if !a.Console.Confirm(fmt.Sprintf("Mark slip for %q (%s) as cleared?",
		slip.ItemName, slip.Amount.StringFixed(2))) {
		return
	}
	if err := a.Purchases.MarkCleared(slip.ID); err != nil {
		a.Console.Error(err)
		return
	}
	a.Console.Println("Slip cleared.")
}

func pickSlip(c *Console, slips []models.PurchaseSlip) *models.PurchaseSlip {
	n, err := c.ReadInt("Slip number")
	if err != nil || n < 1 || n > len(slips) {
		c.Println("No such slip.")
		return nil
	}
	return &slips[n-1]
}

// selectParty lists parties and lets the operator pick one by number.
func (a *App) selectParty() *models.Party {
	parties, err := a.Parties.List()
	if err != nil {
		a.Console.Error(err)
		return nil
	}
	if len(parties) == 0 {
		a.Console.Println("No parties found.")
		return nil
	}

	a.Console.Println()
	for i := range parties {
		a.Console.Printf("%3d. %s\n", i+1, parties[i].Name)
	}
	n, err := a.Console.ReadInt("Party number")
	if err != nil || n < 1 || n > len(parties) {
		a.Console.Println("No such party.")
		return nil
	}
	return &parties[n-1]
}
