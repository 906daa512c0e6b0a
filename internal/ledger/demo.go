package ledger

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/swiftalliance/backend/internal/models"
)

// SeedDemoData loads a small demo book so a fresh install has accounts to
// exercise. It is a no-op when any customer already exists.
func (s *Store) SeedDemoData() error {
	if len(s.Customers()) > 0 {
		return nil
	}

	type demoAccount struct {
		accountType models.AccountType
		currency    string
		opening     string
	}
	demo := []struct {
		firstName, lastName, email string
		accounts                   []demoAccount
	}{
		{
			firstName: "John", lastName: "Doe", email: "john.doe@example.com",
			accounts: []demoAccount{
				{models.AccountTypeSavings, "EUR", "5000.00"},
				{models.AccountTypeCurrent, "EUR", "12500.75"},
			},
		},
		{
			firstName: "Jane", lastName: "Smith", email: "jane.smith@example.com",
			accounts: []demoAccount{
				{models.AccountTypeSavings, "USD", "7300.20"},
			},
		},
	}

	for _, d := range demo {
		customer, err := s.RegisterCustomer(d.firstName, d.lastName, d.email, "")
		if err != nil {
			return fmt.Errorf("seed customer %s %s: %w", d.firstName, d.lastName, err)
		}
		for _, a := range d.accounts {
			opening, err := decimal.NewFromString(a.opening)
			if err != nil {
				return fmt.Errorf("seed opening balance %q: %w", a.opening, err)
			}
			if _, err := s.CreateAccount(customer.ID, a.accountType, a.currency, opening); err != nil {
				return fmt.Errorf("seed account for %s: %w", customer.ID, err)
			}
		}
	}

	log.Printf("[LEDGER] Seeded demo data: %d customer(s), %d account(s)", len(s.Customers()), len(s.Accounts()))
	return nil
}
