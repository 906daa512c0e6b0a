// Package ledger owns all customer, account, transaction, and loan state.
// Every mutation happens under one store-wide lock and is followed by a
// best-effort snapshot to disk. The snapshot is local working storage, not a
// system of record; cross-process access to it is uncoordinated.
package ledger

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftalliance/backend/internal/models"
)

type accountDefaults struct {
	InterestRate   decimal.Decimal
	MinimumBalance decimal.Decimal
}

// Default interest rate and minimum balance per account type. Types without
// an entry fall back to fallbackDefaults.
var accountTypeDefaults = map[models.AccountType]accountDefaults{
	models.AccountTypeSavings: {
		InterestRate:   decimal.RequireFromString("0.02"),
		MinimumBalance: decimal.RequireFromString("50"),
	},
	models.AccountTypeCurrent: {
		InterestRate:   decimal.RequireFromString("0.01"),
		MinimumBalance: decimal.RequireFromString("1000"),
	},
	models.AccountTypeFixedDeposit: {
		InterestRate:   decimal.RequireFromString("0.05"),
		MinimumBalance: decimal.RequireFromString("5000"),
	},
}

var fallbackDefaults = accountDefaults{
	InterestRate:   decimal.RequireFromString("0.015"),
	MinimumBalance: decimal.RequireFromString("100"),
}

func defaultsFor(t models.AccountType) accountDefaults {
	if d, ok := accountTypeDefaults[t]; ok {
		return d
	}
	return fallbackDefaults
}

var daysPerYear = decimal.NewFromInt(365)

// Store is the single mutator of all ledger state.
type Store struct {
	mu sync.RWMutex

	customers    map[string]*models.Customer
	accounts     map[string]*models.Account
	transactions map[string][]models.Transaction
	loans        []*models.Loan

	// lastInterestDate is the UTC calendar date (2006-01-02) of the most
	// recent accrual run; empty when interest has never been accrued.
	lastInterestDate string

	snapshotPath string
	now          func() time.Time
}

// Open loads the snapshot at path into a new store. A missing snapshot
// yields an empty store; an unreadable or corrupt one is logged and also
// yields an empty store.
func Open(path string) *Store {
	s := &Store{
		customers:    make(map[string]*models.Customer),
		accounts:     make(map[string]*models.Account),
		transactions: make(map[string][]models.Transaction),
		snapshotPath: path,
		now:          time.Now,
	}
	if path != "" {
		s.load()
	}
	return s
}

// RegisterCustomer creates a new customer with a generated id.
func (s *Store) RegisterCustomer(firstName, lastName, email, phone string) (*models.Customer, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, models.NewValidationError("first_name", "required")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, models.NewValidationError("last_name", "required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, models.NewValidationError("email", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &models.Customer{
		ID:        "c-" + uuid.New().String()[:8],
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		KYCStatus: models.KYCStatusPending,
		IsActive:  true,
		CreatedAt: s.now().UTC(),
	}
	s.customers[c.ID] = c
	s.persist()

	log.Printf("[LEDGER] Registered customer %s (%s %s)", c.ID, c.FirstName, c.LastName)
	return c, nil
}

// CreateAccount opens an account for an existing customer. Interest rate and
// minimum balance come from the account-type defaults table. A positive
// initial deposit is recorded as a DEPOSIT transaction.
func (s *Store) CreateAccount(customerID string, accountType models.AccountType, currency string, initialDeposit decimal.Decimal) (*models.Account, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, models.NewValidationError("currency", "must be a 3-letter ISO code")
	}
	if initialDeposit.IsNegative() {
		return nil, models.NewValidationError("initial_deposit", "must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, models.NewNotFoundError("customer", customerID)
	}

	d := defaultsFor(accountType)
	acct := &models.Account{
		AccountNumber:  s.nextAccountNumber(),
		CustomerID:     customerID,
		Type:           accountType,
		Currency:       currency,
		Balance:        decimal.Zero,
		InterestRate:   d.InterestRate,
		MinimumBalance: d.MinimumBalance,
		CreatedAt:      s.now().UTC(),
	}
	s.accounts[acct.AccountNumber] = acct

	if initialDeposit.IsPositive() {
		acct.Balance = initialDeposit.Round(2)
		s.appendTransaction(acct, models.TransactionDeposit, acct.Balance, "Initial deposit", "")
	}
	s.persist()

	log.Printf("[LEDGER] Opened %s account %s for customer %s", acct.Type, acct.AccountNumber, customerID)
	return acct, nil
}

// Deposit credits the account and appends a DEPOSIT transaction.
func (s *Store) Deposit(accountNumber string, amount decimal.Decimal, description string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, models.NewValidationError("amount", "must be positive")
	}
	amount = amount.Round(2)

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[accountNumber]
	if !ok {
		return nil, models.NewNotFoundError("account", accountNumber)
	}

	acct.Balance = acct.Balance.Add(amount)
	tx := s.appendTransaction(acct, models.TransactionDeposit, amount, description, "")
	s.persist()
	return tx, nil
}

// Withdraw debits the account. The debit fails when the resulting balance
// would fall below the account's minimum balance; landing exactly on the
// minimum succeeds.
func (s *Store) Withdraw(accountNumber string, amount decimal.Decimal, description string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, models.NewValidationError("amount", "must be positive")
	}
	amount = amount.Round(2)

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[accountNumber]
	if !ok {
		return nil, models.NewNotFoundError("account", accountNumber)
	}
	if acct.Balance.Sub(amount).LessThan(acct.MinimumBalance) {
		return nil, &models.InsufficientFundsError{
			AccountNumber:  accountNumber,
			Balance:        acct.Balance,
			Requested:      amount,
			MinimumBalance: acct.MinimumBalance,
		}
	}

	acct.Balance = acct.Balance.Sub(amount)
	tx := s.appendTransaction(acct, models.TransactionWithdrawal, amount, description, "")
	s.persist()
	return tx, nil
}

// Transfer moves amount between two accounts as one debit leg plus one
// credit leg, each referencing the other account. All checks run before
// either balance changes, so a failed transfer leaves no partial state.
func (s *Store) Transfer(fromAccount, toAccount string, amount decimal.Decimal, description string) (debit, credit *models.Transaction, err error) {
	if !amount.IsPositive() {
		return nil, nil, models.NewValidationError("amount", "must be positive")
	}
	if fromAccount == toAccount {
		return nil, nil, models.NewValidationError("to_account", "must differ from source account")
	}
	amount = amount.Round(2)

	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.accounts[fromAccount]
	if !ok {
		return nil, nil, models.NewNotFoundError("account", fromAccount)
	}
	dst, ok := s.accounts[toAccount]
	if !ok {
		return nil, nil, models.NewNotFoundError("account", toAccount)
	}
	if src.Balance.Sub(amount).LessThan(src.MinimumBalance) {
		return nil, nil, &models.InsufficientFundsError{
			AccountNumber:  fromAccount,
			Balance:        src.Balance,
			Requested:      amount,
			MinimumBalance: src.MinimumBalance,
		}
	}

	reference := "TRF-" + uuid.New().String()[:8]
	src.Balance = src.Balance.Sub(amount)
	dst.Balance = dst.Balance.Add(amount)

	d := s.appendLinkedTransaction(src, models.TransactionTransfer, amount, description, reference, dst.AccountNumber)
	c := s.appendLinkedTransaction(dst, models.TransactionTransfer, amount, description, reference, src.AccountNumber)
	s.persist()

	log.Printf("[LEDGER] Transfer %s: %s %s from %s to %s", reference, amount.StringFixed(2), src.Currency, fromAccount, toAccount)
	return d, c, nil
}

// TransactionHistory returns the account's transactions in insertion order,
// optionally bounded by inclusive calendar dates on the timestamp.
func (s *Store) TransactionHistory(accountNumber string, from, to *time.Time) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.accounts[accountNumber]; !ok {
		return nil, models.NewNotFoundError("account", accountNumber)
	}

	history := s.transactions[accountNumber]
	out := make([]models.Transaction, 0, len(history))
	for _, tx := range history {
		day := dateOnly(tx.Timestamp)
		if from != nil && day.Before(dateOnly(*from)) {
			continue
		}
		if to != nil && day.After(dateOnly(*to)) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

// TransferLegs returns both legs of a transfer, oriented by the debtor
// account: the debit leg is the one posted to debtorAccount, the credit leg
// the one posted to its counterpart.
func (s *Store) TransferLegs(reference, debtorAccount string) (debit, credit models.Transaction, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.accounts[debtorAccount]; !ok {
		return debit, credit, models.NewNotFoundError("account", debtorAccount)
	}

	for _, tx := range s.transactions[debtorAccount] {
		if tx.Reference == reference && tx.Type == models.TransactionTransfer {
			debit = tx
			break
		}
	}
	if debit.Reference == "" {
		return debit, credit, models.NewNotFoundError("transfer", reference)
	}

	for _, tx := range s.transactions[debit.RelatedAccount] {
		if tx.Reference == reference && tx.Type == models.TransactionTransfer {
			credit = tx
			return debit, credit, nil
		}
	}
	return debit, credit, models.NewNotFoundError("transfer", reference)
}

// ApplyForLoan computes a simple-interest schedule and records the loan.
// Nothing is disbursed; approval is bookkeeping only.
func (s *Store) ApplyForLoan(customerID string, principal decimal.Decimal, termMonths int, annualRate decimal.Decimal, collateral string) (*models.Loan, error) {
	if !principal.IsPositive() {
		return nil, models.NewValidationError("amount", "must be positive")
	}
	if termMonths <= 0 {
		return nil, models.NewValidationError("term_months", "must be positive")
	}
	if annualRate.IsNegative() {
		return nil, models.NewValidationError("annual_rate", "must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, models.NewNotFoundError("customer", customerID)
	}

	term := decimal.NewFromInt(int64(termMonths))
	totalInterest := principal.Mul(annualRate).Mul(term).Div(decimal.NewFromInt(12)).Round(2)
	monthlyPayment := principal.Add(totalInterest).Div(term).Round(2)

	loan := &models.Loan{
		ID:               "ln-" + uuid.New().String()[:8],
		CustomerID:       customerID,
		Principal:        principal.Round(2),
		AnnualRate:       annualRate,
		TermMonths:       termMonths,
		Collateral:       strings.TrimSpace(collateral),
		TotalInterest:    totalInterest,
		MonthlyPayment:   monthlyPayment,
		RemainingBalance: principal.Add(totalInterest).Round(2),
		Status:           models.LoanStatusActive,
		CreatedAt:        s.now().UTC(),
	}
	s.loans = append(s.loans, loan)
	s.persist()

	log.Printf("[LEDGER] Loan %s approved for customer %s: %s over %d months", loan.ID, customerID, loan.Principal.StringFixed(2), termMonths)
	return loan, nil
}

// AccrueDailyInterest credits one day of interest to every account except
// FIXED_DEPOSIT holdings. It is idempotent per UTC calendar day; a second
// run on the same day returns no credits.
func (s *Store) AccrueDailyInterest() ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().UTC().Format("2006-01-02")
	if s.lastInterestDate == today {
		return nil, nil
	}

	var credits []models.Transaction
	for _, acct := range s.accounts {
		if acct.Type == models.AccountTypeFixedDeposit {
			continue
		}
		dailyRate := acct.InterestRate.Div(daysPerYear)
		interest := acct.Balance.Mul(dailyRate).Round(2)
		if !interest.IsPositive() {
			continue
		}
		acct.Balance = acct.Balance.Add(interest)
		tx := s.appendTransaction(acct, models.TransactionInterestCredit, interest, "Daily interest", "")
		credits = append(credits, *tx)
	}

	s.lastInterestDate = today
	s.persist()

	log.Printf("[LEDGER] Accrued daily interest for %s: %d credit(s)", today, len(credits))
	return credits, nil
}

// Customer returns a copy of the customer record.
func (s *Store) Customer(id string) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return models.Customer{}, models.NewNotFoundError("customer", id)
	}
	return *c, nil
}

// Account returns a copy of the account record.
func (s *Store) Account(accountNumber string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[accountNumber]
	if !ok {
		return models.Account{}, models.NewNotFoundError("account", accountNumber)
	}
	return *a, nil
}

// Customers lists all customers ordered by id.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, *c)
	}
	sortCustomers(out)
	return out
}

// Accounts lists all accounts ordered by account number.
func (s *Store) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, *a)
	}
	sortAccounts(out)
	return out
}

// AccountsForCustomer lists the customer's accounts ordered by number.
func (s *Store) AccountsForCustomer(customerID string) []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Account
	for _, a := range s.accounts {
		if a.CustomerID == customerID {
			out = append(out, *a)
		}
	}
	sortAccounts(out)
	return out
}

// Loans lists all loans in application order.
func (s *Store) Loans() []models.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Loan, 0, len(s.loans))
	for _, l := range s.loans {
		out = append(out, *l)
	}
	return out
}

// LastInterestDate reports the UTC date of the latest accrual run, empty if
// interest has never been accrued.
func (s *Store) LastInterestDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastInterestDate
}

// appendTransaction records a completed transaction against the account.
// Caller must hold the write lock.
func (s *Store) appendTransaction(acct *models.Account, txType models.TransactionType, amount decimal.Decimal, description, reference string) *models.Transaction {
	return s.appendLinkedTransaction(acct, txType, amount, description, reference, "")
}

func (s *Store) appendLinkedTransaction(acct *models.Account, txType models.TransactionType, amount decimal.Decimal, description, reference, relatedAccount string) *models.Transaction {
	if reference == "" {
		reference = fmt.Sprintf("%s-%s", txType[:3], uuid.New().String()[:8])
	}
	tx := models.Transaction{
		ID:             uuid.New().String(),
		AccountNumber:  acct.AccountNumber,
		Type:           txType,
		Amount:         amount,
		Currency:       acct.Currency,
		Timestamp:      s.now().UTC(),
		Description:    description,
		Reference:      reference,
		RelatedAccount: relatedAccount,
		Status:         models.TransactionStatusCompleted,
	}
	s.transactions[acct.AccountNumber] = append(s.transactions[acct.AccountNumber], tx)
	return &tx
}

// nextAccountNumber generates an unused 10-digit account number. Caller must
// hold the write lock.
func (s *Store) nextAccountNumber() string {
	const digits = "0123456789"
	for {
		b := make([]byte, 10)
		for i := range b {
			b[i] = digits[rand.Intn(len(digits))]
		}
		if _, taken := s.accounts[string(b)]; !taken {
			return string(b)
		}
	}
}

func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
