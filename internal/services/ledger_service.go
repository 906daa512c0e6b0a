package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/swiftalliance/backend/internal/audit"
	"github.com/swiftalliance/backend/internal/ledger"
	"github.com/swiftalliance/backend/internal/models"
)

// LedgerService exposes the banking core over HTTP: customers, accounts,
// money movement, loans, and the daily interest run.
type LedgerService struct {
	store     *ledger.Store
	validator *ValidationHelper
	audit     *audit.AuditLogger
}

// CustomerDetail is a customer together with their open accounts.
type CustomerDetail struct {
	Customer models.Customer  `json:"customer"`
	Accounts []models.Account `json:"accounts"`
}

// TransferResponse pairs the two ledger legs written by a transfer.
type TransferResponse struct {
	Reference string             `json:"reference"`
	Debit     models.Transaction `json:"debit"`
	Credit    models.Transaction `json:"credit"`
}

// AccrualResponse summarizes one daily interest run.
type AccrualResponse struct {
	Date     string               `json:"date"`
	Credited int                  `json:"credited"`
	Postings []models.Transaction `json:"postings"`
}

func NewLedgerService(store *ledger.Store, validator *ValidationHelper, auditLogger *audit.AuditLogger) *LedgerService {
	return &LedgerService{
		store:     store,
		validator: validator,
		audit:     auditLogger,
	}
}

// RegisterCustomer creates a customer record
// @Summary Register customer
// @Description Register a new customer; KYC starts as PENDING
// @Tags customers
// @Accept json
// @Produce json
// @Param request body models.RegisterCustomerRequest true "Customer details"
// @Success 201 {object} models.Customer "Customer registered"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /customers [post]
func (s *LedgerService) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.RegisterCustomerRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	customer, err := s.store.RegisterCustomer(req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(customer)
}

// ListCustomers returns all registered customers
// @Summary List customers
// @Description List every registered customer
// @Tags customers
// @Produce json
// @Success 200 {array} models.Customer "Customers"
// @Router /customers [get]
func (s *LedgerService) ListCustomers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.store.Customers())
}

// GetCustomer returns one customer with their accounts
// @Summary Get customer
// @Description Fetch a customer and the accounts they hold
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} CustomerDetail "Customer details"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /customers/{customerID} [get]
func (s *LedgerService) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	customer, err := s.store.Customer(customerID)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CustomerDetail{
		Customer: customer,
		Accounts: s.store.AccountsForCustomer(customerID),
	})
}

// CreateAccount opens an account for a customer
// @Summary Open account
// @Description Open an account of the given type, optionally funded with an initial deposit
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.CreateAccountRequest true "Account details"
// @Success 201 {object} models.Account "Account opened"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /accounts [post]
func (s *LedgerService) CreateAccount(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.CreateAccountRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	initialDeposit := decimal.Zero
	if req.InitialDeposit != "" {
		var err error
		initialDeposit, err = decimal.NewFromString(req.InitialDeposit)
		if err != nil {
			SendErrorResponse(w, "Invalid initial deposit", http.StatusBadRequest, nil)
			return
		}
	}

	account, err := s.store.CreateAccount(req.CustomerID, models.AccountType(req.AccountType), req.Currency, initialDeposit)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
}

// ListAccounts returns all open accounts
// @Summary List accounts
// @Description List every open account with its balance
// @Tags accounts
// @Produce json
// @Success 200 {array} models.Account "Accounts"
// @Router /accounts [get]
func (s *LedgerService) ListAccounts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.store.Accounts())
}

// GetAccount returns one account including its balance
// @Summary Account balance
// @Description Fetch an account by number; the balance is an exact decimal
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} models.Account "Account"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Router /accounts/{accountNumber} [get]
func (s *LedgerService) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := s.store.Account(chi.URLParam(r, "accountNumber"))
	if err != nil {
		SendDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

// Deposit credits an account
// @Summary Deposit
// @Description Credit an account with a positive amount
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.AmountRequest true "Deposit details"
// @Success 201 {object} models.Transaction "Posted transaction"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Router /accounts/deposit [post]
func (s *LedgerService) Deposit(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAmountRequest(w, r)
	if !ok {
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		SendErrorResponse(w, "Invalid amount", http.StatusBadRequest, nil)
		return
	}

	tx, err := s.store.Deposit(req.AccountNumber, amount, req.Description)
	if err != nil {
		s.audit.LogError("", req.AccountNumber, err)
		SendDomainError(w, err)
		return
	}

	s.audit.LogOperation(tx.Reference, tx.AccountNumber, string(tx.Type), "amount "+amount.StringFixed(2))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tx)
}

// Withdraw debits an account
// @Summary Withdraw
// @Description Debit an account; fails if the balance would fall below the account minimum
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.AmountRequest true "Withdrawal details"
// @Success 201 {object} models.Transaction "Posted transaction"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Router /accounts/withdraw [post]
func (s *LedgerService) Withdraw(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAmountRequest(w, r)
	if !ok {
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		SendErrorResponse(w, "Invalid amount", http.StatusBadRequest, nil)
		return
	}

	tx, err := s.store.Withdraw(req.AccountNumber, amount, req.Description)
	if err != nil {
		s.audit.LogError("", req.AccountNumber, err)
		SendDomainError(w, err)
		return
	}

	s.audit.LogOperation(tx.Reference, tx.AccountNumber, string(tx.Type), "amount "+amount.StringFixed(2))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tx)
}

// Transfer moves funds between two accounts
// @Summary Transfer
// @Description Move funds between two accounts atomically; both legs share one reference
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.TransferRequest true "Transfer details"
// @Success 201 {object} TransferResponse "Posted transfer"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Router /accounts/transfer [post]
func (s *LedgerService) Transfer(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.TransferRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		SendErrorResponse(w, "Invalid amount", http.StatusBadRequest, nil)
		return
	}

	debit, credit, err := s.store.Transfer(req.FromAccount, req.ToAccount, amount, req.Description)
	if err != nil {
		s.audit.LogError("", req.FromAccount, err)
		SendDomainError(w, err)
		return
	}

	s.audit.LogTransfer(debit.Reference, req.FromAccount, req.ToAccount, amount, "SUCCESS")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(TransferResponse{
		Reference: debit.Reference,
		Debit:     *debit,
		Credit:    *credit,
	})
}

// TransactionHistory lists postings for an account
// @Summary Transaction history
// @Description List an account's transactions, optionally bounded by from/to timestamps
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param from query string false "Lower bound (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Upper bound (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {array} models.Transaction "Transactions"
// @Failure 400 {object} ErrorResponse "Invalid time bound"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Router /accounts/{accountNumber}/transactions [get]
func (s *LedgerService) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")

	from, err := parseTimeBound(r.URL.Query().Get("from"))
	if err != nil {
		SendErrorResponse(w, "Invalid 'from' timestamp", http.StatusBadRequest, nil)
		return
	}

	to, err := parseTimeBound(r.URL.Query().Get("to"))
	if err != nil {
		SendErrorResponse(w, "Invalid 'to' timestamp", http.StatusBadRequest, nil)
		return
	}

	history, err := s.store.TransactionHistory(accountNumber, from, to)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}

// ApplyLoan approves a loan application
// @Summary Apply for loan
// @Description Approve a simple-interest loan and record its repayment schedule
// @Tags loans
// @Accept json
// @Produce json
// @Param request body models.LoanApplicationRequest true "Loan application"
// @Success 201 {object} models.Loan "Approved loan"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /loans [post]
func (s *LedgerService) ApplyLoan(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.LoanApplicationRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	principal, err := decimal.NewFromString(req.Amount)
	if err != nil {
		SendErrorResponse(w, "Invalid amount", http.StatusBadRequest, nil)
		return
	}

	annualRate, err := decimal.NewFromString(req.AnnualRate)
	if err != nil {
		SendErrorResponse(w, "Invalid annual rate", http.StatusBadRequest, nil)
		return
	}

	loan, err := s.store.ApplyForLoan(req.CustomerID, principal, req.TermMonths, annualRate, req.Collateral)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	s.audit.LogOperation(loan.ID, "", "LOAN_APPROVAL",
		fmt.Sprintf("customer %s principal %s monthly %s", loan.CustomerID, loan.Principal.StringFixed(2), loan.MonthlyPayment.StringFixed(2)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(loan)
}

// ListLoans returns all loans
// @Summary List loans
// @Description List every loan with its repayment schedule figures
// @Tags loans
// @Produce json
// @Success 200 {array} models.Loan "Loans"
// @Router /loans [get]
func (s *LedgerService) ListLoans(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.store.Loans())
}

// AccrueInterest runs the daily interest posting
// @Summary Accrue daily interest
// @Description Credit daily interest to every eligible account; idempotent per calendar day
// @Tags interest
// @Produce json
// @Success 200 {object} AccrualResponse "Accrual summary"
// @Router /interest/accrue [post]
func (s *LedgerService) AccrueInterest(w http.ResponseWriter, r *http.Request) {
	postings, err := s.store.AccrueDailyInterest()
	if err != nil {
		SendDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AccrualResponse{
		Date:     s.store.LastInterestDate(),
		Credited: len(postings),
		Postings: postings,
	})
}

func (s *LedgerService) decodeAmountRequest(w http.ResponseWriter, r *http.Request) (models.AmountRequest, bool) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.AmountRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return req, false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return req, false
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return req, false
	}

	return req, true
}

// parseTimeBound accepts RFC 3339 or a bare date. Empty input means no bound.
func parseTimeBound(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, err
		}
	}

	return &t, nil
}
