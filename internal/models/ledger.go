package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings      AccountType = "SAVINGS"
	AccountTypeCurrent      AccountType = "CURRENT"
	AccountTypeFixedDeposit AccountType = "FIXED_DEPOSIT"
	AccountTypeLoan         AccountType = "LOAN"
	AccountTypeCorporate    AccountType = "CORPORATE"
)

type TransactionType string

const (
	TransactionDeposit          TransactionType = "DEPOSIT"
	TransactionWithdrawal       TransactionType = "WITHDRAWAL"
	TransactionTransfer         TransactionType = "TRANSFER"
	TransactionLoanDisbursement TransactionType = "LOAN_DISBURSEMENT"
	TransactionLoanRepayment    TransactionType = "LOAN_REPAYMENT"
	TransactionInterestCredit   TransactionType = "INTEREST_CREDIT"
)

const (
	TransactionStatusCompleted = "COMPLETED"

	KYCStatusPending  = "PENDING"
	KYCStatusVerified = "VERIFIED"

	LoanStatusActive = "ACTIVE"
)

// Customer is immutable after registration except for KYCStatus/IsActive.
type Customer struct {
	ID        string    `json:"id" example:"c-9f2b4d7a"`
	FirstName string    `json:"first_name" example:"Amina"`
	LastName  string    `json:"last_name" example:"Okafor"`
	Email     string    `json:"email" example:"amina@example.com"`
	Phone     string    `json:"phone,omitempty" example:"+4915123456789"`
	KYCStatus string    `json:"kyc_status"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Account balances are exact decimals with 2-digit settlement precision.
// Mutated only through ledger operations.
type Account struct {
	AccountNumber  string          `json:"account_number" example:"1000000001"`
	CustomerID     string          `json:"customer_id"`
	Type           AccountType     `json:"account_type"`
	Currency       string          `json:"currency" example:"EUR"`
	Balance        decimal.Decimal `json:"balance"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	MinimumBalance decimal.Decimal `json:"minimum_balance"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Transaction is an append-only record. A transfer produces two of these,
// one per account, each holding the counterpart in RelatedAccount.
type Transaction struct {
	ID             string          `json:"id"`
	AccountNumber  string          `json:"account_number"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Timestamp      time.Time       `json:"timestamp"`
	Description    string          `json:"description,omitempty"`
	Reference      string          `json:"reference"`
	RelatedAccount string          `json:"related_account,omitempty"`
	Status         string          `json:"status"`
}

// Loan uses simple non-compounding interest:
// total = principal * rate * term/12, schedule split evenly across the term.
type Loan struct {
	ID               string          `json:"id"`
	CustomerID       string          `json:"customer_id"`
	Principal        decimal.Decimal `json:"principal"`
	AnnualRate       decimal.Decimal `json:"annual_rate"`
	TermMonths       int             `json:"term_months"`
	Collateral       string          `json:"collateral,omitempty"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

type RegisterCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=70"`
	LastName  string `json:"last_name" validate:"required,max=70"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
}

type CreateAccountRequest struct {
	CustomerID     string `json:"customer_id" validate:"required"`
	AccountType    string `json:"account_type" validate:"required,oneof=SAVINGS CURRENT FIXED_DEPOSIT LOAN CORPORATE"`
	Currency       string `json:"currency" validate:"required,len=3,uppercase"`
	InitialDeposit string `json:"initial_deposit" validate:"omitempty,decimal_amount"`
}

type AmountRequest struct {
	AccountNumber string `json:"account_number" validate:"required,account_number"`
	Amount        string `json:"amount" validate:"required,decimal_amount"`
	Description   string `json:"description" validate:"max=200"`
}

type TransferRequest struct {
	FromAccount string `json:"from_account" validate:"required,account_number"`
	ToAccount   string `json:"to_account" validate:"required,account_number"`
	Amount      string `json:"amount" validate:"required,decimal_amount"`
	Description string `json:"description" validate:"max=200"`
}

type LoanApplicationRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Amount     string `json:"amount" validate:"required,decimal_amount"`
	TermMonths int    `json:"term_months" validate:"required,gt=0,max=480"`
	AnnualRate string `json:"annual_rate" validate:"required,decimal_amount"`
	Collateral string `json:"collateral" validate:"max=200"`
}
