package models

import "github.com/shopspring/decimal"

// PaymentRecord is the canonical input to the message codec. It is transient,
// never persisted, and validated once at construction.
type PaymentRecord struct {
	OrderingName       string          `json:"ordering_name"`
	OrderingAccount    string          `json:"ordering_account"`
	BeneficiaryName    string          `json:"beneficiary_name"`
	BeneficiaryAccount string          `json:"beneficiary_account"`
	BeneficiaryBIC     string          `json:"beneficiary_bic,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	ValueDate          string          `json:"value_date"`
	RemittanceInfo     string          `json:"remittance_info,omitempty"`
	Reference          string          `json:"reference"`
}

type PaymentRequest struct {
	OrderingName       string `json:"ordering_name" validate:"required,max=70"`
	OrderingAccount    string `json:"ordering_account" validate:"required,max=34"`
	BeneficiaryName    string `json:"beneficiary_name" validate:"required,max=70"`
	BeneficiaryAccount string `json:"beneficiary_account" validate:"required,max=34"`
	BeneficiaryBIC     string `json:"beneficiary_bic" validate:"omitempty,bic"`
	Amount             string `json:"amount" validate:"required"`
	Currency           string `json:"currency" validate:"required,len=3,uppercase"`
	ValueDate          string `json:"value_date" validate:"omitempty,datetime=2006-01-02"`
	RemittanceInfo     string `json:"remittance_info" validate:"max=140"`
	Reference          string `json:"reference" validate:"omitempty,max=16"`
}

type ValidateMT103Request struct {
	Message string `json:"message" validate:"required"`
}

type ValidatePain001Request struct {
	Document string `json:"document" validate:"required"`
	// SchemaPath overrides the configured schema when set.
	SchemaPath string `json:"schema_path,omitempty"`
}

type SchemaPathRequest struct {
	SchemaPath string `json:"schema_path" validate:"required"`
}

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

type GeneratedMessage struct {
	MessageType string `json:"message_type"`
	Reference   string `json:"reference"`
	Content     string `json:"content"`
}

type DispatchRequest struct {
	MessageType string `json:"message_type" validate:"required,oneof=MT103 pain.001"`
	Reference   string `json:"reference" validate:"required,max=35"`
	Content     string `json:"content" validate:"required"`
}

type DispatchReceipt struct {
	Reference    string `json:"reference"`
	MessageType  string `json:"message_type"`
	LoggedAt     string `json:"logged_at"`
	Digest       string `json:"digest"`
	QueuedToList string `json:"queued_to_list,omitempty"`
}

// SettlementExportRequest names a posted transfer by reference plus the
// debtor leg's account, which fixes the direction of the export.
type SettlementExportRequest struct {
	Reference     string `json:"reference" validate:"required,max=35"`
	DebtorAccount string `json:"debtor_account" validate:"required,account_number"`
	CreditorBIC   string `json:"creditor_bic" validate:"omitempty,bic"`
	Status        string `json:"status" validate:"omitempty,oneof=ACCP ACSC RJCT"`
}
