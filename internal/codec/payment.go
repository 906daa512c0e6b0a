// Package codec turns a canonical payment record into wire artifacts: MT103
// flat text, pain.001 XML, and the EPC QR payload. Generation is pure except
// for clock reads; validation collects issues instead of failing fast.
package codec

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftalliance/backend/internal/models"
)

var bicPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

// NewPaymentRecord builds the codec's canonical input from raw fields.
// Amount must parse as a positive decimal; the value date, when given, must
// be an ISO calendar date; a missing reference gets a generated one.
func NewPaymentRecord(orderingName, orderingAccount, beneficiaryName, beneficiaryAccount, beneficiaryBIC, amount, currency, valueDate, remittanceInfo, reference string) (*models.PaymentRecord, error) {
	orderingName = strings.TrimSpace(orderingName)
	orderingAccount = strings.TrimSpace(orderingAccount)
	beneficiaryName = strings.TrimSpace(beneficiaryName)
	beneficiaryAccount = strings.TrimSpace(beneficiaryAccount)
	beneficiaryBIC = strings.ToUpper(strings.TrimSpace(beneficiaryBIC))

	if orderingName == "" {
		return nil, models.NewValidationError("ordering_name", "required")
	}
	if orderingAccount == "" {
		return nil, models.NewValidationError("ordering_account", "required")
	}
	if beneficiaryName == "" {
		return nil, models.NewValidationError("beneficiary_name", "required")
	}
	if beneficiaryAccount == "" {
		return nil, models.NewValidationError("beneficiary_account", "required")
	}
	if beneficiaryBIC != "" && !bicPattern.MatchString(beneficiaryBIC) {
		return nil, models.NewValidationError("beneficiary_bic", "must be an 8 or 11 character BIC")
	}

	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, models.NewValidationError("amount", "must be a decimal number")
	}
	if !amt.IsPositive() {
		return nil, models.NewValidationError("amount", "must be positive")
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 || strings.IndexFunc(currency, func(r rune) bool { return r < 'A' || r > 'Z' }) != -1 {
		return nil, models.NewValidationError("currency", "must be a 3-letter ISO code")
	}

	valueDate = strings.TrimSpace(valueDate)
	if valueDate == "" {
		valueDate = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", valueDate); err != nil {
		return nil, models.NewValidationError("value_date", "must be an ISO date (YYYY-MM-DD)")
	}

	reference = strings.TrimSpace(reference)
	if reference == "" {
		reference = "REF" + time.Now().UTC().Format("20060102150405")
	}

	return &models.PaymentRecord{
		OrderingName:       orderingName,
		OrderingAccount:    orderingAccount,
		BeneficiaryName:    beneficiaryName,
		BeneficiaryAccount: beneficiaryAccount,
		BeneficiaryBIC:     beneficiaryBIC,
		Amount:             amt,
		Currency:           currency,
		ValueDate:          valueDate,
		RemittanceInfo:     strings.TrimSpace(remittanceInfo),
		Reference:          reference,
	}, nil
}

// FromRequest converts a validated API request into a payment record.
func FromRequest(req models.PaymentRequest) (*models.PaymentRecord, error) {
	return NewPaymentRecord(
		req.OrderingName, req.OrderingAccount,
		req.BeneficiaryName, req.BeneficiaryAccount, req.BeneficiaryBIC,
		req.Amount, req.Currency, req.ValueDate, req.RemittanceInfo, req.Reference,
	)
}
