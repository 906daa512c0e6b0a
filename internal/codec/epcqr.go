package codec

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/swiftalliance/backend/internal/models"
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{1,30}$`)

var epcAmountCap = decimal.RequireFromString("999999999.99")

// BuildEPCPayload renders the EPC069-12 quick-response payload (the "scan to
// pay" block printed on SEPA invoices) for the payment record. Only EUR
// payments qualify; the beneficiary account must be an IBAN.
func BuildEPCPayload(record *models.PaymentRecord) (string, error) {
	if record.Currency != "EUR" {
		return "", models.NewValidationError("currency", "EPC QR codes cover EUR credit transfers only")
	}
	account := strings.ToUpper(strings.ReplaceAll(record.BeneficiaryAccount, " ", ""))
	if !ibanPattern.MatchString(account) {
		return "", models.NewValidationError("beneficiary_account", "must be an IBAN for EPC QR generation")
	}
	amount := record.Amount.Round(2)
	if !amount.IsPositive() || amount.GreaterThan(epcAmountCap) {
		return "", models.NewValidationError("amount", "must be between 0.01 and 999999999.99")
	}

	lines := []string{
		"BCD",
		"002",
		"1",
		"SCT",
		record.BeneficiaryBIC,
		record.BeneficiaryName,
		account,
		"EUR" + amount.StringFixed(2),
		"", // purpose code
		"", // structured reference
		collapseNewlines(record.RemittanceInfo),
	}

	// Trailing empty lines are dropped per the EPC layout rules.
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[:end], "\n"), nil
}

// GenerateQRCode encodes the EPC payload as a 256px PNG, base64 encoded for
// transport in a JSON response.
func GenerateQRCode(record *models.PaymentRecord) (payload string, imageB64 string, err error) {
	payload, err = BuildEPCPayload(record)
	if err != nil {
		return "", "", err
	}

	img, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", "", err
	}
	return payload, base64.StdEncoding.EncodeToString(img), nil
}
