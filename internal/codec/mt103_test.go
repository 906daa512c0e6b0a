package codec

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftalliance/backend/internal/models"
)

func samplePayment(t *testing.T) *models.PaymentRecord {
	t.Helper()
	record, err := NewPaymentRecord(
		"John Doe", "DE12345678901234567890",
		"Jane Smith", "FR7612345678901234567890123", "BNPAFRPP",
		"1500.5", "USD", "2024-03-15", "Invoice 42", "REF123",
	)
	require.NoError(t, err)
	return record
}

func TestGenerateMT103(t *testing.T) {
	t.Run("renders the documented field set", func(t *testing.T) {
		message := GenerateMT103(samplePayment(t))

		assert.True(t, strings.HasPrefix(message, "{1:F01"), "message: %s", message)
		assert.Contains(t, message, "{2:I103")
		assert.Contains(t, message, "{4:\n")
		assert.True(t, strings.HasSuffix(message, "\n-}"))

		assert.Contains(t, message, ":20:REF123")
		assert.Contains(t, message, ":23B:CRED")
		assert.Contains(t, message, ":32A:240315USD1500.50")
		assert.Contains(t, message, ":50K:John Doe /DE12345678901234567890")
		assert.Contains(t, message, ":59:Jane Smith /FR7612345678901234567890123")
		assert.Contains(t, message, ":70:Invoice 42")
		assert.Contains(t, message, ":71A:SHA")
	})

	t.Run("generated message validates cleanly", func(t *testing.T) {
		message := GenerateMT103(samplePayment(t))
		valid, issues := ValidateMT103(message)
		assert.True(t, valid)
		assert.Empty(t, issues)
	})

	t.Run("amount always carries two fractional digits", func(t *testing.T) {
		record := samplePayment(t)
		record.Amount = decimal.RequireFromString("1500")
		assert.Contains(t, GenerateMT103(record), ":32A:240315USD1500.00")

		record.Amount = decimal.RequireFromString("1500.555")
		assert.Contains(t, GenerateMT103(record), ":32A:240315USD1500.56")
	})

	t.Run("collapses remittance newlines", func(t *testing.T) {
		record := samplePayment(t)
		record.RemittanceInfo = "Invoice 42\nthanks\r\nregards"
		assert.Contains(t, GenerateMT103(record), ":70:Invoice 42 thanks regards")
	})

	t.Run("omits remittance tag when empty", func(t *testing.T) {
		record := samplePayment(t)
		record.RemittanceInfo = ""
		assert.NotContains(t, GenerateMT103(record), ":70:")
	})

	t.Run("substitutes current date for unparseable value date", func(t *testing.T) {
		record := samplePayment(t)
		record.ValueDate = "15/03/2024"
		message := GenerateMT103(record)
		today := time.Now().UTC().Format("060102")
		assert.Contains(t, message, ":32A:"+today+"USD1500.50")
	})

	t.Run("pads the receiver terminal from the BIC", func(t *testing.T) {
		record := samplePayment(t)

		record.BeneficiaryBIC = "BNPAFRPP"
		assert.Contains(t, GenerateMT103(record), "{2:I103BNPAFRPPXXXXN}")

		record.BeneficiaryBIC = "BNPAFRPP123"
		assert.Contains(t, GenerateMT103(record), "{2:I103BNPAFRPPX123N}")

		record.BeneficiaryBIC = ""
		assert.Contains(t, GenerateMT103(record), "{2:I103XXXXXXXXXXXXN}")
	})
}

func TestValidateMT103(t *testing.T) {
	t.Run("reports one issue per missing tag", func(t *testing.T) {
		valid, issues := ValidateMT103("{4:\n:20:REF123\n:71A:SHA\n-}")
		assert.False(t, valid)
		require.Len(t, issues, 3)
		assert.Contains(t, issues[0], ":32A:")
		assert.Contains(t, issues[1], ":50K:")
		assert.Contains(t, issues[2], ":59:")
	})

	t.Run("flags malformed 32A content", func(t *testing.T) {
		message := "{4:\n:20:REF123\n:32A:240315USD15AB.50\n:50K:John /X\n:59:Jane /Y\n:71A:SHA\n-}"
		valid, issues := ValidateMT103(message)
		assert.False(t, valid)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], "invalid format")
		assert.Contains(t, issues[0], "240315USD15AB.50")
	})

	t.Run("flags more than two fractional digits", func(t *testing.T) {
		message := "{4:\n:20:REF123\n:32A:240315USD1500.505\n:50K:John /X\n:59:Jane /Y\n:71A:SHA\n-}"
		valid, issues := ValidateMT103(message)
		assert.False(t, valid)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], ":32A:")
	})

	t.Run("flags empty 50K and 59", func(t *testing.T) {
		message := "{4:\n:20:REF123\n:32A:240315USD1500.50\n:50K:\n:59:\n:71A:SHA\n-}"
		valid, issues := ValidateMT103(message)
		assert.False(t, valid)
		require.Len(t, issues, 2)
		assert.Contains(t, issues[0], ":50K:")
		assert.Contains(t, issues[0], "empty")
		assert.Contains(t, issues[1], ":59:")
	})

	t.Run("accepts a whole-number amount", func(t *testing.T) {
		message := "{4:\n:20:REF123\n:32A:240315EUR250\n:50K:John /X\n:59:Jane /Y\n:71A:SHA\n-}"
		valid, issues := ValidateMT103(message)
		assert.True(t, valid, "issues: %v", issues)
	})

	t.Run("empty input reports all five tags", func(t *testing.T) {
		valid, issues := ValidateMT103("")
		assert.False(t, valid)
		assert.Len(t, issues, 5)
	})
}
