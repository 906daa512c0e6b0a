package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftalliance/backend/internal/audit"
	"github.com/swiftalliance/backend/internal/codec"
	"github.com/swiftalliance/backend/internal/config"
	"github.com/swiftalliance/backend/internal/dispatch"
	"github.com/swiftalliance/backend/internal/models"
	"github.com/swiftalliance/backend/internal/schema"
)

func newMessageHarness(t *testing.T) (*MessageService, string) {
	t.Helper()

	assetsDir := t.TempDir()
	schemaPath, err := schema.EnsureDefaultSchema(assetsDir)
	require.NoError(t, err)

	assets := config.NewAssetStore(filepath.Join(assetsDir, "config.json"))
	logPath := filepath.Join(assetsDir, "swift_send_log.txt")
	sendLog := dispatch.NewSendLog(logPath, nil)

	service := NewMessageService(NewValidationHelper(), assets, sendLog, audit.NewAuditLogger(), schemaPath)
	return service, logPath
}

func samplePaymentRequest() models.PaymentRequest {
	return models.PaymentRequest{
		OrderingName:       "ACME GmbH",
		OrderingAccount:    "DE89370400440532013000",
		BeneficiaryName:    "Jane Smith",
		BeneficiaryAccount: "FR7630006000011234567890189",
		BeneficiaryBIC:     "BNPAFRPP",
		Amount:             "250.00",
		Currency:           "EUR",
		ValueDate:          "2024-03-15",
		RemittanceInfo:     "Invoice 42",
		Reference:          "E2E-REF-1",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if raw, ok := body.([]byte); ok {
		buf.Write(raw)
	} else if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	r := httptest.NewRequest("POST", path, &buf)
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func TestMessageService_BuildPayment(t *testing.T) {
	service, _ := newMessageHarness(t)

	t.Run("returns the normalized record", func(t *testing.T) {
		w := postJSON(t, service.BuildPayment, "/messages/payment", samplePaymentRequest())

		assert.Equal(t, http.StatusOK, w.Code)
		var record models.PaymentRecord
		json.Unmarshal(w.Body.Bytes(), &record)
		assert.Equal(t, "EUR", record.Currency)
		assert.Equal(t, "E2E-REF-1", record.Reference)
		assert.Equal(t, "BNPAFRPP", record.BeneficiaryBIC)
	})

	t.Run("generates a reference when omitted", func(t *testing.T) {
		req := samplePaymentRequest()
		req.Reference = ""
		w := postJSON(t, service.BuildPayment, "/messages/payment", req)

		assert.Equal(t, http.StatusOK, w.Code)
		var record models.PaymentRecord
		json.Unmarshal(w.Body.Bytes(), &record)
		assert.True(t, strings.HasPrefix(record.Reference, "REF"))
	})

	t.Run("rejects a malformed BIC", func(t *testing.T) {
		req := samplePaymentRequest()
		req.BeneficiaryBIC = "NOPE"
		w := postJSON(t, service.BuildPayment, "/messages/payment", req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an unparseable amount", func(t *testing.T) {
		req := samplePaymentRequest()
		req.Amount = "two fifty"
		w := postJSON(t, service.BuildPayment, "/messages/payment", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Contains(t, response.Error, "amount")
	})
}

func TestMessageService_GenerateMT103(t *testing.T) {
	service, _ := newMessageHarness(t)

	t.Run("renders a valid message", func(t *testing.T) {
		w := postJSON(t, service.GenerateMT103, "/messages/mt103", samplePaymentRequest())

		assert.Equal(t, http.StatusOK, w.Code)
		var response GenerateResponse
		json.Unmarshal(w.Body.Bytes(), &response)

		assert.Equal(t, "MT103", response.Message.MessageType)
		assert.Equal(t, "E2E-REF-1", response.Message.Reference)
		assert.True(t, strings.HasPrefix(response.Message.Content, "{1:F01SWALGB2LAXXX0000000000}"))
		assert.Contains(t, response.Message.Content, ":20:E2E-REF-1")
		assert.Contains(t, response.Message.Content, ":32A:240315EUR250.00")
		assert.True(t, response.Validation.Valid)
		assert.Empty(t, response.Validation.Issues)
	})

	t.Run("rejects missing beneficiary", func(t *testing.T) {
		req := samplePaymentRequest()
		req.BeneficiaryName = ""
		w := postJSON(t, service.GenerateMT103, "/messages/mt103", req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMessageService_GeneratePain001(t *testing.T) {
	service, _ := newMessageHarness(t)

	t.Run("renders a document that passes the bundled schema", func(t *testing.T) {
		w := postJSON(t, service.GeneratePain001, "/messages/pain001", samplePaymentRequest())

		assert.Equal(t, http.StatusOK, w.Code)
		var response GenerateResponse
		json.Unmarshal(w.Body.Bytes(), &response)

		assert.Equal(t, "pain.001", response.Message.MessageType)
		assert.Contains(t, response.Message.Content, `<InstdAmt Ccy="EUR">250.00</InstdAmt>`)
		assert.Contains(t, response.Message.Content, "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03")
		assert.True(t, response.Validation.Valid)
		assert.Empty(t, response.Validation.Issues)
	})

	t.Run("reports a missing schema as an advisory issue", func(t *testing.T) {
		assets := config.NewAssetStore(filepath.Join(t.TempDir(), "config.json"))
		require.NoError(t, assets.SetSchemaPath("/nonexistent/pain.xsd"))
		broken := NewMessageService(NewValidationHelper(), assets, dispatch.NewSendLog(filepath.Join(t.TempDir(), "log.txt"), nil), audit.NewAuditLogger(), "")

		w := postJSON(t, broken.GeneratePain001, "/messages/pain001", samplePaymentRequest())

		assert.Equal(t, http.StatusOK, w.Code)
		var response GenerateResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.NotEmpty(t, response.Message.Content)
		assert.False(t, response.Validation.Valid)
		require.Len(t, response.Validation.Issues, 1)
		assert.Contains(t, response.Validation.Issues[0], "schema unavailable")
	})
}

func TestMessageService_ValidateMT103(t *testing.T) {
	service, _ := newMessageHarness(t)

	record, err := codec.NewPaymentRecord("ACME GmbH", "DE89370400440532013000", "Jane Smith",
		"FR7630006000011234567890189", "BNPAFRPP", "250.00", "EUR", "2024-03-15", "Invoice 42", "E2E-REF-1")
	require.NoError(t, err)

	t.Run("accepts generated output", func(t *testing.T) {
		w := postJSON(t, service.ValidateMT103, "/messages/mt103/validate", models.ValidateMT103Request{
			Message: codec.GenerateMT103(record),
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var result models.ValidationResult
		json.Unmarshal(w.Body.Bytes(), &result)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Issues)
	})

	t.Run("collects issues for free text", func(t *testing.T) {
		w := postJSON(t, service.ValidateMT103, "/messages/mt103/validate", models.ValidateMT103Request{
			Message: "this is not a SWIFT message",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var result models.ValidationResult
		json.Unmarshal(w.Body.Bytes(), &result)
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.Issues)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		w := postJSON(t, service.ValidateMT103, "/messages/mt103/validate", models.ValidateMT103Request{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMessageService_ValidatePain001(t *testing.T) {
	service, _ := newMessageHarness(t)

	record, err := codec.NewPaymentRecord("ACME GmbH", "DE89370400440532013000", "Jane Smith",
		"FR7630006000011234567890189", "BNPAFRPP", "250.00", "EUR", "2024-03-15", "Invoice 42", "E2E-REF-1")
	require.NoError(t, err)

	document, err := codec.GeneratePain001(record)
	require.NoError(t, err)

	t.Run("accepts generated output", func(t *testing.T) {
		w := postJSON(t, service.ValidatePain001, "/messages/pain001/validate", models.ValidatePain001Request{
			Document: document,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var result models.ValidationResult
		json.Unmarshal(w.Body.Bytes(), &result)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Issues)
	})

	t.Run("reports schema violations", func(t *testing.T) {
		w := postJSON(t, service.ValidatePain001, "/messages/pain001/validate", models.ValidatePain001Request{
			Document: strings.Replace(document, `Ccy="EUR"`, `Ccy="EURO"`, 1),
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var result models.ValidationResult
		json.Unmarshal(w.Body.Bytes(), &result)
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.Issues)
	})

	t.Run("malformed XML is a client error", func(t *testing.T) {
		w := postJSON(t, service.ValidatePain001, "/messages/pain001/validate", models.ValidatePain001Request{
			Document: "<Document><unclosed>",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Contains(t, response.Error, "malformed XML document")
	})

	t.Run("missing schema path override", func(t *testing.T) {
		w := postJSON(t, service.ValidatePain001, "/messages/pain001/validate", models.ValidatePain001Request{
			Document:   document,
			SchemaPath: "/nonexistent/pain.xsd",
		})

		assert.Equal(t, http.StatusFailedDependency, w.Code)
		var response ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Contains(t, response.Error, "schema unavailable")
	})
}

func TestMessageService_Dispatch(t *testing.T) {
	service, logPath := newMessageHarness(t)

	t.Run("appends to the send log", func(t *testing.T) {
		w := postJSON(t, service.Dispatch, "/messages/dispatch", models.DispatchRequest{
			MessageType: "MT103",
			Reference:   "E2E-REF-1",
			Content:     "{1:F01SWALGB2LAXXX0000000000}{4:\n:20:E2E-REF-1\n-}",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var receipt models.DispatchReceipt
		json.Unmarshal(w.Body.Bytes(), &receipt)
		assert.Equal(t, "E2E-REF-1", receipt.Reference)
		assert.Equal(t, "MT103", receipt.MessageType)
		assert.Len(t, receipt.Digest, 16)

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "E2E-REF-1")
		assert.Contains(t, string(data), receipt.Digest)
	})

	t.Run("rejects unsupported message type", func(t *testing.T) {
		w := postJSON(t, service.Dispatch, "/messages/dispatch", models.DispatchRequest{
			MessageType: "pacs.008",
			Reference:   "REF",
			Content:     "x",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		w := postJSON(t, service.Dispatch, "/messages/dispatch", models.DispatchRequest{
			MessageType: "MT103",
			Reference:   "REF",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMessageService_GenerateEPCQR(t *testing.T) {
	service, _ := newMessageHarness(t)

	t.Run("renders payload and image for EUR", func(t *testing.T) {
		w := postJSON(t, service.GenerateEPCQR, "/messages/epc-qr", samplePaymentRequest())

		assert.Equal(t, http.StatusOK, w.Code)
		var response EPCQRResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.True(t, strings.HasPrefix(response.Payload, "BCD\n002\n1\nSCT"))
		assert.Contains(t, response.Payload, "EUR250.00")

		img, err := base64.StdEncoding.DecodeString(response.ImagePNG)
		require.NoError(t, err)
		assert.NotEmpty(t, img)
	})

	t.Run("rejects non-EUR payments", func(t *testing.T) {
		req := samplePaymentRequest()
		req.Currency = "USD"
		req.ValueDate = "2024-03-15"
		w := postJSON(t, service.GenerateEPCQR, "/messages/epc-qr", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Contains(t, response.Error, "EPC QR")
	})
}
