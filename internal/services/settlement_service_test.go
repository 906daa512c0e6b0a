package services

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftalliance/backend/internal/audit"
	"github.com/swiftalliance/backend/internal/ledger"
	"github.com/swiftalliance/backend/internal/models"
	"github.com/swiftalliance/backend/internal/settlement"
)

type exportResponse struct {
	Status      string `json:"status"`
	MessageType string `json:"messageType"`
	XML         string `json:"xml"`
}

func newSettlementHarness(t *testing.T) (*ledger.Store, *SettlementService) {
	t.Helper()

	store := ledger.Open(filepath.Join(t.TempDir(), "ledger.json"))
	service := NewSettlementService(store, settlement.NewExporter("SWALGB2LXXX"), NewValidationHelper(), audit.NewAuditLogger())
	return store, service
}

func seedSettledTransfer(t *testing.T, store *ledger.Store) (reference, debtorAccount, creditorAccount string) {
	t.Helper()

	amina, err := store.RegisterCustomer("Amina", "Okafor", "amina@example.com", "")
	require.NoError(t, err)
	jonas, err := store.RegisterCustomer("Jonas", "Weber", "jonas@example.com", "")
	require.NoError(t, err)

	src, err := store.CreateAccount(amina.ID, models.AccountTypeSavings, "EUR", decimal.RequireFromString("600"))
	require.NoError(t, err)
	dst, err := store.CreateAccount(jonas.ID, models.AccountTypeSavings, "EUR", decimal.RequireFromString("100"))
	require.NoError(t, err)

	debit, _, err := store.Transfer(src.AccountNumber, dst.AccountNumber, decimal.RequireFromString("250.75"), "invoice 42")
	require.NoError(t, err)
	return debit.Reference, src.AccountNumber, dst.AccountNumber
}

func TestSettlementService_ExportPacs008(t *testing.T) {
	store, service := newSettlementHarness(t)
	reference, debtor, _ := seedSettledTransfer(t, store)

	t.Run("exports the transfer oriented by the debtor", func(t *testing.T) {
		w := postJSON(t, service.ExportPacs008, "/settlement/pacs008", models.SettlementExportRequest{
			Reference:     reference,
			DebtorAccount: debtor,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response exportResponse
		json.Unmarshal(w.Body.Bytes(), &response)

		assert.Equal(t, "exported", response.Status)
		assert.Equal(t, "pacs.008.001.08", response.MessageType)
		assert.True(t, strings.HasPrefix(response.XML, "<?xml"))
		assert.Contains(t, response.XML, "Amina Okafor")
		assert.Contains(t, response.XML, "Jonas Weber")
		assert.Contains(t, response.XML, "250.75")
		assert.Contains(t, response.XML, reference)
	})

	t.Run("routes the creditor agent by BIC when given", func(t *testing.T) {
		w := postJSON(t, service.ExportPacs008, "/settlement/pacs008", models.SettlementExportRequest{
			Reference:     reference,
			DebtorAccount: debtor,
			CreditorBIC:   "BNPAFRPP",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response exportResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Contains(t, response.XML, "BNPAFRPP")
	})

	t.Run("unknown reference", func(t *testing.T) {
		w := postJSON(t, service.ExportPacs008, "/settlement/pacs008", models.SettlementExportRequest{
			Reference:     "TRF-ffffffff",
			DebtorAccount: debtor,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		var response ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Contains(t, response.Error, "not found")
	})

	t.Run("unknown debtor account", func(t *testing.T) {
		w := postJSON(t, service.ExportPacs008, "/settlement/pacs008", models.SettlementExportRequest{
			Reference:     reference,
			DebtorAccount: "9999999999",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed debtor account", func(t *testing.T) {
		w := postJSON(t, service.ExportPacs008, "/settlement/pacs008", models.SettlementExportRequest{
			Reference:     reference,
			DebtorAccount: "12",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid request body", func(t *testing.T) {
		w := postJSON(t, service.ExportPacs008, "/settlement/pacs008", []byte(`{`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSettlementService_ExportPacs002(t *testing.T) {
	store, service := newSettlementHarness(t)
	reference, debtor, _ := seedSettledTransfer(t, store)

	t.Run("defaults to ACCP", func(t *testing.T) {
		w := postJSON(t, service.ExportPacs002, "/settlement/pacs002", models.SettlementExportRequest{
			Reference:     reference,
			DebtorAccount: debtor,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response exportResponse
		json.Unmarshal(w.Body.Bytes(), &response)

		assert.Equal(t, "ACCP", response.Status)
		assert.Equal(t, "pacs.002.001.08", response.MessageType)
		assert.Contains(t, response.XML, "ACCP")
		assert.Contains(t, response.XML, reference)
	})

	t.Run("carries an explicit status", func(t *testing.T) {
		w := postJSON(t, service.ExportPacs002, "/settlement/pacs002", models.SettlementExportRequest{
			Reference:     reference,
			DebtorAccount: debtor,
			Status:        "RJCT",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response exportResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "RJCT", response.Status)
		assert.Contains(t, response.XML, "RJCT")
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		w := postJSON(t, service.ExportPacs002, "/settlement/pacs002", models.SettlementExportRequest{
			Reference:     reference,
			DebtorAccount: debtor,
			Status:        "FAIL",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
