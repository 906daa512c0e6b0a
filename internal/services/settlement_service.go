package services

import (
	"encoding/json"
	"net/http"

	"github.com/swiftalliance/backend/internal/audit"
	"github.com/swiftalliance/backend/internal/ledger"
	"github.com/swiftalliance/backend/internal/models"
	"github.com/swiftalliance/backend/internal/settlement"
)

// SettlementService exports posted ledger transfers as ISO 20022 interbank
// messages. The ledger keeps two linked legs per transfer; the request names
// the debtor leg so the export knows which party owes.
type SettlementService struct {
	store     *ledger.Store
	exporter  *settlement.Exporter
	validator *ValidationHelper
	audit     *audit.AuditLogger
}

func NewSettlementService(store *ledger.Store, exporter *settlement.Exporter, validator *ValidationHelper, auditLogger *audit.AuditLogger) *SettlementService {
	return &SettlementService{
		store:     store,
		exporter:  exporter,
		validator: validator,
		audit:     auditLogger,
	}
}

// ExportPacs008 renders a transfer as a pacs.008 credit transfer
// @Summary Export pacs.008
// @Description Render a posted ledger transfer as an ISO 20022 FIToFICustomerCreditTransfer document
// @Tags settlement
// @Accept json
// @Produce json
// @Param request body models.SettlementExportRequest true "Transfer to export"
// @Success 200 {object} object{status=string,messageType=string,xml=string}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Transfer not found"
// @Router /settlement/pacs008 [post]
func (s *SettlementService) ExportPacs008(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.SettlementExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	instruction, err := s.instructionFor(req)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	doc, err := s.exporter.BuildPacs008(instruction)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	xmlData, err := s.exporter.ToXML(doc)
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	s.audit.LogOperation(req.Reference, req.DebtorAccount, "SETTLEMENT_EXPORT", "pacs.008.001.08")

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":      "exported",
		"messageType": "pacs.008.001.08",
		"xml":         xmlData,
	})
}

// ExportPacs002 renders the status report acknowledging a transfer
// @Summary Export pacs.002
// @Description Render the ISO 20022 payment status report for a posted transfer; status defaults to ACCP
// @Tags settlement
// @Accept json
// @Produce json
// @Param request body models.SettlementExportRequest true "Transfer to acknowledge"
// @Success 200 {object} object{status=string,messageType=string,xml=string}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Transfer not found"
// @Router /settlement/pacs002 [post]
func (s *SettlementService) ExportPacs002(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.SettlementExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	instruction, err := s.instructionFor(req)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	status := req.Status
	if status == "" {
		status = settlement.StatusAccepted
	}

	doc, err := s.exporter.BuildPacs002(instruction, status)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	xmlData, err := s.exporter.ToXML(doc)
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	s.audit.LogOperation(req.Reference, req.DebtorAccount, "SETTLEMENT_STATUS", status)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":      status,
		"messageType": "pacs.002.001.08",
		"xml":         xmlData,
	})
}

// instructionFor resolves both legs of the transfer and the party names
// behind them. The debit leg supplies ids, amount, and settlement date.
func (s *SettlementService) instructionFor(req models.SettlementExportRequest) (*settlement.Instruction, error) {
	debit, credit, err := s.store.TransferLegs(req.Reference, req.DebtorAccount)
	if err != nil {
		return nil, err
	}

	debtorName, err := s.partyName(debit.AccountNumber)
	if err != nil {
		return nil, err
	}
	creditorName, err := s.partyName(credit.AccountNumber)
	if err != nil {
		return nil, err
	}

	return &settlement.Instruction{
		TransactionID:  debit.Reference,
		EndToEndID:     debit.ID,
		Amount:         debit.Amount,
		Currency:       debit.Currency,
		SettlementDate: debit.Timestamp,
		DebtorName:     debtorName,
		CreditorName:   creditorName,
		CreditorBIC:    req.CreditorBIC,
	}, nil
}

func (s *SettlementService) partyName(accountNumber string) (string, error) {
	account, err := s.store.Account(accountNumber)
	if err != nil {
		return "", err
	}
	customer, err := s.store.Customer(account.CustomerID)
	if err != nil {
		return "", err
	}
	return customer.FirstName + " " + customer.LastName, nil
}
