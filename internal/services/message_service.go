package services

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/swiftalliance/backend/internal/audit"
	"github.com/swiftalliance/backend/internal/codec"
	"github.com/swiftalliance/backend/internal/config"
	"github.com/swiftalliance/backend/internal/dispatch"
	"github.com/swiftalliance/backend/internal/models"
	"github.com/swiftalliance/backend/internal/schema"
)

// MessageService renders, validates, and dispatches SWIFT MT103 and ISO 20022
// pain.001 messages. It never touches ledger balances; payment records are
// transient inputs assembled per request.
type MessageService struct {
	validator     *ValidationHelper
	assets        *config.AssetStore
	sendLog       *dispatch.SendLog
	audit         *audit.AuditLogger
	defaultSchema string
}

// GenerateResponse carries a rendered message plus the validator's verdict on
// it, mirroring the operator's generate-then-check flow.
type GenerateResponse struct {
	Message    models.GeneratedMessage `json:"message"`
	Validation models.ValidationResult `json:"validation"`
}

// EPCQRResponse is an EPC069-12 payload with its QR image.
type EPCQRResponse struct {
	Payload  string `json:"payload"`
	ImagePNG string `json:"image_png_base64"`
}

func NewMessageService(validator *ValidationHelper, assets *config.AssetStore, sendLog *dispatch.SendLog, auditLogger *audit.AuditLogger, defaultSchemaPath string) *MessageService {
	return &MessageService{
		validator:     validator,
		assets:        assets,
		sendLog:       sendLog,
		audit:         auditLogger,
		defaultSchema: defaultSchemaPath,
	}
}

// schemaPath resolves the XSD used for pain.001 validation: an explicit
// override wins, then the configured schema, then the bundled default.
func (s *MessageService) schemaPath(override string) string {
	if override != "" {
		return override
	}
	if cfg := s.assets.Get(); cfg.SchemaPath != "" {
		return cfg.SchemaPath
	}
	return s.defaultSchema
}

// BuildPayment validates and normalizes a payment record
// @Summary Build payment record
// @Description Validate the payment fields and return the normalized record the codecs consume
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.PaymentRequest true "Payment fields"
// @Success 200 {object} models.PaymentRecord "Normalized payment record"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /messages/payment [post]
func (s *MessageService) BuildPayment(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePaymentRequest(w, r)
	if !ok {
		return
	}

	record, err := codec.FromRequest(req)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// GenerateMT103 renders an MT103 message
// @Summary Generate MT103
// @Description Render the payment as a SWIFT MT103 message and run the structural check on it
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.PaymentRequest true "Payment fields"
// @Success 200 {object} GenerateResponse "Rendered message"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /messages/mt103 [post]
func (s *MessageService) GenerateMT103(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePaymentRequest(w, r)
	if !ok {
		return
	}

	record, err := codec.FromRequest(req)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	message := codec.GenerateMT103(record)
	valid, issues := codec.ValidateMT103(message)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GenerateResponse{
		Message: models.GeneratedMessage{
			MessageType: "MT103",
			Reference:   record.Reference,
			Content:     message,
		},
		Validation: models.ValidationResult{Valid: valid, Issues: issues},
	})
}

// GeneratePain001 renders a pain.001 document
// @Summary Generate pain.001
// @Description Render the payment as an ISO 20022 pain.001.001.03 document and validate it against the active schema
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.PaymentRequest true "Payment fields"
// @Success 200 {object} GenerateResponse "Rendered document"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /messages/pain001 [post]
func (s *MessageService) GeneratePain001(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePaymentRequest(w, r)
	if !ok {
		return
	}

	record, err := codec.FromRequest(req)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	document, err := codec.GeneratePain001(record)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	// A missing schema downgrades to an advisory issue; the document itself
	// was still rendered.
	valid, issues, err := schema.ValidatePain001(document, s.schemaPath(""))
	if err != nil {
		valid, issues = false, []string{err.Error()}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GenerateResponse{
		Message: models.GeneratedMessage{
			MessageType: "pain.001",
			Reference:   record.Reference,
			Content:     document,
		},
		Validation: models.ValidationResult{Valid: valid, Issues: issues},
	})
}

// ValidateMT103 checks MT103 text
// @Summary Validate MT103
// @Description Run the structural checks on an MT103 message and list any violations
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.ValidateMT103Request true "Message text"
// @Success 200 {object} models.ValidationResult "Validation outcome"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /messages/mt103/validate [post]
func (s *MessageService) ValidateMT103(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.ValidateMT103Request
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

	valid, issues := codec.ValidateMT103(req.Message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ValidationResult{Valid: valid, Issues: issues})
}

// ValidatePain001 checks a pain.001 document against an XSD
// @Summary Validate pain.001
// @Description Validate an ISO 20022 document against the active schema, or one named in the request
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.ValidatePain001Request true "Document and optional schema path"
// @Success 200 {object} models.ValidationResult "Validation outcome"
// @Failure 400 {object} ErrorResponse "Malformed document"
// @Failure 424 {object} ErrorResponse "Schema unavailable"
// @Router /messages/pain001/validate [post]
func (s *MessageService) ValidatePain001(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.ValidatePain001Request
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

	valid, issues, err := schema.ValidatePain001(req.Document, s.schemaPath(req.SchemaPath))
	if err != nil {
		SendDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ValidationResult{Valid: valid, Issues: issues})
}

// Dispatch records a message in the send log
// @Summary Dispatch message
// @Description Append the message to the send log and queue it to the Redis outbox when available
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.DispatchRequest true "Message to dispatch"
// @Success 201 {object} models.DispatchReceipt "Dispatch receipt"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Send log unavailable"
// @Router /messages/dispatch [post]
func (s *MessageService) Dispatch(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.DispatchRequest
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

	receipt, err := s.sendLog.Send(r.Context(), req.MessageType, req.Reference, req.Content)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	s.audit.LogOperation(receipt.Reference, "", "DISPATCH", req.MessageType+" digest "+receipt.Digest)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(receipt)
}

// GenerateEPCQR renders a scan-to-pay QR code
// @Summary Generate EPC QR
// @Description Render the EPC069-12 payload for a EUR payment and encode it as a QR image
// @Tags messages
// @Accept json
// @Produce json
// @Param request body models.PaymentRequest true "Payment fields"
// @Success 200 {object} EPCQRResponse "Payload and PNG image"
// @Failure 400 {object} ErrorResponse "Invalid request or non-EUR payment"
// @Router /messages/epc-qr [post]
func (s *MessageService) GenerateEPCQR(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePaymentRequest(w, r)
	if !ok {
		return
	}

	record, err := codec.FromRequest(req)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	payload, image, err := codec.GenerateQRCode(record)
	if err != nil {
		SendDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(EPCQRResponse{Payload: payload, ImagePNG: image})
}

func (s *MessageService) decodePaymentRequest(w http.ResponseWriter, r *http.Request) (models.PaymentRequest, bool) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req models.PaymentRequest
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
