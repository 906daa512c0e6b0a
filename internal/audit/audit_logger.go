// Package audit emits structured audit events for ledger mutations and
// message dispatch. Events go to the process log as single-line JSON so they
// can be shipped without a separate pipeline.
package audit

import (
	"encoding/json"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

type AuditEvent struct {
	Timestamp     time.Time `json:"timestamp"`
	EventType     string    `json:"event_type"`
	Reference     string    `json:"reference"`
	AccountNumber string    `json:"account_number,omitempty"`
	Amount        string    `json:"amount,omitempty"`
	Status        string    `json:"status"`
	Details       any       `json:"details"`
}

type AuditLogger struct{}

func NewAuditLogger() *AuditLogger {
	return &AuditLogger{}
}

func (a *AuditLogger) LogTransfer(reference, fromAccount, toAccount string, amount decimal.Decimal, status string) {
	event := AuditEvent{
		Timestamp: time.Now(),
		EventType: "TRANSFER",
		Reference: reference,
		Amount:    amount.StringFixed(2),
		Status:    status,
		Details: map[string]string{
			"from_account": fromAccount,
			"to_account":   toAccount,
		},
	}
	a.log(event)
}

func (a *AuditLogger) LogError(reference, accountNumber string, err error) {
	event := AuditEvent{
		Timestamp:     time.Now(),
		EventType:     "ERROR",
		Reference:     reference,
		AccountNumber: accountNumber,
		Status:        "FAILED",
		Details:       map[string]string{"error": err.Error()},
	}
	a.log(event)
}

func (a *AuditLogger) LogOperation(reference, accountNumber, operation, details string) {
	event := AuditEvent{
		Timestamp:     time.Now(),
		EventType:     operation,
		Reference:     reference,
		AccountNumber: accountNumber,
		Status:        "SUCCESS",
		Details:       map[string]string{"details": details},
	}
	a.log(event)
}

func (a *AuditLogger) log(event AuditEvent) {
	data, _ := json.Marshal(event)
	log.Printf("AUDIT: %s", string(data))
}
