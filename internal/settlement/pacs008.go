// Package settlement builds the interbank leg of a completed transfer as
// ISO 20022 pacs.008, plus the matching pacs.002 status report.
package settlement

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moov-io/iso20022/pkg/common"
	"github.com/moov-io/iso20022/pkg/pacs_v08"
	"github.com/shopspring/decimal"

	"github.com/swiftalliance/backend/internal/models"
)

// Transaction status codes for pacs.002 reports.
const (
	StatusAccepted = "ACCP"
	StatusSettled  = "ACSC"
	StatusRejected = "RJCT"
)

const defaultInstitutionBIC = "SWALGB2LXXX"

// Instruction carries everything the exporter needs from a ledger transfer.
// The ledger stores two linked legs; callers pass the debit leg's reference
// and the party names resolved from the customer records.
type Instruction struct {
	TransactionID    string
	EndToEndID       string
	Amount           decimal.Decimal
	Currency         string
	SettlementDate   time.Time
	DebtorName       string
	CreditorName     string
	CreditorBIC      string
	ClearingMemberID string
}

// Exporter renders settlement messages for one institution.
type Exporter struct {
	institutionBIC string
}

func NewExporter(institutionBIC string) *Exporter {
	bic := strings.ToUpper(strings.TrimSpace(institutionBIC))
	if bic == "" {
		bic = defaultInstitutionBIC
	}
	return &Exporter{institutionBIC: bic}
}

func (e *Exporter) validate(in *Instruction) error {
	if strings.TrimSpace(in.DebtorName) == "" {
		return models.NewValidationError("debtor_name", "required")
	}
	if strings.TrimSpace(in.CreditorName) == "" {
		return models.NewValidationError("creditor_name", "required")
	}
	if !in.Amount.IsPositive() {
		return models.NewValidationError("amount", "must be positive")
	}
	if len(in.Currency) != 3 {
		return models.NewValidationError("currency", "must be a 3-letter ISO code")
	}
	return nil
}

// BuildPacs008 creates a pacs.008 FIToFICustomerCreditTransfer for the
// instruction. Missing ids are generated so a bare ledger transfer can still
// be exported.
func (e *Exporter) BuildPacs008(in *Instruction) (*pacs_v08.FIToFICustomerCreditTransferV08, error) {
	if err := e.validate(in); err != nil {
		return nil, err
	}

	txID := in.TransactionID
	if txID == "" {
		txID = uuid.New().String()
	}
	endToEndID := in.EndToEndID
	if endToEndID == "" {
		endToEndID = txID
	}
	settlementDate := in.SettlementDate
	if settlementDate.IsZero() {
		settlementDate = time.Now().UTC()
	}

	amount := in.Amount.Round(2).InexactFloat64()
	msgID := uuid.New().String()
	creDtTm := time.Now()

	cdtrAgt := pacs_v08.BranchAndFinancialInstitutionIdentification6{}
	if in.CreditorBIC != "" {
		cdtrAgt.FinInstnId = pacs_v08.FinancialInstitutionIdentification18{
			BICFI: &[]common.BICFIDec2014Identifier{common.BICFIDec2014Identifier(in.CreditorBIC)}[0],
		}
	} else {
		memberID := in.ClearingMemberID
		if memberID == "" {
			memberID = e.institutionBIC
		}
		cdtrAgt.FinInstnId = pacs_v08.FinancialInstitutionIdentification18{
			ClrSysMmbId: &pacs_v08.ClearingSystemMemberIdentification2{
				MmbId: common.Max35Text(memberID),
			},
		}
	}

	doc := &pacs_v08.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs_v08.GroupHeader93{
			MsgId:   common.Max35Text(msgID),
			CreDtTm: common.ISODateTime(creDtTm),
			NbOfTxs: "1",
			TtlIntrBkSttlmAmt: &pacs_v08.ActiveCurrencyAndAmount{
				Ccy:   common.ActiveCurrencyCode(in.Currency),
				Value: amount,
			},
			IntrBkSttlmDt: (*common.ISODate)(&settlementDate),
			SttlmInf: pacs_v08.SettlementInstruction7{
				SttlmMtd: "CLRG",
			},
		},
		CdtTrfTxInf: []pacs_v08.CreditTransferTransaction39{
			{
				PmtId: pacs_v08.PaymentIdentification7{
					InstrId:    &[]common.Max35Text{common.Max35Text(txID)}[0],
					EndToEndId: common.Max35Text(endToEndID),
					TxId:       &[]common.Max35Text{common.Max35Text(txID)}[0],
				},
				IntrBkSttlmAmt: pacs_v08.ActiveCurrencyAndAmount{
					Ccy:   common.ActiveCurrencyCode(in.Currency),
					Value: amount,
				},
				IntrBkSttlmDt: (*common.ISODate)(&settlementDate),
				ChrgBr:        "SLEV",
				DbtrAgt: pacs_v08.BranchAndFinancialInstitutionIdentification6{
					FinInstnId: pacs_v08.FinancialInstitutionIdentification18{
						BICFI: &[]common.BICFIDec2014Identifier{common.BICFIDec2014Identifier(e.institutionBIC)}[0],
					},
				},
				Dbtr: pacs_v08.PartyIdentification135{
					Nm: &[]common.Max140Text{common.Max140Text(in.DebtorName)}[0],
				},
				CdtrAgt: cdtrAgt,
				Cdtr: pacs_v08.PartyIdentification135{
					Nm: &[]common.Max140Text{common.Max140Text(in.CreditorName)}[0],
				},
			},
		},
	}

	return doc, nil
}

// BuildPacs002 creates the payment status report acknowledging the
// instruction. An empty status defaults to accepted.
func (e *Exporter) BuildPacs002(in *Instruction, status string) (*pacs_v08.FIToFIPaymentStatusReportV08, error) {
	if in.TransactionID == "" {
		return nil, models.NewValidationError("transaction_id", "required")
	}
	if status == "" {
		status = StatusAccepted
	}
	endToEndID := in.EndToEndID
	if endToEndID == "" {
		endToEndID = in.TransactionID
	}

	doc := &pacs_v08.FIToFIPaymentStatusReportV08{
		GrpHdr: pacs_v08.GroupHeader53{
			MsgId:   common.Max35Text(uuid.New().String()),
			CreDtTm: common.ISODateTime(time.Now()),
		},
		TxInfAndSts: []pacs_v08.PaymentTransaction80{
			{
				OrgnlInstrId:    &[]common.Max35Text{common.Max35Text(in.TransactionID)}[0],
				OrgnlEndToEndId: &[]common.Max35Text{common.Max35Text(endToEndID)}[0],
				OrgnlTxId:       &[]common.Max35Text{common.Max35Text(in.TransactionID)}[0],
				TxSts:           &[]pacs_v08.ExternalPaymentTransactionStatus1Code{pacs_v08.ExternalPaymentTransactionStatus1Code(status)}[0],
			},
		},
	}

	return doc, nil
}

// ToXML renders a settlement document with the standard XML header.
func (e *Exporter) ToXML(doc interface{}) (string, error) {
	xmlData, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal XML: %w", err)
	}
	return xml.Header + string(xmlData), nil
}
