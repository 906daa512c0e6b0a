package codec

import (
	"encoding/xml"
	"fmt"
	"log"
	"time"

	"github.com/swiftalliance/backend/internal/models"
)

// Pain001Namespace is the ISO 20022 customer credit transfer initiation
// namespace this codec emits.
const Pain001Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"

// Pain001Document is the root of a pain.001.001.03 message. The model covers
// the subset of the standard this codec emits, not the full schema.
type Pain001Document struct {
	XMLName          xml.Name                         `xml:"Document"`
	Xmlns            string                           `xml:"xmlns,attr"`
	CstmrCdtTrfInitn CustomerCreditTransferInitiation `xml:"CstmrCdtTrfInitn"`
}

type CustomerCreditTransferInitiation struct {
	GrpHdr GroupHeader          `xml:"GrpHdr"`
	PmtInf []PaymentInstruction `xml:"PmtInf"`
}

type GroupHeader struct {
	MsgId    string              `xml:"MsgId"`
	CreDtTm  string              `xml:"CreDtTm"`
	NbOfTxs  string              `xml:"NbOfTxs"`
	CtrlSum  string              `xml:"CtrlSum"`
	InitgPty PartyIdentification `xml:"InitgPty"`
}

type PartyIdentification struct {
	Nm string `xml:"Nm,omitempty"`
}

type PaymentInstruction struct {
	PmtInfId    string                      `xml:"PmtInfId"`
	PmtMtd      string                      `xml:"PmtMtd"`
	NbOfTxs     string                      `xml:"NbOfTxs"`
	CtrlSum     string                      `xml:"CtrlSum"`
	ReqdExctnDt string                      `xml:"ReqdExctnDt"`
	Dbtr        PartyIdentification         `xml:"Dbtr"`
	DbtrAcct    CashAccount                 `xml:"DbtrAcct"`
	CdtTrfTxInf []CreditTransferTransaction `xml:"CdtTrfTxInf"`
}

type CashAccount struct {
	Id AccountIdentification `xml:"Id"`
}

type AccountIdentification struct {
	IBAN string `xml:"IBAN"`
}

type CreditTransferTransaction struct {
	PmtId    PaymentIdentification          `xml:"PmtId"`
	Amt      AmountType                     `xml:"Amt"`
	CdtrAgt  *BranchAndFinancialInstitution `xml:"CdtrAgt,omitempty"`
	Cdtr     PartyIdentification            `xml:"Cdtr"`
	CdtrAcct CashAccount                    `xml:"CdtrAcct"`
	RmtInf   *RemittanceInformation         `xml:"RmtInf,omitempty"`
}

type PaymentIdentification struct {
	EndToEndId string `xml:"EndToEndId"`
}

type AmountType struct {
	InstdAmt ActiveAmount `xml:"InstdAmt"`
}

// ActiveAmount renders as <InstdAmt Ccy="EUR">250.00</InstdAmt>.
type ActiveAmount struct {
	Value string `xml:",chardata"`
	Ccy   string `xml:"Ccy,attr"`
}

type BranchAndFinancialInstitution struct {
	FinInstnId FinancialInstitutionIdentification `xml:"FinInstnId"`
}

type FinancialInstitutionIdentification struct {
	BIC string `xml:"BIC"`
}

type RemittanceInformation struct {
	Ustrd []string `xml:"Ustrd"`
}

// GeneratePain001 renders the payment record as a pretty-printed
// pain.001.001.03 document. Output is deterministic for a given record
// except for the creation timestamp and the generated message/payment ids.
func GeneratePain001(record *models.PaymentRecord) (string, error) {
	now := time.Now().UTC()
	amount := record.Amount.Round(2).StringFixed(2)

	executionDate := record.ValueDate
	if _, err := time.Parse("2006-01-02", executionDate); err != nil {
		log.Printf("[CODEC] Value date %q is not an ISO date, substituting today", record.ValueDate)
		executionDate = now.Format("2006-01-02")
	}

	tx := CreditTransferTransaction{
		PmtId: PaymentIdentification{EndToEndId: record.Reference},
		Amt: AmountType{InstdAmt: ActiveAmount{
			Value: amount,
			Ccy:   record.Currency,
		}},
		Cdtr:     PartyIdentification{Nm: record.BeneficiaryName},
		CdtrAcct: CashAccount{Id: AccountIdentification{IBAN: record.BeneficiaryAccount}},
	}
	if record.BeneficiaryBIC != "" {
		tx.CdtrAgt = &BranchAndFinancialInstitution{
			FinInstnId: FinancialInstitutionIdentification{BIC: record.BeneficiaryBIC},
		}
	}
	if record.RemittanceInfo != "" {
		tx.RmtInf = &RemittanceInformation{Ustrd: []string{record.RemittanceInfo}}
	}

	doc := Pain001Document{
		Xmlns: Pain001Namespace,
		CstmrCdtTrfInitn: CustomerCreditTransferInitiation{
			GrpHdr: GroupHeader{
				MsgId:    "MSG-" + now.Format("20060102150405"),
				CreDtTm:  now.Format("2006-01-02T15:04:05Z"),
				NbOfTxs:  "1",
				CtrlSum:  amount,
				InitgPty: PartyIdentification{Nm: record.OrderingName},
			},
			PmtInf: []PaymentInstruction{{
				PmtInfId:    "PMT-" + now.Format("20060102150405"),
				PmtMtd:      "TRF",
				NbOfTxs:     "1",
				CtrlSum:     amount,
				ReqdExctnDt: executionDate,
				Dbtr:        PartyIdentification{Nm: record.OrderingName},
				DbtrAcct:    CashAccount{Id: AccountIdentification{IBAN: record.OrderingAccount}},
				CdtTrfTxInf: []CreditTransferTransaction{tx},
			}},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal pain.001 document: %w", err)
	}
	return xml.Header + string(out), nil
}
