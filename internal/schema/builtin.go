package schema

import (
	"errors"
	"log"
	"os"
	"path/filepath"
)

// DefaultSchemaFileName is where the bundled schema lands inside the assets
// directory.
const DefaultSchemaFileName = "pain.001.001.03.xsd"

// EnsureDefaultSchema writes the bundled pain.001 schema into
// <assetsDir>/schemas when no file exists there yet and returns its path.
// It is idempotent and must be called explicitly during startup; nothing
// here runs at import time.
func EnsureDefaultSchema(assetsDir string) (string, error) {
	dir := filepath.Join(assetsDir, "schemas")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, DefaultSchemaFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.WriteFile(path, []byte(BuiltinPain001XSD), 0o644); err != nil {
		return "", err
	}
	log.Printf("[SCHEMA] Wrote bundled pain.001 schema to %s", path)
	return path, nil
}

// BuiltinPain001XSD covers the subset of pain.001.001.03 this codec emits.
// It exists so schema validation works offline out of the box; passing it
// does not guarantee a document passes the full ISO 20022 schema set.
const BuiltinPain001XSD = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"
           targetNamespace="urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"
           elementFormDefault="qualified">

  <xs:element name="Document" type="Document"/>

  <xs:complexType name="Document">
    <xs:sequence>
      <xs:element name="CstmrCdtTrfInitn" type="CustomerCreditTransferInitiationV03"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="CustomerCreditTransferInitiationV03">
    <xs:sequence>
      <xs:element name="GrpHdr" type="GroupHeader32"/>
      <xs:element name="PmtInf" type="PaymentInstructionInformation3" maxOccurs="unbounded"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="GroupHeader32">
    <xs:sequence>
      <xs:element name="MsgId" type="Max35Text"/>
      <xs:element name="CreDtTm" type="ISODateTime"/>
      <xs:element name="NbOfTxs" type="Max15NumericText"/>
      <xs:element name="CtrlSum" type="DecimalNumber" minOccurs="0"/>
      <xs:element name="InitgPty" type="PartyIdentification32"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="PartyIdentification32">
    <xs:sequence>
      <xs:element name="Nm" type="Max140Text" minOccurs="0"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="PaymentInstructionInformation3">
    <xs:sequence>
      <xs:element name="PmtInfId" type="Max35Text"/>
      <xs:element name="PmtMtd" type="PaymentMethod3Code"/>
      <xs:element name="NbOfTxs" type="Max15NumericText" minOccurs="0"/>
      <xs:element name="CtrlSum" type="DecimalNumber" minOccurs="0"/>
      <xs:element name="ReqdExctnDt" type="ISODate"/>
      <xs:element name="Dbtr" type="PartyIdentification32"/>
      <xs:element name="DbtrAcct" type="CashAccount16"/>
      <xs:element name="CdtTrfTxInf" type="CreditTransferTransactionInformation10" maxOccurs="unbounded"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="CashAccount16">
    <xs:sequence>
      <xs:element name="Id" type="AccountIdentification4Choice"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="AccountIdentification4Choice">
    <xs:sequence>
      <xs:element name="IBAN" type="IBAN2007Identifier"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="CreditTransferTransactionInformation10">
    <xs:sequence>
      <xs:element name="PmtId" type="PaymentIdentification1"/>
      <xs:element name="Amt" type="AmountType3Choice"/>
      <xs:element name="CdtrAgt" type="BranchAndFinancialInstitutionIdentification4" minOccurs="0"/>
      <xs:element name="Cdtr" type="PartyIdentification32"/>
      <xs:element name="CdtrAcct" type="CashAccount16"/>
      <xs:element name="RmtInf" type="RemittanceInformation5" minOccurs="0"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="PaymentIdentification1">
    <xs:sequence>
      <xs:element name="EndToEndId" type="Max35Text"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="AmountType3Choice">
    <xs:sequence>
      <xs:element name="InstdAmt" type="ActiveOrHistoricCurrencyAndAmount"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="ActiveOrHistoricCurrencyAndAmount">
    <xs:simpleContent>
      <xs:extension base="xs:decimal">
        <xs:attribute name="Ccy" type="ActiveOrHistoricCurrencyCode" use="required"/>
      </xs:extension>
    </xs:simpleContent>
  </xs:complexType>

  <xs:complexType name="BranchAndFinancialInstitutionIdentification4">
    <xs:sequence>
      <xs:element name="FinInstnId" type="FinancialInstitutionIdentification7"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="FinancialInstitutionIdentification7">
    <xs:sequence>
      <xs:element name="BIC" type="BICIdentifier"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="RemittanceInformation5">
    <xs:sequence>
      <xs:element name="Ustrd" type="Max140Text" minOccurs="0" maxOccurs="unbounded"/>
    </xs:sequence>
  </xs:complexType>

  <xs:simpleType name="Max35Text">
    <xs:restriction base="xs:string">
      <xs:minLength value="1"/>
      <xs:maxLength value="35"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:simpleType name="Max140Text">
    <xs:restriction base="xs:string">
      <xs:minLength value="1"/>
      <xs:maxLength value="140"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:simpleType name="Max15NumericText">
    <xs:restriction base="xs:string">
      <xs:pattern value="[0-9]{1,15}"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:simpleType name="DecimalNumber">
    <xs:restriction base="xs:decimal">
      <xs:fractionDigits value="17"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:simpleType name="ISODate">
    <xs:restriction base="xs:date"/>
  </xs:simpleType>

  <xs:simpleType name="ISODateTime">
    <xs:restriction base="xs:dateTime"/>
  </xs:simpleType>

  <xs:simpleType name="PaymentMethod3Code">
    <xs:restriction base="xs:string">
      <xs:enumeration value="CHK"/>
      <xs:enumeration value="TRF"/>
      <xs:enumeration value="TRA"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:simpleType name="IBAN2007Identifier">
    <xs:restriction base="xs:string">
      <xs:pattern value="[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:simpleType name="BICIdentifier">
    <xs:restriction base="xs:string">
      <xs:pattern value="[A-Z]{6,6}[A-Z2-9][A-NP-Z0-9]([A-Z0-9]{3,3}){0,1}"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:simpleType name="ActiveOrHistoricCurrencyCode">
    <xs:restriction base="xs:string">
      <xs:pattern value="[A-Z]{3,3}"/>
    </xs:restriction>
  </xs:simpleType>
</xs:schema>
`
