package codec

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/swiftalliance/backend/internal/models"
)

// Logical terminal address used in the basic header of generated messages.
// This tool renders MT103-shaped text for downstream systems; it does not
// hold a live SWIFT session, so the sender address is a fixed placeholder.
const senderTerminal = "SWALGB2LAXXX"

// GenerateMT103 renders the payment record as an MT103 text block. Tags are
// emitted in fixed order; the amount always carries exactly two fractional
// digits, rounded half up. An unparseable value date falls back to the
// current date.
func GenerateMT103(record *models.PaymentRecord) string {
	valueDate, err := time.Parse("2006-01-02", record.ValueDate)
	if err != nil {
		log.Printf("[CODEC] Value date %q is not an ISO date, substituting today", record.ValueDate)
		valueDate = time.Now().UTC()
	}

	fields := []string{
		":20:" + record.Reference,
		":23B:CRED",
		fmt.Sprintf(":32A:%s%s%s", valueDate.Format("060102"), record.Currency, record.Amount.Round(2).StringFixed(2)),
		fmt.Sprintf(":50K:%s /%s", record.OrderingName, record.OrderingAccount),
		fmt.Sprintf(":59:%s /%s", record.BeneficiaryName, record.BeneficiaryAccount),
	}
	if record.RemittanceInfo != "" {
		fields = append(fields, ":70:"+collapseNewlines(record.RemittanceInfo))
	}
	fields = append(fields, ":71A:SHA")

	var b strings.Builder
	b.WriteString("{1:F01" + senderTerminal + "0000000000}")
	b.WriteString("{2:I103" + receiverTerminal(record.BeneficiaryBIC) + "N}")
	b.WriteString("{4:\n")
	b.WriteString(strings.Join(fields, "\n"))
	b.WriteString("\n-}")
	return b.String()
}

// receiverTerminal pads a BIC to the 12-character logical terminal address
// the application header expects.
func receiverTerminal(bic string) string {
	switch len(bic) {
	case 8:
		return bic + "XXXX"
	case 11:
		return bic[:8] + "X" + bic[8:]
	default:
		return "XXXXXXXXXXXX"
	}
}

func collapseNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

type mt103Tag struct {
	tag     string
	label   string
	content *regexp.Regexp
}

// Each pattern captures from its tag to the next tag boundary, the closing
// block marker, or end of text.
func newMT103Tag(tag, label string) mt103Tag {
	return mt103Tag{
		tag:     tag,
		label:   label,
		content: regexp.MustCompile(`(?s)` + regexp.QuoteMeta(tag) + `(.*?)(?:\n:|\n-\}|$)`),
	}
}

var mt103RequiredTags = []mt103Tag{
	newMT103Tag(":20:", "transaction reference"),
	newMT103Tag(":32A:", "value date/currency/amount"),
	newMT103Tag(":50K:", "ordering customer"),
	newMT103Tag(":59:", "beneficiary customer"),
	newMT103Tag(":71A:", "details of charges"),
}

var field32APattern = regexp.MustCompile(`^\d{6}[A-Z]{3}\d+(\.\d{1,2})?$`)

// ValidateMT103 structurally checks MT103-shaped text: the five mandatory
// tags must be present, :32A: must carry date+currency+amount, and :50K:/:59:
// must be non-empty. All problems are collected; the text is valid only when
// the issue list comes back empty.
func ValidateMT103(message string) (bool, []string) {
	issues := []string{}

	for _, t := range mt103RequiredTags {
		m := t.content.FindStringSubmatch(message)
		if m == nil {
			issues = append(issues, fmt.Sprintf("missing mandatory field %s (%s)", t.tag, t.label))
			continue
		}
		content := strings.TrimSpace(m[1])

		switch t.tag {
		case ":32A:":
			if !field32APattern.MatchString(content) {
				issues = append(issues, fmt.Sprintf("field :32A: has invalid format: %q", content))
			}
		case ":50K:", ":59:":
			if content == "" {
				issues = append(issues, fmt.Sprintf("field %s is present but empty", t.tag))
			}
		}
	}

	return len(issues) == 0, issues
}
