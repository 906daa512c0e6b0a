package schema

import (
	"github.com/swiftalliance/backend/internal/models"
)

// ValidatePain001 checks a pain.001 document against the XSD at schemaPath.
// A document that is not well-formed XML yields a MalformedDocumentError and
// the parse failure is also reported as an issue so callers can surface it
// directly. A schema that cannot be read or parsed yields a
// SchemaUnavailableError; that is the caller's cue to restore or re-upload
// the schema file rather than blame the document.
func ValidatePain001(document string, schemaPath string) (bool, []string, error) {
	root, err := parseDocument([]byte(document))
	if err != nil {
		malformed := &models.MalformedDocumentError{Err: err}
		return false, []string{malformed.Error()}, malformed
	}

	sch, err := Load(schemaPath)
	if err != nil {
		return false, nil, &models.SchemaUnavailableError{Path: schemaPath, Err: err}
	}

	issues := sch.ValidateDocument(root)
	return len(issues) == 0, issues, nil
}
