package report

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/axis-portal/internal/schemas"
	"github.com/jonathan/axis-portal/internal/types"
	rootschemas "github.com/jonathan/axis-portal/schemas"
)

var documentSchema = schemas.MustCompile("report_document", rootschemas.ReportDocument)

// InvalidDocumentError is returned when stored report content cannot be shown.
type InvalidDocumentError struct {
	Cause error
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid report content: %v", e.Cause)
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.Cause
}

// Decode validates raw report content against the document schema and the
// structural checks of types.ReportDocument.
func Decode(raw []byte) (*types.ReportDocument, error) {
	if err := documentSchema.Validate(raw); err != nil {
		return nil, &InvalidDocumentError{Cause: err}
	}

	var doc types.ReportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &InvalidDocumentError{Cause: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, &InvalidDocumentError{Cause: err}
	}
	return &doc, nil
}
