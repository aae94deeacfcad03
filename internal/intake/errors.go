package intake

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

var (
	// ErrAuthRequired is returned when submitting without a signed-in user.
	ErrAuthRequired = eris.New("intake: sign in to submit a report request")
	// ErrNotReady is returned when submitting before the final step.
	ErrNotReady = eris.New("intake: submit is only allowed from the last step")
)

// FieldErrors maps field names to user-facing messages for one step.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "intake: invalid fields: " + strings.Join(parts, "; ")
}

// Message returns the message for field, or "".
func (e *FieldErrors) Message(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}

// SubmissionError wraps a persistence failure. Message is shown to the user.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return "intake: submission failed: " + e.Message
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// fieldMessages holds the message per field and validation tag. The "" tag is
// the fallback for that field.
var fieldMessages = map[string]map[string]string{
	FieldCompanyName: {
		"":         "Company name is required",
		"required": "Company name is required",
		"min":      "Company name is required",
	},
	FieldIndustry: {
		"":         "Please select an industry",
		"required": "Please select an industry",
	},
	FieldEmployeeCount: {
		"": "Please select a valid company size",
	},
	FieldAnnualRevenue: {},
	FieldCurrentInitiatives: {
		"": "Please describe your current initiatives",
	},
	FieldGoals: {
		"":         "Please describe your sustainability goals",
		"required": "Please describe your sustainability goals",
		"min":      "Please describe your sustainability goals",
	},
	FieldBudgetRange: {
		"": "Please select a valid budget range",
	},
	FieldTimeline: {
		"": "Please select a valid timeline",
	},
	FieldAdditionalNotes: {},
}

func messageFor(field, tag string) string {
	msgs := fieldMessages[field]
	if msg, ok := msgs[tag]; ok {
		return msg
	}
	if msg, ok := msgs[""]; ok {
		return msg
	}
	return "Invalid value"
}
