package report

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/axis-portal/internal/schemas"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Sample(t *testing.T) {
	raw, err := json.Marshal(SampleDocument())
	require.NoError(t, err)

	doc, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, SampleDocument(), doc)
}

func TestDecode_Minimal(t *testing.T) {
	raw := `{"executiveSummary":{"overview":"Short"},"recommendations":{}}`
	doc, err := Decode([]byte(raw))
	require.NoError(t, err)
	assert.Nil(t, doc.BudgetSummary)
	assert.Nil(t, doc.Timeline)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{"executiveSummary":`},
		{name: "missing summary", raw: `{"recommendations":{}}`},
		{name: "empty overview", raw: `{"executiveSummary":{"overview":""},"recommendations":{}}`},
		{name: "unknown category", raw: `{"executiveSummary":{"overview":"x"},"recommendations":{"governance":[]}}`},
		{name: "bad priority", raw: `{"executiveSummary":{"overview":"x"},"recommendations":{"training":[{"title":"t","priority":"urgent"}]}}`},
		{name: "timeline as bare array", raw: `{"executiveSummary":{"overview":"x"},"recommendations":{},"timeline":[]}`},
		{name: "percentage over 100", raw: `{"executiveSummary":{"overview":"x"},"recommendations":{},"budgetSummary":{"totalBudget":1,"items":[{"category":"a","amount":1,"percentage":101}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			var invalid *InvalidDocumentError
			require.ErrorAs(t, err, &invalid)

			var verr *schemas.ValidationError
			assert.ErrorAs(t, invalid.Cause, &verr)
			assert.Contains(t, err.Error(), "invalid report content")
		})
	}
}

func TestInvalidDocumentError_Unwrap(t *testing.T) {
	cause := &types.DocumentError{Path: "executiveSummary", Message: "is required"}
	err := &InvalidDocumentError{Cause: cause}

	var docErr *types.DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "executiveSummary", docErr.Path)
}
