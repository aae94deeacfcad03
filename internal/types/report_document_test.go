//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalDocument() *ReportDocument {
	return &ReportDocument{
		ExecutiveSummary: &ExecutiveSummary{Overview: "Roadmap for 2030."},
		Recommendations: map[RecommendationCategory][]Recommendation{
			RecommendationEnvironmental: {{Title: "Rooftop solar", Priority: PriorityHigh}},
		},
	}
}

func TestReportDocument_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *ReportDocument)
		wantPath string
	}{
		{name: "minimal document", mutate: func(*ReportDocument) {}},
		{name: "missing executive summary", mutate: func(d *ReportDocument) { d.ExecutiveSummary = nil }, wantPath: "executiveSummary"},
		{name: "empty overview", mutate: func(d *ReportDocument) { d.ExecutiveSummary.Overview = "" }, wantPath: "executiveSummary.overview"},
		{name: "missing recommendations", mutate: func(d *ReportDocument) { d.Recommendations = nil }, wantPath: "recommendations"},
		{
			name: "unknown category",
			mutate: func(d *ReportDocument) {
				d.Recommendations["governance"] = []Recommendation{{Title: "Board", Priority: PriorityLow}}
			},
			wantPath: "recommendations.governance",
		},
		{
			name: "unknown priority",
			mutate: func(d *ReportDocument) {
				d.Recommendations[RecommendationEnvironmental][0].Priority = "urgent"
			},
			wantPath: "recommendations.environmental[0].priority",
		},
		{
			name: "budget item without category",
			mutate: func(d *ReportDocument) {
				d.BudgetSummary = &BudgetSummary{TotalBudget: 10, Items: []BudgetItem{{Amount: 10, Percentage: 100}}}
			},
			wantPath: "budgetSummary.items[0].category",
		},
		{
			name: "phase without name",
			mutate: func(d *ReportDocument) {
				d.Timeline = &Timeline{Phases: []Phase{{Period: "2024"}}}
			},
			wantPath: "timeline.phases[0].name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := minimalDocument()
			tt.mutate(doc)
			err := doc.Validate()
			if tt.wantPath == "" {
				require.NoError(t, err)
				return
			}
			var docErr *DocumentError
			require.True(t, errors.As(err, &docErr))
			assert.Equal(t, tt.wantPath, docErr.Path)
		})
	}
}

func TestReportDocument_UnmarshalCategoryKeys(t *testing.T) {
	raw := `{
		"executiveSummary": {"overview": "x"},
		"recommendations": {"community": [{"title": "Schools", "priority": "medium"}]},
		"timeline": {"phases": [{"name": "Foundation", "period": "2024 Q1-Q2", "milestones": ["a", "b"]}]}
	}`
	var doc ReportDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.Len(t, doc.Recommendations[RecommendationCommunity], 1)
	assert.Equal(t, PriorityMedium, doc.Recommendations[RecommendationCommunity][0].Priority)
	require.NotNil(t, doc.Timeline)
	assert.Equal(t, []string{"a", "b"}, doc.Timeline.Phases[0].Milestones)
	assert.Nil(t, doc.BudgetSummary)
	assert.NoError(t, doc.Validate())
}

func TestBudgetSummary_Advisories(t *testing.T) {
	t.Run("consistent budget", func(t *testing.T) {
		b := &BudgetSummary{
			TotalBudget: 100,
			Items: []BudgetItem{
				{Category: "A", Amount: 60, Percentage: 60},
				{Category: "B", Amount: 40, Percentage: 40},
			},
		}
		assert.Empty(t, b.Advisories())
	})

	t.Run("mismatched sums are reported, not rejected", func(t *testing.T) {
		b := &BudgetSummary{
			TotalBudget: 100,
			Items: []BudgetItem{
				{Category: "A", Amount: 60, Percentage: 38},
				{Category: "B", Amount: 30, Percentage: 17},
			},
		}
		notes := b.Advisories()
		assert.Len(t, notes, 2)

		doc := minimalDocument()
		doc.BudgetSummary = b
		assert.NoError(t, doc.Validate())
	})

	t.Run("nil summary", func(t *testing.T) {
		var b *BudgetSummary
		assert.Nil(t, b.Advisories())
	})
}
