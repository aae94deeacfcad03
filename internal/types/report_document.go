//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ReportDocument is the body of a generated sustainability report. It is
// produced outside this system and stored as a single JSON document per report.
type ReportDocument struct {
	ExecutiveSummary      *ExecutiveSummary                           `json:"executiveSummary"`
	Recommendations       map[RecommendationCategory][]Recommendation `json:"recommendations"`
	BudgetSummary         *BudgetSummary                              `json:"budgetSummary,omitempty"`
	Timeline              *Timeline                                   `json:"timeline,omitempty"`
	BrandingOpportunities []BrandingOpportunity                       `json:"brandingOpportunities,omitempty"`
}

// ExecutiveSummary opens the report.
type ExecutiveSummary struct {
	Overview   string      `json:"overview"`
	KeyMetrics []KeyMetric `json:"keyMetrics,omitempty"`
}

// KeyMetric is a headline figure such as "CO2 Reduction Target: 45,000 tons by 2030".
type KeyMetric struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Period string `json:"period"`
}

// Recommendation is a single execution plan item.
type Recommendation struct {
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Timeline      string   `json:"timeline"`
	Beneficiaries string   `json:"beneficiaries"`
	Impact        string   `json:"impact"`
	Budget        string   `json:"budget"`
	Contractor    string   `json:"contractor"`
	Priority      Priority `json:"priority"`
}

// BudgetSummary breaks the total investment down by category.
type BudgetSummary struct {
	TotalBudget float64      `json:"totalBudget"`
	Currency    string       `json:"currency"`
	Items       []BudgetItem `json:"items"`
}

// BudgetItem is one row of the budget table. Percentage is stored, not derived.
type BudgetItem struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Timeline holds the ordered implementation phases.
type Timeline struct {
	Phases []Phase `json:"phases"`
}

// Phase is one step of the implementation timeline.
type Phase struct {
	Name       string   `json:"name"`
	Period     string   `json:"period"`
	Milestones []string `json:"milestones"`
}

// BrandingOpportunity is a visibility call-out.
type BrandingOpportunity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Report is a persisted report with its decoded content.
type Report struct {
	ID        uuid.UUID       `json:"id"`
	RequestID uuid.UUID       `json:"request_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Title     string          `json:"title"`
	Content   *ReportDocument `json:"content"`
	PDFURL    string          `json:"pdf_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ReportSummary is a report row without its content, used for listings.
type ReportSummary struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// DocumentError reports a report document that is missing a required part.
type DocumentError struct {
	Path    string
	Message string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid report document: %s: %s", e.Path, e.Message)
}

// Validate checks the sub-structures every document must carry. Optional
// sections (budget, timeline, branding) are only checked when present.
func (d *ReportDocument) Validate() error {
	if d.ExecutiveSummary == nil {
		return &DocumentError{Path: "executiveSummary", Message: "is required"}
	}
	if d.ExecutiveSummary.Overview == "" {
		return &DocumentError{Path: "executiveSummary.overview", Message: "is required"}
	}
	if d.Recommendations == nil {
		return &DocumentError{Path: "recommendations", Message: "is required"}
	}
	for category, recs := range d.Recommendations {
		if !category.Valid() {
			return &DocumentError{Path: "recommendations." + string(category), Message: "unknown category"}
		}
		for i, rec := range recs {
			path := fmt.Sprintf("recommendations.%s[%d]", category, i)
			if rec.Title == "" {
				return &DocumentError{Path: path + ".title", Message: "is required"}
			}
			if !rec.Priority.Valid() {
				return &DocumentError{Path: path + ".priority", Message: fmt.Sprintf("unknown priority %q", rec.Priority)}
			}
		}
	}
	if d.BudgetSummary != nil {
		for i, item := range d.BudgetSummary.Items {
			if item.Category == "" {
				return &DocumentError{Path: fmt.Sprintf("budgetSummary.items[%d].category", i), Message: "is required"}
			}
		}
	}
	if d.Timeline != nil {
		for i, phase := range d.Timeline.Phases {
			if phase.Name == "" {
				return &DocumentError{Path: fmt.Sprintf("timeline.phases[%d].name", i), Message: "is required"}
			}
		}
	}
	return nil
}

// Advisories lists budget inconsistencies. They are informational only: item
// amounts are not required to add up to the total, nor percentages to 100.
func (b *BudgetSummary) Advisories() []string {
	if b == nil || len(b.Items) == 0 {
		return nil
	}
	var amount, percentage float64
	for _, item := range b.Items {
		amount += item.Amount
		percentage += item.Percentage
	}

	var notes []string
	if math.Abs(amount-b.TotalBudget) > 0.5 {
		notes = append(notes, fmt.Sprintf("item amounts sum to %.0f, total budget is %.0f", amount, b.TotalBudget))
	}
	if math.Abs(percentage-100) > 0.01 {
		notes = append(notes, fmt.Sprintf("item percentages sum to %g, not 100", percentage))
	}
	return notes
}
