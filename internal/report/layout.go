package report

import (
	"slices"
	"time"

	"github.com/jonathan/axis-portal/internal/types"
)

// DateLayout is the "Generated on" date format.
const DateLayout = "January 2, 2006"

// Meta is the report data that lives outside the document itself.
type Meta struct {
	ID          string
	Title       string
	PreparedFor string
	CreatedAt   time.Time
	Sample      bool
}

// Layout is the view model of one report page. Nil or empty sections are
// omitted by the page.
type Layout struct {
	Meta        Meta
	GeneratedOn string
	Summary     *SummarySection
	Tabs        []Tab
	Active      types.RecommendationCategory
	Budget      *BudgetSection
	Timeline    []types.Phase
	Branding    []types.BrandingOpportunity
}

// SummarySection is the executive summary block.
type SummarySection struct {
	Overview string
	Metrics  []types.KeyMetric
}

// Tab is one recommendation category.
type Tab struct {
	Key             types.RecommendationCategory
	Label           string
	Active          bool
	Recommendations []RecommendationView
}

// RecommendationView is a recommendation card.
type RecommendationView struct {
	types.Recommendation
	PriorityLabel string
}

// BudgetSection is the budget allocation table.
type BudgetSection struct {
	Total      string
	Rows       []BudgetRow
	Advisories []string
}

// BudgetRow is one allocation line. Percentage is the stored value; BarWidth
// is the same value clamped to 0..100.
type BudgetRow struct {
	Category   string
	Amount     string
	Percentage string
	BarWidth   float64
}

// DefaultTab is the tab active when a report is first shown.
const DefaultTab = types.RecommendationEnvironmental

// Build maps a document to its layout with the default tab active.
func Build(doc *types.ReportDocument, meta Meta) Layout {
	l := Layout{Meta: meta, Active: DefaultTab}
	if !meta.CreatedAt.IsZero() {
		l.GeneratedOn = meta.CreatedAt.Format(DateLayout)
	}
	if doc == nil {
		l.Tabs = buildTabs(nil, DefaultTab)
		return l
	}

	if es := doc.ExecutiveSummary; es != nil {
		l.Summary = &SummarySection{Overview: es.Overview, Metrics: es.KeyMetrics}
	}
	l.Tabs = buildTabs(doc.Recommendations, DefaultTab)

	if b := doc.BudgetSummary; b != nil {
		section := &BudgetSection{
			Total:      FormatCurrency(b.TotalBudget, b.Currency),
			Advisories: b.Advisories(),
		}
		for _, item := range b.Items {
			section.Rows = append(section.Rows, BudgetRow{
				Category:   item.Category,
				Amount:     FormatCurrency(item.Amount, b.Currency),
				Percentage: FormatPercent(item.Percentage),
				BarWidth:   barWidth(item.Percentage),
			})
		}
		l.Budget = section
	}

	if doc.Timeline != nil && len(doc.Timeline.Phases) > 0 {
		l.Timeline = doc.Timeline.Phases
	}
	if len(doc.BrandingOpportunities) > 0 {
		l.Branding = doc.BrandingOpportunities
	}
	return l
}

// SelectTab returns a copy of l with key active. Unknown keys keep the current
// tab.
func (l Layout) SelectTab(key string) Layout {
	category := types.RecommendationCategory(key)
	if !category.Valid() {
		return l
	}
	l.Tabs = slices.Clone(l.Tabs)
	for i := range l.Tabs {
		l.Tabs[i].Active = l.Tabs[i].Key == category
	}
	l.Active = category
	return l
}

// ActiveTab returns the active tab.
func (l Layout) ActiveTab() Tab {
	for _, t := range l.Tabs {
		if t.Active {
			return t
		}
	}
	return Tab{}
}

func buildTabs(recs map[types.RecommendationCategory][]types.Recommendation, active types.RecommendationCategory) []Tab {
	tabs := make([]Tab, 0, len(types.RecommendationCategories))
	for _, category := range types.RecommendationCategories {
		tab := Tab{Key: category, Label: category.Label(), Active: category == active}
		for _, rec := range recs[category] {
			tab.Recommendations = append(tab.Recommendations, RecommendationView{
				Recommendation: rec,
				PriorityLabel:  PriorityLabel(rec.Priority),
			})
		}
		tabs = append(tabs, tab)
	}
	return tabs
}

// PriorityLabel returns the badge text for p, e.g. "High Priority".
func PriorityLabel(p types.Priority) string {
	switch p {
	case types.PriorityHigh:
		return "High Priority"
	case types.PriorityMedium:
		return "Medium Priority"
	case types.PriorityLow:
		return "Low Priority"
	default:
		return string(p)
	}
}
