package rendering

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/jonathan/axis-portal/internal/contractors"
	"github.com/jonathan/axis-portal/internal/report"
	"github.com/jonathan/axis-portal/internal/types"
)

var statusClasses = map[types.ReportStatus]string{
	types.StatusPending:    "badge-gray",
	types.StatusInProgress: "badge-yellow",
	types.StatusCompleted:  "badge-green",
	types.StatusCancelled:  "badge-red",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"statusLabel": func(s types.ReportStatus) string { return s.Label() },
		"statusClass": func(s types.ReportStatus) string {
			if class, ok := statusClasses[s]; ok {
				return class
			}
			return "badge-gray"
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(report.DateLayout)
		},
		"categoryLabel": func(c types.ContractorCategory) string { return c.Label() },
		"badgeClass":    contractors.BadgeClass,
		"join":          strings.Join,
		"rating":        func(r float64) string { return fmt.Sprintf("%.1f", r) },
		"width":         func(w float64) string { return fmt.Sprintf("%.1f%%", w) },
		"priorityClass": func(p types.Priority) string { return "priority-" + string(p) },
	}
}
