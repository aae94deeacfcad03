// Package contractors implements the contractor directory: the bundled
// fallback list, the one-shot load from the store and the search/category
// filter.
package contractors

import (
	"strings"

	"github.com/jonathan/axis-portal/internal/types"
)

// Query holds the directory filter inputs. An empty Category behaves like
// types.CategoryAll.
type Query struct {
	Search   string                   `json:"search"`
	Category types.ContractorCategory `json:"category"`
}

// Matches reports whether c passes q.
func (q Query) Matches(c types.Contractor) bool {
	if q.Category != "" && q.Category != types.CategoryAll && c.Category != q.Category {
		return false
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle)
}

// Filter returns the contractors matching q in their original order. The input
// is not modified.
func Filter(list []types.Contractor, q Query) []types.Contractor {
	out := make([]types.Contractor, 0, len(list))
	for _, c := range list {
		if q.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// Option is an entry of the category select.
type Option struct {
	Value types.ContractorCategory
	Label string
}

// CategoryOptions lists the select entries, "All Categories" first.
func CategoryOptions() []Option {
	opts := []Option{{Value: types.CategoryAll, Label: types.CategoryAll.Label()}}
	for _, c := range types.ContractorCategories {
		opts = append(opts, Option{Value: c, Label: c.Label()})
	}
	return opts
}

var badgeClasses = map[types.ContractorCategory]string{
	types.CategoryRenewableEnergy:        "badge-yellow",
	types.CategoryWaterManagement:        "badge-blue",
	types.CategoryWasteManagement:        "badge-green",
	types.CategorySustainableAgriculture: "badge-emerald",
	types.CategoryGreenBuilding:          "badge-teal",
	types.CategoryCarbonConsulting:       "badge-gray",
	types.CategoryNGO:                    "badge-purple",
}

// BadgeClass returns the CSS class of a category badge.
func BadgeClass(category types.ContractorCategory) string {
	if class, ok := badgeClasses[category]; ok {
		return class
	}
	return "badge-gray"
}
