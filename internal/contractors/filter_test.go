package contractors

import (
	"testing"

	"github.com/jonathan/axis-portal/internal/types"
	"github.com/stretchr/testify/assert"
)

func names(list []types.Contractor) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	all := SampleContractors()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "no filter returns everything in order",
			query: Query{Category: types.CategoryAll},
			want:  names(all),
		},
		{
			name:  "empty category means all",
			query: Query{},
			want:  names(all),
		},
		{
			name:  "search matches name case-insensitively",
			query: Query{Search: "SOLARtech"},
			want:  []string{"SolarTech Egypt"},
		},
		{
			name:  "search matches description",
			query: Query{Search: "circular economy"},
			want:  []string{"EcoWaste Management"},
		},
		{
			name:  "search hits several, order kept",
			query: Query{Search: "sustainable"},
			want:  []string{"AquaSave Solutions", "Green Build Co.", "Nile Valley NGO"},
		},
		{
			name:  "category only",
			query: Query{Category: types.CategoryNGO},
			want:  []string{"Nile Valley NGO"},
		},
		{
			name:  "search and category combined",
			query: Query{Search: "sustainable", Category: types.CategoryGreenBuilding},
			want:  []string{"Green Build Co."},
		},
		{
			name:  "no match",
			query: Query{Search: "nuclear"},
			want:  []string{},
		},
		{
			name:  "category with no members",
			query: Query{Category: types.CategorySustainableAgriculture},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(all, tt.query)))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	q := Query{Search: "egypt", Category: types.CategoryRenewableEnergy}
	once := Filter(SampleContractors(), q)
	twice := Filter(once, q)
	assert.Equal(t, once, twice)
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	all := SampleContractors()
	_ = Filter(all, Query{Category: types.CategoryNGO})
	assert.Equal(t, SampleContractors(), all)
}

func TestCategoryOptions(t *testing.T) {
	opts := CategoryOptions()
	assert.Len(t, opts, 8)
	assert.Equal(t, Option{Value: types.CategoryAll, Label: "All Categories"}, opts[0])
	assert.Equal(t, "NGO Partner", opts[7].Label)
}

func TestBadgeClass(t *testing.T) {
	assert.Equal(t, "badge-purple", BadgeClass(types.CategoryNGO))
	assert.Equal(t, "badge-gray", BadgeClass("unknown"))
}
