//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// Industry is the sector a requesting company operates in.
type Industry string

// Industries accepted by the intake form.
const (
	IndustryManufacturing     Industry = "Manufacturing"
	IndustryOilGas            Industry = "Oil & Gas"
	IndustryConstruction      Industry = "Construction"
	IndustryAgriculture       Industry = "Agriculture"
	IndustryHospitality       Industry = "Hospitality"
	IndustryRetail            Industry = "Retail"
	IndustryHealthcare        Industry = "Healthcare"
	IndustryTechnology        Industry = "Technology"
	IndustryTransportation    Industry = "Transportation"
	IndustryRealEstate        Industry = "Real Estate"
	IndustryFinancialServices Industry = "Financial Services"
	IndustryFoodBeverage      Industry = "Food & Beverage"
	IndustryOther             Industry = "Other"
)

// Industries lists every industry in display order.
var Industries = []Industry{
	IndustryManufacturing,
	IndustryOilGas,
	IndustryConstruction,
	IndustryAgriculture,
	IndustryHospitality,
	IndustryRetail,
	IndustryHealthcare,
	IndustryTechnology,
	IndustryTransportation,
	IndustryRealEstate,
	IndustryFinancialServices,
	IndustryFoodBeverage,
	IndustryOther,
}

// Valid reports whether i is one of Industries.
func (i Industry) Valid() bool { return slices.Contains(Industries, i) }

// EmployeeCountBand is a head-count range.
type EmployeeCountBand string

// EmployeeCountBands lists every band in display order.
var EmployeeCountBands = []EmployeeCountBand{
	"1-50",
	"51-200",
	"201-500",
	"501-1000",
	"1001-5000",
	"5000+",
}

// Valid reports whether b is one of EmployeeCountBands.
func (b EmployeeCountBand) Valid() bool { return slices.Contains(EmployeeCountBands, b) }

// BudgetRange is the budget bracket a company is prepared to spend.
type BudgetRange string

// BudgetRanges lists every bracket in display order.
var BudgetRanges = []BudgetRange{
	"Under EGP 500,000",
	"EGP 500,000 - 1,000,000",
	"EGP 1,000,000 - 5,000,000",
	"EGP 5,000,000 - 10,000,000",
	"EGP 10,000,000+",
	"To be determined",
}

// Valid reports whether r is one of BudgetRanges.
func (r BudgetRange) Valid() bool { return slices.Contains(BudgetRanges, r) }

// TimelinePreference is how soon a company wants to start executing.
type TimelinePreference string

// TimelinePreferences lists every preference in display order.
var TimelinePreferences = []TimelinePreference{
	"Immediate (1-3 months)",
	"Short-term (3-6 months)",
	"Medium-term (6-12 months)",
	"Long-term (12+ months)",
	"Flexible",
}

// Valid reports whether t is one of TimelinePreferences.
func (t TimelinePreference) Valid() bool { return slices.Contains(TimelinePreferences, t) }

// ContractorCategory is the specialty of a directory contractor.
// Values mirror the contractor_type enum in the database schema.
type ContractorCategory string

// Contractor categories.
const (
	CategoryRenewableEnergy        ContractorCategory = "renewable_energy"
	CategoryWaterManagement        ContractorCategory = "water_management"
	CategoryWasteManagement        ContractorCategory = "waste_management"
	CategorySustainableAgriculture ContractorCategory = "sustainable_agriculture"
	CategoryGreenBuilding          ContractorCategory = "green_building"
	CategoryCarbonConsulting       ContractorCategory = "carbon_consulting"
	CategoryNGO                    ContractorCategory = "ngo"

	// CategoryAll is the directory filter sentinel that matches every category.
	CategoryAll ContractorCategory = "all"
)

// ContractorCategories lists every category in display order (CategoryAll excluded).
var ContractorCategories = []ContractorCategory{
	CategoryRenewableEnergy,
	CategoryWaterManagement,
	CategoryWasteManagement,
	CategorySustainableAgriculture,
	CategoryGreenBuilding,
	CategoryCarbonConsulting,
	CategoryNGO,
}

var contractorCategoryLabels = map[ContractorCategory]string{
	CategoryAll:                    "All Categories",
	CategoryRenewableEnergy:        "Renewable Energy",
	CategoryWaterManagement:        "Water Management",
	CategoryWasteManagement:        "Waste Management",
	CategorySustainableAgriculture: "Sustainable Agriculture",
	CategoryGreenBuilding:          "Green Building",
	CategoryCarbonConsulting:       "Carbon Consulting",
	CategoryNGO:                    "NGO Partner",
}

// Valid reports whether c is one of ContractorCategories.
func (c ContractorCategory) Valid() bool { return slices.Contains(ContractorCategories, c) }

// Label returns the display label, or the raw value for unknown categories.
func (c ContractorCategory) Label() string {
	if label, ok := contractorCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ReportStatus is the lifecycle state of a report request.
type ReportStatus string

// Report request statuses.
const (
	StatusPending    ReportStatus = "pending"
	StatusInProgress ReportStatus = "in_progress"
	StatusCompleted  ReportStatus = "completed"
	StatusCancelled  ReportStatus = "cancelled"
)

// ReportStatuses lists every status.
var ReportStatuses = []ReportStatus{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// Valid reports whether s is one of ReportStatuses.
func (s ReportStatus) Valid() bool { return slices.Contains(ReportStatuses, s) }

// Label returns the badge text shown on the dashboard.
func (s ReportStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// AppRole is the authorization role assigned to a user.
type AppRole string

// Roles.
const (
	RoleClient     AppRole = "client"
	RoleContractor AppRole = "contractor"
	RoleAdmin      AppRole = "admin"
)

// AppRoles lists every role.
var AppRoles = []AppRole{RoleClient, RoleContractor, RoleAdmin}

// Valid reports whether r is one of AppRoles.
func (r AppRole) Valid() bool { return slices.Contains(AppRoles, r) }

// Priority ranks a recommendation.
type Priority string

// Priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every priority.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of Priorities.
func (p Priority) Valid() bool { return slices.Contains(Priorities, p) }

// RecommendationCategory keys the recommendations map of a report document.
type RecommendationCategory string

// Recommendation categories.
const (
	RecommendationEnvironmental RecommendationCategory = "environmental"
	RecommendationCommunity     RecommendationCategory = "community"
	RecommendationTraining      RecommendationCategory = "training"
	RecommendationInnovation    RecommendationCategory = "innovation"
)

// RecommendationCategories lists the categories in tab order. The first one is
// the default active tab.
var RecommendationCategories = []RecommendationCategory{
	RecommendationEnvironmental,
	RecommendationCommunity,
	RecommendationTraining,
	RecommendationInnovation,
}

// Valid reports whether c is one of RecommendationCategories.
func (c RecommendationCategory) Valid() bool { return slices.Contains(RecommendationCategories, c) }

// Label returns the tab label.
func (c RecommendationCategory) Label() string {
	switch c {
	case RecommendationEnvironmental:
		return "Environmental"
	case RecommendationCommunity:
		return "Community"
	case RecommendationTraining:
		return "Training"
	case RecommendationInnovation:
		return "Innovation"
	default:
		return string(c)
	}
}
