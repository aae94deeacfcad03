//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// ReportRequest is the structured intake a prospective client submits.
// CompanyName, Industry and Goals are mandatory; every other field is optional
// but must be one of its enumeration when it is an enumerated field.
type ReportRequest struct {
	CompanyName        string             `json:"company_name" validate:"required,min=2"`
	Industry           Industry           `json:"industry" validate:"required,industry"`
	EmployeeCount      EmployeeCountBand  `json:"employee_count,omitempty" validate:"omitempty,employee_count"`
	AnnualRevenue      string             `json:"annual_revenue,omitempty"`
	CurrentInitiatives string             `json:"current_sustainability_initiatives,omitempty"`
	Goals              string             `json:"goals" validate:"required,min=10"`
	BudgetRange        BudgetRange        `json:"budget_range,omitempty" validate:"omitempty,budget_range"`
	Timeline           TimelinePreference `json:"timeline,omitempty" validate:"omitempty,timeline"`
	AdditionalNotes    string             `json:"additional_notes,omitempty"`
}

// Validate validates the whole request.
func (r *ReportRequest) Validate() error {
	return Validator().Struct(r)
}

// ReportRequestRecord is a persisted report request row.
type ReportRequestRecord struct {
	ID     uuid.UUID    `json:"id"`
	UserID uuid.UUID    `json:"user_id"`
	Status ReportStatus `json:"status"`
	ReportRequest
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
