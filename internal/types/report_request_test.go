//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ReportRequest {
	return ReportRequest{
		CompanyName: "Nile Foods",
		Industry:    IndustryFoodBeverage,
		Goals:       "Cut scope 2 emissions by 30% before 2030",
	}
}

func failedFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validator.ValidationErrors, got %T", err)
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

func TestReportRequest_Validate(t *testing.T) {
	t.Run("minimal valid request", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("all optional enums set", func(t *testing.T) {
		req := validRequest()
		req.EmployeeCount = "201-500"
		req.BudgetRange = "EGP 1,000,000 - 5,000,000"
		req.Timeline = "Flexible"
		assert.NoError(t, req.Validate())
	})

	t.Run("company name too short", func(t *testing.T) {
		req := validRequest()
		req.CompanyName = "N"
		fields := failedFields(t, req.Validate())
		assert.Equal(t, "min", fields["company_name"])
	})

	t.Run("unknown industry", func(t *testing.T) {
		req := validRequest()
		req.Industry = "Mining"
		fields := failedFields(t, req.Validate())
		assert.Equal(t, "industry", fields["industry"])
	})

	t.Run("missing industry", func(t *testing.T) {
		req := validRequest()
		req.Industry = ""
		fields := failedFields(t, req.Validate())
		assert.Equal(t, "required", fields["industry"])
	})

	t.Run("goals shorter than ten characters", func(t *testing.T) {
		req := validRequest()
		req.Goals = "go green"
		fields := failedFields(t, req.Validate())
		assert.Equal(t, "min", fields["goals"])
	})

	t.Run("invalid optional enums", func(t *testing.T) {
		req := validRequest()
		req.EmployeeCount = "10"
		req.BudgetRange = "a lot"
		req.Timeline = "yesterday"
		fields := failedFields(t, req.Validate())
		assert.Equal(t, "employee_count", fields["employee_count"])
		assert.Equal(t, "budget_range", fields["budget_range"])
		assert.Equal(t, "timeline", fields["timeline"])
	})
}
