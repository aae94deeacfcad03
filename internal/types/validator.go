//nolint:revive // types is a standard Go package name pattern
package types

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the enumeration tags registered:
// industry, employee_count, budget_range, timeline, contractor_category,
// report_status and priority. Field names in errors are the JSON names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enumTags := map[string]func(string) bool{
			"industry":            func(s string) bool { return Industry(s).Valid() },
			"employee_count":      func(s string) bool { return EmployeeCountBand(s).Valid() },
			"budget_range":        func(s string) bool { return BudgetRange(s).Valid() },
			"timeline":            func(s string) bool { return TimelinePreference(s).Valid() },
			"contractor_category": func(s string) bool { return ContractorCategory(s).Valid() },
			"report_status":       func(s string) bool { return ReportStatus(s).Valid() },
			"priority":            func(s string) bool { return Priority(s).Valid() },
		}
		for tag, valid := range enumTags {
			// Registration only fails for empty tags or nil funcs.
			_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return valid(fl.Field().String())
			})
		}
		validate = v
	})
	return validate
}
