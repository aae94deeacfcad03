package rendering

import (
	"github.com/jonathan/axis-portal/internal/contractors"
	"github.com/jonathan/axis-portal/internal/dashboard"
	"github.com/jonathan/axis-portal/internal/intake"
	"github.com/jonathan/axis-portal/internal/report"
	"github.com/jonathan/axis-portal/internal/types"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-shot notification shown at the top of the next page.
type Flash struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Page is the data every page template receives. Content holds the
// page-specific view.
type Page struct {
	Title   string
	User    *types.User
	Flash   *Flash
	Path    string
	Content any
}

// AuthView backs the sign-in / sign-up page.
type AuthView struct {
	Mode        string // "login" or "register"
	Email       string
	FullName    string
	CompanyName string
	Error       string
}

// Register reports whether the sign-up form is shown.
func (v AuthView) Register() bool { return v.Mode == "register" }

// IntakeView backs the report request wizard.
type IntakeView struct {
	Step        intake.Step
	StepNumber  int
	TotalSteps  int
	Progress    int
	Heading     string
	Description string
	Request     types.ReportRequest
	Errors      *intake.FieldErrors
	SubmitError string
	Record      *types.ReportRequestRecord
	Options     map[string][]string
}

var stepText = map[intake.Step][2]string{
	intake.Step1: {"Company Information", "Tell us about your organization"},
	intake.Step2: {"Sustainability Goals", "What sustainability outcomes are you looking to achieve?"},
	intake.Step3: {"Budget & Timeline", "Help us understand your project parameters"},
}

// NewIntakeView builds the wizard view for f. errs and submitErr may be empty.
func NewIntakeView(f *intake.Form, errs *intake.FieldErrors, submitErr string) IntakeView {
	text := stepText[f.Step()]
	return IntakeView{
		Step:        f.Step(),
		StepNumber:  min(int(f.Step()), intake.TotalSteps),
		TotalSteps:  intake.TotalSteps,
		Progress:    f.Progress(),
		Heading:     text[0],
		Description: text[1],
		Request:     f.Request(),
		Errors:      errs,
		SubmitError: submitErr,
		Record:      f.Result(),
		Options:     intakeOptions,
	}
}

// Submitted reports whether the confirmation is shown instead of the form.
func (v IntakeView) Submitted() bool { return v.Step == intake.Submitted }

// OnStep reports whether n is the current step.
func (v IntakeView) OnStep(n int) bool { return int(v.Step) == n }

// Error returns the message for field, or "".
func (v IntakeView) Error(field string) string { return v.Errors.Message(field) }

var intakeOptions = map[string][]string{
	intake.FieldIndustry:      stringsOf(types.Industries),
	intake.FieldEmployeeCount: stringsOf(types.EmployeeCountBands),
	intake.FieldBudgetRange:   stringsOf(types.BudgetRanges),
	intake.FieldTimeline:      stringsOf(types.TimelinePreferences),
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// ReportView backs the report and sample report pages. BasePath is the page
// the tab links point at.
type ReportView struct {
	Layout   report.Layout
	BasePath string
}

// ContractorsView backs the contractor directory.
type ContractorsView struct {
	Query       contractors.Query
	Options     []contractors.Option
	Contractors []types.Contractor
	Total       int
	Source      contractors.Source
}

// DashboardView backs the dashboard.
type DashboardView struct {
	*dashboard.View
	FullName string
}
