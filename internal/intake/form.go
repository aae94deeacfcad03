// Package intake implements the three-step report request wizard as an
// explicit state machine. The steps and the fields validated when leaving each
// one are plain data, so the transition logic is testable without any page
// rendering.
package intake

import (
	"context"
	"net/url"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/session"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
)

// Step is a state of the wizard.
type Step int

// Wizard states in order.
const (
	Step1 Step = iota + 1
	Step2
	Step3
	Submitted
)

// TotalSteps is the number of input steps.
const TotalSteps = 3

func (s Step) String() string {
	switch s {
	case Step1:
		return "company"
	case Step2:
		return "goals"
	case Step3:
		return "budget"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Field names, matching the JSON and form names of types.ReportRequest.
const (
	FieldCompanyName        = "company_name"
	FieldIndustry           = "industry"
	FieldEmployeeCount      = "employee_count"
	FieldAnnualRevenue      = "annual_revenue"
	FieldCurrentInitiatives = "current_sustainability_initiatives"
	FieldGoals              = "goals"
	FieldBudgetRange        = "budget_range"
	FieldTimeline           = "timeline"
	FieldAdditionalNotes    = "additional_notes"
)

// Transition is a forward edge of the wizard and the fields checked on it.
type Transition struct {
	From   Step
	To     Step
	Fields []string
}

// Transitions is the forward transition table. Step 3 fields are all optional
// so leaving it only checks that enumerated values are well formed.
var Transitions = []Transition{
	{From: Step1, To: Step2, Fields: []string{FieldCompanyName, FieldIndustry, FieldEmployeeCount}},
	{From: Step2, To: Step3, Fields: []string{FieldGoals, FieldCurrentInitiatives}},
	{From: Step3, To: Submitted, Fields: []string{FieldBudgetRange, FieldTimeline}},
}

// StepFields lists the inputs shown on each step.
var StepFields = map[Step][]string{
	Step1: {FieldCompanyName, FieldIndustry, FieldEmployeeCount, FieldAnnualRevenue},
	Step2: {FieldCurrentInitiatives, FieldGoals},
	Step3: {FieldBudgetRange, FieldTimeline, FieldAdditionalNotes},
}

// Submitter persists a completed request for a user.
type Submitter interface {
	InsertReportRequest(ctx context.Context, userID uuid.UUID, req *types.ReportRequest) (*types.ReportRequestRecord, error)
}

// Form is the wizard state: the current step and the accumulated values.
type Form struct {
	step    Step
	request types.ReportRequest
	result  *types.ReportRequestRecord
}

// NewForm returns an empty form on Step1.
func NewForm() *Form {
	return &Form{step: Step1}
}

// Step returns the current step.
func (f *Form) Step() Step { return f.step }

// Request returns a copy of the accumulated values.
func (f *Form) Request() types.ReportRequest { return f.request }

// Result returns the persisted request once the form is Submitted.
func (f *Form) Result() *types.ReportRequestRecord { return f.result }

// Progress returns the progress bar percentage for the current step.
func (f *Form) Progress() int {
	step := min(int(f.step), TotalSteps)
	return step * 100 / TotalSteps
}

// Set updates a single field. It never changes the step.
func (f *Form) Set(field, value string) error {
	r := &f.request
	switch field {
	case FieldCompanyName:
		r.CompanyName = value
	case FieldIndustry:
		r.Industry = types.Industry(value)
	case FieldEmployeeCount:
		r.EmployeeCount = types.EmployeeCountBand(value)
	case FieldAnnualRevenue:
		r.AnnualRevenue = value
	case FieldCurrentInitiatives:
		r.CurrentInitiatives = value
	case FieldGoals:
		r.Goals = value
	case FieldBudgetRange:
		r.BudgetRange = types.BudgetRange(value)
	case FieldTimeline:
		r.Timeline = types.TimelinePreference(value)
	case FieldAdditionalNotes:
		r.AdditionalNotes = value
	default:
		return eris.Errorf("intake: unknown field %q", field)
	}
	return nil
}

// Apply sets every known field present in values and ignores the rest, so a
// posted page form can be applied directly.
func (f *Form) Apply(values url.Values) {
	for field := range fieldMessages {
		if _, ok := values[field]; ok {
			_ = f.Set(field, values.Get(field))
		}
	}
}

// Next validates the current step's fields and advances on success. On failure
// the step is unchanged and the error is a *FieldErrors.
func (f *Form) Next() error {
	t, ok := transitionFrom(f.step)
	if !ok || t.To == Submitted {
		return eris.Errorf("intake: no next step from %s", f.step)
	}
	if errs := f.check(t.Fields); errs != nil {
		return errs
	}
	f.step = t.To
	return nil
}

// Back returns to the previous step without re-validating. Back from Step1
// or after submission is a no-op.
func (f *Form) Back() {
	if f.step == Step2 || f.step == Step3 {
		f.step--
	}
}

// Submit sends the accumulated request for the session's user. It is only
// allowed from Step3. A session without a user yields ErrAuthRequired and
// nothing is sent. A persistence failure yields a *SubmissionError and the
// form stays on Step3 with its values intact.
func (f *Form) Submit(ctx context.Context, sess *session.Session, submitter Submitter) (*types.ReportRequestRecord, error) {
	if f.step != Step3 {
		return nil, ErrNotReady
	}
	userID, ok := sess.UserID()
	if !ok {
		return nil, ErrAuthRequired
	}

	// Earlier steps may have been edited since they were left; send the user
	// back to the first step that no longer validates.
	for _, t := range Transitions {
		if errs := f.check(t.Fields); errs != nil {
			f.step = t.From
			return nil, errs
		}
	}

	req := f.request
	record, err := submitter.InsertReportRequest(ctx, userID, &req)
	if err != nil {
		return nil, &SubmissionError{Message: eris.Cause(err).Error(), Err: err}
	}
	f.step = Submitted
	f.result = record
	return record, nil
}

// check validates the whole request and keeps only the errors for fields.
func (f *Form) check(fields []string) *FieldErrors {
	err := types.Validator().Struct(&f.request)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !eris.As(err, &verrs) {
		return &FieldErrors{Fields: map[string]string{"": err.Error()}}
	}

	errs := &FieldErrors{Fields: map[string]string{}}
	for _, fe := range verrs {
		if slices.Contains(fields, fe.Field()) {
			errs.Fields[fe.Field()] = messageFor(fe.Field(), fe.Tag())
		}
	}
	if len(errs.Fields) == 0 {
		return nil
	}
	return errs
}

func transitionFrom(s Step) (Transition, bool) {
	for _, t := range Transitions {
		if t.From == s {
			return t, true
		}
	}
	return Transition{}, false
}
