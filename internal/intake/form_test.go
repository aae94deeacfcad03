package intake

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/session"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	calls  int
	userID uuid.UUID
	got    *types.ReportRequest
	err    error
}

func (f *fakeSubmitter) InsertReportRequest(_ context.Context, userID uuid.UUID, req *types.ReportRequest) (*types.ReportRequestRecord, error) {
	f.calls++
	f.userID = userID
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &types.ReportRequestRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        types.StatusPending,
		ReportRequest: *req,
	}, nil
}

var testUserID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

func signedIn() *session.Session {
	return session.NewAuthenticated(&types.User{ID: testUserID, Email: "amira@example.com"})
}

func fillStep1(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.Set(FieldCompanyName, "Nile Textiles"))
	require.NoError(t, f.Set(FieldIndustry, "Manufacturing"))
}

func fillStep2(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.Set(FieldGoals, "Cut emissions by 30% before 2030"))
}

func formOnStep3(t *testing.T) *Form {
	t.Helper()
	f := NewForm()
	fillStep1(t, f)
	require.NoError(t, f.Next())
	fillStep2(t, f)
	require.NoError(t, f.Next())
	require.Equal(t, Step3, f.Step())
	return f
}

func TestNewForm(t *testing.T) {
	f := NewForm()
	assert.Equal(t, Step1, f.Step())
	assert.Equal(t, types.ReportRequest{}, f.Request())
	assert.Equal(t, 33, f.Progress())
}

func TestTransitionsTable(t *testing.T) {
	require.Len(t, Transitions, 3)
	assert.Equal(t, []string{FieldCompanyName, FieldIndustry, FieldEmployeeCount}, Transitions[0].Fields)
	assert.Equal(t, []string{FieldGoals, FieldCurrentInitiatives}, Transitions[1].Fields)
	assert.Equal(t, Submitted, Transitions[2].To)
}

func TestForm_Next_Step1(t *testing.T) {
	tests := []struct {
		name       string
		values     map[string]string
		wantStep   Step
		wantFields map[string]string
	}{
		{
			name:       "empty form stays with messages",
			values:     map[string]string{},
			wantStep:   Step1,
			wantFields: map[string]string{FieldCompanyName: "Company name is required", FieldIndustry: "Please select an industry"},
		},
		{
			name:       "one-letter company name",
			values:     map[string]string{FieldCompanyName: "A", FieldIndustry: "Retail"},
			wantStep:   Step1,
			wantFields: map[string]string{FieldCompanyName: "Company name is required"},
		},
		{
			name:       "unknown industry",
			values:     map[string]string{FieldCompanyName: "Acme", FieldIndustry: "Mining"},
			wantStep:   Step1,
			wantFields: map[string]string{FieldIndustry: "Please select an industry"},
		},
		{
			name:       "malformed employee count",
			values:     map[string]string{FieldCompanyName: "Acme", FieldIndustry: "Retail", FieldEmployeeCount: "lots"},
			wantStep:   Step1,
			wantFields: map[string]string{FieldEmployeeCount: "Please select a valid company size"},
		},
		{
			name:     "valid without employee count",
			values:   map[string]string{FieldCompanyName: "Acme", FieldIndustry: "Retail"},
			wantStep: Step2,
		},
		{
			name:     "valid with employee count",
			values:   map[string]string{FieldCompanyName: "Acme", FieldIndustry: "Retail", FieldEmployeeCount: "51-200"},
			wantStep: Step2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm()
			for k, v := range tt.values {
				require.NoError(t, f.Set(k, v))
			}

			err := f.Next()
			assert.Equal(t, tt.wantStep, f.Step())
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var fe *FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantFields, fe.Fields)
		})
	}
}

func TestForm_Next_Step2IgnoresLaterFields(t *testing.T) {
	f := NewForm()
	fillStep1(t, f)
	require.NoError(t, f.Next())

	// A bad Step 3 value does not block Step 2.
	require.NoError(t, f.Set(FieldBudgetRange, "a lot"))

	require.NoError(t, f.Set(FieldGoals, "too short"))
	err := f.Next()
	var fe *FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, map[string]string{FieldGoals: "Please describe your sustainability goals"}, fe.Fields)
	assert.Equal(t, Step2, f.Step())

	fillStep2(t, f)
	require.NoError(t, f.Next())
	assert.Equal(t, Step3, f.Step())
	assert.Equal(t, 100, f.Progress())
}

func TestForm_NextFromStep3(t *testing.T) {
	f := formOnStep3(t)
	assert.Error(t, f.Next())
	assert.Equal(t, Step3, f.Step())
}

func TestForm_Back(t *testing.T) {
	f := formOnStep3(t)
	require.NoError(t, f.Set(FieldGoals, ""))

	f.Back()
	assert.Equal(t, Step2, f.Step(), "back does not re-validate")
	f.Back()
	assert.Equal(t, Step1, f.Step())
	f.Back()
	assert.Equal(t, Step1, f.Step(), "back from step 1 is a no-op")

	assert.Equal(t, "Nile Textiles", f.Request().CompanyName, "values survive navigation")
}

func TestForm_Set_UnknownField(t *testing.T) {
	err := NewForm().Set("favourite_colour", "green")
	assert.ErrorContains(t, err, "unknown field")
}

func TestForm_Apply(t *testing.T) {
	f := NewForm()
	f.Apply(url.Values{
		FieldCompanyName: {"Delta Foods"},
		FieldIndustry:    {"Food & Beverage"},
		"action":         {"next"},
	})
	assert.Equal(t, "Delta Foods", f.Request().CompanyName)
	assert.Equal(t, types.IndustryFoodBeverage, f.Request().Industry)
	assert.Equal(t, Step1, f.Step(), "apply never changes step")

	// Absent keys keep earlier values.
	f.Apply(url.Values{FieldGoals: {"Zero waste to landfill"}})
	assert.Equal(t, "Delta Foods", f.Request().CompanyName)
}

func TestForm_Submit_Success(t *testing.T) {
	f := formOnStep3(t)
	require.NoError(t, f.Set(FieldBudgetRange, "To be determined"))
	sub := &fakeSubmitter{}

	record, err := f.Submit(context.Background(), signedIn(), sub)
	require.NoError(t, err)
	assert.Equal(t, Submitted, f.Step())
	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, testUserID, sub.userID)
	assert.Equal(t, "Nile Textiles", sub.got.CompanyName)
	assert.Equal(t, types.StatusPending, record.Status)
	assert.Same(t, record, f.Result())
}

func TestForm_Submit_Anonymous(t *testing.T) {
	f := formOnStep3(t)
	sub := &fakeSubmitter{}

	_, err := f.Submit(context.Background(), session.NewAnonymous(), sub)
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Zero(t, sub.calls, "nothing is sent without a user")
	assert.Equal(t, Step3, f.Step())
}

func TestForm_Submit_PersistenceFailure(t *testing.T) {
	f := formOnStep3(t)
	sub := &fakeSubmitter{err: errors.New("new row violates row-level security policy")}

	_, err := f.Submit(context.Background(), signedIn(), sub)
	var se *SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "new row violates row-level security policy", se.Message)
	assert.Equal(t, Step3, f.Step())
	assert.Equal(t, "Nile Textiles", f.Request().CompanyName, "data is retained")
	assert.Nil(t, f.Result())
}

func TestForm_Submit_NotOnStep3(t *testing.T) {
	f := NewForm()
	fillStep1(t, f)
	_, err := f.Submit(context.Background(), signedIn(), &fakeSubmitter{})
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestForm_Submit_MalformedStep3Field(t *testing.T) {
	f := formOnStep3(t)
	require.NoError(t, f.Set(FieldTimeline, "yesterday"))
	sub := &fakeSubmitter{}

	_, err := f.Submit(context.Background(), signedIn(), sub)
	var fe *FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Please select a valid timeline", fe.Message(FieldTimeline))
	assert.Equal(t, Step3, f.Step())
	assert.Zero(t, sub.calls)
}

func TestForm_Submit_ReturnsToInvalidEarlierStep(t *testing.T) {
	f := formOnStep3(t)
	require.NoError(t, f.Set(FieldCompanyName, ""))

	_, err := f.Submit(context.Background(), signedIn(), &fakeSubmitter{})
	var fe *FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, Step1, f.Step())
	assert.Equal(t, "Company name is required", fe.Message(FieldCompanyName))
}

func TestFieldErrors_Error(t *testing.T) {
	fe := &FieldErrors{Fields: map[string]string{"industry": "b", "company_name": "a"}}
	assert.Equal(t, "intake: invalid fields: company_name: a; industry: b", fe.Error())

	var nilErrs *FieldErrors
	assert.Empty(t, nilErrs.Message("goals"))
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "company", Step1.String())
	assert.Equal(t, "goals", Step2.String())
	assert.Equal(t, "budget", Step3.String())
	assert.Equal(t, "submitted", Submitted.String())
}
