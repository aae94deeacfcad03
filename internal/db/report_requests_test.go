package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportRequestRowColumns = []string{
	"id", "user_id", "status", "company_name", "industry", "employee_count", "annual_revenue",
	"current_sustainability_initiatives", "goals", "budget_range", "timeline", "additional_notes",
	"created_at", "updated_at",
}

func reportRequestRow(rows *pgxmock.Rows, id, userID uuid.UUID, status string, created time.Time) *pgxmock.Rows {
	return rows.AddRow(id, userID, status, "Acme Egypt", "Manufacturing", "201-500", "",
		"", "Reduce water use across plants", "EGP 1,000,000 - 5,000,000", "Flexible", "",
		created, created)
}

func TestInsertReportRequest(t *testing.T) {
	store, mock := newMock(t)
	userID := uuid.New()
	id := uuid.New()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	req := &types.ReportRequest{
		CompanyName:   "Acme Egypt",
		Industry:      types.IndustryManufacturing,
		EmployeeCount: "201-500",
		Goals:         "Reduce water use across plants",
		BudgetRange:   "EGP 1,000,000 - 5,000,000",
		Timeline:      "Flexible",
	}

	mock.ExpectQuery(`INSERT INTO report_requests .* RETURNING id, user_id, status::text`).
		WithArgs(userID, "Acme Egypt", "Manufacturing", "201-500", "", "",
			"Reduce water use across plants", "EGP 1,000,000 - 5,000,000", "Flexible", "").
		WillReturnRows(reportRequestRow(pgxmock.NewRows(reportRequestRowColumns), id, userID, "pending", now))

	rec, err := store.InsertReportRequest(context.Background(), userID, req)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, types.StatusPending, rec.Status)
	assert.Equal(t, types.IndustryManufacturing, rec.Industry)
	assert.Equal(t, types.BudgetRange("EGP 1,000,000 - 5,000,000"), rec.BudgetRange)
	assert.Equal(t, now, rec.CreatedAt)
}

func TestInsertReportRequest_Error(t *testing.T) {
	store, mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO report_requests`).WillReturnError(errors.New("foreign key violation"))

	_, err := store.InsertReportRequest(context.Background(), uuid.New(), &types.ReportRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foreign key violation")
}

func TestListReportRequests(t *testing.T) {
	store, mock := newMock(t)
	userID := uuid.New()
	newer := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	rows := pgxmock.NewRows(reportRequestRowColumns)
	reportRequestRow(rows, uuid.New(), userID, "completed", newer)
	reportRequestRow(rows, uuid.New(), userID, "pending", older)

	mock.ExpectQuery(`FROM report_requests WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID).
		WillReturnRows(rows)

	list, err := store.ListReportRequests(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, types.StatusCompleted, list[0].Status)
	assert.Equal(t, types.StatusPending, list[1].Status)
}

func TestGetReportRequest_NotFound(t *testing.T) {
	store, mock := newMock(t)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`FROM report_requests WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, userID).
		WillReturnRows(pgxmock.NewRows(reportRequestRowColumns))

	rec, err := store.GetReportRequest(context.Background(), id, userID)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestGetReportRequest_Found(t *testing.T) {
	store, mock := newMock(t)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`FROM report_requests WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, userID).
		WillReturnRows(reportRequestRow(pgxmock.NewRows(reportRequestRowColumns), id, userID, "in_progress", time.Now()))

	rec, err := store.GetReportRequest(context.Background(), id, userID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, types.StatusInProgress, rec.Status)
}

func TestFindReportRequest(t *testing.T) {
	store, mock := newMock(t)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`FROM report_requests WHERE id = \$1$`).
		WithArgs(id).
		WillReturnRows(reportRequestRow(pgxmock.NewRows(reportRequestRowColumns), id, userID, "pending", time.Now()))

	rec, err := store.FindReportRequest(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, userID, rec.UserID)

	mock.ExpectQuery(`FROM report_requests WHERE id = \$1$`).
		WithArgs(id).
		WillReturnError(errors.New("conn closed"))
	_, err = store.FindReportRequest(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db: find report request")
}

func TestUpdateReportRequestStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "updated", affected: 1, want: true},
		{name: "missing row", affected: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMock(t)
			id := uuid.New()
			mock.ExpectExec(`UPDATE report_requests SET status = \$1::report_status`).
				WithArgs("in_progress", id).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			ok, err := store.UpdateReportRequestStatus(context.Background(), id, types.StatusInProgress)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
