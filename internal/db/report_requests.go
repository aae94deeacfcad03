package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
)

const reportRequestColumns = `id, user_id, status::text, company_name, industry,
	COALESCE(employee_count, ''), COALESCE(annual_revenue, ''),
	COALESCE(current_sustainability_initiatives, ''), COALESCE(goals, ''),
	COALESCE(budget_range, ''), COALESCE(timeline, ''), COALESCE(additional_notes, ''),
	created_at, updated_at`

func scanReportRequest(row pgx.Row) (*types.ReportRequestRecord, error) {
	var r types.ReportRequestRecord
	var status, industry, employees, budget, timeline string
	err := row.Scan(&r.ID, &r.UserID, &status, &r.CompanyName, &industry,
		&employees, &r.AnnualRevenue, &r.CurrentInitiatives, &r.Goals,
		&budget, &timeline, &r.AdditionalNotes, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.Status = types.ReportStatus(status)
	r.Industry = types.Industry(industry)
	r.EmployeeCount = types.EmployeeCountBand(employees)
	r.BudgetRange = types.BudgetRange(budget)
	r.Timeline = types.TimelinePreference(timeline)
	return &r, nil
}

// InsertReportRequest stores a new pending request for userID.
func (db *DB) InsertReportRequest(ctx context.Context, userID uuid.UUID, req *types.ReportRequest) (*types.ReportRequestRecord, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO report_requests (user_id, company_name, industry, employee_count, annual_revenue,
			current_sustainability_initiatives, goals, budget_range, timeline, additional_notes)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''))
		 RETURNING `+reportRequestColumns,
		userID, req.CompanyName, string(req.Industry), string(req.EmployeeCount), req.AnnualRevenue,
		req.CurrentInitiatives, req.Goals, string(req.BudgetRange), string(req.Timeline), req.AdditionalNotes,
	)
	record, err := scanReportRequest(row)
	if err != nil {
		return nil, eris.Wrap(err, "db: insert report request")
	}
	return record, nil
}

// ListReportRequests returns a user's requests, newest first.
func (db *DB) ListReportRequests(ctx context.Context, userID uuid.UUID) ([]types.ReportRequestRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+reportRequestColumns+`
		 FROM report_requests WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, eris.Wrap(err, "db: list report requests")
	}
	defer rows.Close()

	var list []types.ReportRequestRecord
	for rows.Next() {
		r, err := scanReportRequest(rows)
		if err != nil {
			return nil, eris.Wrap(err, "db: scan report request")
		}
		list = append(list, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "db: iterate report requests")
	}
	return list, nil
}

// GetReportRequest returns one of userID's requests, or nil if there is none.
func (db *DB) GetReportRequest(ctx context.Context, id, userID uuid.UUID) (*types.ReportRequestRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+reportRequestColumns+`
		 FROM report_requests WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	record, err := scanReportRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "db: get report request")
	}
	return record, nil
}

// FindReportRequest returns the request with id regardless of owner, or nil
// if there is none. It serves operator tooling.
func (db *DB) FindReportRequest(ctx context.Context, id uuid.UUID) (*types.ReportRequestRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+reportRequestColumns+`
		 FROM report_requests WHERE id = $1`,
		id,
	)
	record, err := scanReportRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "db: find report request")
	}
	return record, nil
}

// UpdateReportRequestStatus moves a request to status. It reports whether a
// row was updated.
func (db *DB) UpdateReportRequestStatus(ctx context.Context, id uuid.UUID, status types.ReportStatus) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE report_requests SET status = $1::report_status, updated_at = NOW() WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return false, eris.Wrap(err, "db: update report request status")
	}
	return tag.RowsAffected() > 0, nil
}
