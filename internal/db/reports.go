package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
)

// ReportRecord is a reports row. Content is the raw JSON document; callers
// decode and validate it before use.
type ReportRecord struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   []byte
	PDFURL    string
	CreatedAt time.Time
}

// GetReport returns one of userID's reports, or nil if there is none.
func (db *DB) GetReport(ctx context.Context, id, userID uuid.UUID) (*ReportRecord, error) {
	var r ReportRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, request_id, user_id, title, content, COALESCE(pdf_url, ''), created_at
		 FROM reports WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&r.ID, &r.RequestID, &r.UserID, &r.Title, &r.Content, &r.PDFURL, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "db: get report")
	}
	return &r, nil
}

// ListReports returns summaries of a user's reports, newest first.
func (db *DB) ListReports(ctx context.Context, userID uuid.UUID) ([]types.ReportSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, request_id, title, created_at
		 FROM reports WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, eris.Wrap(err, "db: list reports")
	}
	defer rows.Close()

	var list []types.ReportSummary
	for rows.Next() {
		var s types.ReportSummary
		if err := rows.Scan(&s.ID, &s.RequestID, &s.Title, &s.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "db: scan report")
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "db: iterate reports")
	}
	return list, nil
}

// InsertReport stores a generated report for a request and marks the request
// completed, in one transaction.
func (db *DB) InsertReport(ctx context.Context, requestID, userID uuid.UUID, title string, content []byte) (uuid.UUID, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, eris.Wrap(err, "db: begin insert report")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO reports (request_id, user_id, title, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		requestID, userID, title, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, eris.Wrap(err, "db: insert report")
	}

	if _, err := tx.Exec(ctx,
		`UPDATE report_requests SET status = 'completed', updated_at = NOW() WHERE id = $1`,
		requestID,
	); err != nil {
		return uuid.Nil, eris.Wrap(err, "db: complete report request")
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, eris.Wrap(err, "db: commit insert report")
	}
	return id, nil
}
