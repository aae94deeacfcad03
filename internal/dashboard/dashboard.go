// Package dashboard assembles a signed-in user's request and report history.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Store is the persistence the dashboard reads from.
type Store interface {
	ListReportRequests(ctx context.Context, userID uuid.UUID) ([]types.ReportRequestRecord, error)
	ListReports(ctx context.Context, userID uuid.UUID) ([]types.ReportSummary, error)
}

// Stats are the counters shown above the lists.
type Stats struct {
	TotalRequests    int `json:"total_requests"`
	PendingRequests  int `json:"pending_requests"`
	CompletedReports int `json:"completed_reports"`
}

// View is the dashboard content. A section whose fetch failed keeps its error
// and an empty list; the other section is unaffected.
type View struct {
	Requests    []types.ReportRequestRecord `json:"requests"`
	Reports     []types.ReportSummary       `json:"reports"`
	Stats       Stats                       `json:"stats"`
	RequestsErr error                       `json:"-"`
	ReportsErr  error                       `json:"-"`
}

// Failed reports whether both sections failed to load.
func (v *View) Failed() bool {
	return v.RequestsErr != nil && v.ReportsErr != nil
}

// Loader fetches dashboard sections.
type Loader struct {
	store Store
}

// NewLoader returns a Loader reading from store.
func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// Load fetches the request list and the report list concurrently.
func (l *Loader) Load(ctx context.Context, userID uuid.UUID) *View {
	view := &View{}

	// Plain Group: one failing fetch must not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		requests, err := l.store.ListReportRequests(ctx, userID)
		if err != nil {
			view.RequestsErr = err
			return nil
		}
		view.Requests = requests
		return nil
	})
	g.Go(func() error {
		reports, err := l.store.ListReports(ctx, userID)
		if err != nil {
			view.ReportsErr = err
			return nil
		}
		view.Reports = reports
		return nil
	})
	_ = g.Wait()

	if view.RequestsErr != nil {
		zap.L().Warn("dashboard: failed to load report requests",
			zap.String("user_id", userID.String()), zap.Error(view.RequestsErr))
	}
	if view.ReportsErr != nil {
		zap.L().Warn("dashboard: failed to load reports",
			zap.String("user_id", userID.String()), zap.Error(view.ReportsErr))
	}

	view.Stats = ComputeStats(view.Requests, view.Reports)
	return view
}

// ComputeStats counts requests, pending requests and reports.
func ComputeStats(requests []types.ReportRequestRecord, reports []types.ReportSummary) Stats {
	stats := Stats{
		TotalRequests:    len(requests),
		CompletedReports: len(reports),
	}
	for _, r := range requests {
		if r.Status == types.StatusPending {
			stats.PendingRequests++
		}
	}
	return stats
}
