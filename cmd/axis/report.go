package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/db"
	"github.com/jonathan/axis-portal/internal/report"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultReportTitle = "Sustainability Execution Report"

var (
	reportRequestID string
	reportFile      string
	reportTitle     string
	reportStatus    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage generated reports and report requests",
}

var reportImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Attach generated report content to a request",
	Long: `Validate a report document and store it against a request. The request is
marked completed in the same transaction, and the report appears on the
owner's dashboard.`,
	RunE: runReportImport,
}

var reportStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Move a report request to a new status",
	RunE:  runReportStatus,
}

func init() {
	reportImportCmd.Flags().StringVar(&reportRequestID, "request", "", "ID of the report request")
	reportImportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Path to the report document (JSON)")
	reportImportCmd.Flags().StringVar(&reportTitle, "title", defaultReportTitle, "Report title")
	_ = reportImportCmd.MarkFlagRequired("request")
	_ = reportImportCmd.MarkFlagRequired("file")

	reportStatusCmd.Flags().StringVar(&reportRequestID, "request", "", "ID of the report request")
	reportStatusCmd.Flags().StringVar(&reportStatus, "status", "", "New status (pending, in_progress, completed, cancelled)")
	_ = reportStatusCmd.MarkFlagRequired("request")
	_ = reportStatusCmd.MarkFlagRequired("status")

	reportCmd.AddCommand(reportImportCmd, reportStatusCmd)
	rootCmd.AddCommand(reportCmd)
}

// reportImporter is the slice of the store report import needs.
type reportImporter interface {
	FindReportRequest(ctx context.Context, id uuid.UUID) (*types.ReportRequestRecord, error)
	InsertReport(ctx context.Context, requestID, userID uuid.UUID, title string, content []byte) (uuid.UUID, error)
}

// statusUpdater is the slice of the store status changes need.
type statusUpdater interface {
	UpdateReportRequestStatus(ctx context.Context, id uuid.UUID, status types.ReportStatus) (bool, error)
}

func runReportImport(cmd *cobra.Command, _ []string) error {
	requestID, err := uuid.Parse(reportRequestID)
	if err != nil {
		return eris.Wrapf(err, "invalid request id %q", reportRequestID)
	}
	// Validate the document before touching the database.
	raw, err := os.ReadFile(reportFile)
	if err != nil {
		return eris.Wrapf(err, "read report file %s", reportFile)
	}
	if _, err := report.Decode(raw); err != nil {
		return eris.Wrapf(err, "report file %s", reportFile)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Connect(cmd.Context(), cfg.Database.URL, db.PoolConfig{})
	if err != nil {
		return eris.Wrap(err, "failed to connect to database")
	}
	defer database.Close()

	id, err := importReport(cmd.Context(), database, requestID, reportTitle, raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported report %s for request %s\n", id, requestID)
	return nil
}

// importReport stores already decoded content against requestID on behalf of
// the request's owner.
func importReport(ctx context.Context, store reportImporter, requestID uuid.UUID, title string, raw []byte) (uuid.UUID, error) {
	req, err := store.FindReportRequest(ctx, requestID)
	if err != nil {
		return uuid.Nil, err
	}
	if req == nil {
		return uuid.Nil, eris.Errorf("report request %s not found", requestID)
	}
	switch req.Status {
	case types.StatusCancelled:
		return uuid.Nil, eris.Errorf("report request %s is cancelled", requestID)
	case types.StatusCompleted:
		zap.L().Warn("adding another report to a completed request", zap.String("request_id", requestID.String()))
	}
	if title == "" {
		title = defaultReportTitle
	}

	id, err := store.InsertReport(ctx, requestID, req.UserID, title, raw)
	if err != nil {
		return uuid.Nil, err
	}
	zap.L().Info("report imported",
		zap.String("report_id", id.String()),
		zap.String("request_id", requestID.String()),
		zap.String("company", req.CompanyName))
	return id, nil
}

func runReportStatus(cmd *cobra.Command, _ []string) error {
	requestID, err := uuid.Parse(reportRequestID)
	if err != nil {
		return eris.Wrapf(err, "invalid request id %q", reportRequestID)
	}
	status := types.ReportStatus(reportStatus)
	if !status.Valid() {
		return eris.Errorf("unknown status %q", reportStatus)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Connect(cmd.Context(), cfg.Database.URL, db.PoolConfig{})
	if err != nil {
		return eris.Wrap(err, "failed to connect to database")
	}
	defer database.Close()

	if err := setReportStatus(cmd.Context(), database, requestID, status); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Request %s is now %s\n", requestID, status.Label())
	return nil
}

func setReportStatus(ctx context.Context, store statusUpdater, requestID uuid.UUID, status types.ReportStatus) error {
	ok, err := store.UpdateReportRequestStatus(ctx, requestID, status)
	if err != nil {
		return err
	}
	if !ok {
		return eris.Errorf("report request %s not found", requestID)
	}
	return nil
}
