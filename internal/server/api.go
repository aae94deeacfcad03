package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/contractors"
	"github.com/jonathan/axis-portal/internal/dashboard"
	"github.com/jonathan/axis-portal/internal/report"
	"github.com/jonathan/axis-portal/internal/schemas"
	"github.com/jonathan/axis-portal/internal/session"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ContractorsResponse is the body of GET /api/contractors.
type ContractorsResponse struct {
	Contractors []types.Contractor `json:"contractors"`
	Total       int                `json:"total"`
	Source      contractors.Source `json:"source"`
	Query       contractors.Query  `json:"query"`
}

// ReportResponse is the body of GET /api/reports/{id}.
type ReportResponse struct {
	ID        uuid.UUID             `json:"id"`
	RequestID uuid.UUID             `json:"request_id"`
	Title     string                `json:"title"`
	Content   *types.ReportDocument `json:"content"`
	PDFURL    string                `json:"pdf_url,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// DashboardResponse is the body of GET /api/dashboard. Errors lists the
// sections that failed to load.
type DashboardResponse struct {
	*dashboard.View
	Errors map[string]string `json:"errors,omitempty"`
}

func (s *Server) handleAPIContractors(w http.ResponseWriter, r *http.Request) {
	all, source := s.directory.Load(r.Context())
	q := contractorQuery(r)
	s.jsonResponse(w, http.StatusOK, ContractorsResponse{
		Contractors: contractors.Filter(all, q),
		Total:       len(all),
		Source:      source,
		Query:       q,
	})
}

func (s *Server) handleAPIListReportRequests(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.FromContext(r.Context()).UserID()
	requests, err := s.store.ListReportRequests(r.Context(), userID)
	if err != nil {
		zap.L().Error("list report requests failed", zap.String("user_id", userID.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load report requests")
		return
	}
	if requests == nil {
		requests = []types.ReportRequestRecord{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"report_requests": requests})
}

func (s *Server) handleAPIGetReportRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.FromContext(r.Context()).UserID()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "Report request not found")
		return
	}

	req, err := s.store.GetReportRequest(r.Context(), id, userID)
	if err != nil {
		zap.L().Error("report request fetch failed", zap.String("request_id", id.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load report request")
		return
	}
	if req == nil {
		s.errorResponse(w, http.StatusNotFound, "Report request not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, req)
}

// handleAPICreateReportRequest validates the body against the report request
// schema and the field rules of the wizard, then stores it as pending.
func (s *Server) handleAPICreateReportRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.FromContext(r.Context()).UserID()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.requestSchema.Validate(body); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  "Invalid report request",
				"fields": ve.Fields(),
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req types.ReportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		verr := validationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	record, err := s.store.InsertReportRequest(r.Context(), userID, &req)
	if err != nil {
		zap.L().Error("insert report request failed", zap.String("user_id", userID.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, eris.Cause(err).Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, record)
}

func (s *Server) handleAPIGetReport(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.FromContext(r.Context()).UserID()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "Report not found")
		return
	}

	rec, err := s.store.GetReport(r.Context(), id, userID)
	if err != nil {
		zap.L().Error("report fetch failed", zap.String("report_id", id.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load report")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Report not found")
		return
	}

	doc, err := report.Decode(rec.Content)
	if err != nil {
		zap.L().Warn("stored report is not a valid document", zap.String("report_id", id.String()), zap.Error(err))
		s.errorResponse(w, http.StatusUnprocessableEntity, "Report content is invalid")
		return
	}

	s.jsonResponse(w, http.StatusOK, ReportResponse{
		ID:        rec.ID,
		RequestID: rec.RequestID,
		Title:     rec.Title,
		Content:   doc,
		PDFURL:    rec.PDFURL,
		CreatedAt: rec.CreatedAt,
	})
}

func (s *Server) handleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.FromContext(r.Context()).UserID()
	view := s.dashboard.Load(r.Context(), userID)

	resp := DashboardResponse{View: view}
	if view.RequestsErr != nil || view.ReportsErr != nil {
		resp.Errors = map[string]string{}
		if view.RequestsErr != nil {
			resp.Errors["requests"] = "Failed to load report requests"
		}
		if view.ReportsErr != nil {
			resp.Errors["reports"] = "Failed to load reports"
		}
	}

	status := http.StatusOK
	if view.Failed() {
		status = http.StatusBadGateway
	}
	s.jsonResponse(w, status, resp)
}
