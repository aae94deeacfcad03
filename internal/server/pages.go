package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/contractors"
	"github.com/jonathan/axis-portal/internal/rendering"
	"github.com/jonathan/axis-portal/internal/report"
	"github.com/jonathan/axis-portal/internal/session"
	"github.com/jonathan/axis-portal/internal/types"
	"go.uber.org/zap"
)

// render writes a full page. The flash cookie is consumed unless the caller
// already supplied a flash.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name, title string, content any, flash *rendering.Flash) {
	page := &rendering.Page{
		Title:   title,
		Path:    r.URL.Path,
		Content: content,
		Flash:   flash,
	}
	if user, ok := session.FromContext(r.Context()).User(); ok {
		page.User = &user
	}
	if page.Flash == nil {
		page.Flash = s.popFlash(w, r)
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, name, page); err != nil {
		zap.L().Error("page render failed", zap.String("page", name), zap.Error(err))
		buf.Reset()
		status = http.StatusInternalServerError
		if err := s.renderer.Render(&buf, rendering.PageError, &rendering.Page{Title: "Error", Path: r.URL.Path}); err != nil {
			zap.L().Error("error page render failed", zap.Error(err))
			http.Error(w, "Internal Server Error", status)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, rendering.PageHome, "", nil, nil)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	zap.L().Info("page not found", zap.String("path", r.URL.Path))
	s.render(w, r, http.StatusNotFound, rendering.PageNotFound, "Page not found", nil, nil)
}

func (s *Server) handleSampleReport(w http.ResponseWriter, r *http.Request) {
	layout := report.Build(report.SampleDocument(), report.SampleMeta()).SelectTab(r.URL.Query().Get("tab"))
	s.render(w, r, http.StatusOK, rendering.PageReport, "Sample Report",
		rendering.ReportView{Layout: layout, BasePath: "/sample-report"}, nil)
}

// handleReport shows one of the signed-in user's reports. Anything short of a
// decodable report sends the user back to the dashboard with a notification;
// nothing of the report is rendered.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.FromContext(r.Context()).UserID()
	notFound := rendering.Flash{Kind: rendering.FlashError, Title: "Error", Message: "Report not found"}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.redirectWithFlash(w, r, "/dashboard", notFound)
		return
	}

	rec, err := s.store.GetReport(r.Context(), id, userID)
	if err != nil {
		zap.L().Error("report fetch failed", zap.String("report_id", id.String()), zap.Error(err))
		s.redirectWithFlash(w, r, "/dashboard", notFound)
		return
	}
	if rec == nil {
		s.redirectWithFlash(w, r, "/dashboard", notFound)
		return
	}

	doc, err := report.Decode(rec.Content)
	if err != nil {
		zap.L().Warn("stored report is not a valid document", zap.String("report_id", id.String()), zap.Error(err))
		s.redirectWithFlash(w, r, "/dashboard", rendering.Flash{
			Kind:    rendering.FlashError,
			Title:   "Error",
			Message: "This report could not be displayed",
		})
		return
	}

	layout := report.Build(doc, report.Meta{
		ID:          rec.ID.String(),
		Title:       rec.Title,
		PreparedFor: s.preparedFor(r),
		CreatedAt:   rec.CreatedAt,
	}).SelectTab(r.URL.Query().Get("tab"))

	s.render(w, r, http.StatusOK, rendering.PageReport, rec.Title,
		rendering.ReportView{Layout: layout, BasePath: "/report/" + rec.ID.String()}, nil)
}

// preparedFor names the report's audience: the company on the user's
// profile, or the user's own name when the profile has none.
func (s *Server) preparedFor(r *http.Request) string {
	user, _ := session.FromContext(r.Context()).User()
	profile, err := s.store.GetProfile(r.Context(), user.ID)
	if err != nil {
		zap.L().Warn("profile fetch failed", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	if profile != nil && profile.CompanyName != "" {
		return profile.CompanyName
	}
	return user.FullName
}

// contractorQuery reads ?q= and ?category=; a missing or unknown category
// means all.
func contractorQuery(r *http.Request) contractors.Query {
	q := contractors.Query{
		Search:   r.URL.Query().Get("q"),
		Category: types.ContractorCategory(r.URL.Query().Get("category")),
	}
	if !q.Category.Valid() {
		q.Category = types.CategoryAll
	}
	return q
}

func (s *Server) handleContractors(w http.ResponseWriter, r *http.Request) {
	all, source := s.directory.Load(r.Context())
	q := contractorQuery(r)

	s.render(w, r, http.StatusOK, rendering.PageContractor, "Contractors", rendering.ContractorsView{
		Query:       q,
		Options:     contractors.CategoryOptions(),
		Contractors: contractors.Filter(all, q),
		Total:       len(all),
		Source:      source,
	}, nil)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := session.FromContext(r.Context()).User()
	view := s.dashboard.Load(r.Context(), user.ID)

	s.render(w, r, http.StatusOK, rendering.PageDashboard, "Dashboard",
		rendering.DashboardView{View: view, FullName: user.FullName}, nil)
}
