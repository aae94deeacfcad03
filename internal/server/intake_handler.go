package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/intake"
	"github.com/jonathan/axis-portal/internal/rendering"
	"github.com/jonathan/axis-portal/internal/session"
	"go.uber.org/zap"
)

const intakeTitle = "Request Report"

// loadDraft returns the user's in-progress form, or a fresh one. A failing
// draft store only costs the user their progress.
func (s *Server) loadDraft(r *http.Request, userID uuid.UUID) *intake.Form {
	f, err := s.drafts.Load(r.Context(), userID)
	if err != nil {
		zap.L().Warn("intake draft load failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	if f == nil {
		return intake.NewForm()
	}
	return f
}

func (s *Server) saveDraft(r *http.Request, userID uuid.UUID, f *intake.Form) {
	if err := s.drafts.Save(r.Context(), userID, f); err != nil {
		zap.L().Warn("intake draft save failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func (s *Server) handleIntakePage(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.FromContext(r.Context()).UserID()
	f := s.loadDraft(r, userID)
	s.render(w, r, http.StatusOK, rendering.PageIntake, intakeTitle, rendering.NewIntakeView(f, nil, ""), nil)
}

// handleIntakeAction applies the posted step values and performs one wizard
// action: back, next or submit.
func (s *Server) handleIntakeAction(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	userID, _ := sess.UserID()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, rendering.PageIntake, intakeTitle,
			rendering.NewIntakeView(s.loadDraft(r, userID), nil, ""), nil)
		return
	}

	action := r.PostForm.Get("action")
	if action == "submit" {
		s.submitIntake(w, r, sess)
		return
	}

	f := s.loadDraft(r, userID)
	f.Apply(r.PostForm)

	switch action {
	case "back":
		f.Back()
		s.saveDraft(r, userID, f)
		s.render(w, r, http.StatusOK, rendering.PageIntake, intakeTitle, rendering.NewIntakeView(f, nil, ""), nil)

	case "next":
		var fieldErrs *intake.FieldErrors
		status := http.StatusOK
		if err := f.Next(); err != nil {
			if !errors.As(err, &fieldErrs) {
				zap.L().Warn("intake next rejected", zap.Error(err))
			}
			status = http.StatusUnprocessableEntity
		}
		s.saveDraft(r, userID, f)
		s.render(w, r, status, rendering.PageIntake, intakeTitle, rendering.NewIntakeView(f, fieldErrs, ""), nil)

	default:
		zap.L().Info("unknown intake action", zap.String("action", action))
		s.render(w, r, http.StatusBadRequest, rendering.PageIntake, intakeTitle, rendering.NewIntakeView(f, nil, ""), nil)
	}
}

// submitIntake claims the user's draft before sending it, so a repeated
// submit finds nothing to send. Every failure puts the draft back.
func (s *Server) submitIntake(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	userID, _ := sess.UserID()

	f, err := s.drafts.Take(r.Context(), userID)
	if err != nil {
		zap.L().Error("intake draft take failed", zap.String("user_id", userID.String()), zap.Error(err))
		s.render(w, r, http.StatusInternalServerError, rendering.PageIntake, intakeTitle,
			rendering.NewIntakeView(intake.NewForm(), nil, "Your request could not be loaded. Please try again."), nil)
		return
	}
	if f == nil {
		zap.L().Info("intake submit without a draft", zap.String("user_id", userID.String()))
		s.render(w, r, http.StatusConflict, rendering.PageIntake, intakeTitle,
			rendering.NewIntakeView(intake.NewForm(), nil, "This request has already been submitted."), nil)
		return
	}
	f.Apply(r.PostForm)

	record, err := f.Submit(r.Context(), sess, s.store)
	if err != nil {
		var (
			fieldErrs *intake.FieldErrors
			subErr    *intake.SubmissionError
		)
		switch {
		case errors.As(err, &fieldErrs):
			s.saveDraft(r, userID, f)
			s.render(w, r, http.StatusUnprocessableEntity, rendering.PageIntake, intakeTitle,
				rendering.NewIntakeView(f, fieldErrs, ""), nil)
		case errors.As(err, &subErr):
			zap.L().Error("report request submission failed", zap.String("user_id", userID.String()), zap.Error(subErr.Err))
			s.saveDraft(r, userID, f)
			s.render(w, r, http.StatusInternalServerError, rendering.PageIntake, intakeTitle,
				rendering.NewIntakeView(f, nil, subErr.Message), nil)
		case errors.Is(err, intake.ErrAuthRequired):
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
		default:
			s.saveDraft(r, userID, f)
			s.render(w, r, http.StatusBadRequest, rendering.PageIntake, intakeTitle, rendering.NewIntakeView(f, nil, ""), nil)
		}
		return
	}

	zap.L().Info("report request submitted",
		zap.String("user_id", userID.String()),
		zap.String("request_id", record.ID.String()),
	)
	s.render(w, r, http.StatusOK, rendering.PageIntake, intakeTitle, rendering.NewIntakeView(f, nil, ""), &rendering.Flash{
		Kind:    rendering.FlashSuccess,
		Title:   "Request submitted!",
		Message: "We'll review your information and get back to you within 48 hours.",
	})
}
