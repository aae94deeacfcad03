package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/axis-portal/internal/rendering"
	"github.com/jonathan/axis-portal/internal/session"
	"github.com/jonathan/axis-portal/internal/types"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// handleAuthPage shows the sign-in form, or the sign-up form with
// ?mode=register. Signed-in users go straight to the dashboard.
func (s *Server) handleAuthPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.FromContext(r.Context()).User(); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	mode := "login"
	if r.URL.Query().Get("mode") == "register" {
		mode = "register"
	}
	s.render(w, r, http.StatusOK, rendering.PageAuth, "Sign In", rendering.AuthView{Mode: mode}, nil)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, rendering.PageAuth, "Sign In",
			rendering.AuthView{Mode: "login", Error: "Invalid form submission"}, nil)
		return
	}

	req := types.LoginRequest{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}
	user, err := s.users.Login(r.Context(), &req)
	if err != nil {
		s.logAuthError("login", err)
		s.render(w, r, HTTPStatus(err), rendering.PageAuth, "Sign In",
			rendering.AuthView{Mode: "login", Email: req.Email, Error: PublicMessage(err)}, nil)
		return
	}

	if !s.startSession(w, r, user) {
		return
	}
	s.redirectWithFlash(w, r, "/dashboard", rendering.Flash{
		Kind:    rendering.FlashSuccess,
		Title:   "Welcome back!",
		Message: "You have successfully signed in.",
	})
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, rendering.PageAuth, "Sign Up",
			rendering.AuthView{Mode: "register", Error: "Invalid form submission"}, nil)
		return
	}

	req := types.CreateUserRequest{
		FullName:    strings.TrimSpace(r.PostForm.Get("full_name")),
		Email:       strings.TrimSpace(r.PostForm.Get("email")),
		Password:    r.PostForm.Get("password"),
		CompanyName: strings.TrimSpace(r.PostForm.Get("company_name")),
	}
	user, err := s.users.Register(r.Context(), &req)
	if err != nil {
		s.logAuthError("register", err)
		s.render(w, r, HTTPStatus(err), rendering.PageAuth, "Sign Up", rendering.AuthView{
			Mode:        "register",
			Email:       req.Email,
			FullName:    req.FullName,
			CompanyName: req.CompanyName,
			Error:       PublicMessage(err),
		}, nil)
		return
	}

	if !s.startSession(w, r, user) {
		return
	}
	s.redirectWithFlash(w, r, "/dashboard", rendering.Flash{
		Kind:    rendering.FlashSuccess,
		Title:   "Account created!",
		Message: "Welcome to Axis.",
	})
}

// startSession issues a token cookie for user. On failure it renders the
// error page and returns false.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, user *types.User) bool {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		zap.L().Error("failed to generate session token", zap.String("user_id", user.ID.String()), zap.Error(err))
		s.render(w, r, http.StatusInternalServerError, rendering.PageError, "Error", nil, nil)
		return false
	}
	s.setSessionCookie(w, token)
	return true
}

// handleSignOut tears the session down and clears the cookie. State tied to
// the identity, like the intake draft, goes with it.
func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if userID, ok := sess.UserID(); ok {
		ctx := context.WithoutCancel(r.Context())
		sess.OnSignOut(func() {
			if err := s.drafts.Delete(ctx, userID); err != nil {
				zap.L().Warn("intake draft delete failed", zap.String("user_id", userID.String()), zap.Error(err))
			}
		})
	}
	sess.SignOut()
	s.clearSessionCookie(w)
	s.redirectWithFlash(w, r, "/", rendering.Flash{
		Kind:    rendering.FlashInfo,
		Title:   "Signed out",
		Message: "You have been signed out.",
	})
}

func (s *Server) logAuthError(op string, err error) {
	if HTTPStatus(err) == http.StatusInternalServerError {
		zap.L().Error("auth failed", zap.String("op", op), zap.Error(err))
		return
	}
	zap.L().Debug("auth rejected", zap.String("op", op), zap.Error(err))
}

// handleAPIRegister handles JSON sign-up requests.
func (s *Server) handleAPIRegister(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), &req)
	if err != nil {
		s.logAuthError("register", err)
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}
	s.tokenResponse(w, http.StatusCreated, user)
}

// handleAPILogin handles JSON sign-in requests.
func (s *Server) handleAPILogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Login(r.Context(), &req)
	if err != nil {
		s.logAuthError("login", err)
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}
	s.tokenResponse(w, http.StatusOK, user)
}

// handleAPIUpdatePassword changes the signed-in user's password.
func (s *Server) handleAPIUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.FromContext(r.Context()).UserID()

	var req types.UpdatePasswordRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.users.UpdatePassword(r.Context(), userID, &req); err != nil {
		s.logAuthError("update password", err)
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}
	zap.L().Info("password updated", zap.String("user_id", userID.String()))
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

func (s *Server) tokenResponse(w http.ResponseWriter, status int, user *types.User) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		zap.L().Error("failed to generate session token", zap.String("user_id", user.ID.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	s.jsonResponse(w, status, types.LoginResponse{User: user, Token: token})
}
