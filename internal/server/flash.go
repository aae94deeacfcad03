package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/jonathan/axis-portal/internal/rendering"
	"go.uber.org/zap"
)

const flashCookie = "axis_flash"

// setFlash stores a one-shot notification for the next page view.
func (s *Server) setFlash(w http.ResponseWriter, f rendering.Flash) {
	raw, err := json.Marshal(f)
	if err != nil {
		zap.L().Warn("flash encode failed", zap.Error(err))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending notification, if any, and clears it. A cookie
// that does not decode is dropped.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) *rendering.Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var f rendering.Flash
	if err := json.Unmarshal(raw, &f); err != nil || f.Message == "" {
		return nil
	}
	return &f
}

// redirectWithFlash sets f and redirects with 303 See Other.
func (s *Server) redirectWithFlash(w http.ResponseWriter, r *http.Request, to string, f rendering.Flash) {
	s.setFlash(w, f)
	http.Redirect(w, r, to, http.StatusSeeOther)
}
