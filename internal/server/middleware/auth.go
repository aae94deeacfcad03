// Package middleware provides HTTP middleware for sessions, authorization,
// request logging and metrics.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/axis-portal/internal/session"
)

// AuthPath is where anonymous page requests are sent.
const AuthPath = "/auth"

// SessionResolver resolves the session of a request.
type SessionResolver interface {
	Resolve(r *http.Request) *session.Session
}

// Session resolves the request's session once and stores it in the request
// context for every later handler.
func Session(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := resolver.Resolve(r)
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

// RequireUser lets authenticated sessions through. Anonymous API requests get
// a 401 JSON body and anonymous page requests are redirected to AuthPath.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()).User(); ok {
			next.ServeHTTP(w, r)
			return
		}

		if IsAPI(r) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		http.Redirect(w, r, AuthPath, http.StatusSeeOther)
	})
}

// IsAPI reports whether r targets the JSON API.
func IsAPI(r *http.Request) bool {
	return r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/")
}
