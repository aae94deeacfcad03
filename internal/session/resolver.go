package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/types"
	"go.uber.org/zap"
)

// CookieName is the cookie carrying the session token for browser pages.
const CookieName = "axis_session"

// UserSource looks up the identity behind a token. It returns nil, nil for an
// unknown user.
type UserSource interface {
	LookupUser(ctx context.Context, id uuid.UUID) (*types.User, error)
}

// Resolver turns an incoming request into a resolved Session.
type Resolver struct {
	tokens *TokenService
	users  UserSource
}

// NewResolver creates a resolver backed by tokens and users.
func NewResolver(tokens *TokenService, users UserSource) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve reads the session token from the Authorization header or the
// session cookie. Any failure resolves to an anonymous session.
func (r *Resolver) Resolve(req *http.Request) *Session {
	s := New()

	token := TokenFromRequest(req)
	if token == "" {
		s.Resolve(nil)
		return s
	}

	claims, err := r.tokens.ValidateToken(token)
	if err != nil {
		zap.L().Debug("session token rejected", zap.Error(err))
		s.Resolve(nil)
		return s
	}

	user, err := r.users.LookupUser(req.Context(), claims.UserID)
	if err != nil {
		zap.L().Warn("session user lookup failed",
			zap.String("user_id", claims.UserID.String()),
			zap.Error(err),
		)
		s.Resolve(nil)
		return s
	}
	s.Resolve(user)
	return s
}

// TokenFromRequest extracts a bearer token, falling back to the session cookie.
func TokenFromRequest(req *http.Request) string {
	if header := req.Header.Get("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := req.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}
