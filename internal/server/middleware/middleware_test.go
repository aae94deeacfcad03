package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/session"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type staticResolver struct {
	user *types.User
}

func (s staticResolver) Resolve(_ *http.Request) *session.Session {
	if s.user == nil {
		return session.NewAnonymous()
	}
	return session.NewAuthenticated(s.user)
}

func protected(resolver SessionResolver, called *bool) http.Handler {
	return Session(resolver)(RequireUser(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})))
}

func TestRequireUser_Authenticated(t *testing.T) {
	user := &types.User{ID: uuid.New(), Email: "ada@example.com"}
	var seen types.User
	handler := Session(staticResolver{user: user})(RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := session.FromContext(r.Context()).User()
		require.True(t, ok)
		seen = u
		w.WriteHeader(http.StatusOK)
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, seen.ID)
}

func TestRequireUser_Anonymous(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "page redirects to auth", path: "/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/auth"},
		{name: "report page redirects", path: "/report/123", wantStatus: http.StatusSeeOther, wantLocation: "/auth"},
		{name: "api returns 401", path: "/api/dashboard", wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			w := httptest.NewRecorder()
			protected(staticResolver{}, &called).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.False(t, called, "handler should not be called")
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRequireUser_WithoutSessionMiddleware(t *testing.T) {
	called := false
	handler := RequireUser(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) { called = true }))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestIsAPI(t *testing.T) {
	assert.True(t, IsAPI(httptest.NewRequest(http.MethodGet, "/api/reports/1", nil)))
	assert.True(t, IsAPI(httptest.NewRequest(http.MethodGet, "/api", nil)))
	assert.False(t, IsAPI(httptest.NewRequest(http.MethodGet, "/apiary", nil)))
	assert.False(t, IsAPI(httptest.NewRequest(http.MethodGet, "/dashboard", nil)))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/missing", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	_, hasDuration := fields["duration"]
	assert.True(t, hasDuration)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/report/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	before := counterValue(t, httpRequests.WithLabelValues(http.MethodGet, "/report/{id}", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/report/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/report/def", nil))
	after := counterValue(t, httpRequests.WithLabelValues(http.MethodGet, "/report/{id}", "200"))

	assert.InDelta(t, 2, after-before, 0.001)
}
