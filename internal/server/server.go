package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/config"
	"github.com/jonathan/axis-portal/internal/contractors"
	"github.com/jonathan/axis-portal/internal/dashboard"
	"github.com/jonathan/axis-portal/internal/db"
	"github.com/jonathan/axis-portal/internal/intake"
	"github.com/jonathan/axis-portal/internal/rendering"
	"github.com/jonathan/axis-portal/internal/schemas"
	"github.com/jonathan/axis-portal/internal/server/middleware"
	"github.com/jonathan/axis-portal/internal/server/ratelimit"
	"github.com/jonathan/axis-portal/internal/session"
	"github.com/jonathan/axis-portal/internal/types"
	rootschemas "github.com/jonathan/axis-portal/schemas"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Store is everything the handlers read from and write to. *db.DB implements it.
type Store interface {
	UserStore
	session.UserSource
	contractors.Lister
	intake.Submitter
	dashboard.Store
	GetReport(ctx context.Context, id, userID uuid.UUID) (*db.ReportRecord, error)
	GetReportRequest(ctx context.Context, id, userID uuid.UUID) (*types.ReportRequestRecord, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	Ping(ctx context.Context) error
}

// Deps are the collaborators a Server is built from.
type Deps struct {
	Config    config.ServerConfig
	Store     Store
	Drafts    intake.DraftStore
	Tokens    *session.TokenService
	Passwords *config.PasswordConfig
	// Limiter is optional; nil disables rate limiting.
	Limiter *ratelimit.Limiter
}

// Server represents the HTTP server
type Server struct {
	cfg           config.ServerConfig
	store         Store
	drafts        intake.DraftStore
	tokens        *session.TokenService
	users         *UserService
	directory     *contractors.Directory
	dashboard     *dashboard.Loader
	renderer      *rendering.Renderer
	rateLimiter   *ratelimit.Limiter
	requestSchema *schemas.Validator
	router        chi.Router
}

// New creates a new server instance
func New(deps Deps) (*Server, error) {
	if deps.Store == nil || deps.Drafts == nil || deps.Tokens == nil || deps.Passwords == nil {
		return nil, eris.New("server: store, drafts, tokens and passwords are required")
	}

	renderer, err := rendering.New()
	if err != nil {
		return nil, eris.Wrap(err, "server: parse templates")
	}
	requestSchema, err := schemas.Compile("report_request", rootschemas.ReportRequest)
	if err != nil {
		return nil, eris.Wrap(err, "server: compile report request schema")
	}

	s := &Server{
		cfg:           deps.Config,
		store:         deps.Store,
		drafts:        deps.Drafts,
		tokens:        deps.Tokens,
		users:         NewUserService(deps.Store, deps.Passwords),
		directory:     contractors.NewDirectory(deps.Store),
		dashboard:     dashboard.NewLoader(deps.Store),
		renderer:      renderer,
		rateLimiter:   deps.Limiter,
		requestSchema: requestSchema,
	}
	s.router = s.routes(session.NewResolver(deps.Tokens, deps.Store))
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes(resolver middleware.SessionResolver) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(zap.L()))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if s.rateLimiter != nil {
		r.Use(s.withRateLimit)
	}

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(resolver))

		r.Get("/", s.handleHome)
		r.Get("/auth", s.handleAuthPage)
		r.Post("/auth/login", s.handleLoginForm)
		r.Post("/auth/register", s.handleRegisterForm)
		r.Post("/auth/sign-out", s.handleSignOut)
		r.Get("/sample-report", s.handleSampleReport)
		r.Get("/contractors", s.handleContractors)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/dashboard", s.handleDashboard)
			r.Get("/request-report", s.handleIntakePage)
			r.Post("/request-report", s.handleIntakeAction)
			r.Get("/report/{id}", s.handleReport)
		})

		r.Route("/api", func(r chi.Router) {
			r.Post("/auth/register", s.handleAPIRegister)
			r.Post("/auth/login", s.handleAPILogin)
			r.Get("/contractors", s.handleAPIContractors)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Post("/auth/password", s.handleAPIUpdatePassword)
				r.Get("/report-requests", s.handleAPIListReportRequests)
				r.Post("/report-requests", s.handleAPICreateReportRequest)
				r.Get("/report-requests/{id}", s.handleAPIGetReportRequest)
				r.Get("/reports/{id}", s.handleAPIGetReport)
				r.Get("/dashboard", s.handleAPIDashboard)
			})

			r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
				s.errorResponse(w, http.StatusNotFound, "Not found")
			})
		})

		r.NotFound(s.handleNotFound)
	})

	return r
}

// Run serves on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("server starting", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return eris.Wrap(err, "server: listen")
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "server shutdown failed")
	}
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	zap.L().Info("server stopped")
	return nil
}

// withRateLimit rejects clients over their per-endpoint budget with 429.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		setRateLimitHeaders(w, info)
		if !allowed {
			middleware.RateLimited.WithLabelValues(r.Method, info.Rule).Inc()
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth reports whether the database is reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID returns the client IP. RealIP has already applied
// X-Forwarded-For / X-Real-IP to RemoteAddr.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	zap.L().Info("rate limit exceeded",
		zap.String("client", extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
		zap.Time("reset", info.ResetTime),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
