package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/axis-portal/internal/config"
	"github.com/jonathan/axis-portal/internal/db"
	"github.com/jonathan/axis-portal/internal/intake"
	"github.com/jonathan/axis-portal/internal/server"
	"github.com/jonathan/axis-portal/internal/server/ratelimit"
	"github.com/jonathan/axis-portal/internal/session"
	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort    int
	serveMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  `Start the HTTP server that renders the portal pages and the JSON API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if servePort > 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.Database.URL, db.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return eris.Wrap(err, "failed to connect to database")
	}
	defer database.Close()

	if serveMigrate {
		if err := db.Migrate(ctx, database.Pool()); err != nil {
			return err
		}
	}

	drafts, closeDrafts, err := newDraftStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDrafts()

	jwtConfig, err := config.NewJWTConfig(cfg.Auth)
	if err != nil {
		return eris.Wrap(err, "failed to create JWT config")
	}
	passwordConfig, err := config.NewPasswordConfig(cfg.Auth)
	if err != nil {
		return eris.Wrap(err, "failed to create password config")
	}

	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewLimiter(ratelimit.FromConfig(cfg.RateLimit))
	}

	srv, err := server.New(server.Deps{
		Config:    cfg.Server,
		Store:     database,
		Drafts:    drafts,
		Tokens:    session.NewTokenService(jwtConfig),
		Passwords: passwordConfig,
		Limiter:   limiter,
	})
	if err != nil {
		return eris.Wrap(err, "failed to create server")
	}

	return srv.Run(ctx)
}

// newDraftStore picks Redis when an address is configured and the in-memory
// store otherwise. The returned func releases the store.
func newDraftStore(ctx context.Context, cfg *config.Config) (intake.DraftStore, func(), error) {
	if cfg.Redis.Addr == "" {
		zap.L().Info("intake drafts kept in memory")
		return intake.NewMemoryDraftStore(cfg.Intake.DraftTTL), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, eris.Wrapf(err, "redis: ping %s", cfg.Redis.Addr)
	}
	zap.L().Info("intake drafts kept in redis", zap.String("addr", cfg.Redis.Addr))
	return intake.NewRedisDraftStore(rdb, cfg.Intake.DraftTTL), func() { _ = rdb.Close() }, nil
}
