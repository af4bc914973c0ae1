package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/httpapi"
	memadminstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/adminstore"
	memboardmemberstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/boardmemberstore"
	memclubstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clubstore"
	memcommitteestore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/committeestore"
	memidempotency "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/idempotency"
	memmembershipstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/membershipstore"
	postgres "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres"
	pgadminstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/adminstore"
	pgboardmemberstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/boardmemberstore"
	pgclubstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/clubstore"
	pgcommitteestore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/committeestore"
	pgidempotency "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/idempotency"
	pgmembershipstore "github.com/nu-student-clubs/clubs-admin/internal/adapters/postgres/membershipstore"
	redisclient "github.com/nu-student-clubs/clubs-admin/internal/adapters/redis"
	redisidempotency "github.com/nu-student-clubs/clubs-admin/internal/adapters/redis/idempotency"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/auth/jwtverifier"
	platformclock "github.com/nu-student-clubs/clubs-admin/internal/platform/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/config"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/logging"
	idempotencyport "github.com/nu-student-clubs/clubs-admin/internal/ports/out/idempotency"
)

const purgeInterval = time.Hour

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.LoadServer(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := logging.New(logging.Config{
		Debug:  cfg.Log.Debug,
		ToFile: cfg.Log.ToFile,
		Dir:    cfg.Log.Dir,
		Name:   "api",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = closeLog() }()

	if err := run(cfg, log); err != nil {
		log.Error("api stopped", zap.Error(err))
		_ = closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Server, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := platformclock.NewSystemClock()

	// Auth configuration:
	// - Production: JWT_SECRET/JWT_ISSUER are required and bearer auth is enforced
	// - Local dev: AUTH_MODE=dev skips verification and uses X-Debug-Subject
	var authMW func(http.Handler) http.Handler
	switch cfg.AuthMode {
	case "dev":
		authMW = httpapi.NewDevAuthMiddleware(cfg.DevSubject)
		log.Warn("dev auth enabled; bearer tokens are not verified")
	default:
		authMW = httpapi.NewAuthMiddleware(jwtverifier.New(cfg.JWT))
	}

	var (
		src       httpapi.Sources
		idemStore idempotencyport.Store
	)

	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}

		src = httpapi.Sources{
			Clubs:        pgclubstore.NewStore(pool, clk),
			Memberships:  pgmembershipstore.NewStore(pool, clk),
			Admins:       pgadminstore.NewStore(pool, clk),
			BoardMembers: pgboardmemberstore.NewStore(pool),
			Committees:   pgcommitteestore.NewStore(pool),
		}
		pgIdem := pgidempotency.NewStore(pool, clk, cfg.IdempotencyTTL)
		go purgeIdempotencyKeys(ctx, pgIdem, log)
		idemStore = pgIdem
	default:
		if cfg.SeedDemoData {
			src = httpapi.Sources{
				Clubs:        memclubstore.NewStore(clk),
				Memberships:  memmembershipstore.NewStore(clk),
				Admins:       memadminstore.NewStore(clk),
				BoardMembers: memboardmemberstore.NewStore(),
				Committees:   memcommitteestore.NewStore(),
			}
		} else {
			src = httpapi.Sources{
				Clubs:        memclubstore.NewStoreFrom(clk, nil),
				Memberships:  memmembershipstore.NewStoreFrom(clk, nil),
				Admins:       memadminstore.NewStoreFrom(clk, nil),
				BoardMembers: memboardmemberstore.NewStoreFrom(nil),
				Committees:   memcommitteestore.NewStoreFrom(nil),
			}
		}
		idemStore = memidempotency.NewStore(clk, cfg.IdempotencyTTL)
	}

	// Redis, when configured, holds idempotency records for either storage backend.
	if cfg.RedisAddr != "" {
		client, err := redisclient.New(ctx, redisclient.Options{Addr: cfg.RedisAddr})
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		idemStore = redisidempotency.NewStore(client, clk, cfg.IdempotencyTTL)
	}

	api := httpapi.NewServer(src, idemStore,
		httpapi.WithClock(clk),
		httpapi.WithLogger(log),
	)
	handler := httpapi.NewRouterWithOptions(api, httpapi.RouterOptions{
		AuthMiddleware: authMW,
		CORSOrigins:    cfg.CORSOrigins,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("api listening",
			zap.String("port", cfg.Port),
			zap.String("storage", cfg.StorageBackend),
			zap.String("auth", cfg.AuthMode),
			zap.Bool("redis", cfg.RedisAddr != ""),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// purgeIdempotencyKeys removes expired records until ctx is done.
func purgeIdempotencyKeys(ctx context.Context, s *pgidempotency.Store, log *zap.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			n, err := s.Purge(ctx)
			if err != nil {
				log.Warn("purge idempotency keys", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Debug("purged idempotency keys", zap.Int64("count", n))
			}
		case <-ctx.Done():
			return
		}
	}
}
