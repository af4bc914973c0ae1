package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/console"
	"github.com/nu-student-clubs/clubs-admin/internal/adapters/gateway"
	"github.com/nu-student-clubs/clubs-admin/internal/domain"
	platformclock "github.com/nu-student-clubs/clubs-admin/internal/platform/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/config"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/logging"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.LoadClient(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := logging.New(logging.Config{
		Debug:  cfg.Log.Debug,
		ToFile: cfg.Log.ToFile,
		Dir:    cfg.Log.Dir,
		Name:   "clubsctl",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = closeLog() }()

	client, err := gateway.New(gateway.Config{
		BaseURL:    cfg.API.BaseURL,
		Token:      cfg.API.Token,
		Timeout:    cfg.API.Timeout,
		HealthPath: cfg.API.HealthPath,
	}, gateway.WithLogger(log))
	if err != nil {
		log.Error("gateway", zap.Error(err))
		_ = closeLog()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := platformclock.NewSystemClock()
	svc := console.NewServices(client, cfg.Fallback, clk, log)
	app := console.NewApp(svc, client, domain.UserID(cfg.UserID), clk, console.WithLogger(log))

	app.CheckOnline(ctx, cfg.API.Timeout)
	if cfg.Fallback.OnlineCheckInterval > 0 {
		go app.StartOnlineStatusWatcher(ctx, cfg.Fallback.OnlineCheckInterval)
	}

	log.Info("clubsctl started",
		zap.String("api", cfg.API.BaseURL),
		zap.String("mode", string(app.Mode())),
	)
	app.Run(ctx)
}
