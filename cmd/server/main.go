package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"leadgate/internal/platform/config"
	"leadgate/internal/platform/httpserver"
	"leadgate/internal/platform/logger"
	"leadgate/internal/platform/metrics"
	platformmw "leadgate/internal/platform/middleware"
	"leadgate/internal/ratelimit"
	ratelimitmw "leadgate/internal/ratelimit/middleware"
	"leadgate/internal/redirect"
	"leadgate/internal/submission/handler"
	"leadgate/internal/submission/service"
	"leadgate/internal/submission/store"
	httptransport "leadgate/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to open database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	m := metrics.New()

	limiter := ratelimit.New(
		ratelimit.WithWindow(cfg.RateLimitWindow),
		ratelimit.WithLimit(cfg.RateLimitMax),
		ratelimit.WithSweepInterval(cfg.RateLimitSweepInterval),
	)
	rateLimitMW := ratelimitmw.New(limiter, log,
		ratelimitmw.WithDisabled(cfg.RateLimitDisabled),
		ratelimitmw.WithMetrics(m),
	)

	router := redirect.New(cfg.GroupURLs, cfg.MastermindURL)

	applications := store.NewPostgres(db)
	submissions := service.New(applications, router,
		service.WithLogger(log),
		service.WithMetrics(m),
	)

	submissionHandler := handler.New(submissions, rateLimitMW, log)
	mux := httptransport.NewRouter(submissionHandler, platformmw.NewRequestLogger(log))

	srv := httpserver.New(cfg.Addr, mux)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		limiter.Start(ctx)
		return nil
	})

	g.Go(func() error {
		log.Info("starting leadgate", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}
