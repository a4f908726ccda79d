// @title Guestbook API
// @version 1.0
// @description Public guestbook with spam-resistant submissions.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guestbook/internal/config"
	"guestbook/internal/db"
	"guestbook/internal/geoip"
	"guestbook/internal/handler"
	gh "guestbook/internal/http"
	"guestbook/internal/metrics"
	"guestbook/internal/network"
	"guestbook/internal/repository"
	"guestbook/internal/scheduler"
	"guestbook/internal/service"
	"guestbook/pkg/logger"
	"guestbook/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Error("guestbook failed", "module", "main", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))
	metrics.Init()

	if err := snowflake.Init(0); err != nil {
		return err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()
	logger.Info("database ready", "module", "main", "path", cfg.DBPath)

	entries := repository.NewEntryRepository(database)

	clients := network.NewClientFactory(network.StaticProxy(cfg.ProxyURL))
	geo, err := geoip.NewClient(geoip.Config{
		BaseURL: cfg.GeoAPIURL,
		Timeout: cfg.GeoTimeout,
	}, clients)
	if err != nil {
		return fmt.Errorf("create geo client: %w", err)
	}
	defer geo.Close()

	prober := network.NewProber(network.ProbeConfig{
		Mode:    network.ProbeMode(cfg.ProbeMode),
		Timeout: cfg.ProbeTimeout,
		Ports:   cfg.ProbePorts,
	})

	limiter := service.NewRateLimiter(entries, cfg.WhitelistedIPs)
	admissionService := service.NewAdmissionService(entries, limiter, prober, geo, service.Limits{
		MaxCommentLen: cfg.MaxCommentLen,
		MaxNameLen:    cfg.MaxNameLen,
		MaxSiteLen:    cfg.MaxSiteLen,
		HoursPerPost:  cfg.HoursPerPost,
	})

	var snapshotter service.StatusSnapshotter
	if cfg.ShowStatus {
		statusService := service.NewStatusService(entries, prober)
		snapshotter = statusService
		sched := scheduler.New(statusService, cfg.StatusInterval)
		sched.Start()
		defer sched.Stop()
	}
	guestbookService := service.NewGuestbookService(entries, cfg.PostsPerPage, snapshotter)
	feedService := service.NewFeedService(entries, service.FeedConfig{
		Title:      cfg.SiteTitle,
		Permalink:  cfg.Permalink,
		FaviconAPI: cfg.FaviconAPI,
	})

	guestbookHandler := handler.NewGuestbookHandler(guestbookService, admissionService, handler.SiteInfo{
		SiteTitle:     cfg.SiteTitle,
		Root:          cfg.Root,
		Permalink:     cfg.Permalink,
		FaviconAPI:    cfg.FaviconAPI,
		MaxCommentLen: cfg.MaxCommentLen,
		MaxNameLen:    cfg.MaxNameLen,
		MaxSiteLen:    cfg.MaxSiteLen,
		HoursPerPost:  cfg.HoursPerPost,
		PostsPerPage:  cfg.PostsPerPage,
		ShowStatus:    cfg.ShowStatus,
		Cloudflare:    cfg.Cloudflare,
	})
	feedHandler := handler.NewFeedHandler(feedService)

	e := gh.NewRouter(guestbookHandler, feedHandler, gh.Options{
		Root:      cfg.Root,
		StaticDir: cfg.StaticDir,
		Swagger:   cfg.Swagger,
		Throttle: gh.ThrottleConfig{
			RPS:        cfg.SubmitRPS,
			Burst:      cfg.SubmitBurst,
			Cloudflare: cfg.Cloudflare,
			Exempt:     limiter.Allowed,
		},
	})

	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "module", "main", "addr", server.Addr, "root", cfg.Root)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down", "module", "main")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
