package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naka-gawa/portfolio/internal/gateway"
	"github.com/naka-gawa/portfolio/internal/handler"
	"github.com/naka-gawa/portfolio/internal/metrics"
	"github.com/naka-gawa/portfolio/internal/middleware"
	"github.com/naka-gawa/portfolio/internal/shell"
	"github.com/naka-gawa/portfolio/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		cfg, c, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		page, err := shell.New(c, shell.Options{WidgetEnabled: cfg.WidgetEnabled, Location: loc})
		if err != nil {
			return err
		}
		githubGateway, err := gateway.NewGitHubGateway(nil, cfg.GitHubAPIURL, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		collector := metrics.NewCollector(reg)

		limiter := middleware.NewRateLimiter(middleware.PerMinute(cfg.RateLimitPerMinute), logger)
		defer limiter.Stop()

		router := handler.NewRouter(&handler.RouterDeps{
			Shell:         page,
			Loader:        usecase.NewLoader(githubGateway, collector, logger),
			WidgetEnabled: cfg.WidgetEnabled,
			TrustProxy:    cfg.TrustProxy,
			RateLimiter:   limiter,
			Observer:      collector,
			Gatherer:      reg,
			Logger:        logger,
		})

		server := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server starting",
				zap.String("addr", server.Addr),
				zap.Bool("github_widget", cfg.WidgetEnabled),
				zap.String("handle", c.GitHub.Handle),
			)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server listen error: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		logger.Info("server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (env PORT)")
	serveCmd.Flags().Bool("github-widget", false, "Enable the GitHub activity widget (env GITHUB_WIDGET_ENABLED)")
	serveCmd.Flags().Bool("trust-proxy", false, "Take client IPs from X-Forwarded-For behind a reverse proxy (env TRUST_PROXY)")
}
