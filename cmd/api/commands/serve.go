package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/GoSim-25-26J-441/projects-overview/internal/bootstrap"
	"github.com/GoSim-25-26J-441/projects-overview/internal/identity"
	"github.com/GoSim-25-26J-441/projects-overview/internal/logging"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/view"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the HTTP server: the projects page, its live socket, the JSON API,
health checks and metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on, overrides PORT")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	renderer, err := view.NewRenderer(cfg.Projects.DateLayout)
	if err != nil {
		return err
	}

	deps := bootstrap.RouterDeps{
		ServiceName:    "projects-overview",
		Version:        cfg.App.Version,
		Catalog:        a.catalog,
		Projects:       a.projects,
		Renderer:       renderer,
		User:           identity.FromConfig(cfg.Identity),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimit:      cfg.Server.RateLimit,
		RateBurst:      cfg.Server.RateBurst,
	}
	if a.redisRepo != nil {
		deps.Redis = a.redisRepo
	}

	g, gctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      bootstrap.BuildRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		// live sessions end with the server
		BaseContext: func(net.Listener) context.Context { return gctx },
	}

	g.Go(func() error {
		logging.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.App.Environment).
			Str("catalog", a.catalog).
			Dur("fetch_delay", cfg.Projects.FetchDelay).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logging.Info().Msg("server stopped")
	return nil
}
