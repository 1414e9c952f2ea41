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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/jianifeng/folio/internal/render"
	"github.com/jianifeng/folio/internal/server"
	"github.com/jianifeng/folio/internal/session"
	"github.com/jianifeng/folio/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         rootShort,
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: serve the site
			return runServe(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	cmd.PersistentFlags().BoolVar(&flags.pretty, "pretty", false, "Human readable logs (overrides LOG_FORMAT)")
	cmd.PersistentFlags().StringVar(&flags.content, "content", "", "Content YAML file (overrides FOLIO_CONTENT)")
	cmd.PersistentFlags().StringVar(&flags.contentDB, "content-db", "", "Content SQLite database (overrides FOLIO_CONTENT_DB)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newImportCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Long:  serveLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.port, "port", "", "Listen port (overrides PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, flags *rootFlags) error {
	a, err := newApp(cmd, flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint:    a.cfg.OTLPEndpoint,
		ServiceName: a.cfg.ServiceName,
		Version:     buildVersion(),
	})
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			a.log.Error(err, "flush traces")
		}
	}()

	if a.cfg.GinMode != "" {
		gin.SetMode(a.cfg.GinMode)
	}

	catalog, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}
	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}

	sessions := session.NewRegistry(a.cfg.SessionTTL, a.log)
	srv := server.New(render.NewComposer(renderer, catalog), sessions, server.Options{
		Assets:         a.cfg.Assets,
		Logger:         a.log,
		TracerProvider: otel.GetTracerProvider(),
	})

	httpServer := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.log.With("addr", httpServer.Addr, "tracing", tracing.Enabled()).Info("serving portfolio")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return sessions.Run(gctx, sweepInterval(a.cfg.SessionTTL))
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.log.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func sweepInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/2, time.Second), time.Minute)
}
