package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vireo-dev/vireo/pkg/collections"
	"github.com/vireo-dev/vireo/pkg/metrics"
	"github.com/vireo-dev/vireo/pkg/stream"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a demo WebSocket feed with Prometheus metrics",
		Long: `Start an HTTP server that mutates a demo list on a timer and streams
the resulting change events to WebSocket clients.

Endpoints:
  /stream/ws       WebSocket change feed
  /stream/healthz  Liveness check
  /metrics         Prometheus metrics

Examples:
  vireo-bench serve
  vireo-bench serve --addr=:9090 --interval=100ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, interval)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "Mutation interval")

	return cmd
}

func runServe(addr string, interval time.Duration) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	events := collections.NewList[string]()

	broadcaster := stream.NewBroadcaster(stream.WithLogger(logger))
	defer broadcaster.Close()
	stream.Watch[string](broadcaster, "events", events)

	collector := metrics.NewCollector()
	metrics.Observe[string](collector, "events", events)

	router := chi.NewRouter()
	router.Use(chimw.Recoverer)
	router.Mount("/stream", broadcaster.Routes())
	router.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		seq := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				seq++
				events.Append(fmt.Sprintf("event-%d at %s", seq, time.Now().Format(time.RFC3339)))
				if events.Len() > 50 {
					events.RemoveAt(0)
				}
			}
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("demo feed listening", "addr", addr, "interval", interval)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
