package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-mapgen/internal/noise"
	"github.com/KirkDiggler/rpg-mapgen/internal/playback/stream"
)

var (
	serveAddr  string
	serveDelay time.Duration
	serveStep  bool
	serveNoise string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stream generator frames over websockets",
	Long: `Start an HTTP server. GET /runs/{generator}?seed=N upgrades to a
websocket and streams every frame as JSON. Without --redis, runs stored
with store=true live in memory until the server stops.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().DurationVar(&serveDelay, "delay", stream.DefaultDelay, "pause between frames")
	serveCmd.Flags().BoolVar(&serveStep, "step", false, "wait for a \"next\" message before each frame")
	serveCmd.Flags().StringVar(&serveNoise, "noise", noise.BasisSimplex.String(), "default noise basis; requests override it with ?noise=")
}

func runServe(cmd *cobra.Command, _ []string) error {
	basis, err := noise.ParseBasis(serveNoise)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := newService(ctx, storeInMemory)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := stream.NewHandler(&stream.Config{
		Service: svc,
		Delay:   serveDelay,
		Step:    serveStep,
		Noise:   basis,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Frame stream starting", "addr", serveAddr, "step", serveStep, "delay", serveDelay)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down frame stream")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown failed", "error", err)
			return srv.Close()
		}
		slog.Info("Frame stream stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
