// cmd/beams/cmd_serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"go-beams/internal/enhance"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the code enhancement endpoint",
	Long: `Starts an HTTP server with POST /api/enhance-code, which rewrites a code
snippet through a Gemini model. The API key comes from model.api_key,
BEAMS_MODEL_API_KEY, GEMINI_API_KEY or GOOGLE_API_KEY. Without a key the
server still starts and the endpoint answers 500.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
}

func newMux(service *enhance.Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/enhance-code", enhance.NewHandler(service, logger.Named("enhance")))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var completer enhance.Completer
	c, err := enhance.NewGenAICompleter(ctx, settings.Model)
	switch {
	case errors.Is(err, enhance.ErrNotConfigured):
		logger.Warn("no model API key configured, enhance requests will fail")
	case err != nil:
		return err
	default:
		completer = c
		logger.Info("model ready", zap.String("model", c.Name()))
	}

	addr := settings.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	server := &http.Server{
		Addr:        addr,
		Handler:     newMux(enhance.NewService(completer)),
		ReadTimeout: settings.Server.ReadTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
