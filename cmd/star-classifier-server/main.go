// Command star-classifier-server runs the star classification demo MCP server over SSE.
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

	"github.com/spf13/cobra"

	mcp "github.com/starbeam-labs/github-star-mcp"
	"github.com/starbeam-labs/github-star-mcp/servers/starclass"
)

const (
	serverName    = "star_classifier_demo"
	serverVersion = "1.0.0"
)

func main() {
	var (
		host  string
		port  int
		debug bool
	)

	cmd := &cobra.Command{
		Use:          "star-classifier-server",
		Short:        "Demo MCP server with star classification tools over SSE",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), host, port, debug)
		},
	}
	cmd.Flags().StringVar(&host, "host", "localhost", "interface to listen on")
	cmd.Flags().IntVarP(&port, "port", "p", 8000, "port to listen on")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, host string, port int, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	server := mcp.NewServer(
		mcp.Info{Name: serverName, Version: serverVersion},
		starclass.NewServer().ToolSet(),
		mcp.WithLogger(logger),
	)

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.String("addr", addr),
			slog.String("server", serverName),
			slog.String("version", serverVersion))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
