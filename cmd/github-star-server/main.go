// Command github-star-server runs the GitHub star MCP server: starring, searching, and
// statistics tools over a GitHub account, served over SSE.
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

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mcp "github.com/starbeam-labs/github-star-mcp"
	"github.com/starbeam-labs/github-star-mcp/servers/github"
)

const (
	serverName    = "github_star_classifier"
	serverVersion = "1.1.0"
)

func main() {
	var (
		host  string
		port  int
		debug bool
	)

	cmd := &cobra.Command{
		Use:          "github-star-server",
		Short:        "MCP server exposing GitHub starring tools over SSE",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), host, port, debug)
		},
	}
	cmd.Flags().StringVar(&host, "host", "localhost", "interface to listen on")
	cmd.Flags().IntVarP(&port, "port", "p", 38000, "port to listen on")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, host string, port int, debug bool) error {
	// .env is optional; the token can also come from token files or the environment.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	token := github.DefaultToken()
	if token == "" {
		logger.Warn("no GitHub token found, running with anonymous rate limits")
	}

	server := mcp.NewServer(
		mcp.Info{Name: serverName, Version: serverVersion},
		github.NewServer(token).ToolSet(),
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
