package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nijaru/podsum/config"
	"github.com/nijaru/podsum/handlers/api"
	"github.com/nijaru/podsum/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing the summarization API.

Endpoints:
  POST /       summarize the video URL found in the command field
  GET  /health health check`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogDir, cfg.Debug); err != nil {
		return err
	}

	// The server starts without a process-level credential; requests
	// then must carry their own via the override header.
	if cfg.OpenRouter.APIKey == "" {
		logrus.Warn("OPENROUTER_API_KEY not set, requests need a per-request key")
	}

	server := api.NewServer(cfg, api.WithService(newSummarizerService(cfg)))

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-shutdownChan:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
