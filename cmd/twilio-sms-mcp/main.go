package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/twilio-sms-mcp/internal/config"
	"github.com/roivaz/twilio-sms-mcp/internal/logging"
	"github.com/roivaz/twilio-sms-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "twilio-sms-mcp",
		Short:        "MCP server exposing the Twilio SMS inbox as read-only tools",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("config-file", "", "Path to a JSON/YAML file with accountSid, authToken and phoneNumber")
	root.PersistentFlags().String("transport", config.TransportStdio, "Transport to serve: stdio or http")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("endpoint-path", "/mcp", "HTTP path of the MCP endpoint")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "twilio-sms-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logging.New(logging.NewLogr(config.LogLevel())).WithName("twilio-sms-mcp")
	srv := mcp.New(mcp.DefaultConfig(log))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch config.Transport() {
	case config.TransportStdio:
		return srv.ServeStdio(ctx)
	case config.TransportHTTP:
		return serveHTTP(ctx, srv, log)
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)", config.Transport(), config.TransportStdio, config.TransportHTTP)
	}
}

func serveHTTP(ctx context.Context, srv *mcp.Server, log logging.Logger) error {
	addr := config.Host() + ":" + strconv.Itoa(config.Port())
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("MCP server listening", "addr", addr, "endpoint", config.EndpointPath())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
