package mcp

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roivaz/twilio-sms-mcp/internal/logging"
)

const (
	ServerName    = "twilio-sms-mcp"
	ServerVersion = "1.0.0"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	log     logging.Logger
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	// Unregistered names are rejected by mcp-go before reaching the adapter.
	for _, tool := range cfg.Tools {
		mcpServer.AddTool(tool, cfg.Adapter.ToolAdapter)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	endpoint := cfg.EndpointPath
	if endpoint == "" {
		endpoint = "/mcp"
	}
	mux := http.NewServeMux()
	mux.Handle(endpoint, httpServer)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: mux,
		log:     cfg.Logger.WithName("mcp"),
	}
}

// ServeStdio speaks MCP over the process's stdin/stdout until ctx is done or
// stdin closes.
func (s *Server) ServeStdio(ctx context.Context) error {
	stdio := server.NewStdioServer(s.MCP)
	stdio.SetErrorLogger(s.log.StdLogger())
	s.log.Info("MCP server running on stdio")
	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
