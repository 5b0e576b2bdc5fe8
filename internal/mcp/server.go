package mcp

import (
	"fmt"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-board/internal/mcp/tools"
	"github.com/honeycarbs/job-board/pkg/logging"
)

const (
	ServerName    = "job-board"
	ServerVersion = "0.1.0"
	StreamPath    = "/mcp/stream"
)

// Server exposes the job tools over MCP streamable HTTP
type Server struct {
	logger  *logging.Logger
	server  *sdkmcp.Server
	handler http.Handler
}

// NewServer registers every tool and prepares the HTTP handler; store may be nil
func NewServer(log *logging.Logger, jobs tools.JobFetcher, exporter tools.SheetsExporter, store tools.AttributeLoader) (*Server, error) {
	impl := &sdkmcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	if err := tools.RegisterJobTools(mcpServer, jobs, log); err != nil {
		return nil, fmt.Errorf("mcp: register job tools: %w", err)
	}
	if err := tools.RegisterExportTools(mcpServer, jobs, exporter, log); err != nil {
		return nil, fmt.Errorf("mcp: register export tools: %w", err)
	}
	if err := tools.RegisterAttributeTools(mcpServer, store, log); err != nil {
		return nil, fmt.Errorf("mcp: register attribute tools: %w", err)
	}

	handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	return &Server{
		logger:  log,
		server:  mcpServer,
		handler: handler,
	}, nil
}

// Handler serves the streamable HTTP transport
func (s *Server) Handler() http.Handler {
	return s.handler
}

// MCP returns the underlying SDK server, e.g. for in-memory transports
func (s *Server) MCP() *sdkmcp.Server {
	return s.server
}
