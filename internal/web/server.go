package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/job-board/internal/config"
	"github.com/honeycarbs/job-board/internal/listview"
	"github.com/honeycarbs/job-board/internal/mcp"
	"github.com/honeycarbs/job-board/pkg/logging"
)

// MCPStreamPath is where the MCP streamable HTTP handler is mounted
const MCPStreamPath = mcp.StreamPath

// Server wraps the gin router with an HTTP listener
type Server struct {
	logger *logging.Logger
	srv    *http.Server
	engine *gin.Engine

	started atomic.Bool
}

// NewServer builds the router for the listing page, the JSON API and, when
// mcpHandler is non-nil, the MCP stream endpoint
func NewServer(log *logging.Logger, cfg config.Config, jobs listview.Fetcher, mcpHandler http.Handler) (*Server, error) {
	if jobs == nil {
		return nil, fmt.Errorf("web: job fetcher is required")
	}

	engine, err := newRouter(log, newHandlers(log, jobs, cfg.SessionTTL), mcpHandler)
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: log,
		srv:    httpSrv,
		engine: engine,
	}, nil
}

func newRouter(log *logging.Logger, h *handlers, mcpHandler http.Handler) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), accessLog(log))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", h.index)
	r.POST("/page/next", h.action(h.nextPage))
	r.POST("/page/previous", h.action(h.previousPage))
	r.POST("/filters/clear", h.action(h.clearFilters))
	r.POST("/filters/search/clear", h.action(h.clearSearch))
	r.POST("/filters/category/clear", h.action(h.clearCategory))
	r.POST("/retry", h.action(h.retry))
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}

	api := r.Group("/api/v1")
	api.Use(cors.New(corsCfg))
	{
		api.GET("/jobs", h.listJobs)
	}

	if mcpHandler != nil {
		r.Any(MCPStreamPath, gin.WrapH(mcpHandler))
	}

	return r, nil
}

// Handler exposes the router, e.g. for httptest
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
