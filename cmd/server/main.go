package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/job-board/internal/app"
	"github.com/honeycarbs/job-board/internal/config"
	"github.com/honeycarbs/job-board/internal/mcp"
	"github.com/honeycarbs/job-board/internal/web"
	"github.com/honeycarbs/job-board/pkg/logging"
	"github.com/honeycarbs/job-board/pkg/shutdown"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	resources, cleanup, err := app.InitializeResources(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	mcpSrv, err := mcp.NewServer(logger.Named("mcp"), resources.JobService, resources.Exporter, resources.AttributeStore)
	if err != nil {
		cleanup()
		logger.Error("failed to build MCP server", "err", err)
		os.Exit(1)
	}

	srv, err := web.NewServer(logger.Named("http"), cfg, resources.JobService, mcpSrv.Handler())
	if err != nil {
		cleanup()
		logger.Error("failed to build HTTP server", "err", err)
		os.Exit(1)
	}

	stopped := shutdown.Watch(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		10*time.Second,
		logger,
		srv,
		shutdown.StopFunc(func(context.Context) error {
			cleanup()
			return nil
		}),
	)

	logger.Info("job board starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"attribute_store", cfg.AttributeStore,
		"mcp", web.MCPStreamPath,
	)

	if err := srv.Run(); err != nil {
		logger.Error("HTTP server exited with error", "err", err)
		cleanup()
		os.Exit(1)
	}

	// Run returns as soon as Shutdown starts; wait for the drain and store cleanup
	<-stopped
	logger.Info("HTTP server stopped")
}
