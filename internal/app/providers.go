package app

import (
	"context"
	"fmt"

	"github.com/honeycarbs/job-board/internal/config"
	"github.com/honeycarbs/job-board/internal/domain/job"
	placeholderProvider "github.com/honeycarbs/job-board/internal/domain/job/providers/placeholder"
	"github.com/honeycarbs/job-board/internal/mcp"
	storage "github.com/honeycarbs/job-board/internal/storage/neo4j"
	redisstore "github.com/honeycarbs/job-board/internal/storage/redis"
	"github.com/honeycarbs/job-board/pkg/logging"
	n4j "github.com/honeycarbs/job-board/pkg/neo4j"
	"github.com/honeycarbs/job-board/pkg/placeholder"
	"github.com/honeycarbs/job-board/pkg/sheets"
)

// Resources holds the long-lived services shared by the web server, MCP tools and CLI
type Resources struct {
	JobService job.Service
	Exporter   *mcp.SheetsExporter
	// AttributeStore is nil when ATTRIBUTE_STORE=none
	AttributeStore job.AttributeStore
}

// providePlaceholderConfig extracts placeholder client config from main config
func providePlaceholderConfig(cfg config.Config) placeholder.Config {
	return placeholder.Config{
		BaseURL: cfg.Placeholder.BaseURL,
	}
}

// provideSource creates the placeholder-backed job source
func provideSource(client *placeholder.Client) (job.Source, error) {
	return placeholderProvider.NewProvider(client)
}

// provideAttributeStore opens the configured attribute backend. With "none" the
// store is nil and synthetic fields are regenerated on every fetch.
func provideAttributeStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (job.AttributeStore, func(), error) {
	switch cfg.AttributeStore {
	case config.StoreNeo4j:
		client, err := n4j.NewClient(ctx, n4j.Config{
			URI:      cfg.Neo4j.URI,
			Username: cfg.Neo4j.Username,
			Password: cfg.Neo4j.Password,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("neo4j attribute store: %w", err)
		}
		logger.Info("attribute store ready", "backend", config.StoreNeo4j)
		cleanup := func() {
			if err := client.Close(context.Background()); err != nil {
				logger.Warn("failed to close neo4j client", "err", err)
			}
		}
		return storage.NewAttributeRepository(client), cleanup, nil

	case config.StoreRedis:
		client, err := redisstore.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("redis attribute store: %w", err)
		}
		store := redisstore.NewAttributeStore(client, cfg.Redis.TTL)
		logger.Info("attribute store ready", "backend", config.StoreRedis, "ttl", cfg.Redis.TTL)
		cleanup := func() {
			if err := store.Close(); err != nil {
				logger.Warn("failed to close redis client", "err", err)
			}
		}
		return store, cleanup, nil

	default:
		logger.Info("attribute store disabled, synthetic fields regenerate per fetch")
		return nil, func() {}, nil
	}
}

// provideSheetsExporter builds the exporter; without credentials it reports not configured on use
func provideSheetsExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (*mcp.SheetsExporter, error) {
	if cfg.Sheets.CredentialsPath == "" {
		logger.Info("sheets export disabled", "reason", "GOOGLE_SHEETS_CREDENTIALS_PATH not set")
		return mcp.NewSheetsExporter(nil), nil
	}

	client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		return nil, err
	}
	return mcp.NewSheetsExporter(client), nil
}

// newResources creates Resources struct
func newResources(jobService job.Service, exporter *mcp.SheetsExporter, store job.AttributeStore) *Resources {
	return &Resources{
		JobService:     jobService,
		Exporter:       exporter,
		AttributeStore: store,
	}
}
