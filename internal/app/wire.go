//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/job-board/internal/config"
	"github.com/honeycarbs/job-board/internal/domain/job"
	"github.com/honeycarbs/job-board/pkg/logging"
	"github.com/honeycarbs/job-board/pkg/placeholder"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	wire.Build(
		// Infrastructure - JSONPlaceholder
		providePlaceholderConfig,
		placeholder.NewClient,

		// Sources and storage
		provideSource,
		provideAttributeStore,

		// Services
		job.NewServiceWithDeps,
		provideSheetsExporter,
		newResources,
	)

	return nil, nil, nil
}
