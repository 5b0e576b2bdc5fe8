package job

import (
	"context"

	"github.com/honeycarbs/job-board/internal/domain"
)

// AttributeStore keeps synthetic attributes so they stay stable across fetches of the same job
type AttributeStore interface {
	// LoadAttributes returns stored attributes keyed by job ID; unknown IDs are simply absent
	LoadAttributes(ctx context.Context, ids []string) (map[string]domain.Attributes, error)

	// SaveAttributes stores attributes, keeping any value already stored for the same job ID
	SaveAttributes(ctx context.Context, attrs []domain.Attributes) error
}
