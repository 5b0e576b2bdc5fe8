package job

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/pkg/logging"
)

const (
	DefaultFailureMessage = "Failed to fetch job listings"
	DefaultFailureStatus  = http.StatusInternalServerError
)

type Service interface {
	// FetchJobs never returns a Go error; every failure is folded into a Failure envelope
	FetchJobs(ctx context.Context, page, limit int, filters map[string]string) domain.Envelope
}

// Option configures Service
type Option func(*config)

type config struct {
	source FetchSource
	store  AttributeStore
	logger *logging.Logger
	intN   func(n int) int
	clock  func() time.Time
}

// FetchSource is the subset of Source the service calls
type FetchSource interface {
	FetchPage(ctx context.Context, page, limit int, filters map[string]string) (Page, error)
}

// WithSource sets the post source
func WithSource(source FetchSource) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithAttributeStore makes synthetic attributes stable per job ID
func WithAttributeStore(store AttributeStore) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRandom sets the random source used for synthetic attributes; intN must return [0, n)
func WithRandom(intN func(n int) int) Option {
	return func(c *config) {
		c.intN = intN
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.source == nil {
		return nil, fmt.Errorf("job.Service: source is required")
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	return &service{
		source:    cfg.source,
		store:     cfg.store,
		logger:    cfg.logger,
		decorator: NewDecorator(cfg.intN, cfg.clock),
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible); store may be nil
func NewServiceWithDeps(source Source, store AttributeStore, logger *logging.Logger) (Service, error) {
	return NewService(
		WithSource(source),
		WithAttributeStore(store),
		WithLogger(logger),
	)
}

type service struct {
	source    FetchSource
	store     AttributeStore
	logger    *logging.Logger
	decorator *Decorator
}

// FetchJobs fetches one page, decorates every post and wraps the outcome
func (s *service) FetchJobs(
	ctx context.Context,
	page, limit int,
	filters map[string]string,
) domain.Envelope {
	if page < 1 || limit < 1 {
		s.logger.Warn("rejected job fetch with non-positive paging", "page", page, "limit", limit)
		return domain.Failed("page and limit must be positive", http.StatusBadRequest)
	}

	result, err := s.source.FetchPage(ctx, page, limit, filters)
	if err != nil {
		s.logger.Error("error fetching jobs", "err", err, "page", page, "limit", limit)
		return failureFrom(err)
	}

	attrs := s.attributesFor(ctx, result.Posts)

	jobs := make([]domain.JobRecord, 0, len(result.Posts))
	for _, p := range result.Posts {
		jobs = append(jobs, domain.NewJobRecord(p, attrs[p.ID]))
	}

	total := len(jobs)
	if result.HasTotal {
		total = result.Total
	}

	return domain.Succeeded(jobs, total, page, limit)
}

// attributesFor returns attributes for every post. Without a store, or when the store fails,
// attributes are freshly generated.
func (s *service) attributesFor(ctx context.Context, posts []domain.Post) map[string]domain.Attributes {
	out := make(map[string]domain.Attributes, len(posts))

	if s.store == nil {
		for _, p := range posts {
			out[p.ID] = s.decorator.Generate(p.ID)
		}
		return out
	}

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	stored, err := s.store.LoadAttributes(ctx, ids)
	if err != nil {
		s.logger.Warn("attribute store load failed, generating attributes", "err", err, "jobs", len(ids))
		stored = nil
	}

	var fresh []domain.Attributes
	for _, p := range posts {
		if a, ok := stored[p.ID]; ok {
			a.JobID = p.ID
			out[p.ID] = a
			continue
		}
		if _, seen := out[p.ID]; seen {
			continue
		}
		a := s.decorator.Generate(p.ID)
		out[p.ID] = a
		fresh = append(fresh, a)
	}

	if len(fresh) > 0 {
		if err := s.store.SaveAttributes(ctx, fresh); err != nil {
			s.logger.Warn("attribute store save failed", "err", err, "jobs", len(fresh))
		}
	}

	return out
}

func failureFrom(err error) domain.Envelope {
	message := DefaultFailureMessage
	status := DefaultFailureStatus

	var fe *FetchError
	if errors.As(err, &fe) {
		if fe.Message != "" {
			message = fe.Message
		}
		if fe.Status != 0 {
			status = fe.Status
		}
	}

	return domain.Failed(message, status)
}
