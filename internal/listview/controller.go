package listview

import (
	"context"
	"sync"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/pkg/logging"
)

// Fetcher is the subset of job.Service the controller needs
type Fetcher interface {
	FetchJobs(ctx context.Context, page, limit int, filters map[string]string) domain.Envelope
}

// Controller owns the list state for one viewer. It is safe for concurrent use; fetches
// run outside the lock and only the most recently issued fetch may update the state.
type Controller struct {
	fetcher Fetcher
	logger  *logging.Logger

	mu    sync.Mutex
	state State
	seq   uint64
}

// NewController creates a controller on page 1 in the loading state
func NewController(fetcher Fetcher, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Controller{
		fetcher: fetcher,
		logger:  logger,
		state:   initialState(),
	}
}

// Mount performs the initial fetch of the current page
func (c *Controller) Mount(ctx context.Context) {
	c.load(ctx)
}

// Next advances one page and refetches; it is a no-op when Next is disabled
func (c *Controller) Next(ctx context.Context) bool {
	c.mu.Lock()
	if !CanNext(c.state.CurrentPage, c.state.TotalCount) {
		c.mu.Unlock()
		return false
	}
	c.state.CurrentPage++
	c.mu.Unlock()

	c.load(ctx)
	return true
}

// Previous goes back one page and refetches; it is a no-op on page 1
func (c *Controller) Previous(ctx context.Context) bool {
	c.mu.Lock()
	if !CanPrevious(c.state.CurrentPage) {
		c.mu.Unlock()
		return false
	}
	c.state.CurrentPage--
	c.mu.Unlock()

	c.load(ctx)
	return true
}

// GoTo jumps to page (clamped to 1) and refetches
func (c *Controller) GoTo(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.state.CurrentPage = page
	c.mu.Unlock()

	c.load(ctx)
}

// Reload discards all state, as a full page reload would, and fetches page 1
func (c *Controller) Reload(ctx context.Context) {
	c.mu.Lock()
	c.state = initialState()
	c.mu.Unlock()

	c.load(ctx)
}

// SetSearch changes the title search term without refetching
func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SearchTerm = term
}

// SetCategory changes the category filter without refetching; "" means all categories
func (c *Controller) SetCategory(category domain.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CategoryFilter = category
}

// ClearFilters resets search and category
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SearchTerm = ""
	c.state.CategoryFilter = ""
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// View derives the presentation snapshot from the current state
func (c *Controller) View() View {
	return NewView(c.State())
}

func (c *Controller) load(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	page := c.state.CurrentPage
	c.state.IsLoading = true
	c.mu.Unlock()

	env := c.fetcher.FetchJobs(ctx, page, PageSize, map[string]string{})

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// a newer fetch is in flight and owns the loading flag
		c.logger.Debug("discarding superseded job page", "page", page, "seq", seq, "latest", c.seq)
		return
	}

	c.state.IsLoading = false

	if env.Success {
		c.state.Items = env.Data
		c.state.TotalCount = env.Total
		c.state.Error = ""
		return
	}

	msg := env.Message
	if msg == "" {
		msg = DefaultLoadError
	}
	c.state.Error = msg
	c.logger.Warn("job page failed to load", "page", page, "status", env.Status, "message", msg)
}
