package job

import (
	"context"
	"fmt"

	"github.com/honeycarbs/job-board/internal/domain"
)

// Page is one page of raw posts returned by a Source
type Page struct {
	Posts []domain.Post
	// Total is the remote collection size; only meaningful when HasTotal is set
	Total    int
	HasTotal bool
}

// Source is an external paginated post collection (JSONPlaceholder, a mock API, etc.)
type Source interface {
	// e.g. "placeholder"
	Name() string

	// FetchPage returns one page; filters are forwarded uninterpreted.
	// Failures that carried an HTTP response should be reported as *FetchError.
	FetchPage(ctx context.Context, page, limit int, filters map[string]string) (Page, error)
}

// FetchError describes a failed fetch that produced a response
type FetchError struct {
	Status  int
	Message string // server-supplied message, empty if none
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch failed (%d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("fetch failed (%d): %s", e.Status, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
