package placeholder

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/job-board/internal/domain"
	jobdomain "github.com/honeycarbs/job-board/internal/domain/job"
	"github.com/honeycarbs/job-board/pkg/placeholder"
)

// listClient describes the subset of the placeholder client used by the provider.
type listClient interface {
	ListPosts(ctx context.Context, q placeholder.PageQuery) (placeholder.PostPage, error)
}

// Provider implements job.Source using the JSONPlaceholder posts collection
type Provider struct {
	client listClient
}

// NewProvider builds a placeholder provider
func NewProvider(client listClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("placeholder provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "placeholder"
}

// FetchPage lists one page of posts and maps them onto domain posts
func (p *Provider) FetchPage(ctx context.Context, page, limit int, filters map[string]string) (jobdomain.Page, error) {
	if p == nil || p.client == nil {
		return jobdomain.Page{}, fmt.Errorf("placeholder provider: client is nil")
	}

	resp, err := p.client.ListPosts(ctx, placeholder.PageQuery{
		Page:    page,
		Limit:   limit,
		Filters: filters,
	})
	if err != nil {
		var apiErr *placeholder.APIError
		if errors.As(err, &apiErr) {
			return jobdomain.Page{}, &jobdomain.FetchError{
				Status:  apiErr.StatusCode,
				Message: apiErr.Message,
				Err:     err,
			}
		}
		return jobdomain.Page{}, err
	}

	posts := make([]domain.Post, 0, len(resp.Posts))
	for _, post := range resp.Posts {
		posts = append(posts, domain.Post{
			ID:     string(post.ID),
			UserID: post.UserID,
			Title:  post.Title,
			Body:   post.Body,
		})
	}

	return jobdomain.Page{
		Posts:    posts,
		Total:    resp.Total,
		HasTotal: resp.HasTotal,
	}, nil
}

var _ jobdomain.Source = (*Provider)(nil)
