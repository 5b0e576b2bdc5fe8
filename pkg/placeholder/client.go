package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

const (
	defaultBaseURL   = "https://jsonplaceholder.typicode.com"
	defaultResource  = "posts"
	TotalCountHeader = "X-Total-Count"
)

// NewClient instantiates a JSONPlaceholder client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("placeholder: parse base url: %w", err)
	}

	resource := strings.Trim(cfg.Resource, "/")
	if resource == "" {
		resource = defaultResource
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		resource:   resource,
		httpClient: httpClient,
	}, nil
}

// ListPosts fetches one page of the collection in a single attempt
func (c *Client) ListPosts(ctx context.Context, q PageQuery) (PostPage, error) {
	if c == nil {
		return PostPage{}, fmt.Errorf("placeholder: client is nil")
	}

	u, err := c.buildListURL(q)
	if err != nil {
		return PostPage{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return PostPage{}, fmt.Errorf("placeholder: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return PostPage{}, fmt.Errorf("placeholder: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return PostPage{}, newAPIError(resp)
	}

	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return PostPage{}, fmt.Errorf("placeholder: decode response: %w", err)
	}

	page := PostPage{Posts: posts}
	if v := strings.TrimSpace(resp.Header.Get(TotalCountHeader)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			page.Total = n
			page.HasTotal = true
		}
	}

	return page, nil
}

func (c *Client) buildListURL(q PageQuery) (string, error) {
	if q.Page < 1 || q.Limit < 1 {
		return "", fmt.Errorf("placeholder: page and limit must be positive (page=%d, limit=%d)", q.Page, q.Limit)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("placeholder: parse base url: %w", err)
	}

	u.Path = path.Join(u.Path, c.resource)

	values := url.Values{}
	for k, v := range q.Filters {
		if k == "" {
			continue
		}
		values.Set(k, v)
	}
	// pagination wins over same-named filters
	values.Set("_page", strconv.Itoa(q.Page))
	values.Set("_limit", strconv.Itoa(q.Limit))

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}

	var eb errorBody
	if len(body) > 0 && json.Unmarshal(body, &eb) == nil {
		apiErr.Message = strings.TrimSpace(eb.Message)
	}

	return apiErr
}
