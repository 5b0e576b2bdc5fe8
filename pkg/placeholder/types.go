package placeholder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Config defines JSONPlaceholder client settings
type Config struct {
	BaseURL    string
	Resource   string // collection path, "posts" when empty
	HTTPClient *http.Client
}

// Client queries a JSONPlaceholder-compatible REST collection
type Client struct {
	baseURL    string
	resource   string
	httpClient *http.Client
}

// PageQuery describes one paginated collection request
type PageQuery struct {
	Page    int
	Limit   int
	Filters map[string]string // passed through as extra query params
}

// PostPage is one page of posts plus the collection size reported by the server
type PostPage struct {
	Posts []Post
	// Total is the X-Total-Count header value; HasTotal is false when the header was absent or malformed
	Total    int
	HasTotal bool
}

// Post is a single record of the collection
type Post struct {
	ID     ID     `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// ID accepts both numeric and string identifiers and keeps the textual form
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("placeholder: id must be string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// APIError is returned for any non-2xx response
type APIError struct {
	StatusCode int
	// Message is the "message" field of a JSON error body, empty if none
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("placeholder: API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("placeholder: API error (%d)", e.StatusCode)
}

type errorBody struct {
	Message string `json:"message"`
}
