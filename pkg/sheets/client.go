package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
	// Endpoint overrides the API endpoint, used against fakes
	Endpoint string
	Options  []option.ClientOption
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	opts := append([]option.ClientOption(nil), cfg.Options...)

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	case len(cfg.Options) == 0:
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}

	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// AppendRows appends rows after the last row of range_ and returns how many rows the API reports updated
func (c *Client) AppendRows(ctx context.Context, spreadsheetID, range_ string, rows [][]any) (int, error) {
	if c.service == nil {
		return 0, fmt.Errorf("sheets: service is nil")
	}

	resp, err := c.service.Spreadsheets.Values.Append(spreadsheetID, range_, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("sheets: append: %w", err)
	}

	if resp.Updates == nil {
		return 0, nil
	}
	return int(resp.Updates.UpdatedRows), nil
}

// ClearRange empties range_ without deleting the rows
func (c *Client) ClearRange(ctx context.Context, spreadsheetID, range_ string) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, range_, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: clear: %w", err)
	}
	return nil
}
