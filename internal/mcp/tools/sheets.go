package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/internal/listview"
	"github.com/honeycarbs/job-board/pkg/logging"
)

// ErrSheetsNotConfigured is returned by exporters without credentials
var ErrSheetsNotConfigured = errors.New("sheets: client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)")

// SheetsExporter writes job rows to a spreadsheet tab
type SheetsExporter interface {
	Export(ctx context.Context, target SheetTarget, jobs []domain.JobRecord) (int, error)
}

// SheetTarget identifies the destination tab
type SheetTarget struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, defaults to Jobs"`
	ClearTab      bool   `json:"clear_tab,omitempty" jsonschema:"Clear the whole tab and rewrite the header row first"`
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Page     int         `json:"page,omitempty" jsonschema:"1-based page number, defaults to 1"`
	Search   string      `json:"search,omitempty" jsonschema:"Case-insensitive title substring"`
	Category string      `json:"category,omitempty" jsonschema:"Exact category: IT, Design or Marketing"`
	Sheet    SheetTarget `json:"sheet" jsonschema:"Destination sheet information"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string    `json:"tab,omitempty" jsonschema:"Target tab name"`
	WrittenRows   int       `json:"written_rows" jsonschema:"How many rows were written"`
	CompletedAt   time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
	Message       string    `json:"message,omitempty" jsonschema:"Optional status message"`
}

type sheetsExportTool struct {
	jobs     JobFetcher
	exporter SheetsExporter
	logger   *logging.Logger
}

func RegisterExportTools(server *sdkmcp.Server, jobs JobFetcher, exporter SheetsExporter, logger *logging.Logger) error {
	if jobs == nil || exporter == nil {
		return fmt.Errorf("sheets_export: job service and exporter are required")
	}

	handler := sheetsExportTool{jobs: jobs, exporter: exporter, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "sheets_export",
		Description: "Export the filtered jobs of one listing page to a Google Sheets tab",
	}, handler.handle)

	if logger != nil {
		logger.Info("export tools registered", "tools", []string{"sheets_export"})
	}
	return nil
}

func (t sheetsExportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params.Sheet.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("sheet.spreadsheet_id is required")
	}
	if params.Sheet.Tab == "" {
		params.Sheet.Tab = "Jobs"
	}

	page, _ := normalizePaging(params.Page, 0)
	category := domain.Category(params.Category)
	if category != "" && !domain.ValidCategory(category) {
		return nil, nil, fmt.Errorf("unknown category %q", params.Category)
	}

	env := t.jobs.FetchJobs(ctx, page, listview.PageSize, nil)
	if !env.Success {
		return nil, nil, fmt.Errorf("fetch page %d: %s (status %d)", page, env.Message, env.Status)
	}

	visible := listview.Filter(env.Data, params.Search, category)

	result := SheetsExportResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           params.Sheet.Tab,
	}

	written, err := t.exporter.Export(ctx, params.Sheet, visible)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("sheets_export: export failed",
				"err", err,
				"spreadsheet_id", params.Sheet.SpreadsheetID,
				"rows", len(visible),
			)
		}
		return nil, nil, fmt.Errorf("export failed: %w", err)
	}

	result.WrittenRows = written
	result.CompletedAt = time.Now().UTC()
	result.Message = fmt.Sprintf("exported %d job(s) from page %d", written, page)

	if t.logger != nil {
		t.logger.Info("sheets_export completed",
			"spreadsheet_id", result.SpreadsheetID,
			"tab", result.Tab,
			"written_rows", result.WrittenRows,
		)
	}

	return textResult("[sheets_export] " + result.Message), result, nil
}
