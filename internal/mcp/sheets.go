package mcp

import (
	"context"
	"fmt"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/internal/mcp/tools"
)

// rowWriter is the subset of pkg/sheets.Client used for export
type rowWriter interface {
	AppendRows(ctx context.Context, spreadsheetID, range_ string, rows [][]any) (int, error)
	ClearRange(ctx context.Context, spreadsheetID, range_ string) error
}

// SheetsExporter maps job records onto spreadsheet rows
type SheetsExporter struct {
	client rowWriter
}

// NewSheetsExporter wraps a sheets client; a nil client yields an exporter that always reports not configured
func NewSheetsExporter(client rowWriter) *SheetsExporter {
	return &SheetsExporter{client: client}
}

// Export appends jobs to the target tab. ClearTab empties the whole tab and
// rewrites the header row before the jobs.
func (e *SheetsExporter) Export(ctx context.Context, target tools.SheetTarget, jobs []domain.JobRecord) (int, error) {
	if e == nil || e.client == nil {
		return 0, tools.ErrSheetsNotConfigured
	}

	rows := jobRows(jobs)
	if target.ClearTab {
		if err := e.client.ClearRange(ctx, target.SpreadsheetID, clearRange(target.Tab)); err != nil {
			return 0, fmt.Errorf("sheets: failed to clear tab: %w", err)
		}
		rows = append([][]any{headerRow()}, rows...)
	}

	if len(rows) == 0 {
		return 0, nil
	}

	if _, err := e.client.AppendRows(ctx, target.SpreadsheetID, appendRange(target.Tab), rows); err != nil {
		return 0, fmt.Errorf("sheets: failed to append rows: %w", err)
	}
	return len(jobs), nil
}

func appendRange(tab string) string {
	return fmt.Sprintf("%s!A1", tabOrDefault(tab))
}

func clearRange(tab string) string {
	return fmt.Sprintf("%s!A1:Z", tabOrDefault(tab))
}

func tabOrDefault(tab string) string {
	if tab == "" {
		return "Jobs"
	}
	return tab
}

func headerRow() []any {
	return []any{"ID", "Title", "Salary", "Category", "Location", "PostedDate"}
}

func jobRows(jobs []domain.JobRecord) [][]any {
	rows := make([][]any, len(jobs))
	for i, job := range jobs {
		rows[i] = []any{
			job.ID,
			job.Title,
			job.Salary,
			string(job.Category),
			string(job.Location),
			job.PostedDate,
		}
	}
	return rows
}

var _ tools.SheetsExporter = (*SheetsExporter)(nil)
