package mcp

import (
	"context"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/internal/mcp/tools"
	"github.com/honeycarbs/job-board/pkg/logging"
)

type stubJobs struct {
	env   domain.Envelope
	pages []int
}

func (s *stubJobs) FetchJobs(_ context.Context, page, limit int, _ map[string]string) domain.Envelope {
	s.pages = append(s.pages, page)
	return s.env
}

type fakeRows struct {
	spreadsheetID string
	appendRange   string
	cleared       string
	rows          [][]any
}

func (f *fakeRows) AppendRows(_ context.Context, spreadsheetID, range_ string, rows [][]any) (int, error) {
	f.spreadsheetID = spreadsheetID
	f.appendRange = range_
	f.rows = rows
	return len(rows), nil
}

func (f *fakeRows) ClearRange(_ context.Context, _ string, range_ string) error {
	f.cleared = range_
	return nil
}

func connect(t *testing.T, srv *Server) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	ct, st := sdkmcp.NewInMemoryTransports()
	_, err := srv.MCP().Connect(ctx, st, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func sampleJobs() domain.Envelope {
	return domain.Succeeded([]domain.JobRecord{
		{ID: "1", Title: "Engineer", Salary: "$1200", Category: domain.CategoryIT, Location: domain.LocationRemote, PostedDate: "2026-10-16"},
		{ID: "2", Title: "Designer", Salary: "$3400", Category: domain.CategoryDesign, Location: domain.LocationHybrid, PostedDate: "2026-10-16"},
	}, 100, 1, 10)
}

func textOf(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestListJobsTool(t *testing.T) {
	jobs := &stubJobs{env: sampleJobs()}
	srv, err := NewServer(logging.NewNop(), jobs, NewSheetsExporter(nil), nil)
	require.NoError(t, err)
	session := connect(t, srv)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "list_jobs",
		Arguments: map[string]any{"page": 2, "search": "engin"},
	})
	require.NoError(t, err)

	assert.False(t, res.IsError)
	text := textOf(t, res)
	assert.Contains(t, text, "Engineer")
	assert.NotContains(t, text, "Designer")
	assert.Equal(t, []int{2}, jobs.pages)
}

func TestListJobsToolEmptyAndFailure(t *testing.T) {
	jobs := &stubJobs{env: sampleJobs()}
	srv, err := NewServer(logging.NewNop(), jobs, NewSheetsExporter(nil), nil)
	require.NoError(t, err)
	session := connect(t, srv)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "list_jobs",
		Arguments: map[string]any{"search": "zzz"},
	})
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), "No jobs found")

	jobs.env = domain.Failed("Server error", 500)
	res, err = session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "list_jobs",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "Server error")
}

func TestSheetsExportTool(t *testing.T) {
	rows := &fakeRows{}
	srv, err := NewServer(logging.NewNop(), &stubJobs{env: sampleJobs()}, NewSheetsExporter(rows), nil)
	require.NoError(t, err)
	session := connect(t, srv)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name: "sheets_export",
		Arguments: map[string]any{
			"category": "Design",
			"sheet":    map[string]any{"spreadsheet_id": "sheet-1", "clear_tab": true},
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, textOf(t, res))

	assert.Equal(t, "sheet-1", rows.spreadsheetID)
	assert.Equal(t, "Jobs!A1", rows.appendRange)
	assert.Equal(t, "Jobs!A1:Z", rows.cleared)
	require.Len(t, rows.rows, 2)
	assert.Equal(t, []any{"ID", "Title", "Salary", "Category", "Location", "PostedDate"}, rows.rows[0])
	assert.Equal(t, []any{"2", "Designer", "$3400", "Design", "Hybrid", "2026-10-16"}, rows.rows[1])
	assert.Contains(t, textOf(t, res), "exported 1 job(s)")
}

func TestExporterWithoutClearAppendsJobsOnly(t *testing.T) {
	rows := &fakeRows{}
	jobs := sampleJobs().Data

	n, err := NewSheetsExporter(rows).Export(context.Background(), tools.SheetTarget{SpreadsheetID: "s", Tab: "Feed"}, jobs)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Empty(t, rows.cleared)
	assert.Equal(t, "Feed!A1", rows.appendRange)
	require.Len(t, rows.rows, 2)
	assert.Equal(t, "1", rows.rows[0][0])
}

func TestExporterClearOnEmptyPageKeepsHeader(t *testing.T) {
	rows := &fakeRows{}

	n, err := NewSheetsExporter(rows).Export(context.Background(), tools.SheetTarget{SpreadsheetID: "s", ClearTab: true}, nil)
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.Equal(t, "Jobs!A1:Z", rows.cleared)
	require.Len(t, rows.rows, 1)
	assert.Equal(t, "ID", rows.rows[0][0])
}

func TestSheetsExportNotConfigured(t *testing.T) {
	srv, err := NewServer(logging.NewNop(), &stubJobs{env: sampleJobs()}, NewSheetsExporter(nil), nil)
	require.NoError(t, err)
	session := connect(t, srv)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "sheets_export",
		Arguments: map[string]any{"sheet": map[string]any{"spreadsheet_id": "sheet-1"}},
	})
	if err == nil {
		assert.True(t, res.IsError)
		assert.True(t, strings.Contains(textOf(t, res), "not configured"))
	}
}

func TestExporterIgnoresEmptyPage(t *testing.T) {
	rows := &fakeRows{}
	n, err := NewSheetsExporter(rows).Export(context.Background(), tools.SheetTarget{SpreadsheetID: "s"}, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Nil(t, rows.rows)
}

type memoryAttributes map[string]domain.Attributes

func (m memoryAttributes) LoadAttributes(_ context.Context, ids []string) (map[string]domain.Attributes, error) {
	out := make(map[string]domain.Attributes)
	for _, id := range ids {
		if a, ok := m[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func TestJobAttributesTool(t *testing.T) {
	store := memoryAttributes{
		"7": {JobID: "7", Salary: "$2500", Category: domain.CategoryMarketing, Location: domain.LocationRemote, PostedDate: "2026-10-01"},
	}
	srv, err := NewServer(logging.NewNop(), &stubJobs{env: sampleJobs()}, NewSheetsExporter(nil), store)
	require.NoError(t, err)
	session := connect(t, srv)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "job_attributes",
		Arguments: map[string]any{"job_ids": []string{"7", "8", "7"}},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := textOf(t, res)
	assert.Contains(t, text, "1 stored, 1 missing")
	assert.Contains(t, text, "#7 $2500 | Marketing | Remote | 2026-10-01")
	assert.Contains(t, text, "missing: 8")
}

func TestJobAttributesToolWithoutStore(t *testing.T) {
	srv, err := NewServer(logging.NewNop(), &stubJobs{env: sampleJobs()}, NewSheetsExporter(nil), nil)
	require.NoError(t, err)
	session := connect(t, srv)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "job_attributes",
		Arguments: map[string]any{"job_ids": []string{"1"}},
	})
	if err == nil {
		assert.True(t, res.IsError)
	}
}
