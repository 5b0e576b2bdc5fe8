package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/internal/listview"
	"github.com/honeycarbs/job-board/pkg/logging"
)

// JobFetcher is the job service as seen by tools
type JobFetcher interface {
	FetchJobs(ctx context.Context, page, limit int, filters map[string]string) domain.Envelope
}

// ListJobsParams defines the arguments for the list_jobs tool
type ListJobsParams struct {
	Page     int               `json:"page,omitempty" jsonschema:"1-based page number, defaults to 1"`
	Limit    int               `json:"limit,omitempty" jsonschema:"Jobs per page, defaults to 10"`
	Search   string            `json:"search,omitempty" jsonschema:"Case-insensitive title substring applied to the fetched page"`
	Category string            `json:"category,omitempty" jsonschema:"Exact category: IT, Design or Marketing"`
	Filters  map[string]string `json:"filters,omitempty" jsonschema:"Extra query parameters forwarded to the source API"`
}

// ListJobsResult is the structured response of list_jobs
type ListJobsResult struct {
	Envelope domain.Envelope    `json:"envelope" jsonschema:"Raw fetch outcome for the page"`
	Visible  []domain.JobRecord `json:"visible" jsonschema:"Jobs of the page matching search and category"`
}

type listJobsTool struct {
	jobs   JobFetcher
	logger *logging.Logger
}

func RegisterJobTools(server *sdkmcp.Server, jobs JobFetcher, logger *logging.Logger) error {
	if jobs == nil {
		return fmt.Errorf("list_jobs: job service is required")
	}

	handler := listJobsTool{jobs: jobs, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_jobs",
		Description: "Fetch one page of job listings and filter it by title search and category",
	}, handler.handle)

	if logger != nil {
		logger.Info("job tools registered", "tools", []string{"list_jobs"})
	}
	return nil
}

func (t listJobsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params ListJobsParams) (*sdkmcp.CallToolResult, any, error) {
	page, limit := normalizePaging(params.Page, params.Limit)
	category := domain.Category(params.Category)

	if category != "" && !domain.ValidCategory(category) {
		return nil, nil, fmt.Errorf("unknown category %q", params.Category)
	}

	if t.logger != nil {
		t.logger.Info("list_jobs request",
			"page", page,
			"limit", limit,
			"search", params.Search,
			"category", category,
		)
	}

	env := t.jobs.FetchJobs(ctx, page, limit, params.Filters)
	result := ListJobsResult{Envelope: env, Visible: []domain.JobRecord{}}

	if !env.Success {
		msg := fmt.Sprintf("[list_jobs] %s (status %d)", env.Message, env.Status)
		res := textResult(msg)
		res.IsError = true
		return res, result, nil
	}

	result.Visible = listview.Filter(env.Data, params.Search, category)

	return textResult(formatJobs(result, page)), result, nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = listview.PageSize
	}
	return page, limit
}

func formatJobs(result ListJobsResult, page int) string {
	if len(result.Visible) == 0 {
		return fmt.Sprintf("[list_jobs] page %d: %s", page, listview.EmptyMessage)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[list_jobs] page %d: %d of %d fetched job(s) match (total %d)\n",
		page, len(result.Visible), len(result.Envelope.Data), result.Envelope.Total)
	for _, job := range result.Visible {
		fmt.Fprintf(&b, "\n• #%s %s | %s | %s | %s", job.ID, job.Title, job.Salary, job.Category, job.Location)
	}
	return b.String()
}
