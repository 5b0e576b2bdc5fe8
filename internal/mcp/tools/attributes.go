package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/pkg/logging"
)

const maxAttributeIDs = 100

// AttributeLoader reads persisted synthetic job fields
type AttributeLoader interface {
	LoadAttributes(ctx context.Context, ids []string) (map[string]domain.Attributes, error)
}

// JobAttributesParams defines the arguments for the job_attributes tool
type JobAttributesParams struct {
	JobIDs []string `json:"job_ids" jsonschema:"Job IDs to inspect"`
}

// JobAttributesResult lists stored attributes and the IDs that have none yet
type JobAttributesResult struct {
	Attributes []domain.Attributes `json:"attributes"`
	Missing    []string            `json:"missing,omitempty"`
}

type jobAttributesTool struct {
	store  AttributeLoader
	logger *logging.Logger
}

// RegisterAttributeTools registers job_attributes. A nil store keeps the tool
// listed but every call reports the store as disabled.
func RegisterAttributeTools(server *sdkmcp.Server, store AttributeLoader, logger *logging.Logger) error {
	handler := jobAttributesTool{store: store, logger: logger}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "job_attributes",
		Description: "Developer tool for inspecting the persisted salary, category, location and posted date of jobs",
	}, handler.handle)

	if logger != nil {
		logger.Info("attribute tools registered", "tools", []string{"job_attributes"}, "store_enabled", store != nil)
	}
	return nil
}

func (t jobAttributesTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params JobAttributesParams) (*sdkmcp.CallToolResult, any, error) {
	if t.store == nil {
		return nil, nil, fmt.Errorf("job_attributes unavailable: attribute store disabled (ATTRIBUTE_STORE=none)")
	}

	ids := uniqueIDs(params.JobIDs)
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("job_ids is required")
	}
	if len(ids) > maxAttributeIDs {
		return nil, nil, fmt.Errorf("at most %d job_ids per call, got %d", maxAttributeIDs, len(ids))
	}

	stored, err := t.store.LoadAttributes(ctx, ids)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("job_attributes: load failed", "err", err, "ids", len(ids))
		}
		return nil, nil, fmt.Errorf("load attributes: %w", err)
	}

	result := JobAttributesResult{Attributes: make([]domain.Attributes, 0, len(stored))}
	for _, id := range ids {
		a, ok := stored[id]
		if !ok {
			result.Missing = append(result.Missing, id)
			continue
		}
		a.JobID = id
		result.Attributes = append(result.Attributes, a)
	}

	return textResult(formatAttributes(result)), result, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func formatAttributes(result JobAttributesResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[job_attributes] %d stored, %d missing", len(result.Attributes), len(result.Missing))
	for _, a := range result.Attributes {
		fmt.Fprintf(&b, "\n• #%s %s | %s | %s | %s", a.JobID, a.Salary, a.Category, a.Location, a.PostedDate)
	}
	if len(result.Missing) > 0 {
		fmt.Fprintf(&b, "\nmissing: %s", strings.Join(result.Missing, ", "))
	}
	return b.String()
}
