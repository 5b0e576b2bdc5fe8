package listview

import (
	"strings"

	"github.com/honeycarbs/job-board/internal/domain"
)

// PageSize is the number of jobs requested per page
const PageSize = 10

const (
	DefaultLoadError = "Failed to load job listings"
	EmptyMessage     = "No jobs found matching your criteria."
)

// State is the interactive state owned by one Controller
type State struct {
	Items          []domain.JobRecord
	SearchTerm     string
	CategoryFilter domain.Category
	IsLoading      bool
	Error          string
	CurrentPage    int
	TotalCount     int
}

func initialState() State {
	return State{
		CurrentPage: 1,
		IsLoading:   true,
	}
}

func (s State) clone() State {
	if s.Items != nil {
		s.Items = append([]domain.JobRecord(nil), s.Items...)
	}
	return s
}

// Filter returns the items whose title contains term (case-insensitive) and whose
// category equals category when one is set
func Filter(items []domain.JobRecord, term string, category domain.Category) []domain.JobRecord {
	if term == "" && category == "" {
		return items
	}

	needle := strings.ToLower(term)
	out := make([]domain.JobRecord, 0, len(items))
	for _, job := range items {
		if !strings.Contains(strings.ToLower(job.Title), needle) {
			continue
		}
		if category != "" && job.Category != category {
			continue
		}
		out = append(out, job)
	}
	return out
}

// CanPrevious reports whether the Previous control is enabled
func CanPrevious(page int) bool {
	return page != 1
}

// CanNext reports whether the Next control is enabled
func CanNext(page, total int) bool {
	return page*PageSize < total
}
