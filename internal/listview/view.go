package listview

import (
	"github.com/honeycarbs/job-board/internal/domain"
)

// Mode is the presentation state; exactly one applies at a time
type Mode int

const (
	ModeLoading Mode = iota
	ModeError
	ModeGrid
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeError:
		return "error"
	default:
		return "grid"
	}
}

// View is everything a renderer needs for one frame
type View struct {
	Mode  Mode
	Error string

	SearchTerm     string
	CategoryFilter domain.Category
	HasFilters     bool

	Visible []domain.JobRecord
	Empty   bool

	Page        int
	Total       int
	RangeStart  int
	RangeEnd    int
	CanPrevious bool
	CanNext     bool
}

// NewView checks loading, then error, then falls through to the grid
func NewView(s State) View {
	v := View{
		SearchTerm:     s.SearchTerm,
		CategoryFilter: s.CategoryFilter,
		HasFilters:     s.SearchTerm != "" || s.CategoryFilter != "",
		Page:           s.CurrentPage,
		Total:          s.TotalCount,
	}

	switch {
	case s.IsLoading:
		v.Mode = ModeLoading
		return v
	case s.Error != "":
		v.Mode = ModeError
		v.Error = s.Error
		return v
	}

	v.Mode = ModeGrid
	v.Visible = Filter(s.Items, s.SearchTerm, s.CategoryFilter)
	v.Empty = len(v.Visible) == 0
	v.CanPrevious = CanPrevious(s.CurrentPage)
	v.CanNext = CanNext(s.CurrentPage, s.TotalCount)
	v.RangeStart = (s.CurrentPage-1)*PageSize + 1
	v.RangeEnd = min(s.CurrentPage*PageSize, s.TotalCount)

	return v
}
