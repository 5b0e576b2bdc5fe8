package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/job-board/internal/domain"
)

func TestFilter(t *testing.T) {
	items := []domain.JobRecord{
		job("1", "Backend Engineer", domain.CategoryIT),
		job("2", "engineering manager", domain.CategoryMarketing),
		job("3", "Brand Designer", domain.CategoryDesign),
	}

	cases := []struct {
		name     string
		term     string
		category domain.Category
		want     []string
	}{
		{name: "no filters", want: []string{"1", "2", "3"}},
		{name: "case-insensitive title", term: "ENGINEER", want: []string{"1", "2"}},
		{name: "category exact", category: domain.CategoryDesign, want: []string{"3"}},
		{name: "category is case-sensitive", category: "design", want: []string{}},
		{name: "both", term: "engineer", category: domain.CategoryMarketing, want: []string{"2"}},
		{name: "no match", term: "zzz", want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(items, tc.term, tc.category)
			ids := make([]string, 0, len(got))
			for _, j := range got {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestFilterEmptyReturnsSameSlice(t *testing.T) {
	items := []domain.JobRecord{job("1", "a", domain.CategoryIT)}
	got := Filter(items, "", "")
	assert.Equal(t, items, got)
}

func TestPaginationInvariants(t *testing.T) {
	for page := 1; page <= 5; page++ {
		for _, total := range []int{0, 9, 10, 11, 25, 50} {
			assert.Equal(t, page == 1, !CanPrevious(page), "previous page=%d", page)
			assert.Equal(t, page*PageSize >= total, !CanNext(page, total), "next page=%d total=%d", page, total)
		}
	}
}

func TestNewViewModeOrder(t *testing.T) {
	s := State{IsLoading: true, Error: "boom", CurrentPage: 1}
	assert.Equal(t, ModeLoading, NewView(s).Mode)

	s.IsLoading = false
	v := NewView(s)
	assert.Equal(t, ModeError, v.Mode)
	assert.Equal(t, "boom", v.Error)

	s.Error = ""
	assert.Equal(t, ModeGrid, NewView(s).Mode)
}

func TestNewViewRange(t *testing.T) {
	v := NewView(State{CurrentPage: 3, TotalCount: 25, Items: []domain.JobRecord{job("21", "x", domain.CategoryIT)}})

	assert.Equal(t, 21, v.RangeStart)
	assert.Equal(t, 25, v.RangeEnd)
	assert.True(t, v.CanPrevious)
	assert.False(t, v.CanNext)
	assert.Equal(t, "grid", v.Mode.String())
}
