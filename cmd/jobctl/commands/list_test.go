package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/internal/listview"
)

func TestRenderViewGrid(t *testing.T) {
	var buf bytes.Buffer
	err := RenderView(&buf, listview.View{
		Mode: listview.ModeGrid,
		Visible: []domain.JobRecord{
			{ID: "11", Title: "Engineer", Salary: "$1500", Category: domain.CategoryIT, Location: domain.LocationHybrid, PostedDate: "2026-10-16"},
		},
		Page:        2,
		Total:       25,
		RangeStart:  11,
		RangeEnd:    20,
		CanPrevious: true,
		CanNext:     true,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "TITLE")
	assert.Contains(t, out, "Engineer")
	assert.Contains(t, out, "$1500")
	assert.Contains(t, out, "Showing 11 - 20 of 25 jobs | Page 2")
	assert.Contains(t, out, "--page 1 for previous")
	assert.Contains(t, out, "--page 3 for next")
}

func TestRenderViewEmptyAndError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderView(&buf, listview.View{
		Mode:       listview.ModeGrid,
		Empty:      true,
		HasFilters: true,
		SearchTerm: "zzz",
		Page:       1,
	}))
	assert.Contains(t, buf.String(), listview.EmptyMessage)
	assert.Contains(t, buf.String(), `search="zzz"`)
	assert.NotContains(t, buf.String(), "for next")

	buf.Reset()
	require.NoError(t, RenderView(&buf, listview.View{Mode: listview.ModeError, Error: "Server error"}))
	assert.Equal(t, "Error: Server error\n", buf.String())
}
