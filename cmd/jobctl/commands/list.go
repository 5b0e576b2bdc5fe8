package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/honeycarbs/job-board/internal/app"
	"github.com/honeycarbs/job-board/internal/config"
	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/internal/listview"
	"github.com/honeycarbs/job-board/pkg/logging"
)

// ListAction fetches one page through the list view controller and prints it
func ListAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")
	page := int(cmd.Int("page"))
	search := cmd.String("search")

	category := domain.Category(cmd.String("category"))
	if category != "" && !domain.ValidCategory(category) {
		return fmt.Errorf("unknown category %q (want one of %v)", category, domain.Categories)
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	// keep stdout for the table
	logger := logging.New("warn")
	defer func() { _ = logger.Sync() }()

	resources, cleanup, err := app.InitializeResources(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize resources: %w", err)
	}
	defer cleanup()

	ctrl := listview.NewController(resources.JobService, logger)
	ctrl.GoTo(ctx, page)
	ctrl.SetSearch(search)
	ctrl.SetCategory(category)

	view := ctrl.View()
	if err := RenderView(cmd.Root().Writer, view); err != nil {
		return err
	}
	if view.Mode == listview.ModeError {
		return cli.Exit(view.Error, 1)
	}
	return nil
}

// RenderView prints a view as a table followed by the pagination summary
func RenderView(w io.Writer, v listview.View) error {
	switch v.Mode {
	case listview.ModeLoading:
		_, err := fmt.Fprintln(w, "Loading job listings...")
		return err
	case listview.ModeError:
		_, err := fmt.Fprintf(w, "Error: %s\n", v.Error)
		return err
	}

	if v.HasFilters {
		fmt.Fprintf(w, "Filters: search=%q category=%q\n\n", v.SearchTerm, v.CategoryFilter)
	}

	if v.Empty {
		fmt.Fprintln(w, listview.EmptyMessage)
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("ID", "Title", "Salary", "Category", "Location", "Posted")
		for _, job := range v.Visible {
			if err := table.Append(job.ID, job.Title, job.Salary, string(job.Category), string(job.Location), job.PostedDate); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nShowing %d - %d of %d jobs | Page %d%s%s\n",
		v.RangeStart, v.RangeEnd, v.Total, v.Page,
		hint(v.CanPrevious, " | --page "+fmt.Sprint(v.Page-1)+" for previous"),
		hint(v.CanNext, " | --page "+fmt.Sprint(v.Page+1)+" for next"),
	)
	return err
}

func hint(enabled bool, text string) string {
	if !enabled {
		return ""
	}
	return text
}
