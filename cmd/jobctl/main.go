package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/honeycarbs/job-board/cmd/jobctl/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "jobctl",
		Usage: "Browse job listings from the terminal",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show one page of jobs, optionally filtered",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "env",
						Usage: "Path to environment file",
						Value: ".env",
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "1-based page number",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "search",
						Usage: "Case-insensitive title substring",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Exact category: IT, Design or Marketing",
					},
				},
				Action: commands.ListAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
