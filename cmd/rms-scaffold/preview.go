package main

import (
	"github.com/gertd/go-pluralize"

	"github.com/rms-studio/scaffold/lib/filters"
	"github.com/rms-studio/scaffold/lib/scaffold"
)

type PreviewCmd struct {
	Only string `help:"Only consider files matching this glob. | separates alternatives."`
}

func (c *PreviewCmd) Run(ctx *context) error {
	only, err := filters.ParsePathFilter(c.Only)
	if err != nil {
		return err
	}

	report, err := ctx.ws.Materialize(&scaffold.Options{
		DryRun: true,
		Only:   only,
	})
	if err != nil {
		return err
	}

	pc := pluralize.NewClient()

	console := ctx.ws.Console()
	console.Printf("")
	console.Printf("%v %v and %v %v would be created",
		report.DirsCreated, pc.Pluralize("directory", report.DirsCreated, false),
		report.FilesCreated, pc.Pluralize("file", report.FilesCreated, false))
	return nil
}
