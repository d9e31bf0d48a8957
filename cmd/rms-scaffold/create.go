package main

import (
	"github.com/gertd/go-pluralize"

	"github.com/rms-studio/scaffold/lib/filters"
	"github.com/rms-studio/scaffold/lib/scaffold"
)

type CreateCmd struct {
	Only     string `help:"Only create files matching this glob. | separates alternatives."`
	Progress bool   `help:"Show a progress bar instead of one line per created file."`
}

func (c *CreateCmd) Run(ctx *context) error {
	only, err := filters.ParsePathFilter(c.Only)
	if err != nil {
		return err
	}

	console := ctx.ws.Console()

	console.Printf("Creating project structure...")
	console.Printf("")

	report, err := ctx.ws.Materialize(&scaffold.Options{
		Only:     only,
		Progress: c.Progress,
	})
	if err != nil {
		return err
	}

	pc := pluralize.NewClient()

	console.Printf("")
	console.Printf("Project structure created successfully!")
	console.Printf("Total directories created: %v", report.GroupsProcessed)
	console.Printf("New %v: %v", pc.Pluralize("file", report.FilesCreated, false), report.FilesCreated)
	return nil
}
