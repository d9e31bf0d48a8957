package main

import (
	"github.com/pkg/errors"

	"github.com/rms-studio/scaffold/lib/utils"
)

type VerifyCmd struct {
	All bool `short:"a" help:"List every problem instead of the first 10."`
}

func (c *VerifyCmd) Run(ctx *context) error {
	report, err := ctx.ws.Verify()
	if err != nil {
		return err
	}

	console := ctx.ws.Console()

	if report.Ok() {
		console.Printf("Project structure is complete: %v groups, %v files.",
			ctx.ws.Structure().GroupCount(), ctx.ws.Structure().FileCount())
		return nil
	}

	limit := len(report.Missing)
	if !c.All {
		limit = utils.Min(10, limit)
	}

	for _, p := range report.Missing[:limit] {
		console.Printf("missing: %v", p)
	}
	if limit < len(report.Missing) {
		console.Printf("... and %v more", len(report.Missing)-limit)
	}

	for _, p := range report.WrongKind {
		console.Printf("wrong type: %v", p)
	}

	return errors.Errorf("project structure is incomplete: %v missing, %v of the wrong type",
		len(report.Missing), len(report.WrongKind))
}
