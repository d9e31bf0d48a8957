package main

import (
	"github.com/gertd/go-pluralize"

	"github.com/rms-studio/scaffold/lib/utils"
)

type ShowCmd struct {
	Files bool `short:"f" help:"Also list the files inside each directory."`
}

func (c *ShowCmd) Run(ctx *context) error {
	s := ctx.ws.Structure()
	console := ctx.ws.Console()
	pc := pluralize.NewClient()

	width := 0
	for _, g := range s.Groups() {
		width = utils.Max(width, len(g.Dir))
	}

	for _, cat := range s.Categories {
		console.Printf("%v:", cat.Name)

		for _, g := range cat.Groups {
			console.Printf("   %-*v  %v %v", width, g.Dir, len(g.Files), pc.Pluralize("file", len(g.Files), false))

			if c.Files {
				for _, f := range g.Files {
					console.Printf("      %v", f)
				}
			}
		}
	}

	if len(s.Extras) > 0 {
		console.Printf("extras:")
		for _, e := range s.Extras {
			console.Printf("   %v", e)
		}
	}

	console.Printf("")
	console.Printf("%v %v, %v %v",
		s.GroupCount(), pc.Pluralize("group", s.GroupCount(), false),
		s.FileCount(), pc.Pluralize("file", s.FileCount(), false))
	return nil
}
