package main

import (
	"github.com/alecthomas/kong"

	"github.com/rms-studio/scaffold/lib/scaffold"
)

var cli struct {
	Root string `short:"r" help:"Directory to scaffold into. Default is the current directory." type:"path"`
	Spec string `short:"s" help:"Structure file (yaml or json) to use instead of the built-in layout." type:"path"`

	Create  CreateCmd  `cmd:"" default:"1" help:"Create the project structure, skipping anything that already exists."`
	Preview PreviewCmd `cmd:"" help:"Show what create would do, without touching the filesystem."`
	Verify  VerifyCmd  `cmd:"" help:"Check that the project structure is complete."`
	Show    ShowCmd    `cmd:"" help:"List the structure that would be created."`
}

type context struct {
	ws *scaffold.Workspace
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := scaffold.NewWorkspace(cli.Root, cli.Spec)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws: ws,
	})
	ctx.FatalIfErrorf(err)
}
