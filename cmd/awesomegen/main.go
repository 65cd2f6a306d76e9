// Command awesomegen maintains the Awesome Claude Code resource list:
// it sorts the dataset, renders README styles from templates, and
// validates both inputs and outputs.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/stuagano/awesome-claude-code/cmd/awesomegen/commands"
	"github.com/stuagano/awesome-claude-code/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{}

	ctx := kong.Parse(cli,
		kong.Name("awesomegen"),
		kong.Description("Generator for the Awesome Claude Code resource list."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)
	ctx.FatalIfErrorf(ctx.Run(global, cli))
}
