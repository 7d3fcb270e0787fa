package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// GlobalFlags are shared by every command.
type GlobalFlags struct {
	Config   string `short:"c" default:"wargame.hcl" help:"Path to the HCL config file"`
	LogLevel string `help:"Override the configured log level (debug, info, warn, error)"`
}

type CLI struct {
	GlobalFlags

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play War against the computer in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play many computer-vs-computer games and report statistics"`
	Assets   AssetsCmd        `cmd:"" help:"List the card asset keys used by the display"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wargame"),
		kong.Description("The card game War, played in the terminal or simulated in bulk"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.GlobalFlags)
	ctx.FatalIfErrorf(err)
}
