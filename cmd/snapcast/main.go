package main

import (
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"github.com/alecthomas/kong"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	Stdout  io.Writer
}

// CLI represents the command-line interface
var CLI struct {
	Config   string      `help:"Configuration file path" default:"snapcast.yaml"`
	Verbose  bool        `help:"Enable verbose output" short:"v"`
	Quiet    bool        `help:"Suppress output" short:"q"`
	Rules    RulesCmd    `cmd:"" help:"List cast rules in probe order"`
	Match    MatchCmd    `cmd:"" help:"Show which rules match a type pair"`
	Generate GenerateCmd `cmd:"" help:"Generate cast code for a type pair"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, "SnapCast v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("snapcast"),
		kong.Description("Rule-based cast code generation"),
	)


	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Stdout:  os.Stdout,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
