// Package cli provides the command-line interface for swfinder.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "server",
		Aliases: []string{"s"},
		Usage:   "WebDriver server URL",
		Value:   "http://127.0.0.1:9515",
		EnvVars: []string{"SWFINDER_SERVER"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML config file",
		EnvVars: []string{"SWFINDER_CONFIG"},
	},
	&cli.BoolFlag{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Prompt to search other windows and frames when an element is not found",
		EnvVars: []string{"SWFINDER_INTERACTIVE"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"SWFINDER_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "swfinder",
		Usage:   "Query-expression element finder for web pages",
		Version: Version,
		Description: `swfinder compiles boolean query expressions into XPath and locates
elements across windows and frames through a WebDriver server.

Examples:
  # Compile a query to XPath without touching a browser
  swfinder xpath --tag input --id username
  swfinder xpath --class-contains "btn & !disabled"

  # Locate an element on a live page
  swfinder find --url https://example.com "//input[@id='username']"

  # Search every window and frame when the first lookup misses
  swfinder --interactive find "//button[text()='Submit']"`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			xpathCommand,
			findCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
