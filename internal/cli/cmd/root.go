// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	verbose    bool
	rootCmd    = &cobra.Command{
		Use:   "dockyard",
		Short: "A docking layout engine with a terminal playground",
		Long: `Dockyard - splitters, frames, tabs and drawers that keep a consistent layout.

Dockyard lays panels out as a tree of splitters and tabbed frames, with
floating and modal frames on top and collapsible drawers on the edges.
Layouts are saved as versioned JSON documents.

Features:
  - Drag and drop docking with live ghost previews
  - Proportional splitters that survive container resizes
  - Floating, modal and drawer frames
  - Layout validation and inspection from the command line
  - Interactive terminal preview driven by the mouse

Use 'dockyard preview' to play with a live layout, or 'dockyard layout'
to validate and inspect saved layout files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{
				ConfigFile: configFile,
				Verbose:    verbose,
				LogToFile:  cmd.Name() == "preview",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/dockyard/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warnings only")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
