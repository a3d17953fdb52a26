package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/logging"
)

var previewLayoutFile string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play with a live layout in the terminal",
	Long: `Host a live layout in the terminal. The terminal is the container and the
mouse drives the docking engine: drag splitter bars, drag tabs onto other
frames or their edges, drag floating frames by their title.

The layout is restored from the layout file when it exists and saved
back with ctrl+s. Config changes are applied live.

Logs go to the log directory since the terminal is in use.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewLayoutFile, "layout", "l", "", "layout file (default preview.layout_file or the data directory)")
}

func runPreview(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Context()
	log := logging.FromContext(ctx)

	layoutFile, err := resolvePreviewLayout(app.Config)
	if err != nil {
		return err
	}

	m := model.NewPreviewModel(ctx, app.Theme, model.PreviewConfig{
		NewDocker:        app.NewDocker,
		CellWidth:        app.Config.Preview.CellWidth,
		CellHeight:       app.Config.Preview.CellHeight,
		LayoutFile:       layoutFile,
		AutosaveInterval: app.Config.AutosaveInterval(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ConfigChangedMsg{Config: cfg})
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	log.Info().Str("layout_file", layoutFile).Msg("preview started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}

func resolvePreviewLayout(cfg *config.Config) (string, error) {
	switch {
	case previewLayoutFile != "":
		return previewLayoutFile, nil
	case cfg.Preview.LayoutFile != "":
		return cfg.Preview.LayoutFile, nil
	}
	path, err := config.GetLayoutFile()
	if err != nil {
		return "", fmt.Errorf("resolve layout file: %w", err)
	}
	return path, nil
}
