// Package config provides default configuration values for dockyard.
package config

import (
	"time"

	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Default configuration constants
const (
	// Logging defaults
	defaultMaxLogSizeMB = 10 // MB
	defaultMaxBackups   = 3  // backup files

	// Preview defaults: a terminal cell is roughly twice as tall as wide.
	defaultCellWidth  = 8
	defaultCellHeight = 16
	defaultAutosaveMs = 2000
)

// DefaultPanelTypes is the catalog registered by the CLI when none is configured.
var DefaultPanelTypes = []string{"editor", "console", "inspector", "files"}

// DefaultConfig returns the default configuration values for dockyard.
func DefaultConfig() *Config {
	opts := docking.DefaultOptions()
	return &Config{
		Docking: DockingConfig{
			EdgeBand:          opts.EdgeBand,
			TitleHeight:       opts.TitleHeight,
			DrawerHandle:      opts.DrawerHandle,
			ResizeQuietMs:     int(opts.ResizeQuiet / time.Millisecond),
			FloatingWidthPct:  opts.FloatingSize.X,
			FloatingHeightPct: opts.FloatingSize.Y,
			MinPanelWidth:     opts.MinPanelSize.X,
			MinPanelHeight:    opts.MinPanelSize.Y,
			DragThreshold:     opts.DragThreshold,
		},
		Panels: PanelsConfig{
			Types: append([]string(nil), DefaultPanelTypes...),
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxBackups,
		},
		Preview: PreviewConfig{
			CellWidth:  defaultCellWidth,
			CellHeight: defaultCellHeight,
			AutosaveMs: defaultAutosaveMs,
		},
	}
}

// DockingOptions maps the docking section to engine options.
func (c *Config) DockingOptions() docking.Options {
	opts := docking.DefaultOptions()
	opts.EdgeBand = c.Docking.EdgeBand
	opts.TitleHeight = c.Docking.TitleHeight
	opts.DrawerHandle = c.Docking.DrawerHandle
	opts.ResizeQuiet = time.Duration(c.Docking.ResizeQuietMs) * time.Millisecond
	opts.FloatingSize = entity.Vec2{X: c.Docking.FloatingWidthPct, Y: c.Docking.FloatingHeightPct}
	opts.MinPanelSize = entity.Vec2{X: c.Docking.MinPanelWidth, Y: c.Docking.MinPanelHeight}
	opts.DragThreshold = c.Docking.DragThreshold
	return opts
}

// LoggerConfig maps the logging section to a logger configuration.
// File output is wired by the caller.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	if c.Logging.Format != "" {
		cfg.Format = c.Logging.Format
	}
	return cfg
}

// AutosaveInterval is the preview autosave quiet period, zero when disabled.
func (c *Config) AutosaveInterval() time.Duration {
	return time.Duration(c.Preview.AutosaveMs) * time.Millisecond
}
