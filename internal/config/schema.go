package config

// Config represents the complete configuration for dockyard.
type Config struct {
	// Docking tunes the layout engine geometry and interaction.
	Docking DockingConfig `mapstructure:"docking" toml:"docking" json:"docking"`
	// Panels lists the panel types the CLI registers on every Docker it creates.
	Panels  PanelsConfig  `mapstructure:"panels" toml:"panels" json:"panels"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Preview configures the terminal preview host.
	Preview PreviewConfig `mapstructure:"preview" toml:"preview" json:"preview"`
}

// DockingConfig holds the engine tuning knobs.
type DockingConfig struct {
	// EdgeBand is the fraction of a frame dimension that acts as an edge drop zone.
	EdgeBand float64 `mapstructure:"edge_band" toml:"edge_band" json:"edge_band" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=0.5" comment:"fraction of a frame used as an edge drop zone"`
	// TitleHeight is the frame title strip height in pixels.
	TitleHeight float64 `mapstructure:"title_height" toml:"title_height" json:"title_height" jsonschema:"exclusiveMinimum=0"`
	// DrawerHandle is the collapsed drawer size in pixels.
	DrawerHandle float64 `mapstructure:"drawer_handle" toml:"drawer_handle" json:"drawer_handle" jsonschema:"exclusiveMinimum=0"`
	// ResizeQuietMs is the pause after which a container resize burst ends.
	ResizeQuietMs int `mapstructure:"resize_quiet_ms" toml:"resize_quiet_ms" json:"resize_quiet_ms" jsonschema:"minimum=1"`
	// FloatingWidthPct and FloatingHeightPct size new floating frames relative to the container.
	FloatingWidthPct  float64 `mapstructure:"floating_width_pct" toml:"floating_width_pct" json:"floating_width_pct" jsonschema:"exclusiveMinimum=0,maximum=1"`
	FloatingHeightPct float64 `mapstructure:"floating_height_pct" toml:"floating_height_pct" json:"floating_height_pct" jsonschema:"exclusiveMinimum=0,maximum=1"`
	MinPanelWidth     float64 `mapstructure:"min_panel_width" toml:"min_panel_width" json:"min_panel_width" jsonschema:"exclusiveMinimum=0"`
	MinPanelHeight    float64 `mapstructure:"min_panel_height" toml:"min_panel_height" json:"min_panel_height" jsonschema:"exclusiveMinimum=0"`
	// DragThreshold is the pointer travel in pixels before a press becomes a drag.
	DragThreshold float64 `mapstructure:"drag_threshold" toml:"drag_threshold" json:"drag_threshold" jsonschema:"minimum=0"`
}

// PanelsConfig holds the panel type catalog used by the CLI.
type PanelsConfig struct {
	Types []string `mapstructure:"types" toml:"types" json:"types"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration. An empty file logs to stderr.
	File       string `mapstructure:"file" toml:"file" json:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// PreviewConfig maps terminal cells to engine pixels.
type PreviewConfig struct {
	CellWidth  float64 `mapstructure:"cell_width" toml:"cell_width" json:"cell_width" jsonschema:"exclusiveMinimum=0"`
	CellHeight float64 `mapstructure:"cell_height" toml:"cell_height" json:"cell_height" jsonschema:"exclusiveMinimum=0"`
	// LayoutFile is where the preview saves and restores its layout. Empty uses the data directory.
	LayoutFile string `mapstructure:"layout_file" toml:"layout_file" json:"layout_file"`
	// AutosaveMs is the quiet period before a changed layout is written back. 0 disables autosave.
	AutosaveMs int `mapstructure:"autosave_ms" toml:"autosave_ms" json:"autosave_ms" jsonschema:"minimum=0"`
}
