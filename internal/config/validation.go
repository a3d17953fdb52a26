package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error", "disabled"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDocking(config)...)
	validationErrors = append(validationErrors, validatePanels(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePreview(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDocking(config *Config) []string {
	var validationErrors []string
	d := config.Docking
	if d.EdgeBand <= 0 || d.EdgeBand >= 0.5 {
		validationErrors = append(validationErrors, "docking.edge_band must be between 0 and 0.5 (exclusive)")
	}
	if d.TitleHeight <= 0 {
		validationErrors = append(validationErrors, "docking.title_height must be positive")
	}
	if d.DrawerHandle <= 0 {
		validationErrors = append(validationErrors, "docking.drawer_handle must be positive")
	}
	if d.ResizeQuietMs <= 0 {
		validationErrors = append(validationErrors, "docking.resize_quiet_ms must be positive")
	}
	if d.FloatingWidthPct <= 0 || d.FloatingWidthPct > 1 {
		validationErrors = append(validationErrors, "docking.floating_width_pct must be > 0 and <= 1")
	}
	if d.FloatingHeightPct <= 0 || d.FloatingHeightPct > 1 {
		validationErrors = append(validationErrors, "docking.floating_height_pct must be > 0 and <= 1")
	}
	if d.MinPanelWidth <= 0 {
		validationErrors = append(validationErrors, "docking.min_panel_width must be positive")
	}
	if d.MinPanelHeight <= 0 {
		validationErrors = append(validationErrors, "docking.min_panel_height must be positive")
	}
	if d.DragThreshold < 0 {
		validationErrors = append(validationErrors, "docking.drag_threshold must be non-negative")
	}
	return validationErrors
}

func validatePanels(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool, len(config.Panels.Types))
	for _, name := range config.Panels.Types {
		switch {
		case strings.TrimSpace(name) == "":
			validationErrors = append(validationErrors, "panels.types cannot contain an empty name")
		case seen[name]:
			validationErrors = append(validationErrors, fmt.Sprintf("duplicate panel type '%s' in panels.types", name))
		}
		seen[name] = true
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: %s (got: %s)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: %s (got: %s)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validatePreview(config *Config) []string {
	var validationErrors []string
	if config.Preview.CellWidth <= 0 {
		validationErrors = append(validationErrors, "preview.cell_width must be positive")
	}
	if config.Preview.CellHeight <= 0 {
		validationErrors = append(validationErrors, "preview.cell_height must be positive")
	}
	if config.Preview.AutosaveMs < 0 {
		validationErrors = append(validationErrors, "preview.autosave_ms must be non-negative")
	}
	return validationErrors
}
