// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/logging"
)

const previewLogFile = "preview.log"

// AppOptions selects how the app is initialized.
type AppOptions struct {
	// ConfigFile overrides the XDG config file. It must exist.
	ConfigFile string
	// Verbose logs at the configured level on stderr. Otherwise stderr only
	// receives warnings and errors.
	Verbose bool
	// LogToFile sends logs to the log directory even when logging.file is
	// unset. Used by full-screen commands that own the terminal.
	LogToFile bool
	// Output overrides the log destination.
	Output io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the logger.
func NewApp(opts AppOptions) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger, cleanup, err := newLogger(cfg, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("config_file", mgr.ConfigFile()).Msg("configuration loaded")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: cleanup,
	}, nil
}

func newLogger(cfg *config.Config, opts AppOptions) (zerolog.Logger, func(), error) {
	logCfg := cfg.LoggerConfig()
	cleanup := func() {}

	path := cfg.Logging.File
	if path == "" && opts.LogToFile {
		dir, err := config.GetLogDir()
		if err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("resolve log directory: %w", err)
		}
		path = filepath.Join(dir, previewLogFile)
	}

	switch {
	case opts.Output != nil:
		logCfg.Output = opts.Output
	case path != "":
		w, err := logging.NewFileWriter(path, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
		if err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("open log file: %w", err)
		}
		logCfg.Output = w
		cleanup = func() { _ = w.Close() }
	default:
		if !opts.Verbose && logCfg.Level < zerolog.WarnLevel {
			logCfg.Level = zerolog.WarnLevel
		}
	}

	return logging.New(logCfg), cleanup, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Context returns the application context with logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// NewDocker creates a docker tuned from the configuration with the
// configured panel types registered.
func (a *App) NewDocker(container port.Container, scheduler port.Scheduler) *docking.Docker {
	d := docking.New(a.ctx, container, scheduler, a.Config.DockingOptions())
	RegisterPanelTypes(d, a.Config.Panels.Types)
	return d
}
