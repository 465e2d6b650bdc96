package app

import (
	"context"
	"fmt"

	"github.com/five82/cardsearch/internal/config"
	"github.com/five82/cardsearch/internal/logging"
	"github.com/five82/cardsearch/internal/prefs"
	"github.com/five82/cardsearch/internal/records"
	"github.com/five82/cardsearch/internal/state"
	"github.com/five82/cardsearch/internal/ui"
)

// Options configure the cardsearch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cardsearch/prefs.toml
	SourceURL  string // overrides config source_url when set
	LogPath    string // overrides config log_file when set
}

// Run boots the cardsearch TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.SourceURL != "" {
		cfg.SourceURL = opts.SourceURL
	}
	if opts.LogPath != "" {
		path, err := config.ExpandPath(opts.LogPath)
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
		cfg.LogPath = path
	}

	logger, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs ignored", "err", err)
	}

	client, err := records.NewClient(cfg.SourceURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init record client: %w", err)
	}

	store := &state.Store{}
	loader := NewLoader(client, store, logger.Logger, client.Source())

	logger.Info("starting", "source", client.Source())
	err = ui.Run(ctx, ui.Options{
		Load:      loader.Load,
		Logger:    logger.Logger,
		LogPath:   logger.Path(),
		Source:    client.Source(),
		ThemeName: userPrefs.Theme,
		Mouse:     userPrefs.Mouse,
		PrefsPath: opts.PrefsPath,
	})
	if err != nil {
		logger.Error("ui exited", "err", err)
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("stopped")
	return nil
}
