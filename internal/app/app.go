package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/palmcrest/showcase/internal/config"
	"github.com/palmcrest/showcase/internal/logging"
	"github.com/palmcrest/showcase/internal/prefs"
	"github.com/palmcrest/showcase/internal/state"
	"github.com/palmcrest/showcase/internal/ui"
)

// Options configure the showcase application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/showcase/prefs.toml
	ListingsPath string
	FeedURL      string
	WindowSize   int
	Interval     time.Duration
	Verbose      bool
}

// Run boots the showcase TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger, err := logging.New(logging.Options{Path: cfg.LogPath(), Debug: cfg.Debug || opts.Verbose})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store := &state.Store{}
	stop, err := startSource(ctx, cfg, store, logger)
	if err != nil {
		return fmt.Errorf("start listing source: %w", err)
	}
	defer stop()

	// A --window flag beats the remembered size.
	window := cfg.WindowSize
	if opts.WindowSize <= 0 {
		window = userPrefs.Window(cfg.WindowSize)
	}

	logger.Info("starting ui",
		zap.Int("window", window),
		zap.Duration("interval", cfg.AdvanceInterval),
		zap.String("theme", userPrefs.Theme))

	uiOpts := ui.Options{
		Context:    ctx,
		Store:      store,
		Config:     &cfg,
		Logger:     logger,
		ThemeName:  userPrefs.Theme,
		WindowSize: window,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if opts.ListingsPath != "" {
		if p, err := config.ExpandPath(opts.ListingsPath); err == nil {
			cfg.ListingsPath = p
		}
	}
	if opts.FeedURL != "" {
		cfg.FeedURL = opts.FeedURL
	}
	if opts.WindowSize > 0 {
		cfg.WindowSize = config.ClampWindow(opts.WindowSize)
	}
	if opts.Interval > 0 {
		cfg.AdvanceInterval = opts.Interval
	}
	return cfg
}
