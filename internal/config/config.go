package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything showcase reads from its config file.
type Config struct {
	Title           string
	WindowSize      int
	AdvanceInterval time.Duration
	WrapDelay       time.Duration
	ListingsPath    string
	FeedURL         string
	FeedPoll        time.Duration
	LogDir          string
	Debug           bool
}

const (
	defaultConfigPath      = "~/.config/showcase/config.toml"
	defaultLogDir          = "~/.local/state/showcase"
	defaultListingsPath    = "~/.local/share/showcase/listings.yaml"
	defaultTitle           = "Featured Properties"
	defaultWindowSize      = 4
	defaultAdvanceInterval = 2 * time.Second
	defaultWrapDelay       = 50 * time.Millisecond
	defaultFeedPoll        = 30 * time.Second
	maxWindowSize          = 8
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Title:           defaultTitle,
		WindowSize:      defaultWindowSize,
		AdvanceInterval: defaultAdvanceInterval,
		WrapDelay:       defaultWrapDelay,
		ListingsPath:    mustExpand(defaultListingsPath),
		FeedPoll:        defaultFeedPoll,
		LogDir:          mustExpand(defaultLogDir),
	}
}

// Load locates and parses the showcase config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Title           string `toml:"title"`
		WindowSize      int    `toml:"window_size"`
		AdvanceInterval string `toml:"advance_interval"`
		WrapDelay       string `toml:"wrap_delay"`
		ListingsPath    string `toml:"listings_path"`
		FeedURL         string `toml:"feed_url"`
		FeedPoll        string `toml:"feed_poll"`
		LogDir          string `toml:"log_dir"`
		Debug           bool   `toml:"debug"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if title := strings.TrimSpace(raw.Title); title != "" {
		cfg.Title = title
	}
	if raw.WindowSize > 0 {
		cfg.WindowSize = min(raw.WindowSize, maxWindowSize)
	}

	if cfg.AdvanceInterval, err = parseDuration("advance_interval", raw.AdvanceInterval, defaultAdvanceInterval); err != nil {
		return Config{}, err
	}
	if cfg.WrapDelay, err = parseDuration("wrap_delay", raw.WrapDelay, defaultWrapDelay); err != nil {
		return Config{}, err
	}
	if cfg.FeedPoll, err = parseDuration("feed_poll", raw.FeedPoll, defaultFeedPoll); err != nil {
		return Config{}, err
	}

	if p := strings.TrimSpace(raw.ListingsPath); p != "" {
		cfg.ListingsPath = mustExpand(p)
	}
	cfg.FeedURL = strings.TrimSpace(raw.FeedURL)
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	cfg.Debug = raw.Debug

	return cfg, nil
}

// LogPath returns the path to the showcase log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/showcase.log")
	}
	return filepath.Join(c.LogDir, "showcase.log")
}

// ClampWindow limits a window size to the supported range.
func ClampWindow(n int) int {
	if n <= 0 {
		return defaultWindowSize
	}
	return min(n, maxWindowSize)
}

func parseDuration(field, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", field, err)
	}
	if d <= 0 {
		return fallback, nil
	}
	return d, nil
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
