// Package prefs remembers the choices a viewer makes at runtime: the theme
// cycled with T and the card count changed with +/-. They live in
// ~/.config/showcase/prefs.toml, separate from the hand-edited config.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/palmcrest/showcase/internal/config"
)

// Prefs holds the remembered viewer choices. WindowSize is zero until the
// viewer resizes the carousel, so a fresh install follows config.toml.
type Prefs struct {
	Theme      string `toml:"theme"`
	WindowSize int    `toml:"window_size,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/showcase/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Window returns the remembered card count, or configured when none was
// saved. The result is clamped like the config value.
func (p Prefs) Window(configured int) int {
	if p.WindowSize > 0 {
		return config.ClampWindow(p.WindowSize)
	}
	return configured
}

// Load reads preferences from path. Prefs are cosmetic, so an unreadable or
// malformed file yields defaults instead of an error.
func Load(path string) (Prefs, error) {
	p := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return p, nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p, nil
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: defaultTheme}, nil
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	p.WindowSize = max(p.WindowSize, 0)
	return p, nil
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
