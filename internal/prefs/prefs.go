// Package prefs persists cardsearch user preferences.
// Preferences are stored in ~/.config/cardsearch/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/cardsearch/internal/config"
)

// Prefs holds user preferences for cardsearch.
type Prefs struct {
	Theme string `toml:"theme"`
	Mouse bool   `toml:"mouse"`
}

const (
	defaultPrefsPath = "~/.config/cardsearch/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, Mouse: true}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Preferences are never fatal: whatever
// goes wrong, usable defaults are returned. The error is non-nil only when a
// file exists but could not be read or parsed, so callers can log it.
func Load(path string) (Prefs, error) {
	p := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return p, nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read prefs: %w", err)
	}

	var raw struct {
		Theme string `toml:"theme"`
		Mouse *bool  `toml:"mouse"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Defaults(), fmt.Errorf("parse prefs: %w", err)
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		p.Theme = theme
	}
	if raw.Mouse != nil {
		p.Mouse = *raw.Mouse
	}
	return p, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
