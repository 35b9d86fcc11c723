package portfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// Settings carries the per-user preferences and session state that the app
// historically kept in ambient global storage. It is loaded once at
// startup, passed explicitly to whatever needs it, and saved on the way
// out.
type Settings struct {
	DisplayCurrency Currency `toml:"display_currency"`
	TrendStyle      string   `toml:"trend_style"` // "red-up" (Taiwan convention) or "green-up"
	Account         string   `toml:"account"`
	// LastRate is the last TWD-per-USD exchange rate seen, used until the
	// next quote arrives.
	LastRate decimal.Decimal `toml:"last_rate"`
}

// DefaultSettings returns the settings of a fresh install: USD display,
// Taiwan trend colors, and a 30 TWD-per-USD fallback rate.
func DefaultSettings() Settings {
	return Settings{
		DisplayCurrency: USD,
		TrendStyle:      "red-up",
		LastRate:        decimal.NewFromInt(30),
	}
}

const settingsFilename = "settings.toml"

// SettingsPath returns the settings file location under the user config
// dir, overridable through RSAP_CONFIG_DIR.
func SettingsPath() (string, error) {
	if dir := os.Getenv("RSAP_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, settingsFilename), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate user config dir: %w", err)
	}
	return filepath.Join(dir, "rsap", settingsFilename), nil
}

// LoadSettings reads the settings file, falling back to defaults when the
// file does not exist yet.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("cannot read settings %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("cannot parse settings %q: %w", path, err)
	}
	if s.DisplayCurrency != USD && s.DisplayCurrency != TWD {
		return s, fmt.Errorf("invalid display currency %q in %q", s.DisplayCurrency, path)
	}
	if s.LastRate.Sign() <= 0 {
		s.LastRate = decimal.NewFromInt(30)
	}
	return s, nil
}

// SaveSettings writes the settings file, creating parent directories as
// needed.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create settings dir: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("cannot write settings %q: %w", path, err)
	}
	return nil
}
