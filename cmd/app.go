// Package cmd implements the CLI application to manage the portfolio.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lusw/portfolio"
	"github.com/lusw/portfolio/api"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&showCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&updateCmd{}, "reports")

	c.Register(&addCmd{}, "positions")
	c.Register(&editCmd{}, "positions")
	c.Register(&rmCmd{}, "positions")

	c.Register(&recordCmd{}, "records")
	c.Register(&rmrecordCmd{}, "records")

	c.Register(&currencyCmd{}, "settings")
	c.Register(&topicCmd{}, "")
	c.Register(&assistCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var serverURL = flag.String("server", api.DefaultBase, "Base URL of the sync server")

const sessionFilename = "session"

// sessionPath returns the session cookie file location, beside the
// settings file.
func sessionPath() (string, error) {
	p, err := portfolio.SettingsPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(p), sessionFilename), nil
}

// loadSession reads the stored session cookie. An empty string means no
// session is stored.
func loadSession() string {
	p, err := sessionPath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func saveSession(cookie string) error {
	p, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(cookie), 0o600)
}

func clearSession() error {
	p, err := sessionPath()
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// newClient is the central function to build the sync client, with the
// stored session cookie if any.
func newClient() *api.Client {
	c := api.New(*serverURL)
	if s := loadSession(); s != "" {
		c.SetSession(s)
	}
	return c
}

// loadSettings loads the user settings and returns the file path where to
// save them back.
func loadSettings() (portfolio.Settings, string, error) {
	path, err := portfolio.SettingsPath()
	if err != nil {
		return portfolio.DefaultSettings(), "", err
	}
	s, err := portfolio.LoadSettings(path)
	return s, path, err
}

// displayCurrency resolves the report currency from an optional flag
// override, falling back to the user's settings.
func displayCurrency(s portfolio.Settings, override string) (portfolio.Currency, error) {
	if override == "" {
		return s.DisplayCurrency, nil
	}
	return portfolio.ParseCurrency(override)
}

// fetchSnapshot downloads the portfolio from the server.
func fetchSnapshot(ctx context.Context) (*portfolio.Snapshot, error) {
	snap, err := newClient().FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch portfolio: %w", err)
	}
	return snap, nil
}

// uploadSnapshot pushes the portfolio back to the server.
func uploadSnapshot(ctx context.Context, s *portfolio.Snapshot) error {
	if err := newClient().UploadSnapshot(ctx, s); err != nil {
		return fmt.Errorf("could not upload portfolio: %w", err)
	}
	return nil
}

// printMarkdown renders markdown for the terminal. On rendering errors the
// raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
