package tui

import (
	"fmt"
	"log"

	"grocery-cli/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive list screen and blocks until the user quits.
func Run(cfg config.Config) error {
	applyColorProfilePreference()
	applyThemePreference(cfg.UI.Theme)
	applyAppearancePreference(cfg.UI.Appearance)
	applyGlyphPreference(cfg.UI.Glyphs)

	debug := cfg.Debug.Log != ""
	if debug {
		f, err := tea.LogToFile(cfg.Debug.Log, "grocery")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	m := newAppModel(cfg.UI, debug)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m appModel) debugLogf(format string, args ...any) {
	if !m.debugEnabled {
		return
	}
	log.Printf(format, args...)
}
