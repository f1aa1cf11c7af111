package tui

import (
	"strings"
	"sync"
)

type appearanceProfileID string

const (
	appearanceDefault   appearanceProfileID = "default"
	appearanceDracula   appearanceProfileID = "dracula"
	appearanceGruvbox   appearanceProfileID = "gruvbox"
	appearanceSolarized appearanceProfileID = "solarized"
)

var (
	appearanceMu      sync.RWMutex
	currentAppearance = appearanceDefault
)

func resetAppearancePaletteToDefaults() {
	colorMuted = defaultColorMuted
	colorTitleFg = defaultColorTitleFg
	colorSelectedBg = defaultColorSelectedBg
	colorSelectedFg = defaultColorSelectedFg
	colorSurfaceBg = defaultColorSurfaceBg
	colorSurfaceFg = defaultColorSurfaceFg
	colorControlBg = defaultColorControlBg
	colorInputBg = defaultColorInputBg
	colorAccent = defaultColorAccent
	colorAccentFg = defaultColorAccentFg
	colorDangerBg = defaultColorDangerBg
	colorDangerFg = defaultColorDangerFg
	colorModalSurfaceBg = defaultColorModalSurfaceBg
	colorModalSurfaceFg = defaultColorModalSurfaceFg
	colorModalHeaderBg = defaultColorModalHeaderBg
	colorModalHeaderFg = defaultColorModalHeaderFg
}

func applyAppearancePreference(name string) {
	v := strings.ToLower(strings.TrimSpace(name))
	if v == "" {
		v = string(appearanceDefault)
	}
	setAppearanceProfile(appearanceProfileID(v))
}

// setAppearanceProfile swaps the palette. Unknown ids fall back to the default palette.
func setAppearanceProfile(id appearanceProfileID) {
	appearanceMu.Lock()
	defer appearanceMu.Unlock()

	resetAppearancePaletteToDefaults()

	switch id {
	case appearanceDracula:
		currentAppearance = appearanceDracula
		// Provide both a light+dark palette so this theme stays readable when
		// the terminal follows OS light mode.
		colorSurfaceBg = ac("#f8f8f2", "#282a36")
		colorSurfaceFg = ac("#282a36", "#f8f8f2")
		colorControlBg = ac("#e9e9e2", "#1f202a")
		colorInputBg = ac("#e1e1db", "#1b1c25")
		colorSelectedBg = ac("#d7d7cf", "#44475a")
		colorSelectedFg = ac("#282a36", "#f8f8f2")
		colorMuted = ac("#4b5563", "#9aa0b1")
		colorTitleFg = ac("#b83280", "#ff79c6")
		colorAccent = ac("#6c4aa6", "#bd93f9")
		colorAccentFg = ac("#f8f8f2", "#282a36")
		colorDangerBg = ac("#b91c1c", "#ff5555")
		colorDangerFg = ac("#f8f8f2", "#282a36")

		colorModalSurfaceBg = colorControlBg
		colorModalSurfaceFg = colorSurfaceFg
		colorModalHeaderBg = ac("#d7d7cf", "#44475a")
		colorModalHeaderFg = colorSurfaceFg
	case appearanceGruvbox:
		currentAppearance = appearanceGruvbox
		colorSurfaceBg = ac("#fbf1c7", "#282828")
		colorSurfaceFg = ac("#3c3836", "#ebdbb2")
		colorControlBg = ac("#ebdbb2", "#1d2021")
		colorInputBg = ac("#ebdbb2", "#1d2021")
		colorSelectedBg = ac("#d5c4a1", "#3c3836")
		colorSelectedFg = ac("#3c3836", "#ebdbb2")
		colorMuted = ac("#665c54", "#a89984")
		colorTitleFg = ac("#b57614", "#fabd2f")
		colorAccent = ac("#076678", "#83a598")
		colorAccentFg = ac("#fbf1c7", "#282828")
		colorDangerBg = ac("#9d0006", "#cc241d")
		colorDangerFg = ac("#fbf1c7", "#fbf1c7")

		colorModalSurfaceBg = colorControlBg
		colorModalSurfaceFg = colorSurfaceFg
		colorModalHeaderBg = ac("#d5c4a1", "#3c3836")
		colorModalHeaderFg = colorSurfaceFg
	case appearanceSolarized:
		currentAppearance = appearanceSolarized
		colorSurfaceBg = ac("#fdf6e3", "#002b36")
		colorSurfaceFg = ac("#073642", "#839496")
		colorControlBg = ac("#eee8d5", "#073642")
		colorInputBg = ac("#eee8d5", "#073642")
		colorSelectedBg = ac("#eee8d5", "#073642")
		colorSelectedFg = ac("#073642", "#eee8d5")
		colorMuted = ac("#586e75", "#93a1a1")
		colorTitleFg = ac("#268bd2", "#268bd2")
		colorAccent = ac("#268bd2", "#268bd2")
		colorAccentFg = ac("#fdf6e3", "#002b36")
		colorDangerBg = ac("#dc322f", "#dc322f")
		colorDangerFg = ac("#fdf6e3", "#fdf6e3")

		colorModalSurfaceBg = colorSurfaceBg
		colorModalSurfaceFg = colorSurfaceFg
		colorModalHeaderBg = colorControlBg
		colorModalHeaderFg = colorSurfaceFg
	default:
		currentAppearance = appearanceDefault
	}
}

func appearance() appearanceProfileID {
	appearanceMu.RLock()
	id := currentAppearance
	appearanceMu.RUnlock()
	return id
}
