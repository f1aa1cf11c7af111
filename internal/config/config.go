package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig    `json:"ui" toml:"ui"`
	Debug DebugConfig `json:"debug" toml:"debug"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Appearance  string `json:"appearance" mapstructure:"appearance" toml:"appearance"`
	Theme       string `json:"theme" mapstructure:"theme" toml:"theme"`
	Glyphs      string `json:"glyphs" mapstructure:"glyphs" toml:"glyphs"`
	Title       string `json:"title" mapstructure:"title" toml:"title"`
	Placeholder string `json:"placeholder" mapstructure:"placeholder" toml:"placeholder"`
	CharLimit   int    `json:"charLimit" mapstructure:"char_limit" toml:"char_limit"`
}

// DebugConfig holds diagnostics settings.
type DebugConfig struct {
	Log string `json:"log,omitempty" mapstructure:"log" toml:"log"`
}

var (
	Appearances = []string{"default", "dracula", "gruvbox", "solarized"}
	Themes      = []string{"auto", "light", "dark"}
	GlyphSets   = []string{"unicode", "ascii"}
)

type invalidValueError struct {
	key   string
	value string
}

func (e invalidValueError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.key, e.value)
}

// Overrides are explicit values (typically CLI flags) applied on top of file and env.
// Empty fields are ignored.
type Overrides struct {
	Path       string
	Appearance string
	Theme      string
	Glyphs     string
}

// Path returns the config file location: $GROCERY_CONFIG or ~/.config/grocery/config.toml.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("GROCERY_CONFIG")); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "grocery", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix GROCERY_.
func Load(o Overrides) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.appearance", "default")
	v.SetDefault("ui.theme", "auto")
	v.SetDefault("ui.glyphs", "unicode")
	v.SetDefault("ui.title", "Grocery List")
	v.SetDefault("ui.placeholder", "Add an item...")
	v.SetDefault("ui.char_limit", 200)
	v.SetDefault("debug.log", "")

	v.SetConfigType("toml")
	path := strings.TrimSpace(o.Path)
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("GROCERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file just means defaults + env.
		if _, statErr := os.Stat(path); statErr == nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if o.Appearance != "" {
		v.Set("ui.appearance", o.Appearance)
	}
	if o.Theme != "" {
		v.Set("ui.theme", o.Theme)
	}
	if o.Glyphs != "" {
		v.Set("ui.glyphs", o.Glyphs)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() {
	c.UI.Appearance = strings.ToLower(strings.TrimSpace(c.UI.Appearance))
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.UI.Glyphs = strings.ToLower(strings.TrimSpace(c.UI.Glyphs))
	c.UI.Title = strings.TrimSpace(c.UI.Title)
	c.Debug.Log = strings.TrimSpace(c.Debug.Log)
	if c.UI.CharLimit < 0 {
		c.UI.CharLimit = 0
	}
}

// Validate reports the first enum setting with an unknown value.
func (c Config) Validate() error {
	checks := []struct {
		key   string
		value string
		known []string
	}{
		{"ui.appearance", c.UI.Appearance, Appearances},
		{"ui.theme", c.UI.Theme, Themes},
		{"ui.glyphs", c.UI.Glyphs, GlyphSets},
	}
	for _, ch := range checks {
		if !contains(ch.known, ch.value) {
			return invalidValueError{key: ch.key, value: ch.value}
		}
	}
	return nil
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
