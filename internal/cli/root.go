package cli

import (
	"fmt"
	"strings"

	"grocery-cli/internal/config"
	"grocery-cli/internal/format"
	"grocery-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Appearance string
	Theme      string
	Glyphs     string

	// runTUI is swapped in tests so the root command doesn't take over the terminal.
	runTUI func(config.Config) error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{runTUI: tui.Run})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "grocery",
		Short:        "Grocery list (in-memory TUI)",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive list
  grocery

  # Pick a palette for this run
  grocery --appearance gruvbox --theme dark

  # Print the effective configuration
  grocery config --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return app.runTUI(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config file (default: $GROCERY_CONFIG or ~/.config/grocery/config.toml)")
	cmd.PersistentFlags().StringVar(&app.Appearance, "appearance", "", "Color profile ("+strings.Join(config.Appearances, "|")+")")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Terminal background ("+strings.Join(config.Themes, "|")+")")
	cmd.PersistentFlags().StringVar(&app.Glyphs, "glyphs", "", "Glyph set ("+strings.Join(config.GlyphSets, "|")+")")

	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newKeysCmd())

	return cmd
}

func loadConfig(app *App) (config.Config, error) {
	return config.Load(config.Overrides{
		Path:       app.ConfigPath,
		Appearance: app.Appearance,
		Theme:      app.Theme,
		Glyphs:     app.Glyphs,
	})
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

func newConfigCmd(app *App) *cobra.Command {
	var pretty bool
	var outFormat string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return format.Write(cmd.OutOrStdout(), cfg, outFormat, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&outFormat, "format", "json", "Output format (json|toml)")

	return cmd
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the keybinding reference (markdown)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(tui.KeysMarkdown()))
			return err
		},
	}
}
