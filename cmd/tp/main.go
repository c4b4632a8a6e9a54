package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/tp/internal/config"
	"github.com/studiowebux/tp/internal/history"
	"github.com/studiowebux/tp/internal/keybinds"
	"github.com/studiowebux/tp/internal/source"
	"github.com/studiowebux/tp/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tp [file]",
	Short: "tp - terminal teleprompter",
	Long: `tp scrolls text upward through the terminal in large block letters.

Text is read from the first available source:
  1. piped stdin
  2. the system clipboard (--clipboard)
  3. the FILE argument
  4. $VISUAL / $EDITOR (fallback vi) on a scratch file

Defaults come from config.yaml in the config directory ('tp config path');
flags override them for a single run.

Examples:
  tp talk.txt                    # Play a file
  cat notes.md | tp -s 3         # Play stdin at 3 lines per second
  tp --clipboard -S 3 -c yellow  # Large yellow text from the clipboard
  tp                             # Write the text in your editor first`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return runPlay(cmd, path)
	},
}

// Flags for the root command
var (
	flagSpeed      float64
	flagScale      int
	flagColor      string
	flagBackground string
	flagPadding    int
	flagClipboard  bool
	flagNoHistory  bool
)

func init() {
	rootCmd.Flags().Float64VarP(&flagSpeed, "speed", "s", config.DefaultSpeed, "Scroll speed in lines per second")
	rootCmd.Flags().IntVarP(&flagScale, "scale", "S", config.DefaultFontScale, "Font scale (1-3)")
	rootCmd.Flags().StringVarP(&flagColor, "color", "c", config.DefaultTextColor, "Text color (name or #RRGGBB)")
	rootCmd.Flags().StringVarP(&flagBackground, "background", "b", config.DefaultBackground, "Background color (name or #RRGGBB)")
	rootCmd.Flags().IntVarP(&flagPadding, "padding", "p", config.DefaultPadding, "Horizontal padding percent (0-40)")
	rootCmd.Flags().BoolVar(&flagClipboard, "clipboard", false, "Read text from the system clipboard")
	rootCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this run in the run log")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(keybindsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(versionCmd)
}

// overridesFromFlags collects only the flags the user actually set
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("speed") {
		o.Speed = &flagSpeed
	}
	if flags.Changed("scale") {
		o.FontScale = &flagScale
	}
	if flags.Changed("color") {
		o.TextColor = &flagColor
	}
	if flags.Changed("background") {
		o.Background = &flagBackground
	}
	if flags.Changed("padding") {
		o.Padding = &flagPadding
	}
	return o
}

// runPlay resolves the text and hands it to the TUI
func runPlay(cmd *cobra.Command, path string) error {
	cfg, err := config.Load(config.ConfigFile)
	if err != nil {
		return err
	}
	cfg = cfg.Merge(overridesFromFlags(cmd))

	for _, w := range cfg.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	settings := cfg.Clamp()

	keys, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	text, err := source.NewResolver().Resolve(ctx, source.Request{
		Path:      path,
		Clipboard: flagClipboard,
	})
	if err != nil {
		return err
	}

	opts := tui.RunOptions{
		Text:     text,
		Settings: settings,
		Keys:     keys,
	}

	if !flagNoHistory {
		mgr, err := history.NewManager(config.DatabasePath)
		if err != nil {
			// the run log is optional; play anyway
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			defer mgr.Close()
			opts.History = mgr
		}
	}

	return tui.Run(opts)
}
