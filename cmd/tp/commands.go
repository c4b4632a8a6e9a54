package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"golang.org/x/term"

	"github.com/studiowebux/tp/internal/config"
	"github.com/studiowebux/tp/internal/history"
	"github.com/studiowebux/tp/internal/keybinds"
	tpversion "github.com/studiowebux/tp/internal/version"
)

// Flags for subcommands
var (
	historyLimit int
	historyClear bool
	forceWrite   bool
	checkUpdate  bool
)

// initConfig is the PersistentPreRunE shared by subcommands that touch the
// config directory
func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	return nil
}

var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "Show recent teleprompter sessions",
	Args:    cobra.NoArgs,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := history.NewManager(config.DatabasePath)
		if err != nil {
			return err
		}
		defer mgr.Close()

		if historyClear {
			if err := mgr.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Run log cleared")
			return nil
		}

		runs, err := mgr.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded yet")
			return nil
		}

		writeRuns(cmd.OutOrStdout(), runs, outputWidth())
		return nil
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage keybindings",
}

var keybindsInitCmd = &cobra.Command{
	Use:     "init",
	Short:   "Write the default keybindings to keybinds.json",
	Args:    cobra.NoArgs,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := refuseOverwrite(config.KeybindsFile); err != nil {
			return err
		}
		if err := keybinds.CreateExampleConfig(config.KeybindsFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.KeybindsFile)
		return nil
	},
}

var keybindsValidateCmd = &cobra.Command{
	Use:     "validate [file]",
	Short:   "Check a keybindings file for conflicts and unknown actions",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.KeybindsFile
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := keybinds.LoadConfig(path)
		if err != nil {
			return err
		}

		result := keybinds.NewValidator().ValidateConfig(cfg)
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(result.String(), "\n"))
		if result.HasErrors() {
			return fmt.Errorf("%s has %d error(s)", path, len(result.Errors))
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:     "path",
	Short:   "Print the configuration file location",
	Args:    cobra.NoArgs,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:     "init",
	Short:   "Write a configuration file with the default settings",
	Args:    cobra.NoArgs,
	PreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := refuseOverwrite(config.ConfigFile); err != nil {
			return err
		}
		if err := config.Save(config.Default(), config.ConfigFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.ConfigFile)
		return nil
	},
}

var manCmd = &cobra.Command{
	Use:    "man <dir>",
	Short:  "Generate man pages",
	Args:   cobra.ExactArgs(1),
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}

		header := &doc.GenManHeader{
			Title:   "TP",
			Section: "1",
			Source:  "tp " + version,
		}
		if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
			return fmt.Errorf("failed to generate man pages: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, optionally checking for a newer release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tp %s\n", version)
		if !checkUpdate {
			return nil
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		update, err := tpversion.NewChecker().Check(ctx, version)
		if err != nil {
			return err
		}
		if update.Available {
			fmt.Fprintf(out, "A newer release is available: %s\n%s\n", update.Latest, update.URL)
		} else {
			fmt.Fprintln(out, "You are on the latest release")
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete every recorded session")

	keybindsInitCmd.Flags().BoolVarP(&forceWrite, "force", "f", false, "Overwrite an existing file")
	configInitCmd.Flags().BoolVarP(&forceWrite, "force", "f", false, "Overwrite an existing file")

	versionCmd.Flags().BoolVar(&checkUpdate, "check", false, "Check GitHub for a newer release")

	keybindsCmd.AddCommand(keybindsInitCmd)
	keybindsCmd.AddCommand(keybindsValidateCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

// refuseOverwrite fails when path exists and --force was not given
func refuseOverwrite(path string) error {
	if forceWrite {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	return nil
}

// outputWidth is the terminal width, or 80 when stdout is not a terminal
func outputWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

const runRowFormat = "%-19s  %8s  %-9s  %5s  %5s  %-8s  %s\n"

// writeRuns prints one row per session; the name column takes what is left
// of width and is truncated to fit
func writeRuns(w io.Writer, runs []history.Run, width int) {
	fmt.Fprintf(w, runRowFormat, "STARTED", "DURATION", "SOURCE", "LINES", "SPEED", "STATUS", "NAME")

	// every column but the last, including separators
	fixed := runewidth.StringWidth(fmt.Sprintf(runRowFormat, "", "", "", "", "", "", "")) - 1
	nameWidth := max(width-fixed, 10)

	for _, r := range runs {
		status := "quit"
		if r.Finished {
			status = "finished"
		}
		fmt.Fprintf(w, runRowFormat,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.Duration.Round(time.Second).String(),
			r.Source,
			fmt.Sprint(r.Lines),
			fmt.Sprintf("%.1f", r.Speed),
			status,
			runewidth.Truncate(r.Name, nameWidth, "…"),
		)
	}
}
