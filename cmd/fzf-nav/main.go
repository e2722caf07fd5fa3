package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"fzf-nav/internal/app"
	"fzf-nav/internal/config"
	"fzf-nav/internal/nav"
	"fzf-nav/internal/report"
	"fzf-nav/internal/ui"

	"github.com/spf13/cobra"
)

var (
	dbPath  string
	noColor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitStatus(os.Stderr, err))
	}
}

// exitStatus prints err the way the shell integration expects and returns
// the process exit status for it.
func exitStatus(w io.Writer, err error) int {
	var storeErr *nav.StoreError
	var staleErr *nav.StaleSelectionError

	switch {
	case errors.Is(err, nav.ErrNothingToSelect):
		fmt.Fprintln(w, err)
		return 0
	case errors.Is(err, nav.ErrCancelled):
		return 1
	case errors.As(err, &staleErr):
		fmt.Fprintf(w, "Error: %v\n", staleErr)
		return 1
	case errors.As(err, &storeErr):
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintf(w, "Make sure the database exists at: %s\n", storeErr.Path)
		return 1
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
}

// loadConfig reads the config file, if any, and applies command line
// overrides. It also returns the default paths it used.
func loadConfig() (*config.Config, map[string]string, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.Load(defaults["config_path"], defaults["base_dir"])
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	return cfg, defaults, nil
}

// newApp reads the config and creates a NavApp. The caller must defer app.Close().
func newApp(command string) (*app.NavApp, *config.Config, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	a, err := app.NewNavApp(cfg, command)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, cfg, nil
}

func newPrinter() *report.Printer {
	return report.NewPrinter(os.Stdout, ui.New(os.Stdout, noColor))
}

// parseLimit returns the first argument as a row limit, or def when it is
// missing or not a number.
func parseLimit(args []string, def int) int {
	if len(args) == 0 {
		return def
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return def
	}
	return n
}

var rootCmd = &cobra.Command{
	Use:           "fzf-nav",
	Short:         "Query and navigate shell directory and file history",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var recentDirsCmd = &cobra.Command{
	Use:   "recent-dirs [limit]",
	Short: "Show recent directory visits",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cfg, err := newApp("recent-dirs")
		if err != nil {
			return err
		}
		defer a.Close()

		rows, err := a.RecentDirectories(parseLimit(args, cfg.Limits.Report))
		if err != nil {
			return err
		}
		return newPrinter().RecentDirectories(rows)
	},
}

var recentFilesCmd = &cobra.Command{
	Use:   "recent-files [limit]",
	Short: "Show recent file opens",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cfg, err := newApp("recent-files")
		if err != nil {
			return err
		}
		defer a.Close()

		rows, err := a.RecentFiles(parseLimit(args, cfg.Limits.Report))
		if err != nil {
			return err
		}
		return newPrinter().RecentFiles(rows)
	},
}

var popularDirsCmd = &cobra.Command{
	Use:   "popular-dirs [limit]",
	Short: "Show most visited directories",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cfg, err := newApp("popular-dirs")
		if err != nil {
			return err
		}
		defer a.Close()

		rows, err := a.PopularDirectories(parseLimit(args, cfg.Limits.Report))
		if err != nil {
			return err
		}
		return newPrinter().PopularDirectories(rows)
	},
}

var fileStatsCmd = &cobra.Command{
	Use:   "file-stats",
	Short: "Show file type statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newApp("file-stats")
		if err != nil {
			return err
		}
		defer a.Close()

		rows, err := a.FileStats()
		if err != nil {
			return err
		}
		return newPrinter().FileStats(rows)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search directory and file history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newApp("search")
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.SearchHistory(args[0])
		if err != nil {
			return err
		}
		return newPrinter().Search(res)
	},
}

var changeToDirCmd = &cobra.Command{
	Use:   "change-to-dir [limit]",
	Short: "Pick a recent directory and print it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cfg, err := newApp("change-to-dir")
		if err != nil {
			return err
		}
		defer a.Close()

		selected, err := a.SelectDirectory(parseLimit(args, cfg.Limits.Select))
		if err != nil {
			return err
		}
		if selected != "" {
			fmt.Println(selected)
		}
		return nil
	},
}

var changeToFileCmd = &cobra.Command{
	Use:   "change-to-file [limit]",
	Short: "Pick a recent file and print it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cfg, err := newApp("change-to-file")
		if err != nil {
			return err
		}
		defer a.Close()

		selected, err := a.SelectFile(parseLimit(args, cfg.Limits.Select))
		if err != nil {
			return err
		}
		if selected != "" {
			fmt.Println(selected)
		}
		return nil
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove history entries whose paths no longer exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newApp("prune")
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.PruneStale()
		if err != nil {
			return err
		}
		return newPrinter().Prune(res)
	},
}

// db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the history store",
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the history store if it does not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newApp("db init")
		if err != nil {
			return err
		}
		defer a.Close()

		version, err := a.InitStore()
		if err != nil {
			return err
		}
		fmt.Printf("History store ready at %s (schema version %d)\n", a.DBPath(), version)
		return nil
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])
		if dbPath != "" {
			cfg.Database.Path = dbPath
		}

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		fmt.Printf("DB Path:  %s\n", cfg.Database.Path)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, defaults, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("# Configuration from %s\n\n", defaults["config_path"])
		m := &config.Manager{}
		return m.Write(os.Stdout, cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the history database (default: ~/.fzf.db)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored JSON output")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// db subcommands
	dbCmd.AddCommand(dbInitCmd)

	// root commands
	rootCmd.AddCommand(recentDirsCmd)
	rootCmd.AddCommand(recentFilesCmd)
	rootCmd.AddCommand(popularDirsCmd)
	rootCmd.AddCommand(fileStatsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(changeToDirCmd)
	rootCmd.AddCommand(changeToFileCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(configCmd)
}
