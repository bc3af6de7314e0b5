package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/olm/internal/links"
	"github.com/nikbrunner/olm/internal/log"
	"github.com/nikbrunner/olm/internal/storage"
	"github.com/nikbrunner/olm/internal/tui"
)

// NewRootCmd creates the root command. Without a subcommand it opens the TUI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "olm",
		Short: "Onion Link Manager",
		Long: `olm keeps a small list of titled links, typically .onion addresses,
in a local file and copies them to the clipboard on demand.

Run without arguments to open the interactive list.

Configuration is read from $XDG_CONFIG_HOME/olm/config.yaml and may be
overridden with OLM_STORE_FORMAT, OLM_STORE_PATH, OLM_ON_RENAME_CONFLICT and
OLM_STRICT_ONION (also read from ./.env).`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file (default $XDG_CONFIG_HOME/olm/config.yaml)")
	cmd.PersistentFlags().StringP("file", "f", "", "Store file, overrides store.path")
	cmd.PersistentFlags().String("store-format", "", "Store format: titlemap, list or sqlite")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewEditCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewCopyCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewImportCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	// A missing .env is the normal case
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runTUI opens the store and runs the interactive list until quit.
// Logs go to a file so they do not draw over the alt screen.
func runTUI(cmd *cobra.Command, _ []string) error {
	logFile, err := log.OpenLogFile(log.DefaultLogFilePath())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger := log.NewLogger(logFile, getVerboseFlag(cmd))

	svc, err := openService(cmd, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	app := tui.NewApp(tui.AppParams{Links: svc, Logger: logger})
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}

	if svc.Dirty() {
		return fmt.Errorf("quit with unsaved changes: %w", links.ErrSaveFailed)
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
// OLM_VERBOSE turns it on as well.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, _ = cmd.Root().PersistentFlags().GetBool("verbose")
	}
	return verbose || os.Getenv(log.EnvVerbose) != ""
}

// cliLogger returns the stderr logger used by subcommands.
func cliLogger(cmd *cobra.Command) *slog.Logger {
	return log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

// loadConfig reads the config file, then applies --file and --store-format.
func loadConfig(cmd *cobra.Command) (*storage.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	if path == "" {
		path = storage.DefaultConfigFilePath()
	}

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if format, _ := flags.GetString("store-format"); format != "" {
		cfg.Store.Format = format
	}
	if file, _ := flags.GetString("file"); file != "" {
		cfg.Store.Path = file
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// openService loads the configured store. The caller closes it.
func openService(cmd *cobra.Command, logger *slog.Logger) (*links.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return links.OpenConfigured(cfg, logger)
}

// completeTitles offers stored titles for a command's first argument.
func completeTitles(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	svc, err := openService(cmd, log.NewLogger(io.Discard, false))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer svc.Close()

	return svc.Titles(), cobra.ShellCompDirectiveNoFileComp
}
