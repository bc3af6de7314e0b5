// Command olm-gui is the desktop front-end of the Onion Link Manager.
// It reads the same configuration and store as the olm command.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/nikbrunner/olm/internal/gui"
	"github.com/nikbrunner/olm/internal/links"
	"github.com/nikbrunner/olm/internal/log"
	"github.com/nikbrunner/olm/internal/storage"
)

const AppID = "com.nikbrunner.olm"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is the normal case
	_ = godotenv.Load()

	cfg, err := storage.LoadConfig(storage.DefaultConfigFilePath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := log.OpenLogFile(log.DefaultLogFilePath())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger := log.NewLogger(logFile, os.Getenv(log.EnvVerbose) != "")

	svc, err := links.OpenConfigured(cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(gui.WindowTitle)
	myWindow.Resize(fyne.NewSize(gui.WindowWidth, gui.WindowHeight))

	gui.NewShell(gui.ShellParams{
		Window: myWindow,
		Links:  svc,
		Logger: logger,
	})

	myWindow.ShowAndRun()

	if svc.Dirty() {
		return fmt.Errorf("quit with unsaved changes: %w", links.ErrSaveFailed)
	}
	return nil
}
