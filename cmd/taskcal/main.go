// Package main is the entry point for the taskcal TUI application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskcal/internal/config"
	"taskcal/internal/dataio"
	"taskcal/internal/holiday"
	"taskcal/internal/store"
	"taskcal/internal/tui"
)

const version = "0.1.0"

const helpText = `taskcal - Terminal month calendar with tasks, labels and holidays

USAGE:
    taskcal [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --import FILE     Start with tasks and labels imported from FILE
    --data FILE       Override the export/import file (default data.json)
    --country CODE    Two-letter country code for the holiday feed
    --offline         Skip the holiday feed fetch
    --labels          Start in the labels view

CONFIGURATION:
    Config file: ~/.config/taskcal/config.yaml

    Session state lives in memory only; export it from inside the app
    (E key) and import it back (I key or --import) to carry it across
    sessions.

KEYBINDINGS:
    Navigation:
        h/j/k/l     Move selection by day / week
        [ / ]       Previous / next month
        t           Jump to today
        Enter       Open day view
        Esc         Go back

    Tasks:
        a           Add task on the selected day
        e           Edit task under cursor
        d           Delete task under cursor
        m           Pick up task, Enter drops it on another day
        y           Yank task name to clipboard
        /           Search tasks

    Other:
        L           Labels view
        E / I       Export / import
        ?           Show help
        q           Quit
`

const configTemplate = `# taskcal configuration
# Location: ~/.config/taskcal/config.yaml

holidays:
  # Two-letter country code for the public-holiday feed (empty = worldwide)
  country: ""

  # Seconds to wait for the feed before giving up. On failure the calendar
  # simply shows no holidays.
  fetch_timeout_seconds: 10

  # Set to true to never fetch holidays.
  # disabled: true

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true

  # Start in "month" or "labels" view
  # default_view: month

  # Desktop notification for tasks due today on startup
  notifications: true

data:
  # Export/import file; relative paths resolve against the working directory
  # export_path: data.json
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		importPath  string
		dataPath    string
		country     string
		offline     bool
		viewLabels  bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&importPath, "import", "", "Import tasks and labels from file")
	flag.StringVar(&dataPath, "data", "", "Override export/import file")
	flag.StringVar(&country, "country", "", "Country code for the holiday feed")
	flag.BoolVar(&offline, "offline", false, "Skip the holiday feed fetch")
	flag.BoolVar(&viewLabels, "labels", false, "Start in labels view")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("taskcal version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	initialView := ""
	if viewLabels {
		initialView = "labels"
	}

	return runApp(initialView, importPath, dataPath, country, offline)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(initialView, importPath, dataPath, country string, offline bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flag overrides
	if dataPath != "" {
		cfg.Data.ExportPath = dataPath
	}
	if country != "" {
		cfg.Holidays.Country = country
	}
	if initialView == "" && cfg.UI.DefaultView != "" {
		initialView = cfg.UI.DefaultView
	}

	tasks := store.NewTaskStore()
	labels := store.NewLabelStore()

	if importPath != "" {
		doc, err := dataio.ImportFile(importPath)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", importPath, err)
		}
		dataio.Apply(doc, tasks, labels)
	}

	feed := holiday.NewClient(cfg.Holidays.Country, cfg.FetchTimeout())
	if cfg.Holidays.FeedURL != "" {
		feed.SetBaseURL(cfg.Holidays.FeedURL)
	}

	app := tui.NewApp(cfg, tasks, labels, feed, initialView, offline)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
