package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/opensphere/editorial/cmd/commands"
	"github.com/opensphere/editorial/internal/cli"
	"github.com/opensphere/editorial/internal/logger"
	"github.com/opensphere/editorial/pkg/store"
	"github.com/opensphere/editorial/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagDataDir string
	flagQuiet   bool
	flagNoColor bool
	flagLog     string
)

var rootCmd = &cobra.Command{
	Use:   "opensphere",
	Short: "Terminal rich-text editor with pages, outline, and autosave",
	Long:  `OpenSphere Editorial is a terminal rich-text editor. Documents autosave locally and can be exported as Markdown, HTML, plain text, or print-ready pages. Run without arguments to open the editor.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, false)
		commands.SetDataDir(flagDataDir)

		dir := flagDataDir
		if dir == "" {
			var err error
			dir, err = store.DefaultDir()
			if err != nil {
				return err
			}
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
		// The TUI owns stdout; logs go to a file in the data dir.
		if err := logger.Init(dir, flagLog); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := tui.NewApp(flagDataDir)
		if err != nil {
			return fmt.Errorf("failed to start the editor: %w", err)
		}
		defer app.Close()

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of OpenSphere Editorial",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("OpenSphere Editorial version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default: per-user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewClearCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
