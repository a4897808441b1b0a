package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opensphere/editorial/internal/cli"
	"github.com/opensphere/editorial/pkg/export"
)

var (
	exportToFile    string
	exportClipboard bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [format]",
		Short: "Export the saved document to stdout, a file, or the clipboard",
		Long: `Export the autosaved document in one of the supported formats.

Formats:
  markdown   Plain text with formatting syntax (default)
  html       Standalone web page with styling
  text       Plain text without formatting
  pdf        Print-ready HTML for printing to PDF

By default the result is written to stdout.

Examples:
  # Export as Markdown to stdout
  opensphere export

  # Export as a standalone HTML page to a file
  opensphere export html --file report.html

  # Copy the plain text to the clipboard
  opensphere export text --clipboard`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cli.ValidateExportFormat(args[0])
			}
			return nil
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVarP(&exportClipboard, "clipboard", "c", false, "Copy to the clipboard instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	formatID := "markdown"
	if len(args) > 0 {
		formatID = strings.ToLower(args[0])
	}

	ctx, err := cli.NewCommandContext(dataDir)
	if err != nil {
		return err
	}
	engine, err := ctx.LoadDocument()
	if err != nil {
		return err
	}

	if exportClipboard {
		if err := export.Copy(engine, formatID); err != nil {
			return err
		}
		cli.PrintSuccess("copied %s export to clipboard", formatID)
		return nil
	}

	if exportToFile != "" {
		if err := cli.ValidateOutputPath(exportToFile); err != nil {
			return err
		}
		path, err := export.WriteFile(engine, formatID, exportToFile)
		if err != nil {
			return err
		}
		cli.PrintSuccess("exported to %s", path)
		return nil
	}

	content, err := export.Render(engine, formatID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}
