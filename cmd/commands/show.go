package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opensphere/editorial/internal/cli"
	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/outline"
)

var (
	showOutline bool
	showFormat  string
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved document",
		Long: `Print the autosaved document as plain text, or its heading outline.

Examples:
  # Print the document text
  opensphere show

  # Print the heading outline
  opensphere show --outline

  # Print the outline as JSON
  opensphere show --outline -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(showFormat)
		},
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showOutline, "outline", false, "Show the heading outline instead of the text")
	cmd.Flags().StringVarP(&showFormat, "output", "o", "text", "Output format for the outline (text, json, yaml)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(dataDir)
	if err != nil {
		return err
	}
	engine, err := ctx.LoadDocument()
	if err != nil {
		return err
	}

	if !showOutline {
		fmt.Fprintln(cmd.OutOrStdout(), engine.Text())
		printSummary(cmd, ctx, engine)
		return nil
	}

	headings := outline.Extract(engine.Doc())
	if len(headings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No headings found")
		return nil
	}

	if cli.OutputFormat(showFormat) != cli.FormatText {
		return cli.OutputResults(cmd.OutOrStdout(), showFormat, headings)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("LEVEL", "HEADING", "ID")
	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-1)
		table.Row(fmt.Sprintf("H%d", h.Level), indent+cli.TruncateString(h.Text, 50), h.ID)
	}
	table.Flush()
	return nil
}

func printSummary(cmd *cobra.Command, ctx *cli.CommandContext, engine *editor.Engine) {
	rec, err := ctx.Store.LoadContent()
	if err != nil {
		return
	}
	saved := time.UnixMilli(rec.Timestamp).Format("2006-01-02 15:04")
	cli.PrintInfo("%d words, saved %s", engine.WordCount(), saved)
}
