package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects the structured output encoding for show-style
// commands.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputResults encodes data in the requested format. Text output is the
// caller's job; here it falls back to a plain print.
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(yamlData))
		return nil

	case FormatText:
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// TableFormatter renders aligned tabular output for listings.
type TableFormatter struct {
	writer *tabwriter.Writer
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	fmt.Fprintln(t.writer, strings.Repeat("-", 60))
}

func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// TruncateString shortens s to maxLen, marking the cut with an ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
