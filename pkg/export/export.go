package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/opensphere/editorial/pkg/editor"
)

// Format describes one export target.
type Format struct {
	ID          string
	Name        string
	Description string
	Extension   string
}

// Formats lists the supported export targets in display order.
var Formats = []Format{
	{ID: "markdown", Name: "Markdown", Description: "Plain text with formatting syntax", Extension: ".md"},
	{ID: "html", Name: "HTML", Description: "Web page with styling", Extension: ".html"},
	{ID: "text", Name: "Plain Text", Description: "Simple text without formatting", Extension: ".txt"},
	{ID: "pdf", Name: "PDF", Description: "Print-ready document", Extension: ".pdf.html"},
}

// FormatByID looks a format up by its ID.
func FormatByID(id string) (Format, bool) {
	for _, f := range Formats {
		if f.ID == id {
			return f, true
		}
	}
	return Format{}, false
}

var markdownRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`<h1[^>]*>(.*?)</h1>`), "# $1\n\n"},
	{regexp.MustCompile(`<h2[^>]*>(.*?)</h2>`), "## $1\n\n"},
	{regexp.MustCompile(`<h3[^>]*>(.*?)</h3>`), "### $1\n\n"},
	// Before the paragraph rule: a quote's inner <p> would otherwise
	// introduce newlines the quote pattern cannot cross.
	{regexp.MustCompile(`<blockquote[^>]*>(.*?)</blockquote>`), "> $1\n"},
	{regexp.MustCompile(`<p[^>]*>(.*?)</p>`), "$1\n\n"},
	{regexp.MustCompile(`<strong>(.*?)</strong>`), "**$1**"},
	{regexp.MustCompile(`<em>(.*?)</em>`), "*$1*"},
	{regexp.MustCompile(`<u>(.*?)</u>`), "_$1_"},
	{regexp.MustCompile(`<li[^>]*>(.*?)</li>`), "- $1\n"},
	{regexp.MustCompile(`<ul[^>]*>`), ""},
	{regexp.MustCompile(`</ul>`), "\n"},
	{regexp.MustCompile(`<ol[^>]*>`), ""},
	{regexp.MustCompile(`</ol>`), "\n"},
	{regexp.MustCompile(`<code>(.*?)</code>`), "`$1`"},
	{regexp.MustCompile(`<[^>]+>`), ""},
}

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&#34;", `"`,
	"&#39;", "'",
)

// Markdown renders the document as basic Markdown. The conversion is a
// structural substitution over the HTML form; markup without a rule is
// stripped rather than escaped.
func Markdown(e *editor.Engine) string {
	out := e.HTML()
	for _, rule := range markdownRules {
		out = rule.re.ReplaceAllString(out, rule.repl)
	}
	return strings.TrimSpace(entityReplacer.Replace(out))
}

const documentStyle = `        body {
            font-family: 'Georgia', serif;
            max-width: 800px;
            margin: 2rem auto;
            padding: 2rem;
            line-height: 1.7;
            color: #1a1a1a;
        }
        h1, h2, h3 { font-family: system-ui, sans-serif; }
        h1 { font-size: 2.5em; margin-bottom: 0.5em; }
        h2 { font-size: 1.8em; margin-bottom: 0.4em; }
        h3 { font-size: 1.4em; margin-bottom: 0.3em; }
        p { margin-bottom: 1.5em; }
        blockquote {
            border-left: 4px solid #cbd5e1;
            padding-left: 1.5em;
            font-style: italic;
            color: #475569;
        }
        code {
            background: #f1f5f9;
            padding: 0.2em 0.4em;
            border-radius: 4px;
            font-family: monospace;
        }
        table {
            border-collapse: collapse;
            width: 100%;
            margin: 1em 0;
        }
        th, td {
            border: 1px solid #e2e8f0;
            padding: 0.75em;
            text-align: left;
        }
        th { background: #f8fafc; }`

// HTMLDocument renders a standalone page carrying the document and its
// stylesheet.
func HTMLDocument(e *editor.Engine) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Document</title>
    <style>
%s
    </style>
</head>
<body>
%s
</body>
</html>`, documentStyle, e.HTML())
}

// Text renders the flattened plain text.
func Text(e *editor.Engine) string {
	return e.Text()
}

const printStyle = `        @page { size: letter; margin: 1in; }
        @media print {
            body { margin: 0; padding: 0; max-width: none; }
        }`

// PrintDocument renders the print pipeline's input: the standalone page
// plus page-size rules. Rasterizing to PDF is left to the printer.
func PrintDocument(e *editor.Engine) string {
	doc := HTMLDocument(e)
	return strings.Replace(doc, "    </style>", printStyle+"\n    </style>", 1)
}

// Render produces the document in the named format.
func Render(e *editor.Engine, formatID string) (string, error) {
	switch formatID {
	case "markdown":
		return Markdown(e), nil
	case "html":
		return HTMLDocument(e), nil
	case "text":
		return Text(e), nil
	case "pdf":
		return PrintDocument(e), nil
	default:
		return "", fmt.Errorf("unknown export format %q", formatID)
	}
}

// Copy renders the document and places it on the system clipboard.
func Copy(e *editor.Engine, formatID string) error {
	content, err := Render(e, formatID)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// WriteFile renders the document and writes it next to path. A missing
// extension is filled in from the format.
func WriteFile(e *editor.Engine, formatID, path string) (string, error) {
	format, ok := FormatByID(formatID)
	if !ok {
		return "", fmt.Errorf("unknown export format %q", formatID)
	}
	content, err := Render(e, formatID)
	if err != nil {
		return "", err
	}
	if filepath.Ext(path) == "" {
		path += format.Extension
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return path, nil
}
