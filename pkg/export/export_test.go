package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opensphere/editorial/pkg/editor"
)

func sampleEngine() *editor.Engine {
	return editor.NewWithContent(editor.Doc(
		editor.Heading(1, editor.Text("Quarterly Report")),
		editor.Paragraph(
			editor.Text("Revenue was "),
			editor.Text("up", editor.Mark{Type: editor.MarkBold}),
			editor.Text(" this quarter."),
		),
		editor.Paragraph(editor.Text("Costs & risks < expected.")),
	))
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleEngine())

	if !strings.HasPrefix(md, "# Quarterly Report") {
		t.Errorf("markdown does not start with the heading: %q", md)
	}
	if !strings.Contains(md, "**up**") {
		t.Errorf("bold run not converted: %q", md)
	}
	if !strings.Contains(md, "Costs & risks < expected.") {
		t.Errorf("entities not unescaped: %q", md)
	}
	if strings.Contains(md, "<") && strings.Contains(md, ">") && strings.Contains(md, "</") {
		t.Errorf("markup leaked into markdown: %q", md)
	}
	if strings.HasSuffix(md, "\n") {
		t.Errorf("markdown not trimmed: %q", md)
	}
}

func TestMarkdownLists(t *testing.T) {
	e := editor.New()
	if err := e.SetContentHTML("<ul><li>first</li><li>second</li></ul><blockquote><p>wise words</p></blockquote>"); err != nil {
		t.Fatal(err)
	}
	md := Markdown(e)

	if !strings.Contains(md, "- first") || !strings.Contains(md, "- second") {
		t.Errorf("list items not converted: %q", md)
	}
	if !strings.Contains(md, "> wise words") {
		t.Errorf("blockquote not converted: %q", md)
	}
}

func TestHTMLDocument(t *testing.T) {
	html := HTMLDocument(sampleEngine())

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Document</title>",
		"font-family: 'Georgia', serif;",
		"<h1>Quarterly Report</h1>",
		"<strong>up</strong>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestPrintDocumentAddsPageRules(t *testing.T) {
	html := PrintDocument(sampleEngine())
	if !strings.Contains(html, "@page") || !strings.Contains(html, "@media print") {
		t.Error("print document is missing page rules")
	}
	if !strings.Contains(html, "<h1>Quarterly Report</h1>") {
		t.Error("print document is missing the body")
	}
}

func TestText(t *testing.T) {
	got := Text(sampleEngine())
	want := "Quarterly Report\n\nRevenue was up this quarter.\n\nCosts & risks < expected."
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := Render(sampleEngine(), "docx"); err == nil {
		t.Error("Render accepted an unknown format")
	}
}

func TestFormatsMetadata(t *testing.T) {
	wantIDs := []string{"markdown", "html", "text", "pdf"}
	if len(Formats) != len(wantIDs) {
		t.Fatalf("%d formats, want %d", len(Formats), len(wantIDs))
	}
	for i, id := range wantIDs {
		f := Formats[i]
		if f.ID != id {
			t.Errorf("Formats[%d].ID = %q, want %q", i, f.ID, id)
		}
		if f.Name == "" || f.Description == "" || f.Extension == "" {
			t.Errorf("format %q has empty metadata", f.ID)
		}
		if got, ok := FormatByID(id); !ok || got.ID != id {
			t.Errorf("FormatByID(%q) failed", id)
		}
	}
	if _, ok := FormatByID("docx"); ok {
		t.Error("FormatByID matched an unknown ID")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(sampleEngine(), "markdown", filepath.Join(dir, "document"))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if filepath.Ext(path) != ".md" {
		t.Errorf("extension not filled in: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Quarterly Report") {
		t.Errorf("file content wrong: %q", data)
	}

	// An explicit extension is left alone.
	path, err = WriteFile(sampleEngine(), "text", filepath.Join(dir, "notes.txt"))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if filepath.Base(path) != "notes.txt" {
		t.Errorf("explicit name rewritten: %q", path)
	}
}
