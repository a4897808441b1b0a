package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/theme"
)

func TestRuneOffsets(t *testing.T) {
	// "éx": é spans bytes 0-2, x is byte 2.
	text := "éx"
	tests := []struct {
		name string
		fn   func(string, int) int
		at   int
		want int
	}{
		{"prev from end", prevOffset, 3, 2},
		{"prev over multibyte rune", prevOffset, 2, 0},
		{"prev at start", prevOffset, 0, 0},
		{"next over multibyte rune", nextOffset, 0, 2},
		{"next from last byte", nextOffset, 2, 3},
		{"next at end", nextOffset, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(text, tt.at); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCursorKeysStepByRune(t *testing.T) {
	e := editor.NewWithContent(editor.Doc(editor.Paragraph(editor.Text("éx"))))
	styles := NewStyles(theme.Dark)
	c := NewCanvas(e, &styles, 24)
	c.SetSize(40, 20)

	end := len(e.Text())
	e.SetSelection(end, end)

	c.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	if from, _ := e.Selection(); from != 2 {
		t.Errorf("cursor after left = %d, want 2", from)
	}

	// The second left must land before é, never inside it.
	c.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})
	if from, _ := e.Selection(); from != 0 {
		t.Errorf("cursor after second left = %d, want 0", from)
	}

	c.HandleKey(tea.KeyMsg{Type: tea.KeyShiftRight})
	if from, to := e.Selection(); from != 0 || to != 2 {
		t.Errorf("selection after shift+right = (%d, %d), want (0, 2)", from, to)
	}
	if got := e.SelectedText(); got != "é" {
		t.Errorf("selected text = %q, want é", got)
	}
}
