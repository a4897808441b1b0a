package commands

import (
	"strings"

	"github.com/opensphere/editorial/pkg/editor"
)

// Category groups commands for the palette display.
type Category string

const (
	CategoryBasic  Category = "Basic"
	CategoryLists  Category = "Lists"
	CategoryBlocks Category = "Blocks"
	CategoryInline Category = "Inline"
	CategoryInsert Category = "Insert"
	CategoryEdit   Category = "Edit"
)

// Command is one entry in the shared command surface. The toolbar, bubble
// menu, and slash palette all dispatch through the same table; they differ
// only in which subset they show.
type Command struct {
	ID          string
	Label       string
	Description string
	Icon        string
	Category    Category
	NeedsInput  bool
	InputPrompt string
	Run         func(e *editor.Engine, input string)
}

// registry is ordered; the palette renders it top to bottom.
var registry = []Command{
	{
		ID: "paragraph", Label: "Text", Description: "Plain paragraph text",
		Icon: "¶", Category: CategoryBasic,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().SetParagraph().Run() },
	},
	{
		ID: "heading1", Label: "Heading 1", Description: "Large section heading",
		Icon: "H1", Category: CategoryBasic,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleHeading(1).Run() },
	},
	{
		ID: "heading2", Label: "Heading 2", Description: "Medium section heading",
		Icon: "H2", Category: CategoryBasic,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleHeading(2).Run() },
	},
	{
		ID: "heading3", Label: "Heading 3", Description: "Small section heading",
		Icon: "H3", Category: CategoryBasic,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleHeading(3).Run() },
	},
	{
		ID: "bulletList", Label: "Bullet List", Description: "Unordered list with bullets",
		Icon: "•", Category: CategoryLists,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleBulletList().Run() },
	},
	{
		ID: "orderedList", Label: "Numbered List", Description: "Ordered list with numbers",
		Icon: "1.", Category: CategoryLists,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleOrderedList().Run() },
	},
	{
		ID: "taskList", Label: "Task List", Description: "Checklist with checkboxes",
		Icon: "☑", Category: CategoryLists,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleTaskList().Run() },
	},
	{
		ID: "blockquote", Label: "Quote", Description: "Block quotation",
		Icon: "❝", Category: CategoryBlocks,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleBlockquote().Run() },
	},
	{
		ID: "codeBlock", Label: "Code Block", Description: "Preformatted code",
		Icon: "</>", Category: CategoryBlocks,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleCodeBlock().Run() },
	},
	{
		ID: "table", Label: "Table", Description: "3x3 table with a header row",
		Icon: "⊞", Category: CategoryInsert,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().InsertTable(3, 3).Run() },
	},
	{
		ID: "image", Label: "Image", Description: "Image from a URL",
		Icon: "🖼", Category: CategoryInsert,
		NeedsInput: true, InputPrompt: "Image URL",
		Run: func(e *editor.Engine, input string) {
			if input == "" {
				return
			}
			e.Chain().Focus().SetImage(input).Run()
		},
	},
	{
		ID: "horizontalRule", Label: "Divider", Description: "Horizontal rule",
		Icon: "—", Category: CategoryInsert,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().SetHorizontalRule().Run() },
	},

	// Toolbar and bubble-menu extras.
	{
		ID: "bold", Label: "Bold", Description: "Toggle bold",
		Icon: "B", Category: CategoryInline,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleBold().Run() },
	},
	{
		ID: "italic", Label: "Italic", Description: "Toggle italic",
		Icon: "I", Category: CategoryInline,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleItalic().Run() },
	},
	{
		ID: "underline", Label: "Underline", Description: "Toggle underline",
		Icon: "U", Category: CategoryInline,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleUnderline().Run() },
	},
	{
		ID: "strike", Label: "Strikethrough", Description: "Toggle strikethrough",
		Icon: "S", Category: CategoryInline,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleStrike().Run() },
	},
	{
		ID: "code", Label: "Inline Code", Description: "Toggle inline code",
		Icon: "`", Category: CategoryInline,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().ToggleCode().Run() },
	},
	{
		ID: "highlight", Label: "Highlight", Description: "Highlight the selection",
		Icon: "▦", Category: CategoryInline,
		NeedsInput: true, InputPrompt: "Highlight color",
		Run: func(e *editor.Engine, input string) {
			if input == "" {
				return
			}
			e.Chain().Focus().ToggleHighlight(input).Run()
		},
	},
	{
		ID: "textColor", Label: "Text Color", Description: "Color the selection",
		Icon: "A", Category: CategoryInline,
		NeedsInput: true, InputPrompt: "Text color",
		Run: func(e *editor.Engine, input string) {
			if input == "" {
				return
			}
			e.Chain().Focus().SetColor(input).Run()
		},
	},
	{
		ID: "link", Label: "Link", Description: "Link the selection to a URL",
		Icon: "⛓", Category: CategoryInline,
		NeedsInput: true, InputPrompt: "Link URL",
		Run: func(e *editor.Engine, input string) {
			if input == "" {
				return
			}
			e.Chain().Focus().SetLink(input).Run()
		},
	},
	{
		ID: "unsetLink", Label: "Remove Link", Description: "Remove the link from the selection",
		Icon: "⛓̸", Category: CategoryInline,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().UnsetLink().Run() },
	},
	{
		ID: "alignLeft", Label: "Align Left", Description: "Align the block left",
		Icon: "⇤", Category: CategoryBlocks,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().SetTextAlign("left").Run() },
	},
	{
		ID: "alignCenter", Label: "Align Center", Description: "Center the block",
		Icon: "⇔", Category: CategoryBlocks,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().SetTextAlign("center").Run() },
	},
	{
		ID: "alignRight", Label: "Align Right", Description: "Align the block right",
		Icon: "⇥", Category: CategoryBlocks,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().SetTextAlign("right").Run() },
	},
	{
		ID: "undo", Label: "Undo", Description: "Undo the last change",
		Icon: "↶", Category: CategoryEdit,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().Undo().Run() },
	},
	{
		ID: "redo", Label: "Redo", Description: "Redo the last undone change",
		Icon: "↷", Category: CategoryEdit,
		Run: func(e *editor.Engine, _ string) { e.Chain().Focus().Redo().Run() },
	},
}

// paletteIDs is the slash-palette subset, in display order.
var paletteIDs = []string{
	"paragraph", "heading1", "heading2", "heading3",
	"bulletList", "orderedList", "taskList",
	"blockquote", "codeBlock",
	"table", "image", "horizontalRule",
}

// All returns every registered command in display order.
func All() []Command {
	out := make([]Command, len(registry))
	copy(out, registry)
	return out
}

// Palette returns the slash-palette subset.
func Palette() []Command {
	out := make([]Command, 0, len(paletteIDs))
	for _, id := range paletteIDs {
		if cmd, ok := Find(id); ok {
			out = append(out, cmd)
		}
	}
	return out
}

// Find looks a command up by ID.
func Find(id string) (Command, bool) {
	for _, cmd := range registry {
		if cmd.ID == id {
			return cmd, true
		}
	}
	return Command{}, false
}

// Filter returns the palette commands whose label, description, or
// category contains the query, case-insensitively. An empty query returns
// the full palette.
func Filter(query string) []Command {
	palette := Palette()
	if query == "" {
		return palette
	}
	q := strings.ToLower(query)
	out := make([]Command, 0, len(palette))
	for _, cmd := range palette {
		if strings.Contains(strings.ToLower(cmd.Label), q) ||
			strings.Contains(strings.ToLower(cmd.Description), q) ||
			strings.Contains(strings.ToLower(string(cmd.Category)), q) {
			out = append(out, cmd)
		}
	}
	return out
}

// Execute runs the command with the given ID. Unknown IDs are ignored.
func Execute(e *editor.Engine, id, input string) bool {
	cmd, ok := Find(id)
	if !ok {
		return false
	}
	cmd.Run(e, input)
	return true
}
