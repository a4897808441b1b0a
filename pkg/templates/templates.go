package templates

import (
	"fmt"
	"strings"
	"time"

	"github.com/opensphere/editorial/pkg/editor"
)

// Template is a starter document authored in Markdown. Source may carry
// a {{date}} placeholder resolved when the template is applied.
type Template struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Source      string

	// finalize adjusts the converted tree for details Markdown cannot
	// express, like block alignment.
	finalize func(doc *editor.Node)
}

const dateLayout = "January 2, 2006"

var builtin = []Template{
	{
		ID: "blank", Name: "Blank Document",
		Description: "Start fresh with an empty page", Icon: "□",
		Source: "# Untitled Document\n\nStart typing here...\n",
	},
	{
		ID: "meeting", Name: "Meeting Notes",
		Description: "Structured meeting agenda template", Icon: "📅",
		Source: `# Meeting Notes

**Date:** {{date}}

**Attendees:**

## Agenda

- [ ] Topic 1
- [ ] Topic 2
- [ ] Topic 3

## Discussion Points

## Action Items

- [ ] Action item 1
- [ ] Action item 2

## Next Steps
`,
	},
	{
		ID: "brief", Name: "Project Brief",
		Description: "Project overview and objectives", Icon: "📋",
		Source: `# Project Brief

## Overview

Provide a summary of the project and its goals.

## Objectives

- Objective 1
- Objective 2
- Objective 3

## Scope

Define what is included and excluded from this project.

## Timeline

**Start Date:**

**End Date:**

## Team

- **Project Lead:**
- **Team Members:**

## Success Metrics

How will we measure the success of this project?
`,
	},
	{
		ID: "letter", Name: "Formal Letter",
		Description: "Professional letter format", Icon: "✉",
		Source: `{{date}}

[Recipient Name]

[Company/Organization]

[Address]

Dear [Recipient Name],

[Opening paragraph - State the purpose of your letter]

[Body paragraph - Provide details and supporting information]

[Closing paragraph - Summarize and include any call to action]

Sincerely,

[Your Name]

[Your Title]
`,
		finalize: func(doc *editor.Node) {
			// The date line sits flush right.
			if len(doc.Content) > 0 && doc.Content[0].Type == editor.TypeParagraph {
				doc.Content[0].Attrs = map[string]interface{}{"textAlign": "right"}
			}
		},
	},
	{
		ID: "notes", Name: "Daily Notes",
		Description: "Journal page for the day", Icon: "📓",
		Source: `# {{date}}

## Highlights

-

## Notes

## Tomorrow

- [ ] Carry over
`,
	},
}

// List returns metadata for every built-in template, in display order.
func List() []Template {
	out := make([]Template, len(builtin))
	copy(out, builtin)
	return out
}

// Find looks a template up by ID.
func Find(id string) (Template, bool) {
	for _, t := range builtin {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Build converts the template to a document, resolving placeholders
// against now.
func Build(id string, now time.Time) (*editor.Node, error) {
	t, ok := Find(id)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", id)
	}
	src := strings.ReplaceAll(t.Source, "{{date}}", now.Format(dateLayout))
	doc, err := parseMarkdown([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("failed to build template %s: %w", id, err)
	}
	if t.finalize != nil {
		t.finalize(doc)
	}
	return doc, nil
}

// Apply replaces the engine's document with the template. The caller is
// responsible for confirming when unsaved work would be lost.
func Apply(e *editor.Engine, id string) error {
	doc, err := Build(id, time.Now())
	if err != nil {
		return err
	}
	e.SetContent(doc)
	return nil
}
