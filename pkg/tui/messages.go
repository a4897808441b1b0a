package tui

import (
	"github.com/opensphere/editorial/pkg/autosave"
)

// Messages for communication between the app and its sub-models.

// StatusMsg sets a transient status bar message.
type StatusMsg string

// saveStatusMsg carries autosave lifecycle transitions into the status bar.
type saveStatusMsg struct {
	status autosave.Status
}
