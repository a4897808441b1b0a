package cli

import (
	"errors"
	"fmt"

	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/store"
)

// CommandContext resolves the data directory and shares the store and
// settings between headless commands.
type CommandContext struct {
	Store    *store.Store
	Settings *store.Settings
}

// NewCommandContext opens the store at dir, falling back to the per-user
// default when dir is empty.
func NewCommandContext(dir string) (*CommandContext, error) {
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	st, err := store.New(dir)
	if err != nil {
		return nil, err
	}
	settings, err := st.ReadSettings()
	if err != nil {
		// Broken settings fall back to defaults; headless commands
		// should still run.
		settings = store.DefaultSettings()
	}
	return &CommandContext{Store: st, Settings: settings}, nil
}

// LoadDocument builds an engine from the persisted save record.
func (c *CommandContext) LoadDocument() (*editor.Engine, error) {
	rec, err := c.Store.LoadContent()
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no saved document found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load saved document: %w", err)
	}
	e := editor.New()
	if err := e.SetContentJSON(rec.Content); err != nil {
		return nil, fmt.Errorf("saved document is not valid: %w", err)
	}
	return e, nil
}
