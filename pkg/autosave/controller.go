package autosave

import (
	"errors"
	"sync"
	"time"

	"github.com/opensphere/editorial/internal/logger"
	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/store"
)

// Status is the save lifecycle shown in the status bar.
type Status int

const (
	StatusIdle Status = iota
	StatusSaving
	StatusSaved
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSaving:
		return "saving"
	case StatusSaved:
		return "saved"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Controller persists editor content after a quiet period. Every change
// restarts the debounce timer, so a burst of edits produces one write.
type Controller struct {
	mu sync.Mutex

	store  *store.Store
	engine *editor.Engine

	debounce time.Duration
	settle   time.Duration

	timer       *time.Timer
	settleTimer *time.Timer

	status      Status
	loaded      bool
	closed      bool
	unsubscribe func()

	subs   map[int]func(Status)
	nextID int
}

// New wires a controller to the engine's update stream. Call Close when
// the editor shuts down.
func New(st *store.Store, engine *editor.Engine, debounce, settle time.Duration) *Controller {
	c := &Controller{
		store:    st,
		engine:   engine,
		debounce: debounce,
		settle:   settle,
		status:   StatusIdle,
		subs:     make(map[int]func(Status)),
	}
	c.unsubscribe = engine.OnUpdate(c.NoteChange)
	return c
}

// NewFromSettings builds a controller with the intervals configured in
// settings.yaml.
func NewFromSettings(st *store.Store, engine *editor.Engine, settings *store.Settings) *Controller {
	return New(st, engine,
		time.Duration(settings.Autosave.DebounceMs)*time.Millisecond,
		time.Duration(settings.Autosave.SettleMs)*time.Millisecond)
}

// Status returns the current save state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Subscribe registers a callback for status transitions. The returned
// function removes the subscription.
func (c *Controller) Subscribe(fn func(Status)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Controller) setStatusLocked(s Status) {
	if c.status == s {
		return
	}
	c.status = s
	fns := make([]func(Status), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
	c.mu.Lock()
}

// NoteChange marks the status saving and restarts the debounce window,
// so the badge reflects the pending write for the whole quiet period.
func (c *Controller) NoteChange() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.setStatusLocked(StatusSaving)
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.save)
}

func (c *Controller) save() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.setStatusLocked(StatusSaving)
	c.mu.Unlock()

	content, err := c.engine.JSON()
	if err == nil {
		err = c.store.SaveContent(content)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if err != nil {
		logger.Error("autosave failed", err)
		c.setStatusLocked(StatusError)
		return
	}
	c.setStatusLocked(StatusSaved)
	if c.settleTimer != nil {
		c.settleTimer.Stop()
	}
	c.settleTimer = time.AfterFunc(c.settle, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed && c.status == StatusSaved {
			c.setStatusLocked(StatusIdle)
		}
	})
}

// SaveNow saves immediately, cancelling any pending debounce. The manual
// save path; failures are reflected in the status, never returned.
func (c *Controller) SaveNow() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.save()
}

// LoadOnMount restores the last saved document into the engine. It runs at
// most once per controller; later calls are no-ops so a remounted view
// cannot clobber in-progress edits. Missing or corrupt state is treated as
// absent.
func (c *Controller) LoadOnMount() bool {
	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		return false
	}
	c.loaded = true
	c.mu.Unlock()

	rec, err := c.store.LoadContent()
	if errors.Is(err, store.ErrNotFound) {
		return false
	}
	if err != nil {
		logger.Warn("could not restore saved content", map[string]interface{}{"error": err.Error()})
		return false
	}
	if err := c.engine.SetContentJSON(rec.Content); err != nil {
		logger.Warn("saved content is not a valid document", map[string]interface{}{"error": err.Error()})
		return false
	}
	return true
}

// Close cancels timers and detaches from the engine. Pending edits are
// not flushed; callers that care should SaveNow first.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.settleTimer != nil {
		c.settleTimer.Stop()
	}
	if c.unsubscribe != nil {
		unsub := c.unsubscribe
		c.unsubscribe = nil
		c.mu.Unlock()
		unsub()
		c.mu.Lock()
	}
}
