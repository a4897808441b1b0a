package editor

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

const historyLimit = 100

// Engine owns a document tree and the selection over its flattened text.
// All mutation goes through Chain; direct tree access is read-only.
type Engine struct {
	mu      sync.Mutex
	doc     *Node
	selFrom int
	selTo   int
	focused bool

	history []*Node
	redo    []*Node

	subs    map[int]func()
	nextSub int
}

// New creates an engine seeded with the default welcome document.
func New() *Engine {
	return NewWithContent(DefaultDocument())
}

// NewWithContent creates an engine around an existing document tree.
func NewWithContent(doc *Node) *Engine {
	if doc == nil {
		doc = Doc(Paragraph())
	}
	return &Engine{
		doc:  doc,
		subs: make(map[int]func()),
	}
}

// OnUpdate subscribes to change notifications. The returned function
// removes the subscription.
func (e *Engine) OnUpdate(fn func()) func() {
	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

func (e *Engine) notify() {
	e.mu.Lock()
	fns := make([]func(), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Doc returns the live document tree for traversal. Callers must not
// mutate it.
func (e *Engine) Doc() *Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc
}

// JSON serializes the document tree.
func (e *Engine) JSON() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	data, err := json.Marshal(e.doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return data, nil
}

// Text returns the document's flattened text with formatting stripped.
func (e *Engine) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return buildIndex(e.doc).text
}

// WordCount counts whitespace-separated words in the flattened text.
func (e *Engine) WordCount() int {
	return len(strings.Fields(e.Text()))
}

// CharacterCount counts runes in the flattened text.
func (e *Engine) CharacterCount() int {
	return len([]rune(e.Text()))
}

// SetContent replaces the document with a new tree, resetting the
// selection and clearing history.
func (e *Engine) SetContent(doc *Node) {
	e.mu.Lock()
	if doc == nil {
		doc = Doc(Paragraph())
	}
	e.doc = doc
	e.selFrom, e.selTo = 0, 0
	e.history = nil
	e.redo = nil
	e.mu.Unlock()

	e.notify()
}

// SetContentJSON replaces the document from engine-native JSON.
func (e *Engine) SetContentJSON(data []byte) error {
	var doc Node
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document JSON: %w", err)
	}
	if doc.Type != TypeDoc {
		return fmt.Errorf("document root has type %q, want %q", doc.Type, TypeDoc)
	}
	e.SetContent(&doc)
	return nil
}

// Selection returns the current selection bounds over the flattened text.
func (e *Engine) Selection() (from, to int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selFrom, e.selTo
}

// SetSelection sets the selection, clamped to the flattened text length.
func (e *Engine) SetSelection(from, to int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setSelectionLocked(from, to)
}

func (e *Engine) setSelectionLocked(from, to int) {
	max := len(buildIndex(e.doc).text)
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}
	from, to = clamp(from), clamp(to)
	if to < from {
		from, to = to, from
	}
	e.selFrom, e.selTo = from, to
}

// SelectedText returns the flattened text within the selection.
func (e *Engine) SelectedText() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	text := buildIndex(e.doc).text
	if e.selFrom >= len(text) {
		return ""
	}
	to := e.selTo
	if to > len(text) {
		to = len(text)
	}
	return text[e.selFrom:to]
}

// HasSelection reports whether the selection is non-empty.
func (e *Engine) HasSelection() bool {
	from, to := e.Selection()
	return to > from
}

// Focused reports whether the engine considers the editing surface
// focused. The host flips this; commands re-focus through Chain.Focus.
func (e *Engine) Focused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focused
}

// Blur marks the editing surface unfocused.
func (e *Engine) Blur() {
	e.mu.Lock()
	e.focused = false
	e.mu.Unlock()
}

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.history) > 0
}

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.redo) > 0
}

// IsActive reports whether a mark or node type applies at the current
// selection. Optional attrs narrow the check, e.g.
// IsActive("heading", map[string]interface{}{"level": 2}).
func (e *Engine) IsActive(name string, attrs ...map[string]interface{}) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	var want map[string]interface{}
	if len(attrs) > 0 {
		want = attrs[0]
	}

	switch name {
	case MarkBold, MarkItalic, MarkUnderline, MarkStrike, MarkCode,
		MarkHighlight, MarkTextStyle, MarkLink:
		return e.markActiveLocked(name)
	default:
		return e.nodeActiveLocked(name, want)
	}
}

func (e *Engine) markActiveLocked(markType string) bool {
	idx := buildIndex(e.doc)
	if e.selTo > e.selFrom {
		for _, s := range idx.segments {
			if s.start < e.selTo && s.end() > e.selFrom && !s.node.HasMark(markType) {
				return false
			}
		}
		// At least one overlapping segment must exist.
		for _, s := range idx.segments {
			if s.start < e.selTo && s.end() > e.selFrom {
				return true
			}
		}
		return false
	}
	seg, ok := idx.segmentAt(e.selFrom)
	return ok && seg.node.HasMark(markType)
}

func (e *Engine) nodeActiveLocked(name string, want map[string]interface{}) bool {
	idx := buildIndex(e.doc)

	// Check the innermost textblock first, then the enclosing top-level
	// block so list and blockquote membership is visible.
	if tb, ok := idx.textblockAt(e.selFrom); ok {
		if tb.node.Type == name && attrsMatch(tb.node, want) {
			return true
		}
	}
	if blk, ok := idx.blockAt(e.selFrom); ok {
		if blk.node.Type == name && attrsMatch(blk.node, want) {
			return true
		}
	}
	return false
}

func attrsMatch(n *Node, want map[string]interface{}) bool {
	for k, v := range want {
		got, ok := n.Attrs[k]
		if !ok {
			return false
		}
		// JSON decoding turns ints into float64; normalize both sides.
		if wi, ok := toInt(v); ok {
			gi, gok := toInt(got)
			if !gok || gi != wi {
				return false
			}
			continue
		}
		if got != v {
			return false
		}
	}
	return true
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

// LinkHref returns the href of the link mark at the selection, if any.
func (e *Engine) LinkHref() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if seg, ok := buildIndex(e.doc).segmentAt(e.selFrom); ok {
		if v, ok := seg.node.markAttr(MarkLink, "href"); ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// snapshot pushes the current tree onto the undo history.
func (e *Engine) snapshotLocked() {
	e.history = append(e.history, e.doc.Clone())
	if len(e.history) > historyLimit {
		e.history = e.history[1:]
	}
	e.redo = nil
}

func (e *Engine) undoLocked() {
	if len(e.history) == 0 {
		return
	}
	e.redo = append(e.redo, e.doc)
	e.doc = e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.setSelectionLocked(e.selFrom, e.selTo)
}

func (e *Engine) redoLocked() {
	if len(e.redo) == 0 {
		return
	}
	e.history = append(e.history, e.doc)
	e.doc = e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.setSelectionLocked(e.selFrom, e.selTo)
}
