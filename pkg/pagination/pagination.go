// Package pagination estimates how many fixed-size pages a continuously
// flowing document occupies, and tracks navigation state over that
// paginated view. Pages are a visual overlay: the content itself is never
// split, only the rendered height is divided into page-sized slices.
package pagination

// Geometry describes the fixed page layout in unscaled document pixels.
// Defaults correspond to US Letter at 96dpi with 1in margins.
type Geometry struct {
	PageHeightPx int
	MarginPx     int
}

// DefaultGeometry is 11in pages with 1in margins at 96dpi.
var DefaultGeometry = Geometry{
	PageHeightPx: 1056,
	MarginPx:     96,
}

// UsableHeightPx is the vertical space available for content per page.
func (g Geometry) UsableHeightPx() int {
	return g.PageHeightPx - 2*g.MarginPx
}

// Engine derives a page count from the latest measured content height.
// Measurement is supplied by the host (the rendering surface observes its
// own size); the engine itself is a pure function of height and geometry.
type Engine struct {
	geometry   Geometry
	lastHeight int
	pageCount  int
}

// NewEngine creates an engine for the given geometry. A zero geometry is
// replaced with DefaultGeometry.
func NewEngine(geometry Geometry) *Engine {
	if geometry.PageHeightPx == 0 {
		geometry = DefaultGeometry
	}
	return &Engine{
		geometry:   geometry,
		lastHeight: -1,
		pageCount:  1,
	}
}

// Geometry returns the configured page geometry.
func (e *Engine) Geometry() Geometry {
	return e.geometry
}

// Recompute derives the page count from a measured content height in
// unscaled pixels. It is idempotent: recomputing with an unchanged height
// returns the cached count. The result is always at least 1.
func (e *Engine) Recompute(measuredHeightPx int) int {
	if measuredHeightPx == e.lastHeight {
		return e.pageCount
	}
	e.lastHeight = measuredHeightPx

	usable := e.geometry.UsableHeightPx()
	count := 1
	if measuredHeightPx > 0 && usable > 0 {
		count = (measuredHeightPx + usable - 1) / usable
		if count < 1 {
			count = 1
		}
	}
	e.pageCount = count
	return count
}

// PageCount returns the most recently computed page count.
func (e *Engine) PageCount() int {
	return e.pageCount
}
