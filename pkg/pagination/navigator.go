package pagination

// Zoom limits and step size, matching the editor's zoom controls.
const (
	MinZoomPercent  = 50
	MaxZoomPercent  = 200
	ZoomStepPercent = 25
	FitZoomPercent  = 100
)

// Navigator tracks the current page and zoom level over a paginated view.
// The current page is always within [1, pageCount]; callers must Clamp
// after every recompute so the invariant survives shrinking documents.
type Navigator struct {
	currentPage int
	zoomPercent int
}

// NewNavigator starts at page 1, 100% zoom.
func NewNavigator() *Navigator {
	return &Navigator{
		currentPage: 1,
		zoomPercent: FitZoomPercent,
	}
}

// CurrentPage returns the 1-based current page.
func (n *Navigator) CurrentPage() int {
	return n.currentPage
}

// ZoomPercent returns the current zoom level.
func (n *Navigator) ZoomPercent() int {
	return n.zoomPercent
}

// GoTo moves to the given page, clamped to [1, pageCount].
func (n *Navigator) GoTo(page, pageCount int) {
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}
	n.currentPage = page
}

// Next advances one page, bounded by pageCount.
func (n *Navigator) Next(pageCount int) {
	n.GoTo(n.currentPage+1, pageCount)
}

// Prev moves back one page, bounded at 1.
func (n *Navigator) Prev(pageCount int) {
	n.GoTo(n.currentPage-1, pageCount)
}

// Clamp re-applies the page bound after the page count changed.
func (n *Navigator) Clamp(pageCount int) {
	n.GoTo(n.currentPage, pageCount)
}

// ZoomIn raises zoom by one step, capped at MaxZoomPercent.
func (n *Navigator) ZoomIn() {
	n.zoomPercent += ZoomStepPercent
	if n.zoomPercent > MaxZoomPercent {
		n.zoomPercent = MaxZoomPercent
	}
}

// ZoomOut lowers zoom by one step, capped at MinZoomPercent.
func (n *Navigator) ZoomOut() {
	n.zoomPercent -= ZoomStepPercent
	if n.zoomPercent < MinZoomPercent {
		n.zoomPercent = MinZoomPercent
	}
}

// FitWidth resets zoom to exactly 100%.
func (n *Navigator) FitWidth() {
	n.zoomPercent = FitZoomPercent
}
