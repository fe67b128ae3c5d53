package views

// Paginator keeps a cursor over the result list and the window of rows that fits on screen
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a paginator showing pageSize rows (10 when not positive)
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetPageSize changes the window height, e.g. after a resize
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		size = 1
	}
	p.pageSize = size
	p.follow()
}

// SetTotal sets the result count and clamps the cursor into it
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	if p.cursor >= total {
		p.cursor = max(total-1, 0)
	}
	p.follow()
}

// Cursor returns the absolute cursor index
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor to pos, clamped to the results
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(min(pos, p.totalItems-1), 0)
	p.follow()
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.follow()
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.totalItems-1 {
		return false
	}
	p.cursor++
	p.follow()
	return true
}

// PageDown jumps one window forward, stopping at the last row
func (p *Paginator) PageDown() {
	if p.totalItems == 0 {
		return
	}
	p.cursor = min(p.cursor+p.pageSize, p.totalItems-1)
	p.follow()
}

// PageUp jumps one window back, stopping at the first row
func (p *Paginator) PageUp() {
	p.cursor = max(p.cursor-p.pageSize, 0)
	p.follow()
}

// VisibleRange returns the half-open range of rows on screen
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.pageOffset
	end = min(p.pageOffset+p.pageSize, p.totalItems)
	return
}

// Reset moves the cursor back to the top
func (p *Paginator) Reset() {
	p.cursor = 0
	p.pageOffset = 0
}

// follow scrolls the window so the cursor stays visible
func (p *Paginator) follow() {
	if p.cursor < p.pageOffset {
		p.pageOffset = p.cursor
	} else if p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = p.cursor - p.pageSize + 1
	}
	if p.pageOffset < 0 {
		p.pageOffset = 0
	}
}
