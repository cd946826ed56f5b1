package layout

// Page flows items into a grid sized by its viewport. It implements the
// viewport queries used for scrollbar detection.
type Page struct {
	width  int
	height int

	gap        int
	rowGap     int
	minColumn  int
	maxColumns int

	items []Item
	grid  [][]Item
	dirty bool

	columns       int
	contentHeight int
	scrollbar     bool
	scrollY       int
}

var _ container = (*Page)(nil)

// PageOption configures a Page.
type PageOption func(*Page)

// WithGap sets the horizontal gap between columns and the blank rows
// between grid rows.
func WithGap(columns, rows int) PageOption {
	return func(p *Page) {
		p.gap = max(0, columns)
		p.rowGap = max(0, rows)
	}
}

// WithMinColumnWidth sets the narrowest column the page will create.
func WithMinColumnWidth(width int) PageOption {
	return func(p *Page) {
		p.minColumn = max(1, width)
	}
}

// WithMaxColumns caps the number of grid columns.
func WithMaxColumns(n int) PageOption {
	return func(p *Page) {
		p.maxColumns = max(1, n)
	}
}

// NewPage creates an empty page with the given viewport size.
func NewPage(width, height int, opts ...PageOption) *Page {
	p := &Page{
		width:      max(1, width),
		height:     max(1, height),
		gap:        2,
		rowGap:     1,
		minColumn:  24,
		maxColumns: 4,
		dirty:      true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetSize changes the viewport size.
func (p *Page) SetSize(width, height int) {
	width, height = max(1, width), max(1, height)
	if p.width == width && p.height == height {
		return
	}
	p.width, p.height = width, height
	p.markDirty()
}

// Size returns the viewport size.
func (p *Page) Size() (int, int) {
	return p.width, p.height
}

// Add appends items to the page.
func (p *Page) Add(items ...Item) {
	for _, it := range items {
		it.setParent(p)
		p.items = append(p.items, it)
	}
	p.markDirty()
}

// Remove detaches an item. Returns true if it was on the page.
func (p *Page) Remove(item Item) bool {
	for i, it := range p.items {
		if it == item {
			p.items = append(p.items[:i], p.items[i+1:]...)
			item.setParent(nil)
			p.markDirty()
			return true
		}
	}
	return false
}

// Items returns the items in flow order.
func (p *Page) Items() []Item {
	return p.items
}

// Columns returns the number of grid columns after layout.
func (p *Page) Columns() int {
	p.ensureLayout()
	return p.columns
}

// ScrollHeight returns the total content height.
func (p *Page) ScrollHeight() int {
	p.ensureLayout()
	return p.contentHeight
}

// ClientHeight returns the visible height.
func (p *Page) ClientHeight() int {
	return p.height
}

// ScrollbarVisible reports whether the content overflows the viewport.
func (p *Page) ScrollbarVisible() bool {
	p.ensureLayout()
	return p.scrollbar
}

// ScrollBy moves the viewport by dy rows, clamped to the content.
func (p *Page) ScrollBy(dy int) {
	p.ensureLayout()
	p.scrollY += dy
	p.clampScroll()
}

func (p *Page) markDirty() {
	p.dirty = true
}

func (p *Page) ensureLayout() {
	if p.dirty {
		p.layout()
	}
}

// layout places every item. A first pass uses the full width; if the
// content overflows, the scrollbar takes one column and the grid is laid
// out again at the narrower width.
func (p *Page) layout() {
	p.dirty = false
	height := p.layoutAt(p.width)
	scrollbar := height > p.height
	if scrollbar && p.width > 1 {
		height = p.layoutAt(p.width - 1)
	}
	p.contentHeight = height
	p.scrollbar = scrollbar
	p.clampScroll()
}

func (p *Page) columnsFor(width int) int {
	if len(p.items) == 0 {
		return 1
	}
	minColumn := p.minColumn
	for _, it := range p.items {
		minColumn = max(minColumn, it.minWidth())
	}
	cols := (width + p.gap) / (minColumn + p.gap)
	return max(1, min(cols, p.maxColumns, len(p.items)))
}

func (p *Page) layoutAt(width int) int {
	cols := p.columnsFor(width)
	colWidth := max(1, (width-p.gap*(cols-1))/cols)

	p.columns = cols
	p.grid = p.grid[:0]
	y := 0
	for start := 0; start < len(p.items); start += cols {
		if start > 0 {
			y += p.rowGap
		}
		end := min(start+cols, len(p.items))
		rowHeight := 0
		for i := start; i < end; i++ {
			x := (i - start) * (colWidth + p.gap)
			rowHeight = max(rowHeight, p.items[i].place(x, y, colWidth))
		}
		p.grid = append(p.grid, p.items[start:end])
		y += rowHeight
	}
	return y
}

func (p *Page) clampScroll() {
	maxScroll := max(0, p.contentHeight-p.height)
	p.scrollY = max(0, min(p.scrollY, maxScroll))
}
