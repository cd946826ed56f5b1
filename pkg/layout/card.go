package layout

// Card stacks blocks vertically in one grid cell. It is the natural
// boundary for a group of blocks that share a row.
type Card struct {
	blocks []*Block
	rect   Rect
	parent container
	dirty  bool
}

var _ container = (*Card)(nil)

// NewCard creates a card holding the given blocks, top to bottom.
func NewCard(blocks ...*Block) *Card {
	c := &Card{dirty: true}
	c.Append(blocks...)
	return c
}

// Append adds blocks to the bottom of the card.
func (c *Card) Append(blocks ...*Block) {
	for _, b := range blocks {
		b.setParent(c)
		c.blocks = append(c.blocks, b)
	}
	c.markDirty()
}

// Blocks returns the card's blocks.
func (c *Card) Blocks() []*Block {
	return c.blocks
}

// SetWidth sets the width of a card that is not placed on a page.
func (c *Card) SetWidth(width int) {
	c.rect.Width = max(0, width)
	c.markDirty()
}

// Rect returns the card's box after layout.
func (c *Card) Rect() Rect {
	c.ensureLayout()
	return c.rect
}

// Top returns the row of the card's top edge.
func (c *Card) Top() int {
	return c.Rect().Y
}

func (c *Card) place(x, y, width int) int {
	cy := y
	for _, b := range c.blocks {
		cy += b.place(x, cy, width)
	}
	c.rect = NewRect(x, y, width, cy-y)
	c.dirty = false
	return c.rect.Height
}

func (c *Card) minWidth() int {
	widest := 0
	for _, b := range c.blocks {
		widest = max(widest, b.minWidth())
	}
	return widest
}

func (c *Card) setParent(p container) {
	c.parent = p
}

func (c *Card) markDirty() {
	c.dirty = true
	if c.parent != nil {
		c.parent.markDirty()
	}
}

func (c *Card) ensureLayout() {
	if c.parent != nil {
		c.parent.ensureLayout()
		return
	}
	if c.dirty {
		c.place(c.rect.X, c.rect.Y, c.rect.Width)
	}
}
