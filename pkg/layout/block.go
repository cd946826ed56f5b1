package layout

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// container is implemented by layout owners that lay out their children lazily.
type container interface {
	markDirty()
	ensureLayout()
}

// Item is anything a Page can place in its grid. It is implemented by
// *Block and *Card.
type Item interface {
	place(x, y, width int) int
	minWidth() int
	setParent(container)
	render() string
}

var (
	_ Item = (*Block)(nil)
	_ Item = (*Card)(nil)
)

// Block is a text box whose height is either fixed or follows its wrapped
// content.
type Block struct {
	text      string
	padX      int
	padY      int
	border    bool
	minHeight int
	style     lipgloss.Style

	height     Value
	transition time.Duration
	hidden     bool

	rect   Rect
	parent container
}

// BlockOption configures a Block.
type BlockOption func(*Block)

// WithPadding sets vertical and horizontal padding in cells.
func WithPadding(vertical, horizontal int) BlockOption {
	return func(b *Block) {
		b.padY = max(0, vertical)
		b.padX = max(0, horizontal)
	}
}

// WithBorder draws a rounded border around the block.
func WithBorder() BlockOption {
	return func(b *Block) {
		b.border = true
	}
}

// WithMinHeight sets the smallest natural height of the block.
func WithMinHeight(n int) BlockOption {
	return func(b *Block) {
		b.minHeight = max(0, n)
	}
}

// WithStyle sets the lipgloss style used for colors and text attributes.
// Padding, border and size settings of the style are overridden.
func WithStyle(style lipgloss.Style) BlockOption {
	return func(b *Block) {
		b.style = style
	}
}

// WithWidth sets the width of a block that is not placed on a page.
func WithWidth(width int) BlockOption {
	return func(b *Block) {
		b.rect.Width = max(0, width)
	}
}

// NewBlock creates a block with the given text and Auto height.
func NewBlock(text string, opts ...BlockOption) *Block {
	b := &Block{
		text:   text,
		height: Auto(),
		style:  lipgloss.NewStyle(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Text returns the block content.
func (b *Block) Text() string {
	return b.text
}

// SetText replaces the block content.
func (b *Block) SetText(text string) {
	if b.text == text {
		return
	}
	b.text = text
	b.markDirty()
}

// Empty reports whether the block has no content.
func (b *Block) Empty() bool {
	return b.text == ""
}

// Height returns the configured height.
func (b *Block) Height() Value {
	return b.height
}

// SetHeight sets the block height. Auto lets the content decide.
func (b *Block) SetHeight(v Value) {
	if b.height == v {
		return
	}
	b.height = v
	b.markDirty()
}

// Transition returns the duration of the last height transition request.
func (b *Block) Transition() time.Duration {
	return b.transition
}

// SetTransition records the duration over which height changes animate.
func (b *Block) SetTransition(d time.Duration) {
	b.transition = d
}

// ContentHidden reports whether the text is suppressed.
func (b *Block) ContentHidden() bool {
	return b.hidden
}

// SetContentHidden suppresses the text while keeping the box.
func (b *Block) SetContentHidden(hidden bool) {
	if b.hidden == hidden {
		return
	}
	b.hidden = hidden
	b.markDirty()
}

// Rect returns the block's border box after layout.
func (b *Block) Rect() Rect {
	b.ensureLayout()
	return b.rect
}

// Top returns the row of the block's top edge.
func (b *Block) Top() int {
	return b.Rect().Y
}

// OffsetHeight returns the rendered height, including padding and border.
func (b *Block) OffsetHeight() int {
	return b.Rect().Height
}

// NaturalHeight returns the height the block needs at the given width when
// its height is Auto.
func (b *Block) NaturalHeight(width int) int {
	frameW, frameH := b.frame()
	lines := 0
	if !b.hidden && b.text != "" {
		lines = lipgloss.Height(b.wrapped(width - frameW))
	}
	return max(lines+frameH, b.minHeight)
}

// wrapped returns the content wrapped at the given inner width. Words longer
// than the width are broken.
func (b *Block) wrapped(inner int) string {
	inner = max(1, inner)
	return wrap.String(wordwrap.String(b.text, inner), inner)
}

// frame returns the horizontal and vertical cells taken by padding and border.
func (b *Block) frame() (int, int) {
	w, h := 2*b.padX, 2*b.padY
	if b.border {
		w += 2
		h += 2
	}
	return w, h
}

func (b *Block) outerHeight(width int) int {
	if !b.height.IsAuto() {
		return b.height.Amount
	}
	return b.NaturalHeight(width)
}

func (b *Block) place(x, y, width int) int {
	h := b.outerHeight(width)
	b.rect = NewRect(x, y, width, h)
	return h
}

// minWidth is the width of the widest word plus the frame.
func (b *Block) minWidth() int {
	widest := 0
	for _, word := range strings.Fields(b.text) {
		widest = max(widest, runewidth.StringWidth(word))
	}
	frameW, _ := b.frame()
	return widest + frameW
}

func (b *Block) setParent(c container) {
	b.parent = c
}

func (b *Block) markDirty() {
	if b.parent != nil {
		b.parent.markDirty()
	}
}

func (b *Block) ensureLayout() {
	if b.parent != nil {
		b.parent.ensureLayout()
		return
	}
	b.place(b.rect.X, b.rect.Y, b.rect.Width)
}
