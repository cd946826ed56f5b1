package equalheight

import (
	"time"

	"github.com/grindlemire/go-equalheight/pkg/layout"
)

var (
	_ Node       = (*layout.Block)(nil)
	_ Positioner = (*layout.Card)(nil)
	_ Viewport   = (*layout.Page)(nil)
)

// Positioner reports the row of a rendered box's top edge.
// Implementations must measure fresh on every call: scrolling and layout
// move boxes between recalculation cycles.
type Positioner interface {
	Top() int
}

// Node is the measurement surface of one member's rendered box.
type Node interface {
	Positioner

	// Height returns the height currently imposed on the box.
	Height() Value

	// SetHeight imposes a height. Auto releases the constraint.
	SetHeight(Value)

	// OffsetHeight returns the rendered height under the current constraint.
	OffsetHeight() int
}

// Transitioner is implemented by nodes that animate height changes.
type Transitioner interface {
	SetTransition(time.Duration)
}

// ContentHider is implemented by nodes that can keep their box while
// suppressing their content. Placeholder members use it.
type ContentHider interface {
	SetContentHidden(bool)
}

// ContentNode is implemented by nodes that can report having no content.
// An empty node that is not a placeholder does not take part in layout.
type ContentNode interface {
	Empty() bool
}

// Viewport reports the page-level scroll geometry used to detect scrollbar
// visibility changes.
type Viewport interface {
	ScrollHeight() int
	ClientHeight() int
}
