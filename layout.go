// layout.go re-exports the dimension types from pkg/layout that appear in
// the Node interface.

package equalheight

import "github.com/grindlemire/go-equalheight/pkg/layout"

// Value represents a node height: fixed cells or Auto.
type Value = layout.Value

// Fixed creates a Value with a fixed number of cells.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}
