// Package layout is a small terminal box model used as the measurement host
// for equal-height groups.
//
// A [Page] flows [Item]s ([Block] or [Card]) into a responsive grid: the
// number of columns follows the page width, and a one-column scrollbar
// appears when the content is taller than the viewport. Blocks wrap their
// text at the column width, so their natural height depends on the page
// size. Layout is computed lazily: mutations mark the owning page dirty and
// the next read of a position or height recalculates it.
package layout
