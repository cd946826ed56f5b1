// Package equalheight keeps blocks that share a group name at the same
// rendered height.
//
// A [Scope] owns the recalculation trigger and the target-size table. Each
// [Holder] reduces the natural heights of its [Member]s to one entry per
// name, tagged with the holder's vertical position, and reports it to the
// scope. The scope reduces every holder's entries to one target per name
// (or per name and row when row alignment is on) and members apply the
// matching target height on the next render pass.
//
// Measurement goes through the [Node] interface, so any host that can report
// a natural height and a top edge can participate. The pkg/layout package
// provides a terminal box model that implements it.
//
// All mutation happens on the scope's event queue. Hosts either call
// [Scope.Run] or drive the queue themselves with [Scope.Flush].
package equalheight
