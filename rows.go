package equalheight

import "strconv"

// RowPolicy controls whether same-named entries are split into buckets by
// vertical position. The zero value disables row alignment.
type RowPolicy struct {
	enabled   bool
	tolerance int
}

// RowsOff disables row alignment: one target per name.
func RowsOff() RowPolicy {
	return RowPolicy{}
}

// RowsOn enables row alignment with the default tolerance of 0 cells.
func RowsOn() RowPolicy {
	return RowPolicy{enabled: true}
}

// RowsWithin enables row alignment; entries whose positions differ by at
// most tolerance cells share a bucket. Negative tolerances are treated as 0.
func RowsWithin(tolerance int) RowPolicy {
	return RowPolicy{enabled: true, tolerance: max(0, tolerance)}
}

// Enabled reports whether row alignment is on.
func (p RowPolicy) Enabled() bool {
	return p.enabled
}

// Tolerance returns the maximum position difference within one bucket.
func (p RowPolicy) Tolerance() int {
	return p.tolerance
}

// Same reports whether two positions fall in the same row.
func (p RowPolicy) Same(a, b int) bool {
	if !p.enabled {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= p.tolerance
}

func (p RowPolicy) String() string {
	if !p.enabled {
		return "false"
	}
	if p.tolerance == 0 {
		return "true"
	}
	return strconv.Itoa(p.tolerance)
}
