package equalheight

// MemberRecord is one member's contribution to its holder's table.
type MemberRecord struct {
	ID          string
	Name        string
	Height      int
	HasHeight   bool
	Placeholder bool
}

// HolderEntry is a holder's maximum height for one name, tagged with the
// holder's position at aggregation time.
type HolderEntry struct {
	HolderID   string
	Name       string
	Height     int
	HasHeight  bool
	Position   int
	Positioned bool
}

// Target is the height every member with Name (in the row at Position,
// when row alignment is on) is resized to.
type Target struct {
	Name       string
	Height     int
	HasHeight  bool
	Position   int
	Positioned bool
}

// reduceMembers folds member records into one entry per name in order of
// first appearance. Members without a height do not lower or set the max.
func reduceMembers(holderID string, members []MemberRecord, position int, positioned bool) []HolderEntry {
	entries := make([]HolderEntry, 0, len(members))
	index := make(map[string]int, len(members))
	for _, m := range members {
		i, ok := index[m.Name]
		if !ok {
			index[m.Name] = len(entries)
			entries = append(entries, HolderEntry{
				HolderID:   holderID,
				Name:       m.Name,
				Height:     m.Height,
				HasHeight:  m.HasHeight,
				Position:   position,
				Positioned: positioned,
			})
			continue
		}
		entries[i].Height, entries[i].HasHeight = maxHeight(entries[i].Height, entries[i].HasHeight, m.Height, m.HasHeight)
	}
	return entries
}

// reduceEntries folds every holder entry into the target table. With row
// alignment on, an entry only joins a bucket whose position is within
// tolerance of its own; unpositioned entries count as position 0.
func reduceEntries(entries []HolderEntry, rows RowPolicy) []Target {
	targets := make([]Target, 0, len(entries))
	for _, e := range entries {
		i := matchTarget(targets, e.Name, e.Position, rows)
		if i < 0 {
			targets = append(targets, Target{
				Name:       e.Name,
				Height:     e.Height,
				HasHeight:  e.HasHeight,
				Position:   e.Position,
				Positioned: e.Positioned,
			})
			continue
		}
		targets[i].Height, targets[i].HasHeight = maxHeight(targets[i].Height, targets[i].HasHeight, e.Height, e.HasHeight)
	}
	return targets
}

// findTarget returns the target a member named name at position applies.
func findTarget(targets []Target, name string, position int, rows RowPolicy) (Target, bool) {
	if i := matchTarget(targets, name, position, rows); i >= 0 {
		return targets[i], true
	}
	return Target{}, false
}

// matchTarget returns the index of the bucket for name at position, or -1.
// An unpositioned bucket carries position 0 and matches as row 0.
func matchTarget(targets []Target, name string, position int, rows RowPolicy) int {
	for i, t := range targets {
		if t.Name != name {
			continue
		}
		if rows.Enabled() && !rows.Same(t.Position, position) {
			continue
		}
		return i
	}
	return -1
}

func maxHeight(a int, aok bool, b int, bok bool) (int, bool) {
	switch {
	case aok && bok:
		return max(a, b), true
	case bok:
		return b, true
	default:
		return a, aok
	}
}
