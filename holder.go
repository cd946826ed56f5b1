package equalheight

import (
	"slices"

	"github.com/grindlemire/go-equalheight/internal/debug"
)

// Parent is where a member is created: a *Scope (the member gets its own
// implicit holder) or a *Holder.
type Parent interface {
	scopeOf() *Scope
	holderOf() *Holder
}

func (s *Scope) scopeOf() *Scope   { return s }
func (s *Scope) holderOf() *Holder { return nil }

func (h *Holder) scopeOf() *Scope {
	if h == nil {
		return nil
	}
	return h.scope
}

func (h *Holder) holderOf() *Holder { return h }

// Holder groups members that sit together, typically one card. It reduces
// their heights to one entry per name and reports the result, tagged with
// its own position, to the scope.
type Holder struct {
	id       string
	scope    *Scope
	node     Positioner
	implicit bool
	mounted  bool

	members []MemberRecord
	entries []HolderEntry

	position   int
	positioned bool
}

// NewHolder creates a holder positioned by node. A nil node leaves the
// holder unpositioned, which counts as row 0.
func NewHolder(scope *Scope, node Positioner) (*Holder, error) {
	if scope == nil {
		return nil, ErrOutsideScope
	}
	return newHolder(scope, node, false), nil
}

func newHolder(scope *Scope, node Positioner, implicit bool) *Holder {
	return &Holder{
		id:       nextID("holder_"),
		scope:    scope,
		node:     node,
		implicit: implicit,
	}
}

// ID returns the holder identifier.
func (h *Holder) ID() string {
	return h.id
}

// Implicit reports whether the holder was created by a member that had no
// enclosing holder.
func (h *Holder) Implicit() bool {
	return h.implicit
}

// Mount adds the holder's aggregate to the scope.
func (h *Holder) Mount() {
	if h.mounted {
		return
	}
	h.mounted = true
	h.scope.addHolder(h)
	h.aggregate()
}

// Unmount removes the holder's aggregate from the scope.
func (h *Holder) Unmount() {
	if !h.mounted {
		return
	}
	h.mounted = false
	h.scope.removeHolder(h)
}

// Init mounts the holder and returns Unmount, for use with a Mounter.
func (h *Holder) Init() func() {
	h.Mount()
	return h.Unmount
}

// Members returns a copy of the member records, in registration order.
func (h *Holder) Members() []MemberRecord {
	return slices.Clone(h.members)
}

// Entries returns a copy of the last aggregate.
func (h *Holder) Entries() []HolderEntry {
	return slices.Clone(h.entries)
}

// Position returns the position recorded at the last aggregation.
func (h *Holder) Position() (int, bool) {
	return h.position, h.positioned
}

// register inserts or replaces a member record by id.
func (h *Holder) register(rec MemberRecord) {
	if i := slices.IndexFunc(h.members, func(m MemberRecord) bool { return m.ID == rec.ID }); i >= 0 {
		h.members[i] = rec
	} else {
		h.members = append(h.members, rec)
	}
	h.aggregate()
}

// unregister removes a member record by id.
func (h *Holder) unregister(id string) {
	n := len(h.members)
	h.members = slices.DeleteFunc(h.members, func(m MemberRecord) bool { return m.ID == id })
	if len(h.members) != n {
		h.aggregate()
	}
}

// aggregate recomputes the per-name maxima with a freshly read position and
// reports them if the holder is mounted.
func (h *Holder) aggregate() {
	h.position, h.positioned = h.readPosition()
	h.entries = reduceMembers(h.id, h.members, h.position, h.positioned)
	h.logMembers()
	if h.mounted {
		h.scope.reportHolder(h.id, h.entries)
	}
}

// refreshPosition re-reports the aggregate if the holder moved since it was
// last reported.
func (h *Holder) refreshPosition() {
	if !h.mounted || len(h.entries) == 0 {
		return
	}
	pos, ok := h.readPosition()
	if pos == h.position && ok == h.positioned {
		return
	}
	h.scope.logger.Debug("holder moved", "holder", h.id, "from", h.position, "to", pos)
	h.aggregate()
}

func (h *Holder) readPosition() (int, bool) {
	if h.node == nil {
		return 0, false
	}
	return h.node.Top(), true
}

func (h *Holder) logMembers() {
	s := h.scope
	if s.devMode != DevDeep || len(h.members) == 0 {
		return
	}
	rows := make([][]string, 0, len(h.members))
	for _, m := range h.members {
		placeholder := "false"
		if m.Placeholder {
			placeholder = "true"
		}
		rows = append(rows, []string{m.ID, m.Name, heightString(m.Height, m.HasHeight), placeholder})
	}
	s.logger.Info("elements updated", "holder", h.id, "table", "\n"+debug.Table([]string{"id", "name", "height", "placeholder"}, rows))
}
