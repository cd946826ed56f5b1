package equalheight

import (
	"strconv"
	"time"
)

// Member is one block whose height follows its group's target.
//
// Lifecycle: unregistered → registered(enabled) ⇄ registered(disabled).
// An enabled member measures itself whenever it mounts, its content or
// placeholder flag changes, or the scope's trigger flips.
type Member struct {
	id       string
	name     string
	scope    *Scope
	holder   *Holder
	implicit bool
	node     Node

	placeholder bool
	disabled    bool

	mounted    bool
	registered bool

	height    int
	hasHeight bool
	pending   bool

	unbindTrigger Unbind
	unbindTargets Unbind
}

// MemberOption configures a Member.
type MemberOption func(*Member)

// WithPlaceholder makes the member contribute its box height while hiding
// its content.
func WithPlaceholder(placeholder bool) MemberOption {
	return func(m *Member) {
		m.placeholder = placeholder
	}
}

// WithDisabled starts the member disabled.
func WithDisabled(disabled bool) MemberOption {
	return func(m *Member) {
		m.disabled = disabled
	}
}

// NewMember creates a member of group name measured through node.
//
// When parent is a *Scope there is no enclosing holder, so the member
// creates one that shares its node and mounts and unmounts with it.
func NewMember(parent Parent, name string, node Node, opts ...MemberOption) (*Member, error) {
	if parent == nil || parent.scopeOf() == nil {
		return nil, ErrOutsideScope
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if node == nil {
		return nil, ErrNilNode
	}

	scope := parent.scopeOf()
	m := &Member{
		id:     nextID("el_"),
		name:   name,
		scope:  scope,
		holder: parent.holderOf(),
		node:   node,
	}
	if m.holder == nil {
		m.holder = newHolder(scope, node, true)
		m.implicit = true
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// ID returns the member identifier.
func (m *Member) ID() string {
	return m.id
}

// Name returns the group name.
func (m *Member) Name() string {
	return m.name
}

// Holder returns the enclosing holder, implicit or not.
func (m *Member) Holder() *Holder {
	return m.holder
}

// Node returns the measured node.
func (m *Member) Node() Node {
	return m.node
}

// Mount registers the member and starts following the scope.
func (m *Member) Mount() {
	if m.mounted {
		return
	}
	m.mounted = true
	if m.implicit {
		m.holder.Mount()
	}
	m.unbindTrigger = m.scope.trigger.Bind(func(bool) { m.remeasure() })
	m.unbindTargets = m.scope.targets.Bind(m.follow)
	m.scope.addMember(m)
	m.sync()
}

// Unmount removes the member from its holder's aggregate.
func (m *Member) Unmount() {
	if !m.mounted {
		return
	}
	m.unbindTrigger()
	m.unbindTargets()
	m.mounted = false
	if m.registered {
		m.registered = false
		m.holder.unregister(m.id)
	}
	m.scope.removeMember(m)
	if m.implicit {
		m.holder.Unmount()
	}
}

// Init mounts the member and returns Unmount, for use with a Mounter.
func (m *Member) Init() func() {
	m.Mount()
	return m.Unmount
}

// SetDisabled takes the member out of (or back into) its group. A disabled
// member keeps rendering its content without any height constraint.
func (m *Member) SetDisabled(disabled bool) {
	if m.disabled == disabled {
		return
	}
	m.disabled = disabled
	m.sync()
}

// Disabled reports whether the member is disabled.
func (m *Member) Disabled() bool {
	return m.disabled
}

// SetPlaceholder toggles placeholder rendering and re-measures.
func (m *Member) SetPlaceholder(placeholder bool) {
	if m.placeholder == placeholder {
		return
	}
	m.placeholder = placeholder
	m.sync()
}

// Placeholder reports whether the member renders as a placeholder.
func (m *Member) Placeholder() bool {
	return m.placeholder
}

// ContentChanged tells the member its node's content changed.
func (m *Member) ContentChanged() {
	m.sync()
}

// active reports whether the member takes part in aggregation.
func (m *Member) active() bool {
	if !m.mounted || m.disabled {
		return false
	}
	return m.placeholder || !m.empty()
}

func (m *Member) empty() bool {
	c, ok := m.node.(ContentNode)
	return ok && c.Empty()
}

// sync brings registration in line with the member's flags and reports a
// fresh measurement when active.
func (m *Member) sync() {
	if hider, ok := m.node.(ContentHider); ok {
		hider.SetContentHidden(m.placeholder && !m.disabled)
	}
	if m.active() {
		m.registered = true
		m.holder.register(m.record())
		return
	}
	if m.registered {
		m.registered = false
		m.holder.unregister(m.id)
	}
	m.release()
}

// release drops any imposed height so the node sizes to its content.
func (m *Member) release() {
	m.height, m.hasHeight, m.pending = 0, false, false
	if m.mounted {
		m.node.SetHeight(Auto())
	}
}

func (m *Member) remeasure() {
	if m.active() {
		m.holder.register(m.record())
	}
}

func (m *Member) record() MemberRecord {
	return MemberRecord{
		ID:          m.id,
		Name:        m.name,
		Height:      m.measure(),
		HasHeight:   true,
		Placeholder: m.placeholder,
	}
}

// measure returns the natural height: the imposed height from a previous
// cycle is lifted for the reading and then restored.
func (m *Member) measure() int {
	prev := m.node.Height()
	m.node.SetHeight(Auto())
	h := m.node.OffsetHeight()
	m.node.SetHeight(prev)
	return h
}

// follow picks this member's target out of a new table. The height is
// applied on the next render pass.
func (m *Member) follow(targets []Target) {
	if !m.active() {
		return
	}
	pos, _ := m.holder.Position()
	t, ok := findTarget(targets, m.name, pos, m.scope.rows)
	if !ok || !t.HasHeight || t.Height <= 0 {
		return
	}
	if m.hasHeight && m.height == t.Height {
		return
	}
	m.height, m.hasHeight, m.pending = t.Height, true, true
	m.scope.MarkDirty()
}

func (m *Member) applyPending() {
	if !m.pending {
		return
	}
	m.pending = false
	if !m.active() {
		return
	}
	m.node.SetHeight(Fixed(m.height))
	if d := m.scope.animation; d > 0 {
		if t, ok := m.node.(Transitioner); ok {
			t.SetTransition(d)
		}
	}
}

// ViewMode says how a host renders a member.
type ViewMode int

const (
	// ViewNone renders nothing: no content and not a placeholder.
	ViewNone ViewMode = iota
	// ViewRaw renders the content without a sizing wrapper.
	ViewRaw
	// ViewWrapped renders a wrapper sized to the group target.
	ViewWrapped
)

// View describes how the member should be rendered right now.
type View struct {
	Mode        ViewMode
	Height      int
	HasHeight   bool
	Transition  time.Duration
	ShowContent bool

	// Developer-mode annotations; empty when diagnostics are off.
	DebugID    string
	DebugName  string
	DebugLabel string
}

// View returns the member's render description.
func (m *Member) View() View {
	if !m.placeholder && m.empty() {
		return View{Mode: ViewNone}
	}
	if m.disabled {
		return View{Mode: ViewRaw, ShowContent: true}
	}
	v := View{
		Mode:        ViewWrapped,
		Height:      m.height,
		HasHeight:   m.hasHeight,
		ShowContent: !m.placeholder,
		Transition:  m.scope.animation,
	}
	if m.scope.devMode != DevOff {
		v.DebugID = m.id
		v.DebugName = m.name
		v.DebugLabel = "undefined"
		if m.hasHeight {
			v.DebugLabel = strconv.Itoa(m.height)
		}
	}
	return v
}
