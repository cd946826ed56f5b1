package equalheight

import (
	"errors"
	"testing"
	"time"

	"github.com/grindlemire/go-equalheight/internal/debug"
)

func TestNewMember_Errors(t *testing.T) {
	s, _ := newTestScope(t)

	type tc struct {
		parent Parent
		name   string
		node   Node
		want   error
	}

	tests := map[string]tc{
		"nil parent": {
			parent: nil, name: "card", node: newFakeNode(1, 0), want: ErrOutsideScope,
		},
		"nil scope": {
			parent: (*Scope)(nil), name: "card", node: newFakeNode(1, 0), want: ErrOutsideScope,
		},
		"nil holder": {
			parent: (*Holder)(nil), name: "card", node: newFakeNode(1, 0), want: ErrOutsideScope,
		},
		"empty name": {
			parent: s, name: "", node: newFakeNode(1, 0), want: ErrEmptyName,
		},
		"nil node": {
			parent: s, name: "card", node: nil, want: ErrNilNode,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := NewMember(tt.parent, tt.name, tt.node)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewMember() error = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Error("NewMember() should not return a member on error")
			}
		})
	}
}

func TestMember_ImplicitHolder(t *testing.T) {
	s, _ := newTestScope(t)
	node := newFakeNode(5, 12)
	m := mustMember(t, s, "card", node)

	h := m.Holder()
	if h == nil || !h.Implicit() {
		t.Fatal("member created on a scope should own an implicit holder")
	}

	m.Mount()
	if pos, ok := h.Position(); !ok || pos != 12 {
		t.Errorf("implicit holder Position() = (%d, %v), want (12, true)", pos, ok)
	}
	if got := len(s.HolderEntries()); got != 1 {
		t.Fatalf("HolderEntries() len = %d, want 1", got)
	}

	m.Unmount()
	if got := len(s.HolderEntries()); got != 0 {
		t.Errorf("HolderEntries() len after unmount = %d, want 0", got)
	}
	if got := len(s.holders); got != 0 {
		t.Errorf("implicit holder should unmount with its member, %d holders left", got)
	}
}

func TestMember_ExplicitHolderIsShared(t *testing.T) {
	s, _ := newTestScope(t)
	h := mustHolder(t, s, newFakeNode(0, 3))
	h.Mount()
	a := mustMember(t, h, "title", newFakeNode(2, 3))
	b := mustMember(t, h, "body", newFakeNode(6, 4))
	a.Mount()
	b.Mount()

	if a.Holder() != h || b.Holder() != h {
		t.Fatal("members created on a holder should use it")
	}
	if got := len(h.Members()); got != 2 {
		t.Errorf("holder Members() len = %d, want 2", got)
	}
	for _, e := range h.Entries() {
		if e.Position != 3 {
			t.Errorf("entry %q position = %d, want the holder's 3", e.Name, e.Position)
		}
	}
}

func TestMember_Disable(t *testing.T) {
	s, _ := newTestScope(t)
	a, b, c := newFakeNode(100, 0), newFakeNode(150, 0), newFakeNode(120, 0)
	mustMember(t, s, "card", a).Mount()
	mb := mustMember(t, s, "card", b)
	mb.Mount()
	mustMember(t, s, "card", c).Mount()
	s.Flush()

	mb.SetDisabled(true)
	s.Flush()

	if a.applied() != 120 || c.applied() != 120 {
		t.Errorf("enabled nodes applied %d, %d, want 120, 120", a.applied(), c.applied())
	}
	if b.applied() != -1 {
		t.Errorf("disabled node applied %d, want Auto", b.applied())
	}
	if v := mb.View(); v.Mode != ViewRaw || !v.ShowContent {
		t.Errorf("disabled View() = %+v, want raw content", v)
	}

	mb.SetDisabled(false)
	s.Flush()
	for i, n := range []*fakeNode{a, b, c} {
		if n.applied() != 150 {
			t.Errorf("node %d applied %d after re-enable, want 150", i, n.applied())
		}
	}
}

func TestMember_StartsDisabled(t *testing.T) {
	s, _ := newTestScope(t)
	node := newFakeNode(8, 0)
	m := mustMember(t, s, "card", node, WithDisabled(true))
	m.Mount()
	s.Flush()

	if len(s.Targets()) != 0 {
		t.Errorf("Targets() = %v, want empty", s.Targets())
	}
	if node.applied() != -1 {
		t.Errorf("applied = %d, want Auto", node.applied())
	}
	if !m.Disabled() {
		t.Error("Disabled() = false, want true")
	}
}

func TestMember_Placeholder(t *testing.T) {
	s, _ := newTestScope(t)
	shown := newFakeNode(4, 0)
	ghost := newFakeNode(9, 0)
	ghost.empty = true
	mustMember(t, s, "card", shown).Mount()
	p := mustMember(t, s, "card", ghost, WithPlaceholder(true))
	p.Mount()
	s.Flush()

	if !ghost.hidden {
		t.Error("placeholder content should be hidden")
	}
	if shown.applied() != 9 || ghost.applied() != 9 {
		t.Errorf("applied = %d, %d, want 9, 9", shown.applied(), ghost.applied())
	}
	v := p.View()
	if v.Mode != ViewWrapped || v.ShowContent || v.Height != 9 || !v.HasHeight {
		t.Errorf("placeholder View() = %+v, want wrapped box of 9 without content", v)
	}

	p.SetPlaceholder(false)
	s.Flush()
	if ghost.hidden {
		t.Error("content should be visible once the placeholder flag is cleared")
	}
	if shown.applied() != 4 {
		t.Errorf("applied = %d after the empty member left, want 4", shown.applied())
	}
	if got := p.View().Mode; got != ViewNone {
		t.Errorf("empty non-placeholder View().Mode = %v, want ViewNone", got)
	}
}

func TestMember_EmptyIsNotRegistered(t *testing.T) {
	s, _ := newTestScope(t)
	node := newFakeNode(5, 0)
	node.empty = true
	m := mustMember(t, s, "card", node)
	m.Mount()
	s.Flush()

	if len(m.Holder().Members()) != 0 {
		t.Error("empty member should not register")
	}

	node.empty = false
	m.ContentChanged()
	s.Flush()
	if got := m.Holder().Members(); len(got) != 1 || got[0].Height != 5 {
		t.Errorf("Members() = %v, want one record of height 5", got)
	}
}

func TestMember_UnmountRemovesContribution(t *testing.T) {
	s, _ := newTestScope(t)
	a, b := newFakeNode(10, 0), newFakeNode(30, 0)
	mustMember(t, s, "card", a).Mount()
	mb := mustMember(t, s, "card", b)
	mb.Mount()
	s.Flush()

	mb.Unmount()
	s.Flush()

	if a.applied() != 10 {
		t.Errorf("remaining node applied %d, want 10", a.applied())
	}
	for _, e := range s.HolderEntries() {
		if e.HolderID == mb.Holder().ID() {
			t.Errorf("unmounted member's holder still reports %+v", e)
		}
	}

	// Unmounted members ignore later recalculations.
	b.natural = 99
	s.ForceRecalculate()
	s.Flush()
	if a.applied() != 10 {
		t.Errorf("applied %d after recalculation, want 10", a.applied())
	}
}

func TestMember_MountIsIdempotent(t *testing.T) {
	s, _ := newTestScope(t)
	m := mustMember(t, s, "card", newFakeNode(3, 0))
	m.Mount()
	m.Mount()
	if got := len(s.members); got != 1 {
		t.Errorf("scope members = %d, want 1", got)
	}
	m.Unmount()
	m.Unmount()
	if got := len(s.members); got != 0 {
		t.Errorf("scope members = %d, want 0", got)
	}
}

func TestMember_Transition(t *testing.T) {
	type tc struct {
		opts []ScopeOption
		want time.Duration
	}

	tests := map[string]tc{
		"default speed": {
			want: 250 * time.Millisecond,
		},
		"milliseconds string": {
			opts: []ScopeOption{WithAnimationSpeed("500ms")},
			want: 500 * time.Millisecond,
		},
		"zero applies no transition": {
			opts: []ScopeOption{WithAnimationSeconds(0)},
			want: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestScope(t, tt.opts...)
			node := newFakeNode(6, 0)
			mustMember(t, s, "card", node).Mount()
			s.Flush()

			if node.transition != tt.want {
				t.Errorf("transition = %v, want %v", node.transition, tt.want)
			}
			if node.applied() != 6 {
				t.Errorf("applied = %d, want 6", node.applied())
			}
		})
	}
}

func TestMember_MeasureRestoresHeight(t *testing.T) {
	s, _ := newTestScope(t)
	node := newFakeNode(5, 0)
	node.height = Fixed(20)
	m := mustMember(t, s, "card", node)

	if got := m.measure(); got != 5 {
		t.Errorf("measure() = %d, want natural 5", got)
	}
	if node.applied() != 20 {
		t.Errorf("measure() should restore the imposed height, got %d", node.applied())
	}
}

func TestMember_HeightAppliedOnRenderPass(t *testing.T) {
	s, _ := newTestScope(t)
	node := newFakeNode(7, 0)
	mustMember(t, s, "card", node).Mount()

	if node.applied() != -1 {
		t.Errorf("height applied before the render pass: %d", node.applied())
	}
	s.Flush()
	if node.applied() != 7 {
		t.Errorf("applied = %d after Flush, want 7", node.applied())
	}
}

func TestMember_ViewDebugLabel(t *testing.T) {
	type tc struct {
		mode      DevMode
		mount     bool
		wantLabel string
	}

	tests := map[string]tc{
		"off has no label":           {mode: DevOff, mount: true, wantLabel: ""},
		"on shows the height":        {mode: DevOn, mount: true, wantLabel: "7"},
		"no height yet is undefined": {mode: DevOn, mount: false, wantLabel: "undefined"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestScope(t, WithDeveloperMode(tt.mode), WithLogger(debug.Discard()))
			m := mustMember(t, s, "card", newFakeNode(7, 0))
			if tt.mount {
				m.Mount()
				s.Flush()
			}
			v := m.View()
			if v.DebugLabel != tt.wantLabel {
				t.Errorf("DebugLabel = %q, want %q", v.DebugLabel, tt.wantLabel)
			}
			if tt.mode != DevOff && (v.DebugName != "card" || v.DebugID != m.ID()) {
				t.Errorf("debug annotations = %q/%q, want card/%s", v.DebugName, v.DebugID, m.ID())
			}
		})
	}
}
