package equalheight

import (
	"sort"
	"sync"
	"testing"
	"time"
)

// fakeNode is a box with a fixed natural height.
type fakeNode struct {
	natural    int
	top        int
	height     Value
	empty      bool
	hidden     bool
	transition time.Duration
	sets       int
}

var (
	_ Node         = (*fakeNode)(nil)
	_ Transitioner = (*fakeNode)(nil)
	_ ContentHider = (*fakeNode)(nil)
	_ ContentNode  = (*fakeNode)(nil)
	_ Viewport     = (*fakeViewport)(nil)
	_ Scheduler    = (*fakeScheduler)(nil)
)

func newFakeNode(natural, top int) *fakeNode {
	return &fakeNode{natural: natural, top: top, height: Auto()}
}

func (n *fakeNode) Top() int                      { return n.top }
func (n *fakeNode) Height() Value                 { return n.height }
func (n *fakeNode) Empty() bool                   { return n.empty }
func (n *fakeNode) SetContentHidden(h bool)       { n.hidden = h }
func (n *fakeNode) SetTransition(d time.Duration) { n.transition = d }

func (n *fakeNode) SetHeight(v Value) {
	n.height = v
	n.sets++
}

func (n *fakeNode) OffsetHeight() int {
	if !n.height.IsAuto() {
		return n.height.Amount
	}
	return n.natural
}

// applied returns the fixed height imposed on the node, or -1 for Auto.
func (n *fakeNode) applied() int {
	if n.height.IsAuto() {
		return -1
	}
	return n.height.Amount
}

type fakeViewport struct {
	scroll, client int
}

func (v *fakeViewport) ScrollHeight() int { return v.scroll }
func (v *fakeViewport) ClientHeight() int { return v.client }

// fakeScheduler fires callbacks only when the test advances its clock.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	s       *fakeScheduler
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{s: s, at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock by d and runs every due callback in time order.
func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of timers that have neither fired nor stopped.
func (s *fakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func newTestScope(t *testing.T, opts ...ScopeOption) (*Scope, *fakeScheduler) {
	t.Helper()
	sched := &fakeScheduler{}
	s, err := NewScope(append([]ScopeOption{WithScheduler(sched), WithID("test")}, opts...)...)
	if err != nil {
		t.Fatalf("NewScope() error = %v", err)
	}
	return s, sched
}

func mustMember(t *testing.T, parent Parent, name string, node Node, opts ...MemberOption) *Member {
	t.Helper()
	m, err := NewMember(parent, name, node, opts...)
	if err != nil {
		t.Fatalf("NewMember(%q) error = %v", name, err)
	}
	return m
}

func mustHolder(t *testing.T, s *Scope, node Positioner) *Holder {
	t.Helper()
	h, err := NewHolder(s, node)
	if err != nil {
		t.Fatalf("NewHolder() error = %v", err)
	}
	return h
}
