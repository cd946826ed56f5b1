package equalheight

import (
	"context"
	"os"
	"reflect"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/grindlemire/go-equalheight/internal/debug"
)

const instrumentationName = "github.com/grindlemire/go-equalheight"

// DefaultTimeout is the debounce window for resize and orientation events.
const DefaultTimeout = 200 * time.Millisecond

// Scope owns one set of equal-height groups: the recalculation trigger, the
// row policy, the per-holder aggregates and the derived target table.
// Independent scopes can coexist; nothing is shared between them.
type Scope struct {
	id        string
	rows      RowPolicy
	animation time.Duration
	timeout   time.Duration
	devMode   DevMode
	deps      []any

	trigger *State[bool]
	targets *State[[]Target]
	entries []HolderEntry
	holders []*Holder
	members []*Member

	subscribers   []subscriber
	notifyPending bool

	scheduler   Scheduler
	viewport    Viewport
	debounce    Timer
	debounceGen uint64

	logger  *log.Logger
	metrics *Metrics
	tracer  trace.Tracer

	// Event loop fields
	queueSize  int
	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once
	dirty      atomic.Bool
	batch      batchContext
}

// NewScope creates a scope. It fails only on configuration errors such as
// an unparseable animation speed; no scope is created in that case.
func NewScope(opts ...ScopeOption) (*Scope, error) {
	s := &Scope{
		rows:      RowsOff(),
		animation: DefaultAnimationSpeed,
		timeout:   DefaultTimeout,
		scheduler: SystemScheduler(),
		tracer:    otel.Tracer(instrumentationName),
		queueSize: 256,
		stopCh:    make(chan struct{}),
		batch:     newBatchContext(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.id == "" {
		s.id = "context_" + uuid.NewString()
	}
	if s.logger == nil {
		s.logger = defaultLogger(s.devMode)
	}
	s.eventQueue = make(chan func(), s.queueSize)
	s.trigger = NewState(s, false)
	s.targets = NewState[[]Target](s, nil)
	return s, nil
}

func defaultLogger(mode DevMode) *log.Logger {
	if l := debug.FromEnv(); l != nil {
		return l
	}
	if mode != DevOff {
		return debug.New(os.Stderr, log.InfoLevel)
	}
	return debug.Discard()
}

// ID returns the scope identifier carried by notifications.
func (s *Scope) ID() string {
	return s.id
}

// RowPolicy returns the row-alignment policy.
func (s *Scope) RowPolicy() RowPolicy {
	return s.rows
}

// AnimationDuration returns the height transition duration.
func (s *Scope) AnimationDuration() time.Duration {
	return s.animation
}

// Timeout returns the debounce window for environment events.
func (s *Scope) Timeout() time.Duration {
	return s.timeout
}

// DeveloperMode returns the diagnostics mode.
func (s *Scope) DeveloperMode() DevMode {
	return s.devMode
}

// Trigger returns the current recalculation trigger value. Every
// ForceRecalculate flips it.
func (s *Scope) Trigger() bool {
	return s.trigger.Get()
}

// Targets returns a copy of the current target table.
func (s *Scope) Targets() []Target {
	return slices.Clone(s.targets.Get())
}

// HolderEntries returns a copy of every holder's aggregate, in report order.
func (s *Scope) HolderEntries() []HolderEntry {
	return slices.Clone(s.entries)
}

// ForceRecalculate makes every enabled member measure itself again. The
// next Flush notifies subscribers even when no member is mounted.
func (s *Scope) ForceRecalculate() {
	s.logger.Debug("recalculate", "scope", s.id)
	s.notifyPending = true
	s.trigger.Update(func(v bool) bool { return !v })
}

// SetDependencies forces a recalculation when deps differ from the
// previous list, element by element.
func (s *Scope) SetDependencies(deps ...any) {
	if sameDependencies(s.deps, deps) {
		return
	}
	s.deps = append([]any(nil), deps...)
	s.ForceRecalculate()
}

func sameDependencies(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// reportHolder replaces a holder's entries and recomputes the targets.
func (s *Scope) reportHolder(holderID string, entries []HolderEntry) {
	next := make([]HolderEntry, 0, len(s.entries)+len(entries))
	for _, e := range s.entries {
		if e.HolderID != holderID {
			next = append(next, e)
		}
	}
	s.entries = append(next, entries...)
	s.recompute()
}

// recompute reduces every holder entry into a fresh target table.
func (s *Scope) recompute() {
	_, span := s.tracer.Start(context.Background(), "equalheight.recompute",
		trace.WithAttributes(
			attribute.String("equalheight.scope", s.id),
			attribute.Int("equalheight.entries", len(s.entries)),
		))
	defer span.End()

	table := reduceEntries(s.entries, s.rows)
	span.SetAttributes(attribute.Int("equalheight.targets", len(table)))

	s.logTables(table)
	s.metrics.recomputed(len(s.holders), len(table))
	s.notifyPending = true
	s.targets.Set(table)
}

func (s *Scope) addHolder(h *Holder) {
	s.holders = append(s.holders, h)
}

func (s *Scope) removeHolder(h *Holder) {
	s.holders = slices.DeleteFunc(s.holders, func(x *Holder) bool { return x == h })
	s.reportHolder(h.id, nil)
}

func (s *Scope) addMember(m *Member) {
	s.members = append(s.members, m)
}

func (s *Scope) removeMember(m *Member) {
	s.members = slices.DeleteFunc(s.members, func(x *Member) bool { return x == m })
}

func (s *Scope) logTables(table []Target) {
	if s.devMode == DevOff {
		return
	}
	if s.devMode == DevDeep && len(s.entries) > 0 {
		rows := make([][]string, 0, len(s.entries))
		for _, e := range s.entries {
			rows = append(rows, []string{e.HolderID, e.Name, heightString(e.Height, e.HasHeight), heightString(e.Position, e.Positioned)})
		}
		s.logger.Info("holders updated", "scope", s.id, "table", "\n"+debug.Table([]string{"id", "name", "height", "position"}, rows))
	}
	if len(table) > 0 {
		rows := make([][]string, 0, len(table))
		for _, t := range table {
			rows = append(rows, []string{t.Name, heightString(t.Height, t.HasHeight), heightString(t.Position, t.Positioned)})
		}
		s.logger.Info("final sizes updated", "scope", s.id, "table", "\n"+debug.Table([]string{"name", "height", "position"}, rows))
	}
}

func heightString(v int, ok bool) string {
	if !ok {
		return "undefined"
	}
	return strconv.Itoa(v)
}

// globalNodeID numbers holders and members across all scopes.
var globalNodeID atomic.Uint64

func nextID(prefix string) string {
	return prefix + strconv.FormatUint(globalNodeID.Add(1), 10)
}
