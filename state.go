// State[T] wraps a value and notifies bindings when it changes. A scope
// keeps its recalculation trigger and its target table in States so that
// members follow them by binding instead of polling.
//
// Thread Safety Rules:
//   - Get() is safe to call from any goroutine
//   - Set() must only be called from the scope's event queue
//   - For background updates, use Scope.QueueUpdate()
//
// Batching:
//
// Use Scope.Batch() to coalesce multiple Set() calls and avoid redundant
// binding execution:
//
//	scope.Batch(func() {
//	    first.Mount()
//	    second.Mount()
//	})  // members match the final target table once here

package equalheight

import (
	"sync"
	"sync/atomic"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

func newBatchContext() batchContext {
	return batchContext{
		pending: make(map[uint64]func()),
	}
}

// globalBindingID is a global counter for generating unique binding IDs.
// This ensures binding IDs are unique across all State instances.
var globalBindingID atomic.Uint64

// State wraps a value and notifies bindings when it changes.
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	scope    *Scope
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// NewState creates a state owned by scope.
func NewState[T any](scope *Scope, initial T) *State[T] {
	if scope == nil {
		panic("equalheight: nil scope in NewState")
	}
	return &State[T]{value: initial, scope: scope}
}

// Get returns the current value. Thread-safe for reading from any goroutine.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value, marks the scope dirty, and notifies all bindings.
// If called within a Batch(), binding execution is deferred until the
// batch completes.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	// Drop inactive bindings so unbound members do not accumulate.
	activeBindings := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			activeBindings = append(activeBindings, b)
		}
	}
	s.bindings = activeBindings
	s.mu.Unlock()

	s.scope.MarkDirty()

	batch := &s.scope.batch
	batch.mu.Lock()
	isBatching := batch.depth > 0
	if isBatching {
		// Later Set() calls to the same binding overwrite the captured value.
		for _, b := range activeBindings {
			bindingFn := b.fn
			capturedValue := v
			if _, exists := batch.pending[b.id]; !exists {
				batch.pendingOrder = append(batch.pendingOrder, b.id)
			}
			batch.pending[b.id] = func() { bindingFn(capturedValue) }
		}
	}
	batch.mu.Unlock()

	if !isBatching {
		for _, b := range activeBindings {
			if b.isActive(&s.mu) {
				b.fn(v)
			}
		}
	}
}

// isActive re-checks the flag under the state lock: a binding unbound by an
// earlier callback in the same Set must not run.
func (b *binding[T]) isActive(mu *sync.RWMutex) bool {
	mu.RLock()
	defer mu.RUnlock()
	return b.active
}

// Update applies a function to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers a function to be called when the value changes.
// Bindings are executed in registration order.
func (s *State[T]) Bind(fn func(T)) Unbind {
	id := globalBindingID.Add(1)

	s.mu.Lock()
	b := &binding[T]{id: id, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Batch executes fn and defers all binding callbacks until fn returns.
//
// When the same binding is triggered multiple times during a batch,
// it only executes once with the final value. Bindings run in the order
// they were first triggered. Nested Batch calls are supported; bindings
// only fire when the outermost Batch completes.
func (s *Scope) Batch(fn func()) {
	batch := &s.batch
	batch.mu.Lock()
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		shouldExecute := batch.depth == 0 && len(batch.pending) > 0
		var pendingCallbacks []func()
		if shouldExecute {
			pendingCallbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				if callback, exists := batch.pending[id]; exists {
					pendingCallbacks = append(pendingCallbacks, callback)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		// Execute callbacks outside the lock
		for _, callback := range pendingCallbacks {
			callback()
		}
	}()

	fn()
}
