package equalheight

// Lifecycle is implemented by anything a Mounter can mount. Init is called
// once when the value first enters the tree; the returned function (if
// non-nil) is called when it leaves.
type Lifecycle interface {
	Init() func()
}

var (
	_ Lifecycle = (*Member)(nil)
	_ Lifecycle = (*Holder)(nil)
)

// Mounter caches lifecycle instances by key across renders.
// It uses mark-and-sweep: each render marks active keys by calling Mount,
// then Sweep cleans up instances that were not marked.
type Mounter struct {
	cache      map[any]Lifecycle
	cleanups   map[any]func()
	activeKeys map[any]bool // Marked during render, swept after
	order      []any        // Mount order, for deterministic cleanup
}

// NewMounter creates an empty Mounter.
func NewMounter() *Mounter {
	return &Mounter{
		cache:      make(map[any]Lifecycle),
		cleanups:   make(map[any]func()),
		activeKeys: make(map[any]bool),
	}
}

// Mount creates or retrieves the instance for key. Keys must be comparable.
//
// On first call: executes factory, caches the instance and calls Init().
// On subsequent calls: returns the cached instance.
func (ms *Mounter) Mount(key any, factory func() Lifecycle) Lifecycle {
	ms.activeKeys[key] = true

	instance, cached := ms.cache[key]
	if !cached {
		instance = factory()
		ms.cache[key] = instance
		ms.order = append(ms.order, key)
		if cleanup := instance.Init(); cleanup != nil {
			ms.cleanups[key] = cleanup
		}
	}
	return instance
}

// Sweep removes instances that were not mounted since the last Sweep,
// calling their cleanup functions in mount order.
func (ms *Mounter) Sweep() {
	kept := ms.order[:0]
	for _, key := range ms.order {
		if ms.activeKeys[key] {
			kept = append(kept, key)
			continue
		}
		if cleanup, ok := ms.cleanups[key]; ok {
			cleanup()
			delete(ms.cleanups, key)
		}
		delete(ms.cache, key)
	}
	ms.order = kept
	// Reset active keys for next render
	ms.activeKeys = make(map[any]bool)
}

// Len returns the number of cached instances.
func (ms *Mounter) Len() int {
	return len(ms.cache)
}
