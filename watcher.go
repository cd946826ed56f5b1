package equalheight

// Watcher represents an event source feeding a scope's queue.
type Watcher interface {
	// Start begins the watcher goroutine. The eventQueue channel and stopCh
	// are provided by the Scope.
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// NewChannelWatcher creates a watcher that calls fn for each value received on ch.
// The handler is called on the scope's queue, not in a separate goroutine.
//
// Example:
//
//	resizes := make(chan equalheight.Event)
//	w := equalheight.NewChannelWatcher(resizes, scope.HandleEvent)
func NewChannelWatcher[T any](ch <-chan T, fn func(T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{
		ch:      ch,
		handler: fn,
	}
}

// Watch creates a channel watcher. The handler is called on the queue
// whenever data arrives on the channel.
func Watch[T any](ch <-chan T, handler func(T)) Watcher {
	return NewChannelWatcher(ch, handler)
}

// Start the watcher.
func (w *ChannelWatcher[T]) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case val, ok := <-w.ch:
				if !ok {
					return // Channel closed
				}
				v := val
				select {
				case eventQueue <- func() {
					w.handler(v)
				}:
				case <-stopCh:
					return
				}
			}
		}
	}()
}

// StartWatcher starts w against this scope's queue.
func (s *Scope) StartWatcher(w Watcher) {
	w.Start(s.eventQueue, s.stopCh)
}

// Listen forwards environment events from ch to HandleEvent on the queue.
// The watcher exits when ch is closed or the scope stops.
func (s *Scope) Listen(ch <-chan Event) {
	s.StartWatcher(Watch(ch, s.HandleEvent))
}
