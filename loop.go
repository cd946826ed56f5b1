package equalheight

import "context"

// maxRenderPasses bounds how often one Flush re-applies heights while
// holders keep moving.
const maxRenderPasses = 32

// Run processes the event queue until ctx is done or Stop is called.
// After every queued update it runs render passes until the scope is clean.
func (s *Scope) Run(ctx context.Context) error {
	s.Flush()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopCh:
			return nil
		case handler := <-s.eventQueue:
			handler()
			s.Flush()
		}
	}
}

// Flush synchronously drains queued updates and runs render passes until
// nothing is dirty, then delivers pending notifications. Hosts that own
// their event loop call it after feeding events to the scope.
func (s *Scope) Flush() {
	passes := 0
	for {
		select {
		case handler := <-s.eventQueue:
			handler()
			continue
		default:
		}

		if !s.checkAndClearDirty() {
			break
		}
		passes++
		if passes > maxRenderPasses {
			s.logger.Warn("render passes did not settle", "scope", s.id, "passes", maxRenderPasses)
			break
		}
		s.renderPass()
	}
	s.deliverNotifications()
}

// renderPass applies pending member heights, then lets holders re-check
// their position. A holder that moved reports again, which can dirty the
// scope for another pass.
func (s *Scope) renderPass() {
	for _, m := range append([]*Member(nil), s.members...) {
		m.applyPending()
	}
	for _, h := range append([]*Holder(nil), s.holders...) {
		h.refreshPosition()
	}
}

// Stop signals Run to exit and stops all watchers.
// Stop is idempotent - multiple calls are safe.
func (s *Scope) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// QueueUpdate enqueues a function to run on the scope's queue.
// Safe to call from any goroutine. Updates queued after Stop are dropped.
func (s *Scope) QueueUpdate(fn func()) {
	select {
	case s.eventQueue <- fn:
	case <-s.stopCh:
	}
}
