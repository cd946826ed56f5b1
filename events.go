package equalheight

// Event is an environment signal that can invalidate measured heights.
type Event interface {
	eventName() string
}

// ResizeEvent reports a new viewport size.
type ResizeEvent struct {
	Width  int
	Height int
}

// OrientationEvent reports a device orientation change.
type OrientationEvent struct{}

func (ResizeEvent) eventName() string      { return "resize" }
func (OrientationEvent) eventName() string { return "orientation" }

// HandleEvent reacts to an environment signal. With a debounce window, only
// the last signal within the window recalculates; resize and orientation
// events share one window. With a zero window every signal recalculates
// immediately. Must be called on the scope's queue.
func (s *Scope) HandleEvent(ev Event) {
	if ev == nil {
		return
	}
	s.metrics.signaled(ev.eventName())

	if s.timeout <= 0 {
		s.recalculateAfterResize()
		return
	}

	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounceGen++
	gen := s.debounceGen
	s.debounce = s.scheduler.AfterFunc(s.timeout, func() {
		s.QueueUpdate(func() {
			// A superseded timer may already have been queued.
			if gen != s.debounceGen {
				return
			}
			s.debounce = nil
			s.recalculateAfterResize()
		})
	})
}

func (s *Scope) recalculateAfterResize() {
	s.ForceRecalculate()
	s.watchScrollbar()
}

// watchScrollbar samples page scrollbar visibility now and again once the
// height transition has finished. A scrollbar appearing or disappearing
// changes the available width, so a flip forces one more recalculation.
func (s *Scope) watchScrollbar() {
	if s.viewport == nil {
		return
	}
	before := s.scrollbarVisible()
	s.scheduler.AfterFunc(s.animation, func() {
		s.QueueUpdate(func() {
			after := s.scrollbarVisible()
			if after == before {
				return
			}
			s.logger.Debug("scrollbar visibility changed", "scope", s.id, "visible", after)
			s.metrics.scrollbarFlipped()
			s.ForceRecalculate()
		})
	})
}

func (s *Scope) scrollbarVisible() bool {
	return s.viewport.ScrollHeight() > s.viewport.ClientHeight()
}
