package equalheight

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"
)

// ScopeOption is a functional option for configuring a Scope.
type ScopeOption func(*Scope) error

// WithID sets the identifier carried by notifications.
// By default a "context_<uuid>" id is generated.
func WithID(id string) ScopeOption {
	return func(s *Scope) error {
		s.id = id
		return nil
	}
}

// WithRowPolicy sets the row-alignment policy.
func WithRowPolicy(p RowPolicy) ScopeOption {
	return func(s *Scope) error {
		s.rows = p
		return nil
	}
}

// WithEqualRows enables row alignment with the default tolerance.
func WithEqualRows() ScopeOption {
	return WithRowPolicy(RowsOn())
}

// WithRowTolerance enables row alignment with an explicit tolerance in cells.
func WithRowTolerance(cells int) ScopeOption {
	return WithRowPolicy(RowsWithin(cells))
}

// WithAnimationSpeed sets the height transition from a string such as
// "0.25", "2s" or "500ms". An unparseable value fails NewScope.
func WithAnimationSpeed(speed string) ScopeOption {
	return func(s *Scope) error {
		d, err := ParseAnimationSpeed(speed)
		if err != nil {
			return err
		}
		s.animation = d
		return nil
	}
}

// WithAnimationSeconds sets the height transition in seconds.
// Zero disables transitions.
func WithAnimationSeconds(seconds float64) ScopeOption {
	return func(s *Scope) error {
		d, err := secondsToDuration(seconds, time.Second, fmt.Sprint(seconds))
		if err != nil {
			return err
		}
		s.animation = d
		return nil
	}
}

// WithAnimationDuration sets the height transition directly.
// Zero disables transitions.
func WithAnimationDuration(d time.Duration) ScopeOption {
	return func(s *Scope) error {
		if d < 0 {
			return &ConfigError{Option: "animationSpeed", Value: d.String(), Err: ErrInvalidAnimationSpeed}
		}
		s.animation = d
		return nil
	}
}

// WithTimeout sets the debounce window for resize and orientation events.
// Default is 200ms. Zero or negative handles every event immediately.
func WithTimeout(d time.Duration) ScopeOption {
	return func(s *Scope) error {
		s.timeout = max(0, d)
		return nil
	}
}

// WithDependencies sets the initial dependency list. See SetDependencies.
func WithDependencies(deps ...any) ScopeOption {
	return func(s *Scope) error {
		s.deps = append([]any(nil), deps...)
		return nil
	}
}

// WithDeveloperMode enables diagnostics logging of intermediate tables.
func WithDeveloperMode(mode DevMode) ScopeOption {
	return func(s *Scope) error {
		s.devMode = mode
		return nil
	}
}

// WithLogger sets the logger for diagnostics and debug tracing.
func WithLogger(l *log.Logger) ScopeOption {
	return func(s *Scope) error {
		s.logger = l
		return nil
	}
}

// WithScheduler replaces the timer source used for debouncing and the
// scrollbar re-check.
func WithScheduler(sched Scheduler) ScopeOption {
	return func(s *Scope) error {
		if sched == nil {
			return fmt.Errorf("scheduler must not be nil")
		}
		s.scheduler = sched
		return nil
	}
}

// WithViewport sets the page geometry used to detect scrollbar changes.
// Without a viewport the scrollbar re-check is skipped.
func WithViewport(v Viewport) ScopeOption {
	return func(s *Scope) error {
		s.viewport = v
		return nil
	}
}

// WithMetrics records recompute statistics into m. Scopes may share one
// Metrics value.
func WithMetrics(m *Metrics) ScopeOption {
	return func(s *Scope) error {
		s.metrics = m
		return nil
	}
}

// WithTracer sets the tracer used for recompute spans.
func WithTracer(t trace.Tracer) ScopeOption {
	return func(s *Scope) error {
		s.tracer = t
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) ScopeOption {
	return func(s *Scope) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		s.queueSize = size
		return nil
	}
}
