package equalheight

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultAnimationSpeed is the height transition used when none is configured.
const DefaultAnimationSpeed = 250 * time.Millisecond

// ParseAnimationSpeed parses a transition duration. A bare number is in
// seconds; "s" and "ms" suffixes select the unit explicitly.
//
//	ParseAnimationSpeed("0.25")  // 250ms
//	ParseAnimationSpeed("2s")    // 2s
//	ParseAnimationSpeed("500ms") // 500ms
func ParseAnimationSpeed(s string) (time.Duration, error) {
	num := strings.TrimSpace(s)
	unit := time.Second
	switch {
	case strings.HasSuffix(num, "ms"):
		num = strings.TrimSuffix(num, "ms")
		unit = time.Millisecond
	case strings.HasSuffix(num, "s"):
		num = strings.TrimSuffix(num, "s")
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, &ConfigError{Option: "animationSpeed", Value: s, Err: ErrInvalidAnimationSpeed}
	}
	return secondsToDuration(f, unit, s)
}

func secondsToDuration(f float64, unit time.Duration, raw string) (time.Duration, error) {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ConfigError{Option: "animationSpeed", Value: raw, Err: ErrInvalidAnimationSpeed}
	}
	// float64(MaxInt64) rounds up to 2^63, so equality already overflows.
	ns := math.Round(f * float64(unit))
	if ns >= math.MaxInt64 {
		return 0, &ConfigError{Option: "animationSpeed", Value: raw, Err: ErrInvalidAnimationSpeed}
	}
	return time.Duration(ns), nil
}
