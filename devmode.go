package equalheight

import "strings"

// DevMode selects developer diagnostics.
type DevMode int

const (
	// DevOff disables diagnostics.
	DevOff DevMode = iota
	// DevOn logs the target table on every recompute.
	DevOn
	// DevDeep additionally logs holder and member tables.
	DevDeep
)

// ParseDevMode reads "false", "true" or "DEEP". Anything unrecognized is
// DevOff.
func ParseDevMode(s string) DevMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "1":
		return DevOn
	case "deep":
		return DevDeep
	default:
		return DevOff
	}
}

func (m DevMode) String() string {
	switch m {
	case DevOn:
		return "true"
	case DevDeep:
		return "DEEP"
	default:
		return "false"
	}
}
