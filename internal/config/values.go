package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	equalheight "github.com/grindlemire/go-equalheight"
)

// Rows is the equal_rows setting: false, true, or a tolerance in cells.
type Rows struct {
	Enabled   bool
	Tolerance int
}

// Policy returns the row policy the setting describes.
func (r Rows) Policy() equalheight.RowPolicy {
	if !r.Enabled {
		return equalheight.RowsOff()
	}
	return equalheight.RowsWithin(r.Tolerance)
}

func (r *Rows) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	switch strings.ToLower(s) {
	case "", "false":
		*r = Rows{}
		return nil
	case "true":
		*r = Rows{Enabled: true}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("equal_rows must be true, false or a number of cells: %q", s)
	}
	*r = Rows{Enabled: true, Tolerance: max(0, n)}
	return nil
}

func (r *Rows) UnmarshalTOML(v any) error {
	s, err := scalar(v)
	if err != nil {
		return fmt.Errorf("equal_rows: %w", err)
	}
	return r.UnmarshalText([]byte(s))
}

func (r *Rows) UnmarshalYAML(node *yaml.Node) error {
	return r.UnmarshalText([]byte(node.Value))
}

// Speed is the animation_speed setting. Numbers are seconds; strings may
// carry an "s" or "ms" suffix.
type Speed time.Duration

func (s *Speed) UnmarshalText(text []byte) error {
	d, err := equalheight.ParseAnimationSpeed(string(text))
	if err != nil {
		return err
	}
	*s = Speed(d)
	return nil
}

func (s *Speed) UnmarshalTOML(v any) error {
	raw, err := scalar(v)
	if err != nil {
		return fmt.Errorf("animation_speed: %w", err)
	}
	return s.UnmarshalText([]byte(raw))
}

func (s *Speed) UnmarshalYAML(node *yaml.Node) error {
	return s.UnmarshalText([]byte(node.Value))
}

func (s Speed) String() string {
	return time.Duration(s).String()
}

// Mode is the developer_mode setting: false, true or DEEP.
type Mode equalheight.DevMode

func (m *Mode) UnmarshalText(text []byte) error {
	*m = Mode(equalheight.ParseDevMode(string(text)))
	return nil
}

func (m *Mode) UnmarshalTOML(v any) error {
	raw, err := scalar(v)
	if err != nil {
		return fmt.Errorf("developer_mode: %w", err)
	}
	return m.UnmarshalText([]byte(raw))
}

func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	return m.UnmarshalText([]byte(node.Value))
}

func (m Mode) String() string {
	return equalheight.DevMode(m).String()
}

// scalar renders a decoded TOML scalar as text.
func scalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}
