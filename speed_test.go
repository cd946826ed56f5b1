package equalheight

import (
	"errors"
	"testing"
	"time"
)

func TestParseAnimationSpeed(t *testing.T) {
	type tc struct {
		input   string
		want    time.Duration
		wantErr bool
	}

	tests := map[string]tc{
		"bare number is seconds": {input: "0.25", want: 250 * time.Millisecond},
		"seconds suffix":         {input: "2s", want: 2 * time.Second},
		"milliseconds suffix":    {input: "500ms", want: 500 * time.Millisecond},
		"zero disables":          {input: "0", want: 0},
		"surrounding spaces":     {input: " 1.5s ", want: 1500 * time.Millisecond},
		"garbage":                {input: "fast", wantErr: true},
		"empty":                  {input: "", wantErr: true},
		"negative":               {input: "-1", wantErr: true},
		"unknown unit":           {input: "3m", wantErr: true},
		"overflows duration":     {input: "1e12", wantErr: true},
		"overflows in ms":        {input: "1e16ms", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAnimationSpeed(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAnimationSpeed) {
					t.Fatalf("ParseAnimationSpeed(%q) error = %v, want ErrInvalidAnimationSpeed", tt.input, err)
				}
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) || cfgErr.Value != tt.input {
					t.Errorf("ParseAnimationSpeed(%q) error = %#v, want *ConfigError with the raw value", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAnimationSpeed(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAnimationSpeed(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDevMode(t *testing.T) {
	tests := map[string]DevMode{
		"false":   DevOff,
		"true":    DevOn,
		"DEEP":    DevDeep,
		"deep":    DevDeep,
		"":        DevOff,
		"verbose": DevOff,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			if got := ParseDevMode(input); got != want {
				t.Errorf("ParseDevMode(%q) = %v, want %v", input, got, want)
			}
		})
	}
}
