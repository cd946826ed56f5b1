package layout

import (
	"strings"
	"testing"
)

func TestBlock_NaturalHeight(t *testing.T) {
	type tc struct {
		block *Block
		width int
		want  int
	}

	tests := map[string]tc{
		"empty text": {
			block: NewBlock(""),
			width: 10,
			want:  0,
		},
		"single line fits": {
			block: NewBlock("hello"),
			width: 10,
			want:  1,
		},
		"wraps on words": {
			block: NewBlock("aaa bbb ccc"),
			width: 7,
			want:  2,
		},
		"breaks long words": {
			block: NewBlock(strings.Repeat("a", 12)),
			width: 5,
			want:  3,
		},
		"frame adds padding and border": {
			block: NewBlock("aaa bbb ccc", WithPadding(0, 1), WithBorder()),
			width: 11,
			want:  4,
		},
		"hidden content keeps frame": {
			block: func() *Block {
				b := NewBlock("aaa bbb ccc", WithPadding(1, 0))
				b.SetContentHidden(true)
				return b
			}(),
			width: 7,
			want:  2,
		},
		"min height wins over short content": {
			block: NewBlock("x", WithMinHeight(3)),
			width: 10,
			want:  3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.block.NaturalHeight(tt.width); got != tt.want {
				t.Errorf("NaturalHeight(%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestBlock_FixedHeightOverridesContent(t *testing.T) {
	b := NewBlock("aaa bbb ccc", WithWidth(7))

	if got := b.OffsetHeight(); got != 2 {
		t.Fatalf("OffsetHeight() = %d, want 2", got)
	}

	b.SetHeight(Fixed(5))
	if got := b.OffsetHeight(); got != 5 {
		t.Errorf("OffsetHeight() with Fixed(5) = %d, want 5", got)
	}

	b.SetHeight(Auto())
	if got := b.OffsetHeight(); got != 2 {
		t.Errorf("OffsetHeight() after Auto = %d, want 2", got)
	}
}

func TestBlock_Empty(t *testing.T) {
	b := NewBlock("")
	if !b.Empty() {
		t.Error("Empty() = false for block without text")
	}
	b.SetText("x")
	if b.Empty() {
		t.Error("Empty() = true after SetText")
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value    Value
		fallback int
		want     int
	}

	tests := map[string]tc{
		"auto uses fallback":     {value: Auto(), fallback: 7, want: 7},
		"fixed ignores fallback": {value: Fixed(3), fallback: 7, want: 3},
		"negative fixed clamps":  {value: Fixed(-2), fallback: 7, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.fallback); got != tt.want {
				t.Errorf("Resolve(%d) = %d, want %d", tt.fallback, got, tt.want)
			}
		})
	}
}
