package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPage_GridPlacement(t *testing.T) {
	p := NewPage(50, 100, WithGap(2, 1), WithMinColumnWidth(10), WithMaxColumns(4))
	var blocks []*Block
	for i := 0; i < 5; i++ {
		b := NewBlock("a")
		blocks = append(blocks, b)
		p.Add(b)
	}

	if got := p.Columns(); got != 4 {
		t.Fatalf("Columns() = %d, want 4", got)
	}
	if got := blocks[1].Rect().X; got != 13 {
		t.Errorf("blocks[1].X = %d, want 13", got)
	}
	if got := blocks[1].Rect().Width; got != 11 {
		t.Errorf("blocks[1].Width = %d, want 11", got)
	}
	if got := blocks[4].Top(); got != 2 {
		t.Errorf("blocks[4].Top() = %d, want 2 (second row after gap)", got)
	}
	if got := p.ScrollHeight(); got != 3 {
		t.Errorf("ScrollHeight() = %d, want 3", got)
	}
}

func TestPage_ColumnsFollowWidth(t *testing.T) {
	type tc struct {
		width int
		want  int
	}

	tests := map[string]tc{
		"narrow":   {width: 20, want: 1},
		"two":      {width: 22, want: 2},
		"capped":   {width: 200, want: 3},
		"one cell": {width: 1, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPage(tt.width, 100, WithGap(2, 0), WithMinColumnWidth(10), WithMaxColumns(3))
			p.Add(NewBlock("a"), NewBlock("b"), NewBlock("c"), NewBlock("d"))
			if got := p.Columns(); got != tt.want {
				t.Errorf("Columns() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPage_ScrollbarNarrowsContent(t *testing.T) {
	p := NewPage(21, 2, WithGap(0, 0), WithMinColumnWidth(1), WithMaxColumns(1))
	long := NewBlock(strings.Repeat("a", 21))
	x := NewBlock("x")
	y := NewBlock("y")
	p.Add(long, x, y)

	if !p.ScrollbarVisible() {
		t.Fatal("ScrollbarVisible() = false, want true when content overflows")
	}
	if got := long.OffsetHeight(); got != 2 {
		t.Errorf("long.OffsetHeight() = %d, want 2 (wrapped at width 20)", got)
	}
	if got := y.Top(); got != 3 {
		t.Errorf("y.Top() = %d, want 3", got)
	}
	if got := p.ScrollHeight(); got != 4 {
		t.Errorf("ScrollHeight() = %d, want 4", got)
	}

	p.Remove(y)
	p.Remove(x)
	if p.ScrollbarVisible() {
		t.Error("ScrollbarVisible() = true after removing overflow")
	}
	if got := long.OffsetHeight(); got != 1 {
		t.Errorf("long.OffsetHeight() = %d, want 1 at full width", got)
	}
}

func TestPage_CardStacksBlocks(t *testing.T) {
	p := NewPage(30, 20, WithGap(2, 1), WithMinColumnWidth(10), WithMaxColumns(2))
	title := NewBlock("title")
	body := NewBlock("one two three four five six", WithPadding(1, 0))
	left := NewCard(title, body)
	right := NewCard(NewBlock("other"))
	p.Add(left, right)

	if got := body.Top(); got != 1 {
		t.Errorf("body.Top() = %d, want 1", got)
	}
	if got := right.Top(); got != 0 {
		t.Errorf("right.Top() = %d, want 0 (same row)", got)
	}

	title.SetHeight(Fixed(3))
	if got := body.Top(); got != 3 {
		t.Errorf("body.Top() after fixed title = %d, want 3", got)
	}
	if got := left.Rect().Height; got != 3+body.OffsetHeight() {
		t.Errorf("card height = %d, want title + body", got)
	}
}

func TestPage_RenderFillsViewport(t *testing.T) {
	p := NewPage(30, 6, WithGap(2, 1), WithMinColumnWidth(10))
	p.Add(NewBlock("alpha beta", WithBorder()), NewBlock("gamma"))
	p.Add(NewCard(NewBlock("one"), NewBlock("two three four five six seven eight nine")))

	out := p.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("Render() produced %d lines, want 6", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
	if !strings.Contains(out, "alpha") {
		t.Error("Render() output missing block text")
	}
}
