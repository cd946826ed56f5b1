package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var (
	scrollTrackStyle = lipgloss.NewStyle().Faint(true)
	scrollThumbStyle = lipgloss.NewStyle().Bold(true)
)

// Render draws the visible part of the page: exactly ClientHeight lines,
// each as wide as the viewport.
func (p *Page) Render() string {
	p.ensureLayout()

	contentWidth := p.width
	if p.scrollbar {
		contentWidth--
	}

	var all []string
	for i, row := range p.grid {
		if i > 0 {
			for k := 0; k < p.rowGap; k++ {
				all = append(all, "")
			}
		}
		parts := make([]string, 0, 2*len(row))
		for j, it := range row {
			if j > 0 {
				parts = append(parts, strings.Repeat(" ", p.gap))
			}
			parts = append(parts, it.render())
		}
		all = append(all, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, parts...), "\n")...)
	}

	lines := make([]string, p.height)
	for i := range lines {
		src := ""
		if idx := p.scrollY + i; idx < len(all) {
			src = all[idx]
		}
		lines[i] = fitLine(src, contentWidth)
	}

	if p.scrollbar {
		thumbLen, thumbTop := p.thumb()
		for i := range lines {
			if i >= thumbTop && i < thumbTop+thumbLen {
				lines[i] += scrollThumbStyle.Render("┃")
			} else {
				lines[i] += scrollTrackStyle.Render("│")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// thumb returns the scrollbar thumb length and offset in viewport rows.
func (p *Page) thumb() (int, int) {
	if p.contentHeight <= 0 {
		return p.height, 0
	}
	length := max(1, p.height*p.height/p.contentHeight)
	top := p.scrollY * p.height / p.contentHeight
	return length, min(top, p.height-length)
}

// fitLine truncates or pads s to exactly width cells.
func fitLine(s string, width int) string {
	if w := lipgloss.Width(s); w > width {
		s = truncate.String(s, uint(width))
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func (b *Block) render() string {
	frameW, frameH := b.frame()
	r := b.rect
	style := b.style.
		Padding(b.padY, b.padX).
		Width(max(0, r.Width-border(b))).
		Height(max(0, r.Height-border(b))).
		MaxHeight(r.Height)
	if b.border {
		style = style.Border(lipgloss.RoundedBorder())
	}
	content := ""
	if !b.hidden {
		content = b.wrapped(r.Width - frameW)
	}
	if r.Height < frameH {
		return strings.Repeat("\n", max(0, r.Height-1))
	}
	return style.Render(content)
}

func border(b *Block) int {
	if b.border {
		return 2
	}
	return 0
}

func (c *Card) render() string {
	parts := make([]string, 0, len(c.blocks))
	for _, b := range c.blocks {
		if b.rect.Height == 0 {
			continue
		}
		parts = append(parts, b.render())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
