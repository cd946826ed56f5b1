package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	equalheight "github.com/grindlemire/go-equalheight"
	"github.com/grindlemire/go-equalheight/internal/config"
	"github.com/grindlemire/go-equalheight/internal/debug"
)

var (
	demoTitleStyle  = lipgloss.NewStyle().Bold(true)
	demoStatusStyle = lipgloss.NewStyle().Faint(true)
)

// demoChrome is the number of lines around the page: title and status.
const demoChrome = 2

const demoHelp = "←/→ select  r recalc  d disable  p placeholder  a add  x remove  q quit"

func newDemoCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Interactive demo of cards kept at equal heights",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if len(cfg.Cards) == 0 && len(cfg.Blocks) == 0 {
				cfg.Cards = demoCards()
			}
			loggerFromContext(cmd.Context()).Debug("starting demo", "cards", len(cfg.Cards), "blocks", len(cfg.Blocks))
			return runDemo(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "layout file (.toml, .yaml)")
	return cmd
}

// flushMsg tells the model that a scope timer queued work.
type flushMsg struct{}

// teaScheduler runs scope timers and wakes the program afterwards so the
// queued work is flushed on the program's goroutine.
type teaScheduler struct {
	send func(tea.Msg)
}

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) equalheight.Timer {
	return time.AfterFunc(d, func() {
		fn()
		if s.send != nil {
			s.send(flushMsg{})
		}
	})
}

func runDemo(ctx context.Context, cfg config.Config) error {
	sched := &teaScheduler{}
	b, err := newBoard(cfg, demoLogger(), equalheight.WithScheduler(sched))
	if err != nil {
		return err
	}

	p := tea.NewProgram(newDemoModel(b), tea.WithAltScreen())
	sched.send = p.Send

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})
	return g.Wait()
}

// demoLogger keeps diagnostics off the terminal the demo draws on.
func demoLogger() *log.Logger {
	if l := debug.FromEnv(); l != nil {
		return l
	}
	return debug.Discard()
}

type demoModel struct {
	board  *board
	cursor int
	added  int
}

func newDemoModel(b *board) *demoModel {
	return &demoModel{board: b, added: len(b.cards)}
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	scope := m.board.scope
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.board.page.SetSize(msg.Width, max(1, msg.Height-demoChrome))
		scope.HandleEvent(equalheight.ResizeEvent{Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.cursor = max(0, m.cursor-1)
		case "right", "l":
			m.cursor = min(len(m.board.cards)-1, m.cursor+1)
		case "up", "k":
			m.board.page.ScrollBy(-1)
		case "down", "j":
			m.board.page.ScrollBy(1)
		case "r":
			scope.ForceRecalculate()
		case "d":
			if c := m.selected(); c != nil {
				for _, mem := range c.members {
					mem.SetDisabled(!mem.Disabled())
				}
			}
		case "p":
			if c := m.selected(); c != nil {
				for _, mem := range c.members {
					mem.SetPlaceholder(!mem.Placeholder())
				}
			}
		case "a":
			m.added++
			if err := m.board.addCard(demoCard(m.added)...); err != nil {
				m.board.logger.Error("add card", "err", err)
			}
			m.board.sync()
		case "x":
			m.board.removeCard(m.cursor)
			m.board.sync()
			m.cursor = max(0, min(m.cursor, len(m.board.cards)-1))
		}
	case flushMsg:
	}
	scope.Flush()
	return m, nil
}

func (m *demoModel) selected() *card {
	if m.cursor < 0 || m.cursor >= len(m.board.cards) {
		return nil
	}
	return m.board.cards[m.cursor]
}

func (m *demoModel) View() string {
	var b strings.Builder
	b.WriteString(demoTitleStyle.Render("equalheight demo"))
	b.WriteString("  ")
	b.WriteString(demoStatusStyle.Render(demoHelp))
	b.WriteString("\n")
	b.WriteString(m.board.page.Render())
	b.WriteString("\n")
	b.WriteString(demoStatusStyle.Render(m.status()))
	return b.String()
}

// status describes the selected card and the current targets.
func (m *demoModel) status() string {
	parts := []string{}
	if c := m.selected(); c != nil {
		for _, mem := range c.members {
			v := mem.View()
			label := v.DebugLabel
			if label == "" && v.HasHeight {
				label = fmt.Sprint(v.Height)
			}
			parts = append(parts, fmt.Sprintf("#%d %s:%s[%s]", m.cursor+1, mem.Name(), viewModeString(v.Mode), label))
		}
	}
	for _, t := range m.board.scope.Targets() {
		parts = append(parts, fmt.Sprintf("%s=%d@%d", t.Name, t.Height, t.Position))
	}
	return strings.Join(parts, "  ")
}

func viewModeString(mode equalheight.ViewMode) string {
	switch mode {
	case equalheight.ViewRaw:
		return "raw"
	case equalheight.ViewWrapped:
		return "sized"
	default:
		return "hidden"
	}
}

var demoTexts = []string{
	"Short note.",
	"A somewhat longer paragraph that wraps over a couple of lines at most widths.",
	"Terminal cells are the unit here: every block is measured in rows after word wrapping, and blocks that share a name follow the tallest one.",
	"Resize the window to change the number of columns.",
}

func demoCard(i int) []config.Block {
	return []config.Block{
		{Name: "title", Text: fmt.Sprintf("Card %d", i), Border: true},
		{Name: "body", Text: demoTexts[i%len(demoTexts)], Border: true},
	}
}

func demoCards() []config.Card {
	cards := make([]config.Card, 0, len(demoTexts))
	for i := range demoTexts {
		cards = append(cards, config.Card{Blocks: demoCard(i + 1)})
	}
	return cards
}
