package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	equalheight "github.com/grindlemire/go-equalheight"
	"github.com/grindlemire/go-equalheight/internal/config"
	"github.com/grindlemire/go-equalheight/pkg/layout"
)

// board is a page of cards wired to one scope.
type board struct {
	page    *layout.Page
	scope   *equalheight.Scope
	mounter *equalheight.Mounter
	metrics *equalheight.Metrics
	reg     *prometheus.Registry
	logger  *log.Logger

	cards []*card
	next  int
}

// card is one page item: a layout card with an explicit holder, or a
// standalone block whose member owns an implicit holder.
type card struct {
	key     int
	item    layout.Item
	node    equalheight.Positioner
	blocks  []config.Block
	members []*equalheight.Member
	holder  *equalheight.Holder
}

func newBoard(cfg config.Config, logger *log.Logger, opts ...equalheight.ScopeOption) (*board, error) {
	page := layout.NewPage(cfg.Page.Width, cfg.Page.Height,
		layout.WithGap(cfg.Page.Gap, cfg.Page.RowGap),
		layout.WithMinColumnWidth(cfg.Page.MinColumnWidth),
		layout.WithMaxColumns(cfg.Page.MaxColumns),
	)

	reg := prometheus.NewRegistry()
	metrics := equalheight.NewMetrics(reg)

	all := append(cfg.ScopeOptions(),
		equalheight.WithViewport(page),
		equalheight.WithLogger(logger),
		equalheight.WithMetrics(metrics),
	)
	scope, err := equalheight.NewScope(append(all, opts...)...)
	if err != nil {
		return nil, err
	}

	b := &board{
		page:    page,
		scope:   scope,
		mounter: equalheight.NewMounter(),
		metrics: metrics,
		reg:     reg,
		logger:  logger,
	}
	for _, c := range cfg.Cards {
		if err := b.addCard(c.Blocks...); err != nil {
			return nil, err
		}
	}
	for _, blk := range cfg.Blocks {
		if err := b.addBlock(blk); err != nil {
			return nil, err
		}
	}
	b.sync()
	return b, nil
}

// addCard places a card holding blocks at the end of the page.
func (b *board) addCard(blocks ...config.Block) error {
	lc := layout.NewCard()
	holder, err := equalheight.NewHolder(b.scope, lc)
	if err != nil {
		return err
	}
	c := &card{key: b.nextKey(), item: lc, node: lc, blocks: blocks, holder: holder}
	for _, blk := range blocks {
		node := newLayoutBlock(blk)
		lc.Append(node)
		m, err := newMember(holder, blk, node)
		if err != nil {
			return err
		}
		c.members = append(c.members, m)
	}
	b.page.Add(lc)
	b.cards = append(b.cards, c)
	return nil
}

// addBlock places a standalone block.
func (b *board) addBlock(blk config.Block) error {
	node := newLayoutBlock(blk)
	m, err := newMember(b.scope, blk, node)
	if err != nil {
		return err
	}
	b.page.Add(node)
	b.cards = append(b.cards, &card{
		key:     b.nextKey(),
		item:    node,
		node:    node,
		blocks:  []config.Block{blk},
		members: []*equalheight.Member{m},
	})
	return nil
}

// removeCard takes the card at index i off the page.
func (b *board) removeCard(i int) {
	if i < 0 || i >= len(b.cards) {
		return
	}
	c := b.cards[i]
	b.cards = append(b.cards[:i], b.cards[i+1:]...)
	b.page.Remove(c.item)
}

func (b *board) nextKey() int {
	b.next++
	return b.next
}

// sync mounts every holder and member on the page and unmounts what left
// it, then settles the scope.
func (b *board) sync() {
	b.scope.Batch(func() {
		for _, c := range b.cards {
			if c.holder != nil {
				h := c.holder
				b.mounter.Mount(memberKey{card: c.key, index: -1}, func() equalheight.Lifecycle { return h })
			}
			for i, m := range c.members {
				b.mounter.Mount(memberKey{card: c.key, index: i}, func() equalheight.Lifecycle { return m })
			}
		}
		b.mounter.Sweep()
	})
	b.scope.Flush()
}

type memberKey struct {
	card  int
	index int
}

func newLayoutBlock(blk config.Block) *layout.Block {
	var opts []layout.BlockOption
	if blk.Border {
		opts = append(opts, layout.WithBorder())
	}
	if blk.MinHeight > 0 {
		opts = append(opts, layout.WithMinHeight(blk.MinHeight))
	}
	return layout.NewBlock(blk.Text, opts...)
}

func newMember(parent equalheight.Parent, blk config.Block, node *layout.Block) (*equalheight.Member, error) {
	m, err := equalheight.NewMember(parent, blk.Name, node,
		equalheight.WithPlaceholder(blk.Placeholder),
		equalheight.WithDisabled(blk.Disabled),
	)
	if err != nil {
		return nil, fmt.Errorf("block %q: %w", blk.Name, err)
	}
	return m, nil
}

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// targetTable renders the scope's target table.
func (b *board) targetTable() string {
	rows := make([][]string, 0)
	for _, t := range b.scope.Targets() {
		height, position := "undefined", "undefined"
		if t.HasHeight {
			height = strconv.Itoa(t.Height)
		}
		if t.Positioned {
			position = strconv.Itoa(t.Position)
		}
		rows = append(rows, []string{t.Name, height, position})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("name", "height", "row").
		Rows(rows...).
		String()
}

// logMetrics writes the scope's collectors at debug level.
func (b *board) logMetrics() {
	families, err := b.reg.Gather()
	if err != nil {
		b.logger.Warn("gather metrics", "err", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetGauge().GetValue() + m.GetCounter().GetValue()
			b.logger.Debug("metric", "name", mf.GetName(), "value", value)
		}
	}
}
