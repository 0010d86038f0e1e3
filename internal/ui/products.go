package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/slider"
	"shopfront/internal/ui/input/types"
	"shopfront/internal/ui/views"
)

// layout sizes and positions every carousel for the current window
func (m *Model) layout() {
	m.layoutCards()
	m.layoutProduct()
}

func (m *Model) layoutCards() {
	perRow, rows := views.CardsPerRow(m.width), views.VisibleCardRows(m.height)
	m.navigator.UpdateState(m.state.SelectedIndex, m.state.ViewportOffset, rows, perRow, len(m.state.Products))
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)

	off := m.state.ViewportOffset
	for i, p := range m.state.Products {
		card := m.cards[p.ID]
		if card == nil {
			continue
		}
		card.SetSize(views.CardWidth-2, views.CardSliderHeight)
		if row := i / perRow; row < off || row >= off+rows {
			// off screen: never hit by the mouse
			card.SetOrigin(-4*views.CardWidth, -4*views.CardHeight)
			continue
		}
		x, y := views.CardOrigin(i, perRow, off)
		card.SetOrigin(x+1, y+1)
	}
}

// cardAt returns the visible card under the cell or -1
func (m *Model) cardAt(x, y int) int {
	perRow, rows := views.CardsPerRow(m.width), views.VisibleCardRows(m.height)
	bx, by := views.BodyOrigin()
	dx, dy := x-bx, y-by
	if dx < 0 || dy < 0 || dx%(views.CardWidth+views.CardGap) >= views.CardWidth {
		return -1
	}
	col, row := dx/(views.CardWidth+views.CardGap), dy/views.CardHeight
	if col >= perRow || row >= rows {
		return -1
	}
	i := (row+m.state.ViewportOffset)*perRow + col
	if i >= len(m.state.Products) {
		return -1
	}
	return i
}

// updateCardHover marks the selected and the mouse-hovered card as hovered
// so their carousels auto-advance.
func (m *Model) updateCardHover() tea.Cmd {
	var cmds []tea.Cmd
	for i, p := range m.state.Products {
		card := m.cards[p.ID]
		if card == nil {
			continue
		}
		cmds = append(cmds, card.SetHovered(i == m.state.SelectedIndex || i == m.state.HoveredIndex))
	}
	return tea.Batch(cmds...)
}

func (m *Model) moveSelection(direction string) tea.Cmd {
	m.navigator.UpdateState(m.state.SelectedIndex, m.state.ViewportOffset,
		views.VisibleCardRows(m.height), views.CardsPerRow(m.width), len(m.state.Products))
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(direction)
	m.layoutCards()
	return m.updateCardHover()
}

func (m *Model) openSelected() tea.Cmd {
	p, ok := m.state.SelectedProduct()
	if !ok {
		return nil
	}
	return m.navigate(types.PageProduct, p.ID)
}

func (m *Model) handleProductsMouse(msg tea.MouseMsg) tea.Cmd {
	i := m.cardAt(msg.X, msg.Y)
	var cmds []tea.Cmd

	switch msg.Action {
	case tea.MouseActionMotion:
		if card := m.cardFor(m.pressCard); card != nil {
			cmds = append(cmds, card.Update(msg))
		}
		if i != m.state.HoveredIndex {
			m.state.HoveredIndex = i
			cmds = append(cmds, m.updateCardHover())
		}

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.moveSelection("up")
		case tea.MouseButtonWheelDown:
			return m.moveSelection("down")
		case tea.MouseButtonLeft:
			if i < 0 {
				return nil
			}
			m.pressCard, m.pressX = i, msg.X
			if card := m.cardFor(i); card != nil {
				cmds = append(cmds, card.Update(msg))
			}
		}

	case tea.MouseActionRelease:
		start := m.pressCard
		if start < 0 {
			return nil
		}
		m.pressCard = -1
		if card := m.cardFor(start); card != nil {
			cmds = append(cmds, card.Update(msg))
		}
		// a click, not a swipe
		if i == start && abs(msg.X-m.pressX) <= 1 {
			m.state.SelectedIndex = start
			return m.openSelected()
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) cardFor(i int) *slider.Model {
	if i < 0 || i >= len(m.state.Products) {
		return nil
	}
	return m.cards[m.state.Products[i].ID]
}

func (m *Model) productsView() string {
	if !m.state.Loaded {
		return m.renderer.Styles().Dim.Render("Loading products...")
	}
	perRow, rows := views.CardsPerRow(m.width), views.VisibleCardRows(m.height)
	first := m.state.ViewportOffset * perRow
	last := min((m.state.ViewportOffset+rows)*perRow, len(m.state.Products))

	cards := make([]string, 0, max(0, last-first))
	for i := first; i < last; i++ {
		p := m.state.Products[i]
		carousel := ""
		if card := m.cards[p.ID]; card != nil {
			carousel = card.View()
		}
		cards = append(cards, m.renderer.RenderCard(p, carousel, i == m.state.SelectedIndex))
	}
	return m.renderer.RenderGrid(cards, perRow)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
