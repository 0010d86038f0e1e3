package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopfront/internal/domain"
	"shopfront/internal/slider"
	"shopfront/internal/ui/components"
	"shopfront/internal/ui/input/types"
	"shopfront/internal/ui/views"
)

// resolve applies the route guards: signed out users only see the login
// page, signed in users never do, and an unknown product falls back to the
// product list.
func (m *Model) resolve(page types.Page, productID string) (types.Page, string) {
	_, authed := m.auth.CurrentUser()
	switch {
	case !authed:
		return types.PageLogin, ""
	case page == types.PageLogin:
		return types.PageProducts, ""
	case page == types.PageProduct:
		if _, ok := m.state.Product(productID); !ok {
			m.state.SetError("Product not found")
			return types.PageProducts, ""
		}
	}
	return page, productID
}

// navigate leaves the current page and enters the resolved target
func (m *Model) navigate(page types.Page, productID string) tea.Cmd {
	page, productID = m.resolve(page, productID)
	m.log.Debug("navigate",
		zap.Stringer("from", pageName(m.state.Page)),
		zap.Stringer("to", pageName(page)),
		zap.String("product", productID))

	m.leave()
	m.state.Page = page
	m.state.ProductID = productID
	m.showHelp = false

	switch page {
	case types.PageLogin:
		m.inputHandler.ChangeMode(types.ModeLogin, m.inputContext())
		m.loginFocus = 0
		m.password.Blur()
		return m.username.Focus()
	case types.PageProduct:
		m.inputHandler.ChangeMode(types.ModeNormal, m.inputContext())
		return m.enterProduct(productID)
	default:
		m.inputHandler.ChangeMode(types.ModeNormal, m.inputContext())
		return m.enterProducts()
	}
}

// leave unmounts the carousels of the current page
func (m *Model) leave() {
	switch m.state.Page {
	case types.PageProducts:
		for _, card := range m.cards {
			card.Unmount()
		}
		m.pressCard = -1
	case types.PageProduct:
		if m.detail != nil {
			m.detail.Unmount()
			m.detail = nil
		}
		m.form.Blur()
		m.form.Reset()
	case types.PageLogin:
		m.username.Blur()
		m.password.Blur()
	}
}

func (m *Model) enterProducts() tea.Cmd {
	m.layout()
	var cmds []tea.Cmd
	for _, card := range m.cards {
		cmds = append(cmds, card.Init())
	}
	cmds = append(cmds, m.updateCardHover())
	return tea.Batch(cmds...)
}

func (m *Model) enterProduct(id string) tea.Cmd {
	p, _ := m.state.Product(id)
	opts := m.config.Slider.Detail.Options(m.log)
	opts.Renderer = views.ImageSlide
	m.detail = slider.New(slides(p), opts)
	m.detail.Focus()
	m.tabs.Set(components.TabDetails)
	m.layout()
	return tea.Batch(m.detail.Init(), m.cmdExecutor.ExecuteLoadProduct(id))
}

// syncCards keeps one card carousel per product. Cards are mounted only
// while the product list is shown.
func (m *Model) syncCards() tea.Cmd {
	seen := make(map[string]bool, len(m.state.Products))
	var cmds []tea.Cmd
	opts := m.config.Slider.Card.Options(m.log)
	opts.Renderer = views.ImageSlide

	for _, p := range m.state.Products {
		seen[p.ID] = true
		card, ok := m.cards[p.ID]
		if ok && card.Len() == len(p.Images) {
			continue
		}
		if ok {
			card.Unmount()
		}
		card = slider.New(slides(p), opts)
		m.cards[p.ID] = card
		if m.state.Page == types.PageProducts {
			cmds = append(cmds, card.Init())
		}
	}
	for id, card := range m.cards {
		if !seen[id] {
			card.Unmount()
			delete(m.cards, id)
		}
	}

	m.layout()
	if m.state.Page == types.PageProducts {
		cmds = append(cmds, m.updateCardHover())
	}
	return tea.Batch(cmds...)
}

func slides(p domain.Product) []slider.Slide {
	out := make([]slider.Slide, len(p.Images))
	for i, img := range p.Images {
		out[i] = slider.Slide{ID: img.ID, Src: img.Src, Alt: img.Alt}
	}
	return out
}

type pageName types.Page

func (p pageName) String() string {
	switch types.Page(p) {
	case types.PageLogin:
		return "login"
	case types.PageProduct:
		return "product"
	default:
		return "products"
	}
}
