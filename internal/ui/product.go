package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"shopfront/internal/catalog"
	"shopfront/internal/slider"
	"shopfront/internal/ui/commands"
	"shopfront/internal/ui/components"
	"shopfront/internal/ui/input/types"
	"shopfront/internal/ui/views"
)

const ratingLabel = "Rating: "

// layoutProduct positions the carousel, the tabs and the comment stars
func (m *Model) layoutProduct() {
	if m.detail == nil {
		return
	}
	bx, by := views.BodyOrigin()
	m.detail.SetSize(views.DetailSliderWidth(m.width), views.DetailSliderHeight)
	m.detail.SetOrigin(bx, by)

	tabsY := by + m.detail.Height() + 1
	m.tabs.SetOrigin(bx, tabsY)

	// comments tab: average line, blank, form label, three text rows, stars
	m.form.Rating().SetOrigin(bx+lipgloss.Width(ratingLabel), tabsY+2+2+4)
}

func (m *Model) handleProductLoaded(msg commands.ProductLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		if errors.Is(msg.Err, catalog.ErrProductNotFound) {
			if m.state.Page != types.PageProduct {
				return nil
			}
			cmd := m.navigate(types.PageProducts, "")
			m.state.SetError("Product no longer exists")
			return cmd
		}
		m.log.Error("failed to load product", zap.Error(msg.Err))
		m.state.SetError("Could not load product")
		return nil
	}

	if !m.state.UpdateProduct(msg.Product) {
		return nil
	}
	if m.state.Page != types.PageProduct || m.state.ProductID != msg.Product.ID || m.detail == nil {
		return nil
	}
	if m.detail.Len() == len(msg.Product.Images) {
		return nil
	}

	// images changed: start a fresh carousel
	focused := m.detail.Focused()
	m.detail.Unmount()
	opts := m.config.Slider.Detail.Options(m.log)
	opts.Renderer = views.ImageSlide
	m.detail = slider.New(slides(msg.Product), opts)
	if focused {
		m.detail.Focus()
	}
	m.layoutProduct()
	return m.detail.Init()
}

func (m *Model) handleProductMouse(msg tea.MouseMsg) tea.Cmd {
	if m.detail == nil {
		return nil
	}
	cmds := []tea.Cmd{
		m.detail.SetHovered(m.detail.Contains(msg.X, msg.Y)),
		m.detail.Update(msg),
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if t := m.tabs.TabAt(msg.X, msg.Y); t >= 0 {
			m.tabs.Set(t)
		}
	}
	if m.tabs.Active() == components.TabComments {
		m.form.Rating().Update(msg)
	}
	return tea.Batch(cmds...)
}

// enterCommentMode shows the comments tab and moves keys to the form
func (m *Model) enterCommentMode() tea.Cmd {
	m.tabs.Set(components.TabComments)
	if m.detail != nil {
		m.sliderWasFocused = m.detail.Focused()
		m.detail.Blur()
	}
	return m.form.Focus()
}

// leaveCommentMode hands keys back to the page
func (m *Model) leaveCommentMode() {
	m.form.Blur()
	if m.detail != nil && m.sliderWasFocused {
		m.detail.Focus()
	}
}

func (m *Model) submitComment() tea.Cmd {
	sub, ok := m.form.Submit()
	if !ok {
		return nil
	}
	return m.cmdExecutor.ExecuteSubmitComment(m.state.ProductID, sub.Text, sub.Rating)
}

func (m *Model) toggleAutoPlay() tea.Cmd {
	if m.detail == nil {
		return nil
	}
	on := !m.detail.Options().AutoPlay
	if on {
		m.state.SetStatus("Autoplay on")
	} else {
		m.state.SetStatus("Autoplay off")
	}
	return m.detail.SetAutoPlay(on)
}

func (m *Model) productView() string {
	p, ok := m.state.CurrentProduct()
	if !ok || m.detail == nil {
		return m.renderer.Styles().Dim.Render("Product not found")
	}
	w := views.DetailSliderWidth(m.width)

	parts := []string{m.detail.View(), "", m.tabs.View(), ""}
	switch m.tabs.Active() {
	case components.TabComments:
		used := views.DetailSliderHeight + 2 + 2 + 2 + lipgloss.Height(m.form.View()) + 1
		avail := m.height - 2*views.PadY - views.HeaderHeight - 2 - used
		parts = append(parts,
			m.renderer.RenderCommentsHeader(p.Comments),
			"",
			m.form.View(),
			"",
			m.renderer.RenderComments(p.Comments, w, max(1, avail/2)),
		)
	default:
		parts = append(parts, m.renderer.RenderDetails(p, w))
	}
	return strings.Join(parts, "\n")
}
