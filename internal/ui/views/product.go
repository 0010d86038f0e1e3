package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"shopfront/internal/catalog"
	"shopfront/internal/domain"
	"shopfront/internal/ui/components"
)

// FormatDate renders t the way a US storefront shows dates, M/D/YYYY
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// FormatPrice renders a price with two decimals
func FormatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// RenderCard draws one product tile: carousel, name, stars and price
func (r *Renderer) RenderCard(p domain.Product, carousel string, selected bool) string {
	inner := CardWidth - 2
	name := r.styles.Name.Render(ansi.Truncate(p.Name, inner, "…"))
	rating := components.Stars(p.Rating, r.stars) + r.styles.Dim.Render(fmt.Sprintf(" (%d)", p.TotalRatings))
	price := r.styles.Price.Render(FormatPrice(p.Price))

	body := lipgloss.JoinVertical(lipgloss.Left, carousel, name, rating, price)
	style := r.styles.Card
	if selected {
		style = r.styles.CardSelected
	}
	return style.Width(inner).Render(body)
}

// RenderGrid lays cards out perRow at a time
func (r *Renderer) RenderGrid(cards []string, perRow int) string {
	if len(cards) == 0 {
		return r.styles.Dim.Render("No products yet.")
	}
	gap := strings.Repeat(" ", CardGap)
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		parts := make([]string, 0, 2*(end-start))
		for i, c := range cards[start:end] {
			if i > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderDetails draws the details tab
func (r *Renderer) RenderDetails(p domain.Product, width int) string {
	wrap := lipgloss.NewStyle().Width(max(20, width))
	lines := []string{
		r.styles.Name.Render(p.Name) + "  " + r.styles.Price.Render(FormatPrice(p.Price)),
		components.Stars(p.Rating, r.stars) + r.styles.Dim.Render(fmt.Sprintf(" %.1f (%d ratings)", p.Rating, p.TotalRatings)),
		"",
		wrap.Render(r.styles.Description.Render(p.Description)),
		"",
		r.styles.Label.Render("Arrival date: ") + FormatDate(p.ArrivalDate),
	}
	return strings.Join(lines, "\n")
}

// RenderCommentsHeader draws the average of the user ratings
func (r *Renderer) RenderCommentsHeader(comments []domain.Comment) string {
	avg := catalog.AverageRating(comments)
	return r.styles.Label.Render("Average rating: ") +
		components.Stars(catalog.AverageValue(comments), r.stars) + " " + avg +
		r.styles.Dim.Render(fmt.Sprintf(" from %d comments", len(comments)))
}

// RenderComments draws at most limit comments, newest first
func (r *Renderer) RenderComments(comments []domain.Comment, width, limit int) string {
	if len(comments) == 0 {
		return r.styles.Dim.Render("No comments yet. Be the first to comment!")
	}
	wrap := lipgloss.NewStyle().Width(max(20, width-2)).PaddingLeft(2)
	var blocks []string
	for i := len(comments) - 1; i >= 0 && len(blocks) < limit; i-- {
		c := comments[i]
		head := r.styles.Author.Render(c.Username) + "  " +
			components.Stars(c.Rating, r.stars) + "  " +
			r.styles.Dim.Render(FormatDate(c.CreatedAt))
		blocks = append(blocks, head+"\n"+wrap.Render(c.Text))
	}
	if hidden := len(comments) - len(blocks); hidden > 0 {
		blocks = append(blocks, r.styles.Dim.Render(fmt.Sprintf("… %d older comments", hidden)))
	}
	return strings.Join(blocks, "\n")
}
