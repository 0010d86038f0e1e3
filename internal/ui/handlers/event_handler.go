package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/eventbus"
	"shopfront/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state         *state.AppState
	reloadProduct func(id string) tea.Cmd
}

// NewEventHandler creates a new event handler. reloadProduct is asked for a
// command whenever a product changed in storage.
func NewEventHandler(appState *state.AppState, reloadProduct func(id string) tea.Cmd) *EventHandler {
	return &EventHandler{
		state:         appState,
		reloadProduct: reloadProduct,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CommentAddedEvent:
		h.state.SetStatus("Comment added")
		if _, ok := h.state.Product(e.Comment.ProductID); ok && h.reloadProduct != nil {
			return h.reloadProduct(e.Comment.ProductID)
		}

	case eventbus.ErrorEvent:
		h.state.SetError(e.Message)

	case eventbus.LoggedInEvent:
		h.state.SetStatus(fmt.Sprintf("Signed in as %s", e.User.Username))

	case eventbus.LoggedOutEvent:
		h.state.SetStatus("Signed out")

	case eventbus.CatalogReadyEvent:
		h.state.SetProducts(e.Products)
		if e.Seeded {
			h.state.SetStatus(fmt.Sprintf("Catalog seeded with %d products", len(e.Products)))
		}

	case eventbus.ConfigLoadedEvent:
		if e.Created {
			h.state.SetStatus(fmt.Sprintf("Wrote default config to %s", e.Path))
		}
	}

	return nil
}
