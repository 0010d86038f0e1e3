package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/domain"
	"shopfront/internal/eventbus"
	"shopfront/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, auth Authenticator, catalog Catalog) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:   state,
			Bus:     bus,
			Auth:    auth,
			Catalog: catalog,
		},
	}
}

// ExecuteLogin creates and executes a login command
func (e *Executor) ExecuteLogin(creds domain.Credentials) tea.Cmd {
	return NewLoginCommand(e.ctx, creds).Execute()
}

// ExecuteLogout creates and executes a logout command
func (e *Executor) ExecuteLogout() tea.Cmd {
	return NewLogoutCommand(e.ctx).Execute()
}

// ExecuteLoadProducts creates and executes a load products command
func (e *Executor) ExecuteLoadProducts() tea.Cmd {
	return NewLoadProductsCommand(e.ctx).Execute()
}

// ExecuteLoadProduct creates and executes a load product command
func (e *Executor) ExecuteLoadProduct(id string) tea.Cmd {
	return NewLoadProductCommand(e.ctx, id).Execute()
}

// ExecuteSubmitComment creates and executes a submit comment command
func (e *Executor) ExecuteSubmitComment(productID, text string, rating float64) tea.Cmd {
	return NewSubmitCommentCommand(e.ctx, productID, text, rating).Execute()
}
