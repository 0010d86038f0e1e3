package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/domain"
	"shopfront/internal/eventbus"
	"shopfront/internal/ui/state"
)

// requestTimeout bounds every storage round trip started from the UI
const requestTimeout = 5 * time.Second

// Authenticator is the part of the auth service the UI drives
type Authenticator interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser() (domain.User, bool)
}

// Catalog reads products
type Catalog interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (domain.Product, error)
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Bus     eventbus.EventBus
	Auth    Authenticator
	Catalog Catalog
}

// LoginResultMsg carries the outcome of a login attempt
type LoginResultMsg struct {
	User domain.User
	Err  error
}

// LogoutResultMsg carries the outcome of a logout
type LogoutResultMsg struct {
	Err error
}

// ProductsLoadedMsg carries the catalog
type ProductsLoadedMsg struct {
	Products []domain.Product
	Err      error
}

// ProductLoadedMsg carries one reloaded product
type ProductLoadedMsg struct {
	Product domain.Product
	Err     error
}

// LoginCommand signs the user in
type LoginCommand struct {
	ctx   *CommandContext
	creds domain.Credentials
}

// NewLoginCommand creates a new login command
func NewLoginCommand(ctx *CommandContext, creds domain.Credentials) *LoginCommand {
	return &LoginCommand{ctx: ctx, creds: creds}
}

// Execute marks the form pending and runs the login off the UI loop
func (c *LoginCommand) Execute() tea.Cmd {
	c.ctx.State.LoginPending = true
	c.ctx.State.LoginError = ""
	auth, creds := c.ctx.Auth, c.creds
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := auth.Login(ctx, creds)
		return LoginResultMsg{User: user, Err: err}
	}
}

// LogoutCommand signs the user out
type LogoutCommand struct {
	ctx *CommandContext
}

// NewLogoutCommand creates a new logout command
func NewLogoutCommand(ctx *CommandContext) *LogoutCommand {
	return &LogoutCommand{ctx: ctx}
}

// Execute runs the logout
func (c *LogoutCommand) Execute() tea.Cmd {
	auth := c.ctx.Auth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return LogoutResultMsg{Err: auth.Logout(ctx)}
	}
}

// LoadProductsCommand reads the whole catalog
type LoadProductsCommand struct {
	ctx *CommandContext
}

// NewLoadProductsCommand creates a new load products command
func NewLoadProductsCommand(ctx *CommandContext) *LoadProductsCommand {
	return &LoadProductsCommand{ctx: ctx}
}

// Execute reads the catalog
func (c *LoadProductsCommand) Execute() tea.Cmd {
	cat := c.ctx.Catalog
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		products, err := cat.Products(ctx)
		return ProductsLoadedMsg{Products: products, Err: err}
	}
}

// LoadProductCommand reloads one product with its comments
type LoadProductCommand struct {
	ctx *CommandContext
	id  string
}

// NewLoadProductCommand creates a new load product command
func NewLoadProductCommand(ctx *CommandContext, id string) *LoadProductCommand {
	return &LoadProductCommand{ctx: ctx, id: id}
}

// Execute reads the product
func (c *LoadProductCommand) Execute() tea.Cmd {
	cat, id := c.ctx.Catalog, c.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		p, err := cat.Product(ctx, id)
		return ProductLoadedMsg{Product: p, Err: err}
	}
}

// SubmitCommentCommand hands a new comment to the catalog service
type SubmitCommentCommand struct {
	ctx       *CommandContext
	productID string
	text      string
	rating    float64
}

// NewSubmitCommentCommand creates a new submit comment command
func NewSubmitCommentCommand(ctx *CommandContext, productID, text string, rating float64) *SubmitCommentCommand {
	return &SubmitCommentCommand{ctx: ctx, productID: productID, text: text, rating: rating}
}

// Execute publishes the submission. The result comes back as a
// CommentAdded or Error event.
func (c *SubmitCommentCommand) Execute() tea.Cmd {
	user, ok := c.ctx.Auth.CurrentUser()
	if !ok {
		c.ctx.State.SetError("Please log in to comment")
		return nil
	}
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.CommentSubmittedEvent{
			ProductID: c.productID,
			Username:  user.Username,
			Text:      c.text,
			Rating:    c.rating,
		})
	}
	c.ctx.State.SetStatus("Submitting comment...")
	return nil
}
