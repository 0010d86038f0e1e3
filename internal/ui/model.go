package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopfront/internal/config"
	"shopfront/internal/eventbus"
	"shopfront/internal/slider"
	"shopfront/internal/ui/commands"
	"shopfront/internal/ui/components"
	"shopfront/internal/ui/handlers"
	"shopfront/internal/ui/input"
	"shopfront/internal/ui/input/types"
	"shopfront/internal/ui/logic"
	"shopfront/internal/ui/state"
	"shopfront/internal/ui/viewmodels"
	"shopfront/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	log    *zap.Logger
	auth   commands.Authenticator

	width  int
	height int
	keys   keyMap

	// Handlers
	navigator    *logic.Navigator       // card grid navigation
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer

	// Login page
	username   textinput.Model
	password   textinput.Model
	loginFocus int

	// Products page
	cards     map[string]*slider.Model // product id -> card carousel
	pressCard int                      // card a left press started on, -1 when none
	pressX    int

	// Product page
	detail           *slider.Model
	tabs             *components.Tabs
	form             *components.CommentForm
	sliderWasFocused bool
	showHelp         bool // inline help when no program is attached

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, auth commands.Authenticator, catalog commands.Catalog, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		log:          logger.Named("ui"),
		auth:         auth,
		keys:         newKeyMap(),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		cards:        make(map[string]*slider.Model),
		pressCard:    -1,
		tabs:         components.NewTabs("Details", "Comments & Ratings"),
		form:         components.NewCommentForm(input.RatingStep),
	}

	m.cmdExecutor = commands.NewExecutor(appState, bus, auth, catalog)
	m.eventHandler = handlers.NewEventHandler(appState, m.cmdExecutor.ExecuteLoadProduct)

	m.username = textinput.New()
	m.username.Placeholder = "username"
	m.username.Prompt = ""
	m.username.CharLimit = 64

	m.password = textinput.New()
	m.password.Placeholder = "password"
	m.password.Prompt = ""
	m.password.CharLimit = 64
	m.password.EchoMode = textinput.EchoPassword
	m.password.EchoCharacter = '•'

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// State exposes the application state, mainly for tests
func (m *Model) State() *state.AppState { return m.state }

// Init routes to the first page. A restored session lands on the products,
// anything else on the login form.
func (m *Model) Init() tea.Cmd {
	if _, ok := m.auth.CurrentUser(); ok {
		return tea.Batch(m.cmdExecutor.ExecuteLoadProducts(), m.navigate(types.PageProducts, ""))
	}
	return m.navigate(types.PageLogin, "")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.form.SetWidth(views.DetailSliderWidth(msg.Width) - 2)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
				return m, nil
			}
		}

		actions := m.inputHandler.HandleKey(msg, m.inputContext())
		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case slider.AutoAdvanceMsg, slider.FrameMsg, slider.TransitionEndMsg, slider.PaintMsg:
		return m, m.forwardToSliders(msg)
	}

	return m.handleNonKeyboardMsg(msg)
}

// handleNonKeyboardMsg handles results of commands and bus events
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if _, ok := msg.Event.(eventbus.CatalogReadyEvent); ok {
			return m, tea.Batch(cmd, m.syncCards())
		}
		return m, cmd

	case commands.LoginResultMsg:
		return m, m.handleLoginResult(msg)

	case commands.LogoutResultMsg:
		return m, m.handleLogoutResult(msg)

	case commands.ProductsLoadedMsg:
		if msg.Err != nil {
			m.log.Error("failed to load products", zap.Error(msg.Err))
			m.state.SetError("Could not load products")
			return m, nil
		}
		m.state.SetProducts(msg.Products)
		return m, m.syncCards()

	case commands.ProductLoadedMsg:
		return m, m.handleProductLoaded(msg)

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Warn("help pager failed", zap.Error(msg.err))
			m.state.SetError("Help unavailable: " + msg.err.Error())
		}
		return m, nil
	}

	// Anything else (cursor blinks) belongs to the focused text widget
	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the text widget that owns input
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.state.Page == types.PageLogin && m.loginFocus == 0:
		m.username, cmd = m.username.Update(msg)
	case m.state.Page == types.PageLogin:
		m.password, cmd = m.password.Update(msg)
	case m.inputHandler.CurrentMode() == types.ModeComment:
		cmd = m.form.Update(msg)
	}
	return cmd
}

// forwardToSliders hands a slider message to every carousel; each one
// ignores messages carrying another instance id.
func (m *Model) forwardToSliders(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if m.detail != nil {
		cmds = append(cmds, m.detail.Update(msg))
	}
	for _, card := range m.cards {
		cmds = append(cmds, card.Update(msg))
	}
	return tea.Batch(cmds...)
}

// inputContext snapshots the state the input modes look at
func (m *Model) inputContext() input.ModelContext {
	tab := "details"
	if m.tabs.Active() == components.TabComments {
		tab = "comments"
	}
	return input.ModelContext{
		CurrentPage:  m.state.Page,
		Index:        m.state.SelectedIndex,
		Total:        len(m.state.Products),
		Tab:          tab,
		Slider:       m.detail != nil && m.detail.Focused(),
		Rating:       m.form.RatingFocused(),
		CommentReady: m.form.CanSubmit(),
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch {
	case m.showHelp:
		body = m.helpRenderer.RenderHelpContent()
	case m.state.Page == types.PageLogin:
		body = m.renderer.RenderLogin(views.LoginState{
			Username: m.username.View(),
			Password: m.password.View(),
			Focus:    m.loginFocus,
			Error:    m.state.LoginError,
			Pending:  m.state.LoginPending,
		}, m.width, m.height)
	case m.state.Page == types.PageProduct:
		body = m.productView()
	default:
		body = m.productsView()
	}

	username := ""
	if u, ok := m.auth.CurrentUser(); ok {
		username = u.Username
	}
	vs := m.viewModel.BuildViewState(username, body, m.keys.bindings(m.state.Page, m.inputHandler.CurrentMode()))
	return m.renderer.Render(vs)
}
