package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"shopfront/internal/ui/input/types"
	"shopfront/internal/ui/state"
	"shopfront/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	width  int
	height int
	help   help.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState) *ViewModel {
	return &ViewModel{
		state: appState,
		help:  help.New(),
	}
}

// SetDimensions updates the terminal size
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = max(0, width-2*views.PadX)
}

// BuildViewState assembles the frame around a rendered page body. The help
// line lists bindings; the status line is taken from the app state except on
// the login page, which shows its errors inside the form.
func (vm *ViewModel) BuildViewState(username, body string, bindings []key.Binding) views.ViewState {
	vs := views.ViewState{
		Width:    vm.width,
		Height:   vm.height,
		Username: username,
		Back:     vm.state.Page == types.PageProduct,
		Body:     body,
		HelpLine: vm.help.ShortHelpView(bindings),
	}
	if vm.state.Page != types.PageLogin {
		vs.Status = vm.state.StatusMessage
		vs.StatusError = vm.state.StatusError
	}
	return vs
}
