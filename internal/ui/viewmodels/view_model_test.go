package viewmodels

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"shopfront/internal/ui/input/types"
	"shopfront/internal/ui/state"
)

func TestBuildViewState(t *testing.T) {
	st := state.NewAppState()
	st.Page = types.PageProduct
	st.SetError("Product no longer exists")

	vm := NewViewModel(st)
	vm.SetDimensions(100, 30)
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))

	vs := vm.BuildViewState("user", "body", []key.Binding{quit})
	assert.Equal(t, 100, vs.Width)
	assert.True(t, vs.Back)
	assert.True(t, vs.StatusError)
	assert.Equal(t, "Product no longer exists", vs.Status)
	assert.Contains(t, vs.HelpLine, "quit")
}

func TestLoginPageHidesStatus(t *testing.T) {
	st := state.NewAppState()
	st.SetError("Signed out")

	vs := NewViewModel(st).BuildViewState("", "form", nil)
	assert.False(t, vs.Back)
	assert.Empty(t, vs.Status)
}
