package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestTabsSwitchWraps(t *testing.T) {
	tabs := NewTabs("Details", "Comments & Ratings")
	assert.Equal(t, TabDetails, tabs.Active())

	tabs.Switch(1)
	assert.Equal(t, TabComments, tabs.Active())
	tabs.Switch(1)
	assert.Equal(t, TabDetails, tabs.Active())
	tabs.Switch(-1)
	assert.Equal(t, TabComments, tabs.Active())

	tabs.Set(7)
	assert.Equal(t, TabComments, tabs.Active())
}

func TestTabsHitTest(t *testing.T) {
	tabs := NewTabs("Details", "Comments & Ratings")
	tabs.SetOrigin(2, 5)

	assert.Equal(t, TabDetails, tabs.TabAt(2, 5))
	assert.Equal(t, TabDetails, tabs.TabAt(10, 5))
	assert.Equal(t, -1, tabs.TabAt(11, 5), "gap between titles")
	assert.Equal(t, TabComments, tabs.TabAt(13, 5))
	assert.Equal(t, -1, tabs.TabAt(13, 6))

	assert.Equal(t, " Details    Comments & Ratings ", ansi.Strip(tabs.View()))
}
