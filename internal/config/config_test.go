package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/eventbus"
	"shopfront/internal/slider"
)

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	bus := eventbus.New(nil)
	defer bus.Close()

	loaded := make(chan eventbus.ConfigLoadedEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.ConfigLoadedEvent)
	})

	svc := NewConfigServiceWithBus(path, nil, bus)
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	select {
	case e := <-loaded:
		assert.True(t, e.Created)
		assert.Equal(t, path, e.Path)
	case <-time.After(time.Second):
		t.Fatal("ConfigLoaded not published")
	}

	again, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadFromPathKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `version = 1

[slider.detail]
auto_play = true
navigation = "visible"
auto_slide_interval_ms = 2000

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService(path, nil).LoadFromPath(path)
	require.NoError(t, err)

	assert.True(t, cfg.Slider.Detail.AutoPlay)
	assert.Equal(t, "visible", cfg.Slider.Detail.Navigation)
	assert.Equal(t, 2000, cfg.Slider.Detail.AutoSlideInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultConfig().Slider.Card, cfg.Slider.Card)
	assert.True(t, cfg.UI.Mouse)
}

func TestLoadFromPathRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax", content: "version = "},
		{name: "navigation", content: "[slider.card]\nnavigation = \"sometimes\"\n"},
		{name: "interval", content: "[slider.detail]\nauto_slide_interval_ms = -1\n"},
		{name: "threshold", content: "[slider.card]\ntouch_threshold = -5\n"},
		{name: "level", content: "[log]\nlevel = \"loud\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := NewConfigService(path, nil).LoadFromPath(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := NewConfigService("", nil).LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path, nil)

	cfg := DefaultConfig()
	cfg.Slider.Card.AutoSlideInterval = 900
	cfg.UI.Mouse = false
	require.NoError(t, svc.Save(cfg))

	got, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSliderConfigOptions(t *testing.T) {
	cfg := DefaultConfig()

	card := cfg.Slider.Card.Options(nil)
	assert.False(t, card.AutoPlay)
	assert.True(t, card.AutoPlayOnHover)
	assert.True(t, card.Circular)
	assert.Equal(t, slider.NavigationNotVisible, card.Navigation)
	assert.Equal(t, 1500*time.Millisecond, card.AutoSlideInterval)

	detail := cfg.Slider.Detail.Options(nil)
	assert.False(t, detail.AutoPlay)
	assert.Equal(t, slider.NavigationVisibleOnHover, detail.Navigation)
	assert.Equal(t, slider.DefaultAutoSlideInterval, detail.AutoSlideInterval)
	assert.Equal(t, slider.DefaultTransitionDuration, detail.TransitionDuration)
	assert.Equal(t, terminalSwipeThreshold, detail.TouchThreshold)
}
