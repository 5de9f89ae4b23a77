package system

import (
	"testing"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/scheduler"

	"github.com/stretchr/testify/assert"
)

func newModes() (*ModeSystem, *scheduler.Clock) {
	clock := scheduler.NewClock()
	return NewModeSystem(entity.NewECS(), clock), clock
}

func TestShopTogglePausesClock(t *testing.T) {
	modes, clock := newModes()

	assert.True(t, modes.ToggleShop())
	assert.Equal(t, component.ModeShop, modes.Current())
	assert.True(t, clock.IsPaused())

	clock.Advance(5)
	assert.Zero(t, clock.Now())

	assert.True(t, modes.ToggleShop())
	assert.True(t, modes.IsActive())
	assert.False(t, clock.IsPaused())
}

func TestEscapeWalksBackToCombat(t *testing.T) {
	modes, _ := newModes()

	modes.Escape()
	assert.Equal(t, component.ModeMainMenu, modes.Current())
	assert.False(t, modes.ToggleShop(), "no shop from the menu")

	modes.Escape()
	assert.Equal(t, component.ModeActive, modes.Current())

	modes.ToggleShop()
	modes.Escape()
	assert.Equal(t, component.ModeActive, modes.Current())
}

func TestEndIsFinal(t *testing.T) {
	modes, clock := newModes()

	modes.End()
	assert.Equal(t, component.ModeEnd, modes.Current())
	assert.True(t, clock.IsPaused())

	assert.False(t, modes.OpenMenu())
	assert.False(t, modes.CloseMenu())
	assert.False(t, modes.ToggleShop())
	modes.Escape()
	assert.Equal(t, component.ModeEnd, modes.Current())
}

func TestFinalMenuCannotBeClosed(t *testing.T) {
	modes, clock := newModes()

	assert.True(t, modes.OpenFinalMenu())
	assert.True(t, modes.Final())

	assert.False(t, modes.CloseMenu())
	modes.Escape()
	assert.Equal(t, component.ModeMainMenu, modes.Current())
	assert.False(t, modes.ToggleShop())
	assert.True(t, clock.IsPaused())
}
