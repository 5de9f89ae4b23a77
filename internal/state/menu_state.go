// internal/state/menu_state.go
package state

import (
	"log"
	"strings"

	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

var _ State = (*MenuState)(nil)

// MenuState — титульный экран и экран итогов забега
type MenuState struct {
	sm      *StateMachine
	lib     *defs.Library
	seed    int64
	face    font.Face
	summary string
}

func NewMenuState(sm *StateMachine, lib *defs.Library, seed int64, face font.Face, summary string) *MenuState {
	return &MenuState{sm: sm, lib: lib, seed: seed, face: face, summary: summary}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.lib, m.seed, m.face)
	if err != nil {
		log.Printf("menu: cannot start run: %v", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	x, y := config.ScreenWidth/2-160, config.ScreenHeight/2-60
	text.Draw(screen, "WAVE ARENA", m.face, x, y, config.GoColor)
	y += 30
	for _, line := range strings.Split(m.summary, "\n") {
		text.Draw(screen, line, m.face, x, y, config.TextLightColor)
		y += 18
	}
	text.Draw(screen, "[Space] new run  [Esc] quit", m.face, x, y+20, config.TextLightColor)
}

func (m *MenuState) Exit() {}
