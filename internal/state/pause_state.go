// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — меню поверх замороженного боя: подтверждение выхода или конец забега.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	input         *KeyboardInput
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState *GameState, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		input:         NewKeyboardInput(),
		font:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	g := s.previousState.Game()
	g.HandleInput(s.input.Poll())

	if g.ExitRequested {
		title := "Run abandoned"
		if g.Orchestrator.Complete() {
			title = "Run complete"
		}
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.previousState.lib,
			s.previousState.seed+1, s.font, s.previousState.summary(title)))
		return
	}
	if g.Mode() != component.ModeMainMenu {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)
	x, y := config.ScreenWidth/2-140, config.ScreenHeight/2-20
	title, hint := "Paused", "Exit to title? [Y] yes  [N]/[Esc] back"
	if s.previousState.Game().ModeSystem.Final() {
		title, hint = "All waves cleared!", "[Y] back to title"
	}
	text.Draw(screen, title, s.font, x, y, config.GoColor)
	text.Draw(screen, hint, s.font, x, y+24, config.TextLightColor)
}

func (s *PauseState) Exit() {}
