// internal/state/input.go
package state

import (
	"go-wave-arena/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ interfaces.InputSource = (*KeyboardInput)(nil)

// KeyboardInput переводит клавиатуру ebiten в ввод симуляции.
type KeyboardInput struct {
	bindings map[ebiten.Key]interfaces.Action
}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		bindings: map[ebiten.Key]interfaces.Action{
			ebiten.KeyTab:    interfaces.ActionToggleShop,
			ebiten.KeyEscape: interfaces.ActionMenu,
			ebiten.KeyEnter:  interfaces.ActionTriggerWave,
			ebiten.KeyF:      interfaces.ActionFrost,
			ebiten.KeyG:      interfaces.ActionExplosion,
			ebiten.KeyC:      interfaces.ActionConvert,
			ebiten.KeyM:      interfaces.ActionBuyMine,
			ebiten.KeyU:      interfaces.ActionUpgradeMines,
			ebiten.KeyY:      interfaces.ActionConfirmExit,
			ebiten.KeyN:      interfaces.ActionCancel,
		},
	}
}

func (k *KeyboardInput) Poll() interfaces.InputState {
	in := interfaces.InputState{Pressed: make(map[interfaces.Action]bool)}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	// Z мира смотрит вверх по экрану
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveZ++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveZ--
	}
	for key, action := range k.bindings {
		if inpututil.IsKeyJustPressed(key) {
			in.Pressed[action] = true
		}
	}
	return in
}
