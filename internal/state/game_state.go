// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"go-wave-arena/internal/app"
	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/system"
	"go-wave-arena/internal/ui"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var _ State = (*GameState)(nil)

// effectRelay откладывает привязку рендера: ECS появляется только внутри app.NewGame.
type effectRelay struct {
	target *system.RenderSystem
}

func (r *effectRelay) PlayEffect(name string, position mgl64.Vec3, radius float64) {
	if r.target != nil {
		r.target.PlayEffect(name, position, radius)
	}
}

// GameState — боевой экран одной сессии
type GameState struct {
	sm       *StateMachine
	lib      *defs.Library
	seed     int64
	face     font.Face
	game     *app.Game
	input    *KeyboardInput
	renderer *system.RenderSystem
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, lib *defs.Library, seed int64, face font.Face) (*GameState, error) {
	sess, err := session.New(lib, seed)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	relay := &effectRelay{}
	g := app.NewGame(sess, relay)
	renderer := system.NewRenderSystem(g.ECS, face)
	relay.target = renderer

	return &GameState{
		sm:       sm,
		lib:      lib,
		seed:     seed,
		face:     face,
		game:     g,
		input:    NewKeyboardInput(),
		renderer: renderer,
		hud:      ui.NewHUD(face),
	}, nil
}

// Enter вызывается и при возврате из паузы, Start повторно ничего не делает.
func (s *GameState) Enter() {
	s.game.Start()
}

func (s *GameState) Update(deltaTime float64) {
	s.game.HandleInput(s.input.Poll())
	if s.game.Mode() == component.ModeShop {
		s.handleShopKeys()
	}

	s.game.Tick(deltaTime)
	s.renderer.Update(deltaTime)
	s.hud.Update(s.game)

	switch s.game.Mode() {
	case component.ModeMainMenu:
		s.sm.SetState(NewPauseState(s.sm, s, s.face))
	case component.ModeEnd:
		s.sm.SetState(NewMenuState(s.sm, s.lib, s.seed+1, s.face, s.summary("You died")))
	}
}

func (s *GameState) handleShopKeys() {
	weaponKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	upgradeKeys := []ebiten.Key{ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR}
	for i, kind := range defs.WeaponKinds {
		if i < len(weaponKeys) && inpututil.IsKeyJustPressed(weaponKeys[i]) {
			s.game.BuyWeapon(kind)
		}
		if i < len(upgradeKeys) && inpututil.IsKeyJustPressed(upgradeKeys[i]) {
			s.game.UpgradeWeapon(kind)
		}
	}

	buffKeys := []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4,
		ebiten.KeyF5, ebiten.KeyF6, ebiten.KeyF7}
	for i, kind := range defs.BuffKinds {
		if i < len(buffKeys) && inpututil.IsKeyJustPressed(buffKeys[i]) {
			s.game.BuyBuff(kind)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		s.game.BuyFrost()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.game.BuyExplosion()
	}
}

func (s *GameState) summary(title string) string {
	p := s.game.Progress()
	return fmt.Sprintf("%s\nwave %d of %d, kills %d, gold %d, diamonds %d",
		title, p.Number, p.Total, s.game.Kills, s.game.Gold(), s.game.Diamonds())
}

func (s *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.Draw(screen)
	s.hud.Draw(screen, s.game)
}

func (s *GameState) Exit() {
	if s.game.Mode() == component.ModeEnd {
		log.Printf("[%s] run ended: %d kills", s.game.Session.ShortID(), s.game.Kills)
	}
}

// Game дает доступ к симуляции для оверлеев.
func (s *GameState) Game() *app.Game {
	return s.game
}
