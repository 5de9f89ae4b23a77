package ui

import (
	"fmt"
	"strings"

	"go-wave-arena/internal/app"
	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD собирает индикаторы боевого экрана.
type HUD struct {
	face   font.Face
	mode   *ModeIndicator
	wave   *WaveIndicator
	health *PlayerHealthIndicator
	shop   *ShopPanel
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		face:   face,
		mode:   NewModeIndicator(config.ScreenWidth-30, 30, 12),
		wave:   NewWaveIndicator(config.ScreenWidth/2-60, 30),
		health: NewPlayerHealthIndicator(20, 40),
		shop:   NewShopPanel(face),
	}
}

func (h *HUD) Update(g *app.Game) {
	if g.Mode() == component.ModeShop {
		h.shop.Show()
	} else {
		h.shop.Hide()
	}
	h.shop.Update()
}

func (h *HUD) Draw(screen *ebiten.Image, g *app.Game) {
	if hp, ok := g.PlayerSystem.Health(); ok {
		h.health.Draw(screen, h.face, hp.Value, hp.Max)
	}
	h.wave.Draw(screen, h.face, g.Progress())
	h.mode.Draw(screen, g.Mode())

	status := fmt.Sprintf("gold %d  diamonds %d  kills %d  frost %d [F]  boom %d [G]",
		g.Gold(), g.Diamonds(), g.Kills, g.AbilitySystem.FrostCharges(), g.AbilitySystem.ExplosionCharges())
	text.Draw(screen, status, h.face, 20, config.ScreenHeight-40, config.TextLightColor)
	text.Draw(screen, "[WASD] move  [Tab] shop  [Esc] menu  [C] convert", h.face, 20, config.ScreenHeight-20, config.TextLightColor)

	// объявление модификаторов по центру
	y := config.ScreenHeight/2 - 120
	for _, line := range strings.Split(g.Announcement(), "\n") {
		if line == "" {
			continue
		}
		text.Draw(screen, line, h.face, config.ScreenWidth/2-150, y, config.HostileColor)
		y += lineHeight
	}

	h.shop.Draw(screen, g)
}
