// internal/ui/shop_panel.go
package ui

import (
	"fmt"
	"math"

	"go-wave-arena/internal/app"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelWidth     = 420
	panelMargin    = 10
	animationSpeed = 30.0
	lineHeight     = 18
)

// ShopKeys — подписи клавиш покупки, по порядку defs.WeaponKinds / defs.BuffKinds.
var (
	WeaponKeys  = []string{"1", "2", "3", "4"}
	UpgradeKeys = []string{"Q", "W", "E", "R"}
	BuffKeys    = []string{"F1", "F2", "F3", "F4", "F5", "F6", "F7"}
)

// ShopPanel выезжает справа, пока открыт магазин.
type ShopPanel struct {
	face     font.Face
	currentX float64
	targetX  float64
}

func NewShopPanel(face font.Face) *ShopPanel {
	return &ShopPanel{face: face, currentX: config.ScreenWidth, targetX: config.ScreenWidth}
}

func (p *ShopPanel) Show() { p.targetX = config.ScreenWidth - panelWidth }
func (p *ShopPanel) Hide() { p.targetX = config.ScreenWidth }

func (p *ShopPanel) Visible() bool { return p.currentX < config.ScreenWidth }

func (p *ShopPanel) Update() {
	diff := p.targetX - p.currentX
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentX = p.targetX
	case diff > 0:
		p.currentX += animationSpeed
	default:
		p.currentX -= animationSpeed
	}
}

func (p *ShopPanel) Draw(screen *ebiten.Image, g *app.Game) {
	if !p.Visible() {
		return
	}
	x := float32(p.currentX)
	vector.DrawFilledRect(screen, x, 0, panelWidth, config.ScreenHeight, config.BackgroundColor, false)
	vector.StrokeLine(screen, x, 0, x, config.ScreenHeight, 2, config.ChestColor, false)

	tx := int(p.currentX) + panelMargin
	y := 30
	line := func(s string) {
		text.Draw(screen, s, p.face, tx, y, config.TextLightColor)
		y += lineHeight
	}

	line(fmt.Sprintf("SHOP   gold %d   diamonds %d", g.Gold(), g.Diamonds()))
	line("")
	line("Weapons (gold) / upgrades (diamonds)")
	player, _ := g.ECS.Player()
	for i, kind := range defs.WeaponKinds {
		def, ok := g.Session.Library.Weapons[kind]
		if !ok {
			continue
		}
		status := fmt.Sprintf("[%s] buy %dg", WeaponKeys[i], def.Cost)
		if player != nil {
			if _, owned := player.Weapon(kind); owned {
				status = "owned"
				if tier, ok := g.UpgradeSystem.NextTier(kind); ok {
					status += fmt.Sprintf("  [%s] tier %d: %dd", UpgradeKeys[i],
						g.UpgradeSystem.CurrentTier(kind)+1, tier.DiamondCost)
				} else {
					status += "  max"
				}
			}
		}
		line(fmt.Sprintf("  %-16s %s", def.Name, status))
	}

	line("")
	line("Buffs (diamonds)")
	for i, kind := range defs.BuffKinds {
		line(fmt.Sprintf("  [%s] %-18s lvl %d  %dd", BuffKeys[i], kind,
			g.Session.Buffs.Level(kind), g.Session.Buffs.Cost(kind)))
	}

	line("")
	line("Abilities (gold)")
	line(fmt.Sprintf("  [Z] frost %dg      charges %d", config.FrostCost, g.AbilitySystem.FrostCharges()))
	line(fmt.Sprintf("  [X] explosion %dg  charges %d", config.ExplosionCost, g.AbilitySystem.ExplosionCharges()))

	line("")
	line("  " + g.MineSystem.Label())
	line("  [M] buy mine  [U] upgrade mines")
	line(fmt.Sprintf("  [C] convert %d gold -> 1 diamond", config.ConversionRate))
	line("")
	line("[Tab] close")
}
