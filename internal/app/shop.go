// internal/app/shop.go
package app

import (
	"go-wave-arena/internal/component"
	"go-wave-arena/internal/defs"
)

// Покупки доступны только в режиме магазина. Обмен золота на алмазы
// работает и в бою.

func (g *Game) inShop() bool {
	return g.ModeSystem.Current() == component.ModeShop
}

// BuyBuff покупает уровень постоянного баффа за алмазы.
func (g *Game) BuyBuff(kind defs.BuffKind) bool {
	if !g.inShop() {
		return false
	}
	return g.Session.Buffs.Purchase(g.Session.Ledger, kind)
}

// BuyWeapon покупает оружие за золото.
func (g *Game) BuyWeapon(kind defs.WeaponKind) bool {
	if !g.inShop() {
		return false
	}
	return g.PlayerSystem.BuyWeapon(kind)
}

// UpgradeWeapon покупает следующую ступень апгрейда за алмазы.
// Оружие должно быть куплено.
func (g *Game) UpgradeWeapon(kind defs.WeaponKind) bool {
	if !g.inShop() {
		return false
	}
	player, ok := g.ECS.Player()
	if !ok {
		return false
	}
	weapon, owned := player.Weapon(kind)
	if !owned {
		return false
	}
	return g.UpgradeSystem.Upgrade(kind, weapon)
}

func (g *Game) BuyFrost() bool {
	if !g.inShop() {
		return false
	}
	return g.AbilitySystem.BuyFrost()
}

func (g *Game) BuyExplosion() bool {
	if !g.inShop() {
		return false
	}
	return g.AbilitySystem.BuyExplosion()
}

func (g *Game) BuyMine() bool {
	if !g.inShop() {
		return false
	}
	return g.MineSystem.Buy()
}

func (g *Game) UpgradeMines() bool {
	if !g.inShop() {
		return false
	}
	return g.MineSystem.Upgrade()
}

// Convert меняет золото на алмаз в любом активном режиме.
func (g *Game) Convert() bool {
	mode := g.ModeSystem.Current()
	if mode != component.ModeActive && mode != component.ModeShop {
		return false
	}
	return g.AbilitySystem.Convert()
}
