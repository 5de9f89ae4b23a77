package component

import (
	"math"

	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/types"
)

// Weapon — экземпляр оружия игрока. Апгрейды меняют его на месте.
type Weapon struct {
	Kind    defs.WeaponKind
	Def     defs.WeaponDefinition
	Enabled bool

	DamageMultiplier   float64
	CooldownMultiplier float64
	BonusProjectiles   int
	Tier               int

	NextAttackTime float64

	// Взмах меча
	Swinging    bool
	SwingEndsAt float64
	SwingHits   map[types.EntityID]bool
}

// NewWeapon создает включенное оружие без апгрейдов.
func NewWeapon(def defs.WeaponDefinition) *Weapon {
	return &Weapon{
		Kind:               def.Kind,
		Def:                def,
		Enabled:            true,
		DamageMultiplier:   1,
		CooldownMultiplier: 1,
	}
}

// EffectiveDamage = round(base * damageMultiplier).
func (w *Weapon) EffectiveDamage() int {
	return int(math.Round(float64(w.Def.Damage) * w.DamageMultiplier))
}

// EffectiveCooldown = base * cooldownMultiplier.
func (w *Weapon) EffectiveCooldown() float64 {
	return w.Def.Cooldown * w.CooldownMultiplier
}

// ProjectileCount — сколько снарядов за выстрел.
func (w *Weapon) ProjectileCount() int {
	n := w.Def.Pellets + w.BonusProjectiles
	if n < 1 {
		n = 1
	}
	return n
}

// ApplyUpgrade заменяет множители значениями ступени и сдвигает счетчик.
func (w *Weapon) ApplyUpgrade(tier defs.UpgradeTier) {
	w.DamageMultiplier = tier.DamageMultiplier
	w.CooldownMultiplier = tier.CooldownMultiplier
	w.BonusProjectiles = tier.BonusProjectiles
	w.Tier++
}
