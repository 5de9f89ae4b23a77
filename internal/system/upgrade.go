// internal/system/upgrade.go
package system

import (
	"go-wave-arena/internal/component"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/economy"
)

// UpgradeSystem ведет ступени апгрейда по видам оружия.
// Ступени идут строго по порядку, виды друг от друга не зависят.
type UpgradeSystem struct {
	tiers  map[defs.WeaponKind][]defs.UpgradeTier
	wallet economy.Spender
	index  map[defs.WeaponKind]int
}

func NewUpgradeSystem(tiers map[defs.WeaponKind][]defs.UpgradeTier, wallet economy.Spender) *UpgradeSystem {
	return &UpgradeSystem{
		tiers:  tiers,
		wallet: wallet,
		index:  make(map[defs.WeaponKind]int),
	}
}

// CurrentTier — сколько ступеней уже куплено (по умолчанию 0).
func (s *UpgradeSystem) CurrentTier(kind defs.WeaponKind) int {
	return s.index[kind]
}

// TierCount — сколько ступеней настроено для вида.
func (s *UpgradeSystem) TierCount(kind defs.WeaponKind) int {
	return len(s.tiers[kind])
}

// NextTier возвращает следующую ступень, если она есть.
func (s *UpgradeSystem) NextTier(kind defs.WeaponKind) (defs.UpgradeTier, bool) {
	list := s.tiers[kind]
	i := s.index[kind]
	if i >= len(list) {
		return defs.UpgradeTier{}, false
	}
	return list[i], true
}

// CanUpgrade: следующая ступень есть и алмазов хватает.
func (s *UpgradeSystem) CanUpgrade(kind defs.WeaponKind) bool {
	tier, ok := s.NextTier(kind)
	if !ok {
		return false
	}
	return s.wallet.CanSpend(economy.Diamonds, tier.DiamondCost)
}

// Upgrade списывает алмазы, применяет ступень к оружию и сдвигает индекс.
func (s *UpgradeSystem) Upgrade(kind defs.WeaponKind, weapon *component.Weapon) bool {
	if weapon == nil || weapon.Kind != kind {
		return false
	}
	tier, ok := s.NextTier(kind)
	if !ok {
		return false
	}
	if !s.wallet.Spend(economy.Diamonds, tier.DiamondCost) {
		return false
	}
	weapon.ApplyUpgrade(tier)
	s.index[kind]++
	return true
}
