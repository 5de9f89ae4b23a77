package defs

import (
	"go-wave-arena/internal/config"
	"strings"
)

// ModifierType is the identity of a wave modifier.
type ModifierType string

const (
	ModifierAntInvasion     ModifierType = "ant_invasion"
	ModifierMatryoshka      ModifierType = "matryoshka"
	ModifierThiccBoys       ModifierType = "thicc_boys"
	ModifierExplosiveFinale ModifierType = "explosive_finale"
	ModifierSpeedDating     ModifierType = "speed_dating"
	ModifierBouncers        ModifierType = "bouncers"
	ModifierJackpot         ModifierType = "jackpot"
	ModifierGhostProtocol   ModifierType = "ghost_protocol"
)

// WaveModifierDefinition is immutable configuration for one wave modifier.
// Zero multipliers in YAML mean "not set" and are normalized to 1.
type WaveModifierDefinition struct {
	Type                ModifierType `yaml:"type"`
	DisplayName         string       `yaml:"display_name"`
	Description         string       `yaml:"description"`
	ScaleMultiplier     float64      `yaml:"scale"`
	CountMultiplier     float64      `yaml:"count"`
	HealthMultiplier    float64      `yaml:"health"`
	SpeedMultiplier     float64      `yaml:"speed"`
	GoldMultiplier      float64      `yaml:"gold"`
	KnockbackMultiplier float64      `yaml:"knockback"`
	Transparency        float64      `yaml:"transparency"`
	SplitOnDeath        bool         `yaml:"split_on_death"`
	ExplodeOnDeath      bool         `yaml:"explode_on_death"`
	ExplosionRadius     float64      `yaml:"explosion_radius"`
	ExplosionDamage     int          `yaml:"explosion_damage"`
}

// NewModifierDefinition returns a definition with every multiplier at 1.
func NewModifierDefinition(t ModifierType, name string) WaveModifierDefinition {
	d := WaveModifierDefinition{Type: t, DisplayName: name}
	d.normalize()
	return d
}

func (d *WaveModifierDefinition) normalize() {
	for _, m := range []*float64{
		&d.ScaleMultiplier, &d.CountMultiplier, &d.HealthMultiplier,
		&d.SpeedMultiplier, &d.GoldMultiplier, &d.KnockbackMultiplier,
	} {
		if *m == 0 {
			*m = 1
		}
	}
	if d.ExplosionRadius == 0 {
		d.ExplosionRadius = config.DefaultExplosionRadius
	}
	if d.ExplosionDamage == 0 {
		d.ExplosionDamage = config.DefaultExplosionDamage
	}
}

// ActiveModifierSet is the combination of the modifiers rolled for one wave.
// Enemies copy it at spawn time.
type ActiveModifierSet struct {
	Modifiers       []WaveModifierDefinition
	Scale           float64
	Count           float64
	Health          float64
	Speed           float64
	Gold            float64
	Knockback       float64
	Transparency    float64
	SplitOnDeath    bool
	ExplodeOnDeath  bool
	ExplosionRadius float64
	ExplosionDamage int
}

// IdentityModifierSet returns the set used when no modifier is active.
func IdentityModifierSet() ActiveModifierSet {
	return ActiveModifierSet{
		Scale:           1,
		Count:           1,
		Health:          1,
		Speed:           1,
		Gold:            1,
		Knockback:       1,
		ExplosionRadius: config.DefaultExplosionRadius,
		ExplosionDamage: config.DefaultExplosionDamage,
	}
}

// CombineModifiers multiplies the factors of every definition, takes the
// maximum of transparency and explosion parameters and ORs the flags.
func CombineModifiers(mods ...WaveModifierDefinition) ActiveModifierSet {
	set := IdentityModifierSet()
	for _, m := range mods {
		set.Scale *= m.ScaleMultiplier
		set.Count *= m.CountMultiplier
		set.Health *= m.HealthMultiplier
		set.Speed *= m.SpeedMultiplier
		set.Gold *= m.GoldMultiplier
		set.Knockback *= m.KnockbackMultiplier

		if m.Transparency > set.Transparency {
			set.Transparency = m.Transparency
		}
		if m.SplitOnDeath {
			set.SplitOnDeath = true
		}
		if m.ExplodeOnDeath {
			set.ExplodeOnDeath = true
			if m.ExplosionRadius > set.ExplosionRadius {
				set.ExplosionRadius = m.ExplosionRadius
			}
			if m.ExplosionDamage > set.ExplosionDamage {
				set.ExplosionDamage = m.ExplosionDamage
			}
		}
	}
	set.Modifiers = append([]WaveModifierDefinition(nil), mods...)
	return set
}

// Announcement joins the name and description of every active modifier.
func (s ActiveModifierSet) Announcement() string {
	if len(s.Modifiers) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range s.Modifiers {
		b.WriteString(m.DisplayName)
		b.WriteString("\n")
		b.WriteString(m.Description)
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}

// IsIdentity reports whether no modifier is active.
func (s ActiveModifierSet) IsIdentity() bool {
	return len(s.Modifiers) == 0
}
