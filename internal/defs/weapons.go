package defs

// WeaponDefinition holds the base stats of a weapon kind.
type WeaponDefinition struct {
	Kind     WeaponKind  `yaml:"kind"`
	Name     string      `yaml:"name"`
	Style    AttackStyle `yaml:"style"`
	Cost     int         `yaml:"cost"` // в золоте
	Damage   int         `yaml:"damage"`
	Cooldown float64     `yaml:"cooldown"`

	// Снаряды
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	Lifetime        float64 `yaml:"lifetime"`
	Pellets         int     `yaml:"pellets"`
	SpreadDegrees   float64 `yaml:"spread_degrees"`
	ExplosionRadius float64 `yaml:"explosion_radius"`

	// Ближний бой
	SwingDuration float64 `yaml:"swing_duration"`
	Reach         float64 `yaml:"reach"`
}

// UpgradeTier is one step of a weapon's upgrade ladder.
type UpgradeTier struct {
	DiamondCost        int     `yaml:"diamond_cost"`
	DamageMultiplier   float64 `yaml:"damage_multiplier"`
	CooldownMultiplier float64 `yaml:"cooldown_multiplier"`
	BonusProjectiles   int     `yaml:"bonus_projectiles"`
	Description        string  `yaml:"description"`
}
