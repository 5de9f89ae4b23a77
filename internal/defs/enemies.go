// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Behavior    BehaviorKind `yaml:"behavior"`
	Health      int          `yaml:"health"`
	Speed       float64      `yaml:"speed"`
	Damage      int          `yaml:"damage"`
	Scale       float64      `yaml:"scale"`
	MinGold     int          `yaml:"min_gold"`
	MaxGold     int          `yaml:"max_gold"`
	ChestChance float64      `yaml:"chest_chance"`

	Ranged   *RangedParams   `yaml:"ranged,omitempty"`
	Dodger   *DodgerParams   `yaml:"dodger,omitempty"`
	Buffer   *BufferParams   `yaml:"buffer,omitempty"`
	Champion *ChampionParams `yaml:"champion,omitempty"`
}

// RangedParams настраивает стрелка: держит дистанцию и стреляет.
type RangedParams struct {
	PreferredDistance float64 `yaml:"preferred_distance"`
	RetreatDistance   float64 `yaml:"retreat_distance"`
	FireRate          float64 `yaml:"fire_rate"` // выстрелов в секунду
	ProjectileSpeed   float64 `yaml:"projectile_speed"`
	ProjectileDamage  int     `yaml:"projectile_damage"`
}

// DodgerParams настраивает уклониста: стрейф вбок с периодической сменой стороны.
type DodgerParams struct {
	StrafeAmplitude float64 `yaml:"strafe_amplitude"`
	StrafeFrequency float64 `yaml:"strafe_frequency"` // смен направления в секунду
	SpeedBoost      float64 `yaml:"speed_boost"`
}

// BufferParams настраивает баффера, который ускоряет соседей аурой.
type BufferParams struct {
	Radius     float64 `yaml:"radius"`
	Multiplier float64 `yaml:"multiplier"`
	Interval   float64 `yaml:"interval"`
}

// ChampionParams настраивает чемпиона, который при смерти выпускает детей.
type ChampionParams struct {
	ChildID     string  `yaml:"child_id"`
	MinChildren int     `yaml:"min_children"`
	MaxChildren int     `yaml:"max_children"`
	MinPush     float64 `yaml:"min_push"`
	MaxPush     float64 `yaml:"max_push"`
}
