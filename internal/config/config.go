// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1200
	ScreenHeight  = 900
	WorldScale    = 12.0 // пикселей на единицу мира в отладочной отрисовке
	CameraCenterZ = 8.0  // точка арены в центре экрана

	MaxDeltaTime  = 0.06
	FixedTimeStep = 0.02 // шаг физики, как у движка-хоста

	// Волны
	TimeBetweenRounds    = 60  // секунд обратного отсчёта перед волной
	AnnouncementDuration = 3.0 // сколько секунд показывается объявление модификаторов
	GroupPause           = 3.0 // пауза между группами врагов в манифесте
	SpawnRadius          = 10.0

	BaseSpawnDelay            = 0.5
	MinSpawnDelay             = 0.1
	KillAccelerationFactor    = 0.85
	DefaultExplosionRadius    = 3.0
	DefaultExplosionDamage    = 2
	MaxModifiersPerWave       = 2
	GiantSlayerScaleThreshold = 1.05

	// Враги
	EnemyHitCooldown     = 1.5
	EnemyContactRadius   = 1.2
	AuraBuffLifetime     = 1.0
	MaxSplitGeneration   = 2
	SplitCopies          = 2
	SplitScale           = 0.6
	SplitOffsetRadius    = 1.0
	ChainReactionRadius  = 5.0
	ChainReactionDamage  = 2
	MoveEpsilonSq        = 0.0001
	EnemyProjectileLife  = 5.0
	EnemyProjectileRange = 0.8
	ChampionImpulseDecay = 4.0
	ChampionSpawnSpread  = 1.5

	// Игрок
	PlayerMaxHealth      = 20
	PlayerMoveSpeed      = 5.0
	KnockbackDamping     = 8.0
	ChestPickupRadius    = 1.5
	ChestLifetime        = 10.0
	SpeedBuffBonus       = 1.5
	AttackSpeedBuffBonus = 1.5
	ChestBuffDuration    = 10.0

	// Оружие
	StartingWeapon      = "sword"
	ProjectileHitRadius = 0.75
	BulletLifetime      = 3.0
	PelletLifetime      = 1.5
	RocketLifetime      = 5.0

	// Способности
	FrostCost          = 15
	FrostDuration      = 4.0
	ExplosionCost      = 20
	ExplosionRadius    = 8.0
	ExplosionDamage    = 3
	ConversionRate     = 10 // золота за один алмаз
	AbilityBoomEffect  = "boom"
	AbilityFrostEffect = "frost"

	// Эффекты
	DamageFlashDuration  = 0.15
	FloatingTextDuration = 1.2
	AoeEffectDuration    = 0.4

	// Шахты
	MineInitialCost        = 1
	MineUpgradeInitialCost = 4
	MineYieldInterval      = 5.0
	MineBaseYield          = 1
)

var (
	PlayerSpawnPoint = [3]float64{0, 0, -6}
	EnemySpawnPoint  = [3]float64{0, 0, 20}

	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	FrozenColor     = color.RGBA{120, 180, 255, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	HostileColor    = color.RGBA{255, 120, 0, 255}
	ChestColor      = color.RGBA{180, 50, 230, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	GoColor         = color.RGBA{127, 255, 0, 255}
)
