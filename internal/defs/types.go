// internal/defs/types.go
package defs

// WeaponKind identifies a weapon family. Upgrade tiers are tracked per kind.
type WeaponKind string

const (
	WeaponSword          WeaponKind = "sword"
	WeaponPistol         WeaponKind = "pistol"
	WeaponShotgun        WeaponKind = "shotgun"
	WeaponRocketLauncher WeaponKind = "rocket_launcher"
)

// WeaponKinds lists every weapon kind in shop order.
var WeaponKinds = []WeaponKind{WeaponSword, WeaponPistol, WeaponShotgun, WeaponRocketLauncher}

// AttackStyle defines how a weapon delivers damage.
type AttackStyle string

const (
	AttackMelee     AttackStyle = "melee"
	AttackHoming    AttackStyle = "homing"
	AttackSpread    AttackStyle = "spread"
	AttackExplosive AttackStyle = "explosive"
)

// BuffKind identifies a persistent player buff bought with diamonds.
type BuffKind string

const (
	BuffFireTouch       BuffKind = "fire_touch"
	BuffMoneyIsStrength BuffKind = "money_is_strength"
	BuffExtraLife       BuffKind = "extra_life"
	BuffVampire         BuffKind = "vampire"
	BuffThorns          BuffKind = "thorns"
	BuffChainReaction   BuffKind = "chain_reaction"
	BuffGiantSlayer     BuffKind = "giant_slayer"
)

// BuffKinds lists every buff kind in shop order.
var BuffKinds = []BuffKind{
	BuffFireTouch,
	BuffMoneyIsStrength,
	BuffExtraLife,
	BuffVampire,
	BuffThorns,
	BuffChainReaction,
	BuffGiantSlayer,
}

// BehaviorKind selects the behavior strategy an enemy runs.
type BehaviorKind string

const (
	BehaviorMelee    BehaviorKind = "melee"
	BehaviorRanged   BehaviorKind = "ranged"
	BehaviorDodger   BehaviorKind = "dodger"
	BehaviorBuffer   BehaviorKind = "buffer"
	BehaviorChampion BehaviorKind = "champion"
)

// ChestKind identifies the timed buff a loot chest grants.
type ChestKind string

const (
	ChestSpeed       ChestKind = "speed"
	ChestAttackSpeed ChestKind = "attack_speed"
)
