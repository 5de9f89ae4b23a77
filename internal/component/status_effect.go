// internal/component/status_effect.go
package component

// Frozen — враг заморожен способностью до момента Until.
type Frozen struct {
	Until float64
}

// AuraEffect — бонус скорости от соседа-баффера. Живет, пока его обновляют.
type AuraEffect struct {
	SpeedMultiplier float64
	ExpiresAt       float64
}

// SpeedBuff — временная прибавка к скорости игрока из сундука.
type SpeedBuff struct {
	Bonus     float64
	ExpiresAt float64
}

// AttackSpeedBuff — временное ускорение перезарядки оружия.
type AttackSpeedBuff struct {
	Multiplier float64
	ExpiresAt  float64
}
