// internal/event/types.go
package event

import (
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	GoldAwarded     EventType = "GoldAwarded"
	ChestDropped    EventType = "ChestDropped"
	ChestPicked     EventType = "ChestPicked"
	EnemySpawned    EventType = "EnemySpawned"
	EnemyKilled     EventType = "EnemyKilled"
	WaveStarted     EventType = "WaveStarted"
	WaveCleared     EventType = "WaveCleared"
	RunCompleted    EventType = "RunCompleted"
	PlayerDied      EventType = "PlayerDied"
	ExtraLifeUsed   EventType = "ExtraLifeUsed"
	EffectRequested EventType = "EffectRequested"
)

// GoldPayload — данные GoldAwarded.
type GoldPayload struct {
	Amount   int
	Position mgl64.Vec3
}

// EnemyPayload — данные EnemySpawned / EnemyKilled.
type EnemyPayload struct {
	ID       types.EntityID
	DefID    string
	Position mgl64.Vec3
}

// ChestPayload — данные ChestDropped / ChestPicked.
type ChestPayload struct {
	ID       types.EntityID
	Kind     defs.ChestKind
	Position mgl64.Vec3
}

// WavePayload — данные WaveStarted / WaveCleared / RunCompleted.
type WavePayload struct {
	Number int
	Name   string
}

// EffectPayload — данные EffectRequested.
type EffectPayload struct {
	Name     string
	Position mgl64.Vec3
	Radius   float64
}
