// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/interfaces"
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

var _ interfaces.ProximityQuery = (*ECS)(nil)

type ECS struct {
	GameTime         float64
	NextID           types.EntityID
	PlayerID         types.EntityID
	Transforms       map[types.EntityID]*component.Transform
	Velocities       map[types.EntityID]*component.Velocity
	Healths          map[types.EntityID]*component.Health
	Renderables      map[types.EntityID]*component.Renderable
	Enemies          map[types.EntityID]*component.Enemy
	Projectiles      map[types.EntityID]*component.Projectile
	Players          map[types.EntityID]*component.Player
	Chests           map[types.EntityID]*component.Chest
	Frozen           map[types.EntityID]*component.Frozen
	AuraEffects      map[types.EntityID]*component.AuraEffect
	SpeedBuffs       map[types.EntityID]*component.SpeedBuff
	AttackSpeedBuffs map[types.EntityID]*component.AttackSpeedBuff
	DamageFlashes    map[types.EntityID]*component.DamageFlash
	Texts            map[types.EntityID]*component.FloatingText
	AoeEffects       map[types.EntityID]*component.AoeEffect
	Wave             *component.WaveProgress
	Mode             component.GameMode
}

func NewECS() *ECS {
	return &ECS{
		NextID:           1,
		Transforms:       make(map[types.EntityID]*component.Transform),
		Velocities:       make(map[types.EntityID]*component.Velocity),
		Healths:          make(map[types.EntityID]*component.Health),
		Renderables:      make(map[types.EntityID]*component.Renderable),
		Enemies:          make(map[types.EntityID]*component.Enemy),
		Projectiles:      make(map[types.EntityID]*component.Projectile),
		Players:          make(map[types.EntityID]*component.Player),
		Chests:           make(map[types.EntityID]*component.Chest),
		Frozen:           make(map[types.EntityID]*component.Frozen),
		AuraEffects:      make(map[types.EntityID]*component.AuraEffect),
		SpeedBuffs:       make(map[types.EntityID]*component.SpeedBuff),
		AttackSpeedBuffs: make(map[types.EntityID]*component.AttackSpeedBuff),
		DamageFlashes:    make(map[types.EntityID]*component.DamageFlash),
		Texts:            make(map[types.EntityID]*component.FloatingText),
		AoeEffects:       make(map[types.EntityID]*component.AoeEffect),
		Wave:             &component.WaveProgress{},
		Mode:             component.ModeActive,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// DestroyEntity удаляет все компоненты сущности.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Players, id)
	delete(ecs.Chests, id)
	delete(ecs.Frozen, id)
	delete(ecs.AuraEffects, id)
	delete(ecs.SpeedBuffs, id)
	delete(ecs.AttackSpeedBuffs, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Texts, id)
	delete(ecs.AoeEffects, id)
}

// Player возвращает компонент игрока, если он есть.
func (ecs *ECS) Player() (*component.Player, bool) {
	p, ok := ecs.Players[ecs.PlayerID]
	return p, ok
}

// EnemyIDs возвращает живых врагов по возрастанию ID: порядок обработки детерминирован.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// LiveEnemyCount — сколько врагов еще на арене.
func (ecs *ECS) LiveEnemyCount() int {
	return len(ecs.Enemies)
}

// EntitiesWithin возвращает врагов, чья позиция по плоскости не дальше radius.
func (ecs *ECS) EntitiesWithin(pos mgl64.Vec3, radius float64) []types.EntityID {
	r2 := radius * radius
	var out []types.EntityID
	for id := range ecs.Enemies {
		t, ok := ecs.Transforms[id]
		if !ok {
			continue
		}
		dx := t.Position.X() - pos.X()
		dz := t.Position.Z() - pos.Z()
		if dx*dx+dz*dz <= r2 {
			out = append(out, id)
		}
	}
	sortIDs(out)
	return out
}

// ClosestEnemy возвращает ближайшего живого врага к точке. Убитые в этом кадре
// ждут конвейера смерти и целью не считаются.
func (ecs *ECS) ClosestEnemy(pos mgl64.Vec3) (types.EntityID, bool) {
	var best types.EntityID
	bestDist := -1.0
	for _, id := range ecs.EnemyIDs() {
		t, ok := ecs.Transforms[id]
		if !ok {
			continue
		}
		if h, ok := ecs.Healths[id]; ok && !h.Alive() {
			continue
		}
		dx := t.Position.X() - pos.X()
		dz := t.Position.Z() - pos.Z()
		d := dx*dx + dz*dz
		if bestDist < 0 || d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, bestDist >= 0
}

// ClearEnemies убирает всех врагов и их снаряды (сброс волны).
func (ecs *ECS) ClearEnemies() {
	for id := range ecs.Enemies {
		ecs.DestroyEntity(id)
	}
	for id, p := range ecs.Projectiles {
		if p.Owner == component.OwnedByEnemy {
			ecs.DestroyEntity(id)
		}
	}
}

func sortIDs(ids []types.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
