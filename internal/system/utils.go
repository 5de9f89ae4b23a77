// internal/system/utils.go
package system

import (
	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/types"
)

// ApplyDamage наносит урон сущности. Здоровье не уходит ниже нуля.
// Возвращает фактически снятое здоровье.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) int {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || damage <= 0 || health.Value <= 0 {
		return 0
	}

	dealt := damage
	if dealt > health.Value {
		dealt = health.Value
	}
	health.Value -= dealt

	// Добавляем или сбрасываем компонент "вспышки"
	ecs.DamageFlashes[entityID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}
	return dealt
}

// HitEnemy — попадание оружия игрока. Бонусы баффов считаются здесь, в момент
// удара, а не при выстреле: золото за время полета могло измениться.
func HitEnemy(ecs *entity.ECS, sess *session.GameSession, enemyID types.EntityID, effectiveDamage int) int {
	if _, ok := ecs.Enemies[enemyID]; !ok {
		return 0
	}
	scale := 1.0
	if t, ok := ecs.Transforms[enemyID]; ok {
		scale = t.Scale
	}
	damage := sess.Buffs.ResolveImpact(effectiveDamage, sess.Ledger.Gold(), scale)
	return ApplyDamage(ecs, enemyID, damage)
}

// enemyTarget позволяет реестру баффов ранить конкретного врага.
type enemyTarget struct {
	ecs *entity.ECS
	id  types.EntityID
}

func (t enemyTarget) TakeDamage(amount int) {
	ApplyDamage(t.ecs, t.id, amount)
}
