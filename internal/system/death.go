// internal/system/death.go
package system

import (
	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/types"
	"go-wave-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// DeathReport — итог смерти одного врага. Игра забирает отчеты в том же
// кадре: начисляет золото, ускоряет спавнер, шлет события.
type DeathReport struct {
	EnemyID       types.EntityID
	DefID         string
	Position      mgl64.Vec3
	Wave          int
	Gold          int
	Chest         types.EntityID // 0, если сундук не выпал
	Exploded      []types.EntityID
	Split         []types.EntityID
	ChainReaction bool
}

// DeathSystem проводит врагов с нулевым здоровьем через конвейер смерти.
// Каждая смерть отрабатывает целиком, прежде чем начнется следующая.
type DeathSystem struct {
	ecs     *entity.ECS
	session *session.GameSession
	enemies *EnemySystem
	area    *AreaAttackSystem
	chests  *ChestSystem
}

func NewDeathSystem(ecs *entity.ECS, sess *session.GameSession, enemies *EnemySystem,
	area *AreaAttackSystem, chests *ChestSystem) *DeathSystem {
	return &DeathSystem{ecs: ecs, session: sess, enemies: enemies, area: area, chests: chests}
}

// Update вызывается раз в кадр. Враги, убитые взрывом или цепной реакцией,
// обрабатываются в этом же кадре.
func (s *DeathSystem) Update() []DeathReport {
	var reports []DeathReport
	for {
		id, ok := s.nextDead()
		if !ok {
			break
		}
		reports = append(reports, s.process(id))
	}
	return reports
}

func (s *DeathSystem) nextDead() (types.EntityID, bool) {
	for _, id := range s.ecs.EnemyIDs() {
		if h, ok := s.ecs.Healths[id]; !ok || h.Value <= 0 {
			return id, true
		}
	}
	return 0, false
}

func (s *DeathSystem) process(id types.EntityID) DeathReport {
	enemy := s.ecs.Enemies[id]
	enemy.State = component.EnemyDying

	var pos mgl64.Vec3
	scale := 1.0
	if t, ok := s.ecs.Transforms[id]; ok {
		pos = t.Position
		scale = t.Scale
	}
	report := DeathReport{EnemyID: id, DefID: enemy.DefID, Position: pos, Wave: enemy.Wave}

	// Снимок до детей чемпиона: взрыв и цепная реакция их не задевают
	snapshot := s.ecs.EnemyIDs()

	if behavior, ok := s.enemies.Behavior(id); ok {
		behavior.OnDeath(s.enemies, id)
	}

	rng := s.session.Rng
	mods := enemy.Modifiers

	// 1. золото
	report.Gold = int(float64(utils.RangeInt(rng, enemy.MinGold, enemy.MaxGold)) * mods.Gold)

	// 2. сундук
	if utils.Chance(rng, enemy.ChestChance) {
		if kind := s.chests.Roll(); kind != "" {
			report.Chest = s.chests.Drop(pos, kind)
		}
	}

	// 3. взрыв
	if mods.ExplodeOnDeath {
		report.Exploded = s.area.Blast(pos, mods.ExplosionRadius, mods.ExplosionDamage, snapshot, id, "explosion")
	}

	// 4. деление
	if enemy.SplitOnDeath && enemy.Generation < config.MaxSplitGeneration {
		childMods := mods
		childMods.SplitOnDeath = true
		for i := 0; i < config.SplitCopies; i++ {
			offset := utils.RandomPlanarDirection(rng).Mul(config.SplitOffsetRadius)
			if copyID, ok := s.enemies.SpawnChild(enemy.DefID, pos.Add(offset), childMods,
				enemy.Generation+1, scale*config.SplitScale, mgl64.Vec3{}); ok {
				report.Split = append(report.Split, copyID)
			}
		}
	}

	// 5. цепная реакция
	if s.session.Buffs.RollChainReaction(rng) {
		report.ChainReaction = true
		s.area.Blast(pos, config.ChainReactionRadius, config.ChainReactionDamage, snapshot, id, "chain_reaction")
	}

	// 6. удаление
	s.enemies.Remove(id)
	return report
}
