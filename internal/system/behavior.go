// internal/system/behavior.go
package system

import (
	"log"

	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/types"
	"go-wave-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	bt "github.com/joeycumines/go-behaviortree"
)

// Behavior — вариант поведения врага. Общая машина состояний EnemySystem
// вызывает его в точках расширения: кадр, намерение движения, смерть.
type Behavior interface {
	Kind() defs.BehaviorKind
	// Tick вызывается раз в кадр, пока враг активен и не заморожен.
	Tick(s *EnemySystem, id types.EntityID, toPlayer mgl64.Vec3, dist float64)
	// MoveIntent возвращает плоский вектор движения; длина - множитель скорости.
	MoveIntent(s *EnemySystem, id types.EntityID, toPlayer mgl64.Vec3, dist float64) mgl64.Vec3
	// ContactDamage: наносит ли враг урон касанием.
	ContactDamage() bool
	// OnDeath — дополнительный шаг перед общим конвейером смерти.
	OnDeath(s *EnemySystem, id types.EntityID)
}

// NewBehavior создает поведение по определению врага.
func NewBehavior(def defs.EnemyDefinition, rng utils.RandomSource, now float64) Behavior {
	switch def.Behavior {
	case defs.BehaviorRanged:
		if def.Ranged != nil {
			return newRangedBehavior(*def.Ranged)
		}
	case defs.BehaviorDodger:
		if def.Dodger != nil {
			return &DodgerBehavior{params: *def.Dodger, sign: 1, nextFlip: now + flipInterval(*def.Dodger)}
		}
	case defs.BehaviorBuffer:
		if def.Buffer != nil {
			return &BufferBehavior{params: *def.Buffer, nextPulse: now}
		}
	case defs.BehaviorChampion:
		if def.Champion != nil {
			return &ChampionBehavior{params: *def.Champion}
		}
	case defs.BehaviorMelee, "":
		return MeleeBehavior{}
	}
	log.Printf("enemy %s: behavior %q without parameters, falling back to melee", def.ID, def.Behavior)
	return MeleeBehavior{}
}

// MeleeBehavior идет прямо на игрока.
type MeleeBehavior struct{}

func (MeleeBehavior) Kind() defs.BehaviorKind { return defs.BehaviorMelee }

func (MeleeBehavior) Tick(*EnemySystem, types.EntityID, mgl64.Vec3, float64) {}

func (MeleeBehavior) MoveIntent(_ *EnemySystem, _ types.EntityID, toPlayer mgl64.Vec3, _ float64) mgl64.Vec3 {
	return toPlayer
}

func (MeleeBehavior) ContactDamage() bool { return true }

func (MeleeBehavior) OnDeath(*EnemySystem, types.EntityID) {}

// DodgerBehavior приближается, смещаясь вбок; сторона меняется каждые 1/freq секунд.
type DodgerBehavior struct {
	params   defs.DodgerParams
	sign     float64
	nextFlip float64
}

func flipInterval(p defs.DodgerParams) float64 {
	if p.StrafeFrequency <= 0 {
		return 1
	}
	return 1 / p.StrafeFrequency
}

func (b *DodgerBehavior) Kind() defs.BehaviorKind { return defs.BehaviorDodger }

func (b *DodgerBehavior) Tick(s *EnemySystem, _ types.EntityID, _ mgl64.Vec3, _ float64) {
	now := s.ecs.GameTime
	for now >= b.nextFlip {
		b.sign = -b.sign
		b.nextFlip += flipInterval(b.params)
	}
}

func (b *DodgerBehavior) MoveIntent(_ *EnemySystem, _ types.EntityID, toPlayer mgl64.Vec3, _ float64) mgl64.Vec3 {
	up := mgl64.Vec3{0, 1, 0}
	side := up.Cross(toPlayer).Mul(b.sign * b.params.StrafeAmplitude)
	dir := toPlayer.Add(side)
	if dir.LenSqr() < config.MoveEpsilonSq {
		return toPlayer
	}
	boost := b.params.SpeedBoost
	if boost <= 0 {
		boost = 1
	}
	return dir.Normalize().Mul(boost)
}

func (b *DodgerBehavior) ContactDamage() bool { return true }

func (b *DodgerBehavior) OnDeath(*EnemySystem, types.EntityID) {}

// Sign — текущая сторона смещения (+1 / -1).
func (b *DodgerBehavior) Sign() float64 { return b.sign }

type rangedMode int

const (
	rangedApproach rangedMode = iota
	rangedRetreat
	rangedHold
)

// RangedBehavior держит дистанцию в коридоре [retreat, preferred] и стреляет,
// когда стоит на месте. Решение принимает дерево поведения раз в кадр.
type RangedBehavior struct {
	params   defs.RangedParams
	tree     bt.Node
	mode     rangedMode
	nextShot float64

	// контекст текущего тика для листьев дерева
	sys      *EnemySystem
	id       types.EntityID
	toPlayer mgl64.Vec3
	dist     float64
}

func newRangedBehavior(p defs.RangedParams) *RangedBehavior {
	b := &RangedBehavior{params: p, mode: rangedApproach}
	b.tree = bt.New(
		bt.Selector,
		bt.New(bt.Sequence, b.condition(b.tooFar), b.action(rangedApproach)),
		bt.New(bt.Sequence, b.condition(b.tooClose), b.action(rangedRetreat)),
		bt.New(bt.Sequence, b.action(rangedHold), bt.New(b.fire)),
	)
	return b
}

func (b *RangedBehavior) condition(check func() bool) bt.Node {
	return bt.New(func(children []bt.Node) (bt.Status, error) {
		if check() {
			return bt.Success, nil
		}
		return bt.Failure, nil
	})
}

func (b *RangedBehavior) action(mode rangedMode) bt.Node {
	return bt.New(func(children []bt.Node) (bt.Status, error) {
		b.mode = mode
		return bt.Success, nil
	})
}

func (b *RangedBehavior) tooFar() bool   { return b.dist > b.params.PreferredDistance }
func (b *RangedBehavior) tooClose() bool { return b.dist < b.params.RetreatDistance }

// fire стреляет, если перезарядка прошла. Неготовность - не ошибка.
func (b *RangedBehavior) fire(children []bt.Node) (bt.Status, error) {
	now := b.sys.ecs.GameTime
	if now < b.nextShot {
		return bt.Success, nil
	}
	b.sys.FireProjectile(b.id, b.toPlayer, b.params.ProjectileSpeed, b.params.ProjectileDamage)
	if b.params.FireRate > 0 {
		b.nextShot = now + 1/b.params.FireRate
	} else {
		b.nextShot = now + 1
	}
	return bt.Success, nil
}

func (b *RangedBehavior) Kind() defs.BehaviorKind { return defs.BehaviorRanged }

func (b *RangedBehavior) Tick(s *EnemySystem, id types.EntityID, toPlayer mgl64.Vec3, dist float64) {
	b.sys, b.id, b.toPlayer, b.dist = s, id, toPlayer, dist
	if _, err := b.tree.Tick(); err != nil {
		log.Printf("ranged enemy %d: behavior tree error: %v", id, err)
	}
	b.sys = nil
}

func (b *RangedBehavior) MoveIntent(_ *EnemySystem, _ types.EntityID, toPlayer mgl64.Vec3, _ float64) mgl64.Vec3 {
	switch b.mode {
	case rangedApproach:
		return toPlayer
	case rangedRetreat:
		return toPlayer.Mul(-1)
	}
	return mgl64.Vec3{}
}

func (b *RangedBehavior) ContactDamage() bool { return true }

func (b *RangedBehavior) OnDeath(*EnemySystem, types.EntityID) {}

// BufferBehavior идет за игроком и раз в интервал обновляет ауру скорости
// соседям. Сам касанием не бьет.
type BufferBehavior struct {
	params    defs.BufferParams
	nextPulse float64
}

func (b *BufferBehavior) Kind() defs.BehaviorKind { return defs.BehaviorBuffer }

func (b *BufferBehavior) Tick(s *EnemySystem, id types.EntityID, _ mgl64.Vec3, _ float64) {
	now := s.ecs.GameTime
	if now < b.nextPulse {
		return
	}
	s.auras.RefreshAround(id, b.params.Radius, b.params.Multiplier)
	interval := b.params.Interval
	if interval <= 0 {
		interval = config.AuraBuffLifetime / 2
	}
	b.nextPulse = now + interval
}

func (b *BufferBehavior) MoveIntent(_ *EnemySystem, _ types.EntityID, toPlayer mgl64.Vec3, _ float64) mgl64.Vec3 {
	return toPlayer
}

func (b *BufferBehavior) ContactDamage() bool { return false }

func (b *BufferBehavior) OnDeath(*EnemySystem, types.EntityID) {}

// ChampionBehavior при первой смерти выпускает 2..4 меньших врагов с толчком наружу.
type ChampionBehavior struct {
	params  defs.ChampionParams
	spawned bool
}

func (b *ChampionBehavior) Kind() defs.BehaviorKind { return defs.BehaviorChampion }

func (b *ChampionBehavior) Tick(*EnemySystem, types.EntityID, mgl64.Vec3, float64) {}

func (b *ChampionBehavior) MoveIntent(_ *EnemySystem, _ types.EntityID, toPlayer mgl64.Vec3, _ float64) mgl64.Vec3 {
	return toPlayer
}

func (b *ChampionBehavior) ContactDamage() bool { return true }

func (b *ChampionBehavior) OnDeath(s *EnemySystem, id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if b.spawned || !ok || enemy.ChampionSpawned {
		return
	}
	b.spawned = true
	enemy.ChampionSpawned = true

	t, ok := s.ecs.Transforms[id]
	if !ok {
		return
	}
	rng := s.session.Rng
	count := utils.RangeInt(rng, b.params.MinChildren, b.params.MaxChildren)
	for i := 0; i < count; i++ {
		// точка внутри единичного круга
		offset := utils.RandomPlanarDirection(rng).Mul(rng.Float64() * config.ChampionSpawnSpread)
		dir := utils.Planar(offset)
		if dir.LenSqr() < config.MoveEpsilonSq {
			dir = utils.RandomPlanarDirection(rng)
		}
		push := utils.RangeFloat(rng, b.params.MinPush, b.params.MaxPush)
		s.SpawnChild(b.params.ChildID, t.Position.Add(offset), enemy.Modifiers, 0, 0, dir.Normalize().Mul(push))
	}
}
