// internal/app/game.go
package app

import (
	"log"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/economy"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/event"
	"go-wave-arena/internal/interfaces"
	"go-wave-arena/internal/scheduler"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/system"

	"github.com/go-gl/mathgl/mgl64"
)

// Game holds the main game state and logic.
type Game struct {
	Session   *session.GameSession
	ECS       *entity.ECS
	Clock     *scheduler.Clock
	Scheduler *scheduler.Scheduler

	ModeSystem         *system.ModeSystem
	ModifierSystem     *system.ModifierSystem
	UpgradeSystem      *system.UpgradeSystem
	AuraSystem         *system.AuraSystem
	StatusEffectSystem *system.StatusEffectSystem
	VisualEffectSystem *system.VisualEffectSystem
	AreaAttackSystem   *system.AreaAttackSystem
	MovementSystem     *system.MovementSystem
	PlayerSystem       *system.PlayerSystem
	EnemySystem        *system.EnemySystem
	DeathSystem        *system.DeathSystem
	ChestSystem        *system.ChestSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	AbilitySystem      *system.AbilitySystem
	MineSystem         *system.MineSystem
	Spawner            *system.Spawner
	Orchestrator       *system.Orchestrator

	Kills         int
	ExitRequested bool

	accumulator float64
	started     bool
}

// NewGame собирает все системы вокруг одной сессии. effects может быть nil.
func NewGame(sess *session.GameSession, effects interfaces.EffectPlayer) *Game {
	ecs := entity.NewECS()
	clock := scheduler.NewClock()
	sched := scheduler.New(clock)

	g := &Game{
		Session:   sess,
		ECS:       ecs,
		Clock:     clock,
		Scheduler: sched,
	}
	g.ModeSystem = system.NewModeSystem(ecs, clock)
	g.ModifierSystem = system.NewModifierSystem(sess.Library.Modifiers, sess.Rng)
	g.UpgradeSystem = system.NewUpgradeSystem(sess.Library.Upgrades, sess.Ledger)
	g.AuraSystem = system.NewAuraSystem(ecs)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, sess.Events)
	g.AreaAttackSystem = system.NewAreaAttackSystem(ecs, sess, effects)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.PlayerSystem = system.NewPlayerSystem(ecs, sess)
	g.EnemySystem = system.NewEnemySystem(ecs, sess, g.ModifierSystem, g.AuraSystem, g.PlayerSystem)
	g.ChestSystem = system.NewChestSystem(ecs, sess)
	g.DeathSystem = system.NewDeathSystem(ecs, sess, g.EnemySystem, g.AreaAttackSystem, g.ChestSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, sess)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, sess, g.AreaAttackSystem, g.PlayerSystem)
	g.AbilitySystem = system.NewAbilitySystem(ecs, sess, g.AreaAttackSystem)
	g.MineSystem = system.NewMineSystem(sess, sched)
	g.Spawner = system.NewSpawner(sched, sess.Rng, g.EnemySystem)
	g.Orchestrator = system.NewOrchestrator(ecs, sess, sched, g.ModifierSystem, g.Spawner,
		g.EnemySystem, g.PlayerSystem, g.ModeSystem)

	g.createPlayerEntity()
	return g
}

func (g *Game) createPlayerEntity() {
	g.PlayerSystem.CreatePlayer(mgl64.Vec3(config.PlayerSpawnPoint))
	if !g.PlayerSystem.GiveWeapon(defs.WeaponKind(config.StartingWeapon)) {
		log.Printf("[%s] starting weapon %q is not in the catalog", g.Session.ShortID(), config.StartingWeapon)
	}
}

// Start запускает первую волну.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	log.Printf("[%s] session started, seed %d, %d waves",
		g.Session.ShortID(), g.Session.Rng.Seed(), len(g.Session.Library.Waves))
	g.Orchestrator.Start()
}

// Tick двигает симуляцию на один кадр хоста: сначала таймеры, затем
// фиксированные шаги движения, затем кадровая фаза (здоровье, смерти, волна).
func (g *Game) Tick(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	g.Scheduler.Advance(deltaTime)
	g.ECS.GameTime = g.Clock.Now()
	if !g.ModeSystem.IsActive() {
		return
	}

	g.accumulator += deltaTime
	for g.accumulator >= config.FixedTimeStep {
		g.fixedUpdate(config.FixedTimeStep)
		g.accumulator -= config.FixedTimeStep
	}
	g.frameUpdate(deltaTime)
}

func (g *Game) fixedUpdate(step float64) {
	g.PlayerSystem.FixedUpdate(step)
	g.EnemySystem.FixedUpdate(step)
	g.ProjectileSystem.FixedUpdate(step)
	g.MovementSystem.FixedUpdate(step)
}

func (g *Game) frameUpdate(dt float64) {
	g.StatusEffectSystem.Update(dt)
	g.EnemySystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ChestSystem.Update(dt)

	for _, report := range g.DeathSystem.Update() {
		g.applyDeath(report)
	}

	if g.PlayerSystem.CheckDeath() {
		g.endRun()
		return
	}

	g.Orchestrator.Update(dt)
	g.VisualEffectSystem.Update(dt)
}

// applyDeath — синхронная обработка отчета о смерти в том же кадре.
func (g *Game) applyDeath(r system.DeathReport) {
	g.Kills++
	if r.Gold > 0 {
		g.Session.Ledger.Credit(economy.Gold, r.Gold)
		g.Session.Events.Dispatch(event.Event{
			Type: event.GoldAwarded,
			Data: event.GoldPayload{Amount: r.Gold, Position: r.Position},
		})
	}

	if h, ok := g.PlayerSystem.Health(); ok {
		g.PlayerSystem.Heal(g.Session.Buffs.VampireHeal(h.Max))
	}

	g.Spawner.NotifyEnemyKilled()

	g.Session.Events.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyPayload{ID: r.EnemyID, DefID: r.DefID, Position: r.Position},
	})
}

func (g *Game) endRun() {
	g.ModeSystem.End()
	g.Orchestrator.Teardown()
	g.MineSystem.Stop()
}

// HandleInput применяет ввод хоста за кадр.
func (g *Game) HandleInput(in interfaces.InputState) {
	mode := g.ModeSystem.Current()
	if mode == component.ModeEnd {
		return
	}

	if mode == component.ModeActive {
		g.PlayerSystem.SetMoveInput(in.MoveX, in.MoveZ)
	} else {
		g.PlayerSystem.SetMoveInput(0, 0)
	}

	if mode == component.ModeMainMenu {
		switch {
		case in.Has(interfaces.ActionConfirmExit):
			g.ExitRequested = true
		case in.Has(interfaces.ActionCancel), in.Has(interfaces.ActionMenu):
			g.ModeSystem.CloseMenu()
		}
		return
	}

	if in.Has(interfaces.ActionMenu) {
		g.ModeSystem.Escape()
		return
	}
	if in.Has(interfaces.ActionToggleShop) {
		g.ModeSystem.ToggleShop()
		return
	}

	if in.Has(interfaces.ActionConvert) {
		g.AbilitySystem.Convert()
	}
	if in.Has(interfaces.ActionBuyMine) {
		g.BuyMine()
	}
	if in.Has(interfaces.ActionUpgradeMines) {
		g.UpgradeMines()
	}

	if g.ModeSystem.Current() != component.ModeActive {
		return
	}
	if in.Has(interfaces.ActionTriggerWave) {
		g.Orchestrator.TriggerWave()
	}
	if in.Has(interfaces.ActionFrost) {
		g.AbilitySystem.UseFrost()
	}
	if in.Has(interfaces.ActionExplosion) {
		g.AbilitySystem.UseExplosion()
	}
}

// --- Public Accessors ---

func (g *Game) Mode() component.GameMode {
	return g.ModeSystem.Current()
}

func (g *Game) Progress() component.WaveProgress {
	if g.ECS.Wave == nil {
		return component.WaveProgress{}
	}
	return *g.ECS.Wave
}

func (g *Game) Gold() int     { return g.Session.Ledger.Gold() }
func (g *Game) Diamonds() int { return g.Session.Ledger.Diamonds() }

// Announcement — текст модификаторов волны для HUD.
func (g *Game) Announcement() string {
	return g.Progress().Announcement
}
