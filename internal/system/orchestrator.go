// internal/system/orchestrator.go
package system

import (
	"fmt"
	"log"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/event"
	"go-wave-arena/internal/scheduler"
	"go-wave-arena/internal/session"

	"github.com/go-gl/mathgl/mgl64"
)

// Orchestrator ведет волны по порядку: модификаторы -> отсчет -> спавн ->
// зачистка -> следующая волна. После последней открывает меню конца забега.
type Orchestrator struct {
	ecs       *entity.ECS
	session   *session.GameSession
	scheduler *scheduler.Scheduler
	modifiers *ModifierSystem
	spawner   *Spawner
	enemies   *EnemySystem
	players   *PlayerSystem
	modes     *ModeSystem

	waves     []defs.WaveManifest
	index     int
	group     string
	countdown scheduler.TaskID
	started   bool
}

func NewOrchestrator(ecs *entity.ECS, sess *session.GameSession, sched *scheduler.Scheduler,
	modifiers *ModifierSystem, spawner *Spawner, enemies *EnemySystem,
	players *PlayerSystem, modes *ModeSystem) *Orchestrator {
	o := &Orchestrator{
		ecs:       ecs,
		session:   sess,
		scheduler: sched,
		modifiers: modifiers,
		spawner:   spawner,
		enemies:   enemies,
		players:   players,
		modes:     modes,
		waves:     sess.Library.Waves,
	}
	spawner.OnBegin(o.onSpawnBegin)
	return o
}

// Start запускает первую волну. Повторный вызов ничего не делает.
func (o *Orchestrator) Start() {
	if o.started {
		return
	}
	o.started = true
	o.index = 0
	o.startWave()
}

func (o *Orchestrator) progress() *component.WaveProgress {
	if o.ecs.Wave == nil {
		o.ecs.Wave = &component.WaveProgress{}
	}
	return o.ecs.Wave
}

func (o *Orchestrator) startWave() {
	if o.index >= len(o.waves) {
		o.finishRun()
		return
	}

	number := o.index + 1
	o.group = fmt.Sprintf("wave-%d", number)
	o.enemies.SetWave(number)

	mods := o.modifiers.Roll()
	manifest := o.waves[o.index].Scaled(mods.Count)
	spawnPoint := mgl64.Vec3(config.EnemySpawnPoint)
	o.spawner.Init(o.group, manifest, spawnPoint, config.SpawnRadius,
		config.BaseSpawnDelay, config.MinSpawnDelay, config.KillAccelerationFactor)

	*o.progress() = component.WaveProgress{
		Number:       number,
		Total:        len(o.waves),
		Phase:        component.PhaseCountdown,
		ToSpawn:      manifest.Total(),
		Countdown:    config.TimeBetweenRounds,
		Announcement: mods.Announcement(),
	}
	log.Printf("[%s] wave %d (%s): %d enemies, countdown %ds",
		o.session.ShortID(), number, manifest.Name, manifest.Total(), config.TimeBetweenRounds)

	// Объявление видно первые несколько секунд отсчета
	if o.progress().Announcement != "" {
		o.scheduler.After(o.group, config.AnnouncementDuration, func() {
			o.progress().Announcement = ""
		})
	}

	o.countdown = o.scheduler.Every(o.group, 1, func() {
		p := o.progress()
		p.Countdown--
		if p.Countdown <= 0 {
			p.Countdown = 0
			o.scheduler.Cancel(o.countdown)
			o.countdown = 0
			o.spawner.AllowStart()
		}
	})
}

// TriggerWave — игрок начинает волну досрочно.
func (o *Orchestrator) TriggerWave() bool {
	if !o.started || o.progress().Phase != component.PhaseCountdown || !o.modes.IsActive() {
		return false
	}
	return o.spawner.Begin()
}

func (o *Orchestrator) onSpawnBegin() {
	if o.countdown != 0 {
		o.scheduler.Cancel(o.countdown)
		o.countdown = 0
	}
	p := o.progress()
	p.Phase = component.PhaseSpawning
	p.Countdown = 0

	o.players.Teleport(mgl64.Vec3(config.PlayerSpawnPoint))

	// Волна заканчивается, когда выпущены все и живых не осталось
	o.scheduler.When(o.group, o.isCleared, o.clearWave)

	o.session.Events.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WavePayload{Number: p.Number, Name: o.waves[o.index].Name},
	})
}

func (o *Orchestrator) isCleared() bool {
	return o.spawner.SpawnedCount() == o.spawner.TotalCount() && o.ecs.LiveEnemyCount() == 0
}

func (o *Orchestrator) clearWave() {
	p := o.progress()
	p.Phase = component.PhaseCleared
	number, name := p.Number, o.waves[o.index].Name

	o.modifiers.Clear()
	o.scheduler.CancelGroup(o.group)
	o.enemies.Clear()
	log.Printf("[%s] wave %d cleared", o.session.ShortID(), number)
	o.session.Events.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.WavePayload{Number: number, Name: name},
	})

	o.index++
	o.startWave()
}

func (o *Orchestrator) finishRun() {
	p := o.progress()
	p.Phase = component.PhaseRunComplete
	p.Countdown = 0
	p.Announcement = ""
	log.Printf("[%s] run complete after %d waves", o.session.ShortID(), len(o.waves))
	o.modes.OpenFinalMenu()
	o.session.Events.Dispatch(event.Event{
		Type: event.RunCompleted,
		Data: event.WavePayload{Number: len(o.waves)},
	})
}

// Update — кадровая фаза: автостарт спавнера и счетчики для HUD.
func (o *Orchestrator) Update(deltaTime float64) {
	if !o.started {
		return
	}
	o.spawner.Update()

	p := o.progress()
	p.Spawned = o.spawner.SpawnedCount()
	p.ToSpawn = o.spawner.TotalCount()
	p.Alive = o.ecs.LiveEnemyCount()
	if p.Phase == component.PhaseSpawning && o.spawner.State() == SpawnerDrained {
		p.Phase = component.PhaseDraining
	}
}

// Teardown снимает все таймеры текущей волны и убирает врагов.
func (o *Orchestrator) Teardown() {
	if o.group != "" {
		o.scheduler.CancelGroup(o.group)
	}
	o.spawner.Stop()
	o.enemies.Clear()
	o.modifiers.Clear()
}

// WaveIndex — индекс текущего манифеста (с нуля).
func (o *Orchestrator) WaveIndex() int {
	return o.index
}

// Complete — все волны пройдены.
func (o *Orchestrator) Complete() bool {
	return o.progress().Phase == component.PhaseRunComplete
}
