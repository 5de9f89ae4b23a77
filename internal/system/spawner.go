// internal/system/spawner.go
package system

import (
	"log"
	"math"

	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/interfaces"
	"go-wave-arena/internal/scheduler"
	"go-wave-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// SpawnerState — стадия спавнера волны.
type SpawnerState int

const (
	SpawnerIdle SpawnerState = iota
	SpawnerSpawning
	SpawnerDrained
)

func (s SpawnerState) String() string {
	switch s {
	case SpawnerIdle:
		return "Idle"
	case SpawnerSpawning:
		return "Spawning"
	case SpawnerDrained:
		return "Drained"
	}
	return "Unknown"
}

// Spawner выпускает врагов манифеста по кругу вокруг точки. Задержка между
// врагами сокращается с каждым убийством, но не ниже минимальной.
type Spawner struct {
	scheduler *scheduler.Scheduler
	rng       utils.RandomSource
	target    interfaces.EntitySpawner

	group        string
	manifest     defs.WaveManifest
	position     mgl64.Vec3
	radius       float64
	baseDelay    float64
	minDelay     float64
	acceleration float64
	groupPause   float64
	currentDelay float64

	state    SpawnerState
	allowed  bool
	spawned  int
	total    int
	groupIdx int
	inGroup  int
	pending  scheduler.TaskID

	onBegin func()
}

func NewSpawner(sched *scheduler.Scheduler, rng utils.RandomSource, target interfaces.EntitySpawner) *Spawner {
	return &Spawner{scheduler: sched, rng: rng, target: target}
}

// Init готовит спавнер к новой волне. Таймеры создаются в группе group,
// чтобы сброс волны мог снять их разом.
func (s *Spawner) Init(group string, manifest defs.WaveManifest, position mgl64.Vec3,
	radius, baseDelay, minDelay, killAcceleration float64) {
	s.Stop()
	s.group = group
	s.manifest = manifest
	s.position = position
	s.radius = radius
	s.baseDelay = baseDelay
	s.minDelay = minDelay
	s.acceleration = killAcceleration
	s.groupPause = config.GroupPause
	s.currentDelay = baseDelay

	s.state = SpawnerIdle
	s.allowed = false
	s.spawned = 0
	s.total = manifest.Total()
	s.groupIdx = 0
	s.inGroup = 0
}

// OnBegin задает действие, выполняемое один раз при старте спавна.
func (s *Spawner) OnBegin(fn func()) {
	s.onBegin = fn
}

// AllowStart разрешает автостарт по окончании отсчета.
func (s *Spawner) AllowStart() {
	s.allowed = true
}

// Begin переводит Idle -> Spawning ровно один раз. Повторный вызов ничего не делает.
func (s *Spawner) Begin() bool {
	if s.state != SpawnerIdle {
		return false
	}
	s.state = SpawnerSpawning
	log.Printf("spawner %s: begin, %d enemies", s.group, s.total)
	if s.onBegin != nil {
		s.onBegin()
	}
	s.skipEmptyGroups()
	if s.groupIdx >= len(s.manifest.Groups) {
		s.state = SpawnerDrained
		return true
	}
	s.spawnNext()
	return true
}

// Update запускает спавн, если старт уже разрешен.
func (s *Spawner) Update() {
	if s.allowed && s.state == SpawnerIdle {
		s.Begin()
	}
}

// NotifyEnemyKilled ускоряет спавн: задержка умножается на коэффициент.
func (s *Spawner) NotifyEnemyKilled() {
	if s.state != SpawnerSpawning {
		return
	}
	s.currentDelay = math.Max(s.minDelay, s.currentDelay*s.acceleration)
}

// Stop снимает все отложенные таймеры волны.
func (s *Spawner) Stop() {
	if s.group != "" {
		s.scheduler.CancelGroup(s.group)
	}
	s.pending = 0
}

func (s *Spawner) skipEmptyGroups() {
	for s.groupIdx < len(s.manifest.Groups) && s.inGroup >= s.manifest.Groups[s.groupIdx].Count {
		s.groupIdx++
		s.inGroup = 0
	}
}

func (s *Spawner) spawnNext() {
	s.pending = 0
	if s.state != SpawnerSpawning {
		return
	}
	s.skipEmptyGroups()
	if s.groupIdx >= len(s.manifest.Groups) {
		s.state = SpawnerDrained
		return
	}

	group := s.manifest.Groups[s.groupIdx]
	angle := s.rng.Float64() * 2 * math.Pi
	pos := utils.PointOnCircle(s.position, s.radius, angle)
	yaw := utils.Yaw(s.position.Sub(pos))
	if _, ok := s.target.Spawn(group.EnemyID, pos, yaw); !ok {
		// Счетчик все равно растет, иначе волна никогда не закончится
		log.Printf("spawner %s: failed to spawn %s", s.group, group.EnemyID)
	}
	s.spawned++
	s.inGroup++

	delay := s.currentDelay
	if s.inGroup >= group.Count {
		s.groupIdx++
		s.inGroup = 0
		s.skipEmptyGroups()
		if s.groupIdx >= len(s.manifest.Groups) {
			s.state = SpawnerDrained
			log.Printf("spawner %s: drained after %d spawns", s.group, s.spawned)
			return
		}
		delay += s.groupPause
	}
	s.pending = s.scheduler.After(s.group, delay, s.spawnNext)
}

func (s *Spawner) State() SpawnerState { return s.state }

// SpawnedCount — сколько врагов уже выпущено.
func (s *Spawner) SpawnedCount() int { return s.spawned }

// TotalCount — сумма по всем группам манифеста.
func (s *Spawner) TotalCount() int { return s.total }

func (s *Spawner) CurrentDelay() float64 { return s.currentDelay }

func (s *Spawner) Allowed() bool { return s.allowed }

var _ interfaces.EntitySpawner = (*EnemySystem)(nil)
