package system

import (
	"testing"

	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/scheduler"
	"go-wave-arena/internal/types"
	"go-wave-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpawner struct {
	kinds     []string
	positions []mgl64.Vec3
	fail      bool
}

func (f *fakeSpawner) Spawn(kind string, position mgl64.Vec3, _ float64) (types.EntityID, bool) {
	f.kinds = append(f.kinds, kind)
	f.positions = append(f.positions, position)
	if f.fail {
		return 0, false
	}
	return types.EntityID(len(f.kinds)), true
}

var testManifest = defs.WaveManifest{
	Name: "test",
	Groups: []defs.EnemyGroup{
		{EnemyID: "grunt", Count: 3},
		{EnemyID: "minion", Count: 1},
	},
}

func newTestSpawner(manifest defs.WaveManifest) (*Spawner, *fakeSpawner, *scheduler.Scheduler) {
	sched := scheduler.New(scheduler.NewClock())
	target := &fakeSpawner{}
	s := NewSpawner(sched, utils.NewPRNGService(3), target)
	s.Init("wave-1", manifest, mgl64.Vec3{0, 0, 20}, 10, 0.5, 0.1, 0.85)
	return s, target, sched
}

func advance(sched *scheduler.Scheduler, seconds float64) {
	for t := 0.0; t < seconds; t += 0.05 {
		sched.Advance(0.05)
	}
}

func TestSpawnerBeginIsIdempotent(t *testing.T) {
	s, target, _ := newTestSpawner(testManifest)

	begun := 0
	s.OnBegin(func() { begun++ })

	require.True(t, s.Begin())
	assert.False(t, s.Begin())
	assert.Equal(t, 1, begun)
	assert.Equal(t, SpawnerSpawning, s.State())
	assert.Equal(t, 1, s.SpawnedCount(), "first enemy appears immediately")
	assert.Len(t, target.kinds, 1)
}

func TestSpawnerDrainsGroupsInOrder(t *testing.T) {
	s, target, _ := newTestSpawner(testManifest)
	sched := s.scheduler

	s.Begin()
	advance(sched, 1.3)
	assert.Equal(t, 3, s.SpawnedCount())
	assert.Equal(t, SpawnerSpawning, s.State())

	// пауза между группами
	advance(sched, 2.0)
	assert.Equal(t, 3, s.SpawnedCount())

	advance(sched, 2.0)
	assert.Equal(t, 4, s.SpawnedCount())
	assert.Equal(t, SpawnerDrained, s.State())
	assert.Equal(t, []string{"grunt", "grunt", "grunt", "minion"}, target.kinds)

	for _, p := range target.positions {
		assert.InDelta(t, 10.0, p.Sub(mgl64.Vec3{0, 0, 20}).Len(), 1e-9)
	}
	assert.Zero(t, sched.Pending("wave-1"))
}

func TestSpawnerWaitsForPermission(t *testing.T) {
	s, target, _ := newTestSpawner(testManifest)

	s.Update()
	assert.Equal(t, SpawnerIdle, s.State())
	assert.False(t, s.Allowed())

	s.AllowStart()
	assert.True(t, s.Allowed())
	s.Update()
	assert.Equal(t, SpawnerSpawning, s.State())
	assert.Len(t, target.kinds, 1)
}

func TestKillsAccelerateSpawning(t *testing.T) {
	s, _, _ := newTestSpawner(testManifest)

	s.NotifyEnemyKilled()
	assert.InDelta(t, 0.5, s.CurrentDelay(), 1e-9, "idle spawner ignores kills")

	s.Begin()
	s.NotifyEnemyKilled()
	assert.InDelta(t, 0.425, s.CurrentDelay(), 1e-9)

	for i := 0; i < 50; i++ {
		s.NotifyEnemyKilled()
	}
	assert.InDelta(t, 0.1, s.CurrentDelay(), 1e-9)
}

func TestFailedSpawnsStillCount(t *testing.T) {
	s, target, sched := newTestSpawner(testManifest)
	target.fail = true

	s.Begin()
	advance(sched, 6)

	assert.Equal(t, 4, s.SpawnedCount())
	assert.Equal(t, SpawnerDrained, s.State())
}

func TestStopCancelsPendingSpawns(t *testing.T) {
	s, _, sched := newTestSpawner(testManifest)

	s.Begin()
	s.Stop()
	advance(sched, 6)

	assert.Equal(t, 1, s.SpawnedCount())
}

func TestEmptyManifestDrainsAtOnce(t *testing.T) {
	s, target, _ := newTestSpawner(defs.WaveManifest{Groups: []defs.EnemyGroup{{EnemyID: "grunt", Count: 0}}})

	require.True(t, s.Begin())
	assert.Equal(t, SpawnerDrained, s.State())
	assert.Empty(t, target.kinds)
	assert.Zero(t, s.TotalCount())
}
