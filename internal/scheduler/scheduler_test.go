package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresAtDeadline(t *testing.T) {
	s := New(nil)
	fired := 0
	s.After("g", 1.0, func() { fired++ })

	s.Advance(0.5)
	assert.Equal(t, 0, fired)
	s.Advance(0.5)
	assert.Equal(t, 1, fired)
	s.Advance(5)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending(""))
}

func TestOrderByDeadlineThenCreation(t *testing.T) {
	s := New(nil)
	var order []string
	s.After("", 0.3, func() { order = append(order, "c") })
	s.After("", 0.1, func() { order = append(order, "a") })
	s.After("", 0.1, func() { order = append(order, "b") })

	s.Advance(1)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestTasksCreatedInCallbackWaitForNextAdvance(t *testing.T) {
	s := New(nil)
	fired := 0
	s.After("", 0, func() {
		s.After("", 0, func() { fired++ })
	})

	s.Advance(0.1)
	assert.Equal(t, 0, fired)
	s.Advance(0.1)
	assert.Equal(t, 1, fired)
}

func TestEveryRepeatsUntilCancelled(t *testing.T) {
	s := New(nil)
	ticks := 0
	id := s.Every("mine", 5, func() { ticks++ })

	for i := 0; i < 10; i++ {
		s.Advance(1)
	}
	assert.Equal(t, 2, ticks)

	s.Cancel(id)
	for i := 0; i < 10; i++ {
		s.Advance(1)
	}
	assert.Equal(t, 2, ticks)
}

func TestWhenWaitsForCondition(t *testing.T) {
	s := New(nil)
	ready := false
	fired := 0
	s.When("", func() bool { return ready }, func() { fired++ })

	s.Advance(1)
	assert.Equal(t, 0, fired)
	ready = true
	s.Advance(0.01)
	s.Advance(0.01)
	assert.Equal(t, 1, fired)
}

func TestCancelGroupStopsPendingTimers(t *testing.T) {
	s := New(nil)
	fired := 0
	s.After("wave-1", 1, func() { fired++ })
	s.Every("wave-1", 0.5, func() { fired++ })
	s.After("wave-2", 1, func() { fired += 10 })

	assert.Equal(t, 2, s.CancelGroup("wave-1"))
	s.Advance(2)
	assert.Equal(t, 10, fired)
}

func TestCancelInsideSameAdvance(t *testing.T) {
	s := New(nil)
	fired := 0
	var second TaskID
	s.After("", 0.1, func() { s.Cancel(second) })
	second = s.After("", 0.2, func() { fired++ })

	s.Advance(1)
	assert.Equal(t, 0, fired)
}

func TestPauseFreezesTimers(t *testing.T) {
	s := New(nil)
	fired := 0
	s.After("", 1, func() { fired++ })

	s.Advance(0.5)
	s.Clock().Pause()
	s.Advance(10)
	assert.Equal(t, 0, fired)
	assert.InDelta(t, 0.5, s.Now(), 1e-9)
	assert.InDelta(t, 10, s.Clock().CurrentPause(), 1e-9)

	s.Clock().Resume()
	assert.Zero(t, s.Clock().CurrentPause())
	s.Advance(0.25)
	assert.Equal(t, 0, fired)
	s.Advance(0.25)
	require.Equal(t, 1, fired)
	assert.InDelta(t, 10, s.Clock().PausedFor(), 1e-9)
}
