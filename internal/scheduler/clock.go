// internal/scheduler/clock.go
package scheduler

// Clock — игровое время в секундах. Двигается только кадрами хоста
// и замирает на паузе (магазин, меню), не сбрасываясь.
type Clock struct {
	now        float64
	paused     bool
	pausedFor  float64 // суммарное время, проведенное на паузе
	pauseStart float64 // pausedFor на момент начала текущей паузы
}

// NewClock создает часы, стоящие на нуле.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns current game time (affected by pause)
func (c *Clock) Now() float64 {
	return c.now
}

// Advance двигает время на dt и сообщает, пошло ли оно.
func (c *Clock) Advance(dt float64) bool {
	if dt <= 0 {
		return false
	}
	if c.paused {
		c.pausedFor += dt
		return false
	}
	c.now += dt
	return true
}

// Pause stops game time advancement
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.pausedFor
}

// Resume continues game time advancement
func (c *Clock) Resume() {
	c.paused = false
}

// IsPaused returns current pause state
func (c *Clock) IsPaused() bool {
	return c.paused
}

// PausedFor returns cumulative pause time
func (c *Clock) PausedFor() float64 {
	return c.pausedFor
}

// CurrentPause returns duration of current pause (0 if not paused)
func (c *Clock) CurrentPause() float64 {
	if !c.paused {
		return 0
	}
	return c.pausedFor - c.pauseStart
}
