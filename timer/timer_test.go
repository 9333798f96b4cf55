package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeClock is advanced by hand.
type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

func (c *fakeClock) Advance(secs float64) { c.now += secs }

func newLoop(duration float32) (*Timer, *fakeClock) {
	clk := &fakeClock{now: 100}
	return New(Loop, duration, WithClock(clk.Now)), clk
}

func TestLoopAlphaWrapsAfterPeriod(t *testing.T) {
	tm, clk := newLoop(4)
	tm.Update()
	clk.Advance(1)
	tm.Update()
	start := tm.Alpha()
	assert.Equal(t, float32(0.25), start)

	for i := 0; i < 8; i++ {
		clk.Advance(0.5)
		tm.Update()
		a := tm.Alpha()
		assert.GreaterOrEqual(t, a, float32(0))
		assert.Less(t, a, float32(1))
	}
	assert.Equal(t, start, tm.Alpha())
}

func TestLoopAdvancesAfterDays(t *testing.T) {
	tm, clk := newLoop(6)
	tm.Update()
	clk.Advance(5 * 24 * 3600) // a whole number of periods
	tm.Update()
	before := tm.Alpha()
	assert.InDelta(t, 0, before, 1e-6)

	for i := 0; i < 3; i++ {
		clk.Advance(1.0 / 60)
		tm.Update()
	}
	assert.InDelta(t, 3.0/60/6, tm.Alpha()-before, 1e-5)
	assert.InDelta(t, 5*24*3600+3.0/60, tm.TimeSinceStart(), 0.05)
}

func TestFirstUpdateStartsAtZero(t *testing.T) {
	tm, clk := newLoop(5)
	clk.Advance(3)
	tm.Update()
	assert.Zero(t, tm.Alpha())
	assert.Zero(t, tm.TimeSinceStart())
}

func TestTogglePauseFreezesAlpha(t *testing.T) {
	tm, clk := newLoop(6)
	tm.Update()
	clk.Advance(1.5)
	tm.Update()
	frozen := tm.Alpha()

	assert.True(t, tm.TogglePause())
	for i := 0; i < 5; i++ {
		clk.Advance(0.75)
		tm.Update()
		assert.Equal(t, frozen, tm.Alpha())
	}

	assert.False(t, tm.TogglePause())
	clk.Advance(1.5)
	tm.Update()
	assert.Equal(t, float32(0.5), tm.Alpha())
}

func TestRewindAndFastForward(t *testing.T) {
	tm, clk := newLoop(4)
	tm.Update()
	clk.Advance(1)
	tm.Update()

	assert.False(t, tm.FastForward(0.5))
	assert.Equal(t, float32(1.5), tm.TimeSinceStart())

	assert.False(t, tm.Rewind(0.5))
	assert.Equal(t, float32(1), tm.TimeSinceStart())

	assert.True(t, tm.Rewind(3))
	assert.Zero(t, tm.TimeSinceStart())
	assert.Zero(t, tm.Alpha())
}

func TestSingleTimer(t *testing.T) {
	clk := &fakeClock{}
	tm := New(Single, 2, WithClock(clk.Now))
	assert.False(t, tm.Update())

	clk.Advance(1)
	assert.False(t, tm.Update())
	assert.Equal(t, float32(0.5), tm.Alpha())

	clk.Advance(1.5)
	assert.True(t, tm.Update())
	assert.Equal(t, float32(1), tm.Alpha())
	assert.Equal(t, float32(2), tm.Progression())

	tm.Reset()
	assert.Zero(t, tm.TimeSinceStart())
	assert.True(t, tm.FastForward(5))
	assert.Equal(t, float32(2), tm.TimeSinceStart())
}

func TestInfiniteTimer(t *testing.T) {
	clk := &fakeClock{}
	tm := New(Infinite, 0, WithClock(clk.Now))
	tm.Update()
	clk.Advance(42)
	assert.False(t, tm.Update())
	assert.Equal(t, float32(-1), tm.Alpha())
	assert.Equal(t, float32(42), tm.TimeSinceStart())
}

func TestNonPositiveDuration(t *testing.T) {
	tm := New(Loop, -3)
	assert.Equal(t, float32(1), tm.Duration())
	assert.Equal(t, "loop", tm.Type().String())
}
