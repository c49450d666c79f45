package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"algoeconomics/internal/debounce"
	"algoeconomics/internal/debounce/debouncetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const window = 50 * time.Millisecond

func TestTrigger_BurstRunsLastCallOnce(t *testing.T) {
	clock := debouncetest.New()
	d := debounce.New(window, debounce.WithClock(clock))

	var calls []int
	for i := 1; i <= 10; i++ {
		v := i
		require.True(t, d.Trigger(func() { calls = append(calls, v) }))
		clock.Advance(4 * time.Millisecond)
	}
	assert.Empty(t, calls, "nothing runs while the burst is still arriving")

	clock.Advance(window)
	assert.Equal(t, []int{10}, calls)

	clock.Advance(time.Second)
	assert.Equal(t, []int{10}, calls, "a replaced call never runs later")

	st := d.Stats()
	assert.Equal(t, 10, st.Triggered)
	assert.Equal(t, 9, st.Replaced)
	assert.Equal(t, 1, st.Fired)
}

func TestTrigger_QuiescenceIsMeasuredFromLastTrigger(t *testing.T) {
	clock := debouncetest.New()
	d := debounce.New(window, debounce.WithClock(clock))

	var n int
	d.Trigger(func() { n++ })
	clock.Advance(40 * time.Millisecond)
	d.Trigger(func() { n++ })
	clock.Advance(40 * time.Millisecond)
	assert.Equal(t, 0, n)

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, n)
}

func TestTrigger_SeparateBurstsEachRun(t *testing.T) {
	clock := debouncetest.New()
	d := debounce.New(window, debounce.WithClock(clock))

	var n int
	d.Trigger(func() { n++ })
	clock.Advance(window)
	d.Trigger(func() { n++ })
	clock.Advance(window)
	assert.Equal(t, 2, n)
}

func TestFlush(t *testing.T) {
	clock := debouncetest.New()
	d := debounce.New(window, debounce.WithClock(clock))

	assert.False(t, d.Flush())

	var n int
	d.Trigger(func() { n++ })
	assert.True(t, d.Pending())
	assert.True(t, d.Flush())
	assert.Equal(t, 1, n)
	assert.False(t, d.Pending())

	clock.Advance(window)
	assert.Equal(t, 1, n, "a flushed call does not run again on expiry")
	assert.Equal(t, 0, clock.Armed())
}

func TestCancel(t *testing.T) {
	clock := debouncetest.New()
	d := debounce.New(window, debounce.WithClock(clock))

	var n int
	d.Trigger(func() { n++ })
	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())

	clock.Advance(window)
	assert.Equal(t, 0, n)
}

func TestStop(t *testing.T) {
	clock := debouncetest.New()
	d := debounce.New(window, debounce.WithClock(clock))

	var n int
	d.Trigger(func() { n++ })
	d.Stop()
	assert.False(t, d.Trigger(func() { n++ }))

	clock.Advance(window)
	assert.Equal(t, 0, n)
}

func TestRealClock(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := debounce.New(10 * time.Millisecond)
	var last atomic.Int64
	var runs atomic.Int64
	for i := 1; i <= 5; i++ {
		v := int64(i)
		d.Trigger(func() {
			last.Store(v)
			runs.Add(1)
		})
	}

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(5), last.Load())

	d.Stop()
}
