package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresOnceAtDueTime(t *testing.T) {
	s := New()
	var firedAt []time.Duration
	s.After(100*time.Millisecond, func() { firedAt = append(firedAt, s.Now()) })

	s.Advance(99 * time.Millisecond)
	assert.Empty(t, firedAt)

	s.Advance(time.Millisecond)
	require.Len(t, firedAt, 1)
	assert.Equal(t, 100*time.Millisecond, firedAt[0])

	s.Advance(time.Second)
	assert.Len(t, firedAt, 1)
	assert.Zero(t, s.Pending())
}

func TestEveryTicksSequentially(t *testing.T) {
	s := New()
	var ticks []time.Duration
	s.Every(50*time.Millisecond, func() { ticks = append(ticks, s.Now()) })

	s.Advance(220 * time.Millisecond)
	assert.Equal(t, []time.Duration{
		50 * time.Millisecond,
		100 * time.Millisecond,
		150 * time.Millisecond,
		200 * time.Millisecond,
	}, ticks)
	assert.Equal(t, 220*time.Millisecond, s.Now())
	assert.Equal(t, 1, s.Pending())
}

func TestCancelFromInsideCallback(t *testing.T) {
	s := New()
	count := 0
	var h *Handle
	h = s.Every(10*time.Millisecond, func() {
		count++
		if count == 3 {
			h.Cancel()
		}
	})

	s.Advance(time.Second)
	assert.Equal(t, 3, count)
	assert.False(t, h.Active())
	assert.Zero(t, s.Pending())
}

func TestCancelIsIdempotent(t *testing.T) {
	s := New()
	fired := false
	h := s.After(time.Millisecond, func() { fired = true })
	h.Cancel()
	h.Cancel()

	var nilHandle *Handle
	nilHandle.Cancel()

	s.Advance(time.Second)
	assert.False(t, fired)
}

func TestTiesFireInSchedulingOrder(t *testing.T) {
	s := New()
	var order []string
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(10*time.Millisecond, func() { order = append(order, "b") })
	s.After(5*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestCallbackSchedulesRelativeToDueTime(t *testing.T) {
	s := New()
	var second time.Duration
	s.After(30*time.Millisecond, func() {
		s.After(20*time.Millisecond, func() { second = s.Now() })
	})

	s.Advance(time.Second)
	assert.Equal(t, 50*time.Millisecond, second)
}

func TestCancelAll(t *testing.T) {
	s := New()
	fired := 0
	for i := 0; i < 5; i++ {
		s.After(time.Duration(i+1)*time.Millisecond, func() { fired++ })
	}
	s.Every(time.Millisecond, func() { fired++ })
	require.Equal(t, 6, s.Pending())

	s.CancelAll()
	s.Advance(time.Second)
	assert.Zero(t, fired)
	assert.Zero(t, s.Pending())
}

func TestEveryRejectsNonPositiveInterval(t *testing.T) {
	s := New()
	assert.Panics(t, func() { s.Every(0, func() {}) })
}
