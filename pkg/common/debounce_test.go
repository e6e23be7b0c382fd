package common

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() {
		calls.Add(1)
	})
	defer d.Dispose()

	for range 5 {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}
	assert.True(t, d.IsComputing())

	require.Eventually(t, func() bool {
		return !d.IsComputing()
	}, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncerCancelHookCountsReplacedRuns(t *testing.T) {
	var cancelled atomic.Int32
	d := NewDebouncer(time.Hour, func() {}, WithCancelHook(func() {
		cancelled.Add(1)
	}))
	defer d.Dispose()

	d.Trigger()
	d.Trigger()
	d.Trigger()
	assert.Equal(t, int32(2), cancelled.Load())
	assert.True(t, d.IsPending())
}

func TestDebouncerFlushRunsImmediately(t *testing.T) {
	calls := 0
	d := NewDebouncer(time.Hour, func() {
		calls++
	})
	defer d.Dispose()

	if d.Flush() {
		t.Errorf("Expected nothing to flush")
	}
	d.Trigger()
	if !d.Flush() {
		t.Errorf("Expected pending run to flush")
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
	if d.IsComputing() || d.IsPending() {
		t.Errorf("Expected idle debouncer after flush")
	}
}

func TestDebouncerCancel(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() {
		calls.Add(1)
	})
	defer d.Dispose()

	d.Trigger()
	d.Cancel()
	assert.False(t, d.IsComputing())
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncerDisposePreventsLateRuns(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() {
		calls.Add(1)
	})

	d.Trigger()
	d.Dispose()
	d.Trigger()
	assert.False(t, d.IsComputing())
	assert.False(t, d.Flush())
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncerDisposeWaitsForRunningCall(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool
	d := NewDebouncer(time.Millisecond, func() {
		close(started)
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
	})

	d.Trigger()
	<-started
	d.Dispose()
	assert.True(t, finished.Load())
}

func TestDebouncerStaysComputingWhenRetriggeredDuringRun(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	d := NewDebouncer(time.Millisecond, func() {
		if calls.Add(1) == 1 {
			<-release
		}
	})
	defer d.Dispose()

	d.Trigger()
	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, time.Millisecond)
	d.Trigger()
	close(release)
	require.Eventually(t, func() bool {
		return calls.Load() == 2 && !d.IsComputing()
	}, time.Second, time.Millisecond)
}

func TestDebouncerFlushFromRunningCall(t *testing.T) {
	var calls atomic.Int32
	var d *Debouncer
	d = NewDebouncer(time.Hour, func() {
		if calls.Add(1) == 1 {
			d.Trigger()
			if d.Flush() {
				t.Errorf("Expected flush inside a running call to defer the run")
			}
		}
	})
	defer d.Dispose()

	d.Trigger()
	require.True(t, d.Flush())
	require.Eventually(t, func() bool {
		return calls.Load() == 2 && !d.IsComputing()
	}, time.Second, time.Millisecond)
}
