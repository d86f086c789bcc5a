package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversEveryIndex(t *testing.T) {
	const n = 1000
	var visited [n]int32

	For(n, func(i int) {
		atomic.AddInt32(&visited[i], 1)
	}, DefaultConfig())

	for i, v := range visited {
		if v != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, v)
		}
	}
}

func TestForSequentialFallback(t *testing.T) {
	cfg := Config{Enabled: false}
	count := 0
	For(10, func(i int) {
		count++
	}, cfg)
	if count != 10 {
		t.Errorf("ran %d iterations, want 10", count)
	}
}

func TestForSmallInputStaysSequential(t *testing.T) {
	// Below MinChunkSize the work runs on the calling goroutine, so an
	// unsynchronized counter is safe.
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 100}
	count := 0
	For(10, func(i int) {
		count++
	}, cfg)
	if count != 10 {
		t.Errorf("ran %d iterations, want 10", count)
	}
}

func TestForZeroItems(t *testing.T) {
	called := false
	For(0, func(i int) {
		called = true
	}, DefaultConfig())
	if called {
		t.Error("callback should not run for n=0")
	}
}
