package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_EachIndexOnce(t *testing.T) {
	cfg := DefaultConfig()
	n := 1000

	seen := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, count := range seen {
		if count != 1 {
			t.Errorf("Index %d visited %d times, want 1", i, count)
		}
	}
}

func TestForChunks(t *testing.T) {
	cfg := DefaultConfig()
	n := 1000

	seen := make([]int32, n)
	ForChunks(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	}, cfg)

	for i, count := range seen {
		if count != 1 {
			t.Errorf("Index %d visited %d times, want 1", i, count)
		}
	}
}

func TestForChunks_SmallInput(t *testing.T) {
	cfg := DefaultConfig()

	// Below MinChunkSize the whole range arrives as one chunk.
	var calls int64
	var total int64
	ForChunks(10, func(start, end int) {
		atomic.AddInt64(&calls, 1)
		atomic.AddInt64(&total, int64(end-start))
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 chunk call, got %d", calls)
	}
	if total != 10 {
		t.Errorf("Expected 10 elements covered, got %d", total)
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}

func BenchmarkForChunks(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000
	data := make([]float32, n)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForChunks(n, func(start, end int) {
				for j := start; j < end; j++ {
					data[j] = float32(j) * 2
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			ForChunks(n, func(start, end int) {
				for j := start; j < end; j++ {
					data[j] = float32(j) * 2
				}
			}, cfgSeq)
		}
	})
}
