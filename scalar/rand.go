package scalar

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"go.uber.org/atomic"
)

// runtimeSource draws from the runtime's per-goroutine generator and never blocks.
type runtimeSource struct{}

func (runtimeSource) Uint64() uint64 { return rand.Uint64() }

// lockedSource serializes access to a deterministic source.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.Uint64()
}

var current = atomic.NewPointer(rand.New(runtimeSource{}))

// Rand returns the shared random source used by all generators.
func Rand() *rand.Rand {
	return current.Load()
}

// Seed makes subsequent generation reproducible.
func Seed(seed uint64) {
	current.Store(rand.New(&lockedSource{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}))
}

// Unseed restores the non-deterministic runtime source.
func Unseed() {
	current.Store(rand.New(runtimeSource{}))
}

// Reader adapts the shared source to io.Reader for libraries that consume entropy as bytes.
var Reader = randReader{}

type randReader struct{}

func (randReader) Read(p []byte) (int, error) {
	r := Rand()

	var buf [8]byte
	for i := 0; i < len(p); i += len(buf) {
		binary.LittleEndian.PutUint64(buf[:], r.Uint64())
		copy(p[i:], buf[:])
	}

	return len(p), nil
}

// pick returns a uniformly chosen element of items, which must be non-empty.
func pick[T any](items []T) T {
	return items[Rand().IntN(len(items))]
}

// intn returns a value in [min, max).
func intn(min, max int) int {
	if max <= min {
		return min
	}

	return min + Rand().IntN(max-min)
}
