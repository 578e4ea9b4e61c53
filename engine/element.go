package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Element is one array entry as the visualization sees it. Value never
// changes once generated; only its position moves during a run. The
// Comparing/Swapping flags are transient per step, Sorted is monotonic
// within a run.
type Element struct {
	Value     int  `json:"value"`
	Comparing bool `json:"comparing"`
	Swapping  bool `json:"swapping"`
	Sorted    bool `json:"sorted"`
}

// Algorithm identifies one of the supported sort engines.
type Algorithm string

const (
	Bubble Algorithm = "bubble"
	Quick  Algorithm = "quick"
	Merge  Algorithm = "merge"
	Heap   Algorithm = "heap"
)

// SortFunc is a sort engine. It mutates a in place and reports every
// compare/swap/placement/mark through em. Engines assume a is non-empty
// and validated; zero-length input is handled by the callers.
type SortFunc func(a []int, em Emitter)

var engines = map[Algorithm]SortFunc{
	Bubble: bubbleSort,
	Quick:  quickSort,
	Merge:  mergeSort,
	Heap:   heapSort,
}

// Algorithms returns the supported algorithm ids in stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Quick, Merge, Heap}
}

// Valid reports whether id names a supported algorithm.
func Valid(id Algorithm) bool {
	_, ok := engines[id]
	return ok
}

// Generate produces a fresh unsorted value slice of the given length with
// values drawn uniformly from [min, max]. Time-seeded; use GenerateSeeded
// when reproducibility matters.
func Generate(size, min, max int) ([]int, error) {
	return GenerateSeeded(size, min, max, time.Now().UnixNano())
}

// GenerateSeeded is Generate with an explicit seed so benchmark runs and
// tests can replay the exact same input.
func GenerateSeeded(size, min, max int, seed int64) ([]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidInput, size)
	}
	if min > max {
		return nil, fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidInput, min, max)
	}

	rng := rand.New(rand.NewSource(seed))
	values := make([]int, size)
	span := max - min + 1
	for i := range values {
		values[i] = min + rng.Intn(span)
	}
	return values, nil
}

// newElements wraps raw values in Elements with all flags cleared.
func newElements(values []int) []Element {
	elems := make([]Element, len(values))
	for i, v := range values {
		elems[i] = Element{Value: v}
	}
	return elems
}
