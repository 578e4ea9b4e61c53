// Package bench drives every requested sort engine in silent mode across a
// matrix of input sizes and collects the timing and operation-count series
// for comparison.
package bench

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/Leghis/sorting-visualizer/engine"
)

// Default value range for synthesized benchmark arrays.
const (
	DefaultMinValue = 1
	DefaultMaxValue = 1000
)

// silentRun is swapped in tests to inject failing pairs.
var silentRun = engine.RunSilent

// Result holds one algorithm's series across the requested sizes. The four
// slices are parallel, indexed by position in Sizes. A (algorithm, size)
// pair that failed appends nothing, so a missing size means "no data", not
// zero.
type Result struct {
	Algorithm   engine.Algorithm `json:"algorithm"`
	Sizes       []int            `json:"sizes"`
	TimesMS     []int64          `json:"times_ms"`
	Comparisons []uint64         `json:"comparisons"`
	Swaps       []uint64         `json:"swaps"`
}

// Matrix describes one benchmark request.
type Matrix struct {
	Sizes      []int
	Algorithms []engine.Algorithm
	Seed       int64 // 0 means time-based
	MinValue   int
	MaxValue   int
	Progress   bool // render a progress bar to stderr while running
}

// Run executes the full matrix sequentially, one (algorithm, size) pair at
// a time, each on a fresh seeded random array. All algorithms sort the
// identical array for a given size, so their counts are directly
// comparable, and re-running with the same seed reproduces the counts
// exactly. A panic in one pair is logged and skipped; the rest of the
// matrix still runs.
func Run(m Matrix) (map[engine.Algorithm]*Result, error) {
	if len(m.Sizes) == 0 {
		return nil, fmt.Errorf("%w: no benchmark sizes given", engine.ErrInvalidInput)
	}
	if len(m.Algorithms) == 0 {
		return nil, fmt.Errorf("%w: no benchmark algorithms given", engine.ErrInvalidInput)
	}
	for _, size := range m.Sizes {
		if size < 1 {
			return nil, fmt.Errorf("%w: benchmark size must be >= 1, got %d", engine.ErrInvalidInput, size)
		}
	}
	for _, alg := range m.Algorithms {
		if !engine.Valid(alg) {
			return nil, fmt.Errorf("%w: unknown algorithm %q", engine.ErrInvalidInput, alg)
		}
	}

	minValue, maxValue := m.MinValue, m.MaxValue
	if minValue == 0 && maxValue == 0 {
		minValue, maxValue = DefaultMinValue, DefaultMaxValue
	}
	if minValue > maxValue {
		return nil, fmt.Errorf("%w: min %d exceeds max %d", engine.ErrInvalidInput, minValue, maxValue)
	}

	seed := m.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var bar *progressbar.ProgressBar
	if m.Progress {
		bar = newProgressBar(int64(len(m.Algorithms) * len(m.Sizes)))
	}

	results := make(map[engine.Algorithm]*Result, len(m.Algorithms))
	for _, alg := range m.Algorithms {
		res := &Result{Algorithm: alg}
		for _, size := range m.Sizes {
			runPair(res, alg, size, minValue, maxValue, seed)
			if bar != nil {
				bar.Add(1)
			}
		}
		results[alg] = res
	}
	if bar != nil {
		bar.Finish()
	}

	return results, nil
}

// runPair benchmarks one (algorithm, size) pair. The per-size seed offset
// keeps the array identical across algorithms while still varying it
// across sizes. A recovered panic leaves this pair's slot absent.
func runPair(res *Result, alg engine.Algorithm, size, minValue, maxValue int, seed int64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("benchmark pair (%s, %d) failed: %v", alg, size, r)
		}
	}()

	values, err := engine.GenerateSeeded(size, minValue, maxValue, seed+int64(size))
	if err != nil {
		log.Printf("benchmark pair (%s, %d) failed: %v", alg, size, err)
		return
	}

	_, stats, err := silentRun(alg, values)
	if err != nil {
		log.Printf("benchmark pair (%s, %d) failed: %v", alg, size, err)
		return
	}

	res.Sizes = append(res.Sizes, size)
	res.TimesMS = append(res.TimesMS, stats.ElapsedMS)
	res.Comparisons = append(res.Comparisons, stats.Comparisons)
	res.Swaps = append(res.Swaps, stats.Swaps)
}

func newProgressBar(total int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("benchmarking"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
