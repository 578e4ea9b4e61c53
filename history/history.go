// Package history keeps the append-only log of completed runs and serves
// per-algorithm aggregates derived from it.
package history

import (
	"sync"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/google/uuid"

	"github.com/Leghis/sorting-visualizer/engine"
)

// Entry is an immutable snapshot of one finished run. Entries are appended
// in completion order and never reordered, mutated or pruned.
type Entry struct {
	ID          string           `json:"id"`
	Algorithm   engine.Algorithm `json:"algorithm"`
	ArraySize   int              `json:"array_size"`
	Comparisons uint64           `json:"comparisons"`
	Swaps       uint64           `json:"swaps"`
	ElapsedMS   int64            `json:"elapsed_ms"`
	Timestamp   time.Time        `json:"timestamp"`
}

// Aggregate is the derived per-algorithm summary of the log.
type Aggregate struct {
	Runs            int     `json:"runs"`
	MeanElapsedMS   float64 `json:"mean_elapsed_ms"`
	MeanComparisons float64 `json:"mean_comparisons"`
}

// Recorder owns the history log. The log and the per-algorithm index are
// updated together under the mutex, so appends are safe from any
// goroutine; index lookups stay lock-free, so per-algorithm readers never
// contend with an append.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry

	// algorithm id -> indices into entries, in append order
	index *haxmap.Map[string, []int]
}

// NewRecorder creates an empty history log.
func NewRecorder() *Recorder {
	return &Recorder{
		index: haxmap.New[string, []int](),
	}
}

// Record finalizes one run into an Entry, appends it and returns it. The
// id is a fresh UUID, the timestamp the moment of recording.
func (r *Recorder) Record(alg engine.Algorithm, arraySize int, stats engine.Stats) Entry {
	entry := Entry{
		ID:          uuid.NewString(),
		Algorithm:   alg,
		ArraySize:   arraySize,
		Comparisons: stats.Comparisons,
		Swaps:       stats.Swaps,
		ElapsedMS:   stats.ElapsedMS,
		Timestamp:   time.Now(),
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	pos := len(r.entries) - 1
	key := string(alg)
	indices, _ := r.index.Get(key)
	r.index.Set(key, append(indices, pos))
	r.mu.Unlock()

	return entry
}

// Entries returns a copy of the full log in insertion order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// EntriesFor returns the log entries for a single algorithm, in insertion
// order.
func (r *Recorder) EntriesFor(alg engine.Algorithm) []Entry {
	indices, ok := r.index.Get(string(alg))
	if !ok {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, 0, len(indices))
	for _, i := range indices {
		out = append(out, r.entries[i])
	}
	return out
}

// Len returns the number of recorded runs.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Aggregates computes the mean elapsed time and mean comparison count per
// algorithm from the current log. Computed on every call, never cached, so
// it always reflects the latest appends.
func (r *Recorder) Aggregates() map[engine.Algorithm]Aggregate {
	entries := r.Entries()

	type sums struct {
		runs        int
		elapsed     int64
		comparisons uint64
	}
	byAlg := make(map[engine.Algorithm]*sums)
	for _, e := range entries {
		s := byAlg[e.Algorithm]
		if s == nil {
			s = &sums{}
			byAlg[e.Algorithm] = s
		}
		s.runs++
		s.elapsed += e.ElapsedMS
		s.comparisons += e.Comparisons
	}

	out := make(map[engine.Algorithm]Aggregate, len(byAlg))
	for alg, s := range byAlg {
		out[alg] = Aggregate{
			Runs:            s.runs,
			MeanElapsedMS:   float64(s.elapsed) / float64(s.runs),
			MeanComparisons: float64(s.comparisons) / float64(s.runs),
		}
	}
	return out
}
