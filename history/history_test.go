package history

import (
	"sync"
	"testing"

	"github.com/Leghis/sorting-visualizer/engine"
)

func TestRecorderAppendsInOrder(t *testing.T) {
	r := NewRecorder()

	first := r.Record(engine.Bubble, 10, engine.Stats{Comparisons: 45, Swaps: 20, ElapsedMS: 3})
	second := r.Record(engine.Quick, 10, engine.Stats{Comparisons: 30, Swaps: 12, ElapsedMS: 1})

	if first.ID == "" || second.ID == "" {
		t.Fatal("entries must carry ids")
	}
	if first.ID == second.ID {
		t.Error("entry ids must be unique")
	}
	if first.Timestamp.IsZero() || second.Timestamp.IsZero() {
		t.Error("entries must carry timestamps")
	}

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].ID != first.ID || entries[1].ID != second.ID {
		t.Error("entries not in insertion order")
	}
	if entries[0].Algorithm != engine.Bubble || entries[0].Comparisons != 45 {
		t.Errorf("first entry = %+v, want bubble with 45 comparisons", entries[0])
	}
}

func TestRecorderEntriesReturnsCopy(t *testing.T) {
	r := NewRecorder()
	r.Record(engine.Merge, 16, engine.Stats{Comparisons: 33, Swaps: 64})

	entries := r.Entries()
	entries[0].Comparisons = 0

	if got := r.Entries()[0].Comparisons; got != 33 {
		t.Errorf("recorded entry mutated through the returned slice: comparisons = %d", got)
	}
}

func TestRecorderEntriesFor(t *testing.T) {
	r := NewRecorder()
	r.Record(engine.Bubble, 10, engine.Stats{Comparisons: 45})
	r.Record(engine.Quick, 10, engine.Stats{Comparisons: 30})
	r.Record(engine.Bubble, 20, engine.Stats{Comparisons: 190})

	bubble := r.EntriesFor(engine.Bubble)
	if len(bubble) != 2 {
		t.Fatalf("len = %d, want 2", len(bubble))
	}
	if bubble[0].ArraySize != 10 || bubble[1].ArraySize != 20 {
		t.Errorf("entries out of order: %+v", bubble)
	}

	if got := r.EntriesFor(engine.Heap); got != nil {
		t.Errorf("expected nil for unrecorded algorithm, got %v", got)
	}
}

func TestRecorderAggregates(t *testing.T) {
	r := NewRecorder()
	r.Record(engine.Bubble, 10, engine.Stats{Comparisons: 40, ElapsedMS: 4})
	r.Record(engine.Bubble, 10, engine.Stats{Comparisons: 50, ElapsedMS: 8})
	r.Record(engine.Heap, 10, engine.Stats{Comparisons: 22, ElapsedMS: 2})

	aggs := r.Aggregates()
	if len(aggs) != 2 {
		t.Fatalf("len(aggs) = %d, want 2", len(aggs))
	}

	bubble := aggs[engine.Bubble]
	if bubble.Runs != 2 {
		t.Errorf("bubble runs = %d, want 2", bubble.Runs)
	}
	if bubble.MeanComparisons != 45 {
		t.Errorf("bubble mean comparisons = %f, want 45", bubble.MeanComparisons)
	}
	if bubble.MeanElapsedMS != 6 {
		t.Errorf("bubble mean elapsed = %f, want 6", bubble.MeanElapsedMS)
	}

	heap := aggs[engine.Heap]
	if heap.Runs != 1 || heap.MeanComparisons != 22 {
		t.Errorf("heap aggregate = %+v", heap)
	}

	// Aggregates are derived on demand: a new record shows up immediately.
	r.Record(engine.Heap, 10, engine.Stats{Comparisons: 26, ElapsedMS: 4})
	if got := r.Aggregates()[engine.Heap].MeanComparisons; got != 24 {
		t.Errorf("heap mean after new record = %f, want 24", got)
	}
}

func TestRecorderConcurrentRecord(t *testing.T) {
	r := NewRecorder()
	algs := engine.Algorithms()

	var wg sync.WaitGroup
	for _, alg := range algs {
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(alg engine.Algorithm) {
				defer wg.Done()
				r.Record(alg, 10, engine.Stats{Comparisons: 1})
			}(alg)
		}
	}
	wg.Wait()

	if r.Len() != len(algs)*8 {
		t.Fatalf("Len = %d, want %d", r.Len(), len(algs)*8)
	}
	for _, alg := range algs {
		if got := len(r.EntriesFor(alg)); got != 8 {
			t.Errorf("%s index holds %d entries, want 8", alg, got)
		}
	}

	seen := make(map[string]bool)
	for _, e := range r.Entries() {
		if seen[e.ID] {
			t.Fatalf("duplicate entry id %s", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestRecorderEmptyAggregates(t *testing.T) {
	r := NewRecorder()
	if aggs := r.Aggregates(); len(aggs) != 0 {
		t.Errorf("expected no aggregates on an empty log, got %v", aggs)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}
