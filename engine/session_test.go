package engine

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSessionRunSortsAndMarksEverything(t *testing.T) {
	s := NewSession(MaxSpeed)

	var mu sync.Mutex
	var snapshots int
	s.OnUpdate = func(elems []Element) {
		mu.Lock()
		snapshots++
		mu.Unlock()
	}

	elems, stats, err := s.Run(Bubble, []int{5, 3, 8, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 3, 5, 8}
	for i := range want {
		if elems[i].Value != want[i] {
			t.Fatalf("values = %v, want %v", elems, want)
		}
		if !elems[i].Sorted {
			t.Errorf("element %d not marked sorted at completion", i)
		}
		if elems[i].Comparing || elems[i].Swapping {
			t.Errorf("element %d left with transient flags set", i)
		}
	}

	if stats.Comparisons != 6 || stats.Swaps != 4 {
		t.Errorf("stats = %+v, want 6 comparisons and 4 swaps", stats)
	}

	mu.Lock()
	defer mu.Unlock()
	if snapshots == 0 {
		t.Error("no snapshots published during interactive run")
	}
}

func TestSessionRunMatchesSilentCounts(t *testing.T) {
	values, err := GenerateSeeded(12, 1, 50, 3)
	if err != nil {
		t.Fatalf("GenerateSeeded failed: %v", err)
	}

	for _, alg := range Algorithms() {
		_, silent, err := RunSilent(alg, values)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", alg, err)
		}

		s := NewSession(MaxSpeed)
		_, live, err := s.Run(alg, values)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", alg, err)
		}

		if live.Comparisons != silent.Comparisons || live.Swaps != silent.Swaps {
			t.Errorf("%s: interactive counts %+v differ from silent counts %+v", alg, live, silent)
		}
	}
}

func TestSessionRejectsConcurrentRun(t *testing.T) {
	s := NewSession(80) // slow enough that the run is still active

	started := make(chan struct{})
	var once sync.Once
	s.OnUpdate = func([]Element) {
		once.Do(func() { close(started) })
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, _, err := s.Run(Bubble, []int{3, 1, 2}); err != nil {
			t.Errorf("first run failed: %v", err)
		}
	}()

	<-started
	if _, _, err := s.Run(Bubble, []int{3, 1, 2}); !errors.Is(err, ErrRunActive) {
		t.Errorf("second run error = %v, want ErrRunActive", err)
	}

	<-done
	// The session is free again once the first run completed.
	if s.Active() {
		t.Error("session still marked active after run completed")
	}
}

func TestSessionPauseResumePreservesOutcome(t *testing.T) {
	values := []int{9, 1, 8, 2, 7, 3}

	_, silent, err := RunSilent(Quick, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := NewSession(MaxSpeed)
	started := make(chan struct{})
	var once sync.Once
	s.OnUpdate = func([]Element) {
		once.Do(func() { close(started) })
	}

	type result struct {
		elems []Element
		stats Stats
		err   error
	}
	resCh := make(chan result, 1)
	go func() {
		elems, stats, err := s.Run(Quick, values)
		resCh <- result{elems, stats, err}
	}()

	<-started
	s.Pacer().Pause()
	time.Sleep(300 * time.Millisecond)

	select {
	case <-resCh:
		t.Fatal("run completed while paused")
	default:
	}

	s.Pacer().Resume()
	res := <-resCh
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	want := []int{1, 2, 3, 7, 8, 9}
	for i := range want {
		if res.elems[i].Value != want[i] {
			t.Fatalf("values after pause/resume = %v, want %v", res.elems, want)
		}
	}
	if res.stats.Comparisons != silent.Comparisons || res.stats.Swaps != silent.Swaps {
		t.Errorf("counts after pause/resume %+v differ from uninterrupted %+v", res.stats, silent)
	}
}

func TestSessionRunEmptyInput(t *testing.T) {
	s := NewSession(MaxSpeed)
	elems, stats, err := s.Run(Merge, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(elems) != 0 {
		t.Errorf("got %v, want empty", elems)
	}
	if stats.Comparisons != 0 || stats.Swaps != 0 {
		t.Errorf("expected zero operations, got %+v", stats)
	}
}

func TestSessionRunUnknownAlgorithm(t *testing.T) {
	s := NewSession(MaxSpeed)
	_, _, err := s.Run("bogo", []int{2, 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}
