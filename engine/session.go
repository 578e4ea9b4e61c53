package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

var (
	// ErrInvalidInput flags empty or malformed input handed to Generate or
	// a run entry point.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRunActive flags an interactive run requested while another one is
	// still in flight on the same session.
	ErrRunActive = errors.New("a run is already active on this session")
)

// Session is the explicit per-visualizer context for interactive runs: the
// pacer, the update/swap callbacks and the single-run guard all live here
// rather than in package globals, so independent sessions never interfere.
type Session struct {
	// OnUpdate receives a private snapshot of the element slice after
	// every reported step. Called from the run's goroutine.
	OnUpdate func([]Element)

	// OnSwap, when set, is called once per swap or placement. Feedback
	// hook only (terminal bell, tone); the core attaches no meaning to it.
	OnSwap func(i, j int)

	pacer   Pacer
	speed   int
	running atomic.Bool
}

// NewSession creates a session with the given speed setting.
func NewSession(speed int) *Session {
	return &Session{speed: speed}
}

// Pacer exposes the session's pacing controller for pause/resume.
func (s *Session) Pacer() *Pacer {
	return &s.pacer
}

// SetSpeed adjusts the speed setting used by subsequent steps. Safe to
// call between runs; mid-run changes take effect on the next step.
func (s *Session) SetSpeed(speed int) {
	s.speed = speed
}

// Active reports whether an interactive run is currently in flight.
func (s *Session) Active() bool {
	return s.running.Load()
}

// Run executes the chosen algorithm interactively on a private copy of
// values, emitting paced, observable steps through the session callbacks.
// It blocks until the array is fully sorted and returns the final element
// state plus the run's statistics. ElapsedMS includes pacing delays
// deliberately: it is the visualized duration, not algorithmic cost.
//
// A second Run while one is in flight returns ErrRunActive; the first run
// is unaffected.
func (s *Session) Run(alg Algorithm, values []int) ([]Element, Stats, error) {
	sortFn, ok := engines[alg]
	if !ok {
		return nil, Stats{}, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, alg)
	}
	if !s.running.CompareAndSwap(false, true) {
		return nil, Stats{}, ErrRunActive
	}
	defer s.running.Store(false)

	work := make([]int, len(values))
	copy(work, values)

	var stats Stats
	em := newLiveEmitter(work, &stats, s)

	start := time.Now()
	if len(work) > 0 {
		sortFn(work, em)
	}
	stats.ElapsedMS = time.Since(start).Milliseconds()

	s.publish(em.snapshot())
	return em.snapshot(), stats, nil
}

// RunSilent executes the chosen algorithm on a private copy of values with
// no pacing, no pause checks and no element state at all. Only the
// counters move. This is the benchmark path; it runs the identical code as
// Run, so the counts measure the same algorithmic work.
func RunSilent(alg Algorithm, values []int) ([]int, Stats, error) {
	sortFn, ok := engines[alg]
	if !ok {
		return nil, Stats{}, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, alg)
	}

	work := make([]int, len(values))
	copy(work, values)

	var stats Stats
	em := &silentEmitter{stats: &stats}

	start := time.Now()
	if len(work) > 0 {
		sortFn(work, em)
	}
	stats.ElapsedMS = time.Since(start).Milliseconds()

	return work, stats, nil
}

func (s *Session) publish(snapshot []Element) {
	if s.OnUpdate != nil {
		s.OnUpdate(snapshot)
	}
}

func (s *Session) notifySwap(i, j int) {
	if s.OnSwap != nil {
		s.OnSwap(i, j)
	}
}
