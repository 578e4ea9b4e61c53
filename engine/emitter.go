package engine

// Stats accumulates the operation counters for one run. Comparisons and
// Swaps only ever grow while a run is active; ElapsedMS is filled in once
// on completion. In interactive mode the elapsed time includes pacing
// delays (it reflects the visualized run), in silent mode it is pure
// computation.
type Stats struct {
	Comparisons uint64 `json:"comparisons"`
	Swaps       uint64 `json:"swaps"`
	ElapsedMS   int64  `json:"elapsed_ms"`
}

// Emitter is the step-reporting capability handed to every sort engine.
// Engines mutate their working slice themselves and report each step here.
// The interactive implementation mirrors the mutation into a renderable
// Element slice, publishes a snapshot and suspends per the pacer; the
// silent implementation only counts, so benchmark runs execute the exact
// same algorithmic work at full speed.
type Emitter interface {
	// Compare reports one comparison between positions i and j.
	Compare(i, j int)
	// Swap reports that positions i and j were just exchanged.
	Swap(i, j int)
	// Place reports that value was just written to position i (merge
	// placement). Counted as a swap.
	Place(i, value int)
	// MarkSorted reports that position i has reached its final place.
	MarkSorted(i int)
}

// silentEmitter counts operations and nothing else. It carries no Element
// state at all, so silent runs work on bare values.
type silentEmitter struct {
	stats *Stats
}

func (s *silentEmitter) Compare(i, j int) { s.stats.Comparisons++ }
func (s *silentEmitter) Swap(i, j int)    { s.stats.Swaps++ }
func (s *silentEmitter) Place(i, v int)   { s.stats.Swaps++ }
func (s *silentEmitter) MarkSorted(i int) {}

// liveEmitter mirrors every reported step into its Element slice, pushes a
// snapshot to the session's update callback and suspends according to the
// pacer. The transient Comparing/Swapping flags are cleared when the step's
// suspension ends; Sorted stays set for the rest of the run.
type liveEmitter struct {
	elems   []Element
	stats   *Stats
	session *Session
}

func newLiveEmitter(values []int, stats *Stats, session *Session) *liveEmitter {
	return &liveEmitter{
		elems:   newElements(values),
		stats:   stats,
		session: session,
	}
}

func (l *liveEmitter) Compare(i, j int) {
	l.stats.Comparisons++
	l.elems[i].Comparing = true
	l.elems[j].Comparing = true
	l.step()
	l.elems[i].Comparing = false
	l.elems[j].Comparing = false
}

func (l *liveEmitter) Swap(i, j int) {
	l.stats.Swaps++
	l.elems[i].Value, l.elems[j].Value = l.elems[j].Value, l.elems[i].Value
	l.elems[i].Swapping = true
	l.elems[j].Swapping = true
	l.session.notifySwap(i, j)
	l.step()
	l.elems[i].Swapping = false
	l.elems[j].Swapping = false
}

func (l *liveEmitter) Place(i, value int) {
	l.stats.Swaps++
	l.elems[i].Value = value
	l.elems[i].Swapping = true
	l.session.notifySwap(i, i)
	l.step()
	l.elems[i].Swapping = false
}

func (l *liveEmitter) MarkSorted(i int) {
	l.elems[i].Sorted = true
	l.step()
}

// step publishes the current snapshot and blocks until the pacer admits
// continuation.
func (l *liveEmitter) step() {
	l.session.publish(l.snapshot())
	l.session.pacer.Wait(l.session.speed)
}

// snapshot returns a private copy so the caller's render loop never
// aliases the slice the engine is still mutating.
func (l *liveEmitter) snapshot() []Element {
	out := make([]Element, len(l.elems))
	copy(out, l.elems)
	return out
}
