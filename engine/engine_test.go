package engine

import (
	"sort"
	"testing"
)

// recordingEmitter captures the raw step stream for assertions on engine
// behavior.
type recordingEmitter struct {
	stats      Stats
	compares   [][2]int
	swaps      [][2]int
	placements []struct{ index, value int }
	marks      []int
}

func (r *recordingEmitter) Compare(i, j int) {
	r.stats.Comparisons++
	r.compares = append(r.compares, [2]int{i, j})
}

func (r *recordingEmitter) Swap(i, j int) {
	r.stats.Swaps++
	r.swaps = append(r.swaps, [2]int{i, j})
}

func (r *recordingEmitter) Place(i, value int) {
	r.stats.Swaps++
	r.placements = append(r.placements, struct{ index, value int }{i, value})
}

func (r *recordingEmitter) MarkSorted(i int) {
	r.marks = append(r.marks, i)
}

func isNonDecreasing(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func TestRunSilentSortsAllAlgorithms(t *testing.T) {
	inputs := [][]int{
		{5, 3, 8, 1},
		{1},
		{2, 1},
		{1, 1, 1},
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
		{1, 2, 3, 4, 5},
		{42, 42, 17, 42, 17},
	}

	for _, alg := range Algorithms() {
		for _, input := range inputs {
			sorted, stats, err := RunSilent(alg, input)
			if err != nil {
				t.Fatalf("%s on %v: unexpected error: %v", alg, input, err)
			}
			if !isNonDecreasing(sorted) {
				t.Errorf("%s on %v: output %v is not sorted", alg, input, sorted)
			}
			if !sameMultiset(input, sorted) {
				t.Errorf("%s on %v: output %v is not a permutation of the input", alg, input, sorted)
			}
			if stats.ElapsedMS < 0 {
				t.Errorf("%s on %v: negative elapsed time %d", alg, input, stats.ElapsedMS)
			}
		}
	}
}

func TestRunSilentLargeRandomInput(t *testing.T) {
	values, err := GenerateSeeded(500, 1, 1000, 7)
	if err != nil {
		t.Fatalf("GenerateSeeded failed: %v", err)
	}

	for _, alg := range Algorithms() {
		sorted, stats, err := RunSilent(alg, values)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", alg, err)
		}
		if !isNonDecreasing(sorted) {
			t.Errorf("%s: output not sorted", alg)
		}
		if !sameMultiset(values, sorted) {
			t.Errorf("%s: output not a permutation of the input", alg)
		}
		if stats.Comparisons == 0 || stats.Swaps == 0 {
			t.Errorf("%s: expected non-zero counters on random input, got %+v", alg, stats)
		}
	}
}

func TestRunSilentDoesNotMutateInput(t *testing.T) {
	input := []int{5, 3, 8, 1}
	for _, alg := range Algorithms() {
		if _, _, err := RunSilent(alg, input); err != nil {
			t.Fatalf("%s: unexpected error: %v", alg, err)
		}
		want := []int{5, 3, 8, 1}
		for i := range input {
			if input[i] != want[i] {
				t.Fatalf("%s: input mutated to %v", alg, input)
			}
		}
	}
}

func TestRunSilentEmptyInput(t *testing.T) {
	for _, alg := range Algorithms() {
		sorted, stats, err := RunSilent(alg, nil)
		if err != nil {
			t.Fatalf("%s on empty input: unexpected error: %v", alg, err)
		}
		if len(sorted) != 0 {
			t.Errorf("%s on empty input: got %v", alg, sorted)
		}
		if stats.Comparisons != 0 || stats.Swaps != 0 {
			t.Errorf("%s on empty input: expected zero operations, got %+v", alg, stats)
		}
	}
}

func TestRunSilentUnknownAlgorithm(t *testing.T) {
	_, _, err := RunSilent("bogo", []int{3, 1, 2})
	if err == nil {
		t.Fatal("expected an error for an unknown algorithm")
	}
}

func TestRunSilentDeterministicCounts(t *testing.T) {
	for _, alg := range Algorithms() {
		values, err := GenerateSeeded(120, 1, 500, 99)
		if err != nil {
			t.Fatalf("GenerateSeeded failed: %v", err)
		}

		_, first, err := RunSilent(alg, values)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", alg, err)
		}
		_, second, err := RunSilent(alg, values)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", alg, err)
		}

		if first.Comparisons != second.Comparisons || first.Swaps != second.Swaps {
			t.Errorf("%s: counts not deterministic: %+v vs %+v", alg, first, second)
		}
	}
}

func TestBubbleCountsOnKnownInput(t *testing.T) {
	// n*(n-1)/2 = 6 comparisons; swaps = number of inversions = 4:
	// (5,3), (5,1), (3,1), (8,1).
	sorted, stats, err := RunSilent(Bubble, []int{5, 3, 8, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 3, 5, 8}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("got %v, want %v", sorted, want)
		}
	}
	if stats.Comparisons != 6 {
		t.Errorf("comparisons = %d, want 6", stats.Comparisons)
	}
	if stats.Swaps != 4 {
		t.Errorf("swaps = %d, want 4", stats.Swaps)
	}
}

func TestBubbleMarksEachPassBoundary(t *testing.T) {
	em := &recordingEmitter{}
	bubbleSort([]int{5, 3, 8, 1}, em)

	wantMarks := []int{3, 2, 1, 0}
	if len(em.marks) != len(wantMarks) {
		t.Fatalf("marks = %v, want %v", em.marks, wantMarks)
	}
	for i := range wantMarks {
		if em.marks[i] != wantMarks[i] {
			t.Fatalf("marks = %v, want %v", em.marks, wantMarks)
		}
	}
}

func TestMergeSingleComparisonOnPair(t *testing.T) {
	_, stats, err := RunSilent(Merge, []int{2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Comparisons != 1 {
		t.Errorf("comparisons = %d, want 1", stats.Comparisons)
	}
	if stats.Swaps != 2 {
		t.Errorf("placements = %d, want 2", stats.Swaps)
	}
}

func TestMergeStableOnTies(t *testing.T) {
	// A tie must take the left run's head: with [1,1] the first placement
	// comes from the left run after exactly one comparison.
	em := &recordingEmitter{}
	mergeSort([]int{1, 1}, em)

	if em.stats.Comparisons != 1 {
		t.Errorf("comparisons = %d, want 1", em.stats.Comparisons)
	}
	if em.stats.Swaps != 2 {
		t.Errorf("placements = %d, want 2", em.stats.Swaps)
	}
	if len(em.placements) != 2 {
		t.Fatalf("placements recorded = %d, want 2", len(em.placements))
	}
	// First placement fills index 0; with a tie the left head wins, and
	// the tail drain then empties the right run.
	if em.placements[0].index != 0 {
		t.Errorf("first placement at index %d, want 0", em.placements[0].index)
	}
	if em.compares[0] != [2]int{0, 1} {
		t.Errorf("comparison reported at %v, want [0 1]", em.compares[0])
	}
}

func TestMergeTailDrainCountsPlacementsOnly(t *testing.T) {
	// Merging [1,2] with [3,4] exhausts the left run after 2 comparisons;
	// the right run's 2 elements drain with placements but no comparisons.
	em := &recordingEmitter{}
	mergeRuns([]int{1, 2, 3, 4}, 0, 1, 3, em)

	if em.stats.Comparisons != 2 {
		t.Errorf("comparisons = %d, want 2", em.stats.Comparisons)
	}
	if em.stats.Swaps != 4 {
		t.Errorf("placements = %d, want 4", em.stats.Swaps)
	}
}

func TestQuickSortedInputWithinWorstCaseBounds(t *testing.T) {
	sorted, stats, err := RunSilent(Quick, []int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range []int{1, 2, 3, 4, 5} {
		if sorted[i] != v {
			t.Fatalf("got %v, want unchanged sorted input", sorted)
		}
	}
	// Already-sorted input is Lomuto's worst case: exactly n*(n-1)/2
	// comparisons, and the boundary never moves so no swaps at all.
	if stats.Comparisons != 10 {
		t.Errorf("comparisons = %d, want 10", stats.Comparisons)
	}
	if stats.Swaps != 0 {
		t.Errorf("swaps = %d, want 0", stats.Swaps)
	}
}

func TestHeapSortedInputWithinWorstCaseBounds(t *testing.T) {
	sorted, stats, err := RunSilent(Heap, []int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range []int{1, 2, 3, 4, 5} {
		if sorted[i] != v {
			t.Fatalf("got %v, want value order unchanged", sorted)
		}
	}
	// Generous worst-case bound for n=5: 2*n*log2(n) + n.
	if stats.Comparisons == 0 || stats.Comparisons > 29 {
		t.Errorf("comparisons = %d, outside (0, 29]", stats.Comparisons)
	}
	if stats.Swaps > 29 {
		t.Errorf("swaps = %d, exceeds worst-case bound", stats.Swaps)
	}
}

func TestHeapMarksBoundariesIncrementally(t *testing.T) {
	em := &recordingEmitter{}
	heapSort([]int{4, 2, 7, 1}, em)

	wantMarks := []int{3, 2, 1, 0}
	if len(em.marks) != len(wantMarks) {
		t.Fatalf("marks = %v, want %v", em.marks, wantMarks)
	}
	for i := range wantMarks {
		if em.marks[i] != wantMarks[i] {
			t.Fatalf("marks = %v, want %v", em.marks, wantMarks)
		}
	}
}

func TestQuickMarksOnlyAfterCompletion(t *testing.T) {
	em := &recordingEmitter{}
	quickSort([]int{3, 1, 2}, em)

	if len(em.marks) != 3 {
		t.Fatalf("marks = %v, want all three indices", em.marks)
	}
	for i, m := range em.marks {
		if m != i {
			t.Fatalf("marks = %v, want ascending 0..2 after recursion resolves", em.marks)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	if _, err := GenerateSeeded(0, 1, 10, 1); err == nil {
		t.Error("expected error for size 0")
	}
	if _, err := GenerateSeeded(-3, 1, 10, 1); err == nil {
		t.Error("expected error for negative size")
	}
	if _, err := GenerateSeeded(5, 10, 1, 1); err == nil {
		t.Error("expected error for min > max")
	}
}

func TestGenerateSeededReproducible(t *testing.T) {
	a, err := GenerateSeeded(50, 1, 100, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateSeeded(50, 1, 100, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different arrays at %d: %d vs %d", i, a[i], b[i])
		}
		if a[i] < 1 || a[i] > 100 {
			t.Fatalf("value %d outside [1, 100]", a[i])
		}
	}
}
