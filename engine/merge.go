package engine

import "sync"

// mergeBufferPool recycles the scratch slices the merge phase copies its
// sub-runs into. Benchmark runs merge thousands of times back to back, so
// reusing buffers keeps the silent path allocation-light.
var mergeBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]int, 0, 64)
		return &buf
	},
}

func getMergeBuffer(n int) *[]int {
	bufp := mergeBufferPool.Get().(*[]int)
	if cap(*bufp) < n {
		*bufp = make([]int, 0, n)
	}
	*bufp = (*bufp)[:n]
	return bufp
}

func putMergeBuffer(bufp *[]int) {
	*bufp = (*bufp)[:0]
	mergeBufferPool.Put(bufp)
}

// mergeSort is top-down and stable: ties always take the left run's head.
// Every element moved back into place counts as one placement ("swap" in
// the counter model); elements moved while both runs are non-empty also
// count one comparison, tail drains count the placement only. Like quick
// sort, order isn't established until the whole array resolves, so sorted
// marks come last.
func mergeSort(a []int, em Emitter) {
	mergeRange(a, 0, len(a)-1, em)
	for i := range a {
		em.MarkSorted(i)
	}
}

func mergeRange(a []int, lo, hi int, em Emitter) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeRange(a, lo, mid, em)
	mergeRange(a, mid+1, hi, em)
	mergeRuns(a, lo, mid, hi, em)
}

// mergeRuns merges the two sorted sub-runs a[lo..mid] and a[mid+1..hi].
// Comparisons are reported against the positions the run heads originally
// occupied, which is what the visualization highlights.
func mergeRuns(a []int, lo, mid, hi int, em Emitter) {
	leftp := getMergeBuffer(mid - lo + 1)
	rightp := getMergeBuffer(hi - mid)
	defer putMergeBuffer(leftp)
	defer putMergeBuffer(rightp)

	left, right := *leftp, *rightp
	copy(left, a[lo:mid+1])
	copy(right, a[mid+1:hi+1])

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		em.Compare(lo+i, mid+1+j)
		if left[i] <= right[j] {
			a[k] = left[i]
			em.Place(k, left[i])
			i++
		} else {
			a[k] = right[j]
			em.Place(k, right[j])
			j++
		}
		k++
	}
	for i < len(left) {
		a[k] = left[i]
		em.Place(k, left[i])
		i++
		k++
	}
	for j < len(right) {
		a[k] = right[j]
		em.Place(k, right[j])
		j++
		k++
	}
}
