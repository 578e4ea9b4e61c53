package engine

// quickSort uses the Lomuto partition scheme with the last element of each
// sub-range as pivot. No element is in a provably final position until the
// full recursion resolves, so sorted marks are applied only at the end.
func quickSort(a []int, em Emitter) {
	quickRange(a, 0, len(a)-1, em)
	for i := range a {
		em.MarkSorted(i)
	}
}

func quickRange(a []int, lo, hi int, em Emitter) {
	if lo >= hi {
		return
	}
	p := partition(a, lo, hi, em)
	quickRange(a, lo, p-1, em)
	quickRange(a, p+1, hi, em)
}

// partition moves everything smaller than the pivot left of a running
// boundary, then swaps the pivot into the boundary position and returns it.
func partition(a []int, lo, hi int, em Emitter) int {
	pivot := a[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		em.Compare(j, hi)
		if a[j] < pivot {
			i++
			if i != j {
				a[i], a[j] = a[j], a[i]
				em.Swap(i, j)
			}
		}
	}
	if i+1 != hi {
		a[i+1], a[hi] = a[hi], a[i+1]
		em.Swap(i+1, hi)
	}
	return i + 1
}
