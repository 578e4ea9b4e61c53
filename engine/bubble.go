package engine

// bubbleSort runs the classic adjacent-pair double loop. Each pass bubbles
// the largest remaining value to the end of the unsorted region, so the
// inner bound shrinks by one per pass and the pass's last position is
// final as soon as the pass completes.
func bubbleSort(a []int, em Emitter) {
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			em.Compare(j, j+1)
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				em.Swap(j, j+1)
			}
		}
		em.MarkSorted(n - 1 - i)
	}
	em.MarkSorted(0)
}
