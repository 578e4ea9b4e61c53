package engine

// heapSort builds a max-heap in place, then repeatedly swaps the root with
// the shrinking heap boundary. Each extracted boundary position is final
// immediately; index 0 is last, once the single-element heap trivially
// resolves.
func heapSort(a []int, em Emitter) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n, em)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		em.Swap(0, end)
		em.MarkSorted(end)
		siftDown(a, 0, end, em)
	}
	em.MarkSorted(0)
}

// siftDown restores the max-heap property for the heap of the given size
// rooted at root.
func siftDown(a []int, root, size int, em Emitter) {
	for {
		largest := root
		left := 2*root + 1
		right := 2*root + 2

		if left < size {
			em.Compare(left, largest)
			if a[left] > a[largest] {
				largest = left
			}
		}
		if right < size {
			em.Compare(right, largest)
			if a[right] > a[largest] {
				largest = right
			}
		}
		if largest == root {
			return
		}

		a[root], a[largest] = a[largest], a[root]
		em.Swap(root, largest)
		root = largest
	}
}
