package fft

import "fmt"

// Permutation returns the table that maps frequency-ordered positions to the
// positions where the DIF butterflies leave each bin: bin k of an n-point
// transform is found at butterfly output index perm[k].
//
// The table is built by bisection: the sequence 0..n-1 is cut in half, then
// every current sub-sequence is cut in half again with all first halves
// stacked before all second halves, until only single elements remain.
//
//	0 1 2 3 4 5 6 7  ->  [0 1 2 3] [4 5 6 7]
//	                 ->  [0 1] [4 5] [2 3] [6 7]
//	                 ->  0 4 2 6 1 5 3 7
//
// n must be a power of two.
func Permutation(n int) ([]int, error) {
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}

	lists := [][]int{seq}
	for len(lists[0]) > 1 {
		mid := len(lists[0]) / 2
		next := make([][]int, 0, 2*len(lists))

		for _, l := range lists {
			next = append(next, l[:mid])
		}

		for _, l := range lists {
			next = append(next, l[mid:])
		}

		lists = next
	}

	perm := make([]int, n)
	for i, l := range lists {
		perm[i] = l[0]
	}

	return perm, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
