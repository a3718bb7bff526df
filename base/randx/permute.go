// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// Sequential returns the indexes 0..n-1 in order.
func Sequential(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// SwapPermute permutes idx in place by swapping each element i
// with an element j drawn from the full range [0, len(idx)).
// Unlike [Rand.Shuffle], j is not restricted to the remaining
// suffix, so the permutations are not equally likely.
func SwapPermute(idx []int, rnd Rand) {
	n := len(idx)
	for i := range n {
		j := rnd.Intn(n)
		idx[i], idx[j] = idx[j], idx[i]
	}
}

// ShufflePermute permutes idx in place with [Rand.Shuffle],
// so that all permutations are equally likely.
func ShufflePermute(idx []int, rnd Rand) {
	rnd.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
}
