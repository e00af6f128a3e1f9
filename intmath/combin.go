package intmath

// Product returns the cartesian power of args repeated repeat times, in
// lexicographic index order.
func Product[T any](args []T, repeat int) [][]T {
	result := [][]T{{}}
	for range repeat {
		next := make([][]T, 0, len(result)*len(args))
		for _, prefix := range result {
			for _, v := range args {
				item := make([]T, len(prefix), len(prefix)+1)
				copy(item, prefix)
				next = append(next, append(item, v))
			}
		}
		result = next
	}
	return result
}

// Permutations returns all k-permutations of values in lexicographic index
// order.
func Permutations[T any](values []T, k int) [][]T {
	var result [][]T
	permutationIndexes(k, len(values), func(indexes []int) {
		perm := make([]T, k)
		for i, idx := range indexes {
			perm[i] = values[idx]
		}
		result = append(result, perm)
	})
	return result
}

// permutationIndexes invokes fn with each k-permutation of 0..n-1, reusing
// the same backing slice across calls.
func permutationIndexes(k, n int, fn func(indexes []int)) {
	if k > n {
		panic("intmath: permutation length exceeds value count")
	}
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	cycles := make([]int, k)
	for i := range cycles {
		cycles[i] = n - i
	}
	fn(indexes[:k])
outer:
	for {
		for i := k - 1; i >= 0; i-- {
			cycles[i]--
			if cycles[i] == 0 {
				// indexes[i:] = indexes[i+1:] + indexes[i:i+1]
				first := indexes[i]
				copy(indexes[i:], indexes[i+1:])
				indexes[n-1] = first
				cycles[i] = n - i
			} else {
				j := cycles[i]
				indexes[i], indexes[n-j] = indexes[n-j], indexes[i]
				fn(indexes[:k])
				continue outer
			}
		}
		return
	}
}

// Combinations returns all k-element index combinations of 0..n-1 in
// lexicographic order.
func Combinations(n, k int) [][]int {
	if k > n || k < 0 {
		return nil
	}
	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}
	var result [][]int
	for {
		combo := make([]int, k)
		copy(combo, indexes)
		result = append(result, combo)

		i := k - 1
		for i >= 0 && indexes[i] == i+n-k {
			i--
		}
		if i < 0 {
			return result
		}
		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}
