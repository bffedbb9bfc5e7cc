package numbers

import "sort"

// Merge flattens the fetch outcomes into their distinct values, ascending.
// The result is never nil.
func Merge(outcomes [][]int64) []int64 {
	seen := make(map[int64]struct{})
	for _, outcome := range outcomes {
		for _, n := range outcome {
			seen[n] = struct{}{}
		}
	}

	merged := make([]int64, 0, len(seen))
	for n := range seen {
		merged = append(merged, n)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i] < merged[j]
	})

	return merged
}
