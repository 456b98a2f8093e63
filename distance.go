package pairdiff

import "sort"

// TotalDistance pairs the smallest remaining value of left with the
// smallest remaining value of right and sums the absolute differences.
// Both slices are copied before sorting so the caller's (possibly shared)
// slices are never reordered; when the lengths differ, pairing stops at the
// shorter one. The sum accumulates in int64, which 32-bit-range inputs
// cannot overflow.
func TotalDistance(left, right []int) int64 {
	l := make([]int, len(left))
	copy(l, left)
	r := make([]int, len(right))
	copy(r, right)
	sort.Ints(l)
	sort.Ints(r)

	n := len(l)
	if len(r) < n {
		n = len(r)
	}
	var total int64
	for i := 0; i < n; i++ {
		d := int64(l[i]) - int64(r[i])
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}
