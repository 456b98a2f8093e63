package pairdiff

import "github.com/pairdiff/pairdiff/internal/freq"

// SimilarityScore weighs every left-column value by how often it appears in
// the right column and sums value*count. Values absent from the right
// column contribute nothing; duplicates in the left column contribute once
// per occurrence. The order of either input is irrelevant.
func SimilarityScore(left, right []int) int64 {
	counts := freq.New(right)
	var score int64
	for _, v := range left {
		score += int64(v) * int64(counts.Count(v))
	}
	return score
}
