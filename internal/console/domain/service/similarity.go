package service

// Ratio measures character-level sequence similarity between two strings and
// returns a score in [0.0, 1.0]. It is the longest-matching-blocks ratio
// 2*M/T, where M is the total length of matching contiguous blocks found by
// recursively taking the longest common block and re-running on the left and
// right remainders, and T is the combined length of both inputs.
//
// Two empty strings are considered identical and score 1.0. The function is
// commutative and deterministic, performs no case or whitespace
// normalization, and has no side effects; callers are expected to lower-case
// and concatenate their inputs beforehand.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchingTotal(ra, rb, 0, len(ra), 0, len(rb))
	return 2.0 * float64(matched) / float64(total)
}

// matchingTotal sums the lengths of all matching blocks within
// a[alo:ahi] and b[blo:bhi].
func matchingTotal(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, k := findLongestMatch(a, b, alo, ahi, blo, bhi)
	if k == 0 {
		return 0
	}
	return k +
		matchingTotal(a, b, alo, i, blo, j) +
		matchingTotal(a, b, i+k, ahi, j+k, bhi)
}

// findLongestMatch locates the longest block such that
// a[i:i+k] == b[j:j+k] with alo <= i <= i+k <= ahi and blo <= j <= j+k <= bhi.
// Among blocks of maximal length the one starting earliest in a, then
// earliest in b, wins, which keeps the recursion deterministic.
func findLongestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj, bestk = alo, blo, 0

	// j2len[j] is the length of the longest match ending with a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestk
}
