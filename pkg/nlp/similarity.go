package nlp

// fuzzyScore places pattern inside text allowing edits: Levenshtein distance
// with a free start and end in text, so "lotas" fits "which party has lotus
// symbol" with one error at offset 16. The score of a placement is its error
// ratio plus its offset over distance; the lowest one is returned.
func fuzzyScore(pattern, text []rune, distance float64) (float64, bool) {
	if len(pattern) == 0 {
		return 0, false
	}

	prev := make([]int, len(text)+1)
	prevStart := make([]int, len(text)+1)
	for j := range prev {
		prevStart[j] = j
	}

	cur := make([]int, len(text)+1)
	curStart := make([]int, len(text)+1)
	for i := 1; i <= len(pattern); i++ {
		cur[0], curStart[0] = i, 0
		for j := 1; j <= len(text); j++ {
			cost := 0
			if pattern[i-1] != text[j-1] {
				cost = 1
			}

			cur[j], curStart[j] = prev[j-1]+cost, prevStart[j-1]
			if d := prev[j] + 1; d < cur[j] {
				cur[j], curStart[j] = d, prevStart[j]
			}
			if d := cur[j-1] + 1; d < cur[j] {
				cur[j], curStart[j] = d, curStart[j-1]
			}
		}
		prev, cur = cur, prev
		prevStart, curStart = curStart, prevStart
	}

	m := float64(len(pattern))
	best := float64(prev[0])/m + float64(prevStart[0])/distance
	for j := 1; j <= len(text); j++ {
		if score := float64(prev[j])/m + float64(prevStart[j])/distance; score < best {
			best = score
		}
	}
	return best, true
}
