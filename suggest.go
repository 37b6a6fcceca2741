package bpaf

import "github.com/sahilm/fuzzy"

// damerauLevenshtein computes the optimal-string-alignment edit distance
// between a and b (insertions, deletions, substitutions, and adjacent
// transpositions each cost 1). closestName uses it as the hard cutoff for
// "this is plausibly a typo of that name"; fuzzy ranking (rankSuggestions)
// is only used when no candidate is within that cutoff.
func damerauLevenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := d[i-1][j] + 1
			ins := d[i][j-1] + 1
			sub := d[i-1][j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := d[i-2][j-2] + cost; t < best {
					best = t
				}
			}
			d[i][j] = best
		}
	}
	return d[n][m]
}

// closestName finds the candidate nearest to literal by edit distance,
// provided it's within maxDistance and shares at least one rune with
// literal (§4.10: distance alone lets two short, unrelated names look
// "close" by coincidence, e.g. "-x" to "-y").
func closestName(literal string, candidates []string, maxDistance int) (string, bool) {
	best, bestDist := "", maxDistance+1
	for _, c := range candidates {
		if !shareRune(literal, c) {
			continue
		}
		if d := damerauLevenshtein(literal, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= maxDistance
}

// shareRune reports whether a and b have at least one rune in common.
func shareRune(a, b string) bool {
	seen := make(map[rune]bool, len(a))
	for _, r := range a {
		seen[r] = true
	}
	for _, r := range b {
		if seen[r] {
			return true
		}
	}
	return false
}

// rankSuggestions orders candidates by fuzzy-match quality against
// literal, keeping at most limit of them. Residual classification uses it
// to list the expected names when closestName finds no candidate within
// its cutoff.
func rankSuggestions(literal string, candidates []string, limit int) []string {
	matches := fuzzy.Find(literal, candidates)
	out := make([]string, 0, limit)
	for i, m := range matches {
		if i >= limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
