package lexicon

import "github.com/layaalk/PVI-AU/phonetic"

// PhoneEditDistance computes the Levenshtein edit distance between two phone
// spellings, counted in runes so combining marks weigh one edit each.
func PhoneEditDistance(a, b string) int {
	return editDistance([]rune(a), []rune(b))
}

func editDistance(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Use single-row DP to save memory.
	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur := make([]int, lb+1)
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev = cur
	}
	return prev[lb]
}

// Nearest returns the inventory phone closest to phone. Ties go to the
// phone that sorts first. It returns "" for an empty inventory.
func Nearest(phone string, inv phonetic.Inventory) string {
	best, bestDist := "", -1
	for _, p := range inv.Sorted() {
		d := PhoneEditDistance(phone, p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
