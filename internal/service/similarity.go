package service

import "strings"

// Similarity returns a normalized similarity score in [0, 1] between two
// strings using the Dice coefficient over character bigrams. Both inputs are
// lowercased, stripped of punctuation, and whitespace-collapsed before
// comparison, so "Help Kids!" and "help kids" score as identical.
func Similarity(a, b string) float64 {
	na := normalizeText(a)
	nb := normalizeText(b)

	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	ba := bigrams(na)
	bb := bigrams(nb)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}

	var overlap int
	for gram, count := range ba {
		if other, ok := bb[gram]; ok {
			if other < count {
				overlap += other
			} else {
				overlap += count
			}
		}
	}

	return 2 * float64(overlap) / float64(totalGrams(ba)+totalGrams(bb))
}

// normalizeText lowercases, drops everything but letters, digits, and spaces,
// and collapses runs of whitespace to a single space.
func normalizeText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !lastSpace {
				sb.WriteByte(' ')
				lastSpace = true
			}
		default:
			// punctuation and symbols are dropped entirely
		}
	}

	return strings.TrimRight(sb.String(), " ")
}

func bigrams(s string) map[string]int {
	grams := make(map[string]int)
	runes := []rune(s)
	for i := 0; i+1 < len(runes); i++ {
		grams[string(runes[i:i+2])]++
	}
	return grams
}

func totalGrams(grams map[string]int) int {
	var total int
	for _, count := range grams {
		total += count
	}
	return total
}
