package classifier

import "strings"

// Minimum share of recognizable words below which text is treated as random.
const meaningfulThreshold = 0.2

// IsRandom reports whether the lowercased text looks like gibberish rather
// than a real template. Very short inputs are never random: there is not
// enough signal to judge them.
func IsRandom(text string, keywords []string) bool {
	if len(text) < 10 {
		return false
	}

	var words []string
	for _, w := range strings.Fields(text) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	if len(words) < 3 {
		return false
	}

	meaningful := 0
	for _, word := range words {
		for _, kw := range keywords {
			if strings.Contains(kw, word) || strings.Contains(word, kw) {
				meaningful++
				break
			}
		}
	}

	return float64(meaningful)/float64(len(words)) < meaningfulThreshold
}
