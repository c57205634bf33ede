package repository

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// maxSuggestions caps the number of suggested words.
const maxSuggestions = 5

var punctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "", `"`, "", "-", "")

// suggestions counts the words of titles that contain query, ignoring case
// and punctuation, and keeps the most frequent ones. Words are keyed in
// lower case. An empty query suggests nothing.
func suggestions(titles []string, query string) map[string]int {
	out := map[string]int{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}

	counts := map[string]int{}
	for _, title := range titles {
		for word := range strings.SplitSeq(punctuation.Replace(title), " ") {
			w := strings.ToLower(word)
			if w != "" && strings.Contains(w, q) {
				counts[w]++
			}
		}
	}

	words := slices.SortedFunc(maps.Keys(counts), func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for _, w := range words[:min(len(words), maxSuggestions)] {
		out[w] = counts[w]
	}
	return out
}
