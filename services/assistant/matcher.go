package assistant

import (
	"sort"
	"strings"
)

// itemMatch is one catalog phrase found in a transcript, with the span it
// consumed and the quantity bound to it.
type itemMatch struct {
	name     string
	start    int
	end      int
	quantity int
}

// catalogMatcher finds catalog phrases in transcripts. Phrases are tried
// longest first at every position, and a span consumed by one match is
// never re-entered by another, so "cold coffee" can never also fire a
// bare "coffee" match.
type catalogMatcher struct {
	phrases []string
}

func newCatalogMatcher(names []string) *catalogMatcher {
	phrases := make([]string, len(names))
	copy(phrases, names)
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	return &catalogMatcher{phrases: phrases}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// phraseAt reports whether phrase occurs at position i on whole-word
// boundaries.
func (m *catalogMatcher) phraseAt(t, phrase string, i int) bool {
	if !strings.HasPrefix(t[i:], phrase) {
		return false
	}
	if i > 0 && isWordChar(t[i-1]) {
		return false
	}
	end := i + len(phrase)
	if end < len(t) && isWordChar(t[end]) {
		return false
	}
	return true
}

// scan walks the transcript left to right collecting non-overlapping
// catalog matches, then binds each one to the quantity token immediately
// before it (default 1).
func (m *catalogMatcher) scan(t string) []itemMatch {
	var matches []itemMatch
	i := 0
	for i < len(t) {
		if !isWordChar(t[i]) {
			i++
			continue
		}
		matched := false
		for _, phrase := range m.phrases {
			if m.phraseAt(t, phrase, i) {
				matches = append(matches, itemMatch{name: phrase, start: i, end: i + len(phrase), quantity: 1})
				i += len(phrase)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		// Skip the rest of the current word.
		for i < len(t) && isWordChar(t[i]) {
			i++
		}
	}
	m.bindQuantities(t, matches)
	return matches
}

// bindQuantities attaches the word directly preceding each match when it
// is a quantity token and not itself part of an earlier match.
func (m *catalogMatcher) bindQuantities(t string, matches []itemMatch) {
	for idx := range matches {
		start, end := precedingWord(t, matches[idx].start)
		if start < 0 {
			continue
		}
		if idx > 0 && start < matches[idx-1].end {
			continue
		}
		token := t[start:end]
		if isQuantityToken(token) {
			matches[idx].quantity = normalizeQuantity(token)
		}
	}
}

// precedingWord returns the span of the word immediately before position
// pos, or (-1, -1) when there is none.
func precedingWord(t string, pos int) (int, int) {
	j := pos - 1
	for j >= 0 && !isWordChar(t[j]) {
		j--
	}
	if j < 0 {
		return -1, -1
	}
	end := j + 1
	for j >= 0 && isWordChar(t[j]) {
		j--
	}
	return j + 1, end
}
