package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// numberWords maps spoken number words to their values.
var numberWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

// numberHomophones covers words the recognizer commonly returns in place
// of number words.
var numberHomophones = map[string]int{
	"for": 4,
	"to":  2,
	"on":  1,
}

// homophoneRewrites fix number homophones in the transcript itself before
// any matching runs. Whole-word only, so item names stay intact.
var homophoneRewrites = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\bto\b`), "two"},
	{regexp.MustCompile(`\bfor\b`), "four"},
	{regexp.MustCompile(`\bon\b`), "one"},
}

// normalizeTranscript lowercases the transcript and rewrites number
// homophones as whole words.
func normalizeTranscript(transcript string) string {
	t := strings.ToLower(transcript)
	for _, rw := range homophoneRewrites {
		t = rw.re.ReplaceAllString(t, rw.replacement)
	}
	return strings.TrimSpace(t)
}

// normalizeQuantity resolves a quantity token: number word first, then an
// integer literal, then the homophone table. A token it cannot resolve
// degrades to 1 rather than failing the parse; so does "0", since a
// zero-quantity line may never enter the order.
func normalizeQuantity(token string) int {
	token = strings.ToLower(strings.TrimSpace(token))
	if n, ok := numberWords[token]; ok {
		return n
	}
	if n, err := strconv.Atoi(token); err == nil && n > 0 {
		return n
	}
	if n, ok := numberHomophones[token]; ok {
		return n
	}
	return 1
}

// isQuantityToken reports whether a word can introduce a quantity: a
// number word or a digit sequence.
func isQuantityToken(token string) bool {
	if _, ok := numberWords[token]; ok {
		return true
	}
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
