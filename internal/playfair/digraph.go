package playfair

import (
	"strings"
	"unicode"
)

// Filler is inserted between doubled letters and appended to odd-length text.
// It does not follow the configured ignore letter.
const Filler = 'x'

// Digraph is an ordered pair of letters, the unit of substitution.
type Digraph struct {
	First, Second rune
}

// String returns the pair as two uppercase letters.
func (d Digraph) String() string {
	return string([]rune{unicode.ToUpper(d.First), unicode.ToUpper(d.Second)})
}

// Chunkify normalizes text to lowercase a-z and splits it into digraphs.
// Identical letters within a pair get a filler between them and an odd
// total length is padded with a trailing filler.
func Chunkify(text string) []Digraph {
	letters := make([]rune, 0, len(text))

	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			letters = append(letters, r)
		}
	}

	expanded := make([]rune, 0, len(letters)+len(letters)/2+1)

	for i := 0; i < len(letters); i += 2 {
		if i+1 == len(letters) {
			expanded = append(expanded, letters[i])

			break
		}

		a, b := letters[i], letters[i+1]
		if a == b {
			expanded = append(expanded, a, Filler, b)
		} else {
			expanded = append(expanded, a, b)
		}
	}

	if len(expanded)%2 == 1 {
		expanded = append(expanded, Filler)
	}

	if len(expanded) == 0 {
		return nil
	}

	digraphs := make([]Digraph, 0, len(expanded)/2)

	for i := 0; i < len(expanded); i += 2 {
		digraphs = append(digraphs, Digraph{First: expanded[i], Second: expanded[i+1]})
	}

	return digraphs
}

// Format renders digraphs as uppercase pairs separated by single spaces.
func Format(digraphs []Digraph) string {
	groups := make([]string, len(digraphs))

	for i, d := range digraphs {
		groups[i] = d.String()
	}

	return strings.Join(groups, " ")
}
