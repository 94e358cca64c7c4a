// Package pathmatch matches slash-separated paths against shell patterns the way find -path does.
//
// Unlike filepath.Match, the wildcards also match '/':
//   - * matches any run of characters
//   - ? matches a single character
//   - [...] and [!...] match one character from (or not from) a set
//   - \ makes the next character literal
package pathmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Matcher holds a compiled list of patterns.
type Matcher struct {
	patterns []*regexp.Regexp
}

// Match reports whether path matches pattern.
func Match(pattern, path string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(path), nil
}

// NewMatcher compiles patterns once for use against many paths.
func NewMatcher(patterns []string) (*Matcher, error) {
	matcher := &Matcher{patterns: make([]*regexp.Regexp, 0, len(patterns))}

	for _, pattern := range patterns {
		re, err := compile(pattern)
		if err != nil {
			return nil, err
		}

		matcher.patterns = append(matcher.patterns, re)
	}

	return matcher, nil
}

// Empty reports whether the matcher holds no patterns.
func (m *Matcher) Empty() bool {
	return len(m.patterns) == 0
}

// MatchAny reports whether path matches at least one pattern.
func (m *Matcher) MatchAny(path string) bool {
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

func compile(pattern string) (*regexp.Regexp, error) {
	expr, err := translate(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	return re, nil
}

// translate turns a glob into an anchored regular expression.
func translate(pattern string) (string, error) {
	var sb strings.Builder

	sb.WriteString(`^`)

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.`)
		case '\\':
			if i+1 == len(pattern) {
				return "", errors.New("trailing backslash")
			}

			i++
			sb.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		case '[':
			class, end, err := bracket(pattern, i)
			if err != nil {
				return "", err
			}

			sb.WriteString(class)

			i = end
		default:
			sb.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		}
	}

	sb.WriteString(`$`)

	return sb.String(), nil
}

// bracket converts the character class opening at start and returns it with the index of its ']'.
// A ']' right after the opening (or after '!') is literal.
func bracket(pattern string, start int) (string, int, error) {
	i := start + 1

	var sb strings.Builder

	sb.WriteString(`[`)

	if i < len(pattern) && pattern[i] == '!' {
		sb.WriteString(`^`)

		i++
	}

	first := true

	for ; i < len(pattern); i++ {
		c := pattern[i]

		if c == ']' && !first {
			sb.WriteString(`]`)

			return sb.String(), i, nil
		}

		first = false

		switch c {
		case ']', '[', '\\', '^':
			sb.WriteString(`\`)
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}

	return "", 0, errors.New("unclosed character class")
}
