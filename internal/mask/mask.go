// Package mask formats raw field input against simple positional patterns:
// N accepts a digit, L a letter, A either; any other pattern rune is a literal.
package mask

import "unicode"

// Patterns used by the onboarding screens.
const (
	CountryCode = "+NN"
	AreaCode    = "NN"
	LocalNumber = "NNNNN-NNNN"
	DisplayName = "LLLLLLLLLLLLLLLLLLLL"
	Token       = "NNNN"
)

// Formatter applies one pattern.
type Formatter struct {
	pattern []rune
}

// New builds a formatter for pattern.
func New(pattern string) Formatter {
	return Formatter{pattern: []rune(pattern)}
}

// Format walks the pattern, skipping input runes a placeholder rejects and
// inserting literals while input remains. Input past the pattern is dropped.
func (f Formatter) Format(raw string) string {
	in := []rune(raw)
	out := make([]rune, 0, len(f.pattern))
	i := 0
	for _, p := range f.pattern {
		if i >= len(in) {
			break
		}
		if !isPlaceholder(p) {
			out = append(out, p)
			if in[i] == p {
				i++
			}
			continue
		}
		for i < len(in) && !accepts(p, in[i]) {
			i++
		}
		if i >= len(in) {
			break
		}
		out = append(out, in[i])
		i++
	}
	return string(trimTrailingLiterals(f.pattern, out))
}

func isPlaceholder(p rune) bool {
	return p == 'N' || p == 'L' || p == 'A'
}

func accepts(p, r rune) bool {
	switch p {
	case 'N':
		return unicode.IsDigit(r)
	case 'L':
		return unicode.IsLetter(r)
	case 'A':
		return unicode.IsDigit(r) || unicode.IsLetter(r)
	}
	return false
}

// trimTrailingLiterals drops literals that were emitted without a following
// accepted rune, e.g. "12345-" from input "12345".
func trimTrailingLiterals(pattern, out []rune) []rune {
	for n := len(out); n > 0; n-- {
		if isPlaceholder(pattern[n-1]) {
			return out[:n]
		}
	}
	return out[:0]
}
