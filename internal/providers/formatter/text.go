package formatter

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// spaceClass is the regexp class body for whitespace and line terminators:
// ASCII space characters, vertical tab, Unicode separators and the BOM.
const spaceClass = `\s\v\p{Z}\x{FEFF}`

// IsSpace reports whether r belongs to spaceClass. NEL (U+0085) is not
// whitespace here even though unicode.IsSpace accepts it.
func IsSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Casers carry state and must not be shared between goroutines, so each
// call builds its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Uppercase converts s to upper case using full Unicode case mapping
func (f *Formatter) Uppercase(s string) string {
	return upper(s)
}

// Lowercase converts s to lower case using full Unicode case mapping
func (f *Formatter) Lowercase(s string) string {
	return lower(s)
}

// Truncate shortens s to maxLength UTF-16 code units including the
// configured suffix. Strings that already fit are returned unchanged. The
// cut falls on a rune boundary, so an astral character that would straddle
// the budget is dropped whole. A suffix longer than maxLength leaves only
// the suffix.
func (f *Formatter) Truncate(s string, maxLength int) string {
	if codeUnits(s) <= maxLength {
		return s
	}

	budget := maxLength - codeUnits(f.truncateSuffix)
	for i, r := range s {
		n := unitLen(r)
		if budget < n {
			return s[:i] + f.truncateSuffix
		}
		budget -= n
	}
	return s + f.truncateSuffix
}

// Reverse reverses the rune order of s. Runes rather than code units are
// reversed so the output stays valid UTF-8.
func (f *Formatter) Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// WordCount counts maximal runs of non-whitespace characters
func (f *Formatter) WordCount(s string) int {
	return len(strings.FieldsFunc(s, IsSpace))
}

// CharacterCount counts the UTF-16 code units of s, so characters outside
// the Basic Multilingual Plane count twice.
func (f *Formatter) CharacterCount(s string) int {
	return codeUnits(s)
}

func codeUnits(s string) int {
	n := 0
	for _, r := range s {
		n += unitLen(r)
	}
	return n
}

// unitLen is the UTF-16 length of r. Invalid runes decode to U+FFFD and
// count as one unit.
func unitLen(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// RemoveSpaces deletes every whitespace character
func (f *Formatter) RemoveSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
