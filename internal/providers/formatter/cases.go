package formatter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	lowerUpperBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	kebabSeparators    = regexp.MustCompile(`[` + spaceClass + `_]+`)
	snakeSeparators    = regexp.MustCompile(`[` + spaceClass + `-]+`)

	// A separator run and the character after it. The trailing class is
	// "any character except a line terminator".
	camelSeparator = regexp.MustCompile(`[^a-zA-Z0-9]+[^\n\r\x{2028}\x{2029}]`)
)

// TitleCase lowercases s and uppercases the first character of every
// space-separated token. Only U+0020 separates tokens.
func (f *Formatter) TitleCase(s string) string {
	words := strings.Split(lower(s), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(word)
		words[i] = upper(word[:size]) + word[size:]
	}
	return strings.Join(words, " ")
}

// CamelCase lowercases s, then drops every run of non-alphanumeric
// characters and uppercases the character that follows it. A trailing run
// keeps its last character ("a--" becomes "a-", "a-" stays "a-").
func (f *Formatter) CamelCase(s string) string {
	return camelSeparator.ReplaceAllStringFunc(lower(s), func(match string) string {
		_, size := utf8.DecodeLastRuneInString(match)
		return upper(match[len(match)-size:])
	})
}

// KebabCase splits lower→upper boundaries with '-', collapses whitespace and
// underscore runs into '-', and lowercases the result
func (f *Formatter) KebabCase(s string) string {
	s = lowerUpperBoundary.ReplaceAllString(s, "${1}-${2}")
	s = kebabSeparators.ReplaceAllString(s, "-")
	return lower(s)
}

// SnakeCase splits lower→upper boundaries with '_', collapses whitespace and
// hyphen runs into '_', and lowercases the result
func (f *Formatter) SnakeCase(s string) string {
	s = lowerUpperBoundary.ReplaceAllString(s, "${1}_${2}")
	s = snakeSeparators.ReplaceAllString(s, "_")
	return lower(s)
}
