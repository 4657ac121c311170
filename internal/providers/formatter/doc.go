// Package formatter implements the text evaluator.
//
// Operations: titleCase, camelCase, kebabCase, snakeCase, uppercase,
// lowercase, truncate, reverse, wordCount, removeSpaces.
//
// A character is a Unicode code point. Whitespace is the set of ASCII
// space characters, vertical tab, Unicode separators (category Z) and the
// byte order mark. Case mapping uses golang.org/x/text/cases with the root
// locale, so "ß" uppercases to "SS".
//
// Example Usage:
//
//	f := formatter.New(formatter.WithTruncateSuffix("…"))
//	res, err := f.Format("truncate", "hello world", formatter.Options{MaxLength: 5})
//	// res.Formatted == "hell…", *res.Metadata.Truncated == true
package formatter
