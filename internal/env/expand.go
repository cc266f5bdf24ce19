// Package env expands environment references embedded in configuration
// documents.
package env

import (
	"os"
	"strings"
	"unicode"
)

const prefix = "${env."

// Expand replaces every ${env.KEY} in value with the value of the
// environment variable KEY, or "" when it is unset.  Keys may only hold
// letters, digits and '_'; anything else leaves the prefix untouched and
// scanning resumes right after it.  An unterminated reference is copied
// verbatim.
func Expand(value string) string {
	return expand(value, os.Getenv)
}

func expand(value string, lookup func(string) string) string {
	var b strings.Builder
	for {
		before, rest, found := strings.Cut(value, prefix)
		b.WriteString(before)
		if !found {
			return b.String()
		}
		key, after, closed := strings.Cut(rest, "}")
		if !closed {
			b.WriteString(prefix)
			b.WriteString(rest)
			return b.String()
		}
		if !validKey(key) {
			b.WriteString(prefix)
			value = rest
			continue
		}
		b.WriteString(lookup(key))
		value = after
	}
}

func validKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
