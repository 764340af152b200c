// Package encode rewrites HTML text so it contains only ASCII.
// Every code point above 127 becomes a decimal numeric character
// reference.
package encode

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// NonASCII replaces each rune above U+007F with "&#<codepoint>;".
// Invalid UTF-8 bytes are encoded as U+FFFD.
func NonASCII(s string) string {
	i := 0
	for i < len(s) && s[i] < utf8.RuneSelf {
		i++
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	b.WriteString(s[:i])
	for _, r := range s[i:] {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		b.WriteString("&#")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
	}
	return b.String()
}

var numericRef = regexp.MustCompile(`&#([0-9]+);`)

// Decode reverses NonASCII. Only decimal references above U+007F are
// decoded, so references that were already present in ASCII input
// (e.g. "&#38;") survive unchanged.
func Decode(s string) string {
	return numericRef.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.Atoi(m[2 : len(m)-1])
		if err != nil || n < utf8.RuneSelf || n > utf8.MaxRune {
			return m
		}
		return string(rune(n))
	})
}
