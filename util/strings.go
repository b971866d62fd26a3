package util

import "strings"

// Trim removes every space character from s, not only leading and trailing
// ones. Other whitespace such as tabs and newlines is kept.
func Trim(s string) string {
	if s == "" {
		return s
	}
	return strings.ReplaceAll(s, " ", "")
}

// Capitalise uppercases each lowercase ASCII letter that begins a word.
// If skipFirst is true the first such letter is left as is.
func Capitalise(s string, skipFirst bool) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c < 'a' || c > 'z' {
			continue
		}
		if i > 0 && isWordByte(b[i-1]) {
			continue
		}
		if skipFirst {
			skipFirst = false
			continue
		}
		b[i] = c - ('a' - 'A')
	}
	return string(b)
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
