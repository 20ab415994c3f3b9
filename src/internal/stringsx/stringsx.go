package stringsx

import "strings"

// FirstNonEmpty returns the first string in vals that is non-empty when trimmed.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// Take returns the first n runes of s, or all of s when it is shorter.
func Take(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// PadRight appends pad until s holds at least n runes.
func PadRight(s string, n int, pad rune) string {
	count := len([]rune(s))
	if count >= n {
		return s
	}
	return s + strings.Repeat(string(pad), n-count)
}
