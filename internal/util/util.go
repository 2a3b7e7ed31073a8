package util

import "unicode/utf8"

const maskedPrefixLen = 5

// MaskSecret keeps the first few characters of a token or code so log lines
// can be correlated without exposing the full value.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if utf8.RuneCountInString(secret) <= maskedPrefixLen {
		return "***"
	}

	return string([]rune(secret)[:maskedPrefixLen]) + "***"
}

// Page returns the window [page*size, (page+1)*size) of items, clamped to its bounds.
// A window past the end yields an empty, non-nil slice.
func Page[T any](items []T, page, size int) []T {
	if page < 0 || size <= 0 {
		return []T{}
	}

	if len(items) == 0 || page > (len(items)-1)/size {
		return []T{}
	}
	start := page * size
	end := min(start+size, len(items))

	return items[start:end]
}

// Limit returns at most n leading items.
func Limit[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}

	return items[:n]
}
