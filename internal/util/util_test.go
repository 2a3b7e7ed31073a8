package util

import (
	"slices"
	"testing"
)

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		secret   string
		expected string
	}{
		{name: "empty", secret: "", expected: ""},
		{name: "short secret fully masked", secret: "abc", expected: "***"},
		{name: "long secret keeps prefix", secret: "y0_AgAAAAB1234567890", expected: "y0_Ag***"},
		{name: "multibyte runes", secret: "токен-секрет", expected: "токен***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := MaskSecret(tt.secret); got != tt.expected {
				t.Fatalf("MaskSecret(%q) = %q, want %q", tt.secret, got, tt.expected)
			}
		})
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	items := []int{0, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		name     string
		page     int
		size     int
		expected []int
	}{
		{name: "first page", page: 0, size: 3, expected: []int{0, 1, 2}},
		{name: "partial last page", page: 2, size: 3, expected: []int{6}},
		{name: "past the end", page: 5, size: 3, expected: []int{}},
		{name: "negative page", page: -1, size: 3, expected: []int{}},
		{name: "zero size", page: 0, size: 0, expected: []int{}},
		{name: "huge page does not overflow", page: 1 << 61, size: 100, expected: []int{}},
		{name: "huge size", page: 1, size: 1 << 62, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Page(items, tt.page, tt.size)
			if got == nil || !slices.Equal(got, tt.expected) {
				t.Fatalf("Page(page=%d, size=%d) = %v, want %v", tt.page, tt.size, got, tt.expected)
			}
		})
	}
}

func TestPage_ConcatenationReproducesInput(t *testing.T) {
	t.Parallel()

	for _, total := range []int{0, 1, 19, 20, 21, 57} {
		items := make([]int, total)
		for i := range items {
			items[i] = i
		}

		var joined []int
		for page := 0; ; page++ {
			chunk := Page(items, page, 20)
			if len(chunk) == 0 {
				break
			}
			joined = append(joined, chunk...)
		}

		if !slices.Equal(joined, items) && !(total == 0 && len(joined) == 0) {
			t.Fatalf("total=%d: pages joined to %v", total, joined)
		}
	}
}

func TestLimit(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}

	if got := Limit(items, 2); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("Limit(2) = %v", got)
	}
	if got := Limit(items, 20); !slices.Equal(got, items) {
		t.Fatalf("Limit(20) = %v", got)
	}
	if got := Limit(items, -1); len(got) != 0 {
		t.Fatalf("Limit(-1) = %v", got)
	}
}
