package dictbreak

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start      int
		end        int
		normalized string
		positions  []int
	}{
		{"normal", "x日本y", 1, 3, "日本", []int{1, 2, 3}},
		{"half-width", "日本ｶﾞｲ", 0, 5, "日本ガイ", []int{0, 1, 2, 4, 5}},
		{"compatibility", "ｱ㍿", 0, 2, "ア株式会社", []int{0, 1, 1, 1, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, positions := normalizeRange([]rune(tt.text), tt.start, tt.end)
			if got := string(normalized); got != tt.normalized {
				t.Errorf("got %v, expected %v", got, tt.normalized)
			}
			if !equalInts(positions, tt.positions) {
				t.Errorf("got %v, expected %v", positions, tt.positions)
			}
			src := []rune(tt.text)
			whole := norm.NFKC.String(string(src[tt.start:tt.end]))
			for _, p := range positions {
				left := norm.NFKC.String(string(src[tt.start:p]))
				right := norm.NFKC.String(string(src[p:tt.end]))
				if left+right != whole {
					t.Errorf("%d: got %q, expected %q", p, left+right, whole)
				}
			}
		})
	}
}
