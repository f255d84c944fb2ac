package dictbreak

import (
	"golang.org/x/text/unicode/norm"
)

// normalizeRange returns the NFKC form of text[start:end] and, for every
// normalized rune, the position in text where its source chunk starts. The
// last entry of the position map is end.
func normalizeRange(text []rune, start int, end int) ([]rune, []int) {
	src := string(text[start:end])
	if norm.NFKC.IsNormalString(src) {
		positions := make([]int, end-start+1)
		for i := range positions {
			positions[i] = start + i
		}
		return text[start:end], positions
	}

	normalized := make([]rune, 0, end-start)
	positions := make([]int, 0, end-start+1)
	for chunkStart := start; chunkStart < end; {
		chunkEnd := chunkStart + 1
		for chunkEnd < end && !norm.NFKC.PropertiesString(string(text[chunkEnd])).BoundaryBefore() {
			chunkEnd++
		}
		for _, r := range norm.NFKC.String(string(text[chunkStart:chunkEnd])) {
			normalized = append(normalized, r)
			positions = append(positions, chunkStart)
		}
		chunkStart = chunkEnd
	}
	positions = append(positions, end)
	return normalized, positions
}
