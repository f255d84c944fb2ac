package dictbreak

import (
	"sort"
	"unicode/utf8"

	"github.com/gioui/uax/segment"
	"github.com/gioui/uax/uax14"
	"github.com/rivo/uniseg"
)

// ruleBoundaries returns the rune positions where the rules of kind allow a
// break, in increasing order. 0 and len(text) are always included.
func ruleBoundaries(kind BreakKind, text []rune) ([]int, error) {
	var (
		positions []int
		err       error
	)
	switch kind {
	case Line:
		positions, err = segmentBoundaries(segment.NewSegmenter(uax14.NewLineWrap()), text)
	case Character, Word, Title, Sentence:
		positions = clusterBoundaries(kind, string(text))
	}
	if err != nil {
		return nil, err
	}
	positions = append(positions, 0, len(text))
	return normalizeBoundaries(positions, len(text)), nil
}

// segmentBoundaries runs a segmenter over text; the end of every segment is
// a boundary.
func segmentBoundaries(segmenter *segment.Segmenter, text []rune) ([]int, error) {
	var positions []int
	segmenter.InitFromSlice(text)
	offset := 0
	for segmenter.Next() {
		offset += len(segmenter.Runes())
		positions = append(positions, offset)
	}
	if err := segmenter.Err(); err != nil {
		return nil, err
	}
	return positions, nil
}

// clusterBoundaries steps over the grapheme clusters of text and keeps the
// cluster ends that are boundaries of kind.
func clusterBoundaries(kind BreakKind, text string) []int {
	var positions []int
	state := -1
	pos := 0
	for len(text) > 0 {
		var (
			cluster    string
			boundaries int
		)
		cluster, text, boundaries, state = uniseg.StepString(text, state)
		pos += utf8.RuneCountInString(cluster)
		switch kind {
		case Character:
		case Word, Title:
			if boundaries&uniseg.MaskWord == 0 {
				continue
			}
		case Sentence:
			if boundaries&uniseg.MaskSentence == 0 {
				continue
			}
		}
		positions = append(positions, pos)
	}
	return positions
}

func normalizeBoundaries(positions []int, n int) []int {
	sort.Ints(positions)
	out := positions[:0]
	for _, p := range positions {
		if p < 0 || p > n {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
