package dictbreak

import (
	"fmt"
	"math"
	"unicode"

	"github.com/msnoigrs/dictbreak/dictionary"
	"golang.org/x/text/unicode/rangetable"
)

const (
	cjkMaxWordSize = 20
	// cjkMaxSnlp is the cost of a single character that no dictionary
	// word covers.
	cjkMaxSnlp = 255

	maxKatakanaLength      = 8
	maxKatakanaGroupLength = 20
)

var katakanaCosts = [maxKatakanaLength + 1]int64{8192, 984, 408, 240, 204, 252, 300, 372, 480}

func katakanaCost(n int) int64 {
	if n > maxKatakanaLength {
		return 8192
	}
	return katakanaCosts[n]
}

func isKatakana(r rune) bool {
	return (r >= 0x30A1 && r <= 0x30FE && r != 0x30FB) ||
		(r >= 0xFF66 && r <= 0xFF9F)
}

func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

var (
	// CjkCharacters are the characters the Chinese and Japanese engine
	// claims.
	CjkCharacters = rangetable.Merge(
		unicode.Han,
		unicode.Hiragana,
		unicode.Katakana,
		rangetable.New(0x30FC, 0xFF70, 0xFF9E, 0xFF9F),
	)
	// KoreanCharacters are the precomposed Hangul syllables.
	KoreanCharacters = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xAC00, Hi: 0xD7A3, Stride: 1}},
	}
)

type cjkDivider struct {
	dict DictionaryMatcher
}

// NewCjkBreakEngine returns the Chinese and Japanese word break engine.
func NewCjkBreakEngine(dict DictionaryMatcher) (*DictionaryBreakEngine, error) {
	if dict == nil {
		return nil, fmt.Errorf("CJK: %w", ErrNoDictionary)
	}
	return &DictionaryBreakEngine{
		name:    "CJK",
		set:     CjkCharacters,
		kinds:   kindMask(Word),
		divider: &cjkDivider{dict: dict},
	}, nil
}

// NewKoreanBreakEngine returns the word break engine for Hangul syllables.
func NewKoreanBreakEngine(dict DictionaryMatcher) (*DictionaryBreakEngine, error) {
	if dict == nil {
		return nil, fmt.Errorf("Korean: %w", ErrNoDictionary)
	}
	return &DictionaryBreakEngine{
		name:    "Korean",
		set:     KoreanCharacters,
		kinds:   kindMask(Word),
		divider: &cjkDivider{dict: dict},
	}, nil
}

func (d *cjkDivider) divide(text []rune, rangeStart int, rangeEnd int, stack *BreakStack) (int, error) {
	if rangeStart >= rangeEnd {
		return 0, nil
	}

	normalized, charPositions := normalizeRange(text, rangeStart, rangeEnd)
	n := len(normalized)

	const inf = math.MaxInt64
	bestCost := make([]int64, n+1)
	prev := make([]int, n+1)
	for i := range bestCost {
		bestCost[i] = inf
		prev[i] = -1
	}
	bestCost[0] = 0

	relax := func(from int, to int, cost int64) {
		c := bestCost[from] + cost
		if c < bestCost[to] {
			bestCost[to] = c
			prev[to] = from
		}
	}

	matches := make([]dictionary.Match, 0, n)
	prevKatakana := false
	for i := 0; i < n; i++ {
		if bestCost[i] == inf {
			continue
		}

		maxLength := n - i
		if maxLength > cjkMaxWordSize {
			maxLength = cjkMaxWordSize
		}
		var err error
		matches, _, err = d.dict.Matches(normalized, i, maxLength, n-i, matches[:0])
		if err != nil {
			return 0, err
		}
		if (len(matches) == 0 || matches[0].Length != 1) && !isHangulSyllable(normalized[i]) {
			matches = append(matches, dictionary.Match{Length: 1, Cost: cjkMaxSnlp})
		}
		for _, m := range matches {
			relax(i, i+m.Length, int64(m.Cost))
		}

		// A run of katakana is likely a single loan word.
		katakana := isKatakana(normalized[i])
		if !prevKatakana && katakana {
			run := 1
			for j := i + 1; j < n && run < maxKatakanaGroupLength && isKatakana(normalized[j]); j++ {
				run++
			}
			if run < maxKatakanaGroupLength {
				relax(i, i+run, katakanaCost(run))
			}
		}
		prevKatakana = katakana
	}

	var path []int
	if bestCost[n] == inf {
		path = append(path, n)
	} else {
		for i := n; i > 0; i = prev[i] {
			path = append(path, i)
		}
	}

	found := 0
	prevPos := -1
	for k := len(path) - 1; k >= 0; k-- {
		p := charPositions[path[k]]
		if p <= prevPos || p == rangeStart || p == rangeEnd {
			continue
		}
		if stack.Len() > 0 && stack.Peek() >= p {
			continue
		}
		stack.Push(p)
		prevPos = p
		found++
	}
	return found, nil
}
