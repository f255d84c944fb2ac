package dictbreak

import (
	"fmt"
	"io"
	"unicode"

	scripts "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"
)

// Done is returned by Next after the last boundary.
const Done = -1

// BreakIterator reports boundaries as byte offsets into the text given to
// SetText.
type BreakIterator interface {
	SetText(text string) error
	First() int
	Next() int
	Current() int
	// Boundaries returns every boundary in increasing order.
	Boundaries() []int
}

// RuleData is a compiled rule set. Data is passed through untouched.
type RuleData struct {
	Name   string
	Locale language.Tag
	Data   []byte
}

// RuleBasedBreakIterator finds boundaries with the rules of its break kind
// and hands runs of dictionary characters to the engines of a registry.
type RuleBasedBreakIterator struct {
	rules    *RuleData
	kind     BreakKind
	registry *EngineRegistry
	korean   bool

	text        string
	runes       []rune
	byteOffsets []int
	boundaries  []int
	index       int

	DumpOutput io.Writer
}

// NewRuleBasedBreakIterator returns an iterator for locale. Hangul is
// divided by the engines only for Korean. registry may be nil.
func NewRuleBasedBreakIterator(rules *RuleData, locale language.Tag, kind BreakKind, registry *EngineRegistry) (*RuleBasedBreakIterator, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("invalid break kind: %v", kind)
	}
	if rules == nil {
		rules = &RuleData{Name: kind.String(), Locale: locale}
	}
	base, _ := locale.Base()
	korean, _ := language.Korean.Base()
	return &RuleBasedBreakIterator{
		rules:    rules,
		kind:     kind,
		registry: registry,
		korean:   base == korean,
		index:    -1,
	}, nil
}

func (it *RuleBasedBreakIterator) Rules() *RuleData {
	return it.rules
}

func (it *RuleBasedBreakIterator) Kind() BreakKind {
	return it.kind
}

// Text returns the text of the last SetText.
func (it *RuleBasedBreakIterator) Text() string {
	return it.text
}

// SetText computes every boundary of text and moves to the first one.
func (it *RuleBasedBreakIterator) SetText(text string) error {
	it.text = text
	it.runes = []rune(text)
	it.byteOffsets = it.byteOffsets[:0]
	// an invalid byte is one rune of width 1
	for i := range text {
		it.byteOffsets = append(it.byteOffsets, i)
	}
	it.byteOffsets = append(it.byteOffsets, len(text))
	it.boundaries = nil
	it.index = -1

	if it.DumpOutput != nil {
		fmt.Fprintln(it.DumpOutput, "=== Input dump")
		fmt.Fprintln(it.DumpOutput, text)
	}

	rules, err := ruleBoundaries(it.kind, it.runes)
	if err != nil {
		return err
	}
	if it.DumpOutput != nil {
		fmt.Fprintln(it.DumpOutput, "=== Rule boundaries")
		it.dumpBoundaries(rules)
	}

	runs, stack, err := it.findDictionaryBreaks()
	if err != nil {
		return err
	}

	boundaries := make([]int, 0, len(rules)+stack.Len())
	r := 0
	for _, b := range rules {
		for r < len(runs) && runs[r][1] <= b {
			r++
		}
		if r < len(runs) && runs[r][0] < b && b < runs[r][1] {
			continue
		}
		boundaries = append(boundaries, b)
	}
	boundaries = append(boundaries, stack.Positions()...)
	if it.kind == Word {
		for _, run := range runs {
			boundaries = append(boundaries, run[0], run[1])
		}
	}
	it.boundaries = normalizeBoundaries(boundaries, len(it.runes))
	it.index = 0

	if it.DumpOutput != nil {
		fmt.Fprintln(it.DumpOutput, "=== Boundaries")
		it.dumpBoundaries(it.boundaries)
		fmt.Fprintln(it.DumpOutput, "===")
	}
	return nil
}

func (it *RuleBasedBreakIterator) isDictionaryChar(r rune) bool {
	if it.kind != Word && it.kind != Line {
		return false
	}
	switch scripts.LookupScript(r) {
	case scripts.Thai, scripts.Lao, scripts.Khmer, scripts.Myanmar:
		return true
	case scripts.Han, scripts.Hiragana, scripts.Katakana:
		return it.kind == Word
	case scripts.Hangul:
		return it.kind == Word && it.korean && unicode.Is(KoreanCharacters, r)
	}
	return it.kind == Word && unicode.Is(CjkCharacters, r)
}

// findDictionaryBreaks returns the runs of dictionary characters and the
// boundaries the engines found inside them. Where one engine stops and
// another takes over inside a run, the stop is a boundary too.
func (it *RuleBasedBreakIterator) findDictionaryBreaks() ([][2]int, *BreakStack, error) {
	var runs [][2]int
	stack := NewBreakStack()
	if it.registry == nil {
		return runs, stack, nil
	}
	text := it.runes
	for i := 0; i < len(text); {
		if !it.isDictionaryChar(text[i]) {
			i++
			continue
		}
		end := i + 1
		for end < len(text) && it.isDictionaryChar(text[end]) {
			end++
		}
		for p := i; p < end; {
			engine, err := it.registry.EngineFor(text[p], it.kind)
			if err != nil {
				return nil, nil, err
			}
			found, stop, err := engine.FindBreaks(text, p, end, it.kind, stack)
			if err != nil {
				return nil, nil, err
			}
			if stop <= p {
				stop = p + 1
			}
			if it.DumpOutput != nil {
				fmt.Fprintf(it.DumpOutput, "%v [%d, %d): %d\n", engine, p, stop, found)
			}
			if stop < end && stack.Peek() < stop {
				stack.Push(stop)
			}
			p = stop
		}
		runs = append(runs, [2]int{i, end})
		i = end
	}
	return runs, stack, nil
}

func (it *RuleBasedBreakIterator) dumpBoundaries(positions []int) {
	for i, p := range positions {
		fmt.Fprintf(it.DumpOutput, "%d: %d\n", i, it.byteOffsets[p])
	}
}

func (it *RuleBasedBreakIterator) offset(i int) int {
	if i < 0 || i >= len(it.boundaries) {
		return Done
	}
	return it.byteOffsets[it.boundaries[i]]
}

func (it *RuleBasedBreakIterator) First() int {
	if len(it.boundaries) == 0 {
		return Done
	}
	it.index = 0
	return it.offset(0)
}

func (it *RuleBasedBreakIterator) Next() int {
	if it.index < 0 || it.index >= len(it.boundaries) {
		return Done
	}
	it.index++
	return it.offset(it.index)
}

func (it *RuleBasedBreakIterator) Current() int {
	return it.offset(it.index)
}

func (it *RuleBasedBreakIterator) Boundaries() []int {
	ret := make([]int, len(it.boundaries))
	for i, p := range it.boundaries {
		ret[i] = it.byteOffsets[p]
	}
	return ret
}
