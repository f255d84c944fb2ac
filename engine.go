package dictbreak

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrInvalidRange is returned for a range that is reversed, negative or
	// past the end of the text.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidConfig is returned when an engine is built with unusable
	// parameters.
	ErrInvalidConfig = errors.New("invalid engine configuration")
)

// LanguageBreakEngine finds boundaries inside runs of characters that the
// rules cannot divide.
type LanguageBreakEngine interface {
	// Handles reports whether the engine claims r for kind.
	Handles(r rune, kind BreakKind) bool
	// FindBreaks pushes the boundaries found in the run of claimed
	// characters that starts at start and ends no later than end. It
	// returns the number of boundaries pushed and the end of the run.
	FindBreaks(text []rune, start int, end int, kind BreakKind, stack *BreakStack) (int, int, error)
}

type rangeDivider interface {
	divide(text []rune, rangeStart int, rangeEnd int, stack *BreakStack) (int, error)
}

// DictionaryBreakEngine divides runs of the characters it claims with the
// help of a dictionary.
type DictionaryBreakEngine struct {
	name    string
	set     *unicode.RangeTable
	kinds   uint32
	divider rangeDivider
}

func (e *DictionaryBreakEngine) String() string {
	return e.name
}

// CharacterSet returns the characters the engine claims.
func (e *DictionaryBreakEngine) CharacterSet() *unicode.RangeTable {
	return e.set
}

func (e *DictionaryBreakEngine) Handles(r rune, kind BreakKind) bool {
	if !kind.valid() || e.kinds&(1<<uint(kind)) == 0 {
		return false
	}
	return unicode.Is(e.set, r)
}

func (e *DictionaryBreakEngine) FindBreaks(text []rune, start int, end int, kind BreakKind, stack *BreakStack) (int, int, error) {
	if start < 0 || start > end || end > len(text) {
		return 0, start, fmt.Errorf("%w: [%d, %d) in %d", ErrInvalidRange, start, end, len(text))
	}
	current := start
	for current < end && unicode.Is(e.set, text[current]) {
		current++
	}
	found, err := e.divider.divide(text, start, current, stack)
	return found, current, err
}

// DivideUpDictionaryRange pushes the boundaries inside text[rangeStart:rangeEnd]
// and returns how many it pushed.
func (e *DictionaryBreakEngine) DivideUpDictionaryRange(text []rune, rangeStart int, rangeEnd int, stack *BreakStack) (int, error) {
	if rangeStart < 0 || rangeStart > rangeEnd || rangeEnd > len(text) {
		return 0, fmt.Errorf("%w: [%d, %d) in %d", ErrInvalidRange, rangeStart, rangeEnd, len(text))
	}
	return e.divider.divide(text, rangeStart, rangeEnd, stack)
}
