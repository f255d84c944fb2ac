package dictbreak

import (
	"fmt"
	"unicode"

	"github.com/msnoigrs/dictbreak/dictionary"
	"golang.org/x/text/unicode/rangetable"
)

const (
	thaiPaiyannoi = 0x0E2F
	thaiMaiyamok  = 0x0E46
)

// ThaiFamilyConfig holds the tuning of the lookahead algorithm for one
// script.
type ThaiFamilyConfig struct {
	Name string
	// Lookahead is the number of candidate lists kept in the ring.
	Lookahead int
	// RootCombineThreshold is the word length below which a word may be
	// combined with the following unmatched characters.
	RootCombineThreshold int
	// PrefixCombineThreshold is the prefix length below which an
	// unmatched run is absorbed into the preceding word.
	PrefixCombineThreshold int
	MinWord                int
	// MinWordSpan is the shortest range worth dividing.
	MinWordSpan int
}

func (c ThaiFamilyConfig) validate() error {
	switch {
	case c.Lookahead < 3:
		return fmt.Errorf("%w: %s: lookahead %d < 3", ErrInvalidConfig, c.Name, c.Lookahead)
	case c.RootCombineThreshold < 1:
		return fmt.Errorf("%w: %s: rootCombineThreshold %d < 1", ErrInvalidConfig, c.Name, c.RootCombineThreshold)
	case c.PrefixCombineThreshold < 1:
		return fmt.Errorf("%w: %s: prefixCombineThreshold %d < 1", ErrInvalidConfig, c.Name, c.PrefixCombineThreshold)
	case c.MinWord < 1:
		return fmt.Errorf("%w: %s: minWord %d < 1", ErrInvalidConfig, c.Name, c.MinWord)
	case c.MinWordSpan < 0:
		return fmt.Errorf("%w: %s: minWordSpan %d < 0", ErrInvalidConfig, c.Name, c.MinWordSpan)
	}
	return nil
}

// Tunings of the built-in lookahead engines.
var (
	ThaiConfig = ThaiFamilyConfig{
		Name:                   "Thai",
		Lookahead:              3,
		RootCombineThreshold:   3,
		PrefixCombineThreshold: 3,
		MinWord:                2,
		MinWordSpan:            4,
	}
	LaoConfig = ThaiFamilyConfig{
		Name:                   "Lao",
		Lookahead:              3,
		RootCombineThreshold:   3,
		PrefixCombineThreshold: 3,
		MinWord:                2,
		MinWordSpan:            4,
	}
	KhmerConfig = ThaiFamilyConfig{
		Name:                   "Khmer",
		Lookahead:              3,
		RootCombineThreshold:   3,
		PrefixCombineThreshold: 3,
		MinWord:                2,
		MinWordSpan:            4,
	}
	BurmeseConfig = ThaiFamilyConfig{
		Name:                   "Burmese",
		Lookahead:              3,
		RootCombineThreshold:   3,
		PrefixCombineThreshold: 3,
		MinWord:                2,
		MinWordSpan:            2,
	}
)

// ThaiFamilyClasses are the character sets the lookahead algorithm reads.
// Suffix may be nil.
type ThaiFamilyClasses struct {
	Word   *unicode.RangeTable
	End    *unicode.RangeTable
	Begin  *unicode.RangeTable
	Mark   *unicode.RangeTable
	Suffix *unicode.RangeTable
}

// ClassesOf derives the sets of one script class from a character class
// definition. Marks are the combining marks of the word set and U+0020.
func ClassesOf(cc *dictionary.CharacterClass, class uint32) ThaiFamilyClasses {
	word := cc.RangeTable(class, 0)
	var marks []rune
	rangetable.Visit(word, func(r rune) {
		if unicode.Is(unicode.M, r) {
			marks = append(marks, r)
		}
	})
	marks = append(marks, 0x0020)
	c := ThaiFamilyClasses{
		Word:  word,
		End:   cc.RangeTable(class, dictionary.NOEND),
		Begin: cc.RangeTable(class|dictionary.BEGIN, 0),
		Mark:  rangetable.New(marks...),
	}
	if suffix := cc.RangeTable(class|dictionary.SUFFIX, 0); !isEmptyTable(suffix) {
		c.Suffix = suffix
	}
	return c
}

func isEmptyTable(t *unicode.RangeTable) bool {
	return t == nil || (len(t.R16) == 0 && len(t.R32) == 0)
}

type lookaheadDivider struct {
	config  ThaiFamilyConfig
	classes ThaiFamilyClasses
	dict    DictionaryMatcher
}

// NewThaiFamilyBreakEngine returns an engine that divides runs of
// classes.Word by looking ahead over dictionary words. It serves word and
// line breaking.
func NewThaiFamilyBreakEngine(config ThaiFamilyConfig, classes ThaiFamilyClasses, dict DictionaryMatcher) (*DictionaryBreakEngine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if dict == nil {
		return nil, fmt.Errorf("%s: %w", config.Name, ErrNoDictionary)
	}
	if classes.Word == nil || classes.End == nil || classes.Begin == nil || classes.Mark == nil {
		return nil, fmt.Errorf("%w: %s: missing character classes", ErrInvalidConfig, config.Name)
	}
	return &DictionaryBreakEngine{
		name:  config.Name,
		set:   classes.Word,
		kinds: kindMask(Word, Line),
		divider: &lookaheadDivider{
			config:  config,
			classes: classes,
			dict:    dict,
		},
	}, nil
}

// NewThaiBreakEngine returns the Thai word break engine using the classes of cc.
func NewThaiBreakEngine(dict DictionaryMatcher, cc *dictionary.CharacterClass) (*DictionaryBreakEngine, error) {
	return NewThaiFamilyBreakEngine(ThaiConfig, ClassesOf(cc, dictionary.THAI), dict)
}

// NewLaoBreakEngine returns the Lao word break engine using the classes of cc.
func NewLaoBreakEngine(dict DictionaryMatcher, cc *dictionary.CharacterClass) (*DictionaryBreakEngine, error) {
	return NewThaiFamilyBreakEngine(LaoConfig, ClassesOf(cc, dictionary.LAO), dict)
}

// NewKhmerBreakEngine returns the Khmer word break engine using the classes of cc.
func NewKhmerBreakEngine(dict DictionaryMatcher, cc *dictionary.CharacterClass) (*DictionaryBreakEngine, error) {
	return NewThaiFamilyBreakEngine(KhmerConfig, ClassesOf(cc, dictionary.KHMER), dict)
}

// NewBurmeseBreakEngine returns the Burmese word break engine using the classes of cc.
func NewBurmeseBreakEngine(dict DictionaryMatcher, cc *dictionary.CharacterClass) (*DictionaryBreakEngine, error) {
	return NewThaiFamilyBreakEngine(BurmeseConfig, ClassesOf(cc, dictionary.BURMESE), dict)
}

func (d *lookaheadDivider) divide(text []rune, rangeStart int, rangeEnd int, stack *BreakStack) (int, error) {
	cfg := &d.config
	if rangeEnd-rangeStart < cfg.MinWordSpan {
		return 0, nil
	}

	words := make([]possibleWord, cfg.Lookahead)
	for i := range words {
		words[i] = newPossibleWord()
	}
	slot := func(n int) *possibleWord {
		return &words[n%cfg.Lookahead]
	}

	initial := stack.Len()
	found := 0
	pos := rangeStart
	for pos < rangeEnd {
		current := pos
		wordLength := 0

		n, next, err := slot(found).candidates(text, pos, d.dict, rangeEnd)
		if err != nil {
			return found, err
		}
		pos = next

		if n == 1 {
			wordLength, pos = slot(found).acceptMarked()
			found++
		} else if n > 1 {
			if pos < rangeEnd {
				if err := d.lookahead(text, pos, rangeEnd, found, slot); err != nil {
					return found, err
				}
			}
			wordLength, pos = slot(found).acceptMarked()
			found++
		}

		// Too short to be sure; try to join it with what follows.
		if pos < rangeEnd && wordLength < cfg.RootCombineThreshold {
			w := slot(found)
			n, _, err := w.candidates(text, pos, d.dict, rangeEnd)
			if err != nil {
				return found, err
			}
			if n <= 0 && (wordLength == 0 || w.longestPrefix() < cfg.PrefixCombineThreshold) {
				chars, err := d.resync(text, current+wordLength, rangeEnd, slot(found+1))
				if err != nil {
					return found, err
				}
				if wordLength <= 0 {
					found++
				}
				wordLength += chars
			}
			pos = current + wordLength
		}

		for pos < rangeEnd && unicode.Is(d.classes.Mark, text[pos]) {
			pos++
			wordLength++
		}

		if d.classes.Suffix != nil && pos < rangeEnd && wordLength > 0 {
			n, _, err := slot(found).candidates(text, pos, d.dict, rangeEnd)
			if err != nil {
				return found, err
			}
			if n <= 0 && unicode.Is(d.classes.Suffix, text[pos]) {
				uc := text[pos]
				if uc == thaiPaiyannoi && !unicode.Is(d.classes.Suffix, text[pos-1]) {
					pos++
					wordLength++
					uc = -1
					if pos < rangeEnd {
						uc = text[pos]
					}
				}
				if uc == thaiMaiyamok && text[pos-1] != thaiMaiyamok {
					pos++
					wordLength++
				}
			}
			pos = current + wordLength
		}

		if wordLength > 0 {
			stack.Push(current + wordLength)
		}
		if pos <= current {
			return found, fmt.Errorf("%s: no progress at %d", cfg.Name, current)
		}
	}

	if stack.Len() > initial && stack.Peek() >= rangeEnd {
		stack.Pop()
		found--
	}
	return found, nil
}

// lookahead moves the mark of slot(found) to the longest candidate that is
// followed by two more words, or by one word reaching rangeEnd.
func (d *lookaheadDivider) lookahead(text []rune, pos int, rangeEnd int, found int, slot func(int) *possibleWord) error {
	first := slot(found)
	second := slot(found + 1)
	third := slot(found + 2)
	for {
		n, pos2, err := second.candidates(text, pos, d.dict, rangeEnd)
		if err != nil {
			return err
		}
		if n > 0 {
			first.markCurrent()
			if pos2 >= rangeEnd {
				return nil
			}
			for {
				n, _, err := third.candidates(text, pos2, d.dict, rangeEnd)
				if err != nil {
					return err
				}
				if n > 0 {
					first.markCurrent()
					return nil
				}
				p, ok := second.backUp()
				if !ok {
					break
				}
				pos2 = p
			}
		}
		p, ok := first.backUp()
		if !ok {
			return nil
		}
		pos = p
	}
}

// resync scans forward from p for a transition from a word end to a word
// begin that is followed by a dictionary word, and returns the number of
// characters skipped.
func (d *lookaheadDivider) resync(text []rune, p int, rangeEnd int, next *possibleWord) (int, error) {
	remaining := rangeEnd - p
	chars := 0
	for {
		pc := text[p]
		p++
		chars++
		remaining--
		if remaining <= 0 {
			break
		}
		uc := text[p]
		if unicode.Is(d.classes.End, pc) && unicode.Is(d.classes.Begin, uc) {
			n, _, err := next.candidates(text, p, d.dict, rangeEnd)
			if err != nil {
				return chars, err
			}
			if n > 0 {
				break
			}
		}
	}
	return chars, nil
}
