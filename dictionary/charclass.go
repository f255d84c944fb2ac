package dictionary

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/msnoigrs/dictbreak/internal/lnreader"
	"golang.org/x/text/unicode/rangetable"
)

// Character classes used by the lookahead break engines.
const (
	THAI    uint32 = 1      // Thai letters and signs
	LAO     uint32 = 1 << 1 // Lao letters and signs
	KHMER   uint32 = 1 << 2 // Khmer letters and signs
	BURMESE uint32 = 1 << 3 // Myanmar letters and signs
	BEGIN   uint32 = 1 << 4 // Characters that can start a word
	NOEND   uint32 = 1 << 5 // Characters that cannot end a word
	SUFFIX  uint32 = 1 << 6 // Characters that may trail a word as a suffix
)

func GetClassType(s string) (uint32, error) {
	switch s {
	case "THAI":
		return THAI, nil
	case "LAO":
		return LAO, nil
	case "KHMER":
		return KHMER, nil
	case "BURMESE":
		return BURMESE, nil
	case "BEGIN":
		return BEGIN, nil
	case "NOEND":
		return NOEND, nil
	case "SUFFIX":
		return SUFFIX, nil
	}
	return 0, fmt.Errorf("%s is invalid class", s)
}

type classRange struct {
	low     rune
	high    rune
	classes uint32
}

// CharacterClass maps code points to the union of the classes of every
// range that contains them.
type CharacterClass struct {
	rangeList []classRange
}

func NewCharacterClass() *CharacterClass {
	return &CharacterClass{}
}

func (cc *CharacterClass) GetClasses(r rune) uint32 {
	var classes uint32
	for _, cr := range cc.rangeList {
		if r >= cr.low && r <= cr.high {
			classes |= cr.classes
		}
	}
	return classes
}

// RangeTable returns the code points that have every class in with and
// none in without.
func (cc *CharacterClass) RangeTable(with uint32, without uint32) *unicode.RangeTable {
	var runes []rune
	seen := map[rune]bool{}
	for _, cr := range cc.rangeList {
		if cr.classes&with == 0 && with != 0 {
			continue
		}
		for r := cr.low; r <= cr.high; r++ {
			if seen[r] {
				continue
			}
			seen[r] = true
			c := cc.GetClasses(r)
			if c&with == with && c&without == 0 {
				runes = append(runes, r)
			}
		}
	}
	return rangetable.New(runes...)
}

// ReadCharacterDefinition adds the ranges of a definition file. Each line
// is a code point or a range "0xLOW..0xHIGH" followed by class names.
func (cc *CharacterClass) ReadCharacterDefinition(charDefReader io.Reader) error {
	r := lnreader.NewLineNumberReader(charDefReader)
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if lnreader.IsSkipLine(line) {
			continue
		}
		cols := strings.Fields(string(line))
		if len(cols) < 2 {
			return fmt.Errorf("invalid format at line %d: too short fields", r.NumLine)
		}

		var cr classRange
		rs := strings.Split(cols[0], "..")
		if len(rs) > 2 {
			return fmt.Errorf("invalid format at line %d: %s", r.NumLine, cols[0])
		}
		cr.low, err = parseCodePoint(rs[0])
		if err != nil {
			return fmt.Errorf("invalid format at line %d: %s", r.NumLine, err)
		}
		cr.high = cr.low
		if len(rs) > 1 {
			cr.high, err = parseCodePoint(rs[1])
			if err != nil {
				return fmt.Errorf("invalid format at line %d: %s", r.NumLine, err)
			}
		}
		if cr.low > cr.high {
			return fmt.Errorf("invalid format at line %d: low > high", r.NumLine)
		}
		for _, col := range cols[1:] {
			if strings.HasPrefix(col, "#") {
				break
			}
			t, err := GetClassType(col)
			if err != nil {
				return fmt.Errorf("%s at line %d", err, r.NumLine)
			}
			cr.classes |= t
		}
		cc.rangeList = append(cc.rangeList, cr)
	}
	return nil
}

func parseCodePoint(s string) (rune, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return 0, fmt.Errorf("invalid hex string: %s", s)
	}
	v, err := strconv.ParseUint(s[2:], 16, 32)
	if err != nil {
		return 0, err
	}
	if v > unicode.MaxRune {
		return 0, fmt.Errorf("code point out of range: %s", s)
	}
	return rune(v), nil
}
