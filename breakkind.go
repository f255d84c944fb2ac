package dictbreak

import "fmt"

// BreakKind selects the kind of boundaries an iterator reports.
type BreakKind int

const (
	Character BreakKind = iota
	Word
	Line
	Sentence
	Title

	numBreakKinds
)

func (k BreakKind) String() string {
	switch k {
	case Character:
		return "character"
	case Word:
		return "word"
	case Line:
		return "line"
	case Sentence:
		return "sentence"
	case Title:
		return "title"
	}
	return fmt.Sprintf("BreakKind(%d)", int(k))
}

func (k BreakKind) valid() bool {
	return k >= 0 && k < numBreakKinds
}

func kindMask(kinds ...BreakKind) uint32 {
	var m uint32
	for _, k := range kinds {
		m |= 1 << uint(k)
	}
	return m
}
