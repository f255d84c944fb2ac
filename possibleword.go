package dictbreak

import "github.com/msnoigrs/dictbreak/dictionary"

// possibleWordListMax bounds the candidates kept for one position.
const possibleWordListMax = 20

// possibleWord holds the dictionary words starting at one text position
// and a cursor over them, longest first.
type possibleWord struct {
	matches []dictionary.Match
	count   int
	prefix  int
	offset  int
	mark    int
	current int
}

func newPossibleWord() possibleWord {
	return possibleWord{
		matches: make([]dictionary.Match, 0, possibleWordListMax),
		offset:  -1,
	}
}

// candidates fills the list for pos unless it already holds it. It returns
// the number of candidates and the end of the longest one, or pos when
// there are none. The cursor and the mark are reset to the longest word.
func (w *possibleWord) candidates(text []rune, pos int, dict DictionaryMatcher, rangeEnd int) (int, int, error) {
	if pos != w.offset {
		w.offset = pos
		matches, prefix, err := dict.Matches(text, pos, rangeEnd-pos, possibleWordListMax, w.matches[:0])
		if err != nil {
			w.offset = -1
			w.count = 0
			return 0, pos, err
		}
		w.matches = matches
		w.prefix = prefix
		w.count = len(matches)
	}
	next := pos
	if w.count > 0 {
		next = pos + w.matches[w.count-1].Length
	}
	w.current = w.count - 1
	w.mark = w.current
	return w.count, next, nil
}

// acceptMarked returns the length of the marked word and the position
// just after it.
func (w *possibleWord) acceptMarked() (int, int) {
	l := w.matches[w.mark].Length
	return l, w.offset + l
}

// backUp moves the cursor to the next shorter word and returns its end.
func (w *possibleWord) backUp() (int, bool) {
	if w.current > 0 {
		w.current--
		return w.offset + w.matches[w.current].Length, true
	}
	return w.offset, false
}

// longestPrefix is the number of code points the last lookup consumed.
func (w *possibleWord) longestPrefix() int {
	return w.prefix
}

func (w *possibleWord) markCurrent() {
	w.mark = w.current
}
