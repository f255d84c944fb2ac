package dictbreak

import (
	"sync"
	"sync/atomic"
	"unicode"

	scripts "github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/rangetable"
)

// UnhandledBreakEngine remembers, per break kind, the characters that no
// dictionary engine handles. Runs of them get no boundaries.
//
// Readers see either the old or the new set of a kind, never a partial
// one. The set of a kind only grows.
type UnhandledBreakEngine struct {
	handled [numBreakKinds]atomic.Pointer[unicode.RangeTable]
	// serializes HandleChar
	mu sync.Mutex
}

func NewUnhandledBreakEngine() *UnhandledBreakEngine {
	e := &UnhandledBreakEngine{}
	for i := range e.handled {
		e.handled[i].Store(&unicode.RangeTable{})
	}
	return e
}

var (
	defaultUnhandled     *UnhandledBreakEngine
	defaultUnhandledOnce sync.Once
)

// DefaultUnhandledBreakEngine returns the instance shared by the process.
func DefaultUnhandledBreakEngine() *UnhandledBreakEngine {
	defaultUnhandledOnce.Do(func() {
		defaultUnhandled = NewUnhandledBreakEngine()
	})
	return defaultUnhandled
}

func (e *UnhandledBreakEngine) snapshot(kind BreakKind) *unicode.RangeTable {
	if !kind.valid() {
		return nil
	}
	return e.handled[kind].Load()
}

func (e *UnhandledBreakEngine) Handles(r rune, kind BreakKind) bool {
	set := e.snapshot(kind)
	return set != nil && unicode.Is(set, r)
}

// FindBreaks skips the run of cached characters at start and reports no
// boundaries.
func (e *UnhandledBreakEngine) FindBreaks(text []rune, start int, end int, kind BreakKind, stack *BreakStack) (int, int, error) {
	set := e.snapshot(kind)
	if set == nil {
		return 0, start, nil
	}
	if end > len(text) {
		end = len(text)
	}
	pos := start
	for pos < end && unicode.Is(set, text[pos]) {
		pos++
	}
	return 0, pos, nil
}

// HandleChar adds every character of the script of r to the set for kind.
// Characters without a script of their own are added alone.
func (e *UnhandledBreakEngine) HandleChar(r rune, kind BreakKind) {
	if !kind.valid() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	old := e.handled[kind].Load()
	if unicode.Is(old, r) {
		return
	}
	added := scriptCharacters(r)
	e.handled[kind].Store(rangetable.Merge(old, added))
	tracer().Debugf("unhandled %s characters: added U+%04X and its script", kind, r)
}

func scriptCharacters(r rune) *unicode.RangeTable {
	script := scripts.LookupScript(r)
	switch script {
	case scripts.Common, scripts.Inherited, scripts.Unknown:
		return rangetable.New(r)
	}
	t := &unicode.RangeTable{}
	for _, item := range scripts.ScriptRanges {
		if item.Script != script {
			continue
		}
		addRange(t, item.Start, item.End)
	}
	if isEmptyTable(t) {
		return rangetable.New(r)
	}
	return t
}

func addRange(t *unicode.RangeTable, lo rune, hi rune) {
	if lo <= 0xFFFF {
		h := hi
		if h > 0xFFFF {
			h = 0xFFFF
		}
		t.R16 = append(t.R16, unicode.Range16{Lo: uint16(lo), Hi: uint16(h), Stride: 1})
		if hi > 0xFFFF {
			t.R32 = append(t.R32, unicode.Range32{Lo: 0x10000, Hi: uint32(hi), Stride: 1})
		}
		return
	}
	t.R32 = append(t.R32, unicode.Range32{Lo: uint32(lo), Hi: uint32(hi), Stride: 1})
}

func (e *UnhandledBreakEngine) String() string {
	return "unhandled"
}
