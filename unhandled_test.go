package dictbreak

import (
	"sync"
	"testing"
)

func TestUnhandledBreakEngine(t *testing.T) {
	e := NewUnhandledBreakEngine()
	if e.Handles('a', Word) {
		t.Errorf("a new cache must be empty")
	}

	e.HandleChar('a', Word)
	if !e.Handles('z', Word) {
		t.Errorf("the whole script of 'a' must be handled")
	}
	if e.Handles('Ω', Word) {
		t.Errorf("other scripts must not be handled")
	}
	if e.Handles('z', Line) {
		t.Errorf("break kinds must be cached separately")
	}

	found, stop, err := e.FindBreaks([]rune("abc1"), 0, 4, Word, NewBreakStack())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != 0 || stop != 3 {
		t.Errorf("got %v %v, expected %v %v", found, stop, 0, 3)
	}

	e.HandleChar('-', Word)
	if !e.Handles('-', Word) {
		t.Errorf("got %v, expected %v", false, true)
	}
	if e.Handles('+', Word) {
		t.Errorf("a character without a script must be added alone")
	}

	if e.Handles('a', BreakKind(99)) {
		t.Errorf("an invalid kind is never handled")
	}
	e.HandleChar('a', BreakKind(99))
}

func TestUnhandledBreakEngineConcurrent(t *testing.T) {
	e := NewUnhandledBreakEngine()
	runes := []rune{'a', 'α', 'а', 'א', 'ก', 'ກ', 'ក'}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen := make([]bool, len(runes))
			for k := 0; k < 1000; k++ {
				for j, r := range runes {
					handled := e.Handles(r, Word)
					if seen[j] && !handled {
						t.Errorf("U+%04X was dropped from the cache", r)
						return
					}
					seen[j] = seen[j] || handled
				}
			}
		}()
	}
	for _, r := range runes {
		e.HandleChar(r, Word)
	}
	wg.Wait()

	for _, r := range runes {
		if !e.Handles(r, Word) {
			t.Errorf("U+%04X must be handled", r)
		}
	}
}
