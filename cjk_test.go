package dictbreak

import (
	"errors"
	"testing"
)

func TestCjkBreakEngine(t *testing.T) {
	tests := []struct {
		name     string
		words    string
		text     string
		expected []int
	}{
		{"katakana run", "日本	100\n", "日本アイウエオ", []int{2}},
		{"katakana only", "日本	100\n", "アイウエオ", nil},
		{"cheapest path", "ab	10\nabc	5\nabcde	1\n", "abcde", nil},
		{"single characters", "日本	100\n", "本日", []int{1}},
		{"normalized", "日本	100\n", "日本ｶﾞｲ", []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewCjkBreakEngine(buildDictionary(t, true, tt.words))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, found := divide(t, e, tt.text)
			if !equalInts(got, tt.expected) {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
			if found != len(tt.expected) {
				t.Errorf("got %v, expected %v", found, len(tt.expected))
			}
		})
	}
}

func TestCjkFindBreaks(t *testing.T) {
	e, err := NewCjkBreakEngine(buildDictionary(t, true, "日本	100\n東京	100\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Handles('日', Word) || !e.Handles('ー', Word) || !e.Handles('ア', Word) {
		t.Errorf("CJK engine must handle ideographs and kana")
	}
	if e.Handles('日', Line) || e.Handles('a', Word) || e.Handles('한', Word) {
		t.Errorf("CJK engine must only handle CJK words")
	}

	text := []rune("x日本東京y")
	stack := NewBreakStack()
	stack.Push(1)
	found, stop, err := e.FindBreaks(text, 1, len(text), Word, stack)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stop != 5 {
		t.Errorf("got %v, expected %v", stop, 5)
	}
	if got, expected := stack.Positions(), []int{1, 3}; !equalInts(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if found != 1 {
		t.Errorf("got %v, expected %v", found, 1)
	}

	if n, err := e.DivideUpDictionaryRange(text, 2, 2, NewBreakStack()); err != nil || n != 0 {
		t.Errorf("got %v %v, expected %v", n, err, 0)
	}
}

func TestKoreanBreakEngine(t *testing.T) {
	e, err := NewKoreanBreakEngine(buildDictionary(t, true, "한국	10\n사람	10\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Handles('한', Word) || e.Handles('日', Word) {
		t.Errorf("Korean engine must only handle Hangul syllables")
	}
	got, _ := divide(t, e, "한국사람")
	if expected := []int{2}; !equalInts(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
	// no single syllable fallback, an unknown syllable leaves the span whole
	got, _ = divide(t, e, "한국인사람")
	if len(got) != 0 {
		t.Errorf("got %v, expected no breaks", got)
	}
}

func TestCjkNoDictionary(t *testing.T) {
	if _, err := NewCjkBreakEngine(nil); !errors.Is(err, ErrNoDictionary) {
		t.Errorf("got %v, expected %v", err, ErrNoDictionary)
	}
	if _, err := NewKoreanBreakEngine(nil); !errors.Is(err, ErrNoDictionary) {
		t.Errorf("got %v, expected %v", err, ErrNoDictionary)
	}
}

func TestKatakanaCost(t *testing.T) {
	tests := []struct {
		n        int
		expected int64
	}{
		{1, 984},
		{4, 204},
		{8, 480},
		{9, 8192},
		{19, 8192},
	}
	for _, tt := range tests {
		if got := katakanaCost(tt.n); got != tt.expected {
			t.Errorf("%d: got %v, expected %v", tt.n, got, tt.expected)
		}
	}
	if !isKatakana('ア') || !isKatakana('ｱ') || isKatakana('・') || isKatakana('あ') {
		t.Errorf("unexpected katakana classification")
	}
}
