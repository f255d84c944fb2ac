package dictbreak

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestRuleName(t *testing.T) {
	tests := []struct {
		locale   string
		kind     BreakKind
		expected string
	}{
		{"und", Character, "grapheme"},
		{"th", Word, "word"},
		{"en", Line, "line"},
		{"ja-u-lb-strict", Line, "line_strict"},
		{"ja-u-lw-phrase", Line, "line_phrase"},
		{"ko-u-lb-loose-lw-phrase", Line, "line_loose_phrase"},
		{"en-u-lw-phrase", Line, "line"},
		{"en", Sentence, "sentence"},
		{"en", Title, "title"},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.kind.String(), func(t *testing.T) {
			if got := RuleName(language.MustParse(tt.locale), tt.kind); got != tt.expected {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDirRuleLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "th"), 0755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "th", "word.brk"), []byte("thai"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "line.brk"), []byte("root"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loader, err := NewDirRuleLoader(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		locale string
		name   string
		tag    string
		data   string
	}{
		{"th-TH", "word", "th", "thai"},
		{"th", "line", "und", "root"},
		{"fr", "sentence", "und", ""},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.name, func(t *testing.T) {
			rules, err := loader.LoadRules(language.MustParse(tt.locale), tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rules.Name != tt.name || rules.Locale.String() != tt.tag || string(rules.Data) != tt.data {
				t.Errorf("got %v %v %q, expected %v %v %q", rules.Name, rules.Locale, rules.Data, tt.name, tt.tag, tt.data)
			}
		})
	}

	if _, err := NewDirRuleLoader(filepath.Join(dir, "missing")); err == nil {
		t.Errorf("a missing directory must fail")
	}
}

func TestFactory(t *testing.T) {
	f := NewFactory(laoRegistry(t), nil)
	it, err := f.NewBreakIterator(language.Lao, Word)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, expected := boundaries(t, it, "ຂ້ອຍກິນເຂົ້າ"), []int{0, 12, 21, 36}; !equalInts(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if _, err := f.NewBreakIterator(language.Lao, BreakKind(9)); err == nil {
		t.Errorf("an invalid break kind must fail")
	}
}

func TestSentenceSuppressions(t *testing.T) {
	f := NewFactory(nil, nil)
	f.SetSentenceFilterBuilder(NewAbbreviationFilterBuilder(map[string][]string{
		"en": {"Mr.", "Dr."},
	}))
	text := "Mr. Smith went. He left."

	tests := []struct {
		locale   string
		expected []int
	}{
		{"en", []int{0, 4, 16, 24}},
		{"en-u-ss-standard", []int{0, 16, 24}},
		{"fr-u-ss-standard", []int{0, 4, 16, 24}},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			it, err := f.NewBreakIterator(language.MustParse(tt.locale), Sentence)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := boundaries(t, it, text); !equalInts(got, tt.expected) {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}

	filter := NewAbbreviationFilter(nil, []string{"e.g."})
	for _, c := range []struct {
		before   string
		expected bool
	}{
		{"see e.g. ", true},
		{"(e.g. ", true},
		{"tree.g. ", false},
		{"It ended. ", false},
	} {
		if got := filter.suppressed(c.before); got != c.expected {
			t.Errorf("%q: got %v, expected %v", c.before, got, c.expected)
		}
	}
}
