package dictbreak

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestBreaker(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "laodict.dic")
	if err := os.WriteFile(filename, buildDictionaryImage(t, true, laoWords), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := NewBreaker(&BaseConfig{
		Dictionaries:         map[string]string{"Laoo": filename},
		SentenceSuppressions: map[string][]string{"en": {"Mr."}},
	}, []BreakEnginePlugin{NewLaoBreakEnginePlugin(nil)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer b.Close()

	var buf bytes.Buffer
	b.SetDumpOutput(&buf)
	it, err := b.NewBreakIterator(language.Lao, Word)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, expected := boundaries(t, it, "ຂ້ອຍກິນເຂົ້າ"), []int{0, 12, 21, 36}; !equalInts(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if !strings.Contains(buf.String(), "=== Input dump") {
		t.Errorf("the iterator must dump to the breaker output")
	}
	if got := len(b.Registry().Engines()); got != 1 {
		t.Errorf("got %v, expected %v", got, 1)
	}

	it, err = b.Factory().NewBreakIterator(language.MustParse("en-u-ss-standard"), Sentence)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, expected := boundaries(t, it, "Mr. Smith went. He left."), []int{0, 16, 24}; !equalInts(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
}

func TestBreakerConfigErrors(t *testing.T) {
	if _, err := NewBreaker(&BaseConfig{CharacterClassFile: filepath.Join(t.TempDir(), "missing.def")}, nil); err == nil {
		t.Errorf("a missing character class file must fail")
	}
	if _, err := NewBreaker(&BaseConfig{RuleDir: filepath.Join(t.TempDir(), "missing")}, nil); err == nil {
		t.Errorf("a missing rule directory must fail")
	}
}
