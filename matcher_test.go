package dictbreak

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msnoigrs/dictbreak/dictionary"
)

const laoWords = `ຂ້ອຍ	10
ກິນ	10
ເຂົ້າ	10
ກາ	30
ການ	20
ການເມືອງ	10
`

func buildDictionaryImage(t *testing.T, weighted bool, words string) []byte {
	t.Helper()
	b := dictionary.NewDictionaryBuilder(weighted, nil)
	if err := b.ReadWords(strings.NewReader(words)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if _, err := b.Write(dictionary.NewDictionaryHeader(0, 1700000000, "test"), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.Bytes()
}

func buildDictionary(t *testing.T, weighted bool, words string) *dictionary.TrieDictionary {
	t.Helper()
	d, err := dictionary.ParseTrieDictionary(buildDictionaryImage(t, weighted, words))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

// countingMatcher is a word list that walks text the way the trie does and
// counts its lookups.
type countingMatcher struct {
	words    map[string]int
	prefixes map[string]bool
	calls    int
}

func newCountingMatcher(words ...string) *countingMatcher {
	m := &countingMatcher{
		words:    map[string]int{},
		prefixes: map[string]bool{},
	}
	for _, w := range words {
		m.words[w] = 0
		r := []rune(w)
		for i := 1; i < len(r); i++ {
			m.prefixes[string(r[:i])] = true
		}
	}
	return m
}

func (m *countingMatcher) Matches(text []rune, pos int, maxLength int, limit int, dst []dictionary.Match) ([]dictionary.Match, int, error) {
	m.calls++
	count := 0
	for p := pos; p < len(text) && count < maxLength; p++ {
		count++
		key := string(text[pos : p+1])
		cost, isWord := m.words[key]
		if !isWord && !m.prefixes[key] {
			break
		}
		if isWord {
			if len(dst) < limit {
				dst = append(dst, dictionary.Match{Length: count, Cost: cost})
			}
			if !m.prefixes[key] {
				break
			}
		}
	}
	return dst, count, nil
}

func TestStaticDictionaryLoader(t *testing.T) {
	m := newCountingMatcher("ab")
	loader := StaticDictionaryLoader{"Latn": m}
	d, err := loader.LoadDictionary("Latn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != DictionaryMatcher(m) {
		t.Errorf("got %v, expected %v", d, m)
	}
	if _, err := loader.LoadDictionary("Thai"); !errors.Is(err, ErrNoDictionary) {
		t.Errorf("got %v, expected %v", err, ErrNoDictionary)
	}
}

func TestFileDictionaryLoader(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "lao.dic")
	if err := os.WriteFile(filename, buildDictionaryImage(t, true, laoWords), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	broken := filepath.Join(dir, "broken.dic")
	if err := os.WriteFile(broken, []byte("broken"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loader := NewFileDictionaryLoader(map[string]string{
		"Laoo": filename,
		"Khmr": broken,
	})
	defer loader.Close()

	d1, err := loader.LoadDictionary("Laoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d2, err := loader.LoadDictionary("Laoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d1 != d2 {
		t.Errorf("dictionary must be opened once")
	}
	matches, _, err := d1.Matches([]rune("ກິນເຂົ້າ"), 0, 8, 20, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Length != 3 {
		t.Errorf("got %v, expected %v", matches, []dictionary.Match{{Length: 3, Cost: 10}})
	}

	if _, err := loader.LoadDictionary("Mymr"); !errors.Is(err, ErrNoDictionary) {
		t.Errorf("got %v, expected %v", err, ErrNoDictionary)
	}
	if _, err := loader.LoadDictionary("Khmr"); !errors.Is(err, dictionary.ErrInvalidDictionary) {
		t.Errorf("got %v, expected %v", err, dictionary.ErrInvalidDictionary)
	}
	if err := loader.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
