package dictbreak

import (
	"errors"
	"fmt"
	"sync"

	"github.com/msnoigrs/dictbreak/dictionary"
)

// ErrNoDictionary is returned when no dictionary is configured for a script.
var ErrNoDictionary = errors.New("no dictionary")

// DictionaryMatcher finds the dictionary words that start at a position.
// *dictionary.TrieDictionary implements it.
type DictionaryMatcher interface {
	// Matches appends to dst, shortest first, at most limit words that
	// start at text[pos] and read at most maxLength code points. It also
	// returns how many code points the walk consumed.
	Matches(text []rune, pos int, maxLength int, limit int, dst []dictionary.Match) ([]dictionary.Match, int, error)
}

// DictionaryLoader returns the dictionary for an ISO 15924 script tag
// such as "Laoo" or "Hira".
type DictionaryLoader interface {
	LoadDictionary(tag string) (DictionaryMatcher, error)
}

// StaticDictionaryLoader serves dictionaries that are already in memory.
type StaticDictionaryLoader map[string]DictionaryMatcher

func (l StaticDictionaryLoader) LoadDictionary(tag string) (DictionaryMatcher, error) {
	d, ok := l[tag]
	if !ok || d == nil {
		return nil, fmt.Errorf("%s: %w", tag, ErrNoDictionary)
	}
	return d, nil
}

// FileDictionaryLoader maps dictionary files on first use and keeps them
// open until Close.
type FileDictionaryLoader struct {
	mu     sync.Mutex
	files  map[string]string
	opened map[string]*dictionary.TrieDictionary
}

func NewFileDictionaryLoader(files map[string]string) *FileDictionaryLoader {
	return &FileDictionaryLoader{
		files:  files,
		opened: map[string]*dictionary.TrieDictionary{},
	}
}

func (l *FileDictionaryLoader) LoadDictionary(tag string) (DictionaryMatcher, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if d, ok := l.opened[tag]; ok {
		return d, nil
	}
	filename, ok := l.files[tag]
	if !ok || filename == "" {
		return nil, fmt.Errorf("%s: %w", tag, ErrNoDictionary)
	}
	d, err := dictionary.OpenTrieDictionary(filename)
	if err != nil {
		return nil, fmt.Errorf("fail to read a dictionary for %s: %w", tag, err)
	}
	l.opened[tag] = d
	return d, nil
}

// Close unmaps every dictionary. Engines built from them must not be used
// afterwards.
func (l *FileDictionaryLoader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var err error
	for tag, d := range l.opened {
		if cerr := d.Close(); cerr != nil && err == nil {
			err = cerr
		}
		delete(l.opened, tag)
	}
	return err
}
