package dictionary

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/msnoigrs/dictbreak/dartsclone"
	"github.com/msnoigrs/dictbreak/internal/mmap"
	"github.com/npillmayer/schuko/tracing"
)

const (
	finalFlag = 1 << 30
	// MaxCost is the largest cost a weighted dictionary can store.
	MaxCost = finalFlag - 1

	trieOffset = HeaderStorageSize + 4 + 4
)

func tracer() tracing.Trace {
	return tracing.Select("dictbreak.dictionary")
}

// Match is one dictionary word found at a text position. Length counts
// code points.
type Match struct {
	Length int
	Cost   int
}

// TrieDictionary is a word list stored as a double-array trie over the UTF-8
// encoding of each word.
type TrieDictionary struct {
	Header    *DictionaryHeader
	WordCount int
	trie      *dartsclone.DoubleArray
	fd        *os.File
	fmap      []byte
}

// ParseTrieDictionary reads a dictionary image. buf is referenced, not
// copied.
func ParseTrieDictionary(buf []byte) (*TrieDictionary, error) {
	header, err := ParseDictionaryHeader(buf, 0)
	if err != nil {
		return nil, err
	}
	if len(buf) < trieOffset {
		return nil, fmt.Errorf("%w: missing trie header", ErrInvalidDictionary)
	}
	offset, wordCount := bufferToUint32(buf, HeaderStorageSize)
	_, trieSize := bufferToUint32(buf, offset)
	if trieSize == 0 || int64(trieSize) > int64(len(buf)-trieOffset) {
		return nil, fmt.Errorf("%w: trie size %d does not fit in %d bytes", ErrInvalidDictionary, trieSize, len(buf))
	}

	trie := dartsclone.NewDoubleArray()
	if err := trie.SetBuffer(buf[trieOffset : trieOffset+int(trieSize)]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDictionary, err)
	}
	return &TrieDictionary{
		Header:    header,
		WordCount: int(wordCount),
		trie:      trie,
	}, nil
}

// OpenTrieDictionary maps a dictionary file into memory.
func OpenTrieDictionary(filename string) (*TrieDictionary, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	fmap, err := mmap.Mmap(fd, 0, 0)
	if err != nil {
		_ = fd.Close()
		return nil, err
	}
	d, err := ParseTrieDictionary(fmap)
	if err != nil {
		_ = mmap.Munmap(fmap)
		_ = fd.Close()
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	_ = mmap.Madvise(fmap)
	d.fd = fd
	d.fmap = fmap
	tracer().Infof("opened dictionary %s: %d words, %d bytes", filename, d.WordCount, len(fmap))
	return d, nil
}

func (d *TrieDictionary) Close() error {
	if d.fd == nil {
		return nil
	}
	err := mmap.Munmap(d.fmap)
	d.fmap = nil
	d.trie = dartsclone.NewDoubleArray()
	if cerr := d.fd.Close(); err == nil {
		err = cerr
	}
	d.fd = nil
	return err
}

func (d *TrieDictionary) Weighted() bool {
	return IsWeighted(d.Header.Version)
}

func (d *TrieDictionary) cost(value int) int {
	if !d.Weighted() {
		return 0
	}
	return value &^ finalFlag
}

// Matches appends to dst every word that starts at text[pos], shortest
// first, keeping at most limit of them and reading at most maxLength code
// points. The second result is the number of code points consumed,
// including the one that ended the walk.
func (d *TrieDictionary) Matches(text []rune, pos int, maxLength int, limit int, dst []Match) ([]Match, int, error) {
	var (
		id    uint32
		buf   [utf8.UTFMax]byte
		count int
	)
	for p := pos; p < len(text) && count < maxLength; p++ {
		n := utf8.EncodeRune(buf[:], text[p])
		count++
		matched := true
		for _, b := range buf[:n] {
			next, ok, err := d.trie.Follow(id, b)
			if err != nil {
				return dst, count, err
			}
			if !ok {
				matched = false
				break
			}
			id = next
		}
		if !matched {
			break
		}
		if v, ok := d.trie.Value(id); ok {
			if len(dst) < limit {
				dst = append(dst, Match{Length: count, Cost: d.cost(v)})
			}
			if v&finalFlag != 0 {
				break
			}
		}
	}
	return dst, count, nil
}

// Lookup returns the cost of word.
func (d *TrieDictionary) Lookup(word string) (int, bool) {
	v, ok := d.trie.ExactMatchSearch([]byte(word))
	if !ok {
		return 0, false
	}
	return d.cost(v), true
}

// Enumerate calls fn for every word in UTF-8 byte order.
func (d *TrieDictionary) Enumerate(fn func(word string, cost int)) {
	d.trie.Enumerate(func(key []byte, value int) {
		fn(string(key), d.cost(value))
	})
}
