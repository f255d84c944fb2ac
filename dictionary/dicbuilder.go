package dictionary

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/msnoigrs/dictbreak/dartsclone"
	"github.com/msnoigrs/dictbreak/internal/lnreader"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxWordLength is the longest word, in bytes, the builder accepts.
const MaxWordLength = 255

type DictionaryBuilder struct {
	words    *redblacktree.Tree
	weighted bool
	logger   io.Writer
}

func compareBytes(a, b interface{}) int {
	return bytes.Compare(a.([]byte), b.([]byte))
}

// NewDictionaryBuilder returns a builder that reports progress to logger,
// which may be nil.
func NewDictionaryBuilder(weighted bool, logger io.Writer) *DictionaryBuilder {
	if logger == nil {
		logger = io.Discard
	}
	return &DictionaryBuilder{
		words:    redblacktree.NewWith(compareBytes),
		weighted: weighted,
		logger:   logger,
	}
}

func (b *DictionaryBuilder) Size() int {
	return b.words.Size()
}

func (b *DictionaryBuilder) Add(word string, cost int) error {
	if len(word) == 0 {
		return fmt.Errorf("word is empty")
	}
	if len(word) > MaxWordLength {
		return fmt.Errorf("word is too long: %s", word)
	}
	if strings.IndexByte(word, 0) >= 0 {
		return fmt.Errorf("word contains NUL: %q", word)
	}
	if cost < 0 || cost > MaxCost {
		return fmt.Errorf("cost %d is out of range [0, %d]", cost, MaxCost)
	}
	if !b.weighted {
		cost = 0
	}
	key := []byte(word)
	if _, found := b.words.Get(key); found {
		return fmt.Errorf("duplicated word: %s", word)
	}
	b.words.Put(key, cost)
	return nil
}

// ReadWords reads one word per line, optionally followed by whitespace and
// a decimal cost. Lines starting with '#' are comments.
func (b *DictionaryBuilder) ReadWords(input io.Reader) error {
	r := lnreader.NewLineNumberReader(input)
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if lnreader.IsSkipLine(line) {
			continue
		}
		cols := strings.Fields(string(line))
		if len(cols) > 2 {
			return fmt.Errorf("invalid format at line %d: too many fields", r.NumLine)
		}
		cost := 0
		if len(cols) == 2 {
			cost, err = strconv.Atoi(cols[1])
			if err != nil {
				return fmt.Errorf("invalid cost at line %d: %s", r.NumLine, err)
			}
		}
		if err := b.Add(cols[0], cost); err != nil {
			return fmt.Errorf("%s at line %d", err, r.NumLine)
		}
	}
	return nil
}

// Write stores the header, whose version is set from the builder mode,
// followed by the trie.
func (b *DictionaryBuilder) Write(header *DictionaryHeader, writer io.Writer) (int64, error) {
	if b.weighted {
		header.Version = WeightedDictVersion
	} else {
		header.Version = UnweightedDictVersion
	}
	if b.words.Empty() {
		return 0, fmt.Errorf("no words")
	}

	keys := make([][]byte, 0, b.words.Size())
	values := make([]int, 0, b.words.Size())
	it := b.words.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().([]byte))
		values = append(values, it.Value().(int))
	}
	for i := range keys {
		if i+1 == len(keys) || !bytes.HasPrefix(keys[i+1], keys[i]) {
			values[i] |= finalFlag
		}
	}

	p := message.NewPrinter(language.English)
	fmt.Fprint(b.logger, "building the trie...")
	trie := dartsclone.NewDoubleArray()
	err := trie.Build(keys, values, func(state int, max int) {
		if max > 10 && state%(max/10) == 0 {
			fmt.Fprint(b.logger, ".")
		}
	})
	if err != nil {
		fmt.Fprintln(b.logger)
		return 0, err
	}
	p.Fprintf(b.logger, " %d words\n", len(keys))

	hbytes, err := header.ToBytes()
	if err != nil {
		return 0, err
	}

	bwriter := bufio.NewWriter(writer)
	var written int64
	n, err := bwriter.Write(hbytes)
	written += int64(n)
	if err != nil {
		return written, err
	}
	var sizes [8]byte
	binary.LittleEndian.PutUint32(sizes[:], uint32(len(keys)))
	binary.LittleEndian.PutUint32(sizes[4:], uint32(trie.TotalSize()))
	n, err = bwriter.Write(sizes[:])
	written += int64(n)
	if err != nil {
		return written, err
	}

	fmt.Fprint(b.logger, "writing the trie...")
	n, err = trie.Save(bwriter)
	written += int64(n)
	if err != nil {
		return written, err
	}
	if err := bwriter.Flush(); err != nil {
		return written, err
	}
	p.Fprintf(b.logger, " %d bytes\n", n)
	return written, nil
}
