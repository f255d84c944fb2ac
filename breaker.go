package dictbreak

import (
	"fmt"
	"io"
	"os"

	"github.com/msnoigrs/dictbreak/data"
	"github.com/msnoigrs/dictbreak/dictionary"
	"golang.org/x/text/language"
)

// Breaker ties together the dictionaries, the engine registry and the
// iterator factory described by a configuration.
type Breaker struct {
	dictionaries *FileDictionaryLoader
	registry     *EngineRegistry
	factory      *Factory
}

func NewBreaker(config *BaseConfig, plugins []BreakEnginePlugin) (*Breaker, error) {
	cc, err := ReadCharacterClass(config.CharacterClassFile)
	if err != nil {
		return nil, fmt.Errorf("fail to read a character class file: %s", err)
	}

	var loader RuleLoader
	if config.RuleDir != "" {
		loader, err = NewDirRuleLoader(config.RuleDir)
		if err != nil {
			return nil, fmt.Errorf("fail to read a rule directory: %s", err)
		}
	}

	b := &Breaker{
		dictionaries: NewFileDictionaryLoader(config.Dictionaries),
	}
	b.registry = NewEngineRegistry(nil, &Resources{
		Dictionaries:   b.dictionaries,
		CharacterClass: cc,
	}, plugins...)
	b.factory = NewFactory(b.registry, loader)
	if len(config.SentenceSuppressions) > 0 {
		b.factory.SetSentenceFilterBuilder(NewAbbreviationFilterBuilder(config.SentenceSuppressions))
	}
	return b, nil
}

// ReadCharacterClass reads a character class definition file, or the
// embedded default when filename is empty.
func ReadCharacterClass(filename string) (*dictionary.CharacterClass, error) {
	var reader io.Reader
	if filename != "" {
		fd, err := os.OpenFile(filename, os.O_RDONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", err, filename)
		}
		defer fd.Close()
		reader = fd
	} else {
		f, err := data.Assets.Open("charclass.def")
		if err != nil {
			return nil, fmt.Errorf("%s: (data.Assets)charclass.def", err)
		}
		defer f.Close()
		reader = f
	}
	cc := dictionary.NewCharacterClass()
	if err := cc.ReadCharacterDefinition(reader); err != nil {
		return nil, err
	}
	return cc, nil
}

func (b *Breaker) Registry() *EngineRegistry {
	return b.registry
}

func (b *Breaker) Factory() *Factory {
	return b.factory
}

// SetDumpOutput makes every iterator created afterwards dump its work to w.
func (b *Breaker) SetDumpOutput(w io.Writer) {
	b.factory.DumpOutput = w
}

func (b *Breaker) NewBreakIterator(locale language.Tag, kind BreakKind) (BreakIterator, error) {
	return b.factory.NewBreakIterator(locale, kind)
}

// Close unmaps the dictionaries. Iterators created by b must not be used
// afterwards.
func (b *Breaker) Close() error {
	return b.dictionaries.Close()
}
