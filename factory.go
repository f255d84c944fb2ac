package dictbreak

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
)

// RuleLoader returns the compiled rules called name for locale.
type RuleLoader interface {
	LoadRules(locale language.Tag, name string) (*RuleData, error)
}

type defaultRuleLoader struct{}

func (defaultRuleLoader) LoadRules(locale language.Tag, name string) (*RuleData, error) {
	return &RuleData{Name: name, Locale: locale}, nil
}

// DirRuleLoader reads rules from <dir>/<locale>/<name>.brk and falls back
// to parent locales and finally to <dir>/<name>.brk. A rule set found
// nowhere is empty.
type DirRuleLoader struct {
	dir     string
	tags    []language.Tag
	matcher language.Matcher
}

func NewDirRuleLoader(dir string) (*DirRuleLoader, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	l := &DirRuleLoader{dir: dir}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		tag, err := language.Parse(e.Name())
		if err != nil {
			continue
		}
		l.tags = append(l.tags, tag)
	}
	if len(l.tags) > 0 {
		l.matcher = language.NewMatcher(l.tags)
	}
	return l, nil
}

func (l *DirRuleLoader) LoadRules(locale language.Tag, name string) (*RuleData, error) {
	tag := locale
	if l.matcher != nil {
		if _, i, confidence := l.matcher.Match(locale); confidence != language.No {
			tag = l.tags[i]
		}
	}
	for ; !tag.IsRoot(); tag = tag.Parent() {
		data, err := l.read(filepath.Join(l.dir, tag.String(), name+".brk"))
		if err != nil {
			return nil, err
		}
		if data != nil {
			return &RuleData{Name: name, Locale: tag, Data: data}, nil
		}
	}
	data, err := l.read(filepath.Join(l.dir, name+".brk"))
	if err != nil {
		return nil, err
	}
	return &RuleData{Name: name, Locale: language.Und, Data: data}, nil
}

func (l *DirRuleLoader) read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fail to read rules: %w", err)
	}
	return data, nil
}

// RuleName returns the name of the rule set for locale and kind. The
// locale keywords lb and lw select line break variants.
func RuleName(locale language.Tag, kind BreakKind) string {
	switch kind {
	case Character:
		return "grapheme"
	case Word:
		return "word"
	case Line:
		name := "line"
		switch lb := locale.TypeForKey("lb"); lb {
		case "strict", "normal", "loose":
			name += "_" + lb
		}
		if locale.TypeForKey("lw") == "phrase" {
			base, _ := locale.Base()
			if b := base.String(); b == "ja" || b == "ko" {
				name += "_phrase"
			}
		}
		return name
	case Sentence:
		return "sentence"
	case Title:
		return "title"
	}
	return ""
}

// Factory creates break iterators that share one engine registry.
type Factory struct {
	registry *EngineRegistry
	loader   RuleLoader
	filters  SentenceFilterBuilder

	// DumpOutput is passed to every iterator the factory creates.
	DumpOutput io.Writer
}

// NewFactory returns a factory that loads rules with loader, or uses
// empty rule sets when loader is nil.
func NewFactory(registry *EngineRegistry, loader RuleLoader) *Factory {
	if loader == nil {
		loader = defaultRuleLoader{}
	}
	return &Factory{
		registry: registry,
		loader:   loader,
	}
}

// SetSentenceFilterBuilder sets the decorator applied to sentence
// iterators of locales with ss=standard.
func (f *Factory) SetSentenceFilterBuilder(b SentenceFilterBuilder) {
	f.filters = b
}

func (f *Factory) NewBreakIterator(locale language.Tag, kind BreakKind) (BreakIterator, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("invalid break kind: %v", kind)
	}
	name := RuleName(locale, kind)
	rules, err := f.loader.LoadRules(locale, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	tracer().Debugf("rules %s for %s", name, locale)
	it, err := NewRuleBasedBreakIterator(rules, locale, kind, f.registry)
	if err != nil {
		return nil, err
	}
	if f.DumpOutput != nil {
		it.DumpOutput = f.DumpOutput
	}
	if kind == Sentence && f.filters != nil && locale.TypeForKey("ss") == "standard" {
		return f.filters.Build(locale, it), nil
	}
	return it, nil
}
