package dictbreak

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// SentenceFilterBuilder wraps sentence iterators of a locale.
type SentenceFilterBuilder interface {
	Build(locale language.Tag, it BreakIterator) BreakIterator
}

// AbbreviationFilterBuilder builds AbbreviationFilters from abbreviation
// lists keyed by language.
type AbbreviationFilterBuilder struct {
	suppressions map[string][]string
	matcher      language.Matcher
	tags         []language.Tag
}

func NewAbbreviationFilterBuilder(suppressions map[string][]string) *AbbreviationFilterBuilder {
	b := &AbbreviationFilterBuilder{suppressions: map[string][]string{}}
	for lang, abbrs := range suppressions {
		tag, err := language.Parse(lang)
		if err != nil {
			tracer().Errorf("sentence suppressions: %s: %v", lang, err)
			continue
		}
		b.suppressions[tag.String()] = abbrs
		b.tags = append(b.tags, tag)
	}
	if len(b.tags) > 0 {
		b.matcher = language.NewMatcher(b.tags)
	}
	return b
}

// Build returns it unchanged when no abbreviations match locale.
func (b *AbbreviationFilterBuilder) Build(locale language.Tag, it BreakIterator) BreakIterator {
	if b.matcher == nil {
		return it
	}
	_, i, confidence := b.matcher.Match(locale)
	if confidence == language.No {
		return it
	}
	abbrs := b.suppressions[b.tags[i].String()]
	if len(abbrs) == 0 {
		return it
	}
	return NewAbbreviationFilter(it, abbrs)
}

// AbbreviationFilter drops sentence boundaries that follow one of its
// abbreviations.
type AbbreviationFilter struct {
	it            BreakIterator
	abbreviations []string
	boundaries    []int
	index         int
}

func NewAbbreviationFilter(it BreakIterator, abbreviations []string) *AbbreviationFilter {
	return &AbbreviationFilter{
		it:            it,
		abbreviations: abbreviations,
		index:         -1,
	}
}

func (f *AbbreviationFilter) SetText(text string) error {
	f.boundaries = nil
	f.index = -1
	if err := f.it.SetText(text); err != nil {
		return err
	}
	all := f.it.Boundaries()
	for i, b := range all {
		if i > 0 && i < len(all)-1 && f.suppressed(text[:b]) {
			continue
		}
		f.boundaries = append(f.boundaries, b)
	}
	f.index = 0
	return nil
}

func (f *AbbreviationFilter) suppressed(before string) bool {
	before = strings.TrimRightFunc(before, unicode.IsSpace)
	for _, a := range f.abbreviations {
		if !strings.HasSuffix(before, a) {
			continue
		}
		rest := before[:len(before)-len(a)]
		if rest == "" || strings.HasSuffix(rest, " ") || strings.HasSuffix(rest, "\t") || strings.HasSuffix(rest, "(") {
			return true
		}
	}
	return false
}

func (f *AbbreviationFilter) offset(i int) int {
	if i < 0 || i >= len(f.boundaries) {
		return Done
	}
	return f.boundaries[i]
}

func (f *AbbreviationFilter) First() int {
	if len(f.boundaries) == 0 {
		return Done
	}
	f.index = 0
	return f.offset(0)
}

func (f *AbbreviationFilter) Next() int {
	if f.index < 0 || f.index >= len(f.boundaries) {
		return Done
	}
	f.index++
	return f.offset(f.index)
}

func (f *AbbreviationFilter) Current() int {
	return f.offset(f.index)
}

func (f *AbbreviationFilter) Boundaries() []int {
	return append([]int(nil), f.boundaries...)
}
