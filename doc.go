/*
Package dictbreak finds word and line boundaries in scripts that are written
without spaces between words.

Thai, Lao, Khmer and Burmese text is divided by a bounded lookahead over
dictionary matches. Chinese, Japanese and Korean text is divided by a
shortest path search over dictionary costs on NFKC normalized text. Both
kinds of engine are looked up through an EngineRegistry, which remembers
characters that no engine handles in an UnhandledBreakEngine so that later
lookups return quickly.

A RuleBasedBreakIterator combines the engines with rule based boundaries
for ordinary text:

	factory := dictbreak.NewFactory(registry, nil)
	it, err := factory.NewBreakIterator(language.Lao, dictbreak.Word)
	if err != nil {
		return err
	}
	if err := it.SetText(text); err != nil {
		return err
	}
	for b := it.First(); b != dictbreak.Done; b = it.Next() {
		...
	}

Every position used by the engines is a rune index into a []rune. The
iterator reports byte offsets into the string it was given.
*/
package dictbreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictbreak'
func tracer() tracing.Trace {
	return tracing.Select("dictbreak")
}
