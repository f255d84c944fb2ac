package dictbreak

import (
	"errors"
	"fmt"
	"sync"
	"unicode"

	scripts "github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/rangetable"
)

// ErrOverlappingEngines is returned when an engine claims a character that
// a registered engine already claims.
var ErrOverlappingEngines = errors.New("break engines claim the same characters")

// ClaimingBreakEngine is a break engine with a fixed set of characters.
type ClaimingBreakEngine interface {
	LanguageBreakEngine
	CharacterSet() *unicode.RangeTable
}

type pluginState struct {
	plugin BreakEnginePlugin
	done   bool
}

// characterClaimer is implemented by plugins whose engines claim characters
// outside the scripts they list, such as the Common script prolonged sound
// mark of Japanese.
type characterClaimer interface {
	Claims(r rune) bool
}

// EngineRegistry finds the engine for a character. Registered engines are
// asked first, in registration order, then the unhandled cache. Plugins are
// set up the first time a character of one of their scripts arrives.
// Characters that nothing handles go to the unhandled cache.
type EngineRegistry struct {
	mu        sync.RWMutex
	engines   []ClaimingBreakEngine
	unhandled *UnhandledBreakEngine
	byScript  map[scripts.Script][]*pluginState
	claimers  []*pluginState
	pending   int
	resources *Resources
}

// NewEngineRegistry returns a registry that caches unhandled characters in
// unhandled, or in the process wide cache when it is nil.
func NewEngineRegistry(unhandled *UnhandledBreakEngine, res *Resources, plugins ...BreakEnginePlugin) *EngineRegistry {
	if unhandled == nil {
		unhandled = DefaultUnhandledBreakEngine()
	}
	r := &EngineRegistry{
		unhandled: unhandled,
		byScript:  map[scripts.Script][]*pluginState{},
		resources: res,
	}
	for _, p := range plugins {
		st := &pluginState{plugin: p}
		r.pending++
		for _, s := range p.Scripts() {
			r.byScript[s] = append(r.byScript[s], st)
		}
		if _, ok := p.(characterClaimer); ok {
			r.claimers = append(r.claimers, st)
		}
	}
	return r
}

// Register adds an engine after the ones already registered.
func (r *EngineRegistry) Register(engine ClaimingBreakEngine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(engine)
}

func (r *EngineRegistry) register(engine ClaimingBreakEngine) error {
	set := engine.CharacterSet()
	for _, e := range r.engines {
		if overlap := firstCommonRune(set, e.CharacterSet()); overlap >= 0 {
			return fmt.Errorf("%w: %v and %v share U+%04X", ErrOverlappingEngines, engine, e, overlap)
		}
	}
	r.engines = append(r.engines, engine)
	tracer().Infof("registered break engine %v", engine)
	return nil
}

func firstCommonRune(a *unicode.RangeTable, b *unicode.RangeTable) rune {
	common := rune(-1)
	rangetable.Visit(a, func(c rune) {
		if common < 0 && unicode.Is(b, c) {
			common = c
		}
	})
	return common
}

func (r *EngineRegistry) findEngine(c rune, kind BreakKind) LanguageBreakEngine {
	for _, e := range r.engines {
		if e.Handles(c, kind) {
			return e
		}
	}
	return nil
}

// EngineFor returns the engine that handles c for kind. A plugin that fails
// to set up reports its error once; its scripts are unhandled afterwards.
func (r *EngineRegistry) EngineFor(c rune, kind BreakKind) (LanguageBreakEngine, error) {
	r.mu.RLock()
	e := r.findEngine(c, kind)
	pending := e == nil && r.hasPendingPlugin(c)
	r.mu.RUnlock()
	if e != nil {
		return e, nil
	}
	// The cache may be shared with registries that lack our plugins.
	if !pending && r.unhandled.Handles(c, kind) {
		return r.unhandled, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e := r.findEngine(c, kind); e != nil {
		return e, nil
	}
	if err := r.load(c); err != nil {
		return nil, err
	}
	if e := r.findEngine(c, kind); e != nil {
		return e, nil
	}
	r.unhandled.HandleChar(c, kind)
	return r.unhandled, nil
}

func (r *EngineRegistry) hasPendingPlugin(c rune) bool {
	if r.pending == 0 {
		return false
	}
	for _, st := range r.pluginsFor(c) {
		if !st.done {
			return true
		}
	}
	return false
}

// pluginsFor returns the plugins of the script of c followed by the other
// plugins that claim c.
func (r *EngineRegistry) pluginsFor(c rune) []*pluginState {
	states := r.byScript[scripts.LookupScript(c)]
	for _, st := range r.claimers {
		if !st.plugin.(characterClaimer).Claims(c) || containsPlugin(states, st) {
			continue
		}
		states = append(states[:len(states):len(states)], st)
	}
	return states
}

func containsPlugin(states []*pluginState, st *pluginState) bool {
	for _, s := range states {
		if s == st {
			return true
		}
	}
	return false
}

func (r *EngineRegistry) load(c rune) error {
	for _, st := range r.pluginsFor(c) {
		if st.done {
			continue
		}
		st.done = true
		r.pending--
		if err := st.plugin.SetUp(r.resources); err != nil {
			tracer().Errorf("fail to set up a break engine for U+%04X: %v", c, err)
			return err
		}
		engine := st.plugin.Engine()
		if engine == nil {
			continue
		}
		if err := r.register(engine); err != nil {
			return err
		}
	}
	return nil
}

// Engines returns the registered engines in registration order.
func (r *EngineRegistry) Engines() []ClaimingBreakEngine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]ClaimingBreakEngine(nil), r.engines...)
}
