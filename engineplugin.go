package dictbreak

import (
	"fmt"
	"unicode"

	scripts "github.com/go-text/typesetting/language"
	"github.com/msnoigrs/dictbreak/dictionary"
)

type ThaiFamilyBreakEnginePluginConfig struct {
	Dictionary             *string
	Lookahead              *int
	RootCombineThreshold   *int
	PrefixCombineThreshold *int
	MinWord                *int
	MinWordSpan            *int
}

type thaiFamilyPlugin struct {
	config *ThaiFamilyBreakEnginePluginConfig
	engine *DictionaryBreakEngine
}

func (p *thaiFamilyPlugin) GetConfigStruct() interface{} {
	if p.config == nil {
		p.config = &ThaiFamilyBreakEnginePluginConfig{}
	}
	return p.config
}

func (p *thaiFamilyPlugin) Engine() ClaimingBreakEngine {
	if p.engine == nil {
		return nil
	}
	return p.engine
}

func (p *thaiFamilyPlugin) setUp(res *Resources, config ThaiFamilyConfig, class uint32, tag string) error {
	c := p.GetConfigStruct().(*ThaiFamilyBreakEnginePluginConfig)
	if c.Dictionary != nil {
		tag = *c.Dictionary
	}
	for _, v := range []struct {
		src *int
		dst *int
	}{
		{c.Lookahead, &config.Lookahead},
		{c.RootCombineThreshold, &config.RootCombineThreshold},
		{c.PrefixCombineThreshold, &config.PrefixCombineThreshold},
		{c.MinWord, &config.MinWord},
		{c.MinWordSpan, &config.MinWordSpan},
	} {
		if v.src != nil {
			*v.dst = *v.src
		}
	}
	if res == nil || res.Dictionaries == nil {
		return fmt.Errorf("%sBreakEngine: %w", config.Name, ErrNoDictionary)
	}
	if res.CharacterClass == nil {
		return fmt.Errorf("%sBreakEngine: character classes are not specified", config.Name)
	}
	dict, err := res.Dictionaries.LoadDictionary(tag)
	if err != nil {
		return fmt.Errorf("%sBreakEngine: %w", config.Name, err)
	}
	engine, err := NewThaiFamilyBreakEngine(config, ClassesOf(res.CharacterClass, class), dict)
	if err != nil {
		return fmt.Errorf("%sBreakEngine: %w", config.Name, err)
	}
	p.engine = engine
	p.config = nil
	return nil
}

type ThaiBreakEnginePlugin struct {
	thaiFamilyPlugin
}

func NewThaiBreakEnginePlugin(config *ThaiFamilyBreakEnginePluginConfig) *ThaiBreakEnginePlugin {
	return &ThaiBreakEnginePlugin{thaiFamilyPlugin{config: config}}
}

func (p *ThaiBreakEnginePlugin) Scripts() []scripts.Script {
	return []scripts.Script{scripts.Thai}
}

func (p *ThaiBreakEnginePlugin) SetUp(res *Resources) error {
	return p.setUp(res, ThaiConfig, dictionary.THAI, "Thai")
}

type LaoBreakEnginePlugin struct {
	thaiFamilyPlugin
}

func NewLaoBreakEnginePlugin(config *ThaiFamilyBreakEnginePluginConfig) *LaoBreakEnginePlugin {
	return &LaoBreakEnginePlugin{thaiFamilyPlugin{config: config}}
}

func (p *LaoBreakEnginePlugin) Scripts() []scripts.Script {
	return []scripts.Script{scripts.Lao}
}

func (p *LaoBreakEnginePlugin) SetUp(res *Resources) error {
	return p.setUp(res, LaoConfig, dictionary.LAO, "Laoo")
}

type KhmerBreakEnginePlugin struct {
	thaiFamilyPlugin
}

func NewKhmerBreakEnginePlugin(config *ThaiFamilyBreakEnginePluginConfig) *KhmerBreakEnginePlugin {
	return &KhmerBreakEnginePlugin{thaiFamilyPlugin{config: config}}
}

func (p *KhmerBreakEnginePlugin) Scripts() []scripts.Script {
	return []scripts.Script{scripts.Khmer}
}

func (p *KhmerBreakEnginePlugin) SetUp(res *Resources) error {
	return p.setUp(res, KhmerConfig, dictionary.KHMER, "Khmr")
}

type BurmeseBreakEnginePlugin struct {
	thaiFamilyPlugin
}

func NewBurmeseBreakEnginePlugin(config *ThaiFamilyBreakEnginePluginConfig) *BurmeseBreakEnginePlugin {
	return &BurmeseBreakEnginePlugin{thaiFamilyPlugin{config: config}}
}

func (p *BurmeseBreakEnginePlugin) Scripts() []scripts.Script {
	return []scripts.Script{scripts.Myanmar}
}

func (p *BurmeseBreakEnginePlugin) SetUp(res *Resources) error {
	return p.setUp(res, BurmeseConfig, dictionary.BURMESE, "Mymr")
}

type CjkBreakEnginePluginConfig struct {
	Dictionary *string
}

type cjkPlugin struct {
	config *CjkBreakEnginePluginConfig
	engine *DictionaryBreakEngine
}

func (p *cjkPlugin) GetConfigStruct() interface{} {
	if p.config == nil {
		p.config = &CjkBreakEnginePluginConfig{}
	}
	return p.config
}

func (p *cjkPlugin) Engine() ClaimingBreakEngine {
	if p.engine == nil {
		return nil
	}
	return p.engine
}

func (p *cjkPlugin) setUp(res *Resources, name string, tag string, newEngine func(DictionaryMatcher) (*DictionaryBreakEngine, error)) error {
	c := p.GetConfigStruct().(*CjkBreakEnginePluginConfig)
	if c.Dictionary != nil {
		tag = *c.Dictionary
	}
	if res == nil || res.Dictionaries == nil {
		return fmt.Errorf("%s: %w", name, ErrNoDictionary)
	}
	dict, err := res.Dictionaries.LoadDictionary(tag)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	engine, err := newEngine(dict)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	p.engine = engine
	p.config = nil
	return nil
}

type CjkBreakEnginePlugin struct {
	cjkPlugin
}

func NewCjkBreakEnginePlugin(config *CjkBreakEnginePluginConfig) *CjkBreakEnginePlugin {
	return &CjkBreakEnginePlugin{cjkPlugin{config: config}}
}

func (p *CjkBreakEnginePlugin) Scripts() []scripts.Script {
	return []scripts.Script{scripts.Han, scripts.Hiragana, scripts.Katakana}
}

// Claims reports whether the engine of p will claim r, including the
// Common script sound marks of Japanese.
func (p *CjkBreakEnginePlugin) Claims(r rune) bool {
	return unicode.Is(CjkCharacters, r)
}

func (p *CjkBreakEnginePlugin) SetUp(res *Resources) error {
	return p.setUp(res, "CjkBreakEngine", "Hira", NewCjkBreakEngine)
}

type KoreanBreakEnginePlugin struct {
	cjkPlugin
}

func NewKoreanBreakEnginePlugin(config *CjkBreakEnginePluginConfig) *KoreanBreakEnginePlugin {
	return &KoreanBreakEnginePlugin{cjkPlugin{config: config}}
}

func (p *KoreanBreakEnginePlugin) Scripts() []scripts.Script {
	return []scripts.Script{scripts.Hangul}
}

func (p *KoreanBreakEnginePlugin) SetUp(res *Resources) error {
	return p.setUp(res, "KoreanBreakEngine", "Hang", NewKoreanBreakEngine)
}
