package dictbreak

import (
	scripts "github.com/go-text/typesetting/language"
	"github.com/msnoigrs/dictbreak/dictionary"
)

type Settings interface {
	GetBaseConfig() *BaseConfig
}

type BaseConfig struct {
	CharacterClassFile string
	RuleDir            string
	// Dictionaries maps ISO 15924 script tags to dictionary files.
	Dictionaries map[string]string
	// SentenceSuppressions maps languages to abbreviations that do not
	// end a sentence.
	SentenceSuppressions map[string][]string
}

type PluginMaker interface {
	GetBreakEnginePluginArray(f MakeBreakEnginePluginFunc) ([]BreakEnginePlugin, error)
}

type Plugin interface {
	GetConfigStruct() interface{}
}

type MakeBreakEnginePluginFunc func(n string) BreakEnginePlugin

func DefMakeBreakEnginePlugin(k string) BreakEnginePlugin {
	switch k {
	case "ThaiBreakEngine":
		return &ThaiBreakEnginePlugin{}
	case "LaoBreakEngine":
		return &LaoBreakEnginePlugin{}
	case "KhmerBreakEngine":
		return &KhmerBreakEnginePlugin{}
	case "BurmeseBreakEngine":
		return &BurmeseBreakEnginePlugin{}
	case "CjkBreakEngine":
		return &CjkBreakEnginePlugin{}
	case "KoreanBreakEngine":
		return &KoreanBreakEnginePlugin{}
	}
	return nil
}

// Resources are shared by the plugins when they build their engines.
type Resources struct {
	Dictionaries   DictionaryLoader
	CharacterClass *dictionary.CharacterClass
}

// BreakEnginePlugin builds the engine for a set of scripts. The registry
// calls SetUp the first time it meets a character of one of them.
type BreakEnginePlugin interface {
	Plugin
	Scripts() []scripts.Script
	SetUp(res *Resources) error
	Engine() ClaimingBreakEngine
}
