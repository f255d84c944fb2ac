package dictbreak

import (
	"strings"
	"testing"
)

var s string = `
{
  "path" : "/usr/local/share/dictbreak",
  "characterClassFile" : "charclass.def",
  "ruleDir" : "/var/lib/brkitr",
  "dictionaries" : {
    "Laoo" : "laodict.dic",
    "Hira" : "/opt/cjdict.dic"
  },
  "sentenceSuppressions" : {
    "en" : [ "Mr.", "Dr." ]
  },
  "breakEngine" : [
    { "class" : "LaoBreakEngine" },
    { "class" : "BurmeseBreakEngine",
      "dictionary" : "Mymr",
      "minWordSpan" : 4
    },
    { "name" : "CjkBreakEngine", "dictionary" : "Hani" }
  ]
}
`

// TestSettingsJSON_ParseSettingsJSON
func TestSettingsJSON_ParseSettingsJSON(t *testing.T) {
	settings := NewSettingsJSON()
	err := settings.ParseSettingsJSON("", strings.NewReader(s))
	if err != nil {
		t.Fatalf("fail to parse json: %s", err)
	}

	bc := settings.GetBaseConfig()
	want := "/usr/local/share/dictbreak/charclass.def"
	if bc.CharacterClassFile != want {
		t.Errorf("invalid result. want = %s, got = %s", want, bc.CharacterClassFile)
	}
	if bc.RuleDir != "/var/lib/brkitr" {
		t.Errorf("invalid result. want = %s, got = %s", "/var/lib/brkitr", bc.RuleDir)
	}
	want = "/usr/local/share/dictbreak/laodict.dic"
	if bc.Dictionaries["Laoo"] != want {
		t.Errorf("invalid result. want = %s, got = %s", want, bc.Dictionaries["Laoo"])
	}
	if bc.Dictionaries["Hira"] != "/opt/cjdict.dic" {
		t.Errorf("invalid result. want = %s, got = %s", "/opt/cjdict.dic", bc.Dictionaries["Hira"])
	}
	if len(bc.SentenceSuppressions["en"]) != 2 {
		t.Errorf("invalid result. want = 2, got = %d", len(bc.SentenceSuppressions["en"]))
	}

	plugins, err := settings.GetBreakEnginePluginArray(DefMakeBreakEnginePlugin)
	if err != nil {
		t.Fatalf("GetBreakEnginePluginArray: %s", err)
	}
	if len(plugins) != 3 {
		t.Fatalf("invalid result. want = 3, got = %d", len(plugins))
	}
	burmese, ok := plugins[1].(*BurmeseBreakEnginePlugin)
	if !ok {
		t.Fatalf("invalid result. want = *BurmeseBreakEnginePlugin, got = %T", plugins[1])
	}
	config := burmese.GetConfigStruct().(*ThaiFamilyBreakEnginePluginConfig)
	if config.Dictionary == nil || *config.Dictionary != "Mymr" {
		t.Errorf("invalid result. want = Mymr, got = %v", config.Dictionary)
	}
	if config.MinWordSpan == nil || *config.MinWordSpan != 4 {
		t.Errorf("invalid result. want = 4, got = %v", config.MinWordSpan)
	}
	if config.Lookahead != nil {
		t.Errorf("invalid result. want = nil, got = %v", *config.Lookahead)
	}
	cjk := plugins[2].GetConfigStruct().(*CjkBreakEnginePluginConfig)
	if cjk.Dictionary == nil || *cjk.Dictionary != "Hani" {
		t.Errorf("invalid result. want = Hani, got = %v", cjk.Dictionary)
	}
}

func TestSettingsJSON_DefaultPath(t *testing.T) {
	settings := NewSettingsJSON()
	err := settings.ParseSettingsJSON("/tmp/dict", strings.NewReader(`{"dictionaries" : {"Thai" : "thai.dic"}}`))
	if err != nil {
		t.Fatalf("fail to parse json: %s", err)
	}
	want := "/tmp/dict/thai.dic"
	if got := settings.GetBaseConfig().Dictionaries["Thai"]; got != want {
		t.Errorf("invalid result. want = %s, got = %s", want, got)
	}
}

func TestSettingsJSON_UnknownPlugin(t *testing.T) {
	settings := NewSettingsJSON()
	err := settings.ParseSettingsJSON("", strings.NewReader(`{"breakEngine" : [{"class" : "TibetanBreakEngine"}]}`))
	if err != nil {
		t.Fatalf("fail to parse json: %s", err)
	}
	if _, err := settings.GetBreakEnginePluginArray(DefMakeBreakEnginePlugin); err == nil {
		t.Errorf("an unknown plugin must fail")
	}
}
