package dictbreak

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
)

type SettingsJSON struct {
	BaseConfig
	path        string
	breakEngine []json.RawMessage
}

func NewSettingsJSON() *SettingsJSON {
	return &SettingsJSON{}
}

func (settings *SettingsJSON) GetBaseConfig() *BaseConfig {
	return &settings.BaseConfig
}

func (settings *SettingsJSON) ParseSettingsJSON(defpath string, reader io.Reader) error {
	internalBaseConfig := &struct {
		Path                 *string
		CharacterClassFile   *string
		RuleDir              *string
		Dictionaries         *map[string]string
		SentenceSuppressions *map[string][]string
		BreakEngine          *[]json.RawMessage
	}{}

	decoder := json.NewDecoder(reader)
	err := decoder.Decode(internalBaseConfig)
	if err != nil {
		return err
	}
	if internalBaseConfig.Path == nil {
		settings.path = defpath
	} else {
		settings.path = *internalBaseConfig.Path
	}
	if internalBaseConfig.CharacterClassFile != nil {
		settings.CharacterClassFile = settings.getPath(*internalBaseConfig.CharacterClassFile)
	}
	if internalBaseConfig.RuleDir != nil {
		settings.RuleDir = settings.getPath(*internalBaseConfig.RuleDir)
	}
	if internalBaseConfig.Dictionaries != nil {
		if settings.Dictionaries == nil {
			settings.Dictionaries = map[string]string{}
		}
		for tag, file := range *internalBaseConfig.Dictionaries {
			settings.Dictionaries[tag] = settings.getPath(file)
		}
	}
	if internalBaseConfig.SentenceSuppressions != nil {
		settings.SentenceSuppressions = *internalBaseConfig.SentenceSuppressions
	}
	if internalBaseConfig.BreakEngine != nil {
		settings.breakEngine = *internalBaseConfig.BreakEngine
	}
	return nil
}

func (settings *SettingsJSON) getPath(path string) string {
	if path == "" || filepath.IsAbs(path) || settings.path == "" {
		return path
	}
	return filepath.Join(settings.path, path)
}

func (settings *SettingsJSON) GetBreakEnginePluginArray(makeproc MakeBreakEnginePluginFunc) ([]BreakEnginePlugin, error) {
	ret := []BreakEnginePlugin{}
	for _, raw := range settings.breakEngine {
		pname := &struct {
			Class *string
			Name  *string
		}{}
		err := json.Unmarshal(raw, pname)
		if err != nil {
			return ret, err
		}
		var name string
		if pname.Class != nil {
			name = *pname.Class
		}
		if pname.Name != nil {
			name = *pname.Name
		}
		plugin := makeproc(name)
		if plugin == nil {
			return ret, fmt.Errorf("BreakEnginePlugin: %s is unknown", name)
		}
		err = json.Unmarshal(raw, plugin.GetConfigStruct())
		if err != nil {
			return ret, err
		}
		ret = append(ret, plugin)
	}
	return ret, nil
}
