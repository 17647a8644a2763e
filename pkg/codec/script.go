package codec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/sprig/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of actions replayed against a store.
type Script struct {
	Name    string     `yaml:"name" json:"name"`
	Actions []Envelope `yaml:"actions" json:"actions"`
}

// LoadScript reads a script file (YAML or JSON, by extension) and decodes every action.
func LoadScript(path string) (string, []domain.Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data, filepath.Ext(path))
}

// ParseScript decodes script data. ext selects the format: ".json" or YAML for anything else.
func ParseScript(data []byte, ext string) (string, []domain.Action, error) {
	var script Script
	if strings.ToLower(ext) == ".json" {
		if err := json.Unmarshal(data, &script); err != nil {
			return "", nil, fmt.Errorf("failed to parse script json: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &script); err != nil {
			return "", nil, fmt.Errorf("failed to parse script yaml: %w", err)
		}
	}

	actions := make([]domain.Action, 0, len(script.Actions))
	for i, env := range script.Actions {
		action, err := Decode(env)
		if err != nil {
			return "", nil, fmt.Errorf("action #%d: %w", i+1, err)
		}
		actions = append(actions, action)
	}
	return script.Name, actions, nil
}
