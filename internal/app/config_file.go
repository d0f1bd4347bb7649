package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Every field has a
// flag counterpart; explicitly set flags win over file values. The keywords
// section lets a run swap in its own tier phrase lists without rebuilding.
type FileConfig struct {
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	Log       string `yaml:"log" json:"log"`
	ReportPDF string `yaml:"reportPDF" json:"reportPDF"`
	Workers   int    `yaml:"workers" json:"workers"`
	Verbose   bool   `yaml:"verbose" json:"verbose"`

	Keywords struct {
		Basic   []string `yaml:"basic" json:"basic"`
		Diluted []string `yaml:"diluted" json:"diluted"`
		Generic []string `yaml:"generic" json:"generic"`
	} `yaml:"keywords" json:"keywords"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}
