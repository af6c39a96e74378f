package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the on-disk YAML settings file. It supplies launch defaults
// only; values set explicitly on Options always win.
//
// Example:
//
//	interpreter: /usr/local/bin/node
//	cwd: /home/user/.kit
//	env:
//	  KIT_CONTEXT: app
type Settings struct {
	Interpreter string            `yaml:"interpreter"`
	Cwd         string            `yaml:"cwd"`
	Env         map[string]string `yaml:"env"`
}

// LoadSettings reads and parses a YAML settings file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings file %q: %w", path, err)
	}

	return &s, nil
}

// ApplySettings merges file-provided defaults into the options.
func (o *Options) ApplySettings(s *Settings) {
	if s == nil {
		return
	}

	if o.Interpreter == "" {
		o.Interpreter = s.Interpreter
	}

	if o.Cwd == "" {
		o.Cwd = s.Cwd
	}

	if len(s.Env) > 0 && o.Env == nil {
		o.Env = make(map[string]string, len(s.Env))
	}

	for k, v := range s.Env {
		if _, set := o.Env[k]; !set {
			o.Env[k] = v
		}
	}
}
