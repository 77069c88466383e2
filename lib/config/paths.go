package config

import (
	"path/filepath"

	yaml "github.com/goccy/go-yaml"
)

// CfgPath is a path that, when relative, is relative to the config file.
type CfgPath string

// UnmarshalBase is a hack that must be thrown into the sun
var UnmarshalBase string

func (c *CfgPath) UnmarshalYAML(b []byte) error {
	var path string

	err := yaml.Unmarshal(b, &path)
	if err != nil {
		return err
	}

	if path == "" || filepath.IsAbs(path) {
		*c = CfgPath(path)
	} else {
		*c = CfgPath(filepath.Join(UnmarshalBase, path))
	}
	return nil
}

func (c CfgPath) OrEmbedded() string {
	if c == "" {
		return "(embedded)"
	}
	return string(c)
}
