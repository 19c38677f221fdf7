package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// decodableExtensions lists the file extensions DecodeFile understands, in
// lookup order
var decodableExtensions = []string{".toml", ".yaml", ".yml"}

// DecodeFile decodes a TOML or YAML file into v, chosen by extension
func DecodeFile(path string, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, v); err != nil {
			return fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
		}
		return nil
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
		}
		return nil
	}
	return fmt.Errorf("unsupported file type: %s", path)
}

// FindFile returns the first of dir/base.toml, dir/base.yaml, dir/base.yml
// that exists
func FindFile(dir, base string) (string, error) {
	for _, ext := range decodableExtensions {
		path := filepath.Join(dir, base+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s.toml not found in %s", base, dir)
}
