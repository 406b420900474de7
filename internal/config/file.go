package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// File is the on-disk key-value collection behind the `config` command.
// A missing file reads as an empty collection.
type File struct {
	path string
}

func NewFile(cfg *Config) *File {
	return &File{path: filepath.Join(cfg.ConfigDir, "config.yaml")}
}

type Collection struct {
	Config map[string]string `yaml:"config"`
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Read() (*Collection, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Collection{Config: map[string]string{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var collection Collection
	if err := yaml.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	if collection.Config == nil {
		collection.Config = map[string]string{}
	}
	return &collection, nil
}

func (f *File) Save(collection *Collection) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(collection)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

func (c *Collection) Get(key string) (string, bool) {
	value, ok := c.Config[key]
	return value, ok
}

func (c *Collection) Set(key, value string) {
	c.Config[key] = value
}

func (c *Collection) Unset(key string) bool {
	_, ok := c.Config[key]
	delete(c.Config, key)
	return ok
}

func (c *Collection) Keys() []string {
	keys := make([]string, 0, len(c.Config))
	for key := range c.Config {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
