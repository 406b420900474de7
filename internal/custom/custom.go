package custom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gopkg.in/yaml.v3"

	"github.com/norune/dunspars-sub000/internal/config"
)

// Pokemon is a user-defined Pokémon: a nickname bound to a base
// species, pinned to a generation, with an explicit moveset and an
// optional typing override.
type Pokemon struct {
	ID         string        `yaml:"id,omitempty"`
	Nickname   string        `yaml:"nickname"`
	Base       string        `yaml:"base"`
	Generation int           `yaml:"generation"`
	Moves      []string      `yaml:"moves,omitempty"`
	Types      *TypeOverride `yaml:"types,omitempty"`
}

// TypeOverride replaces the base species' typing. Secondary is nil
// for mono-typed overrides.
type TypeOverride struct {
	Primary   string  `yaml:"primary"`
	Secondary *string `yaml:"secondary,omitempty"`
}

type Collection struct {
	Pokemon []Pokemon `yaml:"pokemon"`
}

// Find returns the record whose nickname matches, ignoring case.
func (c *Collection) Find(nickname string) *Pokemon {
	for i := range c.Pokemon {
		if strings.EqualFold(c.Pokemon[i].Nickname, nickname) {
			return &c.Pokemon[i]
		}
	}
	return nil
}

func (c *Collection) Nicknames() []string {
	names := make([]string, 0, len(c.Pokemon))
	for i := range c.Pokemon {
		names = append(names, c.Pokemon[i].Nickname)
	}
	return names
}

// File is the on-disk custom collection. A missing file reads as an
// empty collection.
type File struct {
	path string
}

func NewFile(cfg *config.Config) *File {
	return &File{path: filepath.Join(cfg.ConfigDir, "custom.yaml")}
}

func (f *File) Path() string {
	return f.path
}

// Read parses the collection. Hand-edited records arrive without ids;
// any record missing one is assigned a nanoid so later edits and
// deletes have a stable handle.
func (f *File) Read() (*Collection, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Collection{}, nil
	}
	if err != nil {
		return nil, err
	}

	var collection Collection
	if err := yaml.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}

	if err := assignIDs(collection.Pokemon); err != nil {
		return nil, err
	}
	return &collection, nil
}

func (f *File) Save(collection *Collection) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	if err := assignIDs(collection.Pokemon); err != nil {
		return err
	}

	data, err := yaml.Marshal(collection)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

func assignIDs(pokemon []Pokemon) error {
	for i := range pokemon {
		if pokemon[i].ID != "" {
			continue
		}
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		pokemon[i].ID = id
	}
	return nil
}
