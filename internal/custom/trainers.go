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
	"github.com/norune/dunspars-sub000/internal/constants"
)

// Trainer is a named team of custom Pokémon.
type Trainer struct {
	ID      string    `yaml:"id,omitempty"`
	Name    string    `yaml:"name"`
	Pokemon []Pokemon `yaml:"pokemon"`
}

type TrainerCollection struct {
	Trainers []Trainer `yaml:"trainers"`
	Version  string    `yaml:"version,omitempty"`
}

// Find returns the trainer whose name matches, ignoring case.
func (c *TrainerCollection) Find(name string) *Trainer {
	for i := range c.Trainers {
		if strings.EqualFold(c.Trainers[i].Name, name) {
			return &c.Trainers[i]
		}
	}
	return nil
}

func (c *TrainerCollection) Names() []string {
	names := make([]string, 0, len(c.Trainers))
	for i := range c.Trainers {
		names = append(names, c.Trainers[i].Name)
	}
	return names
}

// TrainerFile is the on-disk trainer roster. A missing file reads as
// an empty collection.
type TrainerFile struct {
	path string
}

func NewTrainerFile(cfg *config.Config) *TrainerFile {
	return &TrainerFile{path: filepath.Join(cfg.ConfigDir, "trainers.yaml")}
}

func (f *TrainerFile) Path() string {
	return f.path
}

// Read parses the roster. Files stamped by an incompatible program
// version are rejected rather than half-understood; unstamped files,
// typically hand-written, are taken as current.
func (f *TrainerFile) Read() (*TrainerCollection, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &TrainerCollection{}, nil
	}
	if err != nil {
		return nil, err
	}

	var collection TrainerCollection
	if err := yaml.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}

	if collection.Version != "" && !sameMinorLevel(collection.Version, constants.Version) {
		return nil, fmt.Errorf(
			"trainer file version mismatch. Program version: %s; file version: %s",
			constants.Version, collection.Version,
		)
	}

	for i := range collection.Trainers {
		trainer := &collection.Trainers[i]
		if trainer.ID == "" {
			id, err := gonanoid.New()
			if err != nil {
				return nil, err
			}
			trainer.ID = id
		}
		if err := assignIDs(trainer.Pokemon); err != nil {
			return nil, err
		}
	}

	return &collection, nil
}

// Save stamps the roster with the current program version.
func (f *TrainerFile) Save(collection *TrainerCollection) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	collection.Version = constants.Version
	data, err := yaml.Marshal(collection)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

// sameMinorLevel reports whether two versions agree on their major and
// minor segments. Patch differences are fine.
func sameMinorLevel(lhs, rhs string) bool {
	left := strings.SplitN(lhs, ".", 3)
	right := strings.SplitN(rhs, ".", 3)
	if len(left) < 2 || len(right) < 2 {
		return false
	}
	return left[0] == right[0] && left[1] == right[1]
}
