package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DUNSPARS_DB", "/tmp/override.db")
	t.Setenv("DUNSPARS_CONFIG_DIR", "/tmp/override-config")
	t.Setenv("POKEAPI_BASE_URL", "http://localhost:9000/api/v2")
	t.Setenv("DUNSPARS_LOG_LEVEL", "debug")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBPath != "/tmp/override.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ConfigDir != "/tmp/override-config" {
		t.Errorf("ConfigDir = %q", cfg.ConfigDir)
	}
	if cfg.APIBaseURL != "http://localhost:9000/api/v2" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestFileReadMissing(t *testing.T) {
	file := NewFile(&Config{ConfigDir: t.TempDir()})

	collection, err := file.Read()
	if err != nil {
		t.Fatalf("read missing file: %v", err)
	}
	if len(collection.Keys()) != 0 {
		t.Errorf("expected an empty collection, got %v", collection.Keys())
	}
}

func TestFileRoundTrip(t *testing.T) {
	file := NewFile(&Config{ConfigDir: t.TempDir()})

	collection, err := file.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	collection.Set("game", "platinum")
	collection.Set("color", "false")
	if err := file.Save(collection); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := file.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if value, ok := loaded.Get("game"); !ok || value != "platinum" {
		t.Errorf("game = %q, %v", value, ok)
	}
	if want := []string{"color", "game"}; !reflect.DeepEqual(loaded.Keys(), want) {
		t.Errorf("keys = %v, want %v", loaded.Keys(), want)
	}

	if !loaded.Unset("game") {
		t.Error("expected unset to report the key existed")
	}
	if loaded.Unset("game") {
		t.Error("expected a second unset to report a miss")
	}
	if err := file.Save(loaded); err != nil {
		t.Fatalf("save: %v", err)
	}

	final, err := file.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, ok := final.Get("game"); ok {
		t.Error("expected game to be gone after unset")
	}
}

func TestFileReadCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("config: [not-a-map"), 0o644); err != nil {
		t.Fatal(err)
	}

	file := NewFile(&Config{ConfigDir: dir})
	if _, err := file.Read(); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected a parse error, got %v", err)
	}
}
