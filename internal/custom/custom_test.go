package custom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/norune/dunspars-sub000/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{ConfigDir: t.TempDir()}
}

func TestFileReadMissing(t *testing.T) {
	file := NewFile(testConfig(t))

	collection, err := file.Read()
	if err != nil {
		t.Fatalf("read missing file: %v", err)
	}
	if len(collection.Pokemon) != 0 {
		t.Errorf("expected empty collection, got %d records", len(collection.Pokemon))
	}
}

func TestFileRoundTrip(t *testing.T) {
	file := NewFile(testConfig(t))

	ghost := "ghost"
	saved := &Collection{Pokemon: []Pokemon{
		{
			Nickname:   "Shellshock",
			Base:       "blastoise",
			Generation: 3,
			Moves:      []string{"surf", "ice-beam"},
		},
		{
			ID:         "fixed-id",
			Nickname:   "Haunter",
			Base:       "gengar",
			Generation: 1,
			Types:      &TypeOverride{Primary: "ghost", Secondary: &ghost},
		},
	}}
	if err := file.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := file.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(loaded.Pokemon) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded.Pokemon))
	}

	first := loaded.Pokemon[0]
	if first.ID == "" {
		t.Error("expected an id assigned on save")
	}
	if first.Base != "blastoise" || first.Generation != 3 {
		t.Errorf("unexpected first record: %+v", first)
	}
	if len(first.Moves) != 2 || first.Moves[1] != "ice-beam" {
		t.Errorf("unexpected moves: %v", first.Moves)
	}
	if first.Types != nil {
		t.Errorf("expected no type override, got %+v", first.Types)
	}

	second := loaded.Pokemon[1]
	if second.ID != "fixed-id" {
		t.Errorf("expected the existing id to survive, got %q", second.ID)
	}
	if second.Types == nil || second.Types.Primary != "ghost" {
		t.Fatalf("unexpected type override: %+v", second.Types)
	}
	if second.Types.Secondary == nil || *second.Types.Secondary != "ghost" {
		t.Errorf("unexpected secondary type: %v", second.Types.Secondary)
	}
}

func TestReadAssignsMissingIDs(t *testing.T) {
	cfg := testConfig(t)
	raw := "pokemon:\n  - nickname: Sparky\n    base: pikachu\n    generation: 4\n"
	if err := os.WriteFile(filepath.Join(cfg.ConfigDir, "custom.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	collection, err := NewFile(cfg).Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(collection.Pokemon) != 1 {
		t.Fatalf("expected 1 record, got %d", len(collection.Pokemon))
	}
	if collection.Pokemon[0].ID == "" {
		t.Error("expected a hand-written record to receive an id")
	}
}

func TestCollectionFind(t *testing.T) {
	collection := &Collection{Pokemon: []Pokemon{
		{Nickname: "Shellshock", Base: "blastoise"},
		{Nickname: "Sparky", Base: "pikachu"},
	}}

	if found := collection.Find("sparky"); found == nil || found.Base != "pikachu" {
		t.Errorf("expected a case-insensitive match, got %+v", found)
	}
	if found := collection.Find("SHELLSHOCK"); found == nil || found.Base != "blastoise" {
		t.Errorf("expected a case-insensitive match, got %+v", found)
	}
	if found := collection.Find("missing"); found != nil {
		t.Errorf("expected no match, got %+v", found)
	}
}

func TestTrainerFileRoundTrip(t *testing.T) {
	file := NewTrainerFile(testConfig(t))

	saved := &TrainerCollection{Trainers: []Trainer{
		{
			Name: "Rival",
			Pokemon: []Pokemon{
				{Nickname: "Shellshock", Base: "blastoise", Generation: 3},
			},
		},
	}}
	if err := file.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := file.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if loaded.Version == "" {
		t.Error("expected save to stamp a version")
	}
	trainer := loaded.Find("rival")
	if trainer == nil {
		t.Fatal("expected to find the saved trainer")
	}
	if trainer.ID == "" {
		t.Error("expected the trainer to receive an id")
	}
	if len(trainer.Pokemon) != 1 || trainer.Pokemon[0].ID == "" {
		t.Errorf("expected the team member to receive an id: %+v", trainer.Pokemon)
	}
}

func TestTrainerFileVersionMismatch(t *testing.T) {
	cfg := testConfig(t)
	raw := "version: 99.0.0\ntrainers:\n  - name: Rival\n    pokemon: []\n"
	if err := os.WriteFile(filepath.Join(cfg.ConfigDir, "trainers.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := NewTrainerFile(cfg).Read()
	if err == nil {
		t.Fatal("expected a version mismatch error")
	}
	if !strings.Contains(err.Error(), "version mismatch") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTrainerFileUnstampedReads(t *testing.T) {
	cfg := testConfig(t)
	raw := "trainers:\n  - name: Rival\n    pokemon: []\n"
	if err := os.WriteFile(filepath.Join(cfg.ConfigDir, "trainers.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	collection, err := NewTrainerFile(cfg).Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(collection.Trainers) != 1 {
		t.Errorf("expected 1 trainer, got %d", len(collection.Trainers))
	}
}

func TestSameMinorLevel(t *testing.T) {
	if !sameMinorLevel("0.10.0", "0.10.7") {
		t.Error("expected patch releases to be compatible")
	}
	if sameMinorLevel("0.10.0", "0.11.0") {
		t.Error("expected minor releases to be incompatible")
	}
	if sameMinorLevel("1.10.0", "0.10.0") {
		t.Error("expected major releases to be incompatible")
	}
	if sameMinorLevel("nonsense", "0.10.0") {
		t.Error("expected malformed versions to be incompatible")
	}
}
