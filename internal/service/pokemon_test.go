package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/config"
	"github.com/norune/dunspars-sub000/internal/custom"
	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/norune/dunspars-sub000/internal/repository"
)

func seedPokemonWorld(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()
	logger := zerolog.Nop()

	moves := repository.NewMoveRepository(db, logger)
	err := moves.InsertBatch(ctx,
		[]repository.MoveRow{
			{ID: 1, Name: "pound", Power: intp(40), Accuracy: intp(100), PP: intp(35), Type: "normal", DamageClass: "physical", Generation: 1},
			{ID: 57, Name: "surf", Power: intp(90), Accuracy: intp(100), PP: intp(15), Type: "water", DamageClass: "special", Generation: 1},
			{ID: 89, Name: "earthquake", Power: intp(100), Accuracy: intp(100), PP: intp(10), Type: "ground", DamageClass: "physical", Generation: 1},
		}, nil)
	if err != nil {
		t.Fatalf("seed moves: %v", err)
	}

	abilities := repository.NewAbilityRepository(db, logger)
	err = abilities.InsertBatch(ctx,
		[]repository.AbilityRow{
			{ID: 6, Name: "damp", Effect: "Prevents self-destruction.", Generation: 3},
			{ID: 67, Name: "torrent", Effect: "Powers up Water moves in a pinch.", Generation: 3},
		}, nil)
	if err != nil {
		t.Fatalf("seed abilities: %v", err)
	}

	species := repository.NewSpeciesRepository(db, logger)
	tree := &domain.EvolutionStep{
		Name: "mudkip",
		EvolvesTo: []domain.EvolutionStep{{
			Name:    "marshtomp",
			Methods: []domain.EvolutionMethod{{Trigger: "level-up", MinLevel: intp(16)}},
			EvolvesTo: []domain.EvolutionStep{{
				Name:    "swampert",
				Methods: []domain.EvolutionMethod{{Trigger: "level-up", MinLevel: intp(36)}},
			}},
		}},
	}
	if err := species.InsertEvolutions(ctx, []repository.EvolutionRow{{ID: 131, Tree: tree}}); err != nil {
		t.Fatalf("seed evolutions: %v", err)
	}
	err = species.InsertBatch(ctx, []repository.SpeciesRow{
		{ID: 35, Name: "clefairy"},
		{ID: 258, Name: "mudkip", EvolutionID: intp(131)},
		{ID: 260, Name: "swampert", EvolutionID: intp(131)},
	})
	if err != nil {
		t.Fatalf("seed species: %v", err)
	}

	pokemon := repository.NewPokemonRepository(db, logger)
	err = pokemon.InsertBatch(ctx,
		[]repository.PokemonRow{
			{
				ID: 35, Name: "clefairy", PrimaryType: "fairy",
				HP: 70, Attack: 45, Defense: 48, SpecialAttack: 60, SpecialDefense: 65, Speed: 35,
				SpeciesID: 35,
			},
			{
				ID: 260, Name: "swampert", PrimaryType: "water", SecondaryType: strp("ground"),
				HP: 100, Attack: 110, Defense: 90, SpecialAttack: 85, SpecialDefense: 90, Speed: 60,
				SpeciesID: 260,
			},
		},
		[]repository.PokemonMoveRow{
			{MoveID: 1, LearnMethod: "level-up", LearnLevel: 1, Generation: 1, PokemonID: 35},
			{MoveID: 89, LearnMethod: "level-up", LearnLevel: 39, Generation: 3, PokemonID: 260},
			{MoveID: 57, LearnMethod: "machine", LearnLevel: 0, Generation: 3, PokemonID: 260},
			{MoveID: 89, LearnMethod: "level-up", LearnLevel: 36, Generation: 9, PokemonID: 260},
		},
		[]repository.PokemonAbilityRow{
			{AbilityID: 67, Slot: 1, PokemonID: 260},
			{AbilityID: 6, IsHidden: true, Slot: 3, PokemonID: 260},
		},
		[]repository.PokemonTypeChangeRow{
			{PokemonTypeChange: domain.PokemonTypeChange{Types: domain.TypePair{Primary: "normal"}, Generation: 5}, PokemonID: 35},
		})
	if err != nil {
		t.Fatalf("seed pokemon: %v", err)
	}
}

func newPokemonService(t *testing.T, db *sql.DB, cfg *config.Config) *PokemonService {
	t.Helper()
	logger := zerolog.Nop()
	return NewPokemonService(
		repository.NewPokemonRepository(db, logger),
		repository.NewSpeciesRepository(db, logger),
		NewMoveService(repository.NewMoveRepository(db, logger), logger),
		NewTypeService(repository.NewTypeRepository(db, logger), logger),
		custom.NewFile(cfg),
		logger,
	)
}

func TestPokemonServiceResolve(t *testing.T) {
	cfg := testServiceConfig(t)
	db := newTestDB(t, cfg)
	seedPokemonWorld(t, db)
	service := newPokemonService(t, db, cfg)
	ctx := context.Background()

	current, err := service.Resolve(ctx, "swampert", &domain.Game{Name: "scarlet-violet", Generation: 9})
	if err != nil {
		t.Fatalf("resolve at 9: %v", err)
	}
	if current.Types.Primary != "water" || current.Types.Secondary == nil || *current.Types.Secondary != "ground" {
		t.Errorf("unexpected typing: %+v", current.Types)
	}
	if current.Stats.Total() != 535 {
		t.Errorf("unexpected stat total: %d", current.Stats.Total())
	}
	if current.Group != domain.GroupRegular || current.Species != "swampert" {
		t.Errorf("unexpected species data: %+v", current)
	}
	if current.Game != "scarlet-violet" || current.Generation != 9 {
		t.Errorf("unexpected game pin: %+v", current)
	}

	// One row per move; earthquake keeps its newest level.
	if len(current.LearnMoves) != 2 {
		t.Fatalf("expected 2 learn moves, got %+v", current.LearnMoves)
	}
	if current.LearnMoves[0].Name != "earthquake" || current.LearnMoves[0].Level != 36 {
		t.Errorf("unexpected first learn move: %+v", current.LearnMoves[0])
	}

	if len(current.Abilities) != 2 || current.Abilities[0].Name != "torrent" || !current.Abilities[1].Hidden {
		t.Errorf("unexpected abilities: %+v", current.Abilities)
	}

	old, err := service.Resolve(ctx, "swampert", &domain.Game{Name: "ruby-sapphire", Generation: 3})
	if err != nil {
		t.Fatalf("resolve at 3: %v", err)
	}
	if old.LearnMoves[0].Level != 39 {
		t.Errorf("expected the generation-3 level, got %+v", old.LearnMoves[0])
	}

	// No learnset rows at or below generation 2.
	_, err = service.Resolve(ctx, "swampert", &domain.Game{Name: "gold-silver", Generation: 2})
	if !errors.Is(err, domain.ErrNotPresentInGeneration) {
		t.Errorf("expected ErrNotPresentInGeneration, got %v", err)
	}

	if _, err := service.Resolve(ctx, "missingno", &domain.Game{Name: "scarlet-violet", Generation: 9}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPokemonServiceResolveTypeHistory(t *testing.T) {
	cfg := testServiceConfig(t)
	db := newTestDB(t, cfg)
	seedPokemonWorld(t, db)
	service := newPokemonService(t, db, cfg)
	ctx := context.Background()

	old, err := service.Resolve(ctx, "clefairy", &domain.Game{Name: "ruby-sapphire", Generation: 3})
	if err != nil {
		t.Fatalf("resolve at 3: %v", err)
	}
	if old.Types.Primary != "normal" || old.Types.Secondary != nil {
		t.Errorf("expected the pre-fairy typing, got %+v", old.Types)
	}

	current, err := service.Resolve(ctx, "clefairy", &domain.Game{Name: "scarlet-violet", Generation: 9})
	if err != nil {
		t.Fatalf("resolve at 9: %v", err)
	}
	if current.Types.Primary != "fairy" {
		t.Errorf("expected the current typing, got %+v", current.Types)
	}
}

func TestPokemonServiceResolveCustom(t *testing.T) {
	cfg := testServiceConfig(t)
	db := newTestDB(t, cfg)
	seedPokemonWorld(t, db)
	service := newPokemonService(t, db, cfg)
	ctx := context.Background()

	file := custom.NewFile(cfg)
	err := file.Save(&custom.Collection{Pokemon: []custom.Pokemon{
		{Nickname: "Mudboy", Base: "swampert", Generation: 3, Moves: []string{"surf", "earthquake"}},
		{Nickname: "Fluffy", Base: "clefairy", Generation: 9, Types: &custom.TypeOverride{Primary: "dark"}},
	}})
	if err != nil {
		t.Fatalf("save custom collection: %v", err)
	}

	game := &domain.Game{Name: "scarlet-violet", Generation: 9}

	// The record pins its own generation regardless of the active game.
	mudboy, err := service.Resolve(ctx, "mudboy", game)
	if err != nil {
		t.Fatalf("resolve nickname: %v", err)
	}
	if mudboy.Name != "Mudboy" || mudboy.Species != "swampert" {
		t.Errorf("unexpected custom resolve: %+v", mudboy)
	}
	if mudboy.Generation != 3 {
		t.Errorf("expected the pinned generation, got %d", mudboy.Generation)
	}
	if len(mudboy.LearnMoves) != 2 || mudboy.LearnMoves[0].Name != "surf" {
		t.Fatalf("unexpected moveset: %+v", mudboy.LearnMoves)
	}
	if mudboy.LearnMoves[1].Level != 39 {
		t.Errorf("expected the learnset row carried over: %+v", mudboy.LearnMoves[1])
	}

	fluffy, err := service.Resolve(ctx, "fluffy", game)
	if err != nil {
		t.Fatalf("resolve override: %v", err)
	}
	if fluffy.Types.Primary != "dark" || fluffy.Types.Secondary != nil {
		t.Errorf("expected the type override, got %+v", fluffy.Types)
	}
}

func TestPokemonServiceProfile(t *testing.T) {
	cfg := testServiceConfig(t)
	db := newTestDB(t, cfg)
	seedPokemonWorld(t, db)
	seedTypes(t, db)
	service := newPokemonService(t, db, cfg)
	ctx := context.Background()

	profile, err := service.Profile(ctx, "swampert", &domain.Game{Name: "scarlet-violet", Generation: 9})
	if err != nil {
		t.Fatalf("profile: %v", err)
	}

	assertMultiplier(t, profile.DefenseChart, "grass", 4.0)
	assertMultiplier(t, profile.DefenseChart, "electric", 0.0)

	if len(profile.Moves) != 2 {
		t.Fatalf("expected 2 resolved moves, got %d", len(profile.Moves))
	}
	move := profile.Move("earthquake")
	if move == nil || *move.Power != 100 {
		t.Errorf("expected earthquake resolved, got %+v", move)
	}
	if profile.Move("pound") != nil {
		t.Error("expected no pound on swampert")
	}
}

func TestPokemonServiceEvolution(t *testing.T) {
	cfg := testServiceConfig(t)
	db := newTestDB(t, cfg)
	seedPokemonWorld(t, db)
	service := newPokemonService(t, db, cfg)
	ctx := context.Background()

	tree, err := service.Evolution(ctx, "swampert")
	if err != nil {
		t.Fatalf("evolution: %v", err)
	}
	if tree == nil || tree.Name != "mudkip" {
		t.Fatalf("unexpected tree root: %+v", tree)
	}
	if len(tree.EvolvesTo) != 1 || tree.EvolvesTo[0].Name != "marshtomp" {
		t.Errorf("unexpected tree: %+v", tree)
	}

	none, err := service.Evolution(ctx, "clefairy")
	if err != nil {
		t.Fatalf("evolution without tree: %v", err)
	}
	if none != nil {
		t.Errorf("expected no tree for clefairy, got %+v", none)
	}
}
