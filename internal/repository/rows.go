package repository

import (
	"strings"

	"github.com/norune/dunspars-sub000/internal/domain"
)

// Row types mirror the table layouts one to one. The setup pipeline
// produces them and the services consume them; resolved domain
// snapshots never carry database ids.

type MoveRow struct {
	ID           int
	Name         string
	Power        *int
	Accuracy     *int
	PP           *int
	EffectChance *int
	Effect       string
	Type         string
	DamageClass  string
	Generation   int
}

// Move converts the row into the base (current-generation) snapshot.
func (r *MoveRow) Move() domain.Move {
	return domain.Move{
		Name:         r.Name,
		Power:        r.Power,
		Accuracy:     r.Accuracy,
		PP:           r.PP,
		EffectChance: r.EffectChance,
		DamageClass:  r.DamageClass,
		Type:         r.Type,
		Effect:       r.Effect,
		Generation:   r.Generation,
	}
}

type MoveChangeRow struct {
	domain.MoveChange
	MoveID int
}

type TypeRow struct {
	ID         int
	Name       string
	Relations  domain.TypeRelations
	Generation int
}

type TypeChangeRow struct {
	domain.TypeChange
	TypeID int
}

type AbilityRow struct {
	ID         int
	Name       string
	Effect     string
	Generation int
}

type AbilityChangeRow struct {
	domain.AbilityChange
	AbilityID int
}

// EvolutionRow owns a whole evolution tree; the tree persists as a
// JSON document rather than normalized rows.
type EvolutionRow struct {
	ID   int
	Tree *domain.EvolutionStep
}

type SpeciesRow struct {
	ID          int
	Name        string
	IsBaby      bool
	IsLegendary bool
	IsMythical  bool
	EvolutionID *int
}

func (r *SpeciesRow) Group() domain.PokemonGroup {
	switch {
	case r.IsBaby:
		return domain.GroupBaby
	case r.IsLegendary:
		return domain.GroupLegendary
	case r.IsMythical:
		return domain.GroupMythical
	default:
		return domain.GroupRegular
	}
}

type PokemonRow struct {
	ID             int
	Name           string
	PrimaryType    string
	SecondaryType  *string
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
	SpeciesID      int
}

func (r *PokemonRow) TypePair() domain.TypePair {
	return domain.TypePair{Primary: r.PrimaryType, Secondary: r.SecondaryType}
}

func (r *PokemonRow) BaseStats() domain.Stats {
	return domain.Stats{
		HP:             r.HP,
		Attack:         r.Attack,
		Defense:        r.Defense,
		SpecialAttack:  r.SpecialAttack,
		SpecialDefense: r.SpecialDefense,
		Speed:          r.Speed,
	}
}

type PokemonMoveRow struct {
	MoveID      int
	LearnMethod string
	LearnLevel  int
	Generation  int
	PokemonID   int
}

type PokemonAbilityRow struct {
	AbilityID int
	IsHidden  bool
	Slot      int
	PokemonID int
}

type PokemonTypeChangeRow struct {
	domain.PokemonTypeChange
	PokemonID int
}

// Relation sets persist as comma-separated type-name lists.

func joinNames(names []string) string {
	return strings.Join(names, ",")
}

func splitNames(list string) []string {
	if list == "" {
		return nil
	}
	return strings.Split(list, ",")
}
