package domain

// Game is one release, pairing its name with the ruleset generation it
// belongs to.
type Game struct {
	ID         int
	Name       string
	Order      int
	Generation int
}

// Stats is the base stat sextuple. Stats never vary by generation in
// this model.
type Stats struct {
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

func (s Stats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// Move is a move's attributes as resolved for one generation. Power,
// accuracy, pp and effect chance stay nil where the game defines none
// (status moves, certain one-off mechanics).
type Move struct {
	Name         string
	Power        *int
	Accuracy     *int
	PP           *int
	EffectChance *int
	DamageClass  string
	Type         string
	Effect       string
	Generation   int
}

// Ability is an ability's attributes as resolved for one generation.
type Ability struct {
	Name       string
	Effect     string
	Generation int
}

// Type is a type's resolved attributes with both derived charts.
type Type struct {
	Name         string
	Relations    TypeRelations
	OffenseChart *TypeChart
	DefenseChart *TypeChart
	Generation   int
}

// TypePair is a Pokémon's typing. Historical type changes replace the
// whole pair, never one half.
type TypePair struct {
	Primary   string
	Secondary *string
}

func (p TypePair) Contains(name string) bool {
	if p.Primary == name {
		return true
	}
	return p.Secondary != nil && *p.Secondary == name
}

// PokemonGroup classifies a species from its flags. Not generation
// dependent.
type PokemonGroup int

const (
	GroupRegular PokemonGroup = iota
	GroupBaby
	GroupLegendary
	GroupMythical
)

func (g PokemonGroup) String() string {
	switch g {
	case GroupBaby:
		return "baby"
	case GroupLegendary:
		return "legendary"
	case GroupMythical:
		return "mythical"
	default:
		return "regular"
	}
}

// LearnMove is one row of a Pokémon's learnset.
type LearnMove struct {
	Name   string
	Method string
	Level  int
}

// AbilitySlot pairs an ability name with its hidden flag.
type AbilitySlot struct {
	Name   string
	Hidden bool
}

// Pokemon is a fully resolved snapshot of one Pokémon as of one
// generation. Snapshots are built fresh per query and never written
// back.
type Pokemon struct {
	Name       string
	Types      TypePair
	Stats      Stats
	Group      PokemonGroup
	Species    string
	Game       string
	Generation int
	LearnMoves []LearnMove
	Abilities  []AbilitySlot
}

// PokemonProfile bundles a snapshot with its derived defense chart and
// fully resolved move list: the unit coverage and matchup analysis
// operate on.
type PokemonProfile struct {
	Data         Pokemon
	DefenseChart *TypeChart
	Moves        []Move
}

// Move returns the resolved move by name, or nil.
func (p *PokemonProfile) Move(name string) *Move {
	for i := range p.Moves {
		if p.Moves[i].Name == name {
			return &p.Moves[i]
		}
	}
	return nil
}
