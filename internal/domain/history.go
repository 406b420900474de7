package domain

// Past is the capability a change record exposes to the override
// matcher: the generation at which its values become the applicable
// snapshot when querying backward in time, plus the values themselves.
type Past[V any] interface {
	PastGeneration() int
	PastValue() V
}

// MatchPast resolves which historical override is in effect at the
// target generation: the record with the smallest generation still
// >= target wins. A nil result means no override qualifies and the
// base values stand.
//
// Records arrive in no particular order; the scan tracks the running
// minimum qualifying generation instead of assuming sorted input.
func MatchPast[V any, R Past[V]](target int, records []R) *V {
	var matched *V
	oldest := 255

	for _, record := range records {
		generation := record.PastGeneration()
		if target <= generation && generation <= oldest {
			value := record.PastValue()
			matched = &value
			oldest = generation
		}
	}

	return matched
}

// MoveChange is a historical override of a move's stats. Fields left
// nil defer to the base record; set fields replace it independently.
type MoveChange struct {
	Power        *int
	Accuracy     *int
	PP           *int
	EffectChance *int
	Type         *string
	Effect       *string
	Generation   int
}

func (c MoveChange) PastGeneration() int { return c.Generation }

func (c MoveChange) PastValue() MoveChange { return c }

// TypeChange is a historical override of a type's damage relations.
// Unlike move changes, the six relation sets are replaced wholesale.
type TypeChange struct {
	Relations  TypeRelations
	Generation int
}

func (c TypeChange) PastGeneration() int { return c.Generation }

func (c TypeChange) PastValue() TypeRelations { return c.Relations }

// PokemonTypeChange is a historical override of a Pokémon's typing.
// The pair is replaced atomically.
type PokemonTypeChange struct {
	Types      TypePair
	Generation int
}

func (c PokemonTypeChange) PastGeneration() int { return c.Generation }

func (c PokemonTypeChange) PastValue() TypePair { return c.Types }

// AbilityChange is a historical override of an ability's effect text.
type AbilityChange struct {
	Effect     string
	Generation int
}

func (c AbilityChange) PastGeneration() int { return c.Generation }

func (c AbilityChange) PastValue() string { return c.Effect }
