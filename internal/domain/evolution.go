package domain

// EvolutionStep is one node in a species' evolution family tree. The
// tree is generation independent and each step owns its children. The
// JSON shape doubles as the storage encoding for the evolutions table.
type EvolutionStep struct {
	Name      string            `json:"name"`
	Methods   []EvolutionMethod `json:"methods"`
	EvolvesTo []EvolutionStep   `json:"evolves_to"`
}

// EvolutionMethod is a trigger plus whichever qualifying conditions
// apply. An absent field is simply not a condition for the method.
type EvolutionMethod struct {
	Trigger               string  `json:"trigger"`
	Item                  *string `json:"item,omitempty"`
	Gender                *int    `json:"gender,omitempty"`
	HeldItem              *string `json:"held_item,omitempty"`
	KnownMove             *string `json:"known_move,omitempty"`
	KnownMoveType         *string `json:"known_move_type,omitempty"`
	Location              *string `json:"location,omitempty"`
	MinLevel              *int    `json:"min_level,omitempty"`
	MinHappiness          *int    `json:"min_happiness,omitempty"`
	MinBeauty             *int    `json:"min_beauty,omitempty"`
	MinAffection          *int    `json:"min_affection,omitempty"`
	NeedsOverworldRain    *bool   `json:"needs_overworld_rain,omitempty"`
	PartySpecies          *string `json:"party_species,omitempty"`
	PartyType             *string `json:"party_type,omitempty"`
	RelativePhysicalStats *int    `json:"relative_physical_stats,omitempty"`
	TimeOfDay             *string `json:"time_of_day,omitempty"`
	TradeSpecies          *string `json:"trade_species,omitempty"`
	TurnUpsideDown        *bool   `json:"turn_upside_down,omitempty"`
}
