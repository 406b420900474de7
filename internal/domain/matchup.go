package domain

// Matchup is one head-to-head pairing with the damaging moves of each
// side grouped by the multiplier tier they land at against the other.
type Matchup struct {
	Defender       *PokemonProfile
	Attacker       *PokemonProfile
	AttackerGroups TierGroups[Move]
	DefenderGroups TierGroups[Move]
}

// NewMatchup grades both directions of a pairing.
func NewMatchup(defender, attacker *PokemonProfile, verbose, stabOnly bool) Matchup {
	return Matchup{
		Defender:       defender,
		Attacker:       attacker,
		AttackerGroups: MatchupGroups(attacker, defender, verbose, stabOnly),
		DefenderGroups: MatchupGroups(defender, attacker, verbose, stabOnly),
	}
}

// MatchupGroups computes one direction of a head-to-head: the
// attacker's damaging moves bucketed by their multiplier against the
// defender's combined defense chart. Status moves never deal typed
// damage and are dropped. stabOnly keeps only moves matching the
// attacker's own typing; without verbose, only multipliers of 2.0 and
// up survive. The full report runs this twice with the roles swapped.
func MatchupGroups(attacker, defender *PokemonProfile, verbose, stabOnly bool) TierGroups[Move] {
	return GroupByTier(attacker.Moves, func(move Move) (Move, float64, bool) {
		if move.DamageClass == "status" {
			return move, 0, false
		}
		if stabOnly && !attacker.Data.Types.Contains(move.Type) {
			return move, 0, false
		}

		multiplier, err := defender.DefenseChart.Multiplier(move.Type)
		if err != nil {
			// a move typed outside the roster has no chart entry
			return move, 0, false
		}

		if !verbose && multiplier < 2.0 {
			return move, 0, false
		}
		return move, multiplier, true
	})
}
