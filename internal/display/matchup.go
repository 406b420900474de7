package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/norune/dunspars-sub000/internal/domain"
)

// Matchup renders one pairing: both combatants' headline and stats,
// then each side's qualifying moves graded against the other.
func Matchup(matchup *domain.Matchup) string {
	defender := matchup.Defender.Data
	attacker := matchup.Attacker.Data

	attackerHeader := fmt.Sprintf("%s's moves vs %s", title(attacker.Name), title(defender.Name))
	defenderHeader := fmt.Sprintf("%s's moves vs %s", title(defender.Name), title(attacker.Name))

	return fmt.Sprintf(
		"%s %s\n%s\n%s %s\n%s\n\n%s%s\n\n%s%s",
		header.Sprint(title(defender.Name)), typeLine(defender.Types),
		Stats(defender.Stats),
		header.Sprint(title(attacker.Name)), typeLine(attacker.Types),
		Stats(attacker.Stats),
		header.Sprint(attackerHeader), moveGroups(matchup.AttackerGroups, attacker.Types),
		header.Sprint(defenderHeader), moveGroups(matchup.DefenderGroups, defender.Types),
	)
}

// moveGroups renders tiered move buckets. Moves sort by name inside a
// bucket, each marked with its damage class; STAB moves come out
// underlined.
func moveGroups(groups domain.TierGroups[domain.Move], typing domain.TypePair) string {
	return renderGroups(groups, func(tier domain.Tier, moves []domain.Move) string {
		sorted := make([]domain.Move, len(moves))
		copy(sorted, moves)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

		parts := make([]string, 0, len(sorted))
		for _, move := range sorted {
			class := "?"
			switch move.DamageClass {
			case "special":
				class = "s"
			case "physical":
				class = "p"
			}

			paint := color.New(tierAttr(tier))
			if typing.Contains(move.Type) {
				paint = color.New(tierAttr(tier), color.Underline)
			}
			parts = append(parts, paint.Sprintf("%s(%s)", move.Name, class))
		}

		return strings.Join(parts, " ")
	})
}
