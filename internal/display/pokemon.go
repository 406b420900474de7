package display

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/norune/dunspars-sub000/internal/domain"
)

// Pokemon renders the data block for one resolved snapshot: name,
// typing, group, abilities, base stats and the generation it was
// resolved against. A name differing from the species (a nickname or
// an alternate form) carries the species in parentheses.
func Pokemon(snapshot *domain.Pokemon) string {
	name := header.Sprint(title(snapshot.Name))
	if snapshot.Name != snapshot.Species {
		name += " (" + snapshot.Species + ")"
	}

	abilities := make([]string, 0, len(snapshot.Abilities))
	for _, slot := range snapshot.Abilities {
		label := slot.Name
		if slot.Hidden {
			label += "(h)"
		}
		abilities = append(abilities, label)
	}

	return fmt.Sprintf(
		"%s %s %s\n%s\n%s\ngen-%d",
		name,
		typeLine(snapshot.Types),
		yellow.Sprint(snapshot.Group),
		strings.Join(abilities, " "),
		Stats(snapshot.Stats),
		snapshot.Generation,
	)
}

func typeLine(pair domain.TypePair) string {
	if pair.Secondary != nil {
		return pair.Primary + " " + *pair.Secondary
	}
	return pair.Primary
}

// Stats renders the base stat table. 255 is the hard per-stat ceiling,
// but 200 already covers all but a handful of species; 720 is Arceus'
// total.
func Stats(stats domain.Stats) string {
	var b strings.Builder
	b.WriteString("hp    atk   def   satk  sdef  spd   total\n")
	for _, stat := range []int{
		stats.HP, stats.Attack, stats.Defense,
		stats.SpecialAttack, stats.SpecialDefense, stats.Speed,
	} {
		b.WriteString(color.New(rate(stat, 200)).Sprintf("%-6d", stat))
	}

	total := stats.Total()
	b.WriteString(color.New(rate(total, 720), color.Bold).Sprintf("%-6d", total))
	return b.String()
}

const (
	moveNameWidth  = 21
	moveTypeWidth  = 20
	moveStatsWidth = 37
)

// MoveList renders the learnset table. The profile carries a resolved
// move for every learnset row; rows sort by learn method, then level,
// then name.
func MoveList(profile *domain.PokemonProfile) string {
	var b strings.Builder
	b.WriteString(header.Sprint("moves"))

	if len(profile.Data.LearnMoves) == 0 {
		b.WriteString("\nThere are no moves to display.\n")
		return b.String()
	}

	sorted := make([]domain.LearnMove, len(profile.Data.LearnMoves))
	copy(sorted, profile.Data.LearnMoves)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Method != sorted[j].Method {
			return sorted[i].Method < sorted[j].Method
		}
		if sorted[i].Level != sorted[j].Level {
			return sorted[i].Level < sorted[j].Level
		}
		return sorted[i].Name < sorted[j].Name
	})

	for _, learned := range sorted {
		move := profile.Move(learned.Name)
		if move == nil {
			continue
		}
		b.WriteString("\n")
		b.WriteString(moveRow(move, learned, profile.Data.Types))
	}

	return b.String()
}

func moveRow(move *domain.Move, learned domain.LearnMove, typing domain.TypePair) string {
	stab := ""
	if typing.Contains(move.Type) {
		stab = "(s)"
	}

	power := orNA(move.Power)
	accuracy := orNA(move.Accuracy)
	pp := orNA(move.PP)

	// Level-up rows at level 0 are evolution learnsets.
	level := ""
	switch {
	case learned.Method == "level-up" && learned.Level == 0:
		level = "evolve"
	case learned.Method == "level-up":
		level = strconv.Itoa(learned.Level)
	}

	nameCell := green.Sprint(move.Name) + stab
	typeCell := move.Type + " " + move.DamageClass
	statsCell := fmt.Sprintf(
		"power: %s  accuracy: %s  pp: %s",
		red.Sprintf("%3s", power), green.Sprintf("%3s", accuracy), blue.Sprintf("%2s", pp),
	)
	statsPlain := fmt.Sprintf("power: %3s  accuracy: %3s  pp: %2s", power, accuracy, pp)

	var b strings.Builder
	b.WriteString(pad(nameCell, len(move.Name)+len(stab), moveNameWidth))
	b.WriteString(pad(typeCell, len(typeCell), moveTypeWidth))
	b.WriteString(pad(statsCell, len(statsPlain), moveStatsWidth))
	b.WriteString(learned.Method)
	b.WriteString(" ")
	b.WriteString(level)
	return b.String()
}
