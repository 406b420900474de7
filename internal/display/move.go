package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/norune/dunspars-sub000/internal/domain"
)

// Move renders one resolved move with its effect text. The effect's
// $effect_chance placeholder takes the move's resolved chance.
func Move(move *domain.Move) string {
	stats := fmt.Sprintf(
		"power: %s  accuracy: %s  pp: %s",
		red.Sprintf("%3s", orNA(move.Power)),
		green.Sprintf("%3s", orNA(move.Accuracy)),
		blue.Sprintf("%3s", orNA(move.PP)),
	)

	effect := move.Effect
	if move.EffectChance != nil {
		effect = strings.ReplaceAll(effect, "$effect_chance", strconv.Itoa(*move.EffectChance))
	}

	return fmt.Sprintf(
		"%s\n%s %s\n%s\n%s",
		header.Sprint(title(move.Name)), move.Type, move.DamageClass, stats, effect,
	)
}

// Ability renders one resolved ability.
func Ability(ability *domain.Ability) string {
	return header.Sprint(title(ability.Name)) + "\n" + ability.Effect
}
