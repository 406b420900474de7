package display

import (
	"fmt"
	"strings"

	"github.com/norune/dunspars-sub000/internal/domain"
)

// Evolution renders a family tree depth first, one species per line,
// children indented two spaces under their parent.
func Evolution(root *domain.EvolutionStep) string {
	var b strings.Builder
	b.WriteString(header.Sprint("evolution"))
	writeStep(&b, root, 0)
	return b.String()
}

func writeStep(b *strings.Builder, step *domain.EvolutionStep, depth int) {
	b.WriteString("\n")
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(green.Sprint(step.Name))
	b.WriteString(" ")
	b.WriteString(formatMethods(step.Methods))

	for i := range step.EvolvesTo {
		writeStep(b, &step.EvolvesTo[i], depth+1)
	}
}

func formatMethods(methods []domain.EvolutionMethod) string {
	parts := make([]string, 0, len(methods))
	for _, method := range methods {
		parts = append(parts, formatMethod(method))
	}
	return strings.Join(parts, " / ")
}

// formatMethod flattens a trigger and its conditions into one line,
// e.g. "level-up level-16" or "use-item thunder-stone".
func formatMethod(method domain.EvolutionMethod) string {
	var b strings.Builder
	b.WriteString(blue.Sprint(method.Trigger))

	if method.Item != nil {
		b.WriteString(" " + *method.Item)
	}
	if method.Gender != nil {
		b.WriteString(" gender-" + genderLabel(*method.Gender))
	}
	if method.HeldItem != nil {
		b.WriteString(" " + *method.HeldItem)
	}
	if method.KnownMove != nil {
		b.WriteString(" " + *method.KnownMove)
	}
	if method.KnownMoveType != nil {
		b.WriteString(" " + *method.KnownMoveType)
	}
	if method.Location != nil {
		b.WriteString(" " + *method.Location)
	}
	if method.MinLevel != nil {
		fmt.Fprintf(&b, " level-%d", *method.MinLevel)
	}
	if method.MinHappiness != nil {
		fmt.Fprintf(&b, " happiness-%d", *method.MinHappiness)
	}
	if method.MinBeauty != nil {
		fmt.Fprintf(&b, " beauty-%d", *method.MinBeauty)
	}
	if method.MinAffection != nil {
		fmt.Fprintf(&b, " affection-%d", *method.MinAffection)
	}
	if method.NeedsOverworldRain != nil && *method.NeedsOverworldRain {
		b.WriteString(" rain")
	}
	if method.PartySpecies != nil {
		b.WriteString(" " + *method.PartySpecies)
	}
	if method.PartyType != nil {
		b.WriteString(" " + *method.PartyType)
	}
	if method.RelativePhysicalStats != nil {
		fmt.Fprintf(&b, " physical-%d", *method.RelativePhysicalStats)
	}
	if method.TimeOfDay != nil {
		b.WriteString(" " + *method.TimeOfDay)
	}
	if method.TradeSpecies != nil {
		b.WriteString(" " + *method.TradeSpecies)
	}
	if method.TurnUpsideDown != nil && *method.TurnUpsideDown {
		b.WriteString(" upside-down")
	}

	return b.String()
}

func genderLabel(gender int) string {
	switch gender {
	case 1:
		return "female"
	case 2:
		return "male"
	default:
		return "other"
	}
}
