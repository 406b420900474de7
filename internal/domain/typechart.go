package domain

import (
	"fmt"
	"sort"
)

// Types is the fixed roster every chart is dense over.
var Types = []string{
	"normal", "fighting", "fire", "water", "flying", "grass", "poison",
	"electric", "ground", "psychic", "rock", "ice", "bug", "dragon",
	"ghost", "dark", "steel", "fairy",
}

// TypeRelations are the six damage-relation sets a type carries.
type TypeRelations struct {
	NoDamageTo       []string
	HalfDamageTo     []string
	DoubleDamageTo   []string
	NoDamageFrom     []string
	HalfDamageFrom   []string
	DoubleDamageFrom []string
}

type ChartKind int

const (
	Offense ChartKind = iota
	Defense
)

// TypeChart maps every type in the roster to a damage multiplier.
// Charts are always fully populated; relations not listed by the source
// type stay at the 1.0 default.
type TypeChart struct {
	multipliers map[string]float64
	kind        ChartKind
	label       string
}

func defaultMultipliers() map[string]float64 {
	multipliers := make(map[string]float64, len(Types))
	for _, name := range Types {
		multipliers[name] = 1.0
	}
	return multipliers
}

// NewOffenseChart builds the chart of damage dealt by a type from its
// *-damage-to relation sets.
func NewOffenseChart(label string, relations TypeRelations) *TypeChart {
	multipliers := defaultMultipliers()
	for _, name := range relations.NoDamageTo {
		multipliers[name] = 0.0
	}
	for _, name := range relations.HalfDamageTo {
		multipliers[name] = 0.5
	}
	for _, name := range relations.DoubleDamageTo {
		multipliers[name] = 2.0
	}

	return &TypeChart{multipliers: multipliers, kind: Offense, label: label}
}

// NewDefenseChart builds the chart of damage taken by a type from its
// *-damage-from relation sets.
func NewDefenseChart(label string, relations TypeRelations) *TypeChart {
	multipliers := defaultMultipliers()
	for _, name := range relations.NoDamageFrom {
		multipliers[name] = 0.0
	}
	for _, name := range relations.HalfDamageFrom {
		multipliers[name] = 0.5
	}
	for _, name := range relations.DoubleDamageFrom {
		multipliers[name] = 2.0
	}

	return &TypeChart{multipliers: multipliers, kind: Defense, label: label}
}

// Combine merges two charts multiplicatively, type by type. Dual-typed
// defense is the product of both types' charts; the operation is
// commutative.
func Combine(a, b *TypeChart) *TypeChart {
	multipliers := make(map[string]float64, len(a.multipliers))
	for name, multiplier := range a.multipliers {
		multipliers[name] = multiplier
	}
	for name, multiplier := range b.multipliers {
		if existing, ok := multipliers[name]; ok {
			multipliers[name] = existing * multiplier
		} else {
			multipliers[name] = multiplier
		}
	}

	label := a.label
	if b.label != "" {
		label = a.label + " " + b.label
	}

	return &TypeChart{multipliers: multipliers, kind: a.kind, label: label}
}

// Multiplier looks up the damage multiplier against name. Charts are
// dense over the roster, so an error here means the caller asked about
// a type outside it.
func (c *TypeChart) Multiplier(name string) (float64, error) {
	multiplier, ok := c.multipliers[name]
	if !ok {
		return 0, fmt.Errorf("type %q is not in the chart", name)
	}
	return multiplier, nil
}

func (c *TypeChart) Kind() ChartKind { return c.kind }

func (c *TypeChart) Label() string { return c.label }

func (c *TypeChart) SetLabel(label string) { c.label = label }

// TypeNames returns the chart's type names in alphabetical order.
func (c *TypeChart) TypeNames() []string {
	names := make([]string, 0, len(c.multipliers))
	for name := range c.multipliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tier is the discrete weakness bucket a multiplier classifies into.
type Tier int

const (
	TierQuad Tier = iota
	TierDouble
	TierNeutral
	TierHalf
	TierQuarter
	TierZero
	TierOther
)

func (t Tier) String() string {
	switch t {
	case TierQuad:
		return "quad"
	case TierDouble:
		return "double"
	case TierNeutral:
		return "neutral"
	case TierHalf:
		return "half"
	case TierQuarter:
		return "quarter"
	case TierZero:
		return "zero"
	default:
		return "other"
	}
}

// TierOrder is the display order for grouped output.
var TierOrder = []Tier{
	TierQuad, TierDouble, TierNeutral, TierHalf, TierQuarter, TierZero, TierOther,
}

// ClassifyMultiplier buckets a multiplier by exact float comparison.
// Pure 0/0.5/1/2 inputs composed pairwise can only land on the six
// exact values; anything else is Other rather than a failure.
func ClassifyMultiplier(multiplier float64) Tier {
	switch multiplier {
	case 4.0:
		return TierQuad
	case 2.0:
		return TierDouble
	case 1.0:
		return TierNeutral
	case 0.5:
		return TierHalf
	case 0.25:
		return TierQuarter
	case 0.0:
		return TierZero
	default:
		return TierOther
	}
}

// TierGroups partitions items into the seven weakness tiers.
type TierGroups[T any] struct {
	Quad    []T
	Double  []T
	Neutral []T
	Half    []T
	Quarter []T
	Zero    []T
	Other   []T
}

// GroupByTier is the grouping primitive behind weakness, move-weakness
// and type-chart output. The callback produces an item and its
// multiplier, or ok=false to drop the element.
func GroupByTier[T, E any](elements []E, fn func(E) (T, float64, bool)) TierGroups[T] {
	var groups TierGroups[T]

	for _, element := range elements {
		item, multiplier, ok := fn(element)
		if !ok {
			continue
		}

		switch ClassifyMultiplier(multiplier) {
		case TierQuad:
			groups.Quad = append(groups.Quad, item)
		case TierDouble:
			groups.Double = append(groups.Double, item)
		case TierNeutral:
			groups.Neutral = append(groups.Neutral, item)
		case TierHalf:
			groups.Half = append(groups.Half, item)
		case TierQuarter:
			groups.Quarter = append(groups.Quarter, item)
		case TierZero:
			groups.Zero = append(groups.Zero, item)
		case TierOther:
			groups.Other = append(groups.Other, item)
		}
	}

	return groups
}

// Group returns the bucket for one tier.
func (g TierGroups[T]) Group(tier Tier) []T {
	switch tier {
	case TierQuad:
		return g.Quad
	case TierDouble:
		return g.Double
	case TierNeutral:
		return g.Neutral
	case TierHalf:
		return g.Half
	case TierQuarter:
		return g.Quarter
	case TierZero:
		return g.Zero
	default:
		return g.Other
	}
}

// Empty reports whether every tier bucket is empty.
func (g TierGroups[T]) Empty() bool {
	for _, tier := range TierOrder {
		if len(g.Group(tier)) > 0 {
			return false
		}
	}
	return true
}
