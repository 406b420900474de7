package domain

import "testing"

func groundRelations() TypeRelations {
	return TypeRelations{
		NoDamageTo:       []string{"flying"},
		HalfDamageTo:     []string{"grass", "bug"},
		DoubleDamageTo:   []string{"fire", "electric", "poison", "rock", "steel"},
		NoDamageFrom:     []string{"electric"},
		HalfDamageFrom:   []string{"poison", "rock"},
		DoubleDamageFrom: []string{"water", "grass", "ice"},
	}
}

func rockRelations() TypeRelations {
	return TypeRelations{
		HalfDamageTo:     []string{"fighting", "ground", "steel"},
		DoubleDamageTo:   []string{"fire", "ice", "flying", "bug"},
		HalfDamageFrom:   []string{"normal", "fire", "poison", "flying"},
		DoubleDamageFrom: []string{"water", "grass", "fighting", "ground", "steel"},
	}
}

func TestChartsAreDense(t *testing.T) {
	offense := NewOffenseChart("ground", groundRelations())
	defense := NewDefenseChart("ground", groundRelations())

	for _, name := range Types {
		if _, err := offense.Multiplier(name); err != nil {
			t.Errorf("offense chart missing %s: %v", name, err)
		}
		if _, err := defense.Multiplier(name); err != nil {
			t.Errorf("defense chart missing %s: %v", name, err)
		}
	}
}

func TestChartRoundTrip(t *testing.T) {
	relations := groundRelations()
	offense := NewOffenseChart("ground", relations)

	checks := map[string]float64{
		"flying":   0.0,
		"grass":    0.5,
		"bug":      0.5,
		"fire":     2.0,
		"electric": 2.0,
		"rock":     2.0,
		// unlisted stays at the default
		"normal": 1.0,
		"water":  1.0,
	}
	for name, want := range checks {
		got, err := offense.Multiplier(name)
		if err != nil {
			t.Fatalf("Multiplier(%s): %v", name, err)
		}
		if got != want {
			t.Errorf("offense[%s] = %v, want %v", name, got, want)
		}
	}
}

func TestMultiplierOutsideRoster(t *testing.T) {
	chart := NewDefenseChart("ground", groundRelations())
	if _, err := chart.Multiplier("shadow"); err == nil {
		t.Fatal("expected an error for a type outside the roster")
	}
}

func TestCombineDualDefense(t *testing.T) {
	rock := NewDefenseChart("rock", rockRelations())
	ground := NewDefenseChart("ground", groundRelations())

	combined := Combine(rock, ground)

	water, err := combined.Multiplier("water")
	if err != nil {
		t.Fatalf("Multiplier(water): %v", err)
	}
	if water != 4.0 {
		t.Errorf("rock/ground vs water = %v, want 4.0", water)
	}

	electric, err := combined.Multiplier("electric")
	if err != nil {
		t.Fatalf("Multiplier(electric): %v", err)
	}
	if electric != 0.0 {
		t.Errorf("rock/ground vs electric = %v, want 0.0", electric)
	}

	poison, err := combined.Multiplier("poison")
	if err != nil {
		t.Fatalf("Multiplier(poison): %v", err)
	}
	if poison != 0.25 {
		t.Errorf("rock/ground vs poison = %v, want 0.25", poison)
	}

	if combined.Label() != "rock ground" {
		t.Errorf("combined label = %q, want %q", combined.Label(), "rock ground")
	}
}

func TestCombineCommutative(t *testing.T) {
	rock := NewDefenseChart("rock", rockRelations())
	ground := NewDefenseChart("ground", groundRelations())

	ab := Combine(rock, ground)
	ba := Combine(ground, rock)

	for _, name := range Types {
		left, err := ab.Multiplier(name)
		if err != nil {
			t.Fatalf("Multiplier(%s): %v", name, err)
		}
		right, err := ba.Multiplier(name)
		if err != nil {
			t.Fatalf("Multiplier(%s): %v", name, err)
		}
		if left != right {
			t.Errorf("combine not commutative for %s: %v != %v", name, left, right)
		}
	}
}

func TestClassifyMultiplier(t *testing.T) {
	cases := []struct {
		multiplier float64
		want       Tier
	}{
		{0.0, TierZero},
		{0.25, TierQuarter},
		{0.5, TierHalf},
		{1.0, TierNeutral},
		{2.0, TierDouble},
		{4.0, TierQuad},
		{3.0, TierOther},
		{0.125, TierOther},
	}

	for _, tc := range cases {
		if got := ClassifyMultiplier(tc.multiplier); got != tc.want {
			t.Errorf("ClassifyMultiplier(%v) = %s, want %s", tc.multiplier, got, tc.want)
		}
	}
}

func TestGroupByTier(t *testing.T) {
	multipliers := map[string]float64{
		"water":    4.0,
		"grass":    4.0,
		"fighting": 2.0,
		"normal":   0.5,
		"poison":   0.25,
		"electric": 0.0,
	}

	groups := GroupByTier(Types, func(name string) (string, float64, bool) {
		multiplier, ok := multipliers[name]
		if !ok {
			// treat everything else as neutral
			return name, 1.0, true
		}
		return name, multiplier, ok
	})

	if len(groups.Quad) != 2 {
		t.Errorf("quad group = %v, want water and grass", groups.Quad)
	}
	if len(groups.Double) != 1 || groups.Double[0] != "fighting" {
		t.Errorf("double group = %v, want fighting", groups.Double)
	}
	if len(groups.Neutral) != len(Types)-6 {
		t.Errorf("neutral group has %d entries, want %d", len(groups.Neutral), len(Types)-6)
	}
	if len(groups.Quarter) != 1 || groups.Quarter[0] != "poison" {
		t.Errorf("quarter group = %v, want poison", groups.Quarter)
	}
	if len(groups.Zero) != 1 || groups.Zero[0] != "electric" {
		t.Errorf("zero group = %v, want electric", groups.Zero)
	}
	if len(groups.Other) != 0 {
		t.Errorf("other group = %v, want empty", groups.Other)
	}
}

func TestGroupByTierFilters(t *testing.T) {
	groups := GroupByTier([]string{"a", "b"}, func(string) (string, float64, bool) {
		return "", 0, false
	})
	if !groups.Empty() {
		t.Fatal("expected every bucket to be empty when the callback filters all")
	}
}
