package display

import (
	"testing"

	"github.com/norune/dunspars-sub000/internal/domain"
)

func TestMove(t *testing.T) {
	move := &domain.Move{
		Name:         "thunder-punch",
		Power:        intp(75),
		Accuracy:     intp(100),
		PP:           intp(15),
		EffectChance: intp(10),
		DamageClass:  "physical",
		Type:         "electric",
		Effect:       "Has a $effect_chance% chance to paralyze the target.",
		Generation:   9,
	}

	want := "Thunder-Punch\n" +
		"electric physical\n" +
		"power:  75  accuracy: 100  pp:  15\n" +
		"Has a 10% chance to paralyze the target."
	if got := Move(move); got != want {
		t.Errorf("Move() = %q, want %q", got, want)
	}
}

func TestMoveWithoutStats(t *testing.T) {
	move := &domain.Move{
		Name:        "growl",
		Accuracy:    intp(100),
		PP:          intp(40),
		DamageClass: "status",
		Type:        "normal",
		Effect:      "Lowers the target's Attack by one stage.",
	}

	want := "Growl\n" +
		"normal status\n" +
		"power: N/A  accuracy: 100  pp:  40\n" +
		"Lowers the target's Attack by one stage."
	if got := Move(move); got != want {
		t.Errorf("Move() = %q, want %q", got, want)
	}
}

func TestAbility(t *testing.T) {
	ability := &domain.Ability{
		Name:       "intimidate",
		Effect:     "Lowers opponents' Attack one stage upon entering battle.",
		Generation: 9,
	}

	want := "Intimidate\nLowers opponents' Attack one stage upon entering battle."
	if got := Ability(ability); got != want {
		t.Errorf("Ability() = %q, want %q", got, want)
	}
}
