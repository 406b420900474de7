package display

import (
	"testing"

	"github.com/norune/dunspars-sub000/internal/domain"
)

func boolp(v bool) *bool { return &v }

func TestEvolution(t *testing.T) {
	tree := &domain.EvolutionStep{
		Name: "mudkip",
		EvolvesTo: []domain.EvolutionStep{{
			Name:    "marshtomp",
			Methods: []domain.EvolutionMethod{{Trigger: "level-up", MinLevel: intp(16)}},
			EvolvesTo: []domain.EvolutionStep{{
				Name:    "swampert",
				Methods: []domain.EvolutionMethod{{Trigger: "level-up", MinLevel: intp(36)}},
			}},
		}},
	}

	want := "evolution\n" +
		"mudkip \n" +
		"  marshtomp level-up level-16\n" +
		"    swampert level-up level-36"
	if got := Evolution(tree); got != want {
		t.Errorf("Evolution() = %q, want %q", got, want)
	}
}

func TestEvolutionBranches(t *testing.T) {
	tree := &domain.EvolutionStep{
		Name: "poliwag",
		EvolvesTo: []domain.EvolutionStep{{
			Name:    "poliwhirl",
			Methods: []domain.EvolutionMethod{{Trigger: "level-up", MinLevel: intp(25)}},
			EvolvesTo: []domain.EvolutionStep{
				{
					Name:    "poliwrath",
					Methods: []domain.EvolutionMethod{{Trigger: "use-item", Item: strp("water-stone")}},
				},
				{
					Name:    "politoed",
					Methods: []domain.EvolutionMethod{{Trigger: "trade", HeldItem: strp("kings-rock")}},
				},
			},
		}},
	}

	want := "evolution\n" +
		"poliwag \n" +
		"  poliwhirl level-up level-25\n" +
		"    poliwrath use-item water-stone\n" +
		"    politoed trade kings-rock"
	if got := Evolution(tree); got != want {
		t.Errorf("Evolution() = %q, want %q", got, want)
	}
}

func TestFormatMethod(t *testing.T) {
	cases := []struct {
		name   string
		method domain.EvolutionMethod
		want   string
	}{
		{
			name:   "item use",
			method: domain.EvolutionMethod{Trigger: "use-item", Item: strp("thunder-stone")},
			want:   "use-item thunder-stone",
		},
		{
			name:   "happiness",
			method: domain.EvolutionMethod{Trigger: "level-up", MinHappiness: intp(160)},
			want:   "level-up happiness-160",
		},
		{
			name:   "gendered split",
			method: domain.EvolutionMethod{Trigger: "level-up", MinLevel: intp(20), Gender: intp(1)},
			want:   "level-up gender-female level-20",
		},
		{
			name:   "held item at night",
			method: domain.EvolutionMethod{Trigger: "level-up", HeldItem: strp("razor-claw"), TimeOfDay: strp("night")},
			want:   "level-up razor-claw night",
		},
		{
			name:   "overworld rain",
			method: domain.EvolutionMethod{Trigger: "level-up", MinLevel: intp(33), NeedsOverworldRain: boolp(true)},
			want:   "level-up level-33 rain",
		},
		{
			name:   "upside down",
			method: domain.EvolutionMethod{Trigger: "level-up", MinLevel: intp(30), TurnUpsideDown: boolp(true)},
			want:   "level-up level-30 upside-down",
		},
		{
			name:   "trade partner",
			method: domain.EvolutionMethod{Trigger: "trade", TradeSpecies: strp("shelmet")},
			want:   "trade shelmet",
		},
		{
			name:   "balanced physical stats",
			method: domain.EvolutionMethod{Trigger: "level-up", MinLevel: intp(20), RelativePhysicalStats: intp(0)},
			want:   "level-up level-20 physical-0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatMethod(tc.method); got != tc.want {
				t.Errorf("formatMethod() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatMethodsJoin(t *testing.T) {
	methods := []domain.EvolutionMethod{
		{Trigger: "use-item", Item: strp("leaf-stone")},
		{Trigger: "use-item", Item: strp("moon-stone")},
	}

	want := "use-item leaf-stone / use-item moon-stone"
	if got := formatMethods(methods); got != want {
		t.Errorf("formatMethods() = %q, want %q", got, want)
	}
}
