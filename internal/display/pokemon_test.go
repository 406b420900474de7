package display

import (
	"strings"
	"testing"

	"github.com/norune/dunspars-sub000/internal/domain"
)

func strp(s string) *string { return &s }

func intp(v int) *int { return &v }

func swampertSnapshot() *domain.Pokemon {
	return &domain.Pokemon{
		Name:    "swampert",
		Types:   domain.TypePair{Primary: "water", Secondary: strp("ground")},
		Stats:   domain.Stats{HP: 100, Attack: 110, Defense: 90, SpecialAttack: 85, SpecialDefense: 90, Speed: 60},
		Group:   domain.GroupRegular,
		Species: "swampert",
		Game:    "scarlet-violet",
		Abilities: []domain.AbilitySlot{
			{Name: "torrent"},
			{Name: "damp", Hidden: true},
		},
		Generation: 9,
	}
}

func TestStats(t *testing.T) {
	got := Stats(domain.Stats{HP: 100, Attack: 110, Defense: 90, SpecialAttack: 85, SpecialDefense: 90, Speed: 60})
	want := "hp    atk   def   satk  sdef  spd   total\n" +
		"100   110   90    85    90    60    535   "
	if got != want {
		t.Errorf("Stats() = %q, want %q", got, want)
	}
}

func TestPokemon(t *testing.T) {
	got := Pokemon(swampertSnapshot())
	want := "Swampert water ground regular\n" +
		"torrent damp(h)\n" +
		"hp    atk   def   satk  sdef  spd   total\n" +
		"100   110   90    85    90    60    535   \n" +
		"gen-9"
	if got != want {
		t.Errorf("Pokemon() = %q, want %q", got, want)
	}
}

func TestPokemonNickname(t *testing.T) {
	snapshot := swampertSnapshot()
	snapshot.Name = "Mudboy"

	got := Pokemon(snapshot)
	if !strings.HasPrefix(got, "Mudboy (swampert) water ground regular\n") {
		t.Errorf("Pokemon() = %q, want nickname header with species", got)
	}
}

func TestMoveRow(t *testing.T) {
	typing := domain.TypePair{Primary: "water", Secondary: strp("ground")}

	cases := []struct {
		name    string
		move    domain.Move
		learned domain.LearnMove
		want    string
	}{
		{
			name:    "status move without stats",
			move:    domain.Move{Name: "curse", Type: "ghost", DamageClass: "status", PP: intp(10)},
			learned: domain.LearnMove{Name: "curse", Method: "egg", Level: 0},
			want: "curse                " +
				"ghost status        " +
				"power: N/A  accuracy: N/A  pp: 10    " +
				"egg ",
		},
		{
			name: "evolution learnset row",
			move: domain.Move{
				Name: "mud-shot", Type: "ground", DamageClass: "special",
				Power: intp(55), Accuracy: intp(95), PP: intp(15),
			},
			learned: domain.LearnMove{Name: "mud-shot", Method: "level-up", Level: 0},
			want: "mud-shot(s)          " +
				"ground special      " +
				"power:  55  accuracy:  95  pp: 15    " +
				"level-up evolve",
		},
		{
			name: "leveled stab move",
			move: domain.Move{
				Name: "earthquake", Type: "ground", DamageClass: "physical",
				Power: intp(100), Accuracy: intp(100), PP: intp(10),
			},
			learned: domain.LearnMove{Name: "earthquake", Method: "level-up", Level: 36},
			want: "earthquake(s)        " +
				"ground physical     " +
				"power: 100  accuracy: 100  pp: 10    " +
				"level-up 36",
		},
		{
			name: "machine row leaves the level blank",
			move: domain.Move{
				Name: "surf", Type: "water", DamageClass: "special",
				Power: intp(90), Accuracy: intp(100), PP: intp(15),
			},
			learned: domain.LearnMove{Name: "surf", Method: "machine", Level: 0},
			want: "surf(s)              " +
				"water special       " +
				"power:  90  accuracy: 100  pp: 15    " +
				"machine ",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := moveRow(&tc.move, tc.learned, typing); got != tc.want {
				t.Errorf("moveRow() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoveListOrder(t *testing.T) {
	profile := &domain.PokemonProfile{
		Data: domain.Pokemon{
			Types: domain.TypePair{Primary: "water", Secondary: strp("ground")},
			LearnMoves: []domain.LearnMove{
				{Name: "surf", Method: "machine", Level: 0},
				{Name: "earthquake", Method: "level-up", Level: 36},
				{Name: "mud-shot", Method: "level-up", Level: 0},
				{Name: "curse", Method: "egg", Level: 0},
			},
		},
		Moves: []domain.Move{
			{Name: "surf", Type: "water", DamageClass: "special", Power: intp(90), Accuracy: intp(100), PP: intp(15)},
			{Name: "earthquake", Type: "ground", DamageClass: "physical", Power: intp(100), Accuracy: intp(100), PP: intp(10)},
			{Name: "mud-shot", Type: "ground", DamageClass: "special", Power: intp(55), Accuracy: intp(95), PP: intp(15)},
			{Name: "curse", Type: "ghost", DamageClass: "status", PP: intp(10)},
		},
	}

	lines := strings.Split(MoveList(profile), "\n")
	if lines[0] != "moves" {
		t.Fatalf("header = %q, want %q", lines[0], "moves")
	}

	// Method sorts first, then level, then name.
	wantOrder := []string{"curse", "mud-shot(s)", "earthquake(s)", "surf(s)"}
	if len(lines) != len(wantOrder)+1 {
		t.Fatalf("MoveList() has %d lines, want %d", len(lines), len(wantOrder)+1)
	}
	for i, want := range wantOrder {
		if !strings.HasPrefix(lines[i+1], want+" ") {
			t.Errorf("row %d = %q, want prefix %q", i, lines[i+1], want)
		}
	}
}

func TestMoveListEmpty(t *testing.T) {
	profile := &domain.PokemonProfile{
		Data: domain.Pokemon{Types: domain.TypePair{Primary: "normal"}},
	}

	want := "moves\nThere are no moves to display.\n"
	if got := MoveList(profile); got != want {
		t.Errorf("MoveList() = %q, want %q", got, want)
	}
}
