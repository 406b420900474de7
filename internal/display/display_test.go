package display

import (
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/norune/dunspars-sub000/internal/domain"
)

func TestMain(m *testing.M) {
	// Expected strings below are plain text.
	color.NoColor = true
	os.Exit(m.Run())
}

func TestRate(t *testing.T) {
	cases := []struct {
		value int
		want  color.Attribute
	}{
		{100, color.FgRed},
		{84, color.FgRed},
		{83, color.FgHiYellow},
		{67, color.FgHiYellow},
		{66, color.FgYellow},
		{51, color.FgYellow},
		{50, color.FgGreen},
		{34, color.FgGreen},
		{33, color.FgBlue},
		{17, color.FgBlue},
		{16, color.FgMagenta},
		{0, color.FgMagenta},
	}

	for _, tc := range cases {
		if got := rate(tc.value, 100); got != tc.want {
			t.Errorf("rate(%d, 100) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func steelDefenseRelations() domain.TypeRelations {
	return domain.TypeRelations{
		DoubleDamageFrom: []string{"fighting", "fire", "ground"},
		HalfDamageFrom: []string{
			"normal", "flying", "rock", "bug", "steel",
			"grass", "psychic", "ice", "dragon", "fairy",
		},
		NoDamageFrom: []string{"poison"},
	}
}

func TestTypeChartDefense(t *testing.T) {
	chart := domain.NewDefenseChart("steel", steelDefenseRelations())

	want := "steel defense" +
		"\ndouble: fighting fire ground" +
		"\nneutral: dark electric ghost water" +
		"\nhalf: bug dragon fairy flying grass ice normal psychic rock steel" +
		"\nzero: poison"
	if got := TypeChart(chart); got != want {
		t.Errorf("TypeChart() = %q, want %q", got, want)
	}
}

func TestTypeChartOffenseLabel(t *testing.T) {
	chart := domain.NewOffenseChart("steel", domain.TypeRelations{
		DoubleDamageTo: []string{"ice", "rock", "fairy"},
		HalfDamageTo:   []string{"fire", "water", "electric", "steel"},
	})

	got := TypeChart(chart)
	if wantPrefix := "steel offense\ndouble: fairy ice rock"; len(got) < len(wantPrefix) || got[:len(wantPrefix)] != wantPrefix {
		t.Errorf("TypeChart() = %q, want prefix %q", got, wantPrefix)
	}
}
