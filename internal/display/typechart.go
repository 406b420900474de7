package display

import (
	"strings"

	"github.com/fatih/color"

	"github.com/norune/dunspars-sub000/internal/domain"
)

// TypeChart renders a chart with its types grouped by multiplier tier.
// TypeNames iterates alphabetically, so each bucket comes out sorted.
func TypeChart(chart *domain.TypeChart) string {
	label := chart.Label()
	switch chart.Kind() {
	case domain.Offense:
		label += " offense"
	case domain.Defense:
		label += " defense"
	}

	groups := domain.GroupByTier(chart.TypeNames(), func(name string) (string, float64, bool) {
		multiplier, err := chart.Multiplier(name)
		if err != nil {
			return name, 0, false
		}
		return name, multiplier, true
	})

	body := renderGroups(groups, func(tier domain.Tier, names []string) string {
		return color.New(tierAttr(tier)).Sprint(strings.Join(names, " "))
	})

	return header.Sprint(label) + body
}
