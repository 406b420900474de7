package domain

import (
	"fmt"
	"sort"
)

// OffenseCover marks one roster member threatening a type, labeled with
// whichever of the member's own types grants the super-effective hit.
// A dual-typed member can appear twice against the same target under
// different labels.
type OffenseCover struct {
	Pokemon string
	Via     string
}

// DefenseCover marks one roster member resisting a type, labeled with
// its combined defense multiplier; resistance strength runs from 0 to
// 0.5.
type DefenseCover struct {
	Pokemon    string
	Multiplier float64
}

// CoverageReport maps every type in the roster to its contributors.
// Every type is present; an empty bucket is meaningful and reads as
// "no coverage".
type CoverageReport struct {
	Offense map[string][]OffenseCover
	Defense map[string][]DefenseCover
}

// BuildCoverage aggregates offensive threat and defensive resistance
// over a roster. offenseCharts must hold the offense chart of every
// type appearing on a roster member, keyed by type name.
func BuildCoverage(roster []*PokemonProfile, offenseCharts map[string]*TypeChart) (*CoverageReport, error) {
	report := &CoverageReport{
		Offense: make(map[string][]OffenseCover, len(Types)),
		Defense: make(map[string][]DefenseCover, len(Types)),
	}
	for _, name := range Types {
		report.Offense[name] = []OffenseCover{}
		report.Defense[name] = []DefenseCover{}
	}

	for _, profile := range roster {
		memberTypes := []string{profile.Data.Types.Primary}
		if secondary := profile.Data.Types.Secondary; secondary != nil {
			memberTypes = append(memberTypes, *secondary)
		}

		for _, via := range memberTypes {
			chart, ok := offenseCharts[via]
			if !ok {
				return nil, fmt.Errorf("missing offense chart for type %q", via)
			}

			for _, target := range Types {
				multiplier, err := chart.Multiplier(target)
				if err != nil {
					return nil, err
				}
				if multiplier > 1.0 {
					report.Offense[target] = append(report.Offense[target], OffenseCover{
						Pokemon: profile.Data.Name,
						Via:     via,
					})
				}
			}
		}

		for _, target := range Types {
			multiplier, err := profile.DefenseChart.Multiplier(target)
			if err != nil {
				return nil, err
			}
			if multiplier < 1.0 {
				report.Defense[target] = append(report.Defense[target], DefenseCover{
					Pokemon:    profile.Data.Name,
					Multiplier: multiplier,
				})
			}
		}
	}

	for _, covers := range report.Offense {
		sort.Slice(covers, func(i, j int) bool {
			if covers[i].Pokemon != covers[j].Pokemon {
				return covers[i].Pokemon < covers[j].Pokemon
			}
			return covers[i].Via < covers[j].Via
		})
	}
	for _, covers := range report.Defense {
		sort.Slice(covers, func(i, j int) bool {
			return covers[i].Pokemon < covers[j].Pokemon
		})
	}

	return report, nil
}
