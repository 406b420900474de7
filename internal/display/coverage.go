package display

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/norune/dunspars-sub000/internal/domain"
)

// Coverage renders a roster report, offense then defense, one line per
// type in alphabetical order. Offense entries carry the member's own
// type granting the hit; defense entries carry the resisted
// multiplier. An empty bucket is a gap worth seeing, so it renders as
// an explicit "none".
func Coverage(report *domain.CoverageReport) string {
	typeNames := make([]string, len(domain.Types))
	copy(typeNames, domain.Types)
	sort.Strings(typeNames)

	var b strings.Builder
	b.WriteString(header.Sprint("offense coverage"))
	for _, typeName := range typeNames {
		entries := make([]string, 0, len(report.Offense[typeName]))
		for _, cover := range report.Offense[typeName] {
			entries = append(entries, fmt.Sprintf("%s(%s)", cover.Pokemon, cover.Via))
		}
		b.WriteString(coverageLine(typeName, entries))
	}

	b.WriteString("\n\n")
	b.WriteString(header.Sprint("defense coverage"))
	for _, typeName := range typeNames {
		entries := make([]string, 0, len(report.Defense[typeName]))
		for _, cover := range report.Defense[typeName] {
			entries = append(entries, fmt.Sprintf("%s(%sx)", cover.Pokemon, formatMultiplier(cover.Multiplier)))
		}
		b.WriteString(coverageLine(typeName, entries))
	}

	return b.String()
}

func coverageLine(typeName string, entries []string) string {
	if len(entries) == 0 {
		return fmt.Sprintf("\n%s %s", green.Sprintf("%-10s", typeName), red.Sprint("none"))
	}
	return fmt.Sprintf("\n%s %s", green.Sprintf("%-10s", typeName), strings.Join(entries, " "))
}

func formatMultiplier(multiplier float64) string {
	return strconv.FormatFloat(multiplier, 'g', -1, 64)
}
