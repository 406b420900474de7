// Package display renders resolved ruleset data for the terminal.
// Everything here is pure string formatting; color handling rides on
// fatih/color's global switch, so the same renderers produce plain
// text when color is off.
package display

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/norune/dunspars-sub000/internal/domain"
)

var (
	header = color.New(color.FgHiGreen, color.Bold)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	blue   = color.New(color.FgBlue)
	yellow = color.New(color.FgYellow)
)

// tierAttr maps a weakness tier onto the hot-to-cold palette.
func tierAttr(tier domain.Tier) color.Attribute {
	switch tier {
	case domain.TierQuad:
		return color.FgRed
	case domain.TierDouble:
		return color.FgHiYellow
	case domain.TierNeutral:
		return color.FgGreen
	case domain.TierHalf:
		return color.FgCyan
	case domain.TierQuarter:
		return color.FgBlue
	case domain.TierZero:
		return color.FgMagenta
	default:
		return color.FgYellow
	}
}

// rate grades a value against its practical ceiling, hot to cold.
func rate(value, ceiling int) color.Attribute {
	ratio := float64(value) / float64(ceiling)
	switch {
	case ratio > 0.83:
		return color.FgRed
	case ratio > 0.66:
		return color.FgHiYellow
	case ratio > 0.50:
		return color.FgYellow
	case ratio > 0.33:
		return color.FgGreen
	case ratio > 0.16:
		return color.FgBlue
	default:
		return color.FgMagenta
	}
}

// renderGroups walks the tiers in display order and emits one line per
// non-empty bucket. A fully empty group set reads "None".
func renderGroups[T any](groups domain.TierGroups[T], render func(domain.Tier, []T) string) string {
	var b strings.Builder
	for _, tier := range domain.TierOrder {
		items := groups.Group(tier)
		if len(items) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(tier.String())
		b.WriteString(": ")
		b.WriteString(render(tier, items))
	}

	if b.Len() == 0 {
		return "\nNone"
	}
	return b.String()
}

func title(name string) string {
	return cases.Title(language.English).String(name)
}

func orNA(value *int) string {
	if value == nil {
		return "N/A"
	}
	return strconv.Itoa(*value)
}

// pad right-pads a rendered cell to the column width. visible is the
// cell's printable length; padding on the raw string would count color
// escape codes too.
func pad(rendered string, visible, width int) string {
	if visible >= width {
		return rendered
	}
	return rendered + strings.Repeat(" ", width-visible)
}
