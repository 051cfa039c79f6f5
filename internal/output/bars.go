package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for a 0-100 score.
// Example: "████████░░░░░░░░░░░░ 40/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// LevelBadge returns a styled rendering of a skill level name.
func LevelBadge(level string) string {
	switch level {
	case "expert":
		return StyleSuccess.Render(level)
	case "advanced":
		return StyleBold.Render(level)
	case "beginner":
		return StyleMuted.Render(level)
	default:
		return level
	}
}

// sparkGlyphs maps relative magnitude to a bar glyph, lowest to highest.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a run of counts as a compact unicode bar chart.
// Zero counts render as the lowest glyph; an all-zero run is a flat line.
func Sparkline(counts []int) string {
	if len(counts) == 0 {
		return ""
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return strings.Repeat(string(sparkGlyphs[0]), len(counts))
	}

	var sb strings.Builder
	for _, c := range counts {
		idx := c * (len(sparkGlyphs) - 1) / max
		sb.WriteRune(sparkGlyphs[idx])
	}
	return sb.String()
}

// sectionWidth is the width of section rules; see SetWidth.
var sectionWidth = 66

// SetWidth adjusts the section rule width. Values below 20 are ignored.
func SetWidth(w int) {
	if w >= 20 {
		sectionWidth = w
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", sectionWidth))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
