// Package report renders evaluations for the terminal and the viewer.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mahjong-hand/hand"
	"mahjong-hand/notation"
	"mahjong-hand/scoring"
)

type lineKind int

const (
	lineText lineKind = iota
	lineTitle
	lineBest
	lineWarn
	lineDim
)

type line struct {
	kind lineKind
	text string
}

var styles = map[lineKind]lipgloss.Style{
	lineText:  lipgloss.NewStyle(),
	lineTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	lineBest:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	lineWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	lineDim:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// Plain renders ev as plain text.
func Plain(ev scoring.Evaluation) string {
	return render(build(ev), func(l line) string { return l.text })
}

// Styled renders ev with terminal colors.
func Styled(ev scoring.Evaluation) string {
	return render(build(ev), func(l line) string { return styles[l.kind].Render(l.text) })
}

func render(lines []line, f func(line) string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(f(l))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatTable formats the table situation of a context.
func FormatTable(c scoring.Context) string {
	s := fmt.Sprintf("Seat: %s | Round: %s", c.SeatWind, c.RoundWind)
	if c.Dealer {
		s += " | Dealer"
	}
	if c.DoubleRiichi {
		s += " [Double Riichi]"
	} else if c.Riichi {
		s += " [Riichi]"
	}
	return s
}

// FormatInterpretation formats the groups of one scored interpretation.
func FormatInterpretation(s scoring.Scored) string {
	if s.Shape == scoring.ShapeKokushi {
		return "Kokushi Musou (thirteen orphans)"
	}
	return s.Interpretation.Key()
}

// FormatYaku formats yaku as "Name (han)" joined by commas.
func FormatYaku(ys []scoring.YakuResult) string {
	if len(ys) == 0 {
		return "no yaku"
	}
	parts := make([]string, len(ys))
	for i, y := range ys {
		parts[i] = fmt.Sprintf("%s (%d)", y.Name, y.Han)
	}
	return strings.Join(parts, ", ")
}

// FormatValue formats han and fu, or the yakuman count.
func FormatValue(s scoring.Scored) string {
	if s.Yakuman {
		if n := s.Han / scoring.YakumanHan; n > 1 {
			return fmt.Sprintf("%dx Yakuman", n)
		}
		return "Yakuman"
	}
	return fmt.Sprintf("%d han %d fu", s.Han, s.Fu)
}

// Summary is the one line form used for batches.
func Summary(ev scoring.Evaluation) string {
	head := fmt.Sprintf("%s %s %s", formatHand(ev), ev.WinTile, ev.Context.Method)
	switch {
	case ev.Best == nil:
		return head + ": no winning shape"
	case !ev.Best.HasYaku():
		return head + ": no yaku"
	}
	return fmt.Sprintf("%s: %s [%s] %s", head, FormatValue(*ev.Best), ev.Best.Shape, FormatYaku(ev.Best.Yaku))
}

// formatHand writes the concealed tiles followed by the melds.
func formatHand(ev scoring.Evaluation) string {
	return notation.Format(ev.Tiles) + notation.FormatMelds(ev.Melds)
}

func formatTiles(tiles []hand.Tile) string {
	if len(tiles) == 0 {
		return "none"
	}
	return notation.Format(tiles)
}

func build(ev scoring.Evaluation) []line {
	lines := []line{
		{lineTitle, fmt.Sprintf("Hand: %s | Win: %s (%s)", formatHand(ev), ev.WinTile, ev.Context.Method)},
		{lineText, FormatTable(ev.Context)},
		{lineDim, "Dora Indicators: " + formatTiles(ev.Context.DoraIndicators)},
	}
	if ev.Best == nil {
		return append(lines, line{lineWarn, "No winning shape."})
	}

	lines = append(lines, line{lineTitle, fmt.Sprintf("--- Interpretations (%d) ---", len(ev.Interpretations))})
	for i := range ev.Interpretations {
		s := &ev.Interpretations[i]
		marker, kind := " ", lineText
		if s == ev.Best {
			marker, kind = ">", lineBest
		}
		lines = append(lines,
			line{kind, fmt.Sprintf("%s %s", marker, FormatInterpretation(*s))},
			line{lineDim, fmt.Sprintf("    %s | %s", FormatValue(*s), FormatYaku(s.Yaku))},
		)
	}

	if !ev.Best.HasYaku() {
		return append(lines, line{lineWarn, "No yaku: the hand cannot be declared."})
	}
	return append(lines, line{lineBest, fmt.Sprintf("Best: %s [%s]", FormatValue(*ev.Best), ev.Best.Shape)})
}
