package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gravtide/internal/physics"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	orange = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(26)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// SeverityStyle returns the display style for a tidal severity grade.
func SeverityStyle(sev physics.Severity) lipgloss.Style {
	switch sev {
	case physics.Negligible:
		return green
	case physics.Noticeable:
		return yellow
	case physics.VeryStrong:
		return orange
	default:
		return red
	}
}

// RatioBar renders the tidal-to-Earth-gravity ratio on a log scale spanning
// 1e-3..1e+2, so the three classification breakpoints fall at fixed positions.
func RatioBar(ratio float64, width int) string {
	if width <= 0 {
		width = 40
	}

	pos := logPosition(ratio, width)
	bar := make([]rune, width)
	for i := range bar {
		switch {
		case i < pos:
			bar[i] = '█'
		case i == pos:
			bar[i] = '█'
		default:
			bar[i] = '░'
		}
	}

	// Breakpoint ticks at 0.1, 1 and 10 Earth gravities.
	for _, bp := range []float64{physics.NoticeableRatio, physics.VeryStrongRatio, physics.ExtremeRatio} {
		i := logPosition(bp, width)
		if i > pos && i < width {
			bar[i] = '┊'
		}
	}

	cls, err := physics.ClassifyRatio(ratio)
	if err != nil {
		return string(bar)
	}
	return SeverityStyle(cls.Severity).Render(string(bar[:pos+1])) + dim.Render(string(bar[pos+1:]))
}

func logPosition(ratio float64, width int) int {
	const lo, hi = -3.0, 2.0
	l := lo
	if ratio > 0 {
		l = math.Log10(ratio)
	}
	if l < lo {
		l = lo
	}
	if l > hi {
		l = hi
	}
	pos := int((l - lo) / (hi - lo) * float64(width-1))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}
	return pos
}

func renderRow(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
