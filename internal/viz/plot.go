package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravtide/internal/scenario"
)

// Both axes of a sweep span many decades, so plots show log10 of the
// quantity against the log-spaced radius samples.

func GravityPlot(points []scenario.SweepPoint, width, height int) string {
	data := make([]float64, len(points))
	for i, pt := range points {
		data[i] = math.Log10(pt.GravityMS2)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(captionRange("log10 g(r) [m/s²]", points)),
	)
}

func TidalRatioPlot(points []scenario.SweepPoint, width, height int) string {
	data := make([]float64, len(points))
	for i, pt := range points {
		data[i] = math.Log10(pt.TidalEarthRatio)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(captionRange("log10 Δg/g_earth", points)),
	)
}

func captionRange(what string, points []scenario.SweepPoint) string {
	if len(points) == 0 {
		return what
	}
	return fmt.Sprintf("%s, r from %.3g to %.3g r_s (log-spaced)",
		what, points[0].Factor, points[len(points)-1].Factor)
}

// TransitionTable lists where the severity grade changes along a sweep.
func TransitionTable(points []scenario.SweepPoint) string {
	if len(points) == 0 {
		return ""
	}
	out := fmt.Sprintf("  %.3g r_s: %s\n", points[0].Factor, SeverityStyle(points[0].Severity).Render(points[0].Label))
	for i := 1; i < len(points); i++ {
		if points[i].Severity == points[i-1].Severity {
			continue
		}
		out += fmt.Sprintf("  %.3g r_s: %s → %s\n",
			points[i].Factor,
			SeverityStyle(points[i-1].Severity).Render(points[i-1].Label),
			SeverityStyle(points[i].Severity).Render(points[i].Label))
	}
	return out
}
