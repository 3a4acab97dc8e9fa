package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/gravtide/internal/physics"
	"github.com/san-kum/gravtide/internal/scenario"
)

// RenderReport formats a full query report for the terminal. The physics
// core hands over raw numbers and a label/rationale pair; every unit choice
// and significant-figure decision lives here.
func RenderReport(rep *scenario.Report) string {
	title := "Black Hole Tidal & Orbit Report"
	if rep.BlackHole != "" {
		title = fmt.Sprintf("%s — %s", title, rep.BlackHole)
	}

	rows := []string{
		renderRow("Mass", fmt.Sprintf("%.4g M_sun  (%.4g kg)", rep.MassSolar, rep.MassKg)),
		renderRow("Schwarzschild radius r_s", fmt.Sprintf("%.4g km", rep.SchwarzschildKm)),
		renderRow("Distance r", fmt.Sprintf("%.4g km  (%.4g × r_s)", rep.RadiusKm, rep.FactorOfRs)),
		renderRow("Body height", fmt.Sprintf("%.2f m", rep.HeightM)),
		"",
		renderRow("Gravity g(r)", fmt.Sprintf("%.4e m/s²  (%.3g × g_earth)", rep.GravityMS2, rep.GravityEarthRatio)),
		renderRow("Tidal Δg", fmt.Sprintf("%.4e m/s²  (%.3g × g_earth)", rep.TidalMS2, rep.TidalEarthRatio)),
		"",
		renderRow("Spaghettification", SeverityStyle(rep.Severity).Render(rep.Label)),
		renderRow("", RatioBar(rep.TidalEarthRatio, 40)),
		"",
		dim.Render(wrap(rep.Rationale, 72)),
		"",
		renderOrbit(rep),
	}

	return headerStyle.Render(title) + "\n" + panelStyle.Render(joinLines(rows...))
}

func renderOrbit(rep *scenario.Report) string {
	period, ok := rep.OrbitalPeriod()
	if !ok {
		return warnStyle.Render("At or inside the event horizon (r ≤ r_s).") + "\n" +
			dim.Render(wrap("A classical circular orbit is not physically meaningful here; "+
				"general relativity predicts inevitable inward freefall.", 72))
	}

	return renderRow("Kepler orbital period", fmt.Sprintf("%.4e s", period)) + "\n" +
		renderRow("", fmt.Sprintf("≈ %.3g hours  /  %.3g days  /  %.3g years",
			period/3600.0, period/physics.SecondsPerDay, period/physics.SecondsPerYear))
}

func wrap(text string, width int) string {
	var out, line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			out += line + "\n"
			line = word
		default:
			line += " " + word
		}
	}
	return out + line
}
