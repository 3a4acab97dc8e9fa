// Package tui is the interactive terminal form: pick a black hole, edit the
// query parameters, read the styled report. All physics goes through the
// scenario layer; this package only handles keys and layout.
package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gravtide/internal/catalog"
	"github.com/san-kum/gravtide/internal/scenario"
	"github.com/san-kum/gravtide/internal/viz"
)

const customEntry = "Custom mass"

const (
	stateMenu = iota
	stateParams
	stateResult
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	editStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type param struct {
	label string
	key   string
}

type model struct {
	state  int
	cursor int

	entries []string

	// query under construction
	blackHole string // empty for custom mass
	massSolar float64
	mode      scenario.DistanceMode
	distance  float64
	heightM   float64

	params      []param
	paramCursor int
	editing     bool
	editBuf     string
	errMsg      string

	report *scenario.Report
}

func newModel() model {
	return model{
		state:     stateMenu,
		entries:   append(catalog.Names(), customEntry),
		massSolar: 10.0,
		mode:      scenario.DistanceFactor,
		distance:  2.0,
		heightM:   scenario.DefaultHeightM,
	}
}

// RunInteractive starts the interactive calculator and blocks until quit.
func RunInteractive() error {
	p := tea.NewProgram(newModel())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateParams:
		return m.paramsKey(msg)
	default:
		return m.resultKey(msg)
	}
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		choice := m.entries[m.cursor]
		if choice == customEntry {
			m.blackHole = ""
		} else {
			m.blackHole = choice
		}
		m.state, m.paramCursor, m.errMsg = stateParams, 0, ""
		m.params = m.buildParams()
	}
	return m, nil
}

func (m model) buildParams() []param {
	var ps []param
	if m.blackHole == "" {
		ps = append(ps, param{"Mass (M_sun)", "mass"})
	}
	ps = append(ps,
		param{"Distance mode", "mode"},
		param{"Distance value", "distance"},
		param{"Body height (m)", "height"},
	)
	return ps
}

func (m model) paramsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.params)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		if m.params[m.paramCursor].key == "mode" {
			m.toggleMode()
		} else {
			m.editing, m.editBuf = true, ""
		}
	case "c":
		return m.calculate()
	}
	return m, nil
}

func (m *model) toggleMode() {
	if m.mode == scenario.DistanceFactor {
		m.mode = scenario.DistanceKilometers
	} else {
		m.mode = scenario.DistanceFactor
	}
}

func (m model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val, err := strconv.ParseFloat(m.editBuf, 64)
		if err == nil {
			m.setParam(m.params[m.paramCursor].key, val)
		}
		m.editing, m.editBuf = false, ""
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == '+' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m *model) setParam(key string, val float64) {
	switch key {
	case "mass":
		m.massSolar = val
	case "distance":
		m.distance = val
	case "height":
		m.heightM = val
	}
}

func (m model) scenario() scenario.Scenario {
	return scenario.Scenario{
		BlackHole: m.blackHole,
		MassSolar: m.massSolar,
		Mode:      m.mode,
		Distance:  m.distance,
		HeightM:   m.heightM,
	}
}

func (m model) calculate() (tea.Model, tea.Cmd) {
	rep, err := m.scenario().Evaluate()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.report, m.errMsg, m.state = rep, "", stateResult
	return m, nil
}

func (m model) resultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "e", "esc":
		m.state = stateParams
	case "m":
		m.state, m.cursor = stateMenu, 0
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.menuView()
	case stateParams:
		return m.paramsView()
	default:
		return m.resultView()
	}
}

func (m model) menuView() string {
	s := titleStyle.Render("gravtide — black hole tidal & orbit calculator") + "\n"
	for i, name := range m.entries {
		line := "  " + name
		if bh, ok := catalog.Lookup(name); ok {
			line = fmt.Sprintf("  %-18s %s", name, dimStyle.Render(fmt.Sprintf("≈ %.3g M_sun", bh.SolarMasses)))
		}
		if i == m.cursor {
			line = selectedStyle.Render("▸ " + line[2:])
		} else {
			line = normalStyle.Render(line)
		}
		s += line + "\n"
	}
	s += dimStyle.Render("\n↑/↓ select · enter choose · q quit")
	return s
}

func (m model) paramValue(key string) string {
	switch key {
	case "mass":
		return fmt.Sprintf("%.4g", m.massSolar)
	case "mode":
		if m.mode == scenario.DistanceKilometers {
			return "kilometers"
		}
		return "multiple of r_s"
	case "distance":
		return fmt.Sprintf("%.4g", m.distance)
	default:
		return fmt.Sprintf("%.2f", m.heightM)
	}
}

func (m model) paramsView() string {
	target := m.blackHole
	if target == "" {
		target = "custom mass"
	}
	s := titleStyle.Render("parameters — "+target) + "\n"

	for i, p := range m.params {
		val := m.paramValue(p.key)
		if m.editing && i == m.paramCursor {
			val = editStyle.Render(m.editBuf + "▏")
		}
		line := fmt.Sprintf("  %-18s %s", p.label, val)
		if i == m.paramCursor && !m.editing {
			line = selectedStyle.Render("▸" + line[1:])
		} else {
			line = normalStyle.Render(line)
		}
		s += line + "\n"
	}

	if m.errMsg != "" {
		s += "\n" + errStyle.Render(m.errMsg) + "\n"
	}
	s += dimStyle.Render("\n↑/↓ move · enter edit/toggle · c calculate · esc back · q quit")
	return s
}

func (m model) resultView() string {
	s := viz.RenderReport(m.report)
	s += dimStyle.Render("\n\ne edit parameters · m menu · q quit")
	return s
}
