package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ventsim/internal/anim"
	"github.com/san-kum/ventsim/internal/config"
	"github.com/san-kum/ventsim/internal/engine"
	"github.com/san-kum/ventsim/internal/mech"
	"github.com/san-kum/ventsim/internal/render"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var variantInfo = map[string]string{
	"linkage": "bracket link, nut on the motor axis",
	"slider":  "pivoting telescopic actuator",
}

type state int

const (
	stateMenu state = iota
	stateConfig
	stateSim
)

type slider struct {
	name  string
	key   string // bounds table key
	step  float64
	value float64
}

type model struct {
	state    state
	cursor   int
	variants []string
	selected string

	sliders     []slider
	paramCursor int
	editing     bool
	editBuf     string

	eng       *engine.Engine
	driver    *anim.Driver
	speedHz   float64
	paused    bool
	history   []float64
	lastFrame time.Time

	width  int
	height int
}

func NewInteractiveApp() *model {
	return &model{
		state:    stateMenu,
		variants: mech.Names(),
		sliders: []slider{
			{name: "flap height", key: "flap_height", step: 5, value: config.DefaultFlapHeight},
			{name: "motor spacing", key: "motor_spacing", step: 5, value: config.DefaultMotorSpacing},
			{name: "extension", key: "extension", step: 5, value: config.DefaultExtension},
			{name: "speed", key: "speed", step: 0.25, value: config.DefaultSpeedHz},
			{name: "scan step", key: "scan_step", step: 0.1, value: config.DefaultScanStep},
		},
		driver:  anim.NewDriver(),
		speedHz: config.DefaultSpeedHz,
		history: make([]float64, 0, 60),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim || m.eng == nil {
			return m, nil
		}
		now := time.Now()
		if !m.paused {
			delta := 16.0
			if !m.lastFrame.IsZero() {
				delta = float64(now.Sub(m.lastFrame).Milliseconds())
			}
			pct := m.driver.Tick(delta, m.speedHz)
			m.eng.SetExtension(pct)

			snap := m.eng.Snapshot()
			m.history = append(m.history, -snap.CurrentAngleDeg)
			if len(m.history) > 60 {
				m.history = m.history[1:]
			}
		}
		m.lastFrame = now
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		return m.simKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.variants)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.variants[m.cursor]
		m.state = stateConfig
		m.paramCursor = 0
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			s := &m.sliders[m.paramCursor]
			s.value = config.Limits[s.key].Clamp(val)
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.sliders)-1 {
			m.paramCursor++
		}
	case "enter":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", m.sliders[m.paramCursor].value)
	case "left", "h":
		s := &m.sliders[m.paramCursor]
		s.value = config.Limits[s.key].Clamp(s.value - s.step)
	case "right", "l":
		s := &m.sliders[m.paramCursor]
		s.value = config.Limits[s.key].Clamp(s.value + s.step)
	case "s", " ":
		m.start()
		m.state = stateSim
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m model) simKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
		m.eng = nil
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
		m.lastFrame = time.Time{}
	case "c":
		m.state = stateConfig
		m.eng = nil
		return m, tea.ClearScreen
	case "r":
		m.start()
		return m, tea.ClearScreen
	case "+", "=":
		m.speedHz = config.Limits["speed"].Clamp(m.speedHz * 2)
		if m.speedHz == 0 {
			m.speedHz = 0.25
		}
	case "-", "_":
		m.speedHz = m.speedHz / 2
		if m.speedHz < 0.125 {
			m.speedHz = 0
		}
	}
	return m, nil
}

func (m *model) cfg() *config.Config {
	c := config.DefaultConfig()
	c.Variant = m.selected
	for _, s := range m.sliders {
		switch s.key {
		case "flap_height":
			c.FlapHeight = s.value
		case "motor_spacing":
			c.MotorSpacing = s.value
		case "extension":
			c.Extension = s.value
		case "speed":
			c.SpeedHz = s.value
		case "scan_step":
			c.ScanStepDeg = s.value
		}
	}
	c.Clamp()
	return c
}

func (m *model) start() {
	c := m.cfg()
	variant, err := mech.New(c.Variant)
	if err != nil {
		variant = mech.NewLinkage()
	}
	m.eng = engine.New(variant, c.Params())
	m.speedHz = c.SpeedHz
	m.driver.Reset()
	m.driver.Percent = c.Extension
	m.history = m.history[:0]
	m.paused = false
	m.lastFrame = time.Time{}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.viewSim()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("v e n t s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.variants {
		desc := variantInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected) + "  " + dim.Render(variantInfo[m.selected]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	for i, s := range m.sliders {
		lim := config.Limits[s.key]
		val := fmt.Sprintf("%8.2f", s.value)
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		bar := gauge(s.value, lim.Min, lim.Max, 16)
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", s.name)) + magenta.Render(val) + "  " + cyan.Render(bar) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", s.name)) + dim.Render(val) + "  " + dimmer.Render(bar) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")
	return b.String()
}

func (m model) viewSim() string {
	if m.eng == nil {
		return ""
	}
	snap := m.eng.Snapshot()

	cw := m.width - 6
	ch := m.height - 10
	if cw < 40 {
		cw = 40
	}
	if ch < 10 {
		ch = 10
	}

	canvas := render.NewCanvas(cw, ch)
	render.DrawState(canvas, snap)

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n",
		statusIcon, cyan.Render(snap.Variant), statusText,
		dim.Render(fmt.Sprintf("%.2f Hz", m.speedHz))))

	filled := int(snap.Extension / 100 * 36)
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", 36-filled))
	b.WriteString(fmt.Sprintf("   %s %s\n\n", bar, dim.Render(fmt.Sprintf("%.0f%%", snap.Extension))))

	for _, row := range canvas.Grid {
		b.WriteString("   " + string(row) + "\n")
	}

	b.WriteString(fmt.Sprintf("\n   %s%s  %s%s  %s%s\n",
		dim.Render("open "), white.Render(fmt.Sprintf("%.1f°", -snap.CurrentAngleDeg)),
		dim.Render("max "), white.Render(fmt.Sprintf("%.1f°", -snap.MaxAngleDeg)),
		dim.Render("travel "), white.Render(fmt.Sprintf("%.1fmm", snap.Dynamic.Travel))))

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("θ"), cyan.Render(sparkline(m.history, 24))))
	}

	b.WriteString("\n" + dim.Render("   space pause  ±speed  r reset  c config  q quit") + "\n")
	return b.String()
}

func gauge(v, lo, hi float64, width int) string {
	if hi <= lo {
		return strings.Repeat("─", width)
	}
	pos := int((v - lo) / (hi - lo) * float64(width-1))
	var sb strings.Builder
	for i := 0; i < width; i++ {
		if i == pos {
			sb.WriteRune('◆')
		} else {
			sb.WriteRune('─')
		}
	}
	return sb.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func RunInteractive() error {
	p := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
