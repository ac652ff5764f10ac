package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorter"
)

var engineInfo = map[string]string{
	"insertion": "shift right, then insert",
	"bubble":    "compare and swap neighbours",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// param is one editable integer field of the run config.
type param struct {
	name string
	get  func(*config.Config) int64
	set  func(*config.Config, int64)
	step int64
}

var params = []param{
	{"size", func(c *config.Config) int64 { return int64(c.Size) }, func(c *config.Config, v int64) { c.Size = int(v) }, 5},
	{"speed_ms", func(c *config.Config) int64 { return int64(c.SpeedMS) }, func(c *config.Config, v int64) { c.SpeedMS = int(v) }, 1},
	{"seed", func(c *config.Config) int64 { return c.Seed }, func(c *config.Config, v int64) { c.Seed = v }, 1},
}

type model struct {
	state, cursor int
	engines       []string
	cfg           config.Config
	paramCursor   int
	editing       bool
	editBuf       string
	err           error
	tone          audio.Tone
	log           zerolog.Logger
	liveModel     Model
}

func NewInteractiveApp(cfg *config.Config, tone audio.Tone, log zerolog.Logger) *model {
	m := &model{
		state:   stateMenu,
		engines: sorter.Names(),
		cfg:     *cfg,
		tone:    tone,
		log:     log,
	}
	for i, name := range m.engines {
		if name == cfg.Engine {
			m.cursor = i
		}
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.state == stateSim {
			newLive, cmd := m.liveModel.Update(msg)
			m.liveModel = newLive.(Model)
			return m, cmd
		}
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
		newLive, cmd := m.liveModel.Update(msg)
		m.liveModel = newLive.(Model)
		return m, cmd
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
		if m.cursor < len(m.engines)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg.Engine = m.engines[m.cursor]
		m.state, m.paramCursor, m.err = stateConfig, 0, nil
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	p := params[m.paramCursor]
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseInt(m.editBuf, 10, 64); err == nil {
				p.set(&m.cfg, v)
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
				if (c >= '0' && c <= '9') || c == '-' {
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
		if m.paramCursor < len(params)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing, m.editBuf = true, strconv.FormatInt(p.get(&m.cfg), 10)
	case "s":
		cmd := m.start()
		return m, cmd
	case "left", "h":
		p.set(&m.cfg, p.get(&m.cfg)-p.step)
	case "right", "l":
		p.set(&m.cfg, p.get(&m.cfg)+p.step)
	}
	return m, nil
}

func (m *model) start() tea.Cmd {
	cfg := m.cfg
	canvas := NewCanvasSurface()
	sess, err := session.New(&cfg, canvas, m.tone, m.log)
	if err != nil {
		m.err = err
		return nil
	}
	if _, err := sess.Start(); err != nil {
		m.err = err
		return nil
	}
	m.liveModel = NewModel(sess, canvas, cfg.FPS, m.log)
	m.state, m.err = stateSim, nil
	return m.liveModel.Init()
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.liveModel.View()
	}
	return ""
}

var (
	menuTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuIdle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuIdleDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	menuKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	menuErr      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

func hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(menuKeyStyle.Render(pairs[i]) + menuIdle.Render(" "+pairs[i+1]+"  "))
	}
	return b.String()
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("SORTVIZ") + "\n    " + menuSub.Render("sorting, one step at a time") + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.engines {
		desc := engineInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-12s", name)), menuDesc.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", menuIdle.Render(fmt.Sprintf("  %-12s", name)), menuIdleDesc.Render(desc)))
		}
	}
	b.WriteString("\n    " + hints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render(strings.ToUpper(m.cfg.Engine)) + "\n    " + menuSub.Render(engineInfo[m.cfg.Engine]) + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, p := range params {
		valStr := fmt.Sprintf("%8d", p.get(&m.cfg))
		if m.editing && i == m.paramCursor {
			valStr = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-10s", p.name)), menuDesc.Bold(true).Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", menuIdle.Render(fmt.Sprintf("  %-10s", p.name)), menuIdleDesc.Render(valStr)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + menuErr.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + hints("j/k", "select", "h/l", "adjust", "s", "start", "esc", "back") + "\n")
	return b.String()
}

func RunInteractive(cfg *config.Config, tone audio.Tone, log zerolog.Logger) error {
	_, err := tea.NewProgram(NewInteractiveApp(cfg, tone, log), tea.WithAltScreen()).Run()
	return err
}
