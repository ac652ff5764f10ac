package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorter"
)

const (
	width           = 72
	height          = 22
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

func tick(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// NewCanvasSurface sizes a canvas for the live view. Sessions shown by
// NewModel must be drawn on it.
func NewCanvasSurface() *Canvas { return NewCanvas(width, height) }

// Model animates one session on a braille canvas, with a side panel of live
// counters fed by the player's observers.
type Model struct {
	sess      *session.Session
	player    *player.Player
	canvas    *Canvas
	fps       int
	start     time.Time
	elapsed   time.Duration
	frame     int
	live      []metrics.Metric
	runs      *metrics.ShiftRuns
	firedHist []float64
	recording bool
	frames    []*image.Paletted
	showHelp  bool
	log       zerolog.Logger
}

// NewModel takes a session that has already recorded its actions onto
// canvas. The animation clock starts now.
func NewModel(sess *session.Session, canvas *Canvas, fps int, log zerolog.Logger) Model {
	live := metrics.Defaults()
	var runs *metrics.ShiftRuns
	for _, m := range live {
		if sr, ok := m.(*metrics.ShiftRuns); ok {
			runs = sr
		}
	}
	p := sess.Player()
	p.OnFire(func(_ int, a sorter.Action) { metrics.Observe(live, a) })
	p.Draw()

	return Model{
		sess:      sess,
		player:    p,
		canvas:    canvas,
		fps:       fps,
		start:     time.Now(),
		live:      live,
		runs:      runs,
		firedHist: make([]float64, 0, historyCapacity),
		log:       log,
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.fps)
}

// Update handles input events and fires whatever the clock has reached.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.saveGIF()
			}
			return m, tea.Quit
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		}
	case TickMsg:
		m.advance(time.Time(msg))
		if m.recording {
			m.captureFrame()
		}
		return m, tick(m.fps)
	}
	return m, nil
}

func (m *Model) advance(now time.Time) {
	m.frame++
	if now.Before(m.start) {
		return
	}
	m.elapsed = now.Sub(m.start)
	n := m.player.Advance(m.elapsed)
	if m.player.Done() && n == 0 {
		return
	}
	m.firedHist = append(m.firedHist, float64(n))
	if len(m.firedHist) > historyCapacity {
		m.firedHist = m.firedHist[1:]
	}
}

func (m Model) status() string {
	switch {
	case m.recording:
		return StatusRecording.Render("● REC")
	case !m.player.Done():
		return StatusRunning.Render(AnimatedSpinner(m.frame) + " SORTING")
	case m.sess.Check():
		return StatusRunning.Render("✓ SORTED")
	default:
		return StatusFailed.Render("✗ CHECK FAILED")
	}
}

func (m Model) row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// View renders the TUI interface.
func (m Model) View() string {
	theme := CurrentTheme
	canvasView := canvasStyle.Render(m.canvas.Render(theme))

	var s strings.Builder
	title := strings.ToUpper(m.sess.Config.Engine) + " SORT"
	s.WriteString(HeaderStyle.Render(GradientText(title, theme.Primary, theme.Secondary)) + "\n")
	s.WriteString(m.status() + "\n\n")

	fired, total := m.player.Progress()
	pct := 1.0
	if total > 0 {
		pct = float64(fired) / float64(total)
	}
	s.WriteString(ProgressBar(pct, 30, theme) + fmt.Sprintf(" %3.0f%%\n\n", pct*100))

	board := m.player.Board()
	s.WriteString(m.row("Tick", fmt.Sprintf("%d / %d", fired, total)))
	s.WriteString(m.row("Time", fmt.Sprintf("%s / %s", m.clock().Truncate(time.Millisecond), m.player.Duration())))
	s.WriteString(m.row("Speed", m.player.Scheduler().Speed().String()))
	s.WriteString(m.row("Sorted bars", fmt.Sprintf("%d / %d", board.SortedCount(), board.Len())))
	for _, mt := range m.live {
		if v := mt.Value(); v > 0 && mt != metrics.Metric(m.runs) {
			s.WriteString(MetricLabel.Width(14).Render(mt.Name()) + MetricValue.Render(fmt.Sprintf("%.0f", v)) + "\n")
		}
	}

	if m.runs != nil {
		if series := m.runs.Series(); len(series) > 1 {
			chart := asciigraph.Plot(series, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("shifts per insert"))
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}
	s.WriteString("\n" + Subtle.Render("actions/frame ") + SparklineChart(m.firedHist, 24, theme) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nQ:Quit T:Theme G:Record ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Q        - Quit                     ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// clock is the animation time, capped at the end of the timeline.
func (m Model) clock() time.Duration {
	if d := m.player.Duration(); m.elapsed > d {
		return d
	}
	return m.elapsed
}

// palette puts black first, then every bar tag in declaration order.
func palette(theme Theme) color.Palette {
	p := color.Palette{color.Black}
	for _, c := range bars.Colors() {
		r, g, b := parseHex(string(theme.Bar(c)))
		p = append(p, color.RGBA{uint8(r), uint8(g), uint8(b), 0xff})
	}
	return p
}

func (m *Model) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := m.canvas.Cols*charW, m.canvas.Rows*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), palette(CurrentTheme))
	dotW, dotH := charW/2, charH/4
	for row := 0; row < m.canvas.Rows; row++ {
		for col := 0; col < m.canvas.Cols; col++ {
			pattern := int(m.canvas.Grid[row][col] - blank)
			if pattern <= 0 {
				continue
			}
			idx := uint8(m.canvas.Tags[row][col]) + 1
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, idx)
						}
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) gifPath() string {
	return fmt.Sprintf("sortviz-%s.gif", m.sess.ID.String()[:8])
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 100/m.fpsOrDefault())
	}
	path := m.gifPath()
	f, err := os.Create(path)
	if err != nil {
		m.log.Error().Err(err).Msg("gif not saved")
		return
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("gif not saved")
		return
	}
	m.log.Info().Str("path", path).Int("frames", len(anim.Image)).Msg("gif saved")
}

func (m *Model) fpsOrDefault() int {
	if m.fps <= 0 || m.fps > 100 {
		return 60
	}
	return m.fps
}

// Run shows a started session full screen until the user quits.
func Run(sess *session.Session, canvas *Canvas, fps int, log zerolog.Logger) error {
	_, err := tea.NewProgram(NewModel(sess, canvas, fps, log), tea.WithAltScreen()).Run()
	return err
}
