package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
)

const maxTelemetry = 400

type App struct {
	Session   *session.Session
	Player    *player.Player
	Surface   *Surface
	Palette   int
	Font      rl.Font
	Start     time.Time
	Elapsed   time.Duration
	Telemetry []float64 // sorted bars per frame
	Driver    Driver

	log zerolog.Logger
}

// initWindow opens a window the size of the surface, sets the target FPS,
// and disables the default exit key.
func initWindow(s *Surface, fps int) {
	rl.InitWindow(int32(s.W), int32(s.H), "sortviz")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont loads the Liberation Mono font from the system path and enables bilinear texture filtering.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(sess *session.Session, surface *Surface, log zerolog.Logger) *App {
	a := &App{
		Session:   sess,
		Player:    sess.Player(),
		Surface:   surface,
		Telemetry: make([]float64, 0, maxTelemetry),
		log:       log,
	}
	a.Player.Draw()
	return a
}

// Run opens the window for a started session and blocks until it is closed.
// The animation clock starts when the window is up.
func Run(sess *session.Session, surface *Surface, fps int, log zerolog.Logger) {
	initWindow(surface, fps)
	defer rl.CloseWindow()

	app := NewApp(sess, surface, log)
	if d, err := probeDriver(); err != nil {
		log.Warn().Err(err).Msg("gl driver info unavailable")
	} else {
		app.Driver = d
		log.Debug().Str("vendor", d.Vendor).Str("renderer", d.Renderer).Str("version", d.Version).Msg("gl context")
	}
	app.Font = loadFont()
	defer rl.UnloadFont(app.Font)

	app.Start = time.Now()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		if rl.IsKeyPressed(rl.KeyT) {
			a.Palette = (a.Palette + 1) % len(Palettes)
		}
		a.Update(time.Now())
		a.Draw()
	}
}

// Update fires every action the clock has reached.
func (a *App) Update(now time.Time) {
	a.Elapsed = now.Sub(a.Start)
	if a.Player.Done() {
		return
	}
	n := a.Player.Advance(a.Elapsed)
	if n > 0 && a.Player.Done() {
		a.log.Info().Dur("elapsed", a.Elapsed).Msg("animation finished")
	}

	a.Telemetry = append(a.Telemetry, float64(a.Player.Board().SortedCount()))
	if len(a.Telemetry) > maxTelemetry {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) palette() Palette { return Palettes[a.Palette] }

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.palette().Bg)

	a.drawBars()
	a.DrawHUD()
	a.DrawTelemetry()

	rl.EndDrawing()
}

func (a *App) drawBars() {
	p := a.palette()
	for _, r := range a.Surface.rects {
		rl.DrawRectangleRec(rl.NewRectangle(r.X, r.Y, r.W, r.H), p.Bar(r.Color))
	}
}

func (a *App) DrawHUD() {
	p := a.palette()
	cfg := a.Session.Config
	a.drawText("sortviz", 30, 30, 24, p.Text)
	a.drawText(fmt.Sprintf(":: %s  n=%d  %dms", cfg.Engine, cfg.Size, cfg.SpeedMS), 150, 34, 16, p.TextDim)

	fired, total := a.Player.Progress()
	status, col := "SORTING", p.Text
	switch {
	case !a.Player.Done():
	case a.Session.Check():
		status, col = "SORTED", p.Bar(bars.Sorted)
	default:
		status, col = "CHECK FAILED", p.Bar(bars.SwapOut)
	}
	w := int(a.Surface.W)
	h := int(a.Surface.H)
	a.drawText(fmt.Sprintf("%s  %d/%d", status, fired, total), w-260, 30, 16, col)

	a.drawText("[T] PALETTE  [Q] QUIT", w-260, h-40, 14, p.TextDim)
	a.drawText(fmt.Sprintf("%d FPS  %s", int32(rl.GetFPS()), a.Driver), 30, h-40, 14, p.TextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots sorted bars over time in the top left corner.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX, rectY := 30, 70
	width, height := 300, 50

	maxVal := float64(a.Player.Board().Len())
	if maxVal == 0 {
		maxVal = 1
	}

	// Draw Line Strip
	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		py := float32(rectY+height) - float32(val/maxVal)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	p := a.palette()
	rl.DrawLineStrip(points, p.TextDim)
	a.drawText(fmt.Sprintf("sorted: %.0f", a.Telemetry[len(a.Telemetry)-1]), rectX+width+10, rectY+height-10, 14, p.Text)
}
