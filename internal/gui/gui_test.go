package gui

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/session"
)

var _ bars.Surface = (*Surface)(nil)

func TestSurfaceDisplayList(t *testing.T) {
	s := NewSurface(200, 100)
	s.FillRect(10, 90, 5, -40, bars.Shift)

	if s.Len() != 1 {
		t.Fatalf("expected 1 rect, got %d", s.Len())
	}
	if r := s.rects[0]; r.Y != 50 || r.H != 40 || r.Color != bars.Shift {
		t.Errorf("unexpected rect %+v", r)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Error("expected clear to drop the list")
	}
}

func TestAppUpdateWithoutWindow(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Size = 8
	surface := NewSurface(cfg.Surface.Width, cfg.Surface.Height)
	sess, err := session.New(cfg, surface, nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sess.Start(); err != nil {
		t.Fatal(err)
	}

	app := NewApp(sess, surface, zerolog.Nop())
	if surface.Len() != 8 {
		t.Errorf("expected the initial board drawn, got %d rects", surface.Len())
	}

	app.Start = time.Now()
	app.Update(app.Start.Add(time.Hour))
	if !app.Player.Done() {
		t.Error("expected every action fired")
	}
	if len(app.Telemetry) != 1 || app.Telemetry[0] != 8 {
		t.Errorf("unexpected telemetry %v", app.Telemetry)
	}
}

func TestPalettes(t *testing.T) {
	for _, p := range Palettes {
		if p.Bar(bars.Sorted) == p.Bar(bars.Default) {
			t.Errorf("%s: sorted bars must stand out", p.Name)
		}
	}
	if got := hexColor("#008000"); got.G != 0x80 || got.R != 0 || got.A != 255 {
		t.Errorf("unexpected color %v", got)
	}
}

func TestDriverString(t *testing.T) {
	if got := (Driver{}).String(); got != "unknown renderer" {
		t.Errorf("unexpected empty driver string %q", got)
	}
	d := Driver{Vendor: "Mesa", Renderer: "llvmpipe", Version: "3.3"}
	if got := d.String(); got != "llvmpipe (GL 3.3)" {
		t.Errorf("unexpected driver string %q", got)
	}
}
