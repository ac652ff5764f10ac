package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorter"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
)

func commands() []*cobra.Command {
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "animate a fresh shuffle in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&save, "save", false, "store the trace")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate a fresh shuffle in a window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&save, "save", false, "store the trace")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "sort headless in real time and print a summary",
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&save, "save", false, "store the trace")
	runCmd.Flags().BoolVar(&instant, "instant", false, "fire every action at once")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "animate a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a frame of a stored run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&atTick, "at", -1, "tick to render (default last)")
	exportSVGCmd.Flags().BoolVar(&chart, "chart", false, "plot shifts per insert instead of the bars")

	audioCmd := &cobra.Command{
		Use:   "audio [run_id]",
		Short: "render the soundtrack to WAV and show its spectrum",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderAudio,
	}
	audioCmd.Flags().StringVarP(&outPath, "out", "o", "sortviz.wav", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets [engine]",
		Short: "list available presets for an engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for engine: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				c := config.GetPreset(args[0], p)
				fmt.Printf("  %-10s size=%d speed=%dms\n", p, c.Size, c.SpeedMS)
			}
			return nil
		},
	}

	enginesCmd := &cobra.Command{
		Use:   "engines",
		Short: "list sort engines",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range sorter.Names() {
				fmt.Println(name)
			}
		},
	}

	return []*cobra.Command{tuiCmd, guiCmd, runCmd, listCmd, plotCmd, replayCmd, exportJSONCmd, exportSVGCmd, audioCmd, presetsCmd, enginesCmd}
}

// startSession shuffles, sorts and optionally stores a new run.
func startSession(surface bars.Surface, tone audio.Tone, logger zerolog.Logger) (*session.Session, error) {
	sess, err := session.New(cfg, surface, tone, logger)
	if err != nil {
		return nil, err
	}
	if _, err := sess.Start(); err != nil {
		return nil, err
	}
	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return nil, err
		}
		runID, err := st.Save(sess)
		if err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
		logger.Info().Str("run", runID).Str("path", dataDir).Msg("run saved")
	}
	return sess, nil
}

// loadSession rebuilds a stored run onto surface.
func loadSession(runID string, surface bars.Surface, tone audio.Tone, logger zerolog.Logger) (*storage.RunMetadata, *session.Session, error) {
	st := storage.New(dataDir)
	meta, rec, err := st.LoadRecording(runID)
	if err != nil {
		return nil, nil, err
	}
	c := *cfg
	c.SpeedMS = meta.SpeedMS
	c.Size = meta.Size
	sess, err := session.FromTrace(&c, rec, surface, tone, logger)
	if err != nil {
		return nil, nil, err
	}
	return meta, sess, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	viz.SetTheme(cfg.Theme)
	tone := openTone(logger)
	defer closeTone(tone)
	return viz.RunInteractive(cfg, tone, logger)
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	viz.SetTheme(cfg.Theme)
	tone := openTone(logger)
	defer closeTone(tone)
	canvas := viz.NewCanvasSurface()
	sess, err := startSession(canvas, tone, logger)
	if err != nil {
		return err
	}
	defer sess.Close()
	return viz.Run(sess, canvas, cfg.FPS, logger)
}

func replayRun(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	viz.SetTheme(cfg.Theme)
	tone := openTone(logger)
	defer closeTone(tone)
	canvas := viz.NewCanvasSurface()
	_, sess, err := loadSession(args[0], canvas, tone, logger)
	if err != nil {
		return err
	}
	defer sess.Close()
	return viz.Run(sess, canvas, cfg.FPS, logger)
}

func runGUI(cmd *cobra.Command, args []string) error {
	tone := openTone(log.Logger)
	defer closeTone(tone)
	surface := gui.NewSurface(cfg.Surface.Width, cfg.Surface.Height)
	sess, err := startSession(surface, tone, log.Logger)
	if err != nil {
		return err
	}
	defer sess.Close()
	gui.Run(sess, surface, cfg.FPS, log.Logger)
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	tone := audio.Tone(audio.Silent{})
	if !instant {
		tone = openTone(log.Logger)
		defer closeTone(tone)
	}
	sess, err := startSession(nil, tone, log.Logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	p := sess.Player()
	start := time.Now()
	if instant {
		p.Finish()
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := p.Run(ctx, cfg.Frame()); err != nil {
			return err
		}
	}

	fired, total := p.Progress()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", sess.ID)
	fmt.Fprintf(w, "engine\t%s\n", cfg.Engine)
	fmt.Fprintf(w, "input\t%v\n", sess.Initial())
	fmt.Fprintf(w, "output\t%v\n", sess.Board().Values())
	fmt.Fprintf(w, "check\t%v\n", sess.Check())
	fmt.Fprintf(w, "fired\t%d/%d\n", fired, total)
	fmt.Fprintf(w, "timeline\t%s (wall %s)\n", p.Duration(), time.Since(start).Truncate(time.Millisecond))
	printMetrics(w, sess.Metrics())
	return w.Flush()
}

func printMetrics(w *tabwriter.Writer, ms []metrics.Metric) {
	values := metrics.Collect(ms)
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.2f\n", name, values[name])
	}
}

func closeTone(t audio.Tone) {
	if sp, ok := t.(*audio.Speaker); ok {
		if err := sp.Close(); err != nil {
			log.Warn().Err(err).Msg("audio close")
		}
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENGINE\tTIME\tSIZE\tSPEED\tACTIONS\tCHECK")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%dms\t%d\t%v\n",
			run.ID,
			run.Engine,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.SpeedMS,
			run.Actions,
			run.Check,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, sess, err := loadSession(args[0], nil, nil, log.Logger)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("engine: %s\n", meta.Engine)
	fmt.Printf("actions: %d\n\n", meta.Actions)

	if runs := sess.ShiftRuns(); len(runs) > 1 {
		fmt.Println(asciigraph.Plot(runs,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("shifts per insert"),
		))
		fmt.Println()
	}

	// sorted bars against tick
	sorted := make([]float64, 0, meta.Actions)
	sess.Player().OnFire(func(int, sorter.Action) {
		sorted = append(sorted, float64(sess.Board().SortedCount()))
	})
	sess.Player().Finish()
	if len(sorted) > 1 {
		fmt.Println(asciigraph.Plot(sorted,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("sorted bars vs tick"),
		))
	}
	return nil
}

func output() (*os.File, func() error, error) {
	if outPath == "" || outPath == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	f, closeFn, err := output()
	if err != nil {
		return err
	}
	defer closeFn()
	return storage.New(dataDir).ExportJSON(f, args[0])
}

func exportSVG(cmd *cobra.Command, args []string) error {
	surface := export.NewSVGSurface(float64(cfg.Surface.Width), float64(cfg.Surface.Height))
	_, sess, err := loadSession(args[0], surface, nil, log.Logger)
	if err != nil {
		return err
	}

	var svg string
	if chart {
		svg = export.SeriesToSVG(sess.ShiftRuns(), 800, 300, "#00ff00")
		if svg == "" {
			return fmt.Errorf("not enough insertions to plot")
		}
	} else {
		p := sess.Player()
		switch {
		case atTick < 0:
			p.Finish()
		case atTick == 0:
			p.Draw()
		default:
			p.Advance(p.Scheduler().Delay(atTick))
		}
		svg = surface.SVG()
	}

	f, closeFn, err := output()
	if err != nil {
		return err
	}
	defer closeFn()
	_, err = fmt.Fprintln(f, svg)
	return err
}

func renderAudio(cmd *cobra.Command, args []string) error {
	var sess *session.Session
	var err error
	if len(args) == 1 {
		_, sess, err = loadSession(args[0], nil, nil, log.Logger)
	} else {
		sess, err = startSession(nil, nil, log.Logger)
	}
	if err != nil {
		return err
	}

	params := cfg.AudioParams()
	events := sess.Soundtrack()
	if len(events) == 0 {
		return fmt.Errorf("run has no tones")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := audio.WriteWAV(f, events, params); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	log.Info().Str("path", outPath).Int("notes", len(events)).Msg("soundtrack written")

	samples := audio.Samples(events, params)
	ps := audio.PowerSpectrum(samples)
	// up to 2 kHz, where the bar tones live
	binHz := float64(params.SampleRate) / float64(2*len(ps))
	limit := int(2000 / binHz)
	if limit > len(ps) {
		limit = len(ps)
	}
	if limit > 1 {
		fmt.Println(asciigraph.Plot(ps[1:limit],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("power spectrum 0-%.0f Hz", float64(limit)*binHz)),
		))
	}
	fmt.Printf("\nduration: %s\n", time.Duration(len(samples))*time.Second/time.Duration(params.SampleRate))
	fmt.Printf("dominant: %.1f Hz\n", audio.DominantFrequency(samples, params.SampleRate))
	return nil
}
