package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/config"
)

var (
	dataDir    string
	configFile string
	preset     string
	engine     string
	size       int
	speedMS    int
	seed       int64
	layout     string
	theme      string
	frameRate  int
	mute       bool
	verbose    bool

	// run
	save    bool
	instant bool

	// export
	outPath string
	atTick  int
	chart   bool

	cfg *config.Config
)

// main registers the commands and flags, starts the interactive TUI when no
// subcommand is given, and exits with status 1 on error.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:               "sortviz",
		Short:             "watch and hear a sort, one step at a time",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE:              runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".sortviz", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&engine, "engine", "insertion", "sort engine")
	pf.IntVar(&size, "size", config.DefaultSize, "number of bars")
	pf.IntVar(&speedMS, "speed", config.DefaultSpeedMS, "milliseconds between animation steps")
	pf.Int64Var(&seed, "seed", 1, "shuffle seed")
	pf.StringVar(&layout, "layout", config.LayoutFit, "bar layout (fit, classic)")
	pf.StringVar(&theme, "theme", "cyberpunk", "tui color theme")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.BoolVar(&mute, "mute", false, "disable live audio")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(commands()...)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers presets, then the config file, then explicit flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg = config.DefaultConfig()
	flags := cmd.Flags()

	if preset != "" {
		p := config.GetPreset(engine, preset)
		if p == nil {
			return fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, preset, config.ListPresets(engine))
		}
		cfg.Merge(p)
	}

	if configFile != "" {
		if err := cfg.Overlay(configFile); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log.Debug().Str("path", configFile).Msg("config loaded")
	}

	if flags.Changed("engine") {
		cfg.Engine = engine
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("speed") {
		cfg.SpeedMS = speedMS
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("layout") {
		cfg.Layout = layout
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if mute {
		cfg.Audio.Enabled = false
	}

	return cfg.Validate()
}

// openTone starts the speaker, falling back to silence when there is no
// usable output device.
func openTone(logger zerolog.Logger) audio.Tone {
	if !cfg.Audio.Enabled {
		return audio.Silent{}
	}
	sp := audio.NewSpeaker(cfg.AudioParams(), logger)
	if err := sp.Start(); err != nil {
		logger.Warn().Err(err).Msg("audio disabled")
		return audio.Silent{}
	}
	return sp
}

// tuiLogger writes to a file under the data directory, leaving the
// terminal to the TUI.
func tuiLogger() (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return zerolog.Nop(), func() {}, err
	}
	f, err := os.OpenFile(filepath.Join(dataDir, "sortviz.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	return zerolog.New(f).With().Timestamp().Logger(), func() { f.Close() }, nil
}
