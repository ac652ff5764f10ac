package config

import "sort"

// Presets are partial configs keyed by engine, then by name. They are merged
// over DefaultConfig.
var Presets = map[string]map[string]*Config{
	"insertion": {
		"tiny": {
			Engine: "insertion", Size: 8, SpeedMS: 150,
		},
		"default": {
			Engine: "insertion", Size: DefaultSize, SpeedMS: DefaultSpeedMS,
		},
		"slow": {
			Engine: "insertion", Size: 20, SpeedMS: 80,
		},
		"large": {
			Engine: "insertion", Size: 150, SpeedMS: 2, Audio: AudioConfig{NoteMS: 40},
		},
		"classic": {
			Engine: "insertion", Size: DefaultSize, SpeedMS: DefaultSpeedMS, Layout: LayoutClassic,
		},
	},
	"bubble": {
		"tiny": {
			Engine: "bubble", Size: 8, SpeedMS: 150,
		},
		"default": {
			Engine: "bubble", Size: 30, SpeedMS: 10,
		},
	},
}

func GetPreset(engine, preset string) *Config {
	enginePresets, ok := Presets[engine]
	if !ok {
		return nil
	}
	cfg, ok := enginePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(engine string) []string {
	enginePresets, ok := Presets[engine]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(enginePresets))
	for name := range enginePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
