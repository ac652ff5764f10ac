package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/sorter"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 50, cfg.Size)
	assert.Equal(t, 15*time.Millisecond, cfg.Speed())
	assert.Equal(t, "insertion", cfg.Engine)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"size one", func(c *Config) { c.Size = 1 }, ErrInvalidSize},
		{"zero speed", func(c *Config) { c.SpeedMS = 0 }, ErrInvalidSpeed},
		{"zero fps", func(c *Config) { c.FPS = 0 }, ErrInvalidFPS},
		{"unknown engine", func(c *Config) { c.Engine = "quick" }, sorter.ErrUnknownEngine},
		{"unknown layout", func(c *Config) { c.Layout = "spiral" }, ErrUnknownLayout},
		{"loud", func(c *Config) { c.Audio.Volume = 2 }, ErrInvalidVolume},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	cfg := DefaultConfig()
	cfg.Size = 12
	cfg.Engine = "bubble"
	cfg.Audio.Enabled = false

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("insertion", "tiny")
	require.NotNil(t, cfg)
	assert.Equal(t, 8, cfg.Size)

	assert.Nil(t, GetPreset("insertion", "nonexistent"))
	assert.Nil(t, GetPreset("nonexistent", "tiny"))
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"default", "tiny"}, ListPresets("bubble"))
	assert.Nil(t, ListPresets("nonexistent"))
}

func TestPresetsValidate(t *testing.T) {
	for engine := range Presets {
		for _, name := range ListPresets(engine) {
			cfg := DefaultConfig()
			cfg.Merge(GetPreset(engine, name))
			assert.NoError(t, cfg.Validate(), "%s/%s", engine, name)
			assert.Equal(t, engine, cfg.Engine)
		}
	}
}

func TestMergeKeepsUnsetFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{SpeedMS: 40})

	assert.Equal(t, 40, cfg.SpeedMS)
	assert.Equal(t, DefaultSize, cfg.Size)
	assert.Equal(t, LayoutFit, cfg.Layout)
}

func TestAudioParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audio.NoteMS = 250
	p := cfg.AudioParams()

	assert.Equal(t, 250*time.Millisecond, p.Length)
	assert.Equal(t, 40*time.Millisecond, p.Decay)
	assert.InDelta(t, 0.25, p.Volume, 1e-9)
}

func TestOverlayKeepsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed_ms: 30\naudio:\n  enabled: false\n"), 0644))

	cfg := DefaultConfig()
	cfg.Merge(GetPreset("insertion", "tiny"))
	require.NoError(t, cfg.Overlay(path))

	assert.Equal(t, 30, cfg.SpeedMS)
	assert.Equal(t, 8, cfg.Size)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, DefaultNoteMS, cfg.Audio.NoteMS)
}
