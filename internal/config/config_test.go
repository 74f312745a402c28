package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Caption.Backend != BackendRemote {
		t.Errorf("backend = %q, want %q", cfg.Caption.Backend, BackendRemote)
	}
	if cfg.Caption.Server != DefaultCaptionServer {
		t.Errorf("server = %q, want %q", cfg.Caption.Server, DefaultCaptionServer)
	}
	if cfg.Caption.MaxLength != DefaultMaxLength || cfg.Caption.BeamWidth != DefaultBeamWidth {
		t.Errorf("caption params = %d/%d, want %d/%d",
			cfg.Caption.MaxLength, cfg.Caption.BeamWidth, DefaultMaxLength, DefaultBeamWidth)
	}
	if cfg.Speech.Engine != EngineSystem {
		t.Errorf("engine = %q, want %q", cfg.Speech.Engine, EngineSystem)
	}
	if !cfg.Speech.AutoSpeak {
		t.Error("auto speak should default to on")
	}
	if cfg.HighContrast {
		t.Error("high contrast should default to off")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := NewDefaultConfig()
	cfg.SetMaxLength(80)
	cfg.SetRate(200)
	cfg.SetAutoSpeak(false)
	cfg.SetHighContrast(true)
	cfg.Caption.Backend = BackendOpenAI
	cfg.Save(path)

	loaded := LoadConfigFile(path)

	if loaded.GetMaxLength() != 80 {
		t.Errorf("max length = %d, want 80", loaded.GetMaxLength())
	}
	if loaded.GetRate() != 200 {
		t.Errorf("rate = %d, want 200", loaded.GetRate())
	}
	if loaded.GetAutoSpeak() {
		t.Error("auto speak should be off after round trip")
	}
	if !loaded.GetHighContrast() {
		t.Error("high contrast should be on after round trip")
	}
	if loaded.Caption.Backend != BackendOpenAI {
		t.Errorf("backend = %q, want %q", loaded.Caption.Backend, BackendOpenAI)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := LoadConfigFile(filepath.Join(t.TempDir(), "nope.json"))

	if cfg.Caption.MaxLength != DefaultMaxLength {
		t.Errorf("max length = %d, want %d", cfg.Caption.MaxLength, DefaultMaxLength)
	}
}

func TestLoadCorruptFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfigFile(path)

	if cfg.Caption.Backend != BackendRemote || cfg.Speech.Rate != DefaultRate {
		t.Error("corrupt config should fall back to defaults")
	}
}
