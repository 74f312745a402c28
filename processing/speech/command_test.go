package speech

import (
	"context"
	"errors"
	"testing"

	"captor/internal/config"
)

func TestNewCommandDefaultRate(t *testing.T) {
	c := NewCommand("", 0)
	if c.rate != 150 {
		t.Errorf("rate = %d, want 150", c.rate)
	}

	c = NewCommand("", 220)
	if c.rate != 220 {
		t.Errorf("rate = %d, want 220", c.rate)
	}
}

func TestSpeakRejectsEmptyText(t *testing.T) {
	err := NewCommand("", 150).Speak(context.Background(), "   ")
	if !errors.Is(err, ErrSpeech) {
		t.Errorf("err = %v, want wrapped %v", err, ErrSpeech)
	}
}

func TestNewSynthesizerSelectsEngine(t *testing.T) {
	cfg := config.NewDefaultConfig()
	if _, ok := NewSynthesizer(cfg).(*Command); !ok {
		t.Errorf("default engine = %T, want *Command", NewSynthesizer(cfg))
	}

	cfg.Speech.Engine = config.EngineOpenAI
	if _, ok := NewSynthesizer(cfg).(*OpenAI); !ok {
		t.Errorf("engine = %T, want *OpenAI", NewSynthesizer(cfg))
	}
}
