package speech

import (
	config "captor/internal/config"
)

// NewSynthesizer builds the speech engine selected in the config.
func NewSynthesizer(cfg *config.Config) Synthesizer {
	switch cfg.Speech.Engine {
	case config.EngineOpenAI:
		return NewOpenAISpeech(cfg.Speech.APIKey, cfg.Speech.Voice)
	default:
		return NewCommand(cfg.Speech.Voice, cfg.Speech.Rate)
	}
}
