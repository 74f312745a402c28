package captioner

import (
	config "captor/internal/config"
)

// NewService builds the caption backend selected in the config.
func NewService(cfg *config.Config) Service {
	switch cfg.Caption.Backend {
	case config.BackendOpenAI:
		return NewOpenAI(cfg.Caption.APIKey, cfg.Caption.Model)
	default:
		return NewRemote(cfg.Caption.Server)
	}
}
